package num

import (
	"fmt"
)

// MarshalBinary encodes u as its compact big-endian bytes.
func (u U256) MarshalBinary() ([]byte, error) {
	return u.CompactBytes(), nil
}

func (u *U256) UnmarshalBinary(data []byte) error {
	v, err := U256FromCompactBytes(data)
	if err != nil {
		return err
	}
	*u = v
	return nil
}

// MarshalText encodes u in decimal.
func (u U256) MarshalText() ([]byte, error) {
	return u.Append(nil, 10), nil
}

// UnmarshalText accepts decimal, or hex with a leading "0x".
func (u *U256) UnmarshalText(bts []byte) (err error) {
	v, err := parseU256Text(string(bts))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

// MarshalJSON encodes u as a quoted hex quantity: lower-case, "0x" prefixed,
// no leading zero digits. 0x12345 encodes as "0x12345" and zero as "0x0".
func (u U256) MarshalJSON() ([]byte, error) {
	out := make([]byte, 0, 3+64+1)
	out = append(out, '"', '0', 'x')
	out = u.Append(out, 16)
	out = append(out, '"')
	return out, nil
}

// UnmarshalJSON accepts a quoted hex quantity, a quoted decimal string or a
// bare JSON number. A JSON null leaves u unchanged.
func (u *U256) UnmarshalJSON(bts []byte) (err error) {
	if string(bts) == "null" {
		return nil
	}
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return fmt.Errorf("num: u256 invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}

	v, err := parseU256Text(string(bts))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

func parseU256Text(s string) (U256, error) {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return U256FromHexString(s)
	}
	return U256FromString(s)
}

// MarshalBinary encodes i as 32 big-endian two's complement bytes.
func (i I256) MarshalBinary() ([]byte, error) {
	b := i.ToBEBytes()
	return b[:], nil
}

func (i *I256) UnmarshalBinary(data []byte) error {
	if len(data) > 32 {
		return fmt.Errorf("num: i256 binary of length %d: %w", len(data), ErrLengthExceeded)
	} else if len(data) < 32 {
		return fmt.Errorf("num: i256 binary of length %d, expected 32", len(data))
	}
	var b [32]byte
	copy(b[:], data)
	*i = I256FromBEBytes(b)
	return nil
}

func (i I256) MarshalText() ([]byte, error) {
	return i.Append(nil, 10), nil
}

func (i *I256) UnmarshalText(bts []byte) (err error) {
	v, err := I256FromString(string(bts))
	if err != nil {
		return err
	}
	*i = v
	return nil
}

// MarshalJSON encodes i as a quoted decimal string.
func (i I256) MarshalJSON() ([]byte, error) {
	out := make([]byte, 0, u256DecimalLen+2)
	out = append(out, '"')
	out = i.Append(out, 10)
	out = append(out, '"')
	return out, nil
}

func (i *I256) UnmarshalJSON(bts []byte) (err error) {
	if string(bts) == "null" {
		return nil
	}
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return fmt.Errorf("num: i256 invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}

	v, err := I256FromString(string(bts))
	if err != nil {
		return err
	}
	*i = v
	return nil
}
