package num

import (
	"encoding/binary"
	"fmt"
)

// ToBEBytes returns the 32-byte big-endian representation of u. The result
// depends only on the value, never on how the words are stored in memory.
func (u U256) ToBEBytes() (b [32]byte) {
	binary.BigEndian.PutUint64(b[0:], u.hi.hi)
	binary.BigEndian.PutUint64(b[8:], u.hi.lo)
	binary.BigEndian.PutUint64(b[16:], u.lo.hi)
	binary.BigEndian.PutUint64(b[24:], u.lo.lo)
	return b
}

// ToLEBytes returns the 32-byte little-endian representation of u.
func (u U256) ToLEBytes() (b [32]byte) {
	binary.LittleEndian.PutUint64(b[0:], u.lo.lo)
	binary.LittleEndian.PutUint64(b[8:], u.lo.hi)
	binary.LittleEndian.PutUint64(b[16:], u.hi.lo)
	binary.LittleEndian.PutUint64(b[24:], u.hi.hi)
	return b
}

func U256FromBEBytes(b [32]byte) U256 {
	return U256FromRaw(
		binary.BigEndian.Uint64(b[0:]),
		binary.BigEndian.Uint64(b[8:]),
		binary.BigEndian.Uint64(b[16:]),
		binary.BigEndian.Uint64(b[24:]),
	)
}

func U256FromLEBytes(b [32]byte) U256 {
	return U256FromRaw(
		binary.LittleEndian.Uint64(b[24:]),
		binary.LittleEndian.Uint64(b[16:]),
		binary.LittleEndian.Uint64(b[8:]),
		binary.LittleEndian.Uint64(b[0:]),
	)
}

// ToBEBytes returns the 32-byte big-endian two's complement representation of
// i.
func (i I256) ToBEBytes() [32]byte { return U256(i).ToBEBytes() }

// ToLEBytes returns the 32-byte little-endian two's complement
// representation of i.
func (i I256) ToLEBytes() [32]byte { return U256(i).ToLEBytes() }

func I256FromBEBytes(b [32]byte) I256 { return I256(U256FromBEBytes(b)) }
func I256FromLEBytes(b [32]byte) I256 { return I256(U256FromLEBytes(b)) }

// AppendCompactBytes appends the big-endian representation of u with leading
// zero bytes stripped to dst. Zero appends nothing.
func (u U256) AppendCompactBytes(dst []byte) []byte {
	b := u.ToBEBytes()
	n := (u.BitLen() + 7) / 8
	return append(dst, b[len(b)-n:]...)
}

// CompactBytes returns the big-endian representation of u with leading zero
// bytes stripped. Zero encodes as an empty slice.
func (u U256) CompactBytes() []byte {
	return u.AppendCompactBytes(make([]byte, 0, 32))
}

// U256FromCompactBytes decodes a big-endian value of up to 32 bytes, as
// produced by CompactBytes. Leading zero bytes are allowed. An input longer
// than 32 bytes fails with an error wrapping ErrLengthExceeded.
func U256FromCompactBytes(b []byte) (U256, error) {
	if len(b) > 32 {
		return zeroU256, fmt.Errorf("num: u256 compact bytes of length %d: %w", len(b), ErrLengthExceeded)
	}
	var buf [32]byte
	copy(buf[32-len(b):], b)
	return U256FromBEBytes(buf), nil
}
