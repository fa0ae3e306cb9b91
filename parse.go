package num

// digitValue maps an ASCII byte to its value as a digit in bases up to 36, or
// 36 or more if it is not a digit.
func digitValue(c byte) uint64 {
	switch {
	case c >= '0' && c <= '9':
		return uint64(c - '0')
	case c >= 'a' && c <= 'z':
		return uint64(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		return uint64(c-'A') + 10
	}
	return 255
}

// ParseU256 interprets s in the given base (2 to 36) and returns the
// corresponding value. A leading '+' is accepted. Digits above 9 may be
// upper or lower case. A base outside the range [2, 36] panics.
//
// The returned error, if any, is a *ParseError.
func ParseU256(s string, base int) (U256, error) {
	return parseU256("ParseU256", s, base)
}

func parseU256(fn string, s string, base int) (out U256, err error) {
	checkBase(base)

	digits := s
	if len(digits) > 0 && digits[0] == '+' {
		digits = digits[1:]
	}
	if len(digits) == 0 {
		return out, &ParseError{Func: fn, Input: s, Err: ErrEmpty}
	}

	radix := U256From64(uint64(base))
	for i := 0; i < len(digits); i++ {
		d := digitValue(digits[i])
		if d >= uint64(base) {
			return zeroU256, &ParseError{Func: fn, Input: s, Err: ErrInvalidDigit}
		}
		if arith.umulc(&out, &out, &radix) {
			return zeroU256, &ParseError{Func: fn, Input: s, Err: ErrPosOverflow}
		}
		dv := U256From64(d)
		if arith.uaddc(&out, &out, &dv) {
			return zeroU256, &ParseError{Func: fn, Input: s, Err: ErrPosOverflow}
		}
	}
	return out, nil
}

// ParseI256 interprets s in the given base (2 to 36) and returns the
// corresponding value. A leading '+' or '-' is accepted. A base outside the
// range [2, 36] panics.
//
// The returned error, if any, is a *ParseError.
func ParseI256(s string, base int) (out I256, err error) {
	const fn = "ParseI256"

	checkBase(base)

	digits, neg := s, false
	if len(digits) > 0 {
		switch digits[0] {
		case '+':
			digits = digits[1:]
		case '-':
			digits, neg = digits[1:], true
		}
	}
	if len(digits) == 0 {
		return out, &ParseError{Func: fn, Input: s, Err: ErrEmpty}
	}

	overflow := ErrPosOverflow
	if neg {
		overflow = ErrNegOverflow
	}

	radix := I256From64(int64(base))
	for i := 0; i < len(digits); i++ {
		d := digitValue(digits[i])
		if d >= uint64(base) {
			return zeroI256, &ParseError{Func: fn, Input: s, Err: ErrInvalidDigit}
		}
		if arith.imulc(&out, &out, &radix) {
			return zeroI256, &ParseError{Func: fn, Input: s, Err: overflow}
		}

		// Negative values accumulate downwards so that MinI256 is reachable.
		dv := I256From64(int64(d))
		var c bool
		if neg {
			c = arith.isubc(&out, &out, &dv)
		} else {
			c = arith.iaddc(&out, &out, &dv)
		}
		if c {
			return zeroI256, &ParseError{Func: fn, Input: s, Err: overflow}
		}
	}
	return out, nil
}

// U256FromString parses a base 10 string.
func U256FromString(s string) (U256, error) {
	return parseU256("U256FromString", s, 10)
}

// I256FromString parses a base 10 string.
func I256FromString(s string) (I256, error) {
	out, err := ParseI256(s, 10)
	if perr, ok := err.(*ParseError); ok {
		perr.Func = "I256FromString"
	}
	return out, err
}

// U256FromHexString parses a hexadecimal quantity, with or without a leading
// "0x" or "0X", as produced by U256.MarshalJSON.
func U256FromHexString(s string) (U256, error) {
	digits := s
	if len(digits) >= 2 && digits[0] == '0' && (digits[1] == 'x' || digits[1] == 'X') {
		digits = digits[2:]
	}
	out, err := parseU256("U256FromHexString", digits, 16)
	if perr, ok := err.(*ParseError); ok {
		perr.Input = s
	}
	return out, err
}
