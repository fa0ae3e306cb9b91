package num

import (
	"errors"
	"strconv"
)

var (
	// ErrEmpty is returned when there are no digits to parse, either because
	// the input was empty or because it was a lone sign.
	ErrEmpty = errors.New("cannot parse integer from empty string")

	// ErrInvalidDigit is returned when the input contains a character that is
	// not a digit in the requested base.
	ErrInvalidDigit = errors.New("invalid digit found in string")

	// ErrPosOverflow is returned when the value is too large for the type.
	ErrPosOverflow = errors.New("number too large to fit in target type")

	// ErrNegOverflow is returned when the value is too small for the type.
	ErrNegOverflow = errors.New("number too small to fit in target type")

	// ErrLengthExceeded is returned when decoding more than 32 bytes.
	ErrLengthExceeded = errors.New("num: byte length exceeds 32")
)

// ParseError records a failed conversion from text. Err is one of ErrEmpty,
// ErrInvalidDigit, ErrPosOverflow or ErrNegOverflow; use errors.Is to match
// on it.
type ParseError struct {
	Func  string // the failing function (ParseU256, ParseI256, ...)
	Input string // the input
	Err   error  // the reason the conversion failed
}

func (e *ParseError) Error() string {
	return "num: " + e.Func + ": parsing " + strconv.Quote(e.Input) + ": " + e.Err.Error()
}

func (e *ParseError) Unwrap() error { return e.Err }
