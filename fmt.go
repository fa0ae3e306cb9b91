package num

import (
	"fmt"
	"io"
)

const (
	// 2^128 is about 3.4*10^38, so 40 leaves room for a sign.
	u128DecimalLen = 40

	// 2^256 is about 1.2*10^77, so 79 leaves room for a sign.
	u256DecimalLen = 79

	// Enough for MaxU256 in base 2.
	radixBufLen = 256
)

// decDigits maps 0..99 to their two-character decimal representation; the
// pair for n starts at index n*2.
const decDigits = "" +
	"0001020304050607080910111213141516171819" +
	"2021222324252627282930313233343536373839" +
	"4041424344454647484950515253545556575859" +
	"6061626364656667686970717273747576777879" +
	"8081828384858687888990919293949596979899"

const (
	lowerDigits = "0123456789abcdefghijklmnopqrstuvwxyz"
	upperDigits = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// putDecimal4 writes the four decimal digits of rem (which must be < 10000)
// ending just before cur, and returns the new cursor.
func putDecimal4(buf []byte, cur int, rem uint64) int {
	if cur < 4 {
		panic("num: decimal buffer underflow")
	}
	d1 := (rem / 100) << 1
	d2 := (rem % 100) << 1
	cur -= 4
	buf[cur], buf[cur+1] = decDigits[d1], decDigits[d1+1]
	buf[cur+2], buf[cur+3] = decDigits[d2], decDigits[d2+1]
	return cur
}

// putDecimalTail writes the 1 to 4 digits of n (which must be < 10000) ending
// just before cur, and returns the new cursor.
func putDecimalTail(buf []byte, cur int, n uint64) int {
	if n >= 100 {
		if cur < 2 {
			panic("num: decimal buffer underflow")
		}
		d1 := (n % 100) << 1
		n /= 100
		cur -= 2
		buf[cur], buf[cur+1] = decDigits[d1], decDigits[d1+1]
	}

	if n < 10 {
		if cur < 1 {
			panic("num: decimal buffer underflow")
		}
		cur--
		buf[cur] = byte(n) + '0'
	} else {
		if cur < 2 {
			panic("num: decimal buffer underflow")
		}
		d1 := n << 1
		cur -= 2
		buf[cur], buf[cur+1] = decDigits[d1], decDigits[d1+1]
	}
	return cur
}

// formatU256Decimal writes the decimal digits of n to the end of buf and
// returns the index of the first digit. Digits are produced least significant
// first, four at a time; buf[cur:] is always the valid text.
func formatU256Decimal(buf *[u256DecimalLen]byte, n U256) (cur int) {
	cur = len(buf)
	for !n.IsUint64() || n.lo.lo >= 10000 {
		var rem uint64
		n, rem = quorem256by64(&n, 10000)
		cur = putDecimal4(buf[:], cur, rem)
	}
	return putDecimalTail(buf[:], cur, n.lo.lo)
}

func formatU128Decimal(buf *[u128DecimalLen]byte, n U128) (cur int) {
	cur = len(buf)
	for n.hi != 0 || n.lo >= 10000 {
		var rem uint64
		n, rem = n.QuoRem64(10000)
		cur = putDecimal4(buf[:], cur, rem)
	}
	return putDecimalTail(buf[:], cur, n.lo)
}

// formatRadix writes the digits of x in the given base to the end of buf
// using the digit alphabet, and returns the index of the first digit.
func formatRadix(buf *[radixBufLen]byte, x U256, base uint64, digits string) (cur int) {
	cur = len(buf)
	for {
		var n uint64
		x, n = quorem256by64(&x, base)
		cur--
		buf[cur] = digits[n]
		if x.IsZero() {
			return cur
		}
	}
}

func checkBase(base int) {
	if base < 2 || base > 36 {
		panic(fmt.Sprintf("num: base must lie in the range [2, 36], found %d", base))
	}
}

// appendMagnitude appends the digits of mag in the given base to dst,
// preceded by a '-' if neg is set.
func appendMagnitude(dst []byte, mag U256, neg bool, base int) []byte {
	checkBase(base)
	if neg {
		dst = append(dst, '-')
	}
	if base == 10 {
		var buf [u256DecimalLen]byte
		cur := formatU256Decimal(&buf, mag)
		return append(dst, buf[cur:]...)
	}
	var buf [radixBufLen]byte
	cur := formatRadix(&buf, mag, uint64(base), lowerDigits)
	return append(dst, buf[cur:]...)
}

// String returns the decimal representation of u.
func (u U256) String() string {
	var buf [u256DecimalLen]byte
	cur := formatU256Decimal(&buf, u)
	return string(buf[cur:])
}

// Text returns the representation of u in the given base, using lower-case
// letters 'a' to 'z' for digit values >= 10. Base must be between 2 and 36
// inclusive, otherwise Text panics.
func (u U256) Text(base int) string {
	var buf [radixBufLen]byte
	return string(appendMagnitude(buf[:0], u, false, base))
}

// Append appends the representation of u in the given base, as generated by
// u.Text(base), to dst and returns the extended buffer.
func (u U256) Append(dst []byte, base int) []byte {
	return appendMagnitude(dst, u, false, base)
}

// String returns the decimal representation of i.
func (i I256) String() string {
	var buf [u256DecimalLen]byte
	cur := formatU256Decimal(&buf, i.AbsU256())
	if i.isNeg() {
		cur--
		buf[cur] = '-'
	}
	return string(buf[cur:])
}

// Text returns the representation of i in the given base, with a leading '-'
// if i is negative. Base must be between 2 and 36 inclusive, otherwise Text
// panics.
func (i I256) Text(base int) string {
	var buf [radixBufLen + 1]byte
	return string(appendMagnitude(buf[:0], i.AbsU256(), i.isNeg(), base))
}

// Append appends the representation of i in the given base, as generated by
// i.Text(base), to dst and returns the extended buffer.
func (i I256) Append(dst []byte, base int) []byte {
	return appendMagnitude(dst, i.AbsU256(), i.isNeg(), base)
}

// Format implements fmt.Formatter. It accepts the integral verbs 'b', 'o',
// 'O', 'd', 'x' and 'X', along with 'v' and 's' (decimal, or hex with a 0x
// prefix for '%#v': lower-case digits, upper-case for '%+#v'), and the full suite of fmt's flags for integral
// types. The float verbs 'e', 'E', 'f', 'F', 'g' and 'G' format the nearest
// float64, so large values lose precision.
func (u U256) Format(s fmt.State, c rune) {
	formatIntegral(s, c, u, false, "num.U256")
}

// Format implements fmt.Formatter; see U256.Format for the accepted verbs.
// Non-decimal bases are formatted as sign and magnitude, like Go's integers.
func (i I256) Format(s fmt.State, c rune) {
	formatIntegral(s, c, i.AbsU256(), i.isNeg(), "num.I256")
}

func formatIntegral(s fmt.State, verb rune, mag U256, neg bool, typ string) {
	var buf [radixBufLen]byte
	var cur int
	var prefix string
	plus := s.Flag('+')

	switch verb {
	case 'v', 's', 'd':
		if verb == 'v' && s.Flag('#') {
			// '%+#v' selects upper-case hex digits; the '+' is not a sign here.
			digits := lowerDigits
			if plus {
				digits, plus = upperDigits, false
			}
			cur, prefix = formatRadix(&buf, mag, 16, digits), "0x"
			break
		}
		var dec [u256DecimalLen]byte
		dc := formatU256Decimal(&dec, mag)
		cur = len(buf) - copy(buf[len(buf)-(len(dec)-dc):], dec[dc:])

	case 'x':
		cur = formatRadix(&buf, mag, 16, lowerDigits)
		if s.Flag('#') {
			prefix = "0x"
		}

	case 'X':
		cur = formatRadix(&buf, mag, 16, upperDigits)
		if s.Flag('#') {
			prefix = "0X"
		}

	case 'o', 'O':
		cur = formatRadix(&buf, mag, 8, lowerDigits)
		if verb == 'O' {
			prefix = "0o"
		} else if s.Flag('#') && buf[cur] != '0' {
			prefix = "0"
		}

	case 'b':
		cur = formatRadix(&buf, mag, 2, lowerDigits)
		if s.Flag('#') {
			prefix = "0b"
		}

	case 'e', 'E', 'f', 'F', 'g', 'G':
		f := mag.AsFloat64()
		if neg {
			f = -f
		}
		fmt.Fprintf(s, fmt.FormatString(s, verb), f)
		return

	default:
		fmt.Fprintf(s, "%%!%c(%s=", verb, typ)
		if neg {
			io.WriteString(s, "-")
		}
		var dec [u256DecimalLen]byte
		dc := formatU256Decimal(&dec, mag)
		s.Write(dec[dc:])
		io.WriteString(s, ")")
		return
	}

	padIntegral(s, neg, plus, prefix, buf[cur:])
}

const (
	padSpaces = "                                "
	padZeros  = "00000000000000000000000000000000"
)

func writePad(w io.Writer, pad string, n int) {
	for n > 0 {
		k := n
		if k > len(pad) {
			k = len(pad)
		}
		io.WriteString(w, pad[:k])
		n -= k
	}
}

// padIntegral writes the sign, prefix and digits of an integer to s,
// honouring the width, precision and the '+', ' ', '-' and '0' flags the way
// fmt does for the builtin integer types.
func padIntegral(s fmt.State, neg, plus bool, prefix string, digits []byte) {
	var sign string
	switch {
	case neg:
		sign = "-"
	case plus:
		sign = "+"
	case s.Flag(' '):
		sign = " "
	}

	zeros := 0
	prec, hasPrec := s.Precision()
	if hasPrec {
		if prec == 0 && len(digits) == 1 && digits[0] == '0' {
			digits = digits[:0]
		}
		if prec > len(digits) {
			zeros = prec - len(digits)
		}
	}

	pad := 0
	if width, ok := s.Width(); ok {
		if n := len(sign) + len(prefix) + zeros + len(digits); width > n {
			pad = width - n
		}
	}

	switch {
	case s.Flag('-'):
		io.WriteString(s, sign)
		io.WriteString(s, prefix)
		writePad(s, padZeros, zeros)
		s.Write(digits)
		writePad(s, padSpaces, pad)

	case s.Flag('0') && !hasPrec:
		io.WriteString(s, sign)
		io.WriteString(s, prefix)
		writePad(s, padZeros, zeros+pad)
		s.Write(digits)

	default:
		writePad(s, padSpaces, pad)
		io.WriteString(s, sign)
		io.WriteString(s, prefix)
		writePad(s, padZeros, zeros)
		s.Write(digits)
	}
}
