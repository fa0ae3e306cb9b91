package num

import (
	"math/big"
)

var minI256Abs = U256{hi: U128{hi: signBit}}

// I256FromWords creates an I256 from its high and low 128-bit words. The sign
// is taken from the high word; the low word is used as raw bits.
func I256FromWords(hi, lo I128) I256 {
	return I256{hi: hi.AsU128(), lo: lo.AsU128()}
}

// I256From128 sign-extends an I128.
func I256From128(v I128) I256 {
	var hi U128
	if v.hi&signBit != 0 {
		hi = MaxU128
	}
	return I256{hi: hi, lo: v.AsU128()}
}

func I256From64(v int64) I256 { return I256From128(I128From64(v)) }
func I256From32(v int32) I256 { return I256From64(int64(v)) }

// I256FromBigInt creates an I256 from a big.Int. Overflow truncates to
// MaxI256/MinI256 and sets accurate to 'false'.
func I256FromBigInt(v *big.Int) (out I256, accurate bool) {
	neg := v.Sign() < 0

	abs := v
	if neg {
		abs = new(big.Int).Neg(v)
	}

	u, accurate := U256FromBigInt(abs)

	if !neg {
		if !accurate || u.GreaterThan(U256(MaxI256)) {
			return MaxI256, false
		}
		return u.AsI256(), true
	}

	if !accurate || u.GreaterThan(minI256Abs) {
		return MinI256, false
	}
	return u.AsI256().Neg(), true
}

// RandI256 generates a positive signed 256-bit random integer from an external
// source.
func RandI256(source RandSource) (out I256) {
	return I256(U256FromRaw(source.Uint64()&maxInt64, source.Uint64(), source.Uint64(), source.Uint64()))
}

// IntoWords splits i into its high and low 128-bit words.
func (i I256) IntoWords() (hi, lo I128) { return i.hi.AsI128(), i.lo.AsI128() }

// Low returns the least significant 128-bit word as raw bits.
func (i I256) Low() I128 { return i.lo.AsI128() }

// High returns the most significant 128-bit word, which carries the sign.
func (i I256) High() I128 { return i.hi.AsI128() }

// Raw returns access to the I256 as four uint64s, most significant first.
func (i I256) Raw() (hi, hm, lm, lo uint64) { return U256(i).Raw() }

func (i I256) IsZero() bool { return i == zeroI256 }

func (i I256) Sign() int {
	if i == zeroI256 {
		return 0
	} else if i.hi.hi&signBit == 0 {
		return 1
	}
	return -1
}

func (i I256) isNeg() bool { return i.hi.hi&signBit != 0 }

// IntoBigInt copies this I256 into a big.Int, allowing you to retain and
// recycle memory.
func (i I256) IntoBigInt(b *big.Int) {
	i.AbsU256().IntoBigInt(b)
	if i.isNeg() {
		b.Neg(b)
	}
}

// AsBigInt allocates a new big.Int and copies this I256 into it.
func (i I256) AsBigInt() (b *big.Int) {
	b = new(big.Int)
	i.IntoBigInt(b)
	return b
}

// AsU256 performs a direct cast of an I256 to a U256. Negative numbers
// become values > MaxI256.
func (i I256) AsU256() U256 { return U256(i) }

// IsU256 reports whether i can be represented in a U256.
func (i I256) IsU256() bool { return !i.isNeg() }

// AsInt64 truncates the I256 to fit in an int64. Values outside the range will
// over/underflow. See IsInt64() if you want to check before you convert.
func (i I256) AsInt64() int64 { return int64(i.lo.lo) }

// IsInt64 reports whether i can be represented as an int64.
func (i I256) IsInt64() bool {
	if i.isNeg() {
		return i.hi == MaxU128 && i.lo.hi == maxUint64 && i.lo.lo >= signBit
	}
	return i.hi.IsZero() && i.lo.hi == 0 && i.lo.lo <= maxInt64
}

// Neg returns -i. -MinI256 overflows back to MinI256.
func (i I256) Neg() I256 {
	v := U256(i).Not()
	arith.add2(&v, &oneU256)
	return I256(v)
}

// Abs returns the absolute value of i. MinI256.Abs() overflows back to
// MinI256; use AbsU256 if you need the magnitude.
func (i I256) Abs() I256 {
	if i.isNeg() {
		return i.Neg()
	}
	return i
}

// AbsU256 returns the magnitude of i as a U256, which is always accurate.
func (i I256) AbsU256() U256 {
	return U256(i.Abs())
}

func (i I256) Inc() I256 {
	arith.add2((*U256)(&i), &oneU256)
	return i
}

func (i I256) Dec() I256 {
	arith.sub2((*U256)(&i), &oneU256)
	return i
}

// Add returns i + n, wrapping on overflow.
func (i I256) Add(n I256) (v I256) {
	arith.add3((*U256)(&v), (*U256)(&i), (*U256)(&n))
	return v
}

// AddAssign sets i to i + n, wrapping on overflow.
func (i *I256) AddAssign(n I256) { arith.add2((*U256)(i), (*U256)(&n)) }

// AddOverflow returns i + n, wrapping on overflow, and whether the true sum
// was outside the range of an I256.
func (i I256) AddOverflow(n I256) (v I256, overflow bool) {
	overflow = arith.iaddc(&v, &i, &n)
	return v, overflow
}

// Sub returns i - n, wrapping on overflow.
func (i I256) Sub(n I256) (v I256) {
	arith.sub3((*U256)(&v), (*U256)(&i), (*U256)(&n))
	return v
}

// SubAssign sets i to i - n, wrapping on overflow.
func (i *I256) SubAssign(n I256) { arith.sub2((*U256)(i), (*U256)(&n)) }

// SubOverflow returns i - n, wrapping on overflow, and whether the true
// difference was outside the range of an I256.
func (i I256) SubOverflow(n I256) (v I256, overflow bool) {
	overflow = arith.isubc(&v, &i, &n)
	return v, overflow
}

// Mul returns i * n, wrapping on overflow.
func (i I256) Mul(n I256) (v I256) {
	arith.imul3(&v, &i, &n)
	return v
}

// MulAssign sets i to i * n, wrapping on overflow.
func (i *I256) MulAssign(n I256) { arith.imul2(i, &n) }

// MulOverflow returns i * n, wrapping on overflow, and whether the true
// product was outside the range of an I256.
func (i I256) MulOverflow(n I256) (v I256, overflow bool) {
	overflow = arith.imulc(&v, &i, &n)
	return v, overflow
}

// Pow returns i**exp, wrapping on overflow.
func (i I256) Pow(exp uint) I256 {
	return I256(U256(i).Pow(exp))
}

// Quo returns the quotient i/by for by != 0, truncated towards zero. If
// by == 0, a division-by-zero run-time panic occurs. MinI256.Quo(-1) wraps to
// MinI256.
func (i I256) Quo(by I256) (q I256) {
	idivmod(&q, nil, &i, &by)
	return q
}

// Rem returns the remainder of i%by for by != 0; the result takes the sign of
// i. If by == 0, a division-by-zero run-time panic occurs.
func (i I256) Rem(by I256) (r I256) {
	idivmod(nil, &r, &i, &by)
	return r
}

// QuoRem returns the quotient q and remainder r for by != 0. If by == 0, a
// division-by-zero run-time panic occurs.
//
// QuoRem implements T-division and modulus (like Go):
//
//	q = x/y      with the result truncated to zero
//	r = x - y*q
//
func (i I256) QuoRem(by I256) (q, r I256) {
	idivmod(&q, &r, &i, &by)
	return q, r
}

func (i *I256) QuoAssign(by I256) { *i = i.Quo(by) }
func (i *I256) RemAssign(by I256) { *i = i.Rem(by) }

func (i I256) And(n I256) I256 { return I256(U256(i).And(U256(n))) }
func (i I256) Or(n I256) I256  { return I256(U256(i).Or(U256(n))) }
func (i I256) Xor(n I256) I256 { return I256(U256(i).Xor(U256(n))) }
func (i I256) Not() I256       { return I256(U256(i).Not()) }

func (i I256) AndNot(n I256) I256 { return I256(U256(i).AndNot(U256(n))) }

// RotateLeft and RotateRight operate on the two's complement bit pattern;
// n is reduced modulo 256.
func (i I256) RotateLeft(n uint) I256  { return I256(U256(i).RotateLeft(n)) }
func (i I256) RotateRight(n uint) I256 { return I256(U256(i).RotateRight(n)) }

// Bit returns the i'th bit of the two's complement representation of i. n
// must be less than 256.
func (i I256) Bit(n uint) uint { return U256(i).Bit(n) }

// SetBit returns i with the n'th bit of its two's complement representation
// set to b (0 or 1).
func (i I256) SetBit(n uint, b uint) I256 { return I256(U256(i).SetBit(n, b)) }

// BitLen returns the number of bits required to represent the magnitude of i.
func (i I256) BitLen() int { return i.AbsU256().BitLen() }

func (i I256) CountOnes() int { return U256(i).CountOnes() }

// Lsh returns i << n. n must be less than 256.
func (i I256) Lsh(n uint) I256 { return I256(U256(i).Lsh(n)) }

// Rsh returns i >> n, an arithmetic shift that preserves the sign. n must be
// less than 256.
func (i I256) Rsh(n uint) (v I256) {
	arith.ashr3(&v, &i, checkShift(n))
	return v
}

func (i *I256) LshAssign(n uint) { arith.shl2((*U256)(i), checkShift(n)) }
func (i *I256) RshAssign(n uint) { arith.ashr2(i, checkShift(n)) }

func (i I256) LeadingZeros() uint  { return U256(i).LeadingZeros() }
func (i I256) TrailingZeros() uint { return U256(i).TrailingZeros() }

// Cmp compares i to n and returns:
//
//	< 0 if i <  n
//	  0 if i == n
//	> 0 if i >  n
//
func (i I256) Cmp(n I256) int {
	if i == n {
		return 0
	}
	in, nn := i.isNeg(), n.isNeg()
	if in != nn {
		if in {
			return -1
		}
		return 1
	}
	// Same sign: two's complement orders like the unsigned bits.
	return U256(i).Cmp(U256(n))
}

func (i I256) Equal(n I256) bool            { return i == n }
func (i I256) GreaterThan(n I256) bool      { return i.Cmp(n) > 0 }
func (i I256) GreaterOrEqualTo(n I256) bool { return i.Cmp(n) >= 0 }
func (i I256) LessThan(n I256) bool         { return i.Cmp(n) < 0 }
func (i I256) LessOrEqualTo(n I256) bool    { return i.Cmp(n) <= 0 }
