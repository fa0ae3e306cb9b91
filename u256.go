package num

import (
	"math/big"
	"math/bits"
)

// U256FromWords creates a U256 from its high and low 128-bit words. See
// U256.IntoWords() for the counterpart.
func U256FromWords(hi, lo U128) U256 { return U256{hi: hi, lo: lo} }

func U256From128(v U128) U256  { return U256{lo: v} }
func U256From64(v uint64) U256 { return U256{lo: U128{lo: v}} }
func U256From32(v uint32) U256 { return U256{lo: U128{lo: uint64(v)}} }

// U256FromRaw creates a U256 from four uint64s, most significant first. See
// U256.Raw() for the counterpart.
func U256FromRaw(hi, hm, lm, lo uint64) U256 {
	return U256{hi: U128{hi: hi, lo: hm}, lo: U128{hi: lm, lo: lo}}
}

// U256FromBigInt creates a U256 from a big.Int. Overflow truncates to MaxU256
// and sets accurate to 'false'.
func U256FromBigInt(v *big.Int) (out U256, accurate bool) {
	if v.Sign() < 0 {
		return out, false
	}

	words := v.Bits()

	switch intSize {
	case 64:
		if len(words) > 4 {
			return MaxU256, false
		}
		var l [4]uint64
		for i, w := range words {
			l[i] = uint64(w)
		}
		return U256FromRaw(l[3], l[2], l[1], l[0]), true

	case 32:
		if len(words) > 8 {
			return MaxU256, false
		}
		var l [4]uint64
		for i, w := range words {
			l[i/2] |= uint64(w) << (32 * uint(i%2))
		}
		return U256FromRaw(l[3], l[2], l[1], l[0]), true

	default:
		panic("num: unsupported bit size")
	}
}

// RandU256 generates an unsigned 256-bit random integer from an external source.
func RandU256(source RandSource) (out U256) {
	return U256FromRaw(source.Uint64(), source.Uint64(), source.Uint64(), source.Uint64())
}

// IntoWords splits u into its high and low 128-bit words.
func (u U256) IntoWords() (hi, lo U128) { return u.hi, u.lo }

// Low returns the least significant 128-bit word, regardless of how the words
// are stored.
func (u U256) Low() U128 { return u.lo }

// High returns the most significant 128-bit word.
func (u U256) High() U128 { return u.hi }

// Raw returns access to the U256 as four uint64s, most significant first.
func (u U256) Raw() (hi, hm, lm, lo uint64) { return u.hi.hi, u.hi.lo, u.lo.hi, u.lo.lo }

func (u U256) IsZero() bool { return u == zeroU256 }

func (u U256) IntoBigInt(b *big.Int) {
	switch intSize {
	case 64:
		bits := b.Bits()
		if ln := len(bits); ln < 4 {
			bits = append(bits, make([]big.Word, 4-ln)...)
		}
		bits = bits[:4]
		bits[0] = big.Word(u.lo.lo)
		bits[1] = big.Word(u.lo.hi)
		bits[2] = big.Word(u.hi.lo)
		bits[3] = big.Word(u.hi.hi)
		b.SetBits(bits)

	case 32:
		bits := b.Bits()
		if ln := len(bits); ln < 8 {
			bits = append(bits, make([]big.Word, 8-ln)...)
		}
		bits = bits[:8]
		for i, l := range [4]uint64{u.lo.lo, u.lo.hi, u.hi.lo, u.hi.hi} {
			bits[i*2] = big.Word(l & 0xFFFFFFFF)
			bits[i*2+1] = big.Word(l >> 32)
		}
		b.SetBits(bits)

	default:
		panic("num: unsupported bit size")
	}
}

func (u U256) AsBigInt() (b *big.Int) {
	var v big.Int
	u.IntoBigInt(&v)
	return &v
}

// AsI256 performs a direct cast of a U256 to an I256, which will interpret it
// as a two's complement value.
func (u U256) AsI256() I256 { return I256(u) }

// IsI256 reports whether u can be represented in an I256.
func (u U256) IsI256() bool { return u.hi.hi&signBit == 0 }

// AsU128 truncates the U256 to its low word.
func (u U256) AsU128() U128 { return u.lo }

// IsU128 reports whether u can be represented as a U128.
func (u U256) IsU128() bool { return u.hi.IsZero() }

// AsUint64 truncates the U256 to fit in a uint64. Values outside the range
// will over/underflow. See IsUint64() if you want to check before you convert.
func (u U256) AsUint64() uint64 { return u.lo.lo }

// IsUint64 reports whether u can be represented as a uint64.
func (u U256) IsUint64() bool { return u.hi.IsZero() && u.lo.hi == 0 }

func (u U256) Inc() U256 {
	arith.add2(&u, &oneU256)
	return u
}

func (u U256) Dec() U256 {
	arith.sub2(&u, &oneU256)
	return u
}

// Add returns u + n, wrapping on overflow.
func (u U256) Add(n U256) (v U256) {
	arith.add3(&v, &u, &n)
	return v
}

// AddAssign sets u to u + n, wrapping on overflow.
func (u *U256) AddAssign(n U256) { arith.add2(u, &n) }

// AddOverflow returns u + n, wrapping on overflow, and whether the sum did
// not fit in 256 bits.
func (u U256) AddOverflow(n U256) (v U256, overflow bool) {
	overflow = arith.uaddc(&v, &u, &n)
	return v, overflow
}

// Sub returns u - n, wrapping on underflow.
func (u U256) Sub(n U256) (v U256) {
	arith.sub3(&v, &u, &n)
	return v
}

// SubAssign sets u to u - n, wrapping on underflow.
func (u *U256) SubAssign(n U256) { arith.sub2(u, &n) }

// SubOverflow returns u - n, wrapping on underflow, and whether n was
// greater than u.
func (u U256) SubOverflow(n U256) (v U256, overflow bool) {
	overflow = arith.usubc(&v, &u, &n)
	return v, overflow
}

// Mul returns the low 256 bits of u * n.
func (u U256) Mul(n U256) (v U256) {
	arith.umul3(&v, &u, &n)
	return v
}

// MulAssign sets u to the low 256 bits of u * n.
func (u *U256) MulAssign(n U256) { arith.umul2(u, &n) }

// MulOverflow returns the low 256 bits of u * n, and whether any of the upper
// 256 bits of the full product were set.
func (u U256) MulOverflow(n U256) (v U256, overflow bool) {
	overflow = arith.umulc(&v, &u, &n)
	return v, overflow
}

// Pow returns u**exp, wrapping on overflow.
func (u U256) Pow(exp uint) U256 {
	out := oneU256
	for exp > 0 {
		if exp&1 != 0 {
			arith.umul2(&out, &u)
		}
		exp >>= 1
		if exp > 0 {
			arith.umul2(&u, &u)
		}
	}
	return out
}

// Quo returns the quotient u/by for by != 0. If by == 0, a division-by-zero
// run-time panic occurs.
func (u U256) Quo(by U256) (q U256) {
	udivmod(&q, nil, &u, &by)
	return q
}

// Rem returns the remainder of u%by for by != 0. If by == 0, a
// division-by-zero run-time panic occurs.
func (u U256) Rem(by U256) (r U256) {
	udivmod(nil, &r, &u, &by)
	return r
}

// QuoRem returns the quotient q and remainder r for by != 0 in a single pass.
// If by == 0, a division-by-zero run-time panic occurs.
func (u U256) QuoRem(by U256) (q, r U256) {
	udivmod(&q, &r, &u, &by)
	return q, r
}

func (u *U256) QuoAssign(by U256) { *u = u.Quo(by) }
func (u *U256) RemAssign(by U256) { *u = u.Rem(by) }

func (u U256) And(n U256) U256 {
	return U256{hi: u.hi.And(n.hi), lo: u.lo.And(n.lo)}
}

func (u U256) AndNot(n U256) U256 {
	return U256{hi: u.hi.And(n.hi.Not()), lo: u.lo.And(n.lo.Not())}
}

func (u U256) Or(n U256) U256 {
	return U256{hi: u.hi.Or(n.hi), lo: u.lo.Or(n.lo)}
}

func (u U256) Xor(n U256) U256 {
	return U256{hi: u.hi.Xor(n.hi), lo: u.lo.Xor(n.lo)}
}

func (u U256) Not() U256 {
	return U256{hi: u.hi.Not(), lo: u.lo.Not()}
}

// Lsh returns u << n. n must be less than 256.
func (u U256) Lsh(n uint) (v U256) {
	arith.shl3(&v, &u, checkShift(n))
	return v
}

// Rsh returns u >> n. n must be less than 256.
func (u U256) Rsh(n uint) (v U256) {
	arith.lshr3(&v, &u, checkShift(n))
	return v
}

func (u *U256) LshAssign(n uint) { arith.shl2(u, checkShift(n)) }
func (u *U256) RshAssign(n uint) { arith.lshr2(u, checkShift(n)) }

// RotateLeft returns u rotated left by n bits, modulo 256.
func (u U256) RotateLeft(n uint) (v U256) {
	arith.rotateLeft(&v, &u, uint32(n&255))
	return v
}

// RotateRight returns u rotated right by n bits, modulo 256.
func (u U256) RotateRight(n uint) (v U256) {
	arith.rotateRight(&v, &u, uint32(n&255))
	return v
}

// LeadingZeros returns the number of leading zero bits in u; the result is
// 256 for u == 0.
func (u U256) LeadingZeros() uint { return uint(arith.ctlz(&u)) }

// TrailingZeros returns the number of trailing zero bits in u; the result is
// 256 for u == 0.
func (u U256) TrailingZeros() uint { return uint(arith.cttz(&u)) }

// BitLen returns the minimum number of bits required to represent u.
func (u U256) BitLen() int { return 256 - int(u.LeadingZeros()) }

func (u U256) CountOnes() int {
	return bits.OnesCount64(u.hi.hi) + bits.OnesCount64(u.hi.lo) +
		bits.OnesCount64(u.lo.hi) + bits.OnesCount64(u.lo.lo)
}

// Bit returns the value of the i'th bit of u. i must be less than 256.
func (u U256) Bit(i uint) uint {
	return uint(u.Rsh(i).lo.lo & 1)
}

// SetBit returns u with the i'th bit set to b (0 or 1). i must be less than
// 256.
func (u U256) SetBit(i uint, b uint) U256 {
	mask := oneU256.Lsh(i)
	if b == 0 {
		return u.AndNot(mask)
	} else if b == 1 {
		return u.Or(mask)
	}
	panic("num: bit value not 0 or 1")
}

func (u U256) Cmp(n U256) int {
	if c := u.hi.Cmp(n.hi); c != 0 {
		return c
	}
	return u.lo.Cmp(n.lo)
}

func (u U256) Equal(n U256) bool            { return u == n }
func (u U256) GreaterThan(n U256) bool      { return u.Cmp(n) > 0 }
func (u U256) GreaterOrEqualTo(n U256) bool { return u.Cmp(n) >= 0 }
func (u U256) LessThan(n U256) bool         { return u.Cmp(n) < 0 }
func (u U256) LessOrEqualTo(n U256) bool    { return u.Cmp(n) <= 0 }

func checkShift(n uint) uint32 {
	if n >= 256 {
		panic("num: shift count out of range")
	}
	return uint32(n)
}
