package num

import (
	"math"
)

const (
	wrapU256Float = 0x1p256
	wrapI256Float = 0x1p255
	wrapF32Float  = 0x1p128
)

// topBits returns the 64 most significant bits of u, which must have a
// BitLen of more than 64, along with the shift that was applied. The lowest
// bit is forced on if any of the discarded bits were set so that a single
// rounding of the result is correctly rounded.
func (u U256) topBits() (top uint64, shift uint) {
	shift = uint(u.BitLen() - 64)
	top = u.Rsh(shift).lo.lo
	if u.TrailingZeros() < shift {
		top |= 1
	}
	return top, shift
}

// AsFloat64 returns the float64 nearest to u, rounding half to even.
func (u U256) AsFloat64() float64 {
	if u.IsUint64() {
		return float64(u.lo.lo)
	}
	top, shift := u.topBits()
	return math.Ldexp(float64(top), int(shift))
}

// AsFloat32 returns the float32 nearest to u, rounding half to even. Values
// of 2^128 and above become +Inf.
func (u U256) AsFloat32() float32 {
	if u.IsUint64() {
		return float32(u.lo.lo)
	}
	top, shift := u.topBits()
	f := math.Ldexp(float64(float32(top)), int(shift))
	if f >= wrapF32Float {
		return float32(math.Inf(1))
	}
	return float32(f)
}

func (i I256) AsFloat64() float64 {
	f := i.AbsU256().AsFloat64()
	if i.isNeg() {
		return -f
	}
	return f
}

func (i I256) AsFloat32() float32 {
	f := i.AbsU256().AsFloat32()
	if i.isNeg() {
		return -f
	}
	return f
}

// U256FromFloat64 creates a U256 from a float64. Any fractional portion will
// be truncated towards zero. Floats outside the bounds of a U256 may be
// discarded or clamped and inRange will be set to false.
//
// NaN is treated as 0, inRange is set to false. This may change to a panic
// at some point.
func U256FromFloat64(f float64) (out U256, inRange bool) {
	switch {
	case f != f: // (f != f) == NaN
		return zeroU256, false
	case f < 0:
		return zeroU256, false
	case f < 1:
		return zeroU256, true
	case f >= wrapU256Float:
		return MaxU256, false
	}

	// f = frac * 2^exp with frac in [0.5, 1); 1 <= exp <= 256.
	frac, exp := math.Frexp(f)
	out = U256From64(uint64(math.Ldexp(frac, 64)))
	if exp >= 64 {
		arith.shl2(&out, uint32(exp-64))
	} else {
		arith.lshr2(&out, uint32(64-exp))
	}
	return out, true
}

func U256FromFloat32(f float32) (out U256, inRange bool) {
	return U256FromFloat64(float64(f))
}

// I256FromFloat64 creates an I256 from a float64. Any fractional portion will
// be truncated towards zero. Floats outside the bounds of an I256 are clamped
// to MinI256 or MaxI256 and inRange will be set to false.
//
// NaN is treated as 0, inRange is set to false.
func I256FromFloat64(f float64) (out I256, inRange bool) {
	switch {
	case f != f:
		return zeroI256, false
	case f >= wrapI256Float:
		return MaxI256, false
	case f < -wrapI256Float:
		return MinI256, false
	}

	mag, _ := U256FromFloat64(math.Abs(f))
	out = I256(mag)
	if f < 0 {
		out = out.Neg()
	}
	return out, true
}

func I256FromFloat32(f float32) (out I256, inRange bool) {
	return I256FromFloat64(float64(f))
}
