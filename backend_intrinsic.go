package num

import "math/bits"

// intrinsicBackend implements the arithmetic primitives over four 64-bit
// limbs using math/bits, which the compiler replaces with carry-flag
// instructions and full-width multiplies where the target has them.
type intrinsicBackend struct{}

// limbs returns the value as little-endian 64-bit limbs.
func limbs(a *U256) [4]uint64 {
	return [4]uint64{a.lo.lo, a.lo.hi, a.hi.lo, a.hi.hi}
}

func setLimbs(r *U256, l0, l1, l2, l3 uint64) {
	r.lo.lo, r.lo.hi, r.hi.lo, r.hi.hi = l0, l1, l2, l3
}

func (m intrinsicBackend) add2(r, a *U256) { m.add3(r, r, a) }

func (intrinsicBackend) add3(r, a, b *U256) {
	l0, c := bits.Add64(a.lo.lo, b.lo.lo, 0)
	l1, c := bits.Add64(a.lo.hi, b.lo.hi, c)
	l2, c := bits.Add64(a.hi.lo, b.hi.lo, c)
	l3, _ := bits.Add64(a.hi.hi, b.hi.hi, c)
	setLimbs(r, l0, l1, l2, l3)
}

func (intrinsicBackend) uaddc(r, a, b *U256) bool {
	l0, c := bits.Add64(a.lo.lo, b.lo.lo, 0)
	l1, c := bits.Add64(a.lo.hi, b.lo.hi, c)
	l2, c := bits.Add64(a.hi.lo, b.hi.lo, c)
	l3, c := bits.Add64(a.hi.hi, b.hi.hi, c)
	setLimbs(r, l0, l1, l2, l3)
	return c != 0
}

func (intrinsicBackend) iaddc(r, a, b *I256) bool {
	l0, c := bits.Add64(a.lo.lo, b.lo.lo, 0)
	l1, c := bits.Add64(a.lo.hi, b.lo.hi, c)
	l2, c := bits.Add64(a.hi.lo, b.hi.lo, c)
	l3, _ := bits.Add64(a.hi.hi, b.hi.hi, c)
	overflow := (^(a.hi.hi^b.hi.hi)&(a.hi.hi^l3))&signBit != 0
	setLimbs((*U256)(r), l0, l1, l2, l3)
	return overflow
}

func (m intrinsicBackend) sub2(r, a *U256) { m.sub3(r, r, a) }

func (intrinsicBackend) sub3(r, a, b *U256) {
	l0, c := bits.Sub64(a.lo.lo, b.lo.lo, 0)
	l1, c := bits.Sub64(a.lo.hi, b.lo.hi, c)
	l2, c := bits.Sub64(a.hi.lo, b.hi.lo, c)
	l3, _ := bits.Sub64(a.hi.hi, b.hi.hi, c)
	setLimbs(r, l0, l1, l2, l3)
}

func (intrinsicBackend) usubc(r, a, b *U256) bool {
	l0, c := bits.Sub64(a.lo.lo, b.lo.lo, 0)
	l1, c := bits.Sub64(a.lo.hi, b.lo.hi, c)
	l2, c := bits.Sub64(a.hi.lo, b.hi.lo, c)
	l3, c := bits.Sub64(a.hi.hi, b.hi.hi, c)
	setLimbs(r, l0, l1, l2, l3)
	return c != 0
}

func (intrinsicBackend) isubc(r, a, b *I256) bool {
	l0, c := bits.Sub64(a.lo.lo, b.lo.lo, 0)
	l1, c := bits.Sub64(a.lo.hi, b.lo.hi, c)
	l2, c := bits.Sub64(a.hi.lo, b.hi.lo, c)
	l3, _ := bits.Sub64(a.hi.hi, b.hi.hi, c)
	overflow := ((a.hi.hi^b.hi.hi)&(a.hi.hi^l3))&signBit != 0
	setLimbs((*U256)(r), l0, l1, l2, l3)
	return overflow
}

func (m intrinsicBackend) umul2(r, a *U256) { m.umul3(r, r, a) }

func (intrinsicBackend) umul3(r, a, b *U256) {
	x, y := limbs(a), limbs(b)

	var carry, res1, res2, res3 uint64
	carry, res0 := bits.Mul64(x[0], y[0])
	carry, res1 = umulHop(carry, x[1], y[0])
	carry, res2 = umulHop(carry, x[2], y[0])
	res3 = x[3]*y[0] + carry

	carry, res1 = umulHop(res1, x[0], y[1])
	carry, res2 = umulStep(res2, x[1], y[1], carry)
	res3 = res3 + x[2]*y[1] + carry

	carry, res2 = umulHop(res2, x[0], y[2])
	res3 = res3 + x[1]*y[2] + carry

	res3 = res3 + x[0]*y[3]

	setLimbs(r, res0, res1, res2, res3)
}

func (intrinsicBackend) umulc(r, a, b *U256) bool {
	x, y := limbs(a), limbs(b)
	p := umul512(&x, &y)
	setLimbs(r, p[0], p[1], p[2], p[3])
	return (p[4] | p[5] | p[6] | p[7]) != 0
}

func (m intrinsicBackend) imul2(r, a *I256) { m.imul3(r, r, a) }

func (m intrinsicBackend) imul3(r, a, b *I256) {
	m.umul3((*U256)(r), (*U256)(a), (*U256)(b))
}

func (m intrinsicBackend) imulc(r, a, b *I256) bool { return imulcWith(m, r, a, b) }

func (m intrinsicBackend) shl2(r *U256, n uint32) { m.shl3(r, r, n) }

func (intrinsicBackend) shl3(r, a *U256, n uint32) {
	x := limbs(a)
	var z [4]uint64
	w, s := int(n/64), n%64
	for i := 3; i >= w; i-- {
		z[i] = x[i-w] << s
		if s != 0 && i-w-1 >= 0 {
			z[i] |= x[i-w-1] >> (64 - s)
		}
	}
	setLimbs(r, z[0], z[1], z[2], z[3])
}

func (m intrinsicBackend) lshr2(r *U256, n uint32) { m.lshr3(r, r, n) }

func (intrinsicBackend) lshr3(r, a *U256, n uint32) {
	x := limbs(a)
	var z [4]uint64
	w, s := int(n/64), n%64
	for i := 0; i+w < 4; i++ {
		z[i] = x[i+w] >> s
		if s != 0 && i+w+1 < 4 {
			z[i] |= x[i+w+1] << (64 - s)
		}
	}
	setLimbs(r, z[0], z[1], z[2], z[3])
}

func (m intrinsicBackend) ashr2(r *I256, n uint32) { m.ashr3(r, r, n) }

func (intrinsicBackend) ashr3(r, a *I256, n uint32) {
	x := limbs((*U256)(a))
	fill := uint64(int64(x[3]) >> 63)
	z := [4]uint64{fill, fill, fill, fill}
	w, s := int(n/64), n%64
	for i := 0; i+w < 4; i++ {
		z[i] = x[i+w] >> s
		if s == 0 {
			continue
		}
		if i+w+1 < 4 {
			z[i] |= x[i+w+1] << (64 - s)
		} else {
			z[i] = uint64(int64(x[i+w]) >> s)
		}
	}
	setLimbs((*U256)(r), z[0], z[1], z[2], z[3])
}

func (m intrinsicBackend) rotateLeft(r, a *U256, n uint32)  { rotateLeftWith(m, r, a, n) }
func (m intrinsicBackend) rotateRight(r, a *U256, n uint32) { rotateRightWith(m, r, a, n) }

func (intrinsicBackend) ctlz(a *U256) uint32 {
	if a.hi.hi != 0 {
		return uint32(bits.LeadingZeros64(a.hi.hi))
	} else if a.hi.lo != 0 {
		return uint32(bits.LeadingZeros64(a.hi.lo)) + 64
	} else if a.lo.hi != 0 {
		return uint32(bits.LeadingZeros64(a.lo.hi)) + 128
	}
	return uint32(bits.LeadingZeros64(a.lo.lo)) + 192
}

func (intrinsicBackend) cttz(a *U256) uint32 {
	if a.lo.lo != 0 {
		return uint32(bits.TrailingZeros64(a.lo.lo))
	} else if a.lo.hi != 0 {
		return uint32(bits.TrailingZeros64(a.lo.hi)) + 64
	} else if a.hi.lo != 0 {
		return uint32(bits.TrailingZeros64(a.hi.lo)) + 128
	}
	return uint32(bits.TrailingZeros64(a.hi.hi)) + 192
}

// umul512 computes the full 256 x 256 -> 512 bit product.
func umul512(x, y *[4]uint64) [8]uint64 {
	var (
		res                           [8]uint64
		carry, carry4, carry5, carry6 uint64
		res1, res2, res3, res4, res5  uint64
	)

	carry, res[0] = bits.Mul64(x[0], y[0])
	carry, res1 = umulHop(carry, x[1], y[0])
	carry, res2 = umulHop(carry, x[2], y[0])
	carry4, res3 = umulHop(carry, x[3], y[0])

	carry, res[1] = umulHop(res1, x[0], y[1])
	carry, res2 = umulStep(res2, x[1], y[1], carry)
	carry, res3 = umulStep(res3, x[2], y[1], carry)
	carry5, res4 = umulStep(carry4, x[3], y[1], carry)

	carry, res[2] = umulHop(res2, x[0], y[2])
	carry, res3 = umulStep(res3, x[1], y[2], carry)
	carry, res4 = umulStep(res4, x[2], y[2], carry)
	carry6, res5 = umulStep(carry5, x[3], y[2], carry)

	carry, res[3] = umulHop(res3, x[0], y[3])
	carry, res[4] = umulStep(res4, x[1], y[3], carry)
	carry, res[5] = umulStep(res5, x[2], y[3], carry)
	res[7], res[6] = umulStep(carry6, x[3], y[3], carry)

	return res
}

// umulStep computes (hi * 2^64 + lo) = z + (x * y) + carry.
func umulStep(z, x, y, carry uint64) (hi, lo uint64) {
	hi, lo = bits.Mul64(x, y)
	lo, carry = bits.Add64(lo, carry, 0)
	hi, _ = bits.Add64(hi, 0, carry)
	lo, carry = bits.Add64(lo, z, 0)
	hi, _ = bits.Add64(hi, 0, carry)
	return hi, lo
}

// umulHop computes (hi * 2^64 + lo) = z + (x * y).
func umulHop(z, x, y uint64) (hi, lo uint64) {
	hi, lo = bits.Mul64(x, y)
	lo, carry := bits.Add64(lo, z, 0)
	hi, _ = bits.Add64(hi, 0, carry)
	return hi, lo
}
