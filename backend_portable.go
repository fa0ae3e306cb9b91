package num

// portableBackend is the reference implementation of the arithmetic
// primitives. It is built entirely out of the 128-bit word operations with
// comparison-based carry detection.
type portableBackend struct{}

func (p portableBackend) add2(r, a *U256) { p.add3(r, r, a) }

func (portableBackend) add3(r, a, b *U256) {
	lo, c := a.lo.AddCarry(b.lo, 0)
	hi, _ := a.hi.AddCarry(b.hi, c)
	r.hi, r.lo = hi, lo
}

func (portableBackend) uaddc(r, a, b *U256) bool {
	lo, c := a.lo.AddCarry(b.lo, 0)
	hi, c := a.hi.AddCarry(b.hi, c)
	r.hi, r.lo = hi, lo
	return c != 0
}

func (portableBackend) iaddc(r, a, b *I256) bool {
	lo, c := a.lo.AddCarry(b.lo, 0)
	hi, _ := a.hi.AddCarry(b.hi, c)

	// Operands with the same sign that produce a result of the other sign.
	overflow := (^(a.hi.hi^b.hi.hi)&(a.hi.hi^hi.hi))&signBit != 0
	r.hi, r.lo = hi, lo
	return overflow
}

func (p portableBackend) sub2(r, a *U256) { p.sub3(r, r, a) }

func (portableBackend) sub3(r, a, b *U256) {
	lo, c := a.lo.SubBorrow(b.lo, 0)
	hi, _ := a.hi.SubBorrow(b.hi, c)
	r.hi, r.lo = hi, lo
}

func (portableBackend) usubc(r, a, b *U256) bool {
	lo, c := a.lo.SubBorrow(b.lo, 0)
	hi, c := a.hi.SubBorrow(b.hi, c)
	r.hi, r.lo = hi, lo
	return c != 0
}

func (portableBackend) isubc(r, a, b *I256) bool {
	lo, c := a.lo.SubBorrow(b.lo, 0)
	hi, _ := a.hi.SubBorrow(b.hi, c)

	// Operands with different signs where the result takes the sign of b.
	overflow := ((a.hi.hi^b.hi.hi)&(a.hi.hi^hi.hi))&signBit != 0
	r.hi, r.lo = hi, lo
	return overflow
}

func (p portableBackend) umul2(r, a *U256) { p.umul3(r, r, a) }

func (portableBackend) umul3(r, a, b *U256) {
	hi, lo := mul128to256(a.lo, b.lo)
	hi = hi.Add(a.lo.Mul(b.hi)).Add(a.hi.Mul(b.lo))
	r.hi, r.lo = hi, lo
}

func (portableBackend) umulc(r, a, b *U256) bool {
	llHi, llLo := mul128to256(a.lo, b.lo)
	lhHi, lhLo := mul128to256(a.lo, b.hi)
	hlHi, hlLo := mul128to256(a.hi, b.lo)

	hi, c1 := llHi.AddCarry(lhLo, 0)
	hi, c2 := hi.AddCarry(hlLo, 0)

	// Every term that lands in the upper 256 bits of the 512-bit product:
	overflow := c1|c2 != 0 ||
		!lhHi.IsZero() ||
		!hlHi.IsZero() ||
		(!a.hi.IsZero() && !b.hi.IsZero())

	r.hi, r.lo = hi, llLo
	return overflow
}

func (p portableBackend) imul2(r, a *I256) { p.imul3(r, r, a) }

func (p portableBackend) imul3(r, a, b *I256) {
	p.umul3((*U256)(r), (*U256)(a), (*U256)(b))
}

func (p portableBackend) imulc(r, a, b *I256) bool { return imulcWith(p, r, a, b) }

func (p portableBackend) shl2(r *U256, n uint32) { p.shl3(r, r, n) }

func (portableBackend) shl3(r, a *U256, n uint32) {
	s := uint(n)
	if s == 0 {
		*r = *a
	} else if s < 128 {
		r.hi, r.lo = a.hi.Lsh(s).Or(a.lo.Rsh(128-s)), a.lo.Lsh(s)
	} else {
		r.hi, r.lo = a.lo.Lsh(s-128), U128{}
	}
}

func (p portableBackend) lshr2(r *U256, n uint32) { p.lshr3(r, r, n) }

func (portableBackend) lshr3(r, a *U256, n uint32) {
	s := uint(n)
	if s == 0 {
		*r = *a
	} else if s < 128 {
		r.hi, r.lo = a.hi.Rsh(s), a.lo.Rsh(s).Or(a.hi.Lsh(128-s))
	} else {
		r.hi, r.lo = U128{}, a.hi.Rsh(s-128)
	}
}

func (p portableBackend) ashr2(r *I256, n uint32) { p.ashr3(r, r, n) }

func (portableBackend) ashr3(r, a *I256, n uint32) {
	s := uint(n)
	if s == 0 {
		*r = *a
	} else if s < 128 {
		r.hi, r.lo = ashr128(a.hi, s), a.lo.Rsh(s).Or(a.hi.Lsh(128-s))
	} else {
		var fill U128
		if a.hi.hi&signBit != 0 {
			fill = MaxU128
		}
		r.hi, r.lo = fill, ashr128(a.hi, s-128)
	}
}

// ashr128 shifts a 128-bit word right by n < 128, filling with the sign bit.
func ashr128(w U128, n uint) U128 {
	if n == 0 {
		return w
	}
	out := w.Rsh(n)
	if w.hi&signBit != 0 {
		out = out.Or(MaxU128.Lsh(128 - n))
	}
	return out
}

func (p portableBackend) rotateLeft(r, a *U256, n uint32)  { rotateLeftWith(p, r, a, n) }
func (p portableBackend) rotateRight(r, a *U256, n uint32) { rotateRightWith(p, r, a, n) }

func (portableBackend) ctlz(a *U256) uint32 {
	if !a.hi.IsZero() {
		return uint32(nlz128(a.hi))
	}
	return uint32(nlz128(a.lo)) + 128
}

func (portableBackend) cttz(a *U256) uint32 {
	if !a.lo.IsZero() {
		return uint32(ntz128(a.lo))
	}
	return uint32(ntz128(a.hi)) + 128
}

func nlz128(w U128) uint {
	if w.hi != 0 {
		return nlz64(w.hi)
	}
	return nlz64(w.lo) + 64
}

func ntz128(w U128) uint {
	if w.lo != 0 {
		return ntz64(w.lo)
	}
	return ntz64(w.hi) + 64
}
