package num

// udivmod computes a/b, storing the quotient in q and the remainder in r.
// Either of q or r may be nil if the caller does not need it. q and r may
// alias a or b.
func udivmod(q, r *U256, a, b *U256) {
	if b.IsZero() {
		panic("num: division by zero")
	}

	var quo, rem U256

	switch {
	case a.LessThan(*b):
		rem = *a

	case b.hi.IsZero() && b.lo.hi == 0:
		// Divisor fits in a single word: chain word divisions down the limbs.
		quo, rem.lo.lo = quorem256by64(a, b.lo.lo)

	case a.hi.IsZero():
		// b <= a, so both fit in the low word.
		quo.lo, rem.lo = a.lo.QuoRem(b.lo)

	default:
		quo, rem = quorem256bin(*a, *b)
	}

	if q != nil {
		*q = quo
	}
	if r != nil {
		*r = rem
	}
}

// idivmod computes the truncated quotient and remainder of a/b. The quotient
// is negative if exactly one operand is; the remainder takes the sign of a.
func idivmod(q, r *I256, a, b *I256) {
	qneg := a.isNeg() != b.isNeg()
	rneg := a.isNeg()

	ua, ub := a.AbsU256(), b.AbsU256()

	var uq, ur U256
	udivmod(&uq, &ur, &ua, &ub)

	if q != nil {
		*q = I256(uq)
		if qneg {
			*q = q.Neg()
		}
	}
	if r != nil {
		*r = I256(ur)
		if rneg {
			*r = r.Neg()
		}
	}
}

func quorem256by64(u *U256, by uint64) (q U256, r uint64) {
	x := limbs(u)
	var z [4]uint64
	for i := 3; i >= 0; i-- {
		z[i], r = quorem128by64(r, x[i], by)
	}
	setLimbs(&q, z[0], z[1], z[2], z[3])
	return q, r
}

// quorem256bin is shift-subtract long division; u must be >= by. It runs once
// per bit of difference between the two operands' lengths, so at most 256
// times.
func quorem256bin(u, by U256) (q, r U256) {
	shift := arith.ctlz(&by) - arith.ctlz(&u)
	arith.shl2(&by, shift)

	for {
		arith.shl2(&q, 1)

		if !u.LessThan(by) {
			arith.sub2(&u, &by)
			q.lo.lo |= 1
		}

		arith.lshr2(&by, 1)

		if shift == 0 {
			break
		}
		shift--
	}

	return q, u
}
