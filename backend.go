package num

// arithmetic is the primitive operation set that the value types are built
// on. There are two implementations: portableBackend is the reference, and
// intrinsicBackend uses math/bits, which the compiler lowers to single
// instructions on most targets. The one used by U256 and I256 is selected at
// build time (see dispatch_*.go); both must produce bit-identical results,
// including overflow flags.
//
// Shift counts passed to the shift primitives must be less than 256; the
// public API enforces this. Rotations accept any count, reduced modulo 256.
//
// All primitives read every operand before writing r, so r may alias a or b.
type arithmetic interface {
	add2(r, a *U256)
	add3(r, a, b *U256)
	uaddc(r, a, b *U256) bool
	iaddc(r, a, b *I256) bool

	sub2(r, a *U256)
	sub3(r, a, b *U256)
	usubc(r, a, b *U256) bool
	isubc(r, a, b *I256) bool

	umul2(r, a *U256)
	umul3(r, a, b *U256)
	umulc(r, a, b *U256) bool
	imul2(r, a *I256)
	imul3(r, a, b *I256)
	imulc(r, a, b *I256) bool

	shl2(r *U256, n uint32)
	shl3(r, a *U256, n uint32)
	ashr2(r *I256, n uint32)
	ashr3(r, a *I256, n uint32)
	lshr2(r *U256, n uint32)
	lshr3(r, a *U256, n uint32)

	rotateLeft(r, a *U256, n uint32)
	rotateRight(r, a *U256, n uint32)

	ctlz(a *U256) uint32
	cttz(a *U256) uint32
}

var (
	_ arithmetic = portableBackend{}
	_ arithmetic = intrinsicBackend{}
)

// BackendName reports which arithmetic implementation this build uses,
// either "intrinsic" or "portable".
func BackendName() string { return backendName }

// imulcWith implements the signed overflow-checked multiply in terms of a
// backend's unsigned primitives. The wrapped two's complement product has the
// same bits as the unsigned product of the operands, so only the overflow
// flag needs the magnitudes.
func imulcWith(m arithmetic, r, a, b *I256) bool {
	neg := (a.hi.hi^b.hi.hi)&signBit != 0
	ua, ub := a.AbsU256(), b.AbsU256()

	var p U256
	overflow := m.umulc(&p, &ua, &ub)
	if !overflow && !p.IsZero() {
		if neg {
			// The magnitude of MinI256 is the largest negative product.
			overflow = p.GreaterThan(minI256Abs)
		} else {
			overflow = p.hi.hi&signBit != 0
		}
	}

	ua, ub = U256(*a), U256(*b)
	m.umul3((*U256)(r), &ua, &ub)
	return overflow
}

// The rotations are composed from two shifts and an or.
func rotateLeftWith(m arithmetic, r, a *U256, n uint32) {
	n &= 255
	if n == 0 {
		*r = *a
		return
	}
	var hi, lo U256
	m.shl3(&hi, a, n)
	m.lshr3(&lo, a, 256-n)
	r.hi, r.lo = hi.hi.Or(lo.hi), hi.lo.Or(lo.lo)
}

func rotateRightWith(m arithmetic, r, a *U256, n uint32) {
	n &= 255
	if n == 0 {
		*r = *a
		return
	}
	var hi, lo U256
	m.lshr3(&lo, a, n)
	m.shl3(&hi, a, 256-n)
	r.hi, r.lo = hi.hi.Or(lo.hi), hi.lo.Or(lo.lo)
}
