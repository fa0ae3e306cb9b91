package num

// Word-level helpers for the portable backend. Nothing in here may use
// math/bits; these are the reference algorithms the intrinsic backend is
// checked against.

func mul64to128(u, v uint64) (hi, lo uint64) {
	var (
		u1 = (u & 0xffffffff)
		v1 = (v & 0xffffffff)
		t  = (u1 * v1)
		w3 = (t & 0xffffffff)
		k  = (t >> 32)
	)

	u >>= 32
	t = (u * v1) + k
	k = (t & 0xffffffff)
	var w1 = (t >> 32)

	v >>= 32
	t = (u1 * v) + k
	k = (t >> 32)

	return (u * v) + w1 + k,
		(t << 32) + w3
}

func mul128to256(n, by U128) (hi, lo U128) {
	hi.hi, hi.lo = mul64to128(n.hi, by.hi)
	lo.hi, lo.lo = mul64to128(n.lo, by.lo)

	var t U128
	t.hi, t.lo = mul64to128(n.hi, by.lo)

	lo.hi += t.lo
	if lo.hi < t.lo { // if lo.Hi overflowed
		hi = hi.Inc()
	}

	hi.lo += t.hi
	if hi.lo < t.hi { // if hi.Lo overflowed
		hi.hi++
	}

	t.hi, t.lo = mul64to128(n.lo, by.hi)

	lo.hi += t.lo
	if lo.hi < t.lo { // if L.Hi overflowed
		hi = hi.Inc()
	}

	hi.lo += t.hi
	if hi.lo < t.hi { // if H.Lo overflowed
		hi.hi++
	}

	return hi, lo
}

// nlz64 counts leading zeros by binary search; Hacker's Delight, fig. 5-6.
func nlz64(x uint64) uint {
	if x == 0 {
		return 64
	}
	var n uint
	if x <= 0x00000000FFFFFFFF {
		n += 32
		x <<= 32
	}
	if x <= 0x0000FFFFFFFFFFFF {
		n += 16
		x <<= 16
	}
	if x <= 0x00FFFFFFFFFFFFFF {
		n += 8
		x <<= 8
	}
	if x <= 0x0FFFFFFFFFFFFFFF {
		n += 4
		x <<= 4
	}
	if x <= 0x3FFFFFFFFFFFFFFF {
		n += 2
		x <<= 2
	}
	if x <= 0x7FFFFFFFFFFFFFFF {
		n++
	}
	return n
}

// ntz64 counts trailing zeros; Hacker's Delight, fig. 5-14.
func ntz64(x uint64) uint {
	if x == 0 {
		return 64
	}
	var n uint = 1
	if x&0x00000000FFFFFFFF == 0 {
		n += 32
		x >>= 32
	}
	if x&0x000000000000FFFF == 0 {
		n += 16
		x >>= 16
	}
	if x&0x00000000000000FF == 0 {
		n += 8
		x >>= 8
	}
	if x&0x000000000000000F == 0 {
		n += 4
		x >>= 4
	}
	if x&0x0000000000000003 == 0 {
		n += 2
		x >>= 2
	}
	return n - uint(x&1)
}
