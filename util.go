package num

type RandSource interface {
	Uint64() uint64
}

// DifferenceU256 subtracts the smaller of a and b from the larger.
func DifferenceU256(a, b U256) U256 {
	if a.LessThan(b) {
		return b.Sub(a)
	}
	return a.Sub(b)
}

func LargerU256(a, b U256) U256 {
	if b.GreaterThan(a) {
		return b
	}
	return a
}

func SmallerU256(a, b U256) U256 {
	if b.LessThan(a) {
		return b
	}
	return a
}

// DifferenceI256 subtracts the smaller of a and b from the larger. The result
// is unsigned as the distance between MinI256 and MaxI256 does not fit in an
// I256.
func DifferenceI256(a, b I256) U256 {
	if a.LessThan(b) {
		return U256(b).Sub(U256(a))
	}
	return U256(a).Sub(U256(b))
}

func LargerI256(a, b I256) I256 {
	if b.GreaterThan(a) {
		return b
	}
	return a
}

func SmallerI256(a, b I256) I256 {
	if b.LessThan(a) {
		return b
	}
	return a
}
