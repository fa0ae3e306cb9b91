package num

import (
	"fmt"
	"math/big"
)

// I128FromRaw is the complement to I128.Raw(); it creates an I128 from two
// uint64s representing the hi and lo bits.
func I128FromRaw(hi, lo uint64) I128 { return I128{hi: hi, lo: lo} }

func I128From64(v int64) I128 {
	var hi uint64
	if v < 0 {
		hi = maxUint64
	}
	return I128{hi: hi, lo: uint64(v)}
}

func I128From32(v int32) I128 { return I128From64(int64(v)) }

func (i I128) IsZero() bool { return i == zeroI128 }

// Raw returns access to the I128 as a pair of uint64s. See I128FromRaw() for
// the counterpart.
func (i I128) Raw() (hi uint64, lo uint64) { return i.hi, i.lo }

// AsU128 performs a direct cast of an I128 to a U128. Negative numbers
// become values > MaxI128.
func (i I128) AsU128() U128 { return U128{hi: i.hi, lo: i.lo} }

func (i I128) String() string { return I256From128(i).String() }

func (i I128) Format(s fmt.State, c rune) { I256From128(i).Format(s, c) }

func (i I128) AsBigInt() *big.Int { return I256From128(i).AsBigInt() }

func (i I128) Sign() int {
	if i == zeroI128 {
		return 0
	} else if i.hi&signBit == 0 {
		return 1
	}
	return -1
}

// Neg returns -i. -MinI128 overflows back to MinI128.
func (i I128) Neg() (v I128) {
	v.hi = ^i.hi
	v.lo = ^i.lo + 1
	if v.lo == 0 { // carry
		v.hi++
	}
	return v
}

// Abs returns the absolute value of i. MinI128.Abs() is MinI128.
func (i I128) Abs() I128 {
	if i.hi&signBit != 0 {
		return i.Neg()
	}
	return i
}

// Cmp compares i to n and returns:
//
//	< 0 if i <  n
//	  0 if i == n
//	> 0 if i >  n
//
func (i I128) Cmp(n I128) int {
	if i.hi == n.hi && i.lo == n.lo {
		return 0
	} else if i.hi&signBit == n.hi&signBit {
		if i.hi > n.hi || (i.hi == n.hi && i.lo > n.lo) {
			return 1
		}
	} else if i.hi&signBit == 0 {
		return 1
	}
	return -1
}

func (i I128) Equal(n I128) bool { return i.hi == n.hi && i.lo == n.lo }

func (i I128) LessThan(n I128) bool { return i.Cmp(n) < 0 }

func (i I128) GreaterThan(n I128) bool { return i.Cmp(n) > 0 }
