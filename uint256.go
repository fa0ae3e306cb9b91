package num

import (
	"github.com/holiman/uint256"
)

// U256FromUint256 converts from the limb representation used by
// github.com/holiman/uint256. A nil v is treated as zero.
func U256FromUint256(v *uint256.Int) U256 {
	if v == nil {
		return zeroU256
	}
	return U256FromRaw(v[3], v[2], v[1], v[0])
}

// IntoUint256 copies u into v, allowing you to retain and recycle memory.
func (u U256) IntoUint256(v *uint256.Int) {
	v[0], v[1], v[2], v[3] = u.lo.lo, u.lo.hi, u.hi.lo, u.hi.hi
}

// AsUint256 allocates a new uint256.Int and copies u into it.
func (u U256) AsUint256() *uint256.Int {
	v := new(uint256.Int)
	u.IntoUint256(v)
	return v
}

// I256FromUint256 interprets v as a two's complement value, the way the
// signed operations of github.com/holiman/uint256 (SDiv, SMod, SRsh, Slt) do.
func I256FromUint256(v *uint256.Int) I256 { return I256(U256FromUint256(v)) }

func (i I256) IntoUint256(v *uint256.Int) { U256(i).IntoUint256(v) }
