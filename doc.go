/*
Package num provides uint256 (U256) and int256 (I256) types, implementing
most of the big.Int API, along with the uint128 (U128) and int128 (I128) words
they are built from.

U256 and I256 are value types; all operations return new values. Add, Sub and
Mul additionally come in an in-place form that mutates the receiver, and an
overflow-checked form that returns the wrapped result along with a flag:

	u := MaxU256
	u.AddAssign(U256From64(1)) // u == 0
	v, overflow := MaxU256.AddOverflow(U256From64(1))
	// v == 0, overflow == true

Simple example:

	u1 := U256From64(math.MaxUint64)
	u2 := U256From64(math.MaxUint64)
	fmt.Println(u1.Mul(u2))
	// Output: 340282366920938463426481119284349108225

U256 and I256 can be created from a variety of sources:

	U256FromRaw(hi, hm, lm, lo uint64) U256
	U256FromWords(hi, lo U128) U256
	U256From128(v U128) U256
	U256From64(v uint64) U256
	U256From32(v uint32) U256
	ParseU256(s string, base int) (U256, error)
	U256FromString(s string) (U256, error)
	U256FromHexString(s string) (U256, error)
	U256FromBigInt(v *big.Int) (out U256, accurate bool)
	U256FromFloat64(f float64) (out U256, inRange bool)
	U256FromBEBytes(b [32]byte) U256
	U256FromLEBytes(b [32]byte) U256
	U256FromCompactBytes(b []byte) (U256, error)
	U256FromUint256(v *uint256.Int) U256

Shifts by 256 or more, division by zero and a base outside [2, 36] are
programming errors and panic. Malformed input is reported as an error: parse
failures are a *ParseError wrapping one of ErrEmpty, ErrInvalidDigit,
ErrPosOverflow or ErrNegOverflow.

The arithmetic primitives have two implementations. The default uses
math/bits; building with the num_portable tag selects a reference
implementation built only from 128-bit word operations. BackendName reports
which one is in use.

U256 and I256 support the following formatting and marshalling interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.BinaryMarshaler
	- encoding.BinaryUnmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler

*/
package num
