package num

import (
	"math/big"
)

const (
	maxUint64 = 1<<64 - 1
	maxInt64  = 1<<63 - 1

	signBit  = 0x8000000000000000
	signMask = 0x7FFFFFFFFFFFFFFF

	intSize = 32 << (^uint(0) >> 63)
)

var (
	MaxU128 = U128{hi: maxUint64, lo: maxUint64}
	MaxI128 = I128{hi: signMask, lo: maxUint64}
	MinI128 = I128{hi: signBit, lo: 0}

	MaxU256 = U256{hi: MaxU128, lo: MaxU128}
	MaxI256 = I256{hi: U128{hi: signMask, lo: maxUint64}, lo: MaxU128}
	MinI256 = I256{hi: U128{hi: signBit}}

	zeroU128 U128
	zeroI128 I128
	zeroU256 U256
	zeroI256 I256

	oneU256 = U256{lo: U128{lo: 1}}

	big0 = new(big.Int).SetInt64(0)
	big1 = new(big.Int).SetInt64(1)

	maxBigUint64  = new(big.Int).SetUint64(maxUint64)
	maxBigU128, _ = new(big.Int).SetString("340282366920938463463374607431768211455", 10)
	maxBigU256, _ = new(big.Int).SetString("115792089237316195423570985008687907853269984665640564039457584007913129639935", 10)

	minBigI256, _ = new(big.Int).SetString("-57896044618658097711785492504343953926634992332820282019728792003956564819968", 10)
	maxBigI256, _ = new(big.Int).SetString("57896044618658097711785492504343953926634992332820282019728792003956564819967", 10)

	// wrapBigU256 is 1 << 256, used to simulate over/underflow:
	wrapBigU256 = new(big.Int).Lsh(big1, 256)
)
