//go:build armbe || arm64be || m68k || mips || mips64 || mips64p32 || ppc || ppc64 || s390 || s390x || shbe || sparc || sparc64

package num

// U128 is an unsigned 128-bit machine word.
type U128 struct {
	hi, lo uint64
}

// I128 is a signed (two's complement) 128-bit machine word.
type I128 struct {
	hi, lo uint64
}

// U256 is an unsigned 256-bit integer stored as a pair of 128-bit words.
type U256 struct {
	hi, lo U128
}

// I256 is a signed 256-bit integer. It shares the layout of U256; the high
// word carries the two's complement sign bit.
type I256 struct {
	hi, lo U128
}

const nativeLittleEndian = false
