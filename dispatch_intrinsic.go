//go:build !num_portable

package num

const backendName = "intrinsic"

// arith is the backend used by the value types. Build with '-tags
// num_portable' to use the reference implementation instead.
var arith intrinsicBackend
