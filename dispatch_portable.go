//go:build num_portable

package num

const backendName = "portable"

var arith portableBackend
