package num

import (
	"flag"
	"fmt"
	"log"
	"math/big"
	"math/rand"
	"os"
	"strings"
	"testing"
	"time"
)

var (
	fuzzIterations  = fuzzDefaultIterations
	fuzzOpsActive   = allFuzzOps
	fuzzTypesActive = allFuzzTypes
	fuzzSeed        int64

	globalRNG *rand.Rand
)

func TestMain(m *testing.M) {
	var ops StringList
	var types StringList

	flag.IntVar(&fuzzIterations, "num.fuzziter", fuzzIterations, "Number of iterations to fuzz each op")
	flag.Int64Var(&fuzzSeed, "num.fuzzseed", fuzzSeed, "Seed the RNG (0 == current nanotime)")
	flag.Var(&ops, "num.fuzzop", "Fuzz op to run (can pass multiple times, or a comma separated list)")
	flag.Var(&types, "num.fuzztype", "Fuzz type (u256, i256) (can pass multiple)")
	flag.Parse()

	if fuzzSeed == 0 {
		fuzzSeed = time.Now().UnixNano()
	}
	globalRNG = rand.New(rand.NewSource(fuzzSeed))

	if len(ops) > 0 {
		fuzzOpsActive = nil
		for _, op := range ops {
			fuzzOpsActive = append(fuzzOpsActive, fuzzOp(op))
		}
	}

	if len(types) > 0 {
		fuzzTypesActive = nil
		for _, t := range types {
			fuzzTypesActive = append(fuzzTypesActive, fuzzType(t))
		}
	}

	log.Println("rando seed:", fuzzSeed) // classic rando!
	log.Println("active ops:", fuzzOpsActive)
	log.Println("iterations:", fuzzIterations)
	log.Println("integer sz:", intSize)
	log.Println("backend:   ", BackendName())

	code := m.Run()
	os.Exit(code)
}

func accU256FromBigInt(b *big.Int) U256 {
	u, acc := U256FromBigInt(b)
	if !acc {
		panic(fmt.Errorf("num: inaccurate conversion to U256 in fuzz tester for %s", b))
	}
	return u
}

func accI256FromBigInt(b *big.Int) I256 {
	i, acc := I256FromBigInt(b)
	if !acc {
		panic(fmt.Errorf("num: inaccurate conversion to I256 in fuzz tester for %s", b))
	}
	return i
}

type StringList []string

func (s StringList) Strings() []string { return s }

func (s *StringList) String() string {
	if s == nil {
		return ""
	}
	return strings.Join(*s, ",")
}

func (s *StringList) Set(v string) error {
	vs := strings.Split(v, ",")
	for _, vi := range vs {
		vi = strings.TrimSpace(vi)
		if vi != "" {
			*s = append(*s, vi)
		}
	}
	return nil
}

func randomBigU256(rng *rand.Rand) *big.Int {
	if rng == nil {
		rng = globalRNG
	}

	var v = new(big.Int)
	bits := rng.Intn(257) - 1 // 256 bits, +1 for "0 bits"
	if bits < 0 {
		return v // "-1 bits" == "0"
	}
	v = v.Rand(rng, maxBigU256)
	v.And(v, masks[bits])
	v.SetBit(v, bits, 1)
	return v
}

// simulateBigU256Overflow reduces rb modulo 2^256.
func simulateBigU256Overflow(rb *big.Int) *big.Int {
	if rb.Sign() >= 0 && rb.Cmp(maxBigU256) <= 0 {
		return rb
	}
	return new(big.Int).Mod(rb, wrapBigU256)
}

// simulateBigI256Overflow wraps rb into the two's complement range of an
// I256.
func simulateBigI256Overflow(rb *big.Int) *big.Int {
	if rb.Cmp(minBigI256) >= 0 && rb.Cmp(maxBigI256) <= 0 {
		return rb
	}
	r := new(big.Int).Mod(rb, wrapBigU256)
	if r.Cmp(maxBigI256) > 0 {
		r.Sub(r, wrapBigU256)
	}
	return r
}

func bigU256Overflows(rb *big.Int) bool {
	return rb.Sign() < 0 || rb.Cmp(maxBigU256) > 0
}

func bigI256Overflows(rb *big.Int) bool {
	return rb.Cmp(minBigI256) < 0 || rb.Cmp(maxBigI256) > 0
}
