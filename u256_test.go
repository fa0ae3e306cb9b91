package num

import (
	"fmt"
	"math/big"
	"math/rand"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

var u256 = U256From64

func u256s(s string) U256 {
	out, acc := U256FromBigInt(bigs(s))
	if !acc {
		panic(fmt.Errorf("num: inaccurate u256 %s", s))
	}
	return out
}

func mustPanic(tb testing.TB, msg string, fn func()) {
	tb.Helper()
	tt := assert.WrapTB(tb)
	defer func() {
		tb.Helper()
		r := recover()
		tt.MustAssert(r != nil, "expected panic %q", msg)
		tt.MustEqual(msg, fmt.Sprint(r))
	}()
	fn()
}

func TestU256Words(t *testing.T) {
	tt := assert.WrapTB(t)

	u := U256FromRaw(1, 2, 3, 4)
	hi, lo := u.IntoWords()
	tt.MustEqual(U128FromRaw(1, 2), hi)
	tt.MustEqual(U128FromRaw(3, 4), lo)
	tt.MustEqual(hi, u.High())
	tt.MustEqual(lo, u.Low())
	tt.MustEqual(u, U256FromWords(hi, lo))

	r1, r2, r3, r4 := u.Raw()
	tt.MustEqual([]uint64{1, 2, 3, 4}, []uint64{r1, r2, r3, r4})

	tt.MustEqual(bigs("0x0000000000000001 0000000000000002 0000000000000003 0000000000000004").String(), u.String())
	tt.MustEqual(U256From128(lo), U256FromWords(U128{}, lo))
	tt.MustEqual(u256(7), U256From32(7))
}

func TestU256AsBigInt(t *testing.T) {
	for idx, tc := range []struct {
		a U256
		b *big.Int
	}{
		{u256(0), big0},
		{u256(2), bigU64(2)},
		{MaxU256, maxBigU256},
		{U256(MinI256), bigs("0x8000000000000000 0000000000000000 0000000000000000 0000000000000000")},
		{U256FromRaw(0, 0, 1, 0), bigs("18446744073709551616")},
		{U256FromRaw(0, 1, 0, 0), bigs("340282366920938463463374607431768211456")},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			v := tc.a.AsBigInt()
			tt.MustAssert(tc.b.Cmp(v) == 0, "found: %s", v)

			// IntoBigInt must reuse and truncate a larger destination.
			into := new(big.Int).Lsh(big1, 400)
			tc.a.IntoBigInt(into)
			tt.MustAssert(tc.b.Cmp(into) == 0, "found: %s", into)
		})
	}
}

func TestU256FromBigInt(t *testing.T) {
	for idx, tc := range []struct {
		a   *big.Int
		b   U256
		acc bool
	}{
		{bigU64(2), u256(2), true},
		{maxBigU256, MaxU256, true},
		{wrapBigU256, MaxU256, false},
		{bigs("-1"), U256{}, false},
		{bigs("0x1 0000000000000000"), U256FromRaw(0, 0, 1, 0), true},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.a), func(t *testing.T) {
			tt := assert.WrapTB(t)
			v, acc := U256FromBigInt(tc.a)
			tt.MustEqual(tc.acc, acc)
			tt.MustEqual(tc.b, v)
		})
	}
}

func TestU256Conversions(t *testing.T) {
	tt := assert.WrapTB(t)

	tt.MustAssert(u256(1).IsUint64())
	tt.MustAssert(!U256FromRaw(0, 0, 1, 0).IsUint64())
	tt.MustEqual(uint64(maxUint64), MaxU256.AsUint64())

	tt.MustAssert(U256FromRaw(0, 0, 1, 1).IsU128())
	tt.MustAssert(!U256FromRaw(0, 1, 0, 0).IsU128())
	tt.MustEqual(MaxU128, MaxU256.AsU128())

	tt.MustAssert(U256(MaxI256).IsI256())
	tt.MustAssert(!U256(MinI256).IsI256())
	tt.MustEqual(I256From64(-1), MaxU256.AsI256())
}

func TestU256Add(t *testing.T) {
	for idx, tc := range []struct {
		a, b, c  U256
		overflow bool
	}{
		{u256(1), u256(2), u256(3), false},
		{u256(maxUint64), u256(1), U256FromRaw(0, 0, 1, 0), false},
		{U256FromRaw(0, 0, maxUint64, maxUint64), u256(1), U256FromRaw(0, 1, 0, 0), false},
		{MaxU256, u256(1), u256(0), true},
		{MaxU256, MaxU256, MaxU256.Dec(), true},
	} {
		t.Run(fmt.Sprintf("%d/%s+%s=%s", idx, tc.a, tc.b, tc.c), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.c, tc.a.Add(tc.b))

			r, overflow := tc.a.AddOverflow(tc.b)
			tt.MustEqual(tc.c, r)
			tt.MustEqual(tc.overflow, overflow)

			a := tc.a
			a.AddAssign(tc.b)
			tt.MustEqual(tc.c, a)
		})
	}
}

func TestU256Sub(t *testing.T) {
	for idx, tc := range []struct {
		a, b, c  U256
		overflow bool
	}{
		{u256(3), u256(2), u256(1), false},
		{U256FromRaw(0, 0, 1, 0), u256(1), u256(maxUint64), false},
		{U256FromRaw(1, 0, 0, 0), u256(1), U256FromRaw(0, maxUint64, maxUint64, maxUint64), false},
		{u256(0), u256(1), MaxU256, true},
		{u256(1), MaxU256, u256(2), true},
	} {
		t.Run(fmt.Sprintf("%d/%s-%s=%s", idx, tc.a, tc.b, tc.c), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.c, tc.a.Sub(tc.b))

			r, overflow := tc.a.SubOverflow(tc.b)
			tt.MustEqual(tc.c, r)
			tt.MustEqual(tc.overflow, overflow)

			a := tc.a
			a.SubAssign(tc.b)
			tt.MustEqual(tc.c, a)
		})
	}
}

func TestU256Mul(t *testing.T) {
	for idx, tc := range []struct {
		a, b, c  U256
		overflow bool
	}{
		{u256(3), u256(2), u256(6), false},
		{u256(maxUint64), u256(maxUint64), U256FromRaw(0, 0, maxUint64-1, 1), false},
		{U256FromRaw(0, 1, 0, 0), U256FromRaw(0, 1, 0, 0), u256(0), true},
		{U256FromRaw(0, 0, 0, 2), U256(MinI256), u256(0), true},
		{MaxU256, MaxU256, u256(1), true},
		{MaxU256, u256(1), MaxU256, false},
		{MaxU256, u256(0), u256(0), false},
	} {
		t.Run(fmt.Sprintf("%d/%s*%s=%s", idx, tc.a, tc.b, tc.c), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.c, tc.a.Mul(tc.b))

			r, overflow := tc.a.MulOverflow(tc.b)
			tt.MustEqual(tc.c, r)
			tt.MustEqual(tc.overflow, overflow)

			a := tc.a
			a.MulAssign(tc.b)
			tt.MustEqual(tc.c, a)
		})
	}
}

func TestU256IncDec(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual(u256(0), MaxU256.Inc())
	tt.MustEqual(MaxU256, u256(0).Dec())
	tt.MustEqual(U256FromRaw(0, 0, 1, 0), u256(maxUint64).Inc())
	tt.MustEqual(u256(maxUint64), U256FromRaw(0, 0, 1, 0).Dec())
}

func TestU256Pow(t *testing.T) {
	for idx, tc := range []struct {
		a   U256
		exp uint
	}{
		{u256(0), 0},
		{u256(0), 5},
		{u256(2), 255},
		{u256(2), 256},
		{u256(3), 100},
		{u256(3), 200},
		{u256(10), 77},
		{MaxU256, 3},
	} {
		t.Run(fmt.Sprintf("%d/%s**%d", idx, tc.a, tc.exp), func(t *testing.T) {
			tt := assert.WrapTB(t)
			rb := new(big.Int).Exp(tc.a.AsBigInt(), big.NewInt(int64(tc.exp)), wrapBigU256)
			tt.MustEqual(rb.String(), tc.a.Pow(tc.exp).String())
		})
	}
}

func TestU256QuoRem(t *testing.T) {
	for idx, tc := range []struct {
		u, by, q, r U256
	}{
		{u: u256(1), by: u256(2), q: u256(0), r: u256(1)},
		{u: u256(10), by: u256(3), q: u256(3), r: u256(1)},
		{u: MaxU256, by: MaxU256, q: u256(1), r: u256(0)},
		{u: MaxU256, by: u256(1), q: MaxU256, r: u256(0)},
		{u: MaxU256, by: u256(10), q: u256s("11579208923731619542357098500868790785326998466564056403945758400791312963993"), r: u256(5)},
		{u: MaxU256, by: U256FromRaw(0, 0, 1, 0), q: U256FromRaw(0, maxUint64, maxUint64, maxUint64), r: u256(maxUint64)},
		{u: U256FromRaw(0, 1, 0, 0), by: U256FromRaw(0, 0, 1, 0), q: U256FromRaw(0, 0, 1, 0), r: u256(0)},
		{u: MaxU256, by: U256FromRaw(1, 0, 0, 0), q: u256(maxUint64), r: U256FromRaw(0, maxUint64, maxUint64, maxUint64)},
		{u: U256FromRaw(0, 5, 0, 0), by: U256FromRaw(0, 7, 0, 0), q: u256(0), r: U256FromRaw(0, 5, 0, 0)},
	} {
		t.Run(fmt.Sprintf("%d/%s÷%s=%s,%s", idx, tc.u, tc.by, tc.q, tc.r), func(t *testing.T) {
			tt := assert.WrapTB(t)
			q, r := tc.u.QuoRem(tc.by)
			tt.MustEqual(tc.q.String(), q.String())
			tt.MustEqual(tc.r.String(), r.String())
			tt.MustEqual(q, tc.u.Quo(tc.by))
			tt.MustEqual(r, tc.u.Rem(tc.by))

			bq, br := new(big.Int).QuoRem(tc.u.AsBigInt(), tc.by.AsBigInt(), new(big.Int))
			tt.MustEqual(bq.String(), q.String())
			tt.MustEqual(br.String(), r.String())

			a := tc.u
			a.QuoAssign(tc.by)
			tt.MustEqual(q, a)
			a = tc.u
			a.RemAssign(tc.by)
			tt.MustEqual(r, a)
		})
	}
}

func TestU256QuoRemRandom(t *testing.T) {
	tt := assert.WrapTB(t)
	for i := 0; i < 5000; i++ {
		b1, b2 := randomBigU256(globalRNG), randomBigU256(globalRNG)
		if b2.Sign() == 0 {
			continue
		}
		u1, u2 := accU256FromBigInt(b1), accU256FromBigInt(b2)
		q, r := u1.QuoRem(u2)

		// q*b + r == a, r < b
		tt.MustEqual(u1, q.Mul(u2).Add(r))
		tt.MustAssert(r.LessThan(u2))
	}
}

func TestU256DivideByZero(t *testing.T) {
	mustPanic(t, "num: division by zero", func() { u256(1).Quo(u256(0)) })
	mustPanic(t, "num: division by zero", func() { u256(1).Rem(u256(0)) })
	mustPanic(t, "num: division by zero", func() { MaxU256.QuoRem(u256(0)) })
}

func TestU256Shift(t *testing.T) {
	tt := assert.WrapTB(t)

	tt.MustEqual(U256(MinI256), u256(1).Lsh(255))
	tt.MustEqual(u256(1), U256(MinI256).Rsh(255))
	tt.MustEqual(u256(0), MaxU256.Lsh(255).Lsh(1))
	tt.MustEqual(MaxU256, MaxU256.Lsh(0))
	tt.MustEqual(U256FromRaw(0, 0, 1, 0), u256(1).Lsh(64))
	tt.MustEqual(U256FromRaw(0, 1, 0, 0), u256(1).Lsh(128))
	tt.MustEqual(U256FromRaw(0, 0x8000000000000000, 0, 0), U256(MinI256).Rsh(64))

	u := u256(3)
	u.LshAssign(200)
	tt.MustEqual(u256(3).Lsh(200), u)
	u.RshAssign(199)
	tt.MustEqual(u256(6), u)

	mustPanic(t, "num: shift count out of range", func() { u256(1).Lsh(256) })
	mustPanic(t, "num: shift count out of range", func() { u256(1).Rsh(256) })
	mustPanic(t, "num: shift count out of range", func() { u := u256(1); u.LshAssign(1000) })
}

func TestU256Rotate(t *testing.T) {
	tt := assert.WrapTB(t)

	tt.MustEqual(u256(1), U256(MinI256).RotateLeft(1))
	tt.MustEqual(U256(MinI256), u256(1).RotateRight(1))
	tt.MustEqual(u256(5), u256(5).RotateLeft(256))
	tt.MustEqual(u256(5), u256(5).RotateRight(512))
	tt.MustEqual(u256(5).RotateLeft(3), u256(5).RotateLeft(259))
	tt.MustEqual(MaxU256, MaxU256.RotateLeft(77))

	for i := 0; i < 1000; i++ {
		u := accU256FromBigInt(randomBigU256(globalRNG))
		n := uint(rand.Intn(1024))
		tt.MustEqual(u, u.RotateLeft(n).RotateRight(n))
	}
}

func TestU256Bits(t *testing.T) {
	tt := assert.WrapTB(t)

	tt.MustEqual(uint(256), u256(0).LeadingZeros())
	tt.MustEqual(uint(256), u256(0).TrailingZeros())
	tt.MustEqual(uint(255), u256(1).LeadingZeros())
	tt.MustEqual(uint(0), u256(1).TrailingZeros())
	tt.MustEqual(uint(0), MaxU256.LeadingZeros())
	tt.MustEqual(uint(255), U256(MinI256).TrailingZeros())

	tt.MustEqual(0, u256(0).BitLen())
	tt.MustEqual(256, MaxU256.BitLen())
	tt.MustEqual(65, U256FromRaw(0, 0, 1, 0).BitLen())

	tt.MustEqual(256, MaxU256.CountOnes())
	tt.MustEqual(4, U256FromRaw(1, 1, 1, 1).CountOnes())

	tt.MustEqual(uint(1), U256(MinI256).Bit(255))
	tt.MustEqual(uint(0), U256(MinI256).Bit(254))
	tt.MustEqual(U256(MinI256), u256(0).SetBit(255, 1))
	tt.MustEqual(MaxU256.Rsh(1), MaxU256.SetBit(255, 0))
	tt.MustEqual(u256(8), u256(8).SetBit(3, 1))

	mustPanic(t, "num: bit value not 0 or 1", func() { u256(0).SetBit(1, 2) })
}

func TestU256Bitwise(t *testing.T) {
	tt := assert.WrapTB(t)

	a := U256FromRaw(0xF0F0, 0xFF00, 0x1234, 0xFFFF)
	b := U256FromRaw(0x0FF0, 0x00FF, 0x4321, 0xF0F0)

	tt.MustEqual(U256FromRaw(0x00F0, 0x0000, 0x0220, 0xF0F0), a.And(b))
	tt.MustEqual(U256FromRaw(0xF000, 0xFF00, 0x1014, 0x0F0F), a.AndNot(b))
	tt.MustEqual(U256FromRaw(0xFFF0, 0xFFFF, 0x5335, 0xFFFF), a.Or(b))
	tt.MustEqual(U256FromRaw(0xFF00, 0xFFFF, 0x5115, 0x0F0F), a.Xor(b))
	tt.MustEqual(u256(0), MaxU256.Not())
	tt.MustEqual(MaxU256, a.Or(a.Not()))
}

func TestU256Cmp(t *testing.T) {
	for idx, tc := range []struct {
		a, b U256
		out  int
	}{
		{u256(0), u256(0), 0},
		{u256(1), u256(0), 1},
		{u256(0), u256(1), -1},
		{MaxU256, u256(0), 1},
		{U256FromRaw(1, 0, 0, 0), U256FromRaw(0, maxUint64, maxUint64, maxUint64), 1},
		{U256FromRaw(0, 0, 1, 0), U256FromRaw(0, 0, 0, maxUint64), 1},
		{U256FromRaw(0, 0, 0, 1), U256FromRaw(0, 1, 0, 0), -1},
	} {
		t.Run(fmt.Sprintf("%d/%s<=>%s", idx, tc.a, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.out, tc.a.Cmp(tc.b))
			tt.MustEqual(tc.out == 0, tc.a.Equal(tc.b))
			tt.MustEqual(tc.out > 0, tc.a.GreaterThan(tc.b))
			tt.MustEqual(tc.out >= 0, tc.a.GreaterOrEqualTo(tc.b))
			tt.MustEqual(tc.out < 0, tc.a.LessThan(tc.b))
			tt.MustEqual(tc.out <= 0, tc.a.LessOrEqualTo(tc.b))
		})
	}
}

func TestU256Util(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual(u256(3), DifferenceU256(u256(5), u256(2)))
	tt.MustEqual(u256(3), DifferenceU256(u256(2), u256(5)))
	tt.MustEqual(MaxU256, DifferenceU256(u256(0), MaxU256))
	tt.MustEqual(u256(5), LargerU256(u256(5), u256(2)))
	tt.MustEqual(u256(2), SmallerU256(u256(5), u256(2)))
}

func TestRandU256(t *testing.T) {
	tt := assert.WrapTB(t)
	rng := rand.New(rand.NewSource(1))
	seen := map[U256]bool{}
	for i := 0; i < 100; i++ {
		seen[RandU256(rng)] = true
	}
	tt.MustAssert(len(seen) > 90)
}
