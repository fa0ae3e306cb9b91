package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &out
	err := app.Run(append([]string{"num256"}, args...))
	return out.String(), err
}

func mustRun(t *testing.T, args ...string) string {
	t.Helper()
	tt := assert.WrapTB(t)
	out, err := run(t, args...)
	tt.MustOK(err)
	return out
}

func TestCalcUnsigned(t *testing.T) {
	for _, tc := range []struct {
		args []string
		out  string
	}{
		{[]string{"2", "+", "3"}, "5\noverflow: false\n"},
		{[]string{"115792089237316195423570985008687907853269984665640564039457584007913129639935", "+", "1"}, "0\noverflow: true\n"},
		{[]string{"0", "-", "1"}, "115792089237316195423570985008687907853269984665640564039457584007913129639935\noverflow: true\n"},
		{[]string{"0x10", "*", "0x10"}, "256\noverflow: false\n"},
		{[]string{"7", "/", "2"}, "3\n"},
		{[]string{"7", "%", "2"}, "1\n"},
		{[]string{"1", "<<", "255"}, "57896044618658097711785492504343953926634992332820282019728792003956564819968\n"},
		{[]string{"256", ">>", "4"}, "16\n"},
		{[]string{"1", "rotr", "1"}, "57896044618658097711785492504343953926634992332820282019728792003956564819968\n"},
		{[]string{"1", "rotl", "256"}, "1\n"},
		{[]string{"2", "pow", "10"}, "1024\n"},
		{[]string{"5", "min", "3"}, "3\n"},
		{[]string{"5", "max", "3"}, "5\n"},
		{[]string{"3", "diff", "5"}, "2\n"},
	} {
		t.Run(strings.Join(tc.args, " "), func(t *testing.T) {
			tt := assert.WrapTB(t)
			out := mustRun(t, append([]string{"calc"}, tc.args...)...)
			tt.MustEqual(tc.out, out)
		})
	}
}

func TestCalcSigned(t *testing.T) {
	for _, tc := range []struct {
		args []string
		out  string
	}{
		{[]string{"--", "-5", "*", "3"}, "-15\noverflow: false\n"},
		{[]string{"--", "-7", "/", "2"}, "-3\n"},
		{[]string{"--", "-7", "%", "2"}, "-1\n"},
		{[]string{"--", "-16", ">>", "2"}, "-4\n"},
		{[]string{"--", "-0x10", "+", "1"}, "-15\noverflow: false\n"},
		{[]string{"57896044618658097711785492504343953926634992332820282019728792003956564819967", "+", "1"}, "-57896044618658097711785492504343953926634992332820282019728792003956564819968\noverflow: true\n"},
		{[]string{"--", "-3", "diff", "4"}, "7\n"},
		{[]string{"--", "-1", "rotl", "5"}, "-1\n"},
	} {
		t.Run(strings.Join(tc.args, " "), func(t *testing.T) {
			tt := assert.WrapTB(t)
			out := mustRun(t, append([]string{"calc", "--signed"}, tc.args...)...)
			tt.MustEqual(tc.out, out)
		})
	}
}

func TestCalcErrors(t *testing.T) {
	tt := assert.WrapTB(t)

	_, err := run(t, "calc", "1", "/", "0")
	tt.MustEqual(errDivideByZero, err)

	_, err = run(t, "calc", "1", "<<", "256")
	tt.MustAssert(err != nil)

	_, err = run(t, "calc", "1", "?", "2")
	tt.MustAssert(err != nil)

	_, err = run(t, "calc", "1", "+")
	tt.MustAssert(err != nil)

	_, err = run(t, "calc", "1x", "+", "2")
	tt.MustAssert(err != nil)
}

func TestFmt(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual("101010\n", mustRun(t, "fmt", "--radix", "2", "42"))
	tt.MustEqual("2a\n", mustRun(t, "fmt", "--radix", "16", "42"))
	tt.MustEqual("42\n", mustRun(t, "fmt", "0x2a"))
	tt.MustEqual("-2a\n", mustRun(t, "fmt", "--signed", "--radix", "16", "--", "-42"))

	_, err := run(t, "fmt", "--radix", "37", "42")
	tt.MustAssert(err != nil)
}

func TestBytes(t *testing.T) {
	tt := assert.WrapTB(t)

	out := mustRun(t, "bytes", "0x12345")
	tt.MustEqual(""+
		"fixed:   0x0000000000000000000000000000000000000000000000000000000000012345\n"+
		"compact: 0x012345\n"+
		"json:    \"0x12345\"\n", out)

	out = mustRun(t, "bytes", "--le", "1")
	tt.MustAssert(strings.HasPrefix(out, "fixed:   0x01000000"), out)

	out = mustRun(t, "bytes", "--signed", "--", "-1")
	tt.MustEqual(""+
		"fixed:   0x"+strings.Repeat("ff", 32)+"\n"+
		"json:    \"-1\"\n", out)
}

func TestInspect(t *testing.T) {
	tt := assert.WrapTB(t)

	out := mustRun(t, "inspect", "0x10000000000000000")
	tt.MustAssert(strings.Contains(out, "value:    18446744073709551616\n"), out)
	tt.MustAssert(strings.Contains(out, "hex:      0x10000000000000000\n"), out)
	tt.MustAssert(strings.Contains(out, "words:    0x0000000000000000 0x0000000000000000 0x0000000000000001 0x0000000000000000\n"), out)
	tt.MustAssert(strings.Contains(out, "bitlen:   65\n"), out)
	tt.MustAssert(strings.Contains(out, "ones:     1\n"), out)
	tt.MustAssert(strings.Contains(out, "lz:       191\n"), out)
	tt.MustAssert(strings.Contains(out, "tz:       64\n"), out)

	out = mustRun(t, "inspect", "--signed", "--", "-1")
	tt.MustAssert(strings.Contains(out, "sign:     -1\n"), out)
	tt.MustAssert(strings.Contains(out, "ones:     256\n"), out)

	out = mustRun(t, "inspect", "--dump", "1")
	tt.MustAssert(strings.Contains(out, "num.U256"), out)
}
