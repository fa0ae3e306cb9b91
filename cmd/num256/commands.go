package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/ethereum/go-ethereum/common/hexutil"
	num "github.com/shabbyrobe/go-num256"
	"go.uber.org/zap"
	"gopkg.in/urfave/cli.v1"
)

var (
	radixFlag = cli.IntFlag{
		Name:  "radix",
		Value: 10,
		Usage: "output radix, 2 to 36",
	}
	leFlag = cli.BoolFlag{
		Name:  "le",
		Usage: "print the fixed encoding little-endian",
	}
	dumpFlag = cli.BoolFlag{
		Name:  "dump",
		Usage: "dump the raw value structure",
	}

	calcCommand = cli.Command{
		Action:    calc,
		Name:      "calc",
		Usage:     "Evaluate a single binary operation",
		ArgsUsage: "<a> <op> <b>",
		Flags:     []cli.Flag{signedFlag},
		Description: `
Operators: + - * / % << >> rotl rotr pow min max diff

Operands are decimal, or hex with a 0x prefix. The right hand side of the
shift, rotate and pow operators is a count. + - and * also print whether the
result overflowed; the printed result is the wrapped value.

Pass -- before a negative left operand.
`,
	}

	fmtCommand = cli.Command{
		Action:    format,
		Name:      "fmt",
		Usage:     "Print a value in another radix",
		ArgsUsage: "<value>",
		Flags:     []cli.Flag{signedFlag, radixFlag},
	}

	bytesCommand = cli.Command{
		Action:    encode,
		Name:      "bytes",
		Usage:     "Print the binary and JSON encodings of a value",
		ArgsUsage: "<value>",
		Flags:     []cli.Flag{signedFlag, leFlag},
	}

	inspectCommand = cli.Command{
		Action:    inspect,
		Name:      "inspect",
		Usage:     "Print the words and bit counts of a value",
		ArgsUsage: "<value>",
		Flags:     []cli.Flag{signedFlag, dumpFlag},
	}
)

var errDivideByZero = errors.New("num256: division by zero")

func calc(ctx *cli.Context) error {
	if ctx.NArg() != 3 {
		return fmt.Errorf("num256: calc expects <a> <op> <b>, found %d arguments", ctx.NArg())
	}
	args := ctx.Args()
	logger.Debug("calc",
		zap.Strings("args", args),
		zap.Bool("signed", ctx.Bool(signedFlag.Name)),
		zap.String("backend", num.BackendName()))

	if ctx.Bool(signedFlag.Name) {
		return calcSigned(ctx.App.Writer, args[0], args[1], args[2])
	}
	return calcUnsigned(ctx.App.Writer, args[0], args[1], args[2])
}

func calcUnsigned(w io.Writer, as, op, bs string) error {
	a, err := parseUnsigned(as)
	if err != nil {
		return err
	}

	switch op {
	case "<<", ">>", "rotl", "rotr", "pow":
		limit := uint(256)
		if op == "rotl" || op == "rotr" || op == "pow" {
			limit = 0
		}
		n, err := parseCount(bs, limit)
		if err != nil {
			return err
		}
		var r num.U256
		switch op {
		case "<<":
			r = a.Lsh(n)
		case ">>":
			r = a.Rsh(n)
		case "rotl":
			r = a.RotateLeft(n)
		case "rotr":
			r = a.RotateRight(n)
		case "pow":
			r = a.Pow(n)
		}
		fmt.Fprintln(w, r)
		return nil
	}

	b, err := parseUnsigned(bs)
	if err != nil {
		return err
	}

	var (
		r        num.U256
		overflow bool
		checked  = true
	)
	switch op {
	case "+":
		r, overflow = a.AddOverflow(b)
	case "-":
		r, overflow = a.SubOverflow(b)
	case "*":
		r, overflow = a.MulOverflow(b)
	case "/", "%":
		if b.IsZero() {
			return errDivideByZero
		}
		q, m := a.QuoRem(b)
		r, checked = q, false
		if op == "%" {
			r = m
		}
	case "min":
		r, checked = num.SmallerU256(a, b), false
	case "max":
		r, checked = num.LargerU256(a, b), false
	case "diff":
		r, checked = num.DifferenceU256(a, b), false
	default:
		return fmt.Errorf("num256: unknown operator %q", op)
	}

	fmt.Fprintln(w, r)
	if checked {
		fmt.Fprintf(w, "overflow: %v\n", overflow)
	}
	return nil
}

func calcSigned(w io.Writer, as, op, bs string) error {
	a, err := parseSigned(as)
	if err != nil {
		return err
	}

	switch op {
	case "<<", ">>", "pow":
		limit := uint(256)
		if op == "pow" {
			limit = 0
		}
		n, err := parseCount(bs, limit)
		if err != nil {
			return err
		}
		var r num.I256
		switch op {
		case "<<":
			r = a.Lsh(n)
		case ">>":
			r = a.Rsh(n)
		case "pow":
			r = a.Pow(n)
		}
		fmt.Fprintln(w, r)
		return nil

	case "rotl", "rotr":
		n, err := parseCount(bs, 0)
		if err != nil {
			return err
		}
		r := a.RotateLeft(n)
		if op == "rotr" {
			r = a.RotateRight(n)
		}
		fmt.Fprintln(w, r)
		return nil
	}

	b, err := parseSigned(bs)
	if err != nil {
		return err
	}

	switch op {
	case "+", "-", "*":
		var (
			r        num.I256
			overflow bool
		)
		switch op {
		case "+":
			r, overflow = a.AddOverflow(b)
		case "-":
			r, overflow = a.SubOverflow(b)
		case "*":
			r, overflow = a.MulOverflow(b)
		}
		fmt.Fprintln(w, r)
		fmt.Fprintf(w, "overflow: %v\n", overflow)

	case "/", "%":
		if b.IsZero() {
			return errDivideByZero
		}
		q, m := a.QuoRem(b)
		if op == "%" {
			q = m
		}
		fmt.Fprintln(w, q)

	case "min":
		fmt.Fprintln(w, num.SmallerI256(a, b))
	case "max":
		fmt.Fprintln(w, num.LargerI256(a, b))
	case "diff":
		fmt.Fprintln(w, num.DifferenceI256(a, b))

	default:
		return fmt.Errorf("num256: unknown operator %q", op)
	}
	return nil
}

func format(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return fmt.Errorf("num256: fmt expects <value>, found %d arguments", ctx.NArg())
	}
	radix := ctx.Int(radixFlag.Name)
	if err := checkRadix(radix); err != nil {
		return err
	}

	w := ctx.App.Writer
	if ctx.Bool(signedFlag.Name) {
		v, err := parseSigned(ctx.Args().First())
		if err != nil {
			return err
		}
		fmt.Fprintln(w, v.Text(radix))
		return nil
	}

	v, err := parseUnsigned(ctx.Args().First())
	if err != nil {
		return err
	}
	fmt.Fprintln(w, v.Text(radix))
	return nil
}

func encode(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return fmt.Errorf("num256: bytes expects <value>, found %d arguments", ctx.NArg())
	}
	le := ctx.Bool(leFlag.Name)
	w := ctx.App.Writer

	if ctx.Bool(signedFlag.Name) {
		v, err := parseSigned(ctx.Args().First())
		if err != nil {
			return err
		}
		fixed := v.ToBEBytes()
		if le {
			fixed = v.ToLEBytes()
		}
		js, err := json.Marshal(v)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "fixed:   %s\n", hexutil.Encode(fixed[:]))
		fmt.Fprintf(w, "json:    %s\n", js)
		return nil
	}

	v, err := parseUnsigned(ctx.Args().First())
	if err != nil {
		return err
	}
	fixed := v.ToBEBytes()
	if le {
		fixed = v.ToLEBytes()
	}
	js, err := json.Marshal(v)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "fixed:   %s\n", hexutil.Encode(fixed[:]))
	fmt.Fprintf(w, "compact: %s\n", hexutil.Encode(v.CompactBytes()))
	fmt.Fprintf(w, "json:    %s\n", js)
	return nil
}

func inspect(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return fmt.Errorf("num256: inspect expects <value>, found %d arguments", ctx.NArg())
	}
	w := ctx.App.Writer

	var (
		u   num.U256
		raw interface{}
	)
	if ctx.Bool(signedFlag.Name) {
		v, err := parseSigned(ctx.Args().First())
		if err != nil {
			return err
		}
		u, raw = v.AsU256(), v
		fmt.Fprintf(w, "value:    %d\n", v)
		fmt.Fprintf(w, "sign:     %d\n", v.Sign())
	} else {
		v, err := parseUnsigned(ctx.Args().First())
		if err != nil {
			return err
		}
		u, raw = v, v
		fmt.Fprintf(w, "value:    %d\n", v)
	}

	hi, hm, lm, lo := u.Raw()
	fmt.Fprintf(w, "hex:      %#x\n", u)
	fmt.Fprintf(w, "words:    0x%016x 0x%016x 0x%016x 0x%016x\n", hi, hm, lm, lo)
	fmt.Fprintf(w, "bitlen:   %d\n", u.BitLen())
	fmt.Fprintf(w, "ones:     %d\n", u.CountOnes())
	fmt.Fprintf(w, "lz:       %d\n", u.LeadingZeros())
	fmt.Fprintf(w, "tz:       %d\n", u.TrailingZeros())
	fmt.Fprintf(w, "backend:  %s\n", num.BackendName())

	if ctx.Bool(dumpFlag.Name) {
		cfg := spew.ConfigState{Indent: "  ", DisableMethods: true}
		cfg.Fdump(w, raw)
	}
	return nil
}
