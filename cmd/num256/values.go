package main

import (
	"fmt"
	"strings"

	num "github.com/shabbyrobe/go-num256"
	"github.com/spf13/cast"
	"go.uber.org/zap"
)

func hasHexPrefix(s string) bool {
	return strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X")
}

// parseUnsigned accepts decimal, or hex with a 0x prefix.
func parseUnsigned(s string) (num.U256, error) {
	var (
		v   num.U256
		err error
	)
	if hasHexPrefix(s) {
		v, err = num.U256FromHexString(s)
	} else {
		v, err = num.U256FromString(s)
	}
	if err != nil {
		return v, err
	}
	logger.Debug("parsed operand", zap.String("input", s), zap.Stringer("u256", v))
	return v, nil
}

// parseSigned accepts an optionally signed decimal, or hex with a 0x prefix
// after the sign.
func parseSigned(s string) (num.I256, error) {
	sign, body := "", s
	if strings.HasPrefix(body, "-") || strings.HasPrefix(body, "+") {
		sign, body = body[:1], body[1:]
	}

	var (
		v   num.I256
		err error
	)
	if hasHexPrefix(body) {
		v, err = num.ParseI256(sign+body[2:], 16)
	} else {
		v, err = num.I256FromString(s)
	}
	if err != nil {
		return v, err
	}
	logger.Debug("parsed operand", zap.String("input", s), zap.Stringer("i256", v))
	return v, nil
}

// parseCount parses a shift, rotate or exponent count. limit is exclusive;
// zero means no limit.
func parseCount(s string, limit uint) (uint, error) {
	n, err := cast.ToUintE(s)
	if err != nil {
		return 0, fmt.Errorf("num256: invalid count %q: %w", s, err)
	}
	if limit > 0 && n >= limit {
		return 0, fmt.Errorf("num256: count %d out of range [0, %d)", n, limit)
	}
	return n, nil
}

func checkRadix(radix int) error {
	if radix < 2 || radix > 36 {
		return fmt.Errorf("num256: radix %d out of range [2, 36]", radix)
	}
	return nil
}
