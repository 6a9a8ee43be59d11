package sss

import (
	"math/big"

	"go.dedis.ch/sssrecon/types"
)

// Supported radixes.
const (
	MinBase = 2
	MaxBase = 36
)

// ConvertBase returns the non-negative integer that digits represents in the
// given radix. Digits are '0'-'9' then 'a'-'z', case-insensitive.
func ConvertBase(digits string, base int) (*big.Int, error) {
	if base < MinBase || base > MaxBase {
		return nil, types.NewError(types.KindInvalidBase,
			"radix %d is outside %d..%d", base, MinBase, MaxBase)
	}
	if digits == "" {
		return nil, types.NewError(types.KindEmptyValue, "empty digit string in radix %d", base)
	}

	radix := big.NewInt(int64(base))
	digit := new(big.Int)
	acc := new(big.Int)
	for _, c := range digits {
		v := digitValue(c)
		if v < 0 || v >= base {
			return nil, types.NewError(types.KindInvalidDigit,
				"invalid digit %q for radix %d", c, base)
		}
		// acc = acc * base + v
		acc.Mul(acc, radix)
		acc.Add(acc, digit.SetInt64(int64(v)))
	}

	return acc, nil
}

// FormatBase is the inverse of ConvertBase for non-negative values.
func FormatBase(value *big.Int, base int) (string, error) {
	if base < MinBase || base > MaxBase {
		return "", types.NewError(types.KindInvalidBase,
			"radix %d is outside %d..%d", base, MinBase, MaxBase)
	}
	if value.Sign() < 0 {
		return "", types.NewError(types.KindInvalidDigit,
			"negative value %s has no digit string in radix %d", value, base)
	}
	return value.Text(base), nil
}

// digitValue maps a digit character to its value, -1 when c is not a digit.
func digitValue(c rune) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'z':
		return int(c-'a') + 10
	case 'A' <= c && c <= 'Z':
		return int(c-'A') + 10
	default:
		return -1
	}
}
