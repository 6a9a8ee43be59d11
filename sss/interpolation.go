package sss

import (
	"math/big"

	"github.com/rs/zerolog/log"
	"go.dedis.ch/sssrecon/types"
)

// Interpolate evaluates at x = 0 the unique polynomial of degree < len(points)
// going through points:
//
//	f(0) = sum_i y_i * prod_{j!=i} (-x_j) / (x_i - x_j)
//
// All terms are summed as one exact rational. The result must reduce to an
// integer, otherwise a NonIntegerResult error is returned.
func Interpolate(points []types.Point) (*big.Int, error) {
	if len(points) == 0 {
		return nil, types.NewError(types.KindInsufficientShares, "no point to interpolate")
	}

	seen := make(map[int]int, len(points))
	for i, p := range points {
		if p.Y == nil {
			return nil, types.NewError(types.KindMalformedRecord, "point %d has no y value", p.X)
		}
		if j, ok := seen[p.X]; ok {
			return nil, types.NewError(types.KindDegenerateInterpolation,
				"points #%d %s and #%d %s share x = %d", j, points[j], i, p, p.X)
		}
		seen[p.X] = i
	}

	xs := make([]*big.Int, len(points))
	for i, p := range points {
		xs[i] = big.NewInt(int64(p.X))
	}

	sum := new(big.Rat)
	diff := new(big.Int)
	for i, p := range points {
		numerator := new(big.Int).Set(p.Y)
		denominator := big.NewInt(1)
		for j, x := range xs {
			if i == j {
				continue
			}
			numerator.Mul(numerator, diff.Neg(x))
			denominator.Mul(denominator, diff.Sub(xs[i], x))
		}
		sum.Add(sum, new(big.Rat).SetFrac(numerator, denominator))
	}

	if !sum.IsInt() {
		return nil, types.NewError(types.KindNonIntegerResult,
			"f(0) = %s is not an integer", sum.RatString())
	}

	log.Debug().Msgf("interpolated %d points, f(0) has %d bits", len(points), sum.Num().BitLen())

	return new(big.Int).Set(sum.Num()), nil
}
