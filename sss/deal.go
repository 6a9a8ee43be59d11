package sss

import (
	"math/big"

	"github.com/rs/zerolog/log"
	"go.dedis.ch/sssrecon/types"
	"golang.org/x/xerrors"
)

// CoefficientBits bounds the size of the random coefficients drawn by Deal.
var CoefficientBits uint = 256

// Deal splits secret into n shares, any k of which reconstruct it. Share i is
// f(i) written in bases[(i-1) % len(bases)], base 10 when no base is given.
func Deal(secret *big.Int, n, k int, bases []int) (types.ShareSet, error) {
	if k <= 0 {
		return types.ShareSet{}, types.NewError(types.KindMissingThreshold,
			"threshold k = %d must be positive", k)
	}
	if n < k {
		return types.ShareSet{}, types.NewError(types.KindInsufficientShares,
			"cannot deal %d shares with threshold %d", n, k)
	}
	if secret.Sign() < 0 {
		return types.ShareSet{}, xerrors.Errorf("secret must be non-negative, got %s", secret)
	}
	if len(bases) == 0 {
		bases = []int{10}
	}
	for _, base := range bases {
		if base < MinBase || base > MaxBase {
			return types.ShareSet{}, types.NewError(types.KindInvalidBase,
				"radix %d is outside %d..%d", base, MinBase, MaxBase)
		}
	}

	bound := new(big.Int).Lsh(big.NewInt(1), CoefficientBits)
	poly, err := NewRandomPolynomial(secret, k-1, bound)
	if err != nil {
		return types.ShareSet{}, xerrors.Errorf("failed to create polynomial: %w", err)
	}

	shares := make(map[int]types.Share, n)
	for x := 1; x <= n; x++ {
		base := bases[(x-1)%len(bases)]
		digits, err := FormatBase(poly.Evaluate(big.NewInt(int64(x))), base)
		if err != nil {
			return types.ShareSet{}, err
		}
		shares[x] = types.Share{Key: x, Base: base, Digits: digits}
	}

	log.Debug().Msgf("dealt %d shares with threshold %d", n, k)

	return types.ShareSet{N: n, K: k, Shares: shares}, nil
}
