// Package sss reconstructs a Shamir secret from radix-encoded shares.
package sss

import (
	"math/big"

	"github.com/rs/zerolog/log"
	"go.dedis.ch/sssrecon/types"
	"golang.org/x/xerrors"
)

// Option customizes Reconstruct.
type Option func(*options)

type options struct {
	emptyAsZero bool
}

// WithEmptyAsZero makes an empty digit string convert to zero instead of
// failing with EmptyValue.
func WithEmptyAsZero() Option {
	return func(o *options) {
		o.emptyAsZero = true
	}
}

func (o options) convert(share types.Share) (*big.Int, error) {
	if share.Digits == "" && o.emptyAsZero {
		if share.Base < MinBase || share.Base > MaxBase {
			return nil, types.NewError(types.KindInvalidBase,
				"radix %d is outside %d..%d", share.Base, MinBase, MaxBase)
		}
		return new(big.Int), nil
	}
	return ConvertBase(share.Digits, share.Base)
}

// SelectShares validates the threshold and returns the k shares with the
// numerically smallest keys, in ascending key order.
func SelectShares(set types.ShareSet) ([]types.Share, error) {
	if set.K <= 0 {
		return nil, types.NewError(types.KindMissingThreshold,
			"threshold k = %d must be positive", set.K)
	}
	if len(set.Shares) < set.K {
		return nil, types.NewError(types.KindInsufficientShares,
			"need %d shares, got %d", set.K, len(set.Shares))
	}

	keys := set.Keys()
	if keys[0] <= 0 {
		return nil, types.NewError(types.KindMalformedRecord,
			"share key %d is not a positive integer", keys[0])
	}

	selected := make([]types.Share, set.K)
	for i, key := range keys[:set.K] {
		share := set.Shares[key]
		share.Key = key
		selected[i] = share
	}

	return selected, nil
}

// Reconstruct recovers the secret f(0) from the first k shares of set.
func Reconstruct(set types.ShareSet, opts ...Option) (types.Secret, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	selected, err := SelectShares(set)
	if err != nil {
		return types.Secret{}, err
	}

	points := make([]types.Point, len(selected))
	for i, share := range selected {
		y, err := o.convert(share)
		if err != nil {
			return types.Secret{}, withKey(err, share.Key)
		}
		points[i] = types.Point{X: share.Key, Y: y}
	}

	log.Debug().Msgf("reconstructing from points %v", points)

	value, err := Interpolate(points)
	if err != nil {
		return types.Secret{}, err
	}

	return types.Secret{Value: value}, nil
}

func withKey(err error, key int) error {
	var e *types.Error
	if xerrors.As(err, &e) {
		return e.WithKey(key)
	}
	return xerrors.Errorf("share %d: %w", key, err)
}
