package types

import (
	"fmt"
	"math/big"
	"sort"
)

// -----------------------------------------------------------------------------
// Share

// String implements fmt.Stringer.
func (s Share) String() string {
	return fmt.Sprintf("{share %d: base %d, value %q}", s.Key, s.Base, s.Digits)
}

// -----------------------------------------------------------------------------
// Point

// String implements fmt.Stringer.
func (p Point) String() string {
	if p.Y == nil {
		return fmt.Sprintf("(%d, <nil>)", p.X)
	}
	return fmt.Sprintf("(%d, %s)", p.X, p.Y.String())
}

// -----------------------------------------------------------------------------
// ShareSet

// Keys returns the share keys in ascending numeric order.
func (s ShareSet) Keys() []int {
	keys := make([]int, 0, len(s.Shares))
	for key := range s.Shares {
		keys = append(keys, key)
	}
	sort.Ints(keys)
	return keys
}

// String implements fmt.Stringer.
func (s ShareSet) String() string {
	return fmt.Sprintf("{n=%d k=%d shares=%v}", s.N, s.K, s.Keys())
}

// -----------------------------------------------------------------------------
// Secret

// NewSecret copies v into a new Secret.
func NewSecret(v *big.Int) Secret {
	return Secret{Value: new(big.Int).Set(v)}
}

// String renders the secret in canonical base 10: no leading zeros, a leading
// '-' only when negative and "0" for zero.
func (s Secret) String() string {
	if s.Value == nil {
		return "0"
	}
	return s.Value.Text(10)
}

// IsZero tells whether the secret is unset or zero.
func (s Secret) IsZero() bool {
	return s.Value == nil || s.Value.Sign() == 0
}

// -----------------------------------------------------------------------------
// Response

// Failed tells whether the response carries an error.
func (r Response) Failed() bool {
	return r.Err != nil
}

// String implements fmt.Stringer.
func (r Response) String() string {
	if r.Err != nil {
		return fmt.Sprintf("%s: error: %v", r.Source, r.Err)
	}
	return fmt.Sprintf("%s: %s", r.Source, r.Secret)
}
