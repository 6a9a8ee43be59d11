package sss

import (
	"crypto/rand"
	"math/big"

	"github.com/rs/zerolog/log"
	"golang.org/x/xerrors"
)

// Polynomial is a polynomial with integer coefficients,
// coefficients[i] being the coefficient of x^i.
type Polynomial struct {
	degree       int
	coefficients []big.Int
}

// NewRandomPolynomial generates a random polynomial with f(0) = secret. The
// other coefficients are drawn uniformly in [0, bound).
func NewRandomPolynomial(secret *big.Int, degree int, bound *big.Int) (*Polynomial, error) {
	if degree < 0 {
		return nil, xerrors.Errorf("illegal polynomial degree %d", degree)
	}
	if bound.Sign() <= 0 {
		return nil, xerrors.Errorf("illegal coefficient bound %s", bound)
	}

	// random polynomial f of degree d is defined by d + 1 points
	coefficients := make([]big.Int, degree+1)
	coefficients[0].Set(secret)

	for i := 1; i <= degree; i++ {
		n, err := rand.Int(rand.Reader, bound)
		if err != nil {
			log.Err(err).Msg("failed to draw a coefficient")
			return nil, xerrors.Errorf("failed to draw coefficient %d: %w", i, err)
		}
		coefficients[i].Set(n)
	}

	return &Polynomial{
		degree:       degree,
		coefficients: coefficients,
	}, nil
}

// Evaluate computes f(x) with Horner's rule.
func (p *Polynomial) Evaluate(x *big.Int) *big.Int {
	value := new(big.Int).Set(&p.coefficients[p.degree])
	for i := p.degree - 1; i > -1; i-- {
		value.Mul(value, x)
		value.Add(value, &p.coefficients[i])
	}
	return value
}
