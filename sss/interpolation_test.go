package sss

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"go.dedis.ch/sssrecon/types"
)

func points(coords ...int64) []types.Point {
	res := make([]types.Point, 0, len(coords)/2)
	for i := 0; i+1 < len(coords); i += 2 {
		res = append(res, types.Point{X: int(coords[i]), Y: big.NewInt(coords[i+1])})
	}
	return res
}

func Test_Interpolate_Small(t *testing.T) {
	res, err := Interpolate(points(1, 4, 2, 7, 3, 12))
	require.NoError(t, err)
	require.Equal(t, "3", res.String())

	// order of the points does not matter
	res, err = Interpolate(points(3, 12, 1, 4, 2, 7))
	require.NoError(t, err)
	require.Equal(t, "3", res.String())

	// f(x) = 1 - (x-2)^2
	res, err = Interpolate(points(1, 0, 2, 1, 3, 0))
	require.NoError(t, err)
	require.Equal(t, "-3", res.String())
}

func Test_Interpolate_Zero_Degree(t *testing.T) {
	res, err := Interpolate(points(1, 5))
	require.NoError(t, err)
	require.Equal(t, "5", res.String())

	res, err = Interpolate(points(1, 5, 2, 5, 3, 5))
	require.NoError(t, err)
	require.Equal(t, "5", res.String())

	res, err = Interpolate(points(4, 0, 9, 0))
	require.NoError(t, err)
	require.Equal(t, "0", res.String())
}

func Test_Interpolate_Known_Polynomial(t *testing.T) {
	// f(x) = -7 + 3x - 2x^2 + x^3
	poly := polynomialOf(-7, 3, -2, 1)

	xs := []int{2, 5, 11, 17}
	pts := make([]types.Point, len(xs))
	for i, x := range xs {
		pts[i] = types.Point{X: x, Y: poly.Evaluate(big.NewInt(int64(x)))}
	}

	res, err := Interpolate(pts)
	require.NoError(t, err)
	require.Equal(t, "-7", res.String())
}

func Test_Interpolate_Random_Polynomials(t *testing.T) {
	bound := new(big.Int).Lsh(big.NewInt(1), 300)

	for k := 1; k <= 12; k++ {
		secret, ok := new(big.Int).SetString("98765432109876543210987654321098765432109876543210987654321098765432109876543210", 10)
		require.True(t, ok)
		secret.Add(secret, big.NewInt(int64(k)))

		// degree strictly lower than k
		for degree := 0; degree < k; degree++ {
			poly, err := NewRandomPolynomial(secret, degree, bound)
			require.NoError(t, err)

			pts := make([]types.Point, k)
			for i := range pts {
				x := 3*i + 1
				pts[i] = types.Point{X: x, Y: poly.Evaluate(big.NewInt(int64(x)))}
			}

			res, err := Interpolate(pts)
			require.NoError(t, err)
			require.Equal(t, 0, secret.Cmp(res), "k=%d degree=%d", k, degree)
		}
	}
}

func Test_Interpolate_Duplicate_X(t *testing.T) {
	_, err := Interpolate(points(1, 4, 2, 7, 1, 9))
	require.ErrorIs(t, err, types.ErrDegenerateInterpolation)
	require.Contains(t, err.Error(), "x = 1")

	_, err = Interpolate(points(2, 7, 2, 7))
	require.ErrorIs(t, err, types.ErrDegenerateInterpolation)
}

func Test_Interpolate_Non_Integer(t *testing.T) {
	// the line through (1,1) and (3,0) crosses x = 0 at 3/2
	_, err := Interpolate(points(1, 1, 3, 0))
	require.ErrorIs(t, err, types.ErrNonIntegerResult)
	require.Contains(t, err.Error(), "3/2")
}

func Test_Interpolate_Empty(t *testing.T) {
	_, err := Interpolate(nil)
	require.ErrorIs(t, err, types.ErrInsufficientShares)

	_, err = Interpolate([]types.Point{{X: 1}})
	require.ErrorIs(t, err, types.ErrMalformedRecord)
}
