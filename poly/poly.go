// Package poly implements the two pure scalar-field operations the
// threshold protocols are built on: Horner evaluation and Lagrange basis
// coefficients. Both operate entirely over Fr and have no knowledge of
// keys, signatures, or curve points.
package poly

import (
	"github.com/drand/kyber"

	"github.com/nucypher/NuBLS/curve"
)

// Eval evaluates P(x) = coeffs[0] + coeffs[1]*x + ... + coeffs[k-1]*x^(k-1)
// using Horner's method: starting from the leading coefficient, repeatedly
// folding result = result*x + next into the remaining coefficients taken in
// reverse order.
//
// Eval panics if coeffs is empty; the caller must always supply at least the
// constant term. This mirrors spec.md's description of the condition as a
// programmer error rather than a recoverable one.
func Eval(coeffs []kyber.Scalar, x kyber.Scalar) kyber.Scalar {
	if len(coeffs) == 0 {
		panic("poly: Eval called with an empty coefficient list")
	}
	result := curve.Fr().Set(coeffs[len(coeffs)-1])
	for i := len(coeffs) - 2; i >= 0; i-- {
		result = curve.Fr().Mul(result, x)
		result = curve.Fr().Add(result, coeffs[i])
	}
	return result
}

// LambdaCoeff computes the Lagrange basis coefficient
//
//	lambda_i = prod_{j in indices, j != i} j * (j - i)^-1
//
// used to reconstruct P(0) from a set of (index, value) shares.
//
// If indices is empty, LambdaCoeff returns 1, the neutral element for the
// sums this coefficient feeds into. Any element of indices equal to i is
// skipped, since a share never contributes to its own coefficient; callers
// are responsible for ensuring the remaining indices are pairwise distinct,
// since (j - i) inverted at j == i is undefined and is precluded entirely by
// the skip.
func LambdaCoeff(i kyber.Scalar, indices []kyber.Scalar) kyber.Scalar {
	result := curve.Fr().One()
	for _, j := range indices {
		if j.Equal(i) {
			continue
		}
		// num = j, den = j - i
		num := curve.Fr().Set(j)
		den := curve.Fr().Sub(j, i)
		result = curve.Fr().Mul(result, num)
		result = curve.Fr().Mul(result, curve.Fr().Inv(den))
	}
	return result
}
