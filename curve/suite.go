// Package curve binds this module to a concrete BLS12-381 pairing
// implementation. Every other package in this module reaches the curve
// only through the narrow surface exposed here (kyber.Group, kyber.Point,
// kyber.Scalar, and Verify), so the underlying pairing library stays a
// swappable given dependency rather than bleeding into the protocol code.
package curve

import (
	"github.com/drand/kyber"
	bls "github.com/drand/kyber-bls12381"
)

// Suite is the BLS12-381 pairing suite used by this module. Keys live in
// G1, signatures and messages live in G2.
var Suite = bls.NewBLS12381Suite()

// G1 is the group private keys and public keys live in.
func G1() kyber.Group {
	return Suite.G1()
}

// G2 is the group signatures and messages live in.
func G2() kyber.Group {
	return Suite.G2()
}

// Fr is the scalar field shared by G1 and G2. Scalar arithmetic is always
// performed through G1's Scalar() for consistency, even when the result
// will be used as a G2 exponent.
func Fr() kyber.Scalar {
	return G1().Scalar()
}

// G1Generator returns the canonical base point of G1.
func G1Generator() kyber.Point {
	return G1().Point().Base()
}

// G2Generator returns the canonical base point of G2.
func G2Generator() kyber.Point {
	return G2().Point().Base()
}

// pairer is satisfied by pairing suites that can evaluate e(p1, p2) and
// compare it against e(p3, p4) without needing the caller to manage GT
// elements directly.
type pairer interface {
	ValidatePairing(p1, p2, p3, p4 kyber.Point) bool
}

// Verify checks the BLS pairing equation e(pk, message) == e(G1Generator, sigma).
// pk and G1Generator live in G1; message and sigma live in G2.
func Verify(pk kyber.Point, message kyber.Point, sigma kyber.Point) bool {
	p, ok := Suite.(pairer)
	if !ok {
		// the chosen suite is expected to support direct pairing validation;
		// this is a configuration error, not a user-facing one.
		panic("curve: configured suite does not support pairing validation")
	}
	return p.ValidatePairing(pk, message, G1Generator(), sigma)
}
