// Package key implements the BLS12-381 key primitives: PrivateKey and
// PublicKey, their construction, derivation, and the threshold (Shamir)
// and proxy re-signature protocol layers built on top of them.
package key

import (
	"github.com/drand/kyber"

	"github.com/nucypher/NuBLS/curve"
	"github.com/nucypher/NuBLS/entropy"
	"github.com/nucypher/NuBLS/internal/blslog"
	"github.com/nucypher/NuBLS/sig"
)

var log = blslog.DefaultLogger().Named("key")

// scalarWidth is the width, in bytes, drawn from the entropy source before
// wide-modular reduction into Fr. Drawing twice the field width keeps the
// reduction bias cryptographically negligible.
const scalarWidth = 64

// PrivateKey is an (s, id?) pair: a scalar in Fr, plus an optional Shamir
// share identifier. PrivateKey is immutable after construction and cheap to
// copy — every field is a value-like kyber.Scalar.
type PrivateKey struct {
	s  kyber.Scalar
	id kyber.Scalar // nil iff this is an ordinary (non-fragment) key
}

// PublicKey is a point P = [s]*G1_generator in G1. PrivateKey.PublicKey does
// not check for fragments: called on a fragment it returns the point of the
// share scalar, which is not the public key of the key that was split.
type PublicKey struct {
	p kyber.Point
}

// Random draws a fresh private key using the operating system's entropy
// source, reduced into Fr by wide-modular reduction.
func Random() PrivateKey {
	return PrivateKey{s: randomScalar(nil)}
}

// randomScalar draws a uniform element of Fr from source (nil meaning the
// OS entropy source).
func randomScalar(source entropy.Source) kyber.Scalar {
	buf := entropy.Bytes(source, scalarWidth)
	s := curve.Fr()
	s.SetBytes(buf)
	return s
}

// PublicKey derives the public key P = [s]*G1_generator corresponding to k.
// This is deterministic and has no failure mode beyond arithmetic panics
// inherited from the curve library.
func (k PrivateKey) PublicKey() PublicKey {
	return PublicKey{p: curve.G1().Point().Mul(k.s, nil)}
}

// Sign produces a signature sigma = [s]*message over the pre-mapped G2
// message point. If k is a fragment, the resulting signature inherits its
// share identifier; fragment status propagates through signing.
func (k PrivateKey) Sign(message kyber.Point) sig.Signature {
	sigma := curve.G2().Point().Mul(k.s, message)
	return sig.New(sigma, k.id)
}

// IsFragment reports whether k was produced by Split (or Recover's inverse:
// an ordinary key never carries a share identifier).
func (k PrivateKey) IsFragment() bool {
	return k.id != nil
}

// Equal reports whether two private keys hold the same scalar and the same
// fragment status (and, if fragments, the same share identifier).
func (k PrivateKey) Equal(other PrivateKey) bool {
	if !k.s.Equal(other.s) {
		return false
	}
	if k.IsFragment() != other.IsFragment() {
		return false
	}
	if k.IsFragment() && !k.id.Equal(other.id) {
		return false
	}
	return true
}

// Equal reports whether two public keys hold the same G1 point.
func (p PublicKey) Equal(other PublicKey) bool {
	return p.p.Equal(other.p)
}

// Point exposes the underlying G1 point, for callers that need to feed it
// into lower-level curve operations (e.g. composing with other kyber code).
func (p PublicKey) Point() kyber.Point {
	return p.p
}
