// Package sig implements the BLS signature primitive: construction,
// serialization, and threshold (Lagrange) assembly of fragment signatures.
// Verification lives on key.PublicKey, since it is keyed off the public key
// rather than the signature.
package sig

import (
	"github.com/drand/kyber"

	"github.com/nucypher/NuBLS/blserrors"
	"github.com/nucypher/NuBLS/curve"
	"github.com/nucypher/NuBLS/internal/blslog"
	"github.com/nucypher/NuBLS/poly"
)

var log = blslog.DefaultLogger().Named("sig")

// Signature is a (sigma, id?) pair: a point in G2, plus an optional Shamir
// share identifier inherited from the signing key. Signature is immutable
// after construction and cheap to copy.
type Signature struct {
	sigma kyber.Point
	id    kyber.Scalar // nil iff this signature was produced by an ordinary key
}

// New constructs a Signature from its point and an optional share
// identifier (nil for an ordinary signature). It is exported for use by the
// key package, which creates Signature values when signing and re-signing.
func New(sigma kyber.Point, id kyber.Scalar) Signature {
	return Signature{sigma: sigma, id: id}
}

// Sigma exposes the underlying G2 point.
func (s Signature) Sigma() kyber.Point {
	return s.sigma
}

// IsFragment reports whether s was produced by signing with a fragment
// private key.
func (s Signature) IsFragment() bool {
	return s.id != nil
}

// Equal reports whether two signatures hold the same point and the same
// fragment status (and, if fragments, the same share identifier).
func (s Signature) Equal(other Signature) bool {
	if !s.sigma.Equal(other.sigma) {
		return false
	}
	if s.IsFragment() != other.IsFragment() {
		return false
	}
	if s.IsFragment() && !s.id.Equal(other.id) {
		return false
	}
	return true
}

// Assemble is the signature analogue of key.Recover: it combines fragment
// signatures on the same message into the signature the undivided key would
// have produced, via the same Lagrange coefficients derived from the
// embedded share identifiers. The result is an ordinary (non-fragment)
// signature.
//
// Because BLS signing is deterministic given a key and a message, the
// assembled signature is bit-for-bit identical to sk.Sign(M) for the
// original undivided key sk — not merely equivalent under verification.
//
// All fragments must have signed the identical message point; Assemble has
// no way to detect a mismatch; a message mismatch across fragments
// produces an arithmetically well-formed but meaningless signature.
func Assemble(fragments []Signature) (Signature, error) {
	if len(fragments) == 0 {
		return Signature{}, blserrors.ErrNoFragments
	}
	indices := make([]kyber.Scalar, len(fragments))
	seen := make(map[string]bool, len(fragments))
	for i, f := range fragments {
		if !f.IsFragment() {
			return Signature{}, blserrors.ErrNotAFragment
		}
		buf, _ := f.id.MarshalBinary()
		if seen[string(buf)] {
			return Signature{}, blserrors.ErrMixedFragments
		}
		seen[string(buf)] = true
		indices[i] = f.id
	}

	assembled := curve.G2().Point().Null()
	for _, f := range fragments {
		lambda := poly.LambdaCoeff(f.id, indices)
		term := curve.G2().Point().Mul(lambda, f.sigma)
		assembled = curve.G2().Point().Add(assembled, term)
	}
	log.Debugw("assembled threshold signature", "fragments", len(fragments))
	return Signature{sigma: assembled}, nil
}
