package key

import (
	"crypto/sha512"

	"github.com/nucypher/NuBLS/curve"
	"github.com/nucypher/NuBLS/sig"
)

// DesignatedKey computes phi = H(DH), where DH = [k.s]*other.p is the
// Diffie-Hellman value shared between k's holder and other's holder, and H
// is SHA-512 mapped into Fr by wide-modular reduction. This is symmetric:
// Alice computing DesignatedKey against Bob's public key and Bob computing
// DesignatedKey against Alice's public key arrive at the same phi, since the
// DH value itself is the same point under either order of scalar
// multiplication.
//
// The underlying pairing library (treated as a given dependency, per
// spec.md §1) exposes only the canonical compressed encoding of a G1 point
// through the generic kyber.Point interface this module programs against;
// the hash input here is that compressed encoding rather than an
// uncompressed one (see SPEC_FULL.md §4.5 for the full rationale). This
// does not affect the symmetry or correctness properties PRS is tested
// against, since both parties hash the same bytes.
func (k PrivateKey) DesignatedKey(other PublicKey) (PrivateKey, error) {
	dh := curve.G1().Point().Mul(k.s, other.p)
	dhBytes, err := dh.MarshalBinary()
	if err != nil {
		return PrivateKey{}, err
	}
	digest := sha512.Sum512(dhBytes)
	phi := curve.Fr()
	phi.SetBytes(digest[:])
	return PrivateKey{s: phi}, nil
}

// ResigningKey computes the re-signing key rk_{other->k} = k.s / phi, where
// phi is k's designated key for other (the delegate). Applying rk via
// Resign to a signature made under phi yields a signature under k's own
// key, without the delegate ever holding k's private scalar.
func (k PrivateKey) ResigningKey(other PublicKey) (PrivateKey, error) {
	phi, err := k.DesignatedKey(other)
	if err != nil {
		return PrivateKey{}, err
	}
	inv := curve.Fr().Inv(phi.s)
	rk := curve.Fr().Mul(k.s, inv)
	return PrivateKey{s: rk}, nil
}

// Resign applies a re-signing key to a signature, returning [rk]*sigma. If
// sigma = [phi]*M is a signature made under the designated key phi that rk
// was derived against, the result is exactly [s]*M: the signature that the
// private key rk was derived from would have produced directly.
func (k PrivateKey) Resign(s sig.Signature) sig.Signature {
	resigned := curve.G2().Point().Mul(k.s, s.Sigma())
	return sig.New(resigned, nil)
}
