package key

import (
	"github.com/drand/kyber"

	"github.com/nucypher/NuBLS/curve"
	"github.com/nucypher/NuBLS/sig"
)

// Verify checks the pairing equality e(p, message) == e(G1_generator, s.Sigma())
// and returns the corresponding two-variant VerificationResult. Both outcomes
// must be handled explicitly at the call site; VerificationResult is not
// implicitly convertible to bool.
func (p PublicKey) Verify(message kyber.Point, s sig.Signature) sig.VerificationResult {
	ok := curve.Verify(p.p, message, s.Sigma())
	log.Debugw("verified signature", "fragment", s.IsFragment(), "valid", ok)
	return sig.VerificationResultFrom(ok)
}
