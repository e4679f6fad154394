package key

import (
	"github.com/drand/kyber"

	"github.com/nucypher/NuBLS/blserrors"
	"github.com/nucypher/NuBLS/curve"
	"github.com/nucypher/NuBLS/poly"
)

// MaxShares is the historical ceiling on the number of shares a single
// Split call may produce. The ceiling traces back to a fixed-size internal
// recovery buffer from an earlier, sequential-index version of this scheme;
// since share identifiers are now drawn at random rather than assigned
// sequentially, the ceiling is no longer structurally required. It is kept
// here as a documented policy rather than silently dropped or silently
// changed, per the historical-artifact note in spec.md §9.
const MaxShares = 256

// Split implements (m, n) Shamir's Secret Sharing of k in Fr: a random
// degree-(m-1) polynomial is constructed with k's scalar as its constant
// term, and evaluated at n random, pairwise-distinct, non-zero points to
// produce n independent fragment keys.
//
// Preconditions 1 <= m <= n <= MaxShares are enforced and reported as an
// error rather than a panic, since m and n routinely originate outside the
// process (configuration, RPC parameters). Calling Split on an existing
// fragment is also rejected: a fragment's scalar is already a share, not a
// master secret, and splitting it again would silently produce shares of a
// share rather than the documented scheme.
func (k PrivateKey) Split(m, n int) ([]PrivateKey, error) {
	if m < 1 || m > n || n > MaxShares {
		return nil, blserrors.ErrInvalidThreshold
	}
	if k.IsFragment() {
		return nil, blserrors.ErrNotAFragment
	}

	coeffs := make([]kyber.Scalar, m)
	coeffs[0] = k.s
	for i := 1; i < m; i++ {
		coeffs[i] = randomScalar(nil)
	}

	seen := make(map[string]bool, n)
	fragments := make([]PrivateKey, n)
	for idx := 0; idx < n; idx++ {
		id := distinctNonZeroID(seen)
		y := poly.Eval(coeffs, id)
		fragments[idx] = PrivateKey{s: y, id: id}
	}
	log.Debugw("split private key", "threshold", m, "shares", n)
	return fragments, nil
}

// distinctNonZeroID draws a random Fr element that is neither zero nor
// already present in seen, recording it before returning.
func distinctNonZeroID(seen map[string]bool) kyber.Scalar {
	for {
		id := randomScalar(nil)
		if id.Equal(curve.Fr().Zero()) {
			continue
		}
		buf, _ := id.MarshalBinary()
		key := string(buf)
		if seen[key] {
			continue
		}
		seen[key] = true
		return id
	}
}

// Recover reconstructs P(0) = sum(y_k * lambda_k) from a set of fragment
// private keys, returning an ordinary (non-fragment) PrivateKey.
//
// Supplying fewer than the original threshold's worth of fragments does not
// fail: it silently yields a key unequal to the original secret. This is an
// intentional property of Shamir's scheme (perfect secrecy below threshold)
// and is not detectable from the fragments alone; callers who must detect
// threshold violations need an out-of-band mechanism.
func Recover(fragments []PrivateKey) (PrivateKey, error) {
	if len(fragments) == 0 {
		return PrivateKey{}, blserrors.ErrNoFragments
	}
	indices := make([]kyber.Scalar, len(fragments))
	seen := make(map[string]bool, len(fragments))
	for i, f := range fragments {
		if !f.IsFragment() {
			return PrivateKey{}, blserrors.ErrNotAFragment
		}
		buf, _ := f.id.MarshalBinary()
		if seen[string(buf)] {
			return PrivateKey{}, blserrors.ErrMixedFragments
		}
		seen[string(buf)] = true
		indices[i] = f.id
	}

	secret := curve.Fr().Zero()
	for _, f := range fragments {
		lambda := poly.LambdaCoeff(f.id, indices)
		term := curve.Fr().Mul(lambda, f.s)
		secret = curve.Fr().Add(secret, term)
	}
	log.Debugw("recovered private key", "fragments", len(fragments))
	return PrivateKey{s: secret}, nil
}
