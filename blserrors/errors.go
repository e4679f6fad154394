// Package blserrors defines the sentinel errors for the "invalid input"
// failure class: conditions reachable from untrusted serialized bytes or
// caller-supplied threshold parameters. Entropy failure and the empty
// polynomial remain panics, since the spec frames them as programmer errors
// unreachable given correct call-site behavior.
package blserrors

import "errors"

var (
	// ErrMalformedScalar is returned when a byte slice does not decode to a
	// canonical Fr scalar.
	ErrMalformedScalar = errors.New("blscore: malformed scalar encoding")

	// ErrMalformedPoint is returned when a byte slice does not decode to a
	// canonical, valid-subgroup curve point.
	ErrMalformedPoint = errors.New("blscore: malformed point encoding")

	// ErrWrongLength is returned when serialized bytes have a length that
	// matches neither the ordinary nor the fragment form for the value.
	ErrWrongLength = errors.New("blscore: serialized data has the wrong length")

	// ErrInvalidThreshold is returned when Split is called with parameters
	// that violate 1 <= m <= n <= MaxShares.
	ErrInvalidThreshold = errors.New("blscore: invalid (m, n) threshold parameters")

	// ErrNoFragments is returned when Recover or Assemble is called with an
	// empty fragment set.
	ErrNoFragments = errors.New("blscore: no fragments supplied")

	// ErrNotAFragment is returned when an ordinary (non-fragment) key or
	// signature is supplied where a fragment is required.
	ErrNotAFragment = errors.New("blscore: value is not a fragment")

	// ErrMixedFragments is a best-effort check: fragment identifiers within
	// a single Recover/Assemble call must be pairwise distinct.
	ErrMixedFragments = errors.New("blscore: duplicate fragment identifier")
)
