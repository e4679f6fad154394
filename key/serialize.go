package key

import (
	"github.com/nucypher/NuBLS/blserrors"
	"github.com/nucypher/NuBLS/curve"
)

const (
	scalarSize     = 32 // canonical little-endian Fr encoding
	publicKeySize  = 48 // compressed G1 encoding
	ordinaryPriLen = scalarSize
	fragmentPriLen = 2 * scalarSize
)

// MarshalBinary encodes k as s_bytes (32 bytes, ordinary keys) or
// s_bytes || id_bytes (64 bytes, fragments).
func (k PrivateKey) MarshalBinary() ([]byte, error) {
	sBytes, err := k.s.MarshalBinary()
	if err != nil {
		return nil, err
	}
	if !k.IsFragment() {
		return sBytes, nil
	}
	idBytes, err := k.id.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return append(sBytes, idBytes...), nil
}

// UnmarshalPrivateKey decodes data produced by PrivateKey.MarshalBinary. The
// length of data is the sole external signal of fragment vs ordinary form:
// 32 bytes is ordinary, 64 bytes is a fragment. Any other length, or a
// non-canonical scalar encoding, is rejected as invalid input.
func UnmarshalPrivateKey(data []byte) (PrivateKey, error) {
	switch len(data) {
	case ordinaryPriLen:
		s := curve.Fr()
		if err := s.UnmarshalBinary(data); err != nil {
			return PrivateKey{}, blserrors.ErrMalformedScalar
		}
		return PrivateKey{s: s}, nil
	case fragmentPriLen:
		s := curve.Fr()
		if err := s.UnmarshalBinary(data[:scalarSize]); err != nil {
			return PrivateKey{}, blserrors.ErrMalformedScalar
		}
		id := curve.Fr()
		if err := id.UnmarshalBinary(data[scalarSize:]); err != nil {
			return PrivateKey{}, blserrors.ErrMalformedScalar
		}
		if id.Equal(curve.Fr().Zero()) {
			return PrivateKey{}, blserrors.ErrMalformedScalar
		}
		return PrivateKey{s: s, id: id}, nil
	default:
		return PrivateKey{}, blserrors.ErrWrongLength
	}
}

// MarshalBinary encodes p as its compressed G1 point (48 bytes).
func (p PublicKey) MarshalBinary() ([]byte, error) {
	return p.p.MarshalBinary()
}

// UnmarshalPublicKey decodes a compressed G1 point produced by
// PublicKey.MarshalBinary.
func UnmarshalPublicKey(data []byte) (PublicKey, error) {
	if len(data) != publicKeySize {
		return PublicKey{}, blserrors.ErrWrongLength
	}
	p := curve.G1().Point()
	if err := p.UnmarshalBinary(data); err != nil {
		return PublicKey{}, blserrors.ErrMalformedPoint
	}
	return PublicKey{p: p}, nil
}
