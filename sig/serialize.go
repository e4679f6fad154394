package sig

import (
	"github.com/nucypher/NuBLS/blserrors"
	"github.com/nucypher/NuBLS/curve"
)

const (
	scalarSize     = 32 // canonical little-endian Fr encoding, shared with package key
	sigSize        = 96 // compressed G2 encoding
	ordinarySigLen = sigSize
	fragmentSigLen = sigSize + scalarSize
)

// MarshalBinary encodes s as sigma_bytes (96 bytes, ordinary signatures) or
// sigma_bytes || id_bytes (128 bytes, fragments).
func (s Signature) MarshalBinary() ([]byte, error) {
	sigmaBytes, err := s.sigma.MarshalBinary()
	if err != nil {
		return nil, err
	}
	if !s.IsFragment() {
		return sigmaBytes, nil
	}
	idBytes, err := s.id.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return append(sigmaBytes, idBytes...), nil
}

// UnmarshalSignature decodes data produced by Signature.MarshalBinary. As
// with private keys, the length of data is the sole external signal of
// fragment vs ordinary form: 96 bytes is ordinary, 128 bytes is a fragment.
func UnmarshalSignature(data []byte) (Signature, error) {
	switch len(data) {
	case ordinarySigLen:
		p := curve.G2().Point()
		if err := p.UnmarshalBinary(data); err != nil {
			return Signature{}, blserrors.ErrMalformedPoint
		}
		return Signature{sigma: p}, nil
	case fragmentSigLen:
		p := curve.G2().Point()
		if err := p.UnmarshalBinary(data[:sigSize]); err != nil {
			return Signature{}, blserrors.ErrMalformedPoint
		}
		id := curve.Fr()
		if err := id.UnmarshalBinary(data[sigSize:]); err != nil {
			return Signature{}, blserrors.ErrMalformedScalar
		}
		if id.Equal(curve.Fr().Zero()) {
			return Signature{}, blserrors.ErrMalformedScalar
		}
		return Signature{sigma: p, id: id}, nil
	default:
		return Signature{}, blserrors.ErrWrongLength
	}
}
