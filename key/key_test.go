package key

import (
	"testing"

	"github.com/drand/kyber"
	"github.com/drand/kyber/util/random"
	"github.com/stretchr/testify/require"

	"github.com/nucypher/NuBLS/blserrors"
	"github.com/nucypher/NuBLS/curve"
	"github.com/nucypher/NuBLS/sig"
)

func randomMessage() kyber.Point {
	return curve.G2().Point().Pick(random.New())
}

func TestPublicKeyRoundTrip(t *testing.T) {
	sk := Random()
	pk := sk.PublicKey()

	b, err := pk.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, b, publicKeySize)

	pk2, err := UnmarshalPublicKey(b)
	require.NoError(t, err)
	require.True(t, pk.Equal(pk2))
}

func TestPrivateKeyRoundTripOrdinary(t *testing.T) {
	sk := Random()
	require.False(t, sk.IsFragment())

	b, err := sk.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, b, ordinaryPriLen)

	sk2, err := UnmarshalPrivateKey(b)
	require.NoError(t, err)
	require.True(t, sk.Equal(sk2))
}

func TestPrivateKeyRoundTripFragment(t *testing.T) {
	sk := Random()
	fragments, err := sk.Split(2, 3)
	require.NoError(t, err)

	for _, f := range fragments {
		require.True(t, f.IsFragment())
		b, err := f.MarshalBinary()
		require.NoError(t, err)
		require.Len(t, b, fragmentPriLen)

		f2, err := UnmarshalPrivateKey(b)
		require.NoError(t, err)
		require.True(t, f.Equal(f2))
	}
}

func TestUnmarshalPrivateKeyWrongLength(t *testing.T) {
	_, err := UnmarshalPrivateKey(make([]byte, 10))
	require.ErrorIs(t, err, blserrors.ErrWrongLength)
}

func TestSignAndVerify(t *testing.T) {
	sk := Random()
	pk := sk.PublicKey()
	message := randomMessage()

	signature := sk.Sign(message)
	require.False(t, signature.IsFragment())

	result := pk.Verify(message, signature)
	require.True(t, result.IsValid())
	require.False(t, result.IsInvalid())
}

func TestVerifyRejectsWrongMessage(t *testing.T) {
	sk := Random()
	pk := sk.PublicKey()
	message := randomMessage()
	other := randomMessage()

	signature := sk.Sign(message)
	result := pk.Verify(other, signature)
	require.True(t, result.IsInvalid())
}

func TestVerifyRejectsWrongKey(t *testing.T) {
	sk := Random()
	other := Random()
	message := randomMessage()

	signature := sk.Sign(message)
	result := other.PublicKey().Verify(message, signature)
	require.True(t, result.IsInvalid())
}

func TestSplitRejectsInvalidThreshold(t *testing.T) {
	sk := Random()
	_, err := sk.Split(0, 3)
	require.Error(t, err)
	_, err = sk.Split(4, 3)
	require.Error(t, err)
	_, err = sk.Split(1, MaxShares+1)
	require.Error(t, err)
}

func TestSplitRejectsFragment(t *testing.T) {
	sk := Random()
	fragments, err := sk.Split(2, 3)
	require.NoError(t, err)
	_, err = fragments[0].Split(2, 3)
	require.Error(t, err)
}

func TestRecoverReconstructsOriginalSecret(t *testing.T) {
	sk := Random()
	fragments, err := sk.Split(3, 5)
	require.NoError(t, err)

	// Any 3-of-5 subset must recover the original key.
	subsets := [][]int{{0, 1, 2}, {1, 2, 3}, {0, 2, 4}, {2, 3, 4}}
	for _, subset := range subsets {
		frags := make([]PrivateKey, len(subset))
		for i, idx := range subset {
			frags[i] = fragments[idx]
		}
		recovered, err := Recover(frags)
		require.NoError(t, err)
		require.True(t, sk.Equal(recovered))
	}
}

func TestRecoverBelowThresholdDoesNotMatch(t *testing.T) {
	sk := Random()
	fragments, err := sk.Split(3, 5)
	require.NoError(t, err)

	recovered, err := Recover(fragments[:2])
	require.NoError(t, err)
	require.False(t, sk.Equal(recovered))
}

func TestRecoverRejectsEmpty(t *testing.T) {
	_, err := Recover(nil)
	require.Error(t, err)
}

func TestRecoverRejectsMixedOrdinaryKey(t *testing.T) {
	sk := Random()
	ordinary := Random()
	fragments, err := sk.Split(2, 3)
	require.NoError(t, err)
	_, err = Recover(append(fragments[:1], ordinary))
	require.Error(t, err)
}

func TestRecoverRejectsDuplicateIdentifiers(t *testing.T) {
	sk := Random()
	fragments, err := sk.Split(2, 3)
	require.NoError(t, err)
	_, err = Recover([]PrivateKey{fragments[0], fragments[0]})
	require.Error(t, err)
}

func TestFragmentSignaturesAssembleToOrdinarySignature(t *testing.T) {
	sk := Random()
	pk := sk.PublicKey()
	message := randomMessage()
	directSig := sk.Sign(message)

	fragments, err := sk.Split(3, 5)
	require.NoError(t, err)

	fragSigs := make([]sig.Signature, 0, 3)
	for _, f := range fragments[:3] {
		fragSigs = append(fragSigs, f.Sign(message))
	}

	assembled, err := sig.Assemble(fragSigs)
	require.NoError(t, err)
	require.True(t, assembled.Equal(directSig))

	result := pk.Verify(message, assembled)
	require.True(t, result.IsValid())
}

func TestDesignatedKeyIsSymmetric(t *testing.T) {
	alice := Random()
	bob := Random()

	phiFromAlice, err := alice.DesignatedKey(bob.PublicKey())
	require.NoError(t, err)
	phiFromBob, err := bob.DesignatedKey(alice.PublicKey())
	require.NoError(t, err)
	require.True(t, phiFromAlice.Equal(phiFromBob))
}

func TestResignProducesSignatureUnderOriginalKey(t *testing.T) {
	alice := Random()
	bob := Random()
	message := randomMessage()

	// Bob is delegated a designated key on behalf of Alice.
	phi, err := alice.DesignatedKey(bob.PublicKey())
	require.NoError(t, err)

	// Bob signs under phi; the re-signing key turns that into a signature
	// that verifies under Alice's own public key.
	sigUnderPhi := phi.Sign(message)

	rk, err := alice.ResigningKey(bob.PublicKey())
	require.NoError(t, err)

	resigned := rk.Resign(sigUnderPhi)
	result := alice.PublicKey().Verify(message, resigned)
	require.True(t, result.IsValid())
}

func TestIntermediateDesignatedSignatureDoesNotVerifyUnderDelegateKey(t *testing.T) {
	alice := Random()
	bob := Random()
	message := randomMessage()

	phi, err := bob.DesignatedKey(alice.PublicKey())
	require.NoError(t, err)
	sigUnderPhi := phi.Sign(message)

	result := bob.PublicKey().Verify(message, sigUnderPhi)
	require.True(t, result.IsInvalid())
}

func TestResignMatchesDirectSignature(t *testing.T) {
	alice := Random()
	bob := Random()
	message := randomMessage()

	phi, err := alice.DesignatedKey(bob.PublicKey())
	require.NoError(t, err)
	sigUnderPhi := phi.Sign(message)

	rk, err := alice.ResigningKey(bob.PublicKey())
	require.NoError(t, err)
	resigned := rk.Resign(sigUnderPhi)

	direct := alice.Sign(message)
	require.True(t, resigned.Equal(direct))
}

func TestFragmentEncodingDiffersFromOrdinaryEncoding(t *testing.T) {
	sk := Random()
	ordinaryBytes, err := sk.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, ordinaryBytes, 32)

	fragments, err := sk.Split(3, 5)
	require.NoError(t, err)
	fragmentBytes, err := fragments[0].MarshalBinary()
	require.NoError(t, err)
	require.Len(t, fragmentBytes, 64)
	require.NotEqual(t, ordinaryBytes, fragmentBytes[:32])
}
