package sign

import (
	"encoding/hex"
	"testing"

	sha256 "github.com/minio/sha256-simd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smallyu/go-weierstrass/internal/crypto/curves"
	"github.com/smallyu/go-weierstrass/pkg/ecc"
)

func TestBatchSign(t *testing.T) {
	c := curves.P192()
	kp := newKey(t, c)

	digests := []string{
		sha256Hex([]byte("message 1")),
		sha256Hex([]byte("message 2")),
		sha256Hex([]byte("message 3")),
	}

	batch, err := SignBatch(c, kp, digests)
	require.NoError(t, err)
	require.Len(t, batch.Signatures, len(digests))

	results, err := VerifyBatch(c, batch, kp.Public())
	require.NoError(t, err)
	for i, res := range results {
		assert.True(t, res.Valid(), "item %d: %v", i, res.Err)
	}

	t.Run("SwappedSignatures", func(t *testing.T) {
		swapped := &BatchSignResult{
			Digests:    batch.Digests,
			Signatures: []*Signature{batch.Signatures[1], batch.Signatures[0], batch.Signatures[2]},
		}
		results, err := VerifyBatch(c, swapped, kp.Public())
		require.NoError(t, err)
		assert.False(t, results[0].Valid())
		assert.False(t, results[1].Valid())
		assert.True(t, results[2].Valid())
	})

	t.Run("DigestTruncation", func(t *testing.T) {
		truncated, err := SignBatch(c, kp, digests, WithDigestTruncation())
		require.NoError(t, err)

		results, err := VerifyBatch(c, truncated, kp.Public(), WithDigestTruncation())
		require.NoError(t, err)
		for i, res := range results {
			assert.True(t, res.Valid(), "item %d: %v", i, res.Err)
		}

		results, err = VerifyBatch(c, truncated, kp.Public())
		require.NoError(t, err)
		for i, res := range results {
			assert.Equal(t, StatusInvalid, res.Status, "item %d", i)
		}
	})

	t.Run("LengthMismatch", func(t *testing.T) {
		_, err := VerifyBatch(c, &BatchSignResult{Digests: digests}, kp.Public())
		assert.Error(t, err)
	})
}

func TestBatchSignErrors(t *testing.T) {
	c := curves.P192()
	kp := newKey(t, c)

	_, err := SignBatch(c, kp, nil)
	assert.ErrorIs(t, err, ecc.ErrInvalidDigest)

	_, err = SignBatch(c, kp, []string{testDigest, "bogus"})
	assert.ErrorIs(t, err, ecc.ErrInvalidDigest)

	_, err = SignBatch(c, nil, []string{testDigest})
	assert.ErrorIs(t, err, ecc.ErrUninitializedKey)
}

func sha256Hex(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
