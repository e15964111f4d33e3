package security

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// small parameters keep the tests fast
func testHasher() *Hasher {
	return NewHasherWithParams(Params{
		Memory:      8 * 1024,
		Time:        1,
		Parallelism: 1,
		SaltLen:     16,
		KeyLen:      32,
	})
}

func TestHasher(t *testing.T) {
	t.Run("should verify the password it hashed", func(t *testing.T) {
		h := testHasher()

		encoded, err := h.Hash("secret1")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(encoded, "$argon2id$v=19$"))

		ok, err := h.Verify("secret1", encoded)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("should refuse a wrong password", func(t *testing.T) {
		h := testHasher()

		encoded, err := h.Hash("secret1")
		require.NoError(t, err)

		ok, err := h.Verify("secret2", encoded)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("should produce distinct hashes for the same password", func(t *testing.T) {
		h := testHasher()

		first, err := h.Hash("secret1")
		require.NoError(t, err)
		second, err := h.Hash("secret1")
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})

	t.Run("should verify a hash produced with different parameters", func(t *testing.T) {
		encoded, err := testHasher().Hash("secret1")
		require.NoError(t, err)

		ok, err := NewHasher().Verify("secret1", encoded)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("should reject an empty password", func(t *testing.T) {
		_, err := testHasher().Hash("")
		assert.Error(t, err)
	})

	t.Run("should reject malformed hashes", func(t *testing.T) {
		h := testHasher()

		for _, encoded := range []string{
			"",
			"plaintext",
			"$bcrypt$v=19$m=8192,t=1,p=1$c2FsdA$aGFzaA",
			"$argon2id$v=19$m=8192,t=1$c2FsdA$aGFzaA",
			"$argon2id$v=19$m=8192,t=1,p=1$not-base64!$aGFzaA",
		} {
			_, err := h.Verify("secret1", encoded)
			assert.ErrorIs(t, err, ErrInvalidHash, encoded)
		}
	})
}
