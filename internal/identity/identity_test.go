package identity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-secret"

func TestJWTVerifier_Verify(t *testing.T) {
	verifier := NewJWTVerifier(testSecret)

	t.Run("valid token round trip", func(t *testing.T) {
		token, err := Sign(testSecret, "alice@example.com", time.Hour)
		require.NoError(t, err)

		email, err := verifier.Verify(token)
		assert.NoError(t, err)
		assert.Equal(t, "alice@example.com", email)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := Sign("another-secret", "alice@example.com", time.Hour)
		require.NoError(t, err)

		_, err = verifier.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		token, err := Sign(testSecret, "alice@example.com", -time.Minute)
		require.NoError(t, err)

		_, err = verifier.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("missing email claim", func(t *testing.T) {
		token, err := Sign(testSecret, "", time.Hour)
		require.NoError(t, err)

		_, err = verifier.Verify(token)
		assert.ErrorIs(t, err, ErrNoEmail)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := verifier.Verify("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
