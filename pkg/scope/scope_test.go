package scope

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	_, err := New("", time.Hour)
	assert.ErrorIs(t, err, ErrEmptySecret)
}

func TestCreateAndVerify(t *testing.T) {
	m, err := New("secret", time.Hour)
	require.NoError(t, err)

	token, err := m.CreateToken("user-1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	p, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", p.UserID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), p.ExpiresAt, 5*time.Second)
}

func TestVerifyRejects(t *testing.T) {
	m, err := New("secret", time.Hour)
	require.NoError(t, err)

	t.Run("garbage", func(t *testing.T) {
		_, err := m.Verify("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("other secret", func(t *testing.T) {
		other, _ := New("other", time.Hour)
		token, err := other.CreateToken("user-1")
		require.NoError(t, err)

		_, err = m.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		jm := m.(*jwtManager)
		past := time.Now().Add(-2 * time.Hour)
		expired := &jwtManager{secret: jm.secret, expiration: time.Hour, now: func() time.Time { return past }}

		token, err := expired.CreateToken("user-1")
		require.NoError(t, err)

		_, err = m.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
