// internal/pkg/auth/auth_test.go
package auth

import (
	"testing"
	"time"

	"github.com/coupledelight/shop-api/internal/config"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Name: "CoupleDelight"},
		JWT: config.JWTConfig{
			Secret:             "0123456789abcdef0123456789abcdef",
			AccessTokenExpiry:  time.Hour,
			RefreshTokenExpiry: 24 * time.Hour,
		},
	}
}

func TestJWT_RoundTrip(t *testing.T) {
	m := NewJWTManager(testConfig())
	userID := uuid.New()

	access, err := m.GenerateAccessToken(userID, "a@b.in", true)
	require.NoError(t, err)

	claims, err := m.ValidateAccessToken(access)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.True(t, claims.IsAdmin)

	_, err = m.ValidateRefreshToken(access)
	assert.Error(t, err)

	refresh, err := m.GenerateRefreshToken(userID, "a@b.in")
	require.NoError(t, err)
	claims, err = m.ValidateRefreshToken(refresh)
	require.NoError(t, err)
	assert.False(t, claims.IsAdmin)
}

func TestJWT_Rejects(t *testing.T) {
	m := NewJWTManager(testConfig())
	token, err := m.GenerateAccessToken(uuid.New(), "a@b.in", false)
	require.NoError(t, err)

	t.Run("expired", func(t *testing.T) {
		later := NewJWTManager(testConfig())
		later.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
		_, err := later.ValidateAccessToken(token)
		assert.Error(t, err)
	})

	t.Run("wrong_secret", func(t *testing.T) {
		cfg := testConfig()
		cfg.JWT.Secret = "ffffffffffffffffffffffffffffffff"
		_, err := NewJWTManager(cfg).ValidateAccessToken(token)
		assert.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := m.ValidateAccessToken("not.a.token")
		assert.Error(t, err)
	})
}

func TestExtractTokenFromHeader(t *testing.T) {
	assert.Equal(t, "abc", ExtractTokenFromHeader("Bearer abc"))
	assert.Equal(t, "abc", ExtractTokenFromHeader("bearer abc"))
	assert.Empty(t, ExtractTokenFromHeader("Basic abc"))
	assert.Empty(t, ExtractTokenFromHeader("Bearer "))
}

func TestPasswordManager(t *testing.T) {
	p := NewPasswordManager(bcrypt.MinCost)

	hash, err := p.HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NoError(t, p.VerifyPassword("s3cret-pass", hash))
	assert.Error(t, p.VerifyPassword("wrong", hash))

	_, err = p.HashPassword("abc")
	assert.ErrorContains(t, err, "at least 6")

	_, err = p.HashPassword("Password1")
	assert.ErrorContains(t, err, "too common")
}
