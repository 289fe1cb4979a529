// internal/config/config_test.go
package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "development")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "session_id", cfg.Cart.SessionCookie)
	assert.Equal(t, 30*24*time.Hour, cfg.Cart.TTL)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, "localhost:6379", cfg.GetRedisAddr())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("CART_TTL", "2h")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("DB_PORT", "6543")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 2*time.Hour, cfg.Cart.TTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Security.CORSAllowedOrigins)
	assert.Contains(t, cfg.GetDatabaseDSN(), "port=6543")
}

func TestValidate(t *testing.T) {
	t.Run("short_jwt_secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "too-short")
		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "JWT_SECRET")
	})

	t.Run("empty_cart_cookie", func(t *testing.T) {
		cfg := &Config{
			JWT:      JWTConfig{Secret: "0123456789abcdef0123456789abcdef"},
			Database: DatabaseConfig{Host: "db", Name: "shop", User: "shop"},
			Redis:    RedisConfig{Host: "cache"},
			Server:   ServerConfig{Port: "8080"},
		}
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "CART_SESSION_COOKIE")
	})
}
