package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SECRET_KEY", "test-secret")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.Addr)
	require.Equal(t, "test-secret", cfg.SecretKey)
	require.Equal(t, time.Hour, cfg.TokenTTL)
	require.Equal(t, 10, cfg.BcryptCost)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SECRET_KEY", "test-secret")
	t.Setenv("ADDR", ":9090")
	t.Setenv("TOKEN_TTL", "30m")
	t.Setenv("BCRYPT_COST", "12")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":9090", cfg.Addr)
	require.Equal(t, 30*time.Minute, cfg.TokenTTL)
	require.Equal(t, 12, cfg.BcryptCost)
}

func TestLoad_MissingSecretIsFatal(t *testing.T) {
	t.Setenv("SECRET_KEY", "")

	_, err := Load()
	require.Error(t, err)
}
