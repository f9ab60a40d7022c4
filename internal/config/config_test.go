package config

import (
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "testing")
	t.Setenv("JWT_PRIVATE_KEY", "")
	t.Setenv("JWT_PUBLIC_KEY", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.True(t, cfg.IsTesting())
	assert.Equal(t, 20, cfg.Wallet.PageSize)
	assert.Equal(t, time.Second, cfg.Wallet.DebounceDelay)
	assert.Equal(t, 30*time.Minute, cfg.Wallet.SessionTTL)
	assert.Equal(t, 5, cfg.CircuitBreaker.MaxFailures)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowOrigins)
	assert.NotNil(t, cfg.JWT.PrivateKey)
	assert.NotNil(t, cfg.JWT.PublicKey)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "testing")
	t.Setenv("WALLET_PAGE_SIZE", "50")
	t.Setenv("WALLET_DEBOUNCE_DELAY", "250ms")
	t.Setenv("AUTO_MIGRATE", "true")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 50, cfg.Wallet.PageSize)
	assert.Equal(t, 250*time.Millisecond, cfg.Wallet.DebounceDelay)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CORSAllowOrigins)
}

func TestLoad_MalformedValuesFallBack(t *testing.T) {
	t.Setenv("APP_ENV", "testing")
	t.Setenv("WALLET_PAGE_SIZE", "twenty")
	t.Setenv("WALLET_DEBOUNCE_DELAY", "soon")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 20, cfg.Wallet.PageSize)
	assert.Equal(t, time.Second, cfg.Wallet.DebounceDelay)
}

func TestLoad_RejectsNonPositivePageSize(t *testing.T) {
	t.Setenv("APP_ENV", "testing")
	t.Setenv("WALLET_PAGE_SIZE", "0")

	_, err := Load()

	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad_ProductionRequiresKeys(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_PRIVATE_KEY", "")
	t.Setenv("JWT_PUBLIC_KEY", "")

	_, err := Load()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "must be set in production")
}

func TestLoad_KeysFromEnvironment(t *testing.T) {
	privateKey, publicKey, err := GenerateRSAKeyPair()
	require.NoError(t, err)

	privatePEM := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(privateKey)})
	publicDER, err := x509.MarshalPKIXPublicKey(publicKey)
	require.NoError(t, err)
	publicPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: publicDER})

	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_PRIVATE_KEY", base64.StdEncoding.EncodeToString(privatePEM))
	t.Setenv("JWT_PUBLIC_KEY", base64.StdEncoding.EncodeToString(publicPEM))

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.JWT.PublicKey.Equal(publicKey))
}

func TestServerConfig_SlogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, (&ServerConfig{LogLevel: "DEBUG"}).SlogLevel())
	assert.Equal(t, slog.LevelWarn, (&ServerConfig{LogLevel: "warn"}).SlogLevel())
	assert.Equal(t, slog.LevelError, (&ServerConfig{LogLevel: "error"}).SlogLevel())
	assert.Equal(t, slog.LevelInfo, (&ServerConfig{LogLevel: ""}).SlogLevel())
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{Host: "db", Port: "5432", User: "u", Password: "p", Name: "wallet", SSLMode: "disable"}

	assert.Equal(t, "host=db port=5432 user=u password=p dbname=wallet sslmode=disable", cfg.DSN())
}
