package configcmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"oficina/internal/infrastructure/config"
	sharedConfig "oficina/internal/shared/config"
)

func TestWrite_MasksSecrets(t *testing.T) {
	cfg := &config.Config{
		Server:   sharedConfig.ServerConfig{Port: 8000},
		Database: sharedConfig.DatabaseConfig{Driver: "mysql", Password: "db-password"},
		Auth: sharedConfig.AuthConfig{
			JWT: sharedConfig.JWTConfig{Secret: "super-secret-key"},
		},
		Email: sharedConfig.EmailConfig{SMTPPassword: "smtp"},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, cfg))

	out := buf.String()
	assert.NotContains(t, out, "db-password")
	assert.NotContains(t, out, "super-secret-key")
	assert.Contains(t, out, "****-key")

	var decoded config.Config
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, 8000, decoded.Server.Port)
	assert.Equal(t, "mysql", decoded.Database.Driver)
	assert.Equal(t, "****", decoded.Email.SMTPPassword)
	assert.Empty(t, decoded.Redis.Password)

	// The caller's config is untouched.
	assert.Equal(t, "db-password", cfg.Database.Password)
}
