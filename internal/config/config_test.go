package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "./public/outfits", cfg.UploadDir)
	assert.Equal(t, "admin", cfg.Admin.Username)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ADMIN_TOKEN", "tok-123")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "tok-123", cfg.Admin.Token)
}

func TestPasswordMatchesPlain(t *testing.T) {
	admin := AdminConfig{Password: "hunter2"}

	assert.True(t, admin.PasswordMatches("hunter2"))
	assert.False(t, admin.PasswordMatches("wrong"))
	assert.False(t, admin.PasswordMatches(""))
}

func TestPasswordMatchesBcryptHashWins(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)

	admin := AdminConfig{Password: "something-else", PasswordHash: string(hash)}

	assert.True(t, admin.PasswordMatches("hunter2"))
	assert.False(t, admin.PasswordMatches("something-else"))
}

func TestPasswordMatchesNothingConfigured(t *testing.T) {
	admin := AdminConfig{}

	assert.False(t, admin.PasswordMatches(""))
	assert.False(t, admin.PasswordMatches("anything"))
}
