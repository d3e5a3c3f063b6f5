package auth

import (
	"strings"
	"testing"

	"gatekeeper/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestHasher() *bcryptHasher {
	cfg := &config.Config{
		Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost},
		PasswordStrength: &config.PasswordStrengthConfig{
			MinLength:        8,
			RequireUppercase: true,
			RequireLowercase: true,
			RequireNumbers:   true,
			MaxLength:        72,
		},
	}

	return NewBcryptHasher(cfg).(*bcryptHasher)
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := newTestHasher()

	hash, err := hasher.Hash("Password1")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "Password1", hash)

	assert.True(t, hasher.Check("Password1", hash))
	assert.False(t, hasher.Check("Password2", hash))
	assert.False(t, hasher.Check("Password1", "not-a-bcrypt-hash"))
}

func TestBcryptHasher_HashesAreSalted(t *testing.T) {
	hasher := newTestHasher()

	hash1, err := hasher.Hash("Password1")
	require.NoError(t, err)
	hash2, err := hasher.Hash("Password1")
	require.NoError(t, err)

	assert.NotEqual(t, hash1, hash2)
}

func TestNewBcryptHasher_ClampsInvalidCost(t *testing.T) {
	cfg := &config.Config{
		Auth: &config.AuthConfig{BcryptCost: 99},
	}

	hasher := NewBcryptHasher(cfg).(*bcryptHasher)
	assert.Equal(t, bcrypt.DefaultCost, hasher.cost)
}

func TestNewBcryptHasher_DefaultPolicy(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{}).(*bcryptHasher)

	assert.Equal(t, defaultPasswordPolicy, hasher.policy)
}

func TestBcryptHasher_ValidatePasswordStrength(t *testing.T) {
	hasher := newTestHasher()

	tests := []struct {
		name     string
		password string
		wantErr  string
	}{
		{name: "valid", password: "Password1"},
		{name: "too short", password: "Pw1", wantErr: "at least 8 characters"},
		{name: "too long", password: "Aa1" + strings.Repeat("x", 80), wantErr: "at most 72 characters"},
		{name: "missing uppercase", password: "password1", wantErr: "an uppercase letter"},
		{name: "missing lowercase", password: "PASSWORD1", wantErr: "a lowercase letter"},
		{name: "missing number", password: "Passwords", wantErr: "a number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := hasher.ValidatePasswordStrength(tt.password)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestBcryptHasher_ValidatePasswordStrength_SpecialCharacters(t *testing.T) {
	cfg := &config.Config{
		PasswordStrength: &config.PasswordStrengthConfig{
			MinLength:      8,
			RequireSpecial: true,
			MaxLength:      72,
		},
	}
	hasher := NewBcryptHasher(cfg).(*bcryptHasher)

	require.Error(t, hasher.ValidatePasswordStrength("Password1"))
	assert.NoError(t, hasher.ValidatePasswordStrength("Password1!"))
}
