package infrastructure

import (
	"errors"
	"strings"
	"testing"

	"github.com/krishnapatidar458/Aligntogther-Assessment-todo/internal/domain/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasherVerify(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	for _, password := range []string{"pw1", "correct horse battery staple", " "} {
		hash, err := hasher.Hash(password)
		require.NoError(t, err)
		assert.NotEqual(t, password, hash)
		assert.True(t, hasher.Verify(password, hash))
		assert.False(t, hasher.Verify(password+"x", hash))
	}
}

func TestBcryptHasherIsSalted(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	first, err := hasher.Hash("pw1")
	require.NoError(t, err)
	second, err := hasher.Hash("pw1")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Verify("pw1", first))
	assert.True(t, hasher.Verify("pw1", second))
}

func TestBcryptHasherRejectsGarbageHash(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)
	assert.False(t, hasher.Verify("pw1", "not-a-hash"))
	assert.False(t, hasher.Verify("pw1", ""))
}

func TestBcryptHasherCostFallback(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(0).cost)
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(bcrypt.MaxCost+1).cost)
	assert.Equal(t, bcrypt.MinCost, NewBcryptHasher(bcrypt.MinCost).cost)
}

func TestBcryptHasherTooLongPassword(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)
	_, err := hasher.Hash(strings.Repeat("a", 73))
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrInvalid))
}
