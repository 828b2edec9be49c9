package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptPasswordHasher_RoundTrip(t *testing.T) {
	h := NewBcryptPasswordHasher(bcrypt.MinCost)

	hash, err := h.Hash("correct horse")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse", hash)

	assert.NoError(t, h.Verify("correct horse", hash))
	assert.ErrorIs(t, h.Verify("battery staple", hash), ErrPasswordMismatch)
	assert.ErrorIs(t, h.Verify("correct horse", "not-a-bcrypt-hash"), ErrPasswordMismatch)
}

func TestBcryptPasswordHasher_SaltsEachHash(t *testing.T) {
	h := NewBcryptPasswordHasher(bcrypt.MinCost)

	a, err := h.Hash("pw")
	require.NoError(t, err)
	b, err := h.Hash("pw")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestNewBcryptPasswordHasher_CostBounds(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptPasswordHasher(0).Cost())
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptPasswordHasher(bcrypt.MaxCost+1).Cost())
	assert.Equal(t, 12, NewBcryptPasswordHasher(12).Cost())
}
