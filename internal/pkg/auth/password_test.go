package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := hashWithCost("123", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotEqual(t, "123", hash)
	assert.True(t, CheckPassword(hash, "123"))
	assert.False(t, CheckPassword(hash, "1234"))
}

func TestCheckPasswordRejectsPlainText(t *testing.T) {
	assert.False(t, CheckPassword("123", "123"))
}
