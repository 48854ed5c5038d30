package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webgroup16/contacts_app/internal/utils"
)

func TestHashPassword(t *testing.T) {
	password := "correct horse battery staple"

	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	// Hashing is salted, so a second hash differs but still verifies.
	hash2, err := utils.HashPassword(password)
	require.NoError(t, err)
	assert.NotEqual(t, hash, hash2)

	assert.True(t, utils.CheckPasswordHash(password, hash))
	assert.True(t, utils.CheckPasswordHash(password, hash2))
}

func TestCheckPasswordHash_WrongPassword(t *testing.T) {
	hash, err := utils.HashPassword("right-password")
	require.NoError(t, err)

	assert.False(t, utils.CheckPasswordHash("wrong-password", hash))
	assert.False(t, utils.CheckPasswordHash("", hash))
	assert.False(t, utils.CheckPasswordHash("right-password", "not-a-hash"))
}
