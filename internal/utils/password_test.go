package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	assert.NoError(t, err, "Hashing should not return an error")
	assert.NotEmpty(t, hash, "Hash should not be empty")
	assert.NotEqual(t, "correct horse battery staple", hash, "Hash must differ from the plaintext")

	assert.True(t, CheckPasswordHash("correct horse battery staple", hash), "Correct password should verify")
	assert.False(t, CheckPasswordHash("wrong password", hash), "Wrong password should not verify")
}

func TestCheckPasswordHash_MalformedHash(t *testing.T) {
	assert.False(t, CheckPasswordHash("anything", "not-a-bcrypt-hash"))
}

func TestHashPassword_DistinctSalts(t *testing.T) {
	first, err := HashPassword("secret123")
	assert.NoError(t, err)
	second, err := HashPassword("secret123")
	assert.NoError(t, err)
	assert.NotEqual(t, first, second, "Each hash should carry its own salt")
}
