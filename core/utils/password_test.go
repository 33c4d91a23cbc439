package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPasswordIsHexSHA256(t *testing.T) {
	hash := HashPassword("secret")
	assert.Len(t, hash, 64)
	// deterministic: same input, same hash
	assert.Equal(t, hash, HashPassword("secret"))
	assert.NotEqual(t, hash, HashPassword("Secret"))
}

func TestComparePassword(t *testing.T) {
	hash := HashPassword("hunter2")
	assert.True(t, ComparePassword(hash, "hunter2"))
	assert.False(t, ComparePassword(hash, "hunter3"))
	assert.False(t, ComparePassword("", "hunter2"))
}
