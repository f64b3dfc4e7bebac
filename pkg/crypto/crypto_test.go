package crypto

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hashed, err := HashPassword("secret1", 4)
	require.NoError(t, err)
	require.NotEqual(t, "secret1", hashed)

	require.True(t, ComparePassword(hashed, "secret1"))
	require.False(t, ComparePassword(hashed, "secret2"))
}

func TestGenerateRandomString(t *testing.T) {
	s1, err := GenerateRandomString()
	require.NoError(t, err)

	s2, err := GenerateRandomString()
	require.NoError(t, err)
	require.NotEqual(t, s1, s2)
}
