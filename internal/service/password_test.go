package service

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	t.Parallel()

	hash, err := hashPassword("Abcdef1!")
	require.NoError(t, err)
	require.NotEqual(t, "Abcdef1!", hash)

	require.True(t, checkPassword(hash, "Abcdef1!"))
	require.False(t, checkPassword(hash, "abcdef1!"))
	require.False(t, checkPassword(hash, ""))
}

func TestHashPassword_SaltedHashesDiffer(t *testing.T) {
	t.Parallel()

	first, err := hashPassword("Abcdef1!")
	require.NoError(t, err)

	second, err := hashPassword("Abcdef1!")
	require.NoError(t, err)

	// bcrypt солит каждый хеш, одинаковых значений не бывает.
	require.NotEqual(t, first, second)
	require.True(t, checkPassword(second, "Abcdef1!"))
}
