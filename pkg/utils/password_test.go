package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	h := HashPassword("hunter2")
	require.NotEqual(t, "hunter2", h)
	require.True(t, CheckPassword("hunter2", h))
	require.False(t, CheckPassword("hunter3", h))
	require.False(t, CheckPassword("hunter2", "not-a-hash"))
}

func TestHashPasswordSalted(t *testing.T) {
	require.NotEqual(t, HashPassword("same"), HashPassword("same"))
}

func TestValidID(t *testing.T) {
	id := NewID()
	require.True(t, ValidID(id))
	require.True(t, ValidID(strings.ToUpper(id)))
	require.False(t, ValidID("me"))
	require.False(t, ValidID(""))
	require.False(t, ValidID("1234"))
}
