package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOpaqueID_LengthAndAlphabet(t *testing.T) {
	id, err := NewOpaqueID(20)
	require.NoError(t, err)
	require.Len(t, id, 20)

	for _, r := range id {
		assert.True(t, strings.ContainsRune(idAlphabet, r), "символ %q вне алфавита", r)
	}
}

func TestNewOpaqueID_DefaultLength(t *testing.T) {
	id, err := NewOpaqueID(0)
	require.NoError(t, err)
	assert.Len(t, id, 20)
}

func TestNewOpaqueID_Unique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id, err := NewOpaqueID(20)
		require.NoError(t, err)
		require.False(t, seen[id], "повторившийся id %s", id)
		seen[id] = true
	}
}
