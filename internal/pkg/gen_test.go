package pkg

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateNewSessionID(t *testing.T) {
	// When: generating two session IDs
	first, err := GenerateNewSessionID()
	require.NoError(t, err)

	second, err := GenerateNewSessionID()
	require.NoError(t, err)

	// Then: they are non-empty and distinct
	assert.Len(t, first, 43)
	assert.NotEqual(t, first, second)
}

func TestGenerateGameID(t *testing.T) {
	// When: generating a game ID
	id, err := GenerateGameID()
	require.NoError(t, err)

	// Then: it is a number in range
	n, err := strconv.Atoi(id)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, n, 0)
	assert.Less(t, n, maxGameID)
}
