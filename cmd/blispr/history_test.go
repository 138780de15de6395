package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.txt")

	h, existed, err := openHistory(path)
	require.NoError(t, err)
	assert.False(t, existed)
	assert.Equal(t, 0, h.Len())

	_, err = h.Write("(+ 1 2)")
	require.NoError(t, err)
	_, err = h.Write("(head {1})")
	require.NoError(t, err)
	require.NoError(t, h.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "(+ 1 2)\n(head {1})\n", string(content))
}

func TestHistoryReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.txt")

	h, _, err := openHistory(path)
	require.NoError(t, err)
	_, err = h.Write("(+ 1 2)")
	require.NoError(t, err)
	require.NoError(t, h.Close())

	h2, existed, err := openHistory(path)
	require.NoError(t, err)
	defer h2.Close()
	assert.True(t, existed)
	require.Equal(t, 1, h2.Len())

	line, err := h2.GetLine(0)
	require.NoError(t, err)
	assert.Equal(t, "(+ 1 2)", line)

	_, err = h2.GetLine(5)
	assert.Error(t, err)
}

func TestHistorySkipsBlankWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.txt")

	h, _, err := openHistory(path)
	require.NoError(t, err)
	defer h.Close()

	n, err := h.Write("   ")
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.Equal(t, 0, h.Len())
}
