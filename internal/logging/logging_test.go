package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"
)

func TestNew_File(t *testing.T) {
	p := filepath.Join(t.TempDir(), "packlist.log")
	l, closeFn, err := New(Options{Debug: true, File: p})
	require.NoError(t, err)
	require.Equal(t, log.DebugLevel, l.GetLevel())

	l.Debug("added item", "id", "abc")
	require.NoError(t, closeFn())

	b, err := os.ReadFile(p)
	require.NoError(t, err)
	require.Contains(t, string(b), "added item")
	require.Contains(t, string(b), "id=abc")
}

func TestNew_DefaultLevel(t *testing.T) {
	l, closeFn, err := New(Options{Quiet: true})
	require.NoError(t, err)
	require.Equal(t, log.WarnLevel, l.GetLevel())
	require.NoError(t, closeFn())
}

func TestNew_BadPath(t *testing.T) {
	_, _, err := New(Options{File: filepath.Join(t.TempDir(), "no", "such", "dir.log")})
	require.Error(t, err)
}
