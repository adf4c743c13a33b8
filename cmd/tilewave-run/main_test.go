package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tilewave/internal/wfc"
)

func TestRunPrintsSolvedMap(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{"-rows", "4", "-cols", "6", "-seed", "7", "-quiet"}, &stdout, &stderr)
	require.NoError(t, err)
	assert.Empty(t, stderr.String())

	lines := strings.Split(strings.TrimSuffix(stdout.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	for _, line := range lines {
		assert.Equal(t, 6, utf8.RuneCountInString(line))
		assert.NotContains(t, line, "?")
		assert.NotContains(t, line, "!")
	}
}

func TestRunDeterministic(t *testing.T) {
	var a, b bytes.Buffer
	args := []string{"-rows", "5", "-cols", "5", "-seed", "99", "-quiet"}
	require.NoError(t, run(args, &a, &bytes.Buffer{}))
	require.NoError(t, run(args, &b, &bytes.Buffer{}))
	assert.Equal(t, a.String(), b.String())
}

func TestRunLogsProgress(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"-rows", "2", "-cols", "2"}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "loaded 18 variants")
	assert.Contains(t, stderr.String(), "solved 2x2")
}

func TestRunContradictionExhaustsAttempts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
tiles:
  - name: stub
    faces: {left: pipe}
    rotations: r1
`), 0o644))

	var stderr bytes.Buffer
	err := run([]string{"-rows", "1", "-cols", "2", "-attempts", "3", "-tileset", path}, &bytes.Buffer{}, &stderr)
	require.Error(t, err)
	assert.ErrorIs(t, err, wfc.ErrContradiction)
	assert.Contains(t, err.Error(), "3 attempts")
	assert.Equal(t, 3, strings.Count(stderr.String(), "attempt "))
}

func TestRunRejectsBadInput(t *testing.T) {
	err := run([]string{"-tileset", filepath.Join(t.TempDir(), "missing.yaml")}, &bytes.Buffer{}, &bytes.Buffer{})
	assert.Error(t, err)

	err = run([]string{"-rows", "0", "-quiet"}, &bytes.Buffer{}, &bytes.Buffer{})
	assert.ErrorIs(t, err, wfc.ErrInvalidSize)
}

func TestParseOptionsClampsAttempts(t *testing.T) {
	opts, err := parseOptions([]string{"-attempts", "0"})
	require.NoError(t, err)
	assert.Equal(t, 1, opts.attempts)
}
