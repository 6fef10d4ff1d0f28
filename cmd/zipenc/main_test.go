package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meigma/zipenc/internal/testutil"
)

func TestRun(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	inPath := filepath.Join(dir, "in.zip")
	outPath := filepath.Join(dir, "out.zip")
	in := testutil.BuildZip(t, []testutil.File{
		{Name: "報告書.pdf", Content: []byte("%PDF-1.4")},
	}, "")
	require.NoError(t, os.WriteFile(inPath, in, 0o600))

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"-i", inPath, "--output", outPath, "--verify"}, &stdout, &stderr)
	require.Equal(t, exitOK, code, stderr.String())
	assert.Contains(t, stdout.String(), "1 entries, 1 renamed")
	assert.Contains(t, stdout.String(), "sha256:")

	got := testutil.ReadZip(t, mustRead(t, outPath))
	assert.Equal(t, []byte("%PDF-1.4"), got["報告書.pdf"])
}

func TestRun_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.zip")
	require.NoError(t, os.WriteFile(bad, []byte("PK\x06\x06 not supported"), 0o600))

	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantErr  string
	}{
		{"missing input", []string{"-o", "x.zip"}, exitUsage, "--input is required"},
		{"missing output", []string{"-i", bad}, exitUsage, "--output is required"},
		{"unknown flag", []string{"--nope"}, exitUsage, "flag provided but not defined"},
		{"unknown encoding", []string{"-i", bad, "-o", filepath.Join(dir, "e.zip"), "--encoding", "klingon"}, exitError, "unknown encoding"},
		{"unsupported record", []string{"-i", bad, "-o", filepath.Join(dir, "u.zip")}, exitError, "ZIP64 end of central directory record"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var stdout, stderr bytes.Buffer
			code := run(context.Background(), tt.args, &stdout, &stderr)
			assert.Equal(t, tt.wantCode, code)
			assert.Contains(t, stderr.String(), tt.wantErr)
			assert.Empty(t, stdout.String())
		})
	}
}

func mustRead(t *testing.T, path string) []byte {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return data
}
