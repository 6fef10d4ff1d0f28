package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLedger_PutLookup(t *testing.T) {
	t.Parallel()

	l := New()
	assert.False(t, l.Put("a.txt", 0))
	assert.False(t, l.Put("日本.txt", 100))

	off, ok := l.Lookup("日本.txt")
	assert.True(t, ok)
	assert.Equal(t, uint64(100), off)

	_, ok = l.Lookup("missing")
	assert.False(t, ok)
	assert.Equal(t, 2, l.Len())
}

func TestLedger_DuplicateOverwrites(t *testing.T) {
	t.Parallel()

	l := New()
	l.Put("dup", 10)
	assert.True(t, l.Put("dup", 50))

	off, ok := l.Lookup("dup")
	assert.True(t, ok)
	assert.Equal(t, uint64(50), off)
	assert.Equal(t, 1, l.Len())
}

func TestLedger_DirectoryStartSetOnce(t *testing.T) {
	t.Parallel()

	l := New()
	_, ok := l.DirectoryStart()
	assert.False(t, ok)

	assert.True(t, l.MarkDirectoryStart(0))
	assert.False(t, l.MarkDirectoryStart(200))

	off, ok := l.DirectoryStart()
	assert.True(t, ok)
	assert.Equal(t, uint64(0), off, "a zero offset still counts as set")
}
