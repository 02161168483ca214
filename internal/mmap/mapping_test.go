package mmap

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "corpus.json")
	require.NoError(t, os.WriteFile(path, content, 0o644))
	return path
}

func TestOpen(t *testing.T) {
	content := []byte(`[{"id":"1","content":"pena de reclusão"}]`)
	f, err := Open(writeTemp(t, content))
	require.NoError(t, err)

	assert.Equal(t, len(content), f.Len())
	assert.Equal(t, content, f.Data())
	assert.NoError(t, f.Advise(Sequential))
	assert.NoError(t, f.Advise(WillNeed))
	assert.NoError(t, f.Advise(Hint(42)))

	require.NoError(t, f.Close())
	require.NoError(t, f.Close())
	assert.Nil(t, f.Data())
	assert.ErrorIs(t, f.Advise(Normal), ErrUnmapped)
}

func TestOpenEmpty(t *testing.T) {
	f, err := Open(writeTemp(t, nil))
	require.NoError(t, err)
	defer f.Close()

	assert.Zero(t, f.Len())
	assert.Empty(t, f.Data())
	assert.NoError(t, f.Advise(Sequential))
}

func TestOpenMissing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestView(t *testing.T) {
	content := []byte("Art. 121. Matar alguém")

	var seen []byte
	err := View(writeTemp(t, content), Sequential, func(b []byte) error {
		seen = append([]byte(nil), b...)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, content, seen)

	boom := errors.New("boom")
	err = View(writeTemp(t, content), Normal, func([]byte) error { return boom })
	assert.ErrorIs(t, err, boom)
}
