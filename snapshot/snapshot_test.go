package snapshot

import (
	"bytes"
	"testing"

	"github.com/hupe1980/lexis/codec"
	"github.com/hupe1980/lexis/lexical"
	"github.com/hupe1980/lexis/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	docs := testutil.NewGenerator(4711).Corpus(50, 30)
	docs = append(docs, lexical.Document{ID: "acentos", Content: "Ação penal pública condicionada à representação"})

	for _, c := range []Compression{CompressionNone, CompressionLZ4, CompressionZSTD} {
		for _, cd := range []codec.Codec{codec.JSON{}, codec.GoJSON{}} {
			t.Run(c.String()+"/"+cd.Name(), func(t *testing.T) {
				var buf bytes.Buffer
				require.NoError(t, Write(&buf, docs, WithCompression(c), WithCodec(cd)))

				got, err := Read(&buf)
				require.NoError(t, err)
				assert.Equal(t, docs, got)
			})
		}
	}
}

func TestCompressionShrinksRepetitiveCorpus(t *testing.T) {
	docs := testutil.NewGenerator(1).Corpus(200, 50)

	var plain, zstd bytes.Buffer
	require.NoError(t, Write(&plain, docs, WithCompression(CompressionNone)))
	require.NoError(t, Write(&zstd, docs, WithCompression(CompressionZSTD)))

	assert.Less(t, zstd.Len(), plain.Len())
}

func TestEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, nil))

	got, err := Read(&buf)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRead_Errors(t *testing.T) {
	var valid bytes.Buffer
	require.NoError(t, Write(&valid, []lexical.Document{{ID: "1", Content: "x"}}, WithCompression(CompressionNone)))
	raw := valid.Bytes()

	t.Run("bad magic", func(t *testing.T) {
		b := bytes.Clone(raw)
		b[0] = 'X'
		_, err := Read(bytes.NewReader(b))
		assert.ErrorIs(t, err, ErrBadMagic)
	})

	t.Run("future version", func(t *testing.T) {
		b := bytes.Clone(raw)
		b[4] = Version + 1
		_, err := Read(bytes.NewReader(b))
		assert.ErrorIs(t, err, ErrUnsupportedVersion)
	})

	t.Run("unknown compression", func(t *testing.T) {
		b := bytes.Clone(raw)
		b[5] = 9
		_, err := Read(bytes.NewReader(b))
		assert.ErrorIs(t, err, ErrUnknownCompression)
	})

	t.Run("unknown codec", func(t *testing.T) {
		b := bytes.Clone(raw)
		b[7] = 'X' // first byte of the codec name
		_, err := Read(bytes.NewReader(b))
		assert.ErrorIs(t, err, ErrUnknownCodec)
	})

	t.Run("truncated", func(t *testing.T) {
		_, err := Read(bytes.NewReader(raw[:3]))
		assert.Error(t, err)
	})
}

func TestParseCompression(t *testing.T) {
	tests := map[string]Compression{
		"":     CompressionNone,
		"none": CompressionNone,
		"LZ4":  CompressionLZ4,
		"zstd": CompressionZSTD,
	}
	for in, want := range tests {
		got, err := ParseCompression(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseCompression("brotli")
	assert.ErrorIs(t, err, ErrUnknownCompression)
}

func TestIsSnapshot(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, nil))

	assert.True(t, IsSnapshot(buf.Bytes()))
	assert.False(t, IsSnapshot([]byte(`[{"id":"1"}]`)))
	assert.False(t, IsSnapshot([]byte("LX")))
}
