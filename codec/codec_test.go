package codec

import (
	"testing"

	"github.com/hupe1980/lexis/lexical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByName(t *testing.T) {
	for _, name := range Names() {
		c, ok := ByName(name)
		require.True(t, ok, name)
		assert.Equal(t, name, c.Name())
	}

	_, ok := ByName("gob")
	assert.False(t, ok)
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"go-json", "json"}, Names())
	assert.Contains(t, Names(), Default.Name())
}

func TestCodecsInterchangeable(t *testing.T) {
	doc := lexical.Document{ID: "art-1", Content: "Não há crime sem lei anterior que o defina."}

	for _, enc := range []Codec{JSON{}, GoJSON{}} {
		data, err := enc.Marshal(doc)
		require.NoError(t, err)

		for _, dec := range []Codec{JSON{}, GoJSON{}} {
			var got lexical.Document
			require.NoError(t, dec.Unmarshal(data, &got))
			assert.Equal(t, doc, got, "%s -> %s", enc.Name(), dec.Name())
		}
	}
}
