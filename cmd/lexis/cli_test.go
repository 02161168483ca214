package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/lexis"
	"github.com/hupe1980/lexis/internal/fs"
	"github.com/hupe1980/lexis/lexical"
	"github.com/hupe1980/lexis/snapshot"
)

func writeCorpus(t *testing.T) string {
	t.Helper()
	docs := []lexical.Document{
		{ID: "1", Content: "O réu foi condenado à pena de reclusão"},
		{ID: "2", Content: "A pena de multa foi aplicada ao réu reincidente"},
		{ID: "", Content: "sem identificador"},
	}
	data, err := json.Marshal(docs)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "corpus.json")
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestSearch(t *testing.T) {
	corpus := writeCorpus(t)

	out, _, err := run(t, "search", "--corpus", corpus, "pena", "réu")
	require.NoError(t, err)
	assert.Contains(t, out, "1. 1 (2.40) O [réu] foi condenado à [pena] de reclusão")
	assert.Contains(t, out, "2. 2 (2.40) A [pena] de multa foi aplicada ao [réu] reincidente")
}

func TestSearch_JSON(t *testing.T) {
	corpus := writeCorpus(t)

	out, _, err := run(t, "search", "--corpus", corpus, "--json", "--limit", "1", "multa")
	require.NoError(t, err)

	var results []lexical.Result
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 1)
	assert.Equal(t, "2", results[0].Document.ID)
	assert.Equal(t, []string{"multa"}, results[0].Matches)
}

func TestSearch_NoMatches(t *testing.T) {
	corpus := writeCorpus(t)

	out, _, err := run(t, "search", "--corpus", corpus, "homicídio")
	require.NoError(t, err)
	assert.Equal(t, "no matches\n", out)
}

func TestSearch_RequiresCorpus(t *testing.T) {
	_, _, err := run(t, "search", "pena")
	assert.Error(t, err)
}

func TestHighlight(t *testing.T) {
	out, _, err := run(t, "highlight", "--terms", "acao,publica", "Ação penal pública")
	require.NoError(t, err)
	assert.Equal(t, "[Ação] penal [pública]\n", out)
}

func TestStats(t *testing.T) {
	corpus := writeCorpus(t)

	out, _, err := run(t, "stats", "--corpus", corpus)
	require.NoError(t, err)

	var stats struct {
		TotalArticles int `json:"total_articles"`
		TotalTerms    int `json:"total_terms"`
		Skipped       int `json:"skipped"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &stats))
	assert.Equal(t, 2, stats.TotalArticles)
	assert.Equal(t, 1, stats.Skipped)
	assert.Positive(t, stats.TotalTerms)
}

func TestSnapshot_RoundTrip(t *testing.T) {
	corpus := writeCorpus(t)
	out := filepath.Join(t.TempDir(), "corpus.lxsn")

	msg, _, err := run(t, "snapshot", "--corpus", corpus, "--out", out, "--compression", "lz4")
	require.NoError(t, err)
	assert.Contains(t, msg, "wrote 2 documents")

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, snapshot.IsSnapshot(data))
	_, err = os.Stat(fs.TempName(out))
	assert.ErrorIs(t, err, os.ErrNotExist)

	res, _, err := run(t, "search", "--corpus", out, "reclusão")
	require.NoError(t, err)
	assert.Contains(t, res, "1. 1 ")
}

func TestSnapshot_BadCompression(t *testing.T) {
	corpus := writeCorpus(t)

	_, _, err := run(t, "snapshot", "--corpus", corpus, "--out", filepath.Join(t.TempDir(), "x"), "--compression", "brotli")
	assert.ErrorIs(t, err, snapshot.ErrUnknownCompression)
}

func TestConfigFile(t *testing.T) {
	corpus := writeCorpus(t)
	cfg := filepath.Join(t.TempDir(), "lexis.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("search:\n  extra_stop_words: [multa]\nlog:\n  level: error\n"), 0o600))

	out, _, err := run(t, "search", "--config", cfg, "--corpus", corpus, "multa")
	require.NoError(t, err)
	assert.Equal(t, "no matches\n", out)
}

func TestMetricsFlag(t *testing.T) {
	corpus := writeCorpus(t)

	_, stderr, err := run(t, "--metrics", "search", "--corpus", corpus, "pena")
	require.NoError(t, err)
	assert.Contains(t, stderr, `lexis_cache_lookups_total{result="miss"} 1`)
}

func TestLogFormatFlag(t *testing.T) {
	corpus := writeCorpus(t)

	_, stderr, err := run(t, "--log-level", "debug", "--log-format", "json", "stats", "--corpus", corpus)
	require.NoError(t, err)
	assert.Contains(t, stderr, `"msg":"indexing completed"`)

	_, _, err = run(t, "--log-format", "xml", "stats", "--corpus", corpus)
	assert.ErrorIs(t, err, lexis.ErrInvalidConfig)
}
