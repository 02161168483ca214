package promcollector

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/lexis"
	"github.com/hupe1980/lexis/lexical"
)

func family(t *testing.T, reg *prometheus.Registry, name string) *dto.MetricFamily {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() == name {
			return mf
		}
	}
	t.Fatalf("metric family %q not found", name)
	return nil
}

func counterWithLabel(t *testing.T, reg *prometheus.Registry, name, label, value string) float64 {
	t.Helper()
	for _, m := range family(t, reg, name).GetMetric() {
		for _, lp := range m.GetLabel() {
			if lp.GetName() == label && lp.GetValue() == value {
				return m.GetCounter().GetValue()
			}
		}
	}
	return 0
}

func TestCollector_Records(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := New(reg)
	require.NoError(t, err)

	c.RecordIndex(8, 2, 3*time.Millisecond)
	c.RecordSearch(4, time.Millisecond, nil)
	c.RecordSearch(0, time.Millisecond, errors.New("boom"))
	c.RecordCacheLookup(true)
	c.RecordCacheLookup(false)
	c.RecordCacheLookup(false)
	c.RecordDelete(true)
	c.RecordClear()

	assert.InDelta(t, 1, family(t, reg, "lexis_index_batches_total").GetMetric()[0].GetCounter().GetValue(), 0)
	assert.InDelta(t, 8, counterWithLabel(t, reg, "lexis_documents_total", "outcome", "indexed"), 0)
	assert.InDelta(t, 2, counterWithLabel(t, reg, "lexis_documents_total", "outcome", "skipped"), 0)
	assert.InDelta(t, 1, counterWithLabel(t, reg, "lexis_cache_lookups_total", "result", "hit"), 0)
	assert.InDelta(t, 2, counterWithLabel(t, reg, "lexis_cache_lookups_total", "result", "miss"), 0)
	assert.InDelta(t, 1, counterWithLabel(t, reg, "lexis_deletes_total", "found", "true"), 0)
	assert.InDelta(t, 1, family(t, reg, "lexis_clears_total").GetMetric()[0].GetCounter().GetValue(), 0)

	searches := family(t, reg, "lexis_search_duration_seconds").GetMetric()
	assert.Len(t, searches, 2)
	assert.Equal(t, uint64(1), family(t, reg, "lexis_search_results").GetMetric()[0].GetHistogram().GetSampleCount())
}

func TestCollector_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := New(reg)
	require.NoError(t, err)

	_, err = New(reg)
	assert.Error(t, err)

	_, err = New(reg, WithNamespace("other"))
	assert.NoError(t, err)
}

func TestCollector_WithLibrary(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := New(reg, WithLatencyBuckets([]float64{0.001, 0.01, 0.1}))
	require.NoError(t, err)

	lib, err := lexis.New(lexis.WithMetricsCollector(c))
	require.NoError(t, err)
	defer lib.Close()

	ctx := context.Background()
	_, err = lib.IndexArticles(ctx, []lexical.Document{
		{ID: "1", Content: "O réu foi condenado à pena de reclusão"},
		{ID: "2", Content: "A pena de multa foi aplicada ao réu reincidente"},
	})
	require.NoError(t, err)

	for range 3 {
		_, err := lib.Search(ctx, "pena", 10)
		require.NoError(t, err)
	}

	assert.InDelta(t, 2, counterWithLabel(t, reg, "lexis_cache_lookups_total", "result", "hit"), 0)
	assert.InDelta(t, 1, counterWithLabel(t, reg, "lexis_cache_lookups_total", "result", "miss"), 0)

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, reg))
	assert.Contains(t, buf.String(), "lexis_search_duration_seconds_bucket")
	assert.Contains(t, buf.String(), `lexis_documents_total{outcome="indexed"} 2`)
}
