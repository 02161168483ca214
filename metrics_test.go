package lexis

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var (
	_ MetricsCollector = NoopMetricsCollector{}
	_ MetricsCollector = (*BasicMetricsCollector)(nil)
)

func TestBasicMetricsCollector(t *testing.T) {
	m := &BasicMetricsCollector{}

	m.RecordIndex(10, 2, time.Millisecond)
	m.RecordIndex(5, 0, time.Millisecond)
	m.RecordSearch(3, 2*time.Millisecond, nil)
	m.RecordSearch(0, 4*time.Millisecond, errors.New("boom"))
	m.RecordCacheLookup(true)
	m.RecordCacheLookup(false)
	m.RecordCacheLookup(false)
	m.RecordDelete(true)
	m.RecordClear()

	stats := m.GetStats()
	assert.Equal(t, int64(2), stats.IndexCount)
	assert.Equal(t, int64(15), stats.IndexedDocuments)
	assert.Equal(t, int64(2), stats.SkippedDocuments)
	assert.Equal(t, int64(2), stats.SearchCount)
	assert.Equal(t, int64(1), stats.SearchErrors)
	assert.Equal(t, (3 * time.Millisecond).Nanoseconds(), stats.SearchAvgNanos)
	assert.Equal(t, int64(1), stats.CacheHits)
	assert.Equal(t, int64(2), stats.CacheMisses)
	assert.Equal(t, int64(1), stats.DeleteCount)
	assert.Equal(t, int64(1), stats.ClearCount)
}

func TestBasicMetricsCollector_Empty(t *testing.T) {
	m := &BasicMetricsCollector{}
	assert.Zero(t, m.GetStats().SearchAvgNanos)
}
