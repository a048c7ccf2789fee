package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveBlogWrite(t *testing.T) {
	initial := testutil.ToFloat64(BlogWritesTotal.WithLabelValues("publish", "update", ResultSuccess))

	ObserveBlogWrite("publish", "update", ResultSuccess)

	after := testutil.ToFloat64(BlogWritesTotal.WithLabelValues("publish", "update", ResultSuccess))
	assert.Equal(t, initial+1, after, "BlogWritesTotal should increment by 1")
}

func TestObserveUpload(t *testing.T) {
	initialOK := testutil.ToFloat64(UploadsTotal.WithLabelValues("png", ResultSuccess))
	initialNone := testutil.ToFloat64(UploadsTotal.WithLabelValues("none", ResultInvalid))

	ObserveUpload("png", ResultSuccess, 2048)
	ObserveUpload("", ResultInvalid, 0)

	assert.Equal(t, initialOK+1, testutil.ToFloat64(UploadsTotal.WithLabelValues("png", ResultSuccess)))
	assert.Equal(t, initialNone+1, testutil.ToFloat64(UploadsTotal.WithLabelValues("none", ResultInvalid)),
		"missing extension should be recorded as none")
	assert.GreaterOrEqual(t, testutil.CollectAndCount(UploadBytes), 1)
}

func TestHTTPMetricsExist(t *testing.T) {
	assert.NotNil(t, HTTPRequestsTotal)
	assert.NotNil(t, HTTPRequestDuration)
	assert.NotNil(t, HTTPRequestsInFlight)

	initialRequests := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/api/blogs", "200"))
	HTTPRequestsTotal.WithLabelValues("GET", "/api/blogs", "200").Inc()
	newRequests := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/api/blogs", "200"))
	assert.Equal(t, initialRequests+1, newRequests)
}

func TestPoolStatsCollectorStartStop(t *testing.T) {
	mockProvider := &mockPoolStatsProvider{
		stats: &mockPoolStats{max: 10, total: 8, idle: 4, acquired: 4},
	}

	collector := NewPoolStatsCollectorWithProvider(mockProvider)
	collector.Start(10 * time.Millisecond)

	assert.Eventually(t, func() bool {
		return testutil.ToFloat64(DBConnectionPoolSize.WithLabelValues("total")) == 8
	}, time.Second, 5*time.Millisecond)

	collector.Stop()
	collector.Stop()

	assert.Equal(t, float64(10), testutil.ToFloat64(DBConnectionPoolSize.WithLabelValues("max")))
	assert.Equal(t, float64(4), testutil.ToFloat64(DBConnectionPoolSize.WithLabelValues("idle")))
	assert.Equal(t, float64(4), testutil.ToFloat64(DBConnectionPoolSize.WithLabelValues("in_use")))
}

// mockPoolStats implements PoolStats for testing
type mockPoolStats struct {
	max      int32
	total    int32
	idle     int32
	acquired int32
}

func (m *mockPoolStats) MaxConns() int32      { return m.max }
func (m *mockPoolStats) TotalConns() int32    { return m.total }
func (m *mockPoolStats) IdleConns() int32     { return m.idle }
func (m *mockPoolStats) AcquiredConns() int32 { return m.acquired }

// mockPoolStatsProvider implements PoolStatsProvider for testing
type mockPoolStatsProvider struct {
	stats *mockPoolStats
}

func (m *mockPoolStatsProvider) Stat() PoolStats {
	return m.stats
}
