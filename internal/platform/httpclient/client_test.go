package httpclient_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/jsamuelsen11/mentorship-admin/internal/platform/config"
	"github.com/jsamuelsen11/mentorship-admin/internal/platform/httpclient"
	"github.com/jsamuelsen11/mentorship-admin/internal/platform/telemetry"
)

func testConfig() *config.ClientConfig {
	return &config.ClientConfig{
		Timeout: 5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     3,
			InitialInterval: 5 * time.Millisecond,
			MaxInterval:     50 * time.Millisecond,
			Multiplier:      2.0,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   3,
			Timeout:       time.Second,
			HalfOpenLimit: 1,
		},
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// flaky answers with failStatus for the first failures calls, then 200.
func flaky(t *testing.T, failures int32, failStatus int) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) <= failures {
			w.WriteHeader(failStatus)
			_, _ = w.Write([]byte("unavailable"))
			return
		}
		_, _ = w.Write([]byte("ok"))
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func get(t *testing.T, c *httpclient.Client, ctx context.Context, url string) (*http.Response, error) {
	t.Helper()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	require.NoError(t, err)
	resp, err := c.Do(ctx, req)
	if resp != nil {
		t.Cleanup(func() { _ = resp.Body.Close() })
	}
	return resp, err
}

func TestDo_Success(t *testing.T) {
	t.Parallel()
	srv, calls := flaky(t, 0, 0)
	c := httpclient.New(testConfig(), "object-storage", nil, testLogger())

	resp, err := get(t, c, context.Background(), srv.URL+"/bucket/key")
	require.NoError(t, err)

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "ok", string(body))
	assert.Equal(t, int32(1), calls.Load())
}

func TestDo_RetriesTransientStatus(t *testing.T) {
	t.Parallel()

	for _, status := range []int{http.StatusServiceUnavailable, http.StatusTooManyRequests} {
		srv, calls := flaky(t, 2, status)
		c := httpclient.New(testConfig(), "object-storage", nil, testLogger())

		resp, err := get(t, c, context.Background(), srv.URL)
		require.NoError(t, err, "status %d", status)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, int32(3), calls.Load())
	}
}

func TestDo_MissingObjectIsNotRetried(t *testing.T) {
	t.Parallel()
	srv, calls := flaky(t, 10, http.StatusNotFound)
	c := httpclient.New(testConfig(), "object-storage", nil, testLogger())

	resp, err := get(t, c, context.Background(), srv.URL+"/bucket/missing")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, int32(1), calls.Load())
	assert.NoError(t, c.HealthCheck(context.Background()))
}

func TestDo_ExhaustedRetriesKeepLastResponse(t *testing.T) {
	t.Parallel()
	srv, calls := flaky(t, 10, http.StatusServiceUnavailable)
	c := httpclient.New(testConfig(), "object-storage", nil, testLogger())

	resp, err := get(t, c, context.Background(), srv.URL)
	require.Error(t, err)
	require.NotNil(t, resp)

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "unavailable", string(body))
	assert.Equal(t, int32(3), calls.Load())
}

func TestDo_UploadBodyReplayedOnRetry(t *testing.T) {
	t.Parallel()

	var (
		mu     sync.Mutex
		bodies []string
		calls  atomic.Int32
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		mu.Lock()
		bodies = append(bodies, string(b))
		mu.Unlock()
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	c := httpclient.New(testConfig(), "object-storage", nil, testLogger())

	for _, body := range []io.Reader{
		strings.NewReader("%PDF-1.4"),
		io.NopCloser(strings.NewReader("%PDF-1.4")),
	} {
		calls.Store(0)
		mu.Lock()
		bodies = nil
		mu.Unlock()

		req, err := http.NewRequestWithContext(context.Background(), http.MethodPut, srv.URL+"/bucket/doc.pdf", body)
		require.NoError(t, err)
		resp, err := c.Do(context.Background(), req)
		require.NoError(t, err)
		_ = resp.Body.Close()

		mu.Lock()
		assert.Equal(t, []string{"%PDF-1.4", "%PDF-1.4"}, bodies)
		mu.Unlock()
	}
}

func TestDo_ForwardsRequestIDs(t *testing.T) {
	t.Parallel()

	got := make(chan http.Header, 2)
	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		got <- r.Header.Clone()
	}))
	t.Cleanup(srv.Close)

	c := httpclient.New(testConfig(), "object-storage", nil, testLogger())

	ctx := httpclient.WithCorrelationID(httpclient.WithRequestID(context.Background(), "req-1"), "corr-1")
	_, err := get(t, c, ctx, srv.URL)
	require.NoError(t, err)
	h := <-got
	assert.Equal(t, "req-1", h.Get("X-Request-ID"))
	assert.Equal(t, "corr-1", h.Get("X-Correlation-ID"))

	_, err = get(t, c, context.Background(), srv.URL)
	require.NoError(t, err)
	h = <-got
	assert.Empty(t, h.Get("X-Request-ID"))
	assert.Empty(t, h.Get("X-Correlation-ID"))
}

func TestDo_BreakerOpensAndRecovers(t *testing.T) {
	t.Parallel()

	var healthy atomic.Bool
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		if !healthy.Load() {
			w.WriteHeader(http.StatusBadGateway)
		}
	}))
	t.Cleanup(srv.Close)

	cfg := testConfig()
	cfg.Retry.MaxAttempts = 1
	cfg.CircuitBreaker.MaxFailures = 2
	cfg.CircuitBreaker.Timeout = 50 * time.Millisecond
	c := httpclient.New(cfg, "object-storage", nil, testLogger())

	for range 2 {
		_, err := get(t, c, context.Background(), srv.URL)
		require.Error(t, err)
	}

	_, err := get(t, c, context.Background(), srv.URL)
	require.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, int32(2), calls.Load())
	require.ErrorContains(t, c.HealthCheck(context.Background()), "failing")

	time.Sleep(80 * time.Millisecond)
	require.ErrorContains(t, c.HealthCheck(context.Background()), "degraded")

	healthy.Store(true)
	resp, err := get(t, c, context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NoError(t, c.HealthCheck(context.Background()))
}

func TestDo_CallerCancellationDoesNotTripBreaker(t *testing.T) {
	t.Parallel()
	srv, calls := flaky(t, 0, 0)

	cfg := testConfig()
	cfg.CircuitBreaker.MaxFailures = 1
	c := httpclient.New(cfg, "object-storage", nil, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for range 3 {
		_, err := get(t, c, ctx, srv.URL)
		require.ErrorIs(t, err, context.Canceled)
	}

	assert.NoError(t, c.HealthCheck(context.Background()))
	assert.Zero(t, calls.Load())
}

func TestClient_Name(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "object-storage", httpclient.New(testConfig(), "object-storage", nil, testLogger()).Name())
}

func TestDo_RecordsClientMetrics(t *testing.T) {
	t.Parallel()
	srv, _ := flaky(t, 0, 0)

	reader := sdkmetric.NewManualReader()
	m, err := telemetry.NewMetrics(sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)), "test")
	require.NoError(t, err)

	c := httpclient.New(testConfig(), "object-storage", m, testLogger())
	_, err = get(t, c, context.Background(), srv.URL)
	require.NoError(t, err)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	var total int64
	for _, sm := range rm.ScopeMetrics {
		for _, md := range sm.Metrics {
			if sum, ok := md.Data.(metricdata.Sum[int64]); ok && md.Name == "http.client.request.total" {
				for _, dp := range sum.DataPoints {
					total += dp.Value
				}
			}
		}
	}
	assert.Equal(t, int64(1), total)
}
