package luminahr

import (
	"context"
	"net/http"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Metrics(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})

	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)
	client, _ := newTestClient(t, handler, WithMetrics(metrics))

	_, err := client.Auth.Companies(context.Background())
	require.NoError(t, err)
	_, err = client.Auth.Companies(context.Background())
	require.NoError(t, err)

	counter, err := metrics.requestsTotal.GetMetricWithLabelValues("get", "200")
	require.NoError(t, err)
	assert.InDelta(t, 2.0, testutil.ToFloat64(counter), 0.001)
}

func TestClient_MetricsErrorCode(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail": "Not found"}`))
	})

	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)
	client, _ := newTestClient(t, handler, WithMetrics(metrics))

	_, err := client.Recruitment.PublicJob(context.Background(), "gone")
	require.Error(t, err)

	counter, err := metrics.requestsTotal.GetMetricWithLabelValues("get", "404")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, testutil.ToFloat64(counter), 0.001)
}
