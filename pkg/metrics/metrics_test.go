package metrics_test

import (
	"catconnect/pkg/metrics"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestNewHTTP(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := metrics.NewHTTP(reg)
	require.NoError(t, err)

	m.Duration.WithLabelValues("/v1/jobs", "GET", "200").Observe(0.02)
	require.Equal(t, 1, testutil.CollectAndCount(m.Duration))

	_, err = metrics.NewHTTP(reg)
	require.Error(t, err, "registering twice must fail")
}

func TestNewTasks(t *testing.T) {
	m, err := metrics.NewTasks(prometheus.NewRegistry())
	require.NoError(t, err)

	m.Dispatched.WithLabelValues("send_email", "queue").Inc()
	m.Dispatched.WithLabelValues("send_email", "queue").Inc()
	require.InDelta(t, 2, testutil.ToFloat64(m.Dispatched.WithLabelValues("send_email", "queue")), 0)
}
