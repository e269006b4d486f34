package metrics

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounters(t *testing.T) {
	m := New()

	m.ObserveRequest("POST", "/cattle", 201, 15*time.Millisecond)
	m.ObserveRequest("POST", "/cattle", 201, 5*time.Millisecond)
	m.NotificationsDue(3)
	m.NotificationsDue(0)
	m.ScanFailed()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("POST", "/cattle", "201")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.notificationsDue))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.scanFailures))
}

func TestHandlerExposesMetrics(t *testing.T) {
	m := New()
	m.NotificationsDue(2)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "dairyfarm_notifications_due_total 2")
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveRequest("GET", "/", 200, time.Millisecond)
		m.NotificationsDue(1)
		m.ScanFailed()
	})
}
