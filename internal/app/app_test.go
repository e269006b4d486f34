package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/dairyfarm/internal/config"
)

func memoryConfig() *config.Config {
	return &config.Config{
		Server:  config.ServerConfig{Port: "0", AllowedOrigins: []string{"*"}},
		Storage: config.StorageConfig{Driver: config.StorageMemory},
		Notifications: config.NotificationsConfig{
			CronSchedule: "* * * * *",
			Timezone:     "UTC",
		},
	}
}

func TestNewRequiresConfig(t *testing.T) {
	_, err := New(context.Background(), nil, nil)
	require.Error(t, err)
}

func TestNewRejectsBadTimezone(t *testing.T) {
	cfg := memoryConfig()
	cfg.Notifications.Timezone = "Mars/Olympus"

	_, err := New(context.Background(), cfg, nil)
	require.Error(t, err)
}

func TestRunRejectsBadSchedule(t *testing.T) {
	cfg := memoryConfig()
	cfg.Notifications.CronSchedule = "every minute"

	a, err := New(context.Background(), cfg, nil)
	require.NoError(t, err)
	defer a.Close(context.Background())

	require.Error(t, a.Run(context.Background()))
}

func TestMemoryAppServesRoutes(t *testing.T) {
	a, err := New(context.Background(), memoryConfig(), nil)
	require.NoError(t, err)
	defer a.Close(context.Background())

	rec := httptest.NewRecorder()
	a.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	req := httptest.NewRequest(http.MethodPost, "/notifications",
		strings.NewReader(`{"title":"Deworm","description":"Whole herd","datetime":"2020-01-01T00:00:00Z"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Origin", "http://farm.test")
	rec = httptest.NewRecorder()
	a.Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	due, err := a.Notifications.ScanDue(context.Background())
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, "Deworm", due[0].Title)
}

func TestRunStopsOnCancel(t *testing.T) {
	a, err := New(context.Background(), memoryConfig(), nil)
	require.NoError(t, err)
	defer a.Close(context.Background())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
