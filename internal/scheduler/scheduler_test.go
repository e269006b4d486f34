package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/dairyfarm/internal/config"
	"github.com/mamadbah2/dairyfarm/internal/domain/models"
	"github.com/mamadbah2/dairyfarm/internal/metrics"
)

type stubScanner struct {
	calls int
	due   []models.Notification
	err   error
}

func (s *stubScanner) ScanDue(context.Context) ([]models.Notification, error) {
	s.calls++
	return s.due, s.err
}

func TestNewSchedulerRejectsUnknownTimezone(t *testing.T) {
	_, err := NewScheduler(config.NotificationsConfig{CronSchedule: "* * * * *", Timezone: "Nowhere/Land"}, &stubScanner{}, nil, nil)
	require.Error(t, err)
}

func TestStartRejectsInvalidSchedule(t *testing.T) {
	s, err := NewScheduler(config.NotificationsConfig{CronSchedule: "every minute", Timezone: "UTC"}, &stubScanner{}, nil, nil)
	require.NoError(t, err)
	require.Error(t, s.Start())
}

func TestStartAndStop(t *testing.T) {
	s, err := NewScheduler(config.NotificationsConfig{CronSchedule: "* * * * *", Timezone: "UTC"}, &stubScanner{}, nil, nil)
	require.NoError(t, err)
	require.NoError(t, s.Start())
	require.Len(t, s.cron.Entries(), 1)
	s.Stop()
}

func TestScanDueRecordsMetrics(t *testing.T) {
	past := time.Now().Add(-time.Hour)
	scanner := &stubScanner{due: []models.Notification{{Title: "a", Datetime: &past}, {Title: "b", Datetime: &past}}}
	m := metrics.New()

	s, err := NewScheduler(config.NotificationsConfig{CronSchedule: "* * * * *", Timezone: "UTC"}, scanner, m, nil)
	require.NoError(t, err)

	s.scanDue()
	s.scanDue()
	assert.Equal(t, 2, scanner.calls)

	scanner.err = errors.New("store unavailable")
	assert.NotPanics(t, s.scanDue)
	assert.Equal(t, 3, scanner.calls)
}
