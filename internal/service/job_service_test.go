package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parkeo/internal/entities"
)

func TestExpirePendingEntryRequestsJob(t *testing.T) {
	parking := newTestService()
	base := time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)
	parking.now = func() time.Time { return base }

	stale, err := parking.RequestEntry("PKG001", "AAA-111", userID)
	require.NoError(t, err)

	job := NewJobService(parking, 30*time.Minute)

	parking.now = func() time.Time { return base.Add(time.Hour) }
	require.NoError(t, job.ExpirePendingEntryRequests())

	got, err := parking.sessions.Get(stale.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.SessionRejected, got.Status)
	assert.Empty(t, parking.EntryRequests())
}
