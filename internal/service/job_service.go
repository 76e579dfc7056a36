package service

import (
	"fmt"
	"log"
	"time"
)

// JobService sweeps entry requests that were never ruled on. A PENDING
// session only blocks the admin queue, never lot capacity, so rejecting the
// stale ones is safe at any time.
type JobService struct {
	parking *ParkingService
	maxAge  time.Duration
}

func NewJobService(parking *ParkingService, maxAge time.Duration) *JobService {
	return &JobService{parking: parking, maxAge: maxAge}
}

// ExpirePendingEntryRequests rejects entry requests stuck in PENDING longer
// than the configured age.
func (s *JobService) ExpirePendingEntryRequests() error {
	count, err := s.parking.ExpireStaleEntryRequests(s.maxAge)
	if err != nil {
		return fmt.Errorf("cron job: failed to expire pending entry requests: %w", err)
	}
	if count > 0 {
		log.Printf("Cron Job: rejected %d entry requests pending longer than %s", count, s.maxAge)
	}
	return nil
}
