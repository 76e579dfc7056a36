package repository

import (
	"fmt"
	"sync"
	"time"

	"parkeo/internal/entities"
	apperrors "parkeo/internal/errors"
)

// SessionLedger holds every parking session ever created, in insertion order
// with monotonically assigned IDs. Sessions are never deleted, only saved
// back with a new state; all reads hand out deep copies.
type SessionLedger struct {
	mu       sync.RWMutex
	sessions []*entities.Session
	nextID   int
}

func NewSessionLedger() *SessionLedger {
	return &SessionLedger{nextID: 1}
}

// Create appends a new PENDING session and returns it with its assigned ID.
func (l *SessionLedger) Create(lotID, userID int, plateNumber string, entryTime time.Time) entities.Session {
	l.mu.Lock()
	defer l.mu.Unlock()

	session := &entities.Session{
		ID:          l.nextID,
		LotID:       lotID,
		UserID:      userID,
		PlateNumber: plateNumber,
		Status:      entities.SessionPending,
		EntryTime:   entryTime,
	}
	l.nextID++
	l.sessions = append(l.sessions, session)
	return cloneSession(session)
}

func (l *SessionLedger) Get(id int) (entities.Session, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for _, s := range l.sessions {
		if s.ID == id {
			return cloneSession(s), nil
		}
	}
	return entities.Session{}, fmt.Errorf("session %d: %w", id, apperrors.ErrNotFound)
}

// Save replaces the stored session with the same ID.
func (l *SessionLedger) Save(session entities.Session) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, s := range l.sessions {
		if s.ID == session.ID {
			stored := cloneSession(&session)
			stored.Lot = nil // attached on reads only
			l.sessions[i] = &stored
			return nil
		}
	}
	return fmt.Errorf("session %d: %w", session.ID, apperrors.ErrNotFound)
}

// ListByUser returns all sessions owned by the user, insertion order.
func (l *SessionLedger) ListByUser(userID int) []entities.Session {
	return l.list(func(s *entities.Session) bool { return s.UserID == userID })
}

// ListActiveByUser returns the user's APPROVED sessions with no exit recorded.
func (l *SessionLedger) ListActiveByUser(userID int) []entities.Session {
	return l.list(func(s *entities.Session) bool {
		return s.UserID == userID && s.Status == entities.SessionApproved
	})
}

// ListByStatus returns all sessions in the given state, any user.
func (l *SessionLedger) ListByStatus(status entities.SessionStatus) []entities.Session {
	return l.list(func(s *entities.Session) bool { return s.Status == status })
}

// PendingIDsOlderThan returns the IDs of PENDING sessions requested before cutoff.
func (l *SessionLedger) PendingIDsOlderThan(cutoff time.Time) []int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var ids []int
	for _, s := range l.sessions {
		if s.Status == entities.SessionPending && s.EntryTime.Before(cutoff) {
			ids = append(ids, s.ID)
		}
	}
	return ids
}

func (l *SessionLedger) list(match func(*entities.Session) bool) []entities.Session {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := []entities.Session{}
	for _, s := range l.sessions {
		if match(s) {
			out = append(out, cloneSession(s))
		}
	}
	return out
}

func cloneSession(s *entities.Session) entities.Session {
	out := *s
	if s.ExitTime != nil {
		t := *s.ExitTime
		out.ExitTime = &t
	}
	if s.ChargedAmount != nil {
		a := *s.ChargedAmount
		out.ChargedAmount = &a
	}
	return out
}
