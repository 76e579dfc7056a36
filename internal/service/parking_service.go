package service

import (
	"fmt"
	"math"
	"sync"
	"time"

	"parkeo/internal/entities"
	apperrors "parkeo/internal/errors"
	"parkeo/internal/repository"
)

// ParkingService drives the session state machine and is the only writer of
// lot capacity. Every mutating operation runs as one critical section under
// mu, so the capacity check at request time, the reservation at approval and
// the release at completion are serialized: two approvals can never share the
// last space. Each operation either fully applies its effect or fully fails.
type ParkingService struct {
	mu       sync.Mutex
	lots     *repository.LotRegistry
	sessions *repository.SessionLedger
	now      func() time.Time
}

func NewParkingService(lots *repository.LotRegistry, sessions *repository.SessionLedger) *ParkingService {
	return &ParkingService{
		lots:     lots,
		sessions: sessions,
		now:      time.Now,
	}
}

func (s *ParkingService) ListLots() []entities.Lot {
	return s.lots.List()
}

func (s *ParkingService) GetLot(id int) (entities.Lot, error) {
	return s.lots.GetByID(id)
}

func (s *ParkingService) GetLotByCode(code string) (entities.Lot, error) {
	return s.lots.GetByCode(code)
}

// RequestEntry creates a PENDING session against the lot with the given code.
// The lot must have a space available, but no space is reserved yet; the
// reservation happens at approval.
func (s *ParkingService) RequestEntry(lotCode, plateNumber string, userID int) (entities.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lot, err := s.lots.GetByCode(lotCode)
	if err != nil {
		return entities.Session{}, err
	}
	if lot.AvailableSpaces == 0 {
		return entities.Session{}, fmt.Errorf("lot %s: %w", lot.Code, apperrors.ErrSpacesExhausted)
	}

	session := s.sessions.Create(lot.ID, userID, plateNumber, s.now())
	session.Lot = &lot
	return session, nil
}

// ApproveEntry moves a PENDING session to APPROVED, reserving one space.
// If capacity vanished since the request, the session stays PENDING.
func (s *ParkingService) ApproveEntry(sessionID int) (entities.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return entities.Session{}, err
	}
	if session.Status != entities.SessionPending {
		return entities.Session{}, transitionErr(session, "approve entry")
	}

	if err := s.lots.ReserveOne(session.LotID); err != nil {
		return entities.Session{}, err
	}
	session.Status = entities.SessionApproved
	if err := s.sessions.Save(session); err != nil {
		return entities.Session{}, err
	}
	return s.withLot(session), nil
}

// RejectEntry moves a PENDING session to REJECTED. No capacity was reserved
// at request time, so none is touched here.
func (s *ParkingService) RejectEntry(sessionID int) (entities.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return entities.Session{}, err
	}
	if session.Status != entities.SessionPending {
		return entities.Session{}, transitionErr(session, "reject entry")
	}

	session.Status = entities.SessionRejected
	if err := s.sessions.Save(session); err != nil {
		return entities.Session{}, err
	}
	return s.withLot(session), nil
}

// RequestExit settles an APPROVED session: it records the exit time, charges
// the elapsed duration against the lot's hourly fee and parks the session in
// EXIT_PENDING until an admin rules on it.
func (s *ParkingService) RequestExit(sessionID int) (entities.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return entities.Session{}, err
	}
	if session.Status != entities.SessionApproved {
		return entities.Session{}, transitionErr(session, "request exit")
	}

	lot, err := s.lots.GetByID(session.LotID)
	if err != nil {
		return entities.Session{}, err
	}

	exitTime := s.now()
	fee := settleFee(session.EntryTime, exitTime, lot.ChargingFeePerHour)
	session.Status = entities.SessionExitPending
	session.ExitTime = &exitTime
	session.ChargedAmount = &fee
	if err := s.sessions.Save(session); err != nil {
		return entities.Session{}, err
	}
	session.Lot = &lot
	return session, nil
}

// ApproveExit completes an EXIT_PENDING session and releases its space back
// to the lot.
func (s *ParkingService) ApproveExit(sessionID int) (entities.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return entities.Session{}, err
	}
	if session.Status != entities.SessionExitPending {
		return entities.Session{}, transitionErr(session, "approve exit")
	}

	if err := s.lots.ReleaseOne(session.LotID); err != nil {
		return entities.Session{}, err
	}
	session.Status = entities.SessionCompleted
	if err := s.sessions.Save(session); err != nil {
		return entities.Session{}, err
	}
	return s.withLot(session), nil
}

// RejectExit returns an EXIT_PENDING session to APPROVED, discarding the
// recorded exit time and charge. The session can request exit again later.
func (s *ParkingService) RejectExit(sessionID int) (entities.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return entities.Session{}, err
	}
	if session.Status != entities.SessionExitPending {
		return entities.Session{}, transitionErr(session, "reject exit")
	}

	session.Status = entities.SessionApproved
	session.ExitTime = nil
	session.ChargedAmount = nil
	if err := s.sessions.Save(session); err != nil {
		return entities.Session{}, err
	}
	return s.withLot(session), nil
}

// MySessions returns every session owned by the user, oldest first.
func (s *ParkingService) MySessions(userID int) []entities.Session {
	return s.attachLots(s.sessions.ListByUser(userID))
}

// ActiveSessions returns the user's currently parked sessions.
func (s *ParkingService) ActiveSessions(userID int) []entities.Session {
	return s.attachLots(s.sessions.ListActiveByUser(userID))
}

// EntryRequests returns all PENDING sessions, any user.
func (s *ParkingService) EntryRequests() []entities.Session {
	return s.attachLots(s.sessions.ListByStatus(entities.SessionPending))
}

// ExitRequests returns all sessions awaiting exit approval, any user.
func (s *ParkingService) ExitRequests() []entities.Session {
	return s.attachLots(s.sessions.ListByStatus(entities.SessionExitPending))
}

// ExpireStaleEntryRequests rejects entry requests that have sat in PENDING
// longer than maxAge and reports how many were swept.
func (s *ParkingService) ExpireStaleEntryRequests(maxAge time.Duration) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, id := range s.sessions.PendingIDsOlderThan(s.now().Add(-maxAge)) {
		session, err := s.sessions.Get(id)
		if err != nil {
			return count, err
		}
		session.Status = entities.SessionRejected
		if err := s.sessions.Save(session); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

func (s *ParkingService) withLot(session entities.Session) entities.Session {
	if lot, err := s.lots.GetByID(session.LotID); err == nil {
		session.Lot = &lot
	}
	return session
}

func (s *ParkingService) attachLots(sessions []entities.Session) []entities.Session {
	for i := range sessions {
		sessions[i] = s.withLot(sessions[i])
	}
	return sessions
}

// settleFee charges fractional wall-clock hours at the lot's hourly rate,
// rounded half away from zero to two decimals.
func settleFee(entryTime, exitTime time.Time, feePerHour float64) float64 {
	hours := exitTime.Sub(entryTime).Hours()
	return math.Round(hours*feePerHour*100) / 100
}

func transitionErr(session entities.Session, op string) error {
	return fmt.Errorf("cannot %s for session %d in status %s: %w",
		op, session.ID, session.Status, apperrors.ErrInvalidTransition)
}
