package repository

import (
	"fmt"
	"sync"

	"parkeo/internal/entities"
	apperrors "parkeo/internal/errors"
)

// LotRegistry holds the set of parking lots and their available-space
// counters. Reads return copies, so callers can never mutate shared state;
// the counters change only through ReserveOne/ReleaseOne.
type LotRegistry struct {
	mu   sync.RWMutex
	lots []*entities.Lot
}

func NewLotRegistry(lots []entities.Lot) *LotRegistry {
	r := &LotRegistry{lots: make([]*entities.Lot, 0, len(lots))}
	for i := range lots {
		lot := lots[i]
		r.lots = append(r.lots, &lot)
	}
	return r
}

// List returns all lots in creation order.
func (r *LotRegistry) List() []entities.Lot {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.Lot, 0, len(r.lots))
	for _, lot := range r.lots {
		out = append(out, *lot)
	}
	return out
}

func (r *LotRegistry) GetByID(id int) (entities.Lot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, lot := range r.lots {
		if lot.ID == id {
			return *lot, nil
		}
	}
	return entities.Lot{}, fmt.Errorf("lot %d: %w", id, apperrors.ErrNotFound)
}

func (r *LotRegistry) GetByCode(code string) (entities.Lot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, lot := range r.lots {
		if lot.Code == code {
			return *lot, nil
		}
	}
	return entities.Lot{}, fmt.Errorf("lot %q: %w", code, apperrors.ErrNotFound)
}

// ReserveOne takes one space from the lot. It fails with ErrSpacesExhausted
// when no space is left, leaving the counter untouched.
func (r *LotRegistry) ReserveOne(lotID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	lot, err := r.find(lotID)
	if err != nil {
		return err
	}
	if lot.AvailableSpaces == 0 {
		return fmt.Errorf("lot %s: %w", lot.Code, apperrors.ErrSpacesExhausted)
	}
	lot.AvailableSpaces--
	return nil
}

// ReleaseOne returns one space to the lot. Releasing past TotalSpaces would
// break the capacity invariant and is refused.
func (r *LotRegistry) ReleaseOne(lotID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	lot, err := r.find(lotID)
	if err != nil {
		return err
	}
	if lot.AvailableSpaces >= lot.TotalSpaces {
		return fmt.Errorf("lot %s already at capacity %d", lot.Code, lot.TotalSpaces)
	}
	lot.AvailableSpaces++
	return nil
}

func (r *LotRegistry) find(lotID int) (*entities.Lot, error) {
	for _, lot := range r.lots {
		if lot.ID == lotID {
			return lot, nil
		}
	}
	return nil, fmt.Errorf("lot %d: %w", lotID, apperrors.ErrNotFound)
}
