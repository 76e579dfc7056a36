package entities

import "time"

type SessionStatus string

const (
	SessionPending     SessionStatus = "PENDING"
	SessionApproved    SessionStatus = "APPROVED"
	SessionExitPending SessionStatus = "EXIT_PENDING"
	SessionRejected    SessionStatus = "REJECTED"
	SessionCompleted   SessionStatus = "COMPLETED"
)

// Session is one reservation lifecycle from entry request to settlement.
//
// Legal transitions:
//
//	PENDING      -> APPROVED | REJECTED
//	APPROVED     -> EXIT_PENDING
//	EXIT_PENDING -> COMPLETED | APPROVED (exit rejected)
//
// REJECTED and COMPLETED are terminal. ExitTime and ChargedAmount are set
// together when an exit is requested and cleared together if it is rejected.
type Session struct {
	ID            int           `json:"id"`
	LotID         int           `json:"lot_id"`
	UserID        int           `json:"user_id"`
	PlateNumber   string        `json:"plate_number"`
	Status        SessionStatus `json:"status"`
	EntryTime     time.Time     `json:"entry_time"`
	ExitTime      *time.Time    `json:"exit_time,omitempty"`
	ChargedAmount *float64      `json:"charged_amount,omitempty"`

	// Populated on API reads, never stored.
	Lot *Lot `json:"parking,omitempty"`
}
