package models

import "time"

type ParticipantStatus string

const (
	ParticipantRegistered ParticipantStatus = "registered"
	ParticipantApproved   ParticipantStatus = "approved"
	ParticipantRejected   ParticipantStatus = "rejected"
)

// Participant is an athlete's registration into one championship class.
// Bracket match slots reference Participant.ID.
type Participant struct {
	ID        int               `json:"id" db:"id"`
	ClassID   int               `json:"class_id" db:"class_id"`
	AthleteID int               `json:"athlete_id" db:"athlete_id"`
	Status    ParticipantStatus `json:"status" db:"status"`
	CreatedAt time.Time         `json:"created_at" db:"created_at"`

	// Filled by list queries that join athletes and dojangs.
	AthleteName string `json:"athlete_name,omitempty" db:"athlete_name"`
	DojangID    int    `json:"dojang_id,omitempty" db:"dojang_id"`
	DojangName  string `json:"dojang_name,omitempty" db:"dojang_name"`
}
