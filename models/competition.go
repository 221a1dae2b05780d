package models

import "time"

// CompetitionStatus mirrors the competition_status enum in the database.
type CompetitionStatus string

const (
	CompetitionUpcoming CompetitionStatus = "upcoming"
	CompetitionOngoing  CompetitionStatus = "ongoing"
	CompetitionFinished CompetitionStatus = "finished"
)

func (s CompetitionStatus) Valid() bool {
	switch s {
	case CompetitionUpcoming, CompetitionOngoing, CompetitionFinished:
		return true
	}
	return false
}

type Competition struct {
	ID        int               `json:"id" db:"id"`
	Name      string            `json:"name" db:"name"`
	Location  *string           `json:"location,omitempty" db:"location"`
	StartDate time.Time         `json:"start_date" db:"start_date"`
	EndDate   time.Time         `json:"end_date" db:"end_date"`
	Status    CompetitionStatus `json:"status" db:"status"`
	CreatedAt time.Time         `json:"created_at" db:"created_at"`

	Classes []ChampionshipClass `json:"classes,omitempty" db:"-"`
}
