package models

import "time"

type Dojang struct {
	ID        int       `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Province  *string   `json:"province,omitempty" db:"province"`
	City      *string   `json:"city,omitempty" db:"city"`
	CoachName *string   `json:"coach_name,omitempty" db:"coach_name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	LogoKey *string `json:"-" db:"logo_key"`
	LogoURL *string `json:"logo_url,omitempty" db:"-"`
}
