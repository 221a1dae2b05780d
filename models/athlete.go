package models

import "time"

type Athlete struct {
	ID        int       `json:"id" db:"id"`
	DojangID  int       `json:"dojang_id" db:"dojang_id"`
	Name      string    `json:"name" db:"name"`
	Gender    Gender    `json:"gender" db:"gender"`
	BirthDate time.Time `json:"birth_date" db:"birth_date"`
	WeightKg  *float64  `json:"weight_kg,omitempty" db:"weight_kg"`
	Belt      *string   `json:"belt,omitempty" db:"belt"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
