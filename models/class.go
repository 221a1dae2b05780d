package models

import "strings"

type ClassCategory string

const (
	CategoryKyorugi ClassCategory = "KYORUGI"
	CategoryPoomsae ClassCategory = "POOMSAE"
)

type ClassLevel string

const (
	LevelPrestasi ClassLevel = "PRESTASI"
	LevelPemula   ClassLevel = "PEMULA"
)

type Gender string

const (
	GenderMale   Gender = "LAKI_LAKI"
	GenderFemale Gender = "PEREMPUAN"
)

func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

// ChampionshipClass is one kelas kejuaraan: a single division of a competition
// with its own bracket.
type ChampionshipClass struct {
	ID            int           `json:"id" db:"id"`
	CompetitionID int           `json:"competition_id" db:"competition_id"`
	Category      ClassCategory `json:"category" db:"category"`
	Level         ClassLevel    `json:"level" db:"level"`
	AgeGroup      string        `json:"age_group" db:"age_group"`
	Gender        Gender        `json:"gender" db:"gender"`
	WeightClass   *string       `json:"weight_class,omitempty" db:"weight_class"`
	PoomsaeClass  *string       `json:"poomsae_class,omitempty" db:"poomsae_class"`

	// Label holds FormatLabel() for API responses; it is not stored.
	Label string `json:"label" db:"-"`
}

func (c *ChampionshipClass) IsPemula() bool {
	return c.Level == LevelPemula
}

// FormatLabel builds the human readable class name, e.g.
// "Kyorugi Prestasi - Junior - Putra - Under 55 kg". Empty parts are skipped.
func (c *ChampionshipClass) FormatLabel() string {
	head := strings.TrimSpace(titleCase(string(c.Category)) + " " + titleCase(string(c.Level)))

	parts := make([]string, 0, 4)
	if head != "" {
		parts = append(parts, head)
	}
	if ageGroup := strings.TrimSpace(c.AgeGroup); ageGroup != "" {
		parts = append(parts, ageGroup)
	}
	switch c.Gender {
	case GenderMale:
		parts = append(parts, "Putra")
	case GenderFemale:
		parts = append(parts, "Putri")
	}

	division := c.WeightClass
	if c.Category == CategoryPoomsae || division == nil {
		division = c.PoomsaeClass
	}
	if division != nil && strings.TrimSpace(*division) != "" {
		parts = append(parts, strings.TrimSpace(*division))
	}
	return strings.Join(parts, " - ")
}

func titleCase(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
