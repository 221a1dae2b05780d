package models

import "github.com/Elmanda1/pemuda-berprestasi-legacy-sub004/brackets"

// BracketMatch is a stored bout of a class bracket. Slots reference participants.
type BracketMatch struct {
	ID             int  `json:"id" db:"id"`
	ClassID        int  `json:"class_id" db:"class_id"`
	Round          int  `json:"round" db:"round"`
	Position       int  `json:"position" db:"position"`
	Participant1ID *int `json:"participant1_id,omitempty" db:"participant1_id"`
	Participant2ID *int `json:"participant2_id,omitempty" db:"participant2_id"`
	ScoreA         int  `json:"score_a" db:"score_a"`
	ScoreB         int  `json:"score_b" db:"score_b"`
}

func (m *BracketMatch) ToBracket() brackets.Match {
	return brackets.Match{
		Round:          m.Round,
		Participant1ID: m.Participant1ID,
		Participant2ID: m.Participant2ID,
		ScoreA:         m.ScoreA,
		ScoreB:         m.ScoreB,
	}
}

// ToBracketMatches keeps the slice order, which the medal resolver depends on.
func ToBracketMatches(matches []*BracketMatch) []brackets.Match {
	result := make([]brackets.Match, 0, len(matches))
	for _, m := range matches {
		if m != nil {
			result = append(result, m.ToBracket())
		}
	}
	return result
}
