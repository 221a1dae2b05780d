package models

import "github.com/Elmanda1/pemuda-berprestasi-legacy-sub004/brackets"

type ParticipantPlacement struct {
	ParticipantID int                `json:"participant_id"`
	AthleteID     int                `json:"athlete_id"`
	AthleteName   string             `json:"athlete_name"`
	DojangID      int                `json:"dojang_id"`
	DojangName    string             `json:"dojang_name"`
	ClassID       int                `json:"class_id"`
	ClassLabel    string             `json:"class_label"`
	Placement     brackets.Placement `json:"placement"`
	PlacementText string             `json:"placement_text"`
}

type DojangMedalCount struct {
	Rank       int    `json:"rank"`
	DojangID   int    `json:"dojang_id"`
	DojangName string `json:"dojang_name"`
	Gold       int    `json:"gold"`
	Silver     int    `json:"silver"`
	Bronze     int    `json:"bronze"`
	Total      int    `json:"total"`
}

func (c *DojangMedalCount) Add(p brackets.Placement) {
	switch p {
	case brackets.PlacementGold:
		c.Gold++
	case brackets.PlacementSilver:
		c.Silver++
	case brackets.PlacementBronze:
		c.Bronze++
	default:
		return
	}
	c.Total++
}

type MedalTally struct {
	CompetitionID   int                    `json:"competition_id"`
	CompetitionName string                 `json:"competition_name"`
	Dojangs         []DojangMedalCount     `json:"dojangs"`
	Medalists       []ParticipantPlacement `json:"medalists"`
}
