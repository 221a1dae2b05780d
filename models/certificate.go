package models

import "github.com/Elmanda1/pemuda-berprestasi-legacy-sub004/brackets"

type Certificate struct {
	AthleteID       int                `json:"athlete_id"`
	AthleteName     string             `json:"athlete_name"`
	DojangName      string             `json:"dojang_name"`
	CompetitionID   int                `json:"competition_id"`
	CompetitionName string             `json:"competition_name"`
	ClassID         int                `json:"class_id"`
	ClassLabel      string             `json:"class_label"`
	Placement       brackets.Placement `json:"placement"`
	PlacementText   string             `json:"placement_text"`
}
