package models

type DashboardStats struct {
	DojangsTotal        int `json:"dojangs_total"`
	AthletesTotal       int `json:"athletes_total"`
	CompetitionsTotal   int `json:"competitions_total"`
	OngoingCompetitions int `json:"ongoing_competitions"`
	RegistrationsTotal  int `json:"registrations_total"`
	DecidedMatches      int `json:"decided_matches"`
}
