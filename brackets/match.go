package brackets

// Match is one bout of a championship class bracket as seen by the medal resolver.
// Round is 1-based and grows toward the final. A nil participant slot is a bye.
type Match struct {
	Round          int  `json:"round"`
	Participant1ID *int `json:"participant1_id,omitempty"`
	Participant2ID *int `json:"participant2_id,omitempty"`
	ScoreA         int  `json:"score_a"`
	ScoreB         int  `json:"score_b"`
}

// Outcome is the winner/loser pair of a decided match. Either side may be nil
// when the corresponding slot of the match is empty.
type Outcome struct {
	Winner *int
	Loser  *int
}

func (o Outcome) IsWinner(participantID int) bool {
	return o.Winner != nil && *o.Winner == participantID
}

func (o Outcome) IsLoser(participantID int) bool {
	return o.Loser != nil && *o.Loser == participantID
}

// DecideMatch reports the outcome of m. A 0-0 match has not been played and is
// reported as undecided. Participant1 wins only on a strictly greater score, so
// equal non-zero scores go to participant2.
func DecideMatch(m Match) (Outcome, bool) {
	if m.ScoreA == 0 && m.ScoreB == 0 {
		return Outcome{}, false
	}
	if m.ScoreA > m.ScoreB {
		return Outcome{Winner: m.Participant1ID, Loser: m.Participant2ID}, true
	}
	return Outcome{Winner: m.Participant2ID, Loser: m.Participant1ID}, true
}
