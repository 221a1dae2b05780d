package brackets

// ResolvePlacement derives the placement of participantID from the match results
// of a single championship class. matches must belong to one class only; mixing
// brackets silently produces wrong placements. Scan order follows the slice, so
// callers must pass matches in bracket order.
//
// Incomplete data never fails: anything that cannot be resolved is a participant.
func ResolvePlacement(matches []Match, participantID int, format Format) Placement {
	if len(matches) == 0 {
		return PlacementParticipant
	}
	if format == FormatPemula {
		return resolvePemula(matches, participantID)
	}
	return resolvePrestasi(matches, participantID)
}

// ResolveAll resolves every id in participantIDs against the same bracket.
func ResolveAll(matches []Match, participantIDs []int, format Format) map[int]Placement {
	placements := make(map[int]Placement, len(participantIDs))
	for _, id := range participantIDs {
		placements[id] = ResolvePlacement(matches, id, format)
	}
	return placements
}

func resolvePrestasi(matches []Match, participantID int) Placement {
	totalRounds := finalRound(matches)

	if final, ok := firstMatchInRound(matches, totalRounds); ok {
		if outcome, decided := DecideMatch(final); decided {
			if outcome.IsWinner(participantID) {
				return PlacementGold
			}
			if outcome.IsLoser(participantID) {
				return PlacementSilver
			}
		}
	}

	for _, semifinal := range matchesInRound(matches, totalRounds-1) {
		if outcome, decided := DecideMatch(semifinal); decided && outcome.IsLoser(participantID) {
			return PlacementBronze
		}
	}

	return PlacementParticipant
}

func resolvePemula(matches []Match, participantID int) Placement {
	round1 := matchesInRound(matches, 1)
	round2 := matchesInRound(matches, 2)

	// An odd number of entrants (GANJIL) needs one extra match in round 2.
	if len(round2) == 0 {
		return goldOrSilver(round1, participantID)
	}

	additional := round2[0]
	if outcome, decided := DecideMatch(additional); decided {
		if outcome.IsWinner(participantID) {
			return PlacementGold
		}
		if outcome.IsLoser(participantID) {
			return PlacementSilver
		}
	}

	if last, ok := lastMatch(round1); ok {
		if outcome, decided := DecideMatch(last); decided && outcome.IsLoser(participantID) {
			return PlacementBronze
		}
	}

	return goldOrSilver(allButLast(round1), participantID)
}

// goldOrSilver scans matches in order and returns on the first decided match
// that involves participantID.
func goldOrSilver(matches []Match, participantID int) Placement {
	for _, m := range matches {
		outcome, decided := DecideMatch(m)
		if !decided {
			continue
		}
		if outcome.IsWinner(participantID) {
			return PlacementGold
		}
		if outcome.IsLoser(participantID) {
			return PlacementSilver
		}
	}
	return PlacementParticipant
}

func finalRound(matches []Match) int {
	maxRound := 0
	for _, m := range matches {
		if m.Round > maxRound {
			maxRound = m.Round
		}
	}
	return maxRound
}

func firstMatchInRound(matches []Match, round int) (Match, bool) {
	for _, m := range matches {
		if m.Round == round {
			return m, true
		}
	}
	return Match{}, false
}

func matchesInRound(matches []Match, round int) []Match {
	var inRound []Match
	for _, m := range matches {
		if m.Round == round {
			inRound = append(inRound, m)
		}
	}
	return inRound
}

func lastMatch(matches []Match) (Match, bool) {
	if len(matches) == 0 {
		return Match{}, false
	}
	return matches[len(matches)-1], true
}

func allButLast(matches []Match) []Match {
	if len(matches) == 0 {
		return nil
	}
	return matches[:len(matches)-1]
}
