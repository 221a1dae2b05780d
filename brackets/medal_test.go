package brackets

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func id(v int) *int {
	return &v
}

func match(round int, p1, p2 *int, scoreA, scoreB int) Match {
	return Match{Round: round, Participant1ID: p1, Participant2ID: p2, ScoreA: scoreA, ScoreB: scoreB}
}

func TestDecideMatch(t *testing.T) {
	testCases := []struct {
		name        string
		match       Match
		wantDecided bool
		wantWinner  *int
		wantLoser   *int
	}{
		{
			name:        "not played",
			match:       match(1, id(1), id(2), 0, 0),
			wantDecided: false,
		},
		{
			name:        "participant1 wins",
			match:       match(1, id(1), id(2), 9, 3),
			wantDecided: true,
			wantWinner:  id(1),
			wantLoser:   id(2),
		},
		{
			name:        "participant2 wins",
			match:       match(1, id(1), id(2), 1, 4),
			wantDecided: true,
			wantWinner:  id(2),
			wantLoser:   id(1),
		},
		{
			name:        "equal scores go to participant2",
			match:       match(1, id(1), id(2), 5, 5),
			wantDecided: true,
			wantWinner:  id(2),
			wantLoser:   id(1),
		},
		{
			name:        "bye slot stays empty",
			match:       match(1, id(1), nil, 3, 0),
			wantDecided: true,
			wantWinner:  id(1),
			wantLoser:   nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			outcome, decided := DecideMatch(tc.match)
			require.Equal(t, tc.wantDecided, decided)
			assert.Equal(t, tc.wantWinner, outcome.Winner)
			assert.Equal(t, tc.wantLoser, outcome.Loser)
		})
	}
}

func TestOutcome_NilSideNeverMatches(t *testing.T) {
	outcome := Outcome{Winner: id(3)}
	assert.True(t, outcome.IsWinner(3))
	assert.False(t, outcome.IsLoser(0))
	assert.False(t, outcome.IsLoser(3))
}

func TestResolvePlacement_EmptyBracket(t *testing.T) {
	assert.Equal(t, PlacementParticipant, ResolvePlacement(nil, 1, FormatPrestasi))
	assert.Equal(t, PlacementParticipant, ResolvePlacement([]Match{}, 1, FormatPemula))
}

func TestResolvePlacement_Prestasi(t *testing.T) {
	// Four entrants: semifinals in round 1, final in round 2.
	matches := []Match{
		match(1, id(1), id(2), 9, 4),
		match(1, id(3), id(4), 2, 10),
		match(2, id(1), id(4), 3, 5),
	}

	testCases := []struct {
		participantID int
		want          Placement
	}{
		{participantID: 4, want: PlacementGold},
		{participantID: 1, want: PlacementSilver},
		{participantID: 2, want: PlacementBronze},
		{participantID: 3, want: PlacementBronze},
		{participantID: 99, want: PlacementParticipant},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, ResolvePlacement(matches, tc.participantID, FormatPrestasi), "participant %d", tc.participantID)
	}
}

func TestResolvePlacement_PrestasiFinalWinsOverSemifinal(t *testing.T) {
	matches := []Match{
		match(1, id(10), id(11), 1, 2),
		match(1, id(5), id(12), 1, 3),
		match(2, id(5), id(7), 9, 3),
	}

	// 5 lost a semifinal on paper but the final slots are trusted first.
	assert.Equal(t, PlacementGold, ResolvePlacement(matches, 5, FormatPrestasi))
	assert.Equal(t, PlacementSilver, ResolvePlacement(matches, 7, FormatPrestasi))
}

func TestResolvePlacement_PrestasiSemifinalLoser(t *testing.T) {
	matches := []Match{
		match(1, id(1), id(2), 3, 1),
		match(1, id(3), id(4), 2, 1),
		match(1, id(5), id(6), 5, 6),
		match(1, id(7), id(8), 1, 0),
		match(2, id(9), id(11), 2, 10),
		match(2, id(1), id(3), 4, 2),
		match(3, id(11), id(1), 0, 0),
	}

	assert.Equal(t, PlacementBronze, ResolvePlacement(matches, 9, FormatPrestasi))
	assert.Equal(t, PlacementBronze, ResolvePlacement(matches, 3, FormatPrestasi))
	// Final not played yet: finalists have no medal.
	assert.Equal(t, PlacementParticipant, ResolvePlacement(matches, 11, FormatPrestasi))
	assert.Equal(t, PlacementParticipant, ResolvePlacement(matches, 1, FormatPrestasi))
	// Quarterfinal losers are never medalists.
	assert.Equal(t, PlacementParticipant, ResolvePlacement(matches, 2, FormatPrestasi))
}

func TestResolvePlacement_PrestasiUsesFirstFinalMatch(t *testing.T) {
	matches := []Match{
		match(1, id(1), id(2), 4, 2),
		match(1, id(3), id(4), 4, 2),
		match(2, id(1), id(3), 6, 1),
		match(2, id(2), id(4), 6, 1),
	}

	assert.Equal(t, PlacementGold, ResolvePlacement(matches, 1, FormatPrestasi))
	assert.Equal(t, PlacementSilver, ResolvePlacement(matches, 3, FormatPrestasi))
	// Only the first round-2 match is the final; 2 is bronze from its round-1 loss.
	assert.Equal(t, PlacementBronze, ResolvePlacement(matches, 2, FormatPrestasi))
}

func TestResolvePlacement_PrestasiSingleMatch(t *testing.T) {
	matches := []Match{match(1, id(1), id(2), 0, 2)}

	assert.Equal(t, PlacementGold, ResolvePlacement(matches, 2, FormatPrestasi))
	assert.Equal(t, PlacementSilver, ResolvePlacement(matches, 1, FormatPrestasi))
}

func TestResolvePlacement_PrestasiByeFinal(t *testing.T) {
	matches := []Match{match(1, id(1), nil, 1, 0)}

	assert.Equal(t, PlacementGold, ResolvePlacement(matches, 1, FormatPrestasi))
	assert.Equal(t, PlacementParticipant, ResolvePlacement(matches, 0, FormatPrestasi))
}

func TestResolvePlacement_PemulaGenap(t *testing.T) {
	round1 := []Match{
		match(1, id(1), id(2), 5, 1),
		match(1, id(3), id(4), 0, 0),
	}

	assert.Equal(t, PlacementGold, ResolvePlacement(round1, 1, FormatPemula))
	assert.Equal(t, PlacementSilver, ResolvePlacement(round1, 2, FormatPemula))
	assert.Equal(t, PlacementParticipant, ResolvePlacement(round1, 3, FormatPemula))
	assert.Equal(t, PlacementParticipant, ResolvePlacement(round1, 7, FormatPemula))
}

func TestResolvePlacement_PemulaGanjil(t *testing.T) {
	matches := []Match{
		match(1, id(1), id(2), 7, 3),
		match(1, id(3), id(4), 2, 6),
		match(1, id(5), id(6), 8, 1),
		match(2, id(1), id(4), 4, 9),
	}

	testCases := []struct {
		name          string
		participantID int
		want          Placement
	}{
		{name: "additional match winner", participantID: 4, want: PlacementGold},
		{name: "additional match loser", participantID: 1, want: PlacementSilver},
		{name: "last round-1 loser", participantID: 6, want: PlacementBronze},
		{name: "last round-1 winner", participantID: 5, want: PlacementParticipant},
		{name: "earlier round-1 loser", participantID: 2, want: PlacementSilver},
		{name: "earlier round-1 loser in second match", participantID: 3, want: PlacementSilver},
		{name: "not in bracket", participantID: 99, want: PlacementParticipant},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ResolvePlacement(matches, tc.participantID, FormatPemula))
		})
	}
}

func TestResolvePlacement_PemulaGanjilAdditionalNotPlayed(t *testing.T) {
	matches := []Match{
		match(1, id(1), id(2), 7, 3),
		match(1, id(3), id(4), 2, 6),
		match(2, id(1), id(4), 0, 0),
	}

	assert.Equal(t, PlacementGold, ResolvePlacement(matches, 1, FormatPemula))
	assert.Equal(t, PlacementSilver, ResolvePlacement(matches, 2, FormatPemula))
	assert.Equal(t, PlacementBronze, ResolvePlacement(matches, 3, FormatPemula))
	// Winner of the last round-1 match is excluded from the gold/silver scan.
	assert.Equal(t, PlacementParticipant, ResolvePlacement(matches, 4, FormatPemula))
}

func TestResolvePlacement_PemulaOnlyFirstAdditionalMatch(t *testing.T) {
	matches := []Match{
		match(1, id(1), id(2), 3, 1),
		match(2, id(1), id(3), 2, 1),
		match(2, id(8), id(9), 5, 1),
	}

	assert.Equal(t, PlacementGold, ResolvePlacement(matches, 1, FormatPemula))
	assert.Equal(t, PlacementSilver, ResolvePlacement(matches, 3, FormatPemula))
	assert.Equal(t, PlacementParticipant, ResolvePlacement(matches, 8, FormatPemula))
	assert.Equal(t, PlacementBronze, ResolvePlacement(matches, 2, FormatPemula))
}

func TestResolvePlacement_UndecidedMatchesNeverMedal(t *testing.T) {
	matches := []Match{
		match(1, id(1), id(2), 0, 0),
		match(1, id(3), id(4), 0, 0),
		match(2, id(1), id(3), 0, 0),
	}

	for _, format := range []Format{FormatPrestasi, FormatPemula} {
		for participantID := 1; participantID <= 4; participantID++ {
			assert.Equal(t, PlacementParticipant, ResolvePlacement(matches, participantID, format))
		}
	}
}

func TestResolvePlacement_TieFavoursParticipant2(t *testing.T) {
	// Regression: equal non-zero scores resolve to participant2. Taekwondo bouts are
	// not expected to end level, so this path is kept as-is rather than corrected.
	matches := []Match{match(1, id(1), id(2), 5, 5)}

	assert.Equal(t, PlacementGold, ResolvePlacement(matches, 2, FormatPrestasi))
	assert.Equal(t, PlacementSilver, ResolvePlacement(matches, 1, FormatPrestasi))
	assert.Equal(t, PlacementGold, ResolvePlacement(matches, 2, FormatPemula))
}

func TestResolvePlacement_Deterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(20240917))

	for i := 0; i < 500; i++ {
		matches := randomBracket(rng)
		participantID := rng.Intn(10)
		format := FormatFor(rng.Intn(2) == 0)

		snapshot := make([]Match, len(matches))
		copy(snapshot, matches)

		first := ResolvePlacement(matches, participantID, format)
		second := ResolvePlacement(matches, participantID, format)

		require.Equal(t, first, second, "iteration %d", i)
		require.Equal(t, snapshot, matches, "resolver must not mutate input")
		require.Contains(t, []Placement{PlacementGold, PlacementSilver, PlacementBronze, PlacementParticipant}, first)
	}
}

func TestResolveAll(t *testing.T) {
	matches := []Match{
		match(1, id(1), id(2), 9, 4),
		match(1, id(3), id(4), 2, 10),
		match(2, id(1), id(4), 3, 5),
	}

	placements := ResolveAll(matches, []int{1, 2, 3, 4, 5}, FormatPrestasi)

	assert.Equal(t, map[int]Placement{
		1: PlacementSilver,
		2: PlacementBronze,
		3: PlacementBronze,
		4: PlacementGold,
		5: PlacementParticipant,
	}, placements)
}

func randomBracket(rng *rand.Rand) []Match {
	n := rng.Intn(8)
	matches := make([]Match, n)
	for i := range matches {
		var p1, p2 *int
		if rng.Intn(5) > 0 {
			p1 = id(rng.Intn(10))
		}
		if rng.Intn(5) > 0 {
			p2 = id(rng.Intn(10))
		}
		matches[i] = Match{
			Round:          1 + rng.Intn(3),
			Participant1ID: p1,
			Participant2ID: p2,
			ScoreA:         rng.Intn(4),
			ScoreB:         rng.Intn(4),
		}
	}
	return matches
}
