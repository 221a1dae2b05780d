package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/Elmanda1/pemuda-berprestasi-legacy-sub004/brackets"
	"github.com/Elmanda1/pemuda-berprestasi-legacy-sub004/models"
	"github.com/Elmanda1/pemuda-berprestasi-legacy-sub004/repositories"
	"golang.org/x/sync/errgroup"
)

type MedalService interface {
	// ClassPlacements resolves the placement of every participant of a class.
	ClassPlacements(ctx context.Context, classID int) ([]models.ParticipantPlacement, error)
	// CompetitionTally aggregates medals per dojang over every class of a competition.
	CompetitionTally(ctx context.Context, competitionID int) (*models.MedalTally, error)
	// CompetitionTallies builds several tallies concurrently. A competition that
	// fails is logged and left out; the rest keep the order of competitionIDs.
	CompetitionTallies(ctx context.Context, competitionIDs []int) []*models.MedalTally
}

type medalService struct {
	competitionRepo repositories.CompetitionRepository
	classRepo       repositories.ClassRepository
	participantRepo repositories.ParticipantRepository
	matchRepo       repositories.MatchRepository
	concurrency     int
	logger          *slog.Logger
}

func NewMedalService(
	competitionRepo repositories.CompetitionRepository,
	classRepo repositories.ClassRepository,
	participantRepo repositories.ParticipantRepository,
	matchRepo repositories.MatchRepository,
	concurrency int,
	logger *slog.Logger,
) MedalService {
	if concurrency <= 0 {
		concurrency = 1
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &medalService{
		competitionRepo: competitionRepo,
		classRepo:       classRepo,
		participantRepo: participantRepo,
		matchRepo:       matchRepo,
		concurrency:     concurrency,
		logger:          logger,
	}
}

func (s *medalService) ClassPlacements(ctx context.Context, classID int) ([]models.ParticipantPlacement, error) {
	class, err := s.classRepo.GetByID(ctx, classID)
	if err != nil {
		return nil, handleRepositoryError(err)
	}
	return s.placementsForClass(ctx, class)
}

func (s *medalService) placementsForClass(ctx context.Context, class *models.ChampionshipClass) ([]models.ParticipantPlacement, error) {
	participants, err := s.participantRepo.ListByClass(ctx, class.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load participants of class %d: %w", class.ID, err)
	}
	matches, err := s.matchRepo.ListByClass(ctx, class.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load bracket of class %d: %w", class.ID, err)
	}

	bracket := models.ToBracketMatches(matches)
	format := brackets.FormatFor(class.IsPemula())
	label := class.FormatLabel()

	placements := make([]models.ParticipantPlacement, 0, len(participants))
	for _, p := range participants {
		if p == nil {
			continue
		}
		placement := brackets.ResolvePlacement(bracket, p.ID, format)
		placements = append(placements, models.ParticipantPlacement{
			ParticipantID: p.ID,
			AthleteID:     p.AthleteID,
			AthleteName:   p.AthleteName,
			DojangID:      p.DojangID,
			DojangName:    p.DojangName,
			ClassID:       class.ID,
			ClassLabel:    label,
			Placement:     placement,
			PlacementText: placement.DisplayText(),
		})
	}
	return placements, nil
}

func (s *medalService) CompetitionTally(ctx context.Context, competitionID int) (*models.MedalTally, error) {
	competition, err := s.competitionRepo.GetByID(ctx, competitionID)
	if err != nil {
		return nil, handleRepositoryError(err)
	}
	classes, err := s.classRepo.ListByCompetition(ctx, competitionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load classes of competition %d: %w", competitionID, err)
	}

	var all []models.ParticipantPlacement
	for _, class := range classes {
		placements, err := s.placementsForClass(ctx, class)
		if err != nil {
			return nil, err
		}
		all = append(all, placements...)
	}

	return buildMedalTally(competition, all), nil
}

func (s *medalService) CompetitionTallies(ctx context.Context, competitionIDs []int) []*models.MedalTally {
	results := make([]*models.MedalTally, len(competitionIDs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i, id := range competitionIDs {
		g.Go(func() error {
			tally, err := s.CompetitionTally(gctx, id)
			if err != nil {
				s.logger.WarnContext(gctx, "Skipping competition in medal tally",
					slog.Int("competition_id", id), slog.Any("error", err))
				return nil
			}
			results[i] = tally
			return nil
		})
	}
	// Failures are skipped above, so Wait never reports an error.
	g.Wait()

	tallies := make([]*models.MedalTally, 0, len(results))
	for _, t := range results {
		if t != nil {
			tallies = append(tallies, t)
		}
	}
	return tallies
}

// buildMedalTally counts medals per dojang and ranks dojangs by gold, then
// silver, then bronze (all descending), then by name. Dojangs with equal
// counts share a rank. Dojangs without a medal are left out.
func buildMedalTally(competition *models.Competition, placements []models.ParticipantPlacement) *models.MedalTally {
	counts := make(map[int]*models.DojangMedalCount)
	medalists := make([]models.ParticipantPlacement, 0)

	for _, p := range placements {
		if !p.Placement.IsMedal() {
			continue
		}
		medalists = append(medalists, p)

		c, ok := counts[p.DojangID]
		if !ok {
			c = &models.DojangMedalCount{DojangID: p.DojangID, DojangName: p.DojangName}
			counts[p.DojangID] = c
		}
		c.Add(p.Placement)
	}

	dojangs := make([]models.DojangMedalCount, 0, len(counts))
	for _, c := range counts {
		dojangs = append(dojangs, *c)
	}
	sort.Slice(dojangs, func(i, j int) bool {
		a, b := dojangs[i], dojangs[j]
		if a.Gold != b.Gold {
			return a.Gold > b.Gold
		}
		if a.Silver != b.Silver {
			return a.Silver > b.Silver
		}
		if a.Bronze != b.Bronze {
			return a.Bronze > b.Bronze
		}
		if a.DojangName != b.DojangName {
			return a.DojangName < b.DojangName
		}
		return a.DojangID < b.DojangID
	})
	for i := range dojangs {
		if i > 0 && sameMedals(dojangs[i], dojangs[i-1]) {
			dojangs[i].Rank = dojangs[i-1].Rank
		} else {
			dojangs[i].Rank = i + 1
		}
	}

	sort.SliceStable(medalists, func(i, j int) bool {
		a, b := medalists[i], medalists[j]
		if a.ClassID != b.ClassID {
			return a.ClassID < b.ClassID
		}
		return a.Placement.Order() < b.Placement.Order()
	})

	return &models.MedalTally{
		CompetitionID:   competition.ID,
		CompetitionName: competition.Name,
		Dojangs:         dojangs,
		Medalists:       medalists,
	}
}

func sameMedals(a, b models.DojangMedalCount) bool {
	return a.Gold == b.Gold && a.Silver == b.Silver && a.Bronze == b.Bronze
}
