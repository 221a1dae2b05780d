package services

import (
	"context"

	"github.com/Elmanda1/pemuda-berprestasi-legacy-sub004/models"
	"github.com/Elmanda1/pemuda-berprestasi-legacy-sub004/repositories"
	"golang.org/x/sync/errgroup"
)

type DashboardService interface {
	GetStats(ctx context.Context) (models.DashboardStats, error)
}

type dashboardService struct {
	dojangRepo      repositories.DojangRepository
	athleteRepo     repositories.AthleteRepository
	competitionRepo repositories.CompetitionRepository
	participantRepo repositories.ParticipantRepository
	matchRepo       repositories.MatchRepository
}

func NewDashboardService(
	dojangRepo repositories.DojangRepository,
	athleteRepo repositories.AthleteRepository,
	competitionRepo repositories.CompetitionRepository,
	participantRepo repositories.ParticipantRepository,
	matchRepo repositories.MatchRepository,
) DashboardService {
	return &dashboardService{
		dojangRepo:      dojangRepo,
		athleteRepo:     athleteRepo,
		competitionRepo: competitionRepo,
		participantRepo: participantRepo,
		matchRepo:       matchRepo,
	}
}

func (s *dashboardService) GetStats(ctx context.Context) (models.DashboardStats, error) {
	var stats models.DashboardStats
	ongoing := models.CompetitionOngoing

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		stats.DojangsTotal, err = s.dojangRepo.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.AthletesTotal, err = s.athleteRepo.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.CompetitionsTotal, err = s.competitionRepo.Count(gctx, nil)
		return err
	})
	g.Go(func() (err error) {
		stats.OngoingCompetitions, err = s.competitionRepo.Count(gctx, &ongoing)
		return err
	})
	g.Go(func() (err error) {
		stats.RegistrationsTotal, err = s.participantRepo.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.DecidedMatches, err = s.matchRepo.CountDecided(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return models.DashboardStats{}, err
	}
	return stats, nil
}
