// Package scheduler periodically recomputes the medal tallies of ongoing
// competitions and pushes them to the WebSocket rooms of those competitions.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/Elmanda1/pemuda-berprestasi-legacy-sub004/brackets"
	"github.com/Elmanda1/pemuda-berprestasi-legacy-sub004/models"
	"github.com/robfig/cron/v3"
)

const runTimeout = 30 * time.Second

type CompetitionLister interface {
	ListCompetitions(ctx context.Context, status *models.CompetitionStatus) ([]*models.Competition, error)
}

type TallyBuilder interface {
	CompetitionTallies(ctx context.Context, competitionIDs []int) []*models.MedalTally
}

type Broadcaster interface {
	BroadcastToRoom(roomID string, message interface{})
}

type TallyScheduler struct {
	cron         *cron.Cron
	competitions CompetitionLister
	tallies      TallyBuilder
	broadcaster  Broadcaster
	logger       *slog.Logger

	mu      sync.Mutex
	started bool
}

func NewTallyScheduler(competitions CompetitionLister, tallies TallyBuilder, broadcaster Broadcaster, logger *slog.Logger) *TallyScheduler {
	if logger == nil {
		logger = slog.Default()
	}
	cronLogger := cron.VerbosePrintfLogger(slog.NewLogLogger(logger.Handler(), slog.LevelDebug))

	return &TallyScheduler{
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithLogger(cronLogger),
			cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
		),
		competitions: competitions,
		tallies:      tallies,
		broadcaster:  broadcaster,
		logger:       logger,
	}
}

// Start schedules the refresh job with a six-field cron spec (seconds first)
// and starts the cron loop.
func (s *TallyScheduler) Start(spec string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return fmt.Errorf("tally scheduler already started")
	}

	if _, err := s.cron.AddFunc(spec, s.refresh); err != nil {
		return fmt.Errorf("invalid tally refresh spec %q: %w", spec, err)
	}
	s.cron.Start()
	s.started = true
	s.logger.Info("Tally scheduler started", slog.String("spec", spec))
	return nil
}

// Stop waits for a running refresh to finish.
func (s *TallyScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.started {
		return
	}
	<-s.cron.Stop().Done()
	s.started = false
	s.logger.Info("Tally scheduler stopped")
}

// RunNow refreshes every ongoing competition immediately and returns the
// number of tallies broadcast.
func (s *TallyScheduler) RunNow(ctx context.Context) int {
	status := models.CompetitionOngoing
	competitions, err := s.competitions.ListCompetitions(ctx, &status)
	if err != nil {
		s.logger.ErrorContext(ctx, "Tally refresh: failed to list ongoing competitions", slog.Any("error", err))
		return 0
	}
	if len(competitions) == 0 {
		s.logger.DebugContext(ctx, "Tally refresh: no ongoing competitions")
		return 0
	}

	ids := make([]int, 0, len(competitions))
	for _, c := range competitions {
		ids = append(ids, c.ID)
	}

	tallies := s.tallies.CompetitionTallies(ctx, ids)
	for _, tally := range tallies {
		room := brackets.CompetitionRoom(tally.CompetitionID)
		s.broadcaster.BroadcastToRoom(room, brackets.WebSocketMessage{
			Type:    brackets.MessageMedalTallyUpdated,
			Payload: tally,
			RoomID:  room,
		})
	}

	s.logger.InfoContext(ctx, "Tally refresh completed",
		slog.Int("competitions", len(ids)),
		slog.Int("broadcast", len(tallies)))
	return len(tallies)
}

func (s *TallyScheduler) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()
	s.RunNow(ctx)
}
