package repositories

import (
	"context"
	"fmt"

	"github.com/Elmanda1/pemuda-berprestasi-legacy-sub004/models"
	"github.com/jmoiron/sqlx"
)

// MatchRepository is read-only: brackets are produced and scored elsewhere.
type MatchRepository interface {
	ListByClass(ctx context.Context, classID int) ([]*models.BracketMatch, error)
	CountDecided(ctx context.Context) (int, error)
}

type postgresMatchRepository struct {
	db *sqlx.DB
}

func NewPostgresMatchRepository(db *sqlx.DB) MatchRepository {
	return &postgresMatchRepository{db: db}
}

// ListByClass returns the bracket in round, then position order. The medal
// resolver relies on this order.
func (r *postgresMatchRepository) ListByClass(ctx context.Context, classID int) ([]*models.BracketMatch, error) {
	query := `
		SELECT id, class_id, round, position, participant1_id, participant2_id, score_a, score_b
		FROM bracket_matches
		WHERE class_id = $1
		ORDER BY round ASC, position ASC, id ASC`

	matches := make([]*models.BracketMatch, 0)
	if err := r.db.SelectContext(ctx, &matches, query, classID); err != nil {
		return nil, fmt.Errorf("failed to list bracket of class %d: %w", classID, err)
	}
	return matches, nil
}

func (r *postgresMatchRepository) CountDecided(ctx context.Context) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM bracket_matches WHERE score_a > 0 OR score_b > 0`
	if err := r.db.GetContext(ctx, &count, query); err != nil {
		return 0, fmt.Errorf("failed to count decided matches: %w", err)
	}
	return count, nil
}
