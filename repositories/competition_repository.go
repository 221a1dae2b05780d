package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Elmanda1/pemuda-berprestasi-legacy-sub004/models"
	"github.com/jmoiron/sqlx"
)

var ErrCompetitionNotFound = errors.New("competition not found")

type CompetitionRepository interface {
	Create(ctx context.Context, competition *models.Competition) error
	GetByID(ctx context.Context, id int) (*models.Competition, error)
	List(ctx context.Context, status *models.CompetitionStatus) ([]*models.Competition, error)
	Count(ctx context.Context, status *models.CompetitionStatus) (int, error)
}

type postgresCompetitionRepository struct {
	db *sqlx.DB
}

func NewPostgresCompetitionRepository(db *sqlx.DB) CompetitionRepository {
	return &postgresCompetitionRepository{db: db}
}

func (r *postgresCompetitionRepository) Create(ctx context.Context, competition *models.Competition) error {
	query := `
		INSERT INTO competitions (name, location, start_date, end_date, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	err := r.db.QueryRowxContext(ctx, query,
		competition.Name,
		competition.Location,
		competition.StartDate,
		competition.EndDate,
		competition.Status,
	).Scan(&competition.ID, &competition.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert competition: %w", err)
	}
	return nil
}

func (r *postgresCompetitionRepository) GetByID(ctx context.Context, id int) (*models.Competition, error) {
	query := `
		SELECT id, name, location, start_date, end_date, status, created_at
		FROM competitions
		WHERE id = $1`

	var competition models.Competition
	if err := r.db.GetContext(ctx, &competition, query, id); err != nil {
		return nil, notFoundOr(err, ErrCompetitionNotFound, "failed to get competition %d", id)
	}
	return &competition, nil
}

func (r *postgresCompetitionRepository) List(ctx context.Context, status *models.CompetitionStatus) ([]*models.Competition, error) {
	query := `
		SELECT id, name, location, start_date, end_date, status, created_at
		FROM competitions`
	args := []interface{}{}

	if status != nil {
		query += " WHERE status = $1"
		args = append(args, *status)
	}
	query += " ORDER BY start_date DESC, id DESC"

	competitions := make([]*models.Competition, 0)
	if err := r.db.SelectContext(ctx, &competitions, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list competitions: %w", err)
	}
	return competitions, nil
}

func (r *postgresCompetitionRepository) Count(ctx context.Context, status *models.CompetitionStatus) (int, error) {
	query := `SELECT COUNT(*) FROM competitions`
	args := []interface{}{}

	if status != nil {
		query += " WHERE status = $1"
		args = append(args, *status)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("failed to count competitions: %w", err)
	}
	return count, nil
}
