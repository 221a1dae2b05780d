package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Elmanda1/pemuda-berprestasi-legacy-sub004/models"
	"github.com/jmoiron/sqlx"
)

var (
	ErrAthleteNotFound      = errors.New("athlete not found")
	ErrAthleteDojangInvalid = errors.New("athlete dojang conflict or invalid")
)

type AthleteRepository interface {
	Create(ctx context.Context, athlete *models.Athlete) error
	GetByID(ctx context.Context, id int) (*models.Athlete, error)
	ListByDojang(ctx context.Context, dojangID int) ([]*models.Athlete, error)
	Count(ctx context.Context) (int, error)
}

type postgresAthleteRepository struct {
	db *sqlx.DB
}

func NewPostgresAthleteRepository(db *sqlx.DB) AthleteRepository {
	return &postgresAthleteRepository{db: db}
}

func (r *postgresAthleteRepository) Create(ctx context.Context, athlete *models.Athlete) error {
	query := `
		INSERT INTO athletes (dojang_id, name, gender, birth_date, weight_kg, belt)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`

	err := r.db.QueryRowxContext(ctx, query,
		athlete.DojangID,
		athlete.Name,
		athlete.Gender,
		athlete.BirthDate,
		athlete.WeightKg,
		athlete.Belt,
	).Scan(&athlete.ID, &athlete.CreatedAt)
	if err != nil {
		if code, _, ok := pqViolation(err); ok && code == pqForeignKeyViolation {
			return ErrAthleteDojangInvalid
		}
		return fmt.Errorf("failed to insert athlete: %w", err)
	}
	return nil
}

func (r *postgresAthleteRepository) GetByID(ctx context.Context, id int) (*models.Athlete, error) {
	query := `
		SELECT id, dojang_id, name, gender, birth_date, weight_kg, belt, created_at
		FROM athletes
		WHERE id = $1`

	var athlete models.Athlete
	if err := r.db.GetContext(ctx, &athlete, query, id); err != nil {
		return nil, notFoundOr(err, ErrAthleteNotFound, "failed to get athlete %d", id)
	}
	return &athlete, nil
}

func (r *postgresAthleteRepository) ListByDojang(ctx context.Context, dojangID int) ([]*models.Athlete, error) {
	query := `
		SELECT id, dojang_id, name, gender, birth_date, weight_kg, belt, created_at
		FROM athletes
		WHERE dojang_id = $1
		ORDER BY name ASC, id ASC`

	athletes := make([]*models.Athlete, 0)
	if err := r.db.SelectContext(ctx, &athletes, query, dojangID); err != nil {
		return nil, fmt.Errorf("failed to list athletes of dojang %d: %w", dojangID, err)
	}
	return athletes, nil
}

func (r *postgresAthleteRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM athletes`); err != nil {
		return 0, fmt.Errorf("failed to count athletes: %w", err)
	}
	return count, nil
}
