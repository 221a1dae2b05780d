package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Elmanda1/pemuda-berprestasi-legacy-sub004/models"
	"github.com/jmoiron/sqlx"
)

var (
	ErrClassNotFound           = errors.New("championship class not found")
	ErrClassCompetitionInvalid = errors.New("championship class competition conflict or invalid")
)

type ClassRepository interface {
	Create(ctx context.Context, class *models.ChampionshipClass) error
	GetByID(ctx context.Context, id int) (*models.ChampionshipClass, error)
	ListByCompetition(ctx context.Context, competitionID int) ([]*models.ChampionshipClass, error)
}

type postgresClassRepository struct {
	db *sqlx.DB
}

func NewPostgresClassRepository(db *sqlx.DB) ClassRepository {
	return &postgresClassRepository{db: db}
}

func (r *postgresClassRepository) Create(ctx context.Context, class *models.ChampionshipClass) error {
	query := `
		INSERT INTO championship_classes
			(competition_id, category, level, age_group, gender, weight_class, poomsae_class)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	err := r.db.QueryRowxContext(ctx, query,
		class.CompetitionID,
		class.Category,
		class.Level,
		class.AgeGroup,
		class.Gender,
		class.WeightClass,
		class.PoomsaeClass,
	).Scan(&class.ID)
	if err != nil {
		if code, _, ok := pqViolation(err); ok && code == pqForeignKeyViolation {
			return ErrClassCompetitionInvalid
		}
		return fmt.Errorf("failed to insert championship class: %w", err)
	}
	return nil
}

func (r *postgresClassRepository) GetByID(ctx context.Context, id int) (*models.ChampionshipClass, error) {
	query := `
		SELECT id, competition_id, category, level, age_group, gender, weight_class, poomsae_class
		FROM championship_classes
		WHERE id = $1`

	var class models.ChampionshipClass
	if err := r.db.GetContext(ctx, &class, query, id); err != nil {
		return nil, notFoundOr(err, ErrClassNotFound, "failed to get championship class %d", id)
	}
	return &class, nil
}

func (r *postgresClassRepository) ListByCompetition(ctx context.Context, competitionID int) ([]*models.ChampionshipClass, error) {
	query := `
		SELECT id, competition_id, category, level, age_group, gender, weight_class, poomsae_class
		FROM championship_classes
		WHERE competition_id = $1
		ORDER BY id ASC`

	classes := make([]*models.ChampionshipClass, 0)
	if err := r.db.SelectContext(ctx, &classes, query, competitionID); err != nil {
		return nil, fmt.Errorf("failed to list classes for competition %d: %w", competitionID, err)
	}
	return classes, nil
}
