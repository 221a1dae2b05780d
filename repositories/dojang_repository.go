package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Elmanda1/pemuda-berprestasi-legacy-sub004/models"
	"github.com/jmoiron/sqlx"
)

var (
	ErrDojangNotFound     = errors.New("dojang not found")
	ErrDojangNameConflict = errors.New("dojang name conflict")
)

type DojangRepository interface {
	Create(ctx context.Context, dojang *models.Dojang) error
	GetByID(ctx context.Context, id int) (*models.Dojang, error)
	List(ctx context.Context) ([]*models.Dojang, error)
	Update(ctx context.Context, dojang *models.Dojang) error
	UpdateLogoKey(ctx context.Context, id int, logoKey *string) error
	Count(ctx context.Context) (int, error)
}

type postgresDojangRepository struct {
	db *sqlx.DB
}

func NewPostgresDojangRepository(db *sqlx.DB) DojangRepository {
	return &postgresDojangRepository{db: db}
}

func (r *postgresDojangRepository) Create(ctx context.Context, dojang *models.Dojang) error {
	query := `
		INSERT INTO dojangs (name, province, city, coach_name)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	err := r.db.QueryRowxContext(ctx, query,
		dojang.Name,
		dojang.Province,
		dojang.City,
		dojang.CoachName,
	).Scan(&dojang.ID, &dojang.CreatedAt)
	return r.handleDojangError(err)
}

func (r *postgresDojangRepository) GetByID(ctx context.Context, id int) (*models.Dojang, error) {
	query := `
		SELECT id, name, province, city, coach_name, logo_key, created_at
		FROM dojangs
		WHERE id = $1`

	var dojang models.Dojang
	if err := r.db.GetContext(ctx, &dojang, query, id); err != nil {
		return nil, notFoundOr(err, ErrDojangNotFound, "failed to get dojang %d", id)
	}
	return &dojang, nil
}

func (r *postgresDojangRepository) List(ctx context.Context) ([]*models.Dojang, error) {
	query := `
		SELECT id, name, province, city, coach_name, logo_key, created_at
		FROM dojangs
		ORDER BY name ASC`

	dojangs := make([]*models.Dojang, 0)
	if err := r.db.SelectContext(ctx, &dojangs, query); err != nil {
		return nil, fmt.Errorf("failed to list dojangs: %w", err)
	}
	return dojangs, nil
}

func (r *postgresDojangRepository) Update(ctx context.Context, dojang *models.Dojang) error {
	query := `
		UPDATE dojangs
		SET name = $1, province = $2, city = $3, coach_name = $4
		WHERE id = $5`

	result, err := r.db.ExecContext(ctx, query, dojang.Name, dojang.Province, dojang.City, dojang.CoachName, dojang.ID)
	if err != nil {
		return r.handleDojangError(err)
	}
	return checkAffectedRows(result, ErrDojangNotFound)
}

func (r *postgresDojangRepository) UpdateLogoKey(ctx context.Context, id int, logoKey *string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE dojangs SET logo_key = $1 WHERE id = $2`, logoKey, id)
	if err != nil {
		return fmt.Errorf("failed to update logo of dojang %d: %w", id, err)
	}
	return checkAffectedRows(result, ErrDojangNotFound)
}

func (r *postgresDojangRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM dojangs`); err != nil {
		return 0, fmt.Errorf("failed to count dojangs: %w", err)
	}
	return count, nil
}

func (r *postgresDojangRepository) handleDojangError(err error) error {
	if err == nil {
		return nil
	}
	if code, constraint, ok := pqViolation(err); ok && code == pqUniqueViolation && constraint == "dojangs_name_key" {
		return ErrDojangNameConflict
	}
	return err
}
