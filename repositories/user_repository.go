package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Elmanda1/pemuda-berprestasi-legacy-sub004/models"
	"github.com/jmoiron/sqlx"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserEmailConflict = errors.New("user email conflict")
	ErrUserDojangInvalid = errors.New("user dojang conflict or invalid")
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// AssignDojang sets dojang_id of a dojang-role account. Admin accounts are
	// reported as not found.
	AssignDojang(ctx context.Context, userID, dojangID int) (*models.User, error)
}

type postgresUserRepository struct {
	db *sqlx.DB
}

func NewPostgresUserRepository(db *sqlx.DB) UserRepository {
	return &postgresUserRepository{db: db}
}

func (r *postgresUserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (email, password_hash, name, role, dojang_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	err := r.db.QueryRowxContext(ctx, query,
		user.Email,
		user.PasswordHash,
		user.Name,
		user.Role,
		user.DojangID,
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		if code, constraint, ok := pqViolation(err); ok {
			switch {
			case code == pqUniqueViolation && constraint == "users_email_key":
				return ErrUserEmailConflict
			case code == pqForeignKeyViolation:
				return ErrUserDojangInvalid
			}
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

func (r *postgresUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT id, email, password_hash, name, role, dojang_id, created_at
		FROM users
		WHERE email = $1`

	var user models.User
	if err := r.db.GetContext(ctx, &user, query, email); err != nil {
		return nil, notFoundOr(err, ErrUserNotFound, "failed to get user by email")
	}
	return &user, nil
}

func (r *postgresUserRepository) AssignDojang(ctx context.Context, userID, dojangID int) (*models.User, error) {
	query := `
		UPDATE users
		SET dojang_id = $1
		WHERE id = $2 AND role = $3`

	result, err := r.db.ExecContext(ctx, query, dojangID, userID, models.RoleDojang)
	if err != nil {
		if code, _, ok := pqViolation(err); ok && code == pqForeignKeyViolation {
			return nil, ErrUserDojangInvalid
		}
		return nil, fmt.Errorf("failed to assign dojang %d to user %d: %w", dojangID, userID, err)
	}
	if err := checkAffectedRows(result, ErrUserNotFound); err != nil {
		return nil, err
	}

	var user models.User
	err = r.db.GetContext(ctx, &user, `
		SELECT id, email, password_hash, name, role, dojang_id, created_at
		FROM users
		WHERE id = $1`, userID)
	if err != nil {
		return nil, notFoundOr(err, ErrUserNotFound, "failed to get user %d", userID)
	}
	return &user, nil
}
