package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Elmanda1/pemuda-berprestasi-legacy-sub004/models"
	"github.com/jmoiron/sqlx"
)

var (
	ErrParticipantNotFound = errors.New("participant not found")
	ErrParticipantConflict = errors.New("athlete is already registered in this class")
	ErrParticipantInvalid  = errors.New("participant class or athlete conflict or invalid")
)

type ParticipantRepository interface {
	Create(ctx context.Context, participant *models.Participant) error
	ListByClass(ctx context.Context, classID int) ([]*models.Participant, error)
	ListByAthlete(ctx context.Context, athleteID int) ([]*models.Participant, error)
	Count(ctx context.Context) (int, error)
}

type postgresParticipantRepository struct {
	db *sqlx.DB
}

func NewPostgresParticipantRepository(db *sqlx.DB) ParticipantRepository {
	return &postgresParticipantRepository{db: db}
}

const participantSelect = `
	SELECT p.id, p.class_id, p.athlete_id, p.status, p.created_at,
	       a.name AS athlete_name, a.dojang_id, d.name AS dojang_name
	FROM participants p
	JOIN athletes a ON a.id = p.athlete_id
	JOIN dojangs d ON d.id = a.dojang_id`

func (r *postgresParticipantRepository) Create(ctx context.Context, participant *models.Participant) error {
	query := `
		INSERT INTO participants (class_id, athlete_id, status)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	err := r.db.QueryRowxContext(ctx, query,
		participant.ClassID,
		participant.AthleteID,
		participant.Status,
	).Scan(&participant.ID, &participant.CreatedAt)
	if err != nil {
		if code, _, ok := pqViolation(err); ok {
			switch code {
			case pqUniqueViolation:
				return ErrParticipantConflict
			case pqForeignKeyViolation:
				return ErrParticipantInvalid
			}
		}
		return fmt.Errorf("failed to insert participant: %w", err)
	}
	return nil
}

func (r *postgresParticipantRepository) ListByClass(ctx context.Context, classID int) ([]*models.Participant, error) {
	query := participantSelect + `
	WHERE p.class_id = $1
	ORDER BY p.id ASC`

	participants := make([]*models.Participant, 0)
	if err := r.db.SelectContext(ctx, &participants, query, classID); err != nil {
		return nil, fmt.Errorf("failed to list participants of class %d: %w", classID, err)
	}
	return participants, nil
}

func (r *postgresParticipantRepository) ListByAthlete(ctx context.Context, athleteID int) ([]*models.Participant, error) {
	query := participantSelect + `
	WHERE p.athlete_id = $1
	ORDER BY p.class_id ASC`

	participants := make([]*models.Participant, 0)
	if err := r.db.SelectContext(ctx, &participants, query, athleteID); err != nil {
		return nil, fmt.Errorf("failed to list registrations of athlete %d: %w", athleteID, err)
	}
	return participants, nil
}

func (r *postgresParticipantRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM participants`); err != nil {
		return 0, fmt.Errorf("failed to count participants: %w", err)
	}
	return count, nil
}
