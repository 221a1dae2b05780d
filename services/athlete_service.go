package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Elmanda1/pemuda-berprestasi-legacy-sub004/models"
	"github.com/Elmanda1/pemuda-berprestasi-legacy-sub004/repositories"
)

type CreateAthleteInput struct {
	Name      string        `json:"name"`
	Gender    models.Gender `json:"gender"`
	BirthDate time.Time     `json:"birth_date"`
	WeightKg  *float64      `json:"weight_kg"`
	Belt      *string       `json:"belt"`
}

type AthleteService interface {
	CreateAthlete(ctx context.Context, dojangID int, input CreateAthleteInput) (*models.Athlete, error)
	GetAthlete(ctx context.Context, id int) (*models.Athlete, error)
	ListDojangAthletes(ctx context.Context, dojangID int) ([]*models.Athlete, error)
	// RegisterToClass enters an athlete into a championship class. The athlete's
	// gender must match the class gender.
	RegisterToClass(ctx context.Context, classID, athleteID int) (*models.Participant, error)
}

type athleteService struct {
	athleteRepo     repositories.AthleteRepository
	dojangRepo      repositories.DojangRepository
	classRepo       repositories.ClassRepository
	participantRepo repositories.ParticipantRepository
}

func NewAthleteService(
	athleteRepo repositories.AthleteRepository,
	dojangRepo repositories.DojangRepository,
	classRepo repositories.ClassRepository,
	participantRepo repositories.ParticipantRepository,
) AthleteService {
	return &athleteService{
		athleteRepo:     athleteRepo,
		dojangRepo:      dojangRepo,
		classRepo:       classRepo,
		participantRepo: participantRepo,
	}
}

func (s *athleteService) CreateAthlete(ctx context.Context, dojangID int, input CreateAthleteInput) (*models.Athlete, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: athlete name is required", ErrValidationFailed)
	}
	if !input.Gender.Valid() {
		return nil, fmt.Errorf("%w: unknown gender %q", ErrValidationFailed, input.Gender)
	}
	if input.BirthDate.IsZero() {
		return nil, fmt.Errorf("%w: birth date is required", ErrValidationFailed)
	}
	if input.WeightKg != nil && *input.WeightKg <= 0 {
		return nil, fmt.Errorf("%w: weight must be positive", ErrValidationFailed)
	}

	if _, err := s.dojangRepo.GetByID(ctx, dojangID); err != nil {
		return nil, handleRepositoryError(err)
	}

	athlete := &models.Athlete{
		DojangID:  dojangID,
		Name:      name,
		Gender:    input.Gender,
		BirthDate: input.BirthDate,
		WeightKg:  input.WeightKg,
		Belt:      input.Belt,
	}
	if err := s.athleteRepo.Create(ctx, athlete); err != nil {
		return nil, handleRepositoryError(err)
	}
	return athlete, nil
}

func (s *athleteService) GetAthlete(ctx context.Context, id int) (*models.Athlete, error) {
	athlete, err := s.athleteRepo.GetByID(ctx, id)
	if err != nil {
		return nil, handleRepositoryError(err)
	}
	return athlete, nil
}

func (s *athleteService) ListDojangAthletes(ctx context.Context, dojangID int) ([]*models.Athlete, error) {
	if _, err := s.dojangRepo.GetByID(ctx, dojangID); err != nil {
		return nil, handleRepositoryError(err)
	}
	athletes, err := s.athleteRepo.ListByDojang(ctx, dojangID)
	if err != nil {
		return nil, handleRepositoryError(err)
	}
	return athletes, nil
}

func (s *athleteService) RegisterToClass(ctx context.Context, classID, athleteID int) (*models.Participant, error) {
	class, err := s.classRepo.GetByID(ctx, classID)
	if err != nil {
		return nil, handleRepositoryError(err)
	}
	athlete, err := s.athleteRepo.GetByID(ctx, athleteID)
	if err != nil {
		return nil, handleRepositoryError(err)
	}
	if athlete.Gender != class.Gender {
		return nil, ErrGenderMismatch
	}

	participant := &models.Participant{
		ClassID:   classID,
		AthleteID: athleteID,
		Status:    models.ParticipantRegistered,
	}
	if err := s.participantRepo.Create(ctx, participant); err != nil {
		return nil, handleRepositoryError(err)
	}
	participant.AthleteName = athlete.Name
	participant.DojangID = athlete.DojangID
	return participant, nil
}
