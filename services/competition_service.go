package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Elmanda1/pemuda-berprestasi-legacy-sub004/models"
	"github.com/Elmanda1/pemuda-berprestasi-legacy-sub004/repositories"
)

type CreateCompetitionInput struct {
	Name      string                   `json:"name"`
	Location  *string                  `json:"location"`
	StartDate time.Time                `json:"start_date"`
	EndDate   time.Time                `json:"end_date"`
	Status    models.CompetitionStatus `json:"status"`
}

type CreateClassInput struct {
	Category     models.ClassCategory `json:"category"`
	Level        models.ClassLevel    `json:"level"`
	AgeGroup     string               `json:"age_group"`
	Gender       models.Gender        `json:"gender"`
	WeightClass  *string              `json:"weight_class"`
	PoomsaeClass *string              `json:"poomsae_class"`
}

type CompetitionService interface {
	CreateCompetition(ctx context.Context, input CreateCompetitionInput) (*models.Competition, error)
	GetCompetition(ctx context.Context, id int) (*models.Competition, error)
	ListCompetitions(ctx context.Context, status *models.CompetitionStatus) ([]*models.Competition, error)
	CreateClass(ctx context.Context, competitionID int, input CreateClassInput) (*models.ChampionshipClass, error)
	ListClasses(ctx context.Context, competitionID int) ([]*models.ChampionshipClass, error)
	GetClassBracket(ctx context.Context, classID int) ([]*models.BracketMatch, error)
}

type competitionService struct {
	competitionRepo repositories.CompetitionRepository
	classRepo       repositories.ClassRepository
	matchRepo       repositories.MatchRepository
}

func NewCompetitionService(
	competitionRepo repositories.CompetitionRepository,
	classRepo repositories.ClassRepository,
	matchRepo repositories.MatchRepository,
) CompetitionService {
	return &competitionService{
		competitionRepo: competitionRepo,
		classRepo:       classRepo,
		matchRepo:       matchRepo,
	}
}

func (s *competitionService) CreateCompetition(ctx context.Context, input CreateCompetitionInput) (*models.Competition, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: competition name is required", ErrValidationFailed)
	}
	if input.StartDate.IsZero() || input.EndDate.IsZero() {
		return nil, fmt.Errorf("%w: start and end dates are required", ErrValidationFailed)
	}
	if input.EndDate.Before(input.StartDate) {
		return nil, fmt.Errorf("%w: start %s, end %s", ErrInvalidDateRange,
			input.StartDate.Format(time.DateOnly), input.EndDate.Format(time.DateOnly))
	}

	status := input.Status
	if status == "" {
		status = models.CompetitionUpcoming
	}
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	competition := &models.Competition{
		Name:      name,
		Location:  input.Location,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Status:    status,
	}
	if err := s.competitionRepo.Create(ctx, competition); err != nil {
		return nil, handleRepositoryError(err)
	}
	return competition, nil
}

// GetCompetition returns the competition with its classes, labels filled in.
func (s *competitionService) GetCompetition(ctx context.Context, id int) (*models.Competition, error) {
	competition, err := s.competitionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, handleRepositoryError(err)
	}
	classes, err := s.ListClasses(ctx, id)
	if err != nil {
		return nil, err
	}
	competition.Classes = make([]models.ChampionshipClass, 0, len(classes))
	for _, c := range classes {
		competition.Classes = append(competition.Classes, *c)
	}
	return competition, nil
}

func (s *competitionService) ListCompetitions(ctx context.Context, status *models.CompetitionStatus) ([]*models.Competition, error) {
	if status != nil && !status.Valid() {
		return nil, ErrInvalidStatus
	}
	competitions, err := s.competitionRepo.List(ctx, status)
	if err != nil {
		return nil, handleRepositoryError(err)
	}
	return competitions, nil
}

func (s *competitionService) CreateClass(ctx context.Context, competitionID int, input CreateClassInput) (*models.ChampionshipClass, error) {
	if err := validateClassInput(input); err != nil {
		return nil, err
	}
	if _, err := s.competitionRepo.GetByID(ctx, competitionID); err != nil {
		return nil, handleRepositoryError(err)
	}

	class := &models.ChampionshipClass{
		CompetitionID: competitionID,
		Category:      input.Category,
		Level:         input.Level,
		AgeGroup:      strings.TrimSpace(input.AgeGroup),
		Gender:        input.Gender,
		WeightClass:   input.WeightClass,
		PoomsaeClass:  input.PoomsaeClass,
	}
	if err := s.classRepo.Create(ctx, class); err != nil {
		return nil, handleRepositoryError(err)
	}
	class.Label = class.FormatLabel()
	return class, nil
}

func (s *competitionService) ListClasses(ctx context.Context, competitionID int) ([]*models.ChampionshipClass, error) {
	if _, err := s.competitionRepo.GetByID(ctx, competitionID); err != nil {
		return nil, handleRepositoryError(err)
	}
	classes, err := s.classRepo.ListByCompetition(ctx, competitionID)
	if err != nil {
		return nil, handleRepositoryError(err)
	}
	for _, c := range classes {
		c.Label = c.FormatLabel()
	}
	return classes, nil
}

func (s *competitionService) GetClassBracket(ctx context.Context, classID int) ([]*models.BracketMatch, error) {
	if _, err := s.classRepo.GetByID(ctx, classID); err != nil {
		return nil, handleRepositoryError(err)
	}
	matches, err := s.matchRepo.ListByClass(ctx, classID)
	if err != nil {
		return nil, handleRepositoryError(err)
	}
	return matches, nil
}

func validateClassInput(input CreateClassInput) error {
	switch input.Category {
	case models.CategoryKyorugi:
		if strings.TrimSpace(derefString(input.WeightClass)) == "" {
			return fmt.Errorf("%w: kyorugi class needs a weight class", ErrInvalidClass)
		}
	case models.CategoryPoomsae:
		if strings.TrimSpace(derefString(input.PoomsaeClass)) == "" {
			return fmt.Errorf("%w: poomsae class needs a poomsae class", ErrInvalidClass)
		}
	default:
		return fmt.Errorf("%w: unknown category %q", ErrInvalidClass, input.Category)
	}
	if input.Level != models.LevelPrestasi && input.Level != models.LevelPemula {
		return fmt.Errorf("%w: unknown level %q", ErrInvalidClass, input.Level)
	}
	if !input.Gender.Valid() {
		return fmt.Errorf("%w: unknown gender %q", ErrInvalidClass, input.Gender)
	}
	if strings.TrimSpace(input.AgeGroup) == "" {
		return fmt.Errorf("%w: age group is required", ErrInvalidClass)
	}
	return nil
}
