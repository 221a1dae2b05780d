package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"io"
	"log/slog"

	"github.com/Elmanda1/pemuda-berprestasi-legacy-sub004/brackets"
	"github.com/Elmanda1/pemuda-berprestasi-legacy-sub004/models"
	"github.com/Elmanda1/pemuda-berprestasi-legacy-sub004/repositories"
	"github.com/Elmanda1/pemuda-berprestasi-legacy-sub004/storage"
	"github.com/google/uuid"
)

const certificateContentType = "text/html; charset=utf-8"

var certificateTemplate = template.Must(template.New("certificate").Parse(`<!DOCTYPE html>
<html lang="id">
<head>
<meta charset="utf-8">
<title>Certificate - {{.AthleteName}}</title>
<style>
body { font-family: Georgia, serif; text-align: center; padding: 48px; }
h1 { font-size: 40px; letter-spacing: 4px; }
.name { font-size: 32px; font-weight: bold; margin: 24px 0; }
.placement { font-size: 28px; color: #a0522d; }
</style>
</head>
<body>
<h1>CERTIFICATE</h1>
<p>This certificate is awarded to</p>
<p class="name">{{.AthleteName}}</p>
<p>{{.DojangName}}</p>
<p class="placement">{{.PlacementText}}</p>
<p>{{.ClassLabel}}</p>
<p>{{.CompetitionName}}</p>
</body>
</html>
`))

type CertificateService interface {
	AthleteCertificates(ctx context.Context, athleteID int) ([]models.Certificate, error)
	AthleteCertificate(ctx context.Context, athleteID, classID int) (*models.Certificate, error)
	Render(w io.Writer, cert *models.Certificate) error
	// Publish renders cert and uploads it, returning the public URL.
	Publish(ctx context.Context, cert *models.Certificate) (string, error)
}

type certificateService struct {
	athleteRepo     repositories.AthleteRepository
	participantRepo repositories.ParticipantRepository
	classRepo       repositories.ClassRepository
	competitionRepo repositories.CompetitionRepository
	matchRepo       repositories.MatchRepository
	uploader        storage.FileUploader
	logger          *slog.Logger
}

func NewCertificateService(
	athleteRepo repositories.AthleteRepository,
	participantRepo repositories.ParticipantRepository,
	classRepo repositories.ClassRepository,
	competitionRepo repositories.CompetitionRepository,
	matchRepo repositories.MatchRepository,
	uploader storage.FileUploader,
	logger *slog.Logger,
) CertificateService {
	if logger == nil {
		logger = slog.Default()
	}
	return &certificateService{
		athleteRepo:     athleteRepo,
		participantRepo: participantRepo,
		classRepo:       classRepo,
		competitionRepo: competitionRepo,
		matchRepo:       matchRepo,
		uploader:        uploader,
		logger:          logger,
	}
}

func (s *certificateService) AthleteCertificates(ctx context.Context, athleteID int) ([]models.Certificate, error) {
	athlete, err := s.athleteRepo.GetByID(ctx, athleteID)
	if err != nil {
		return nil, handleRepositoryError(err)
	}
	registrations, err := s.participantRepo.ListByAthlete(ctx, athleteID)
	if err != nil {
		return nil, fmt.Errorf("failed to load registrations of athlete %d: %w", athleteID, err)
	}

	competitions := make(map[int]*models.Competition)
	certificates := make([]models.Certificate, 0, len(registrations))
	for _, reg := range registrations {
		cert, err := s.buildCertificate(ctx, athlete, reg, competitions)
		if err != nil {
			return nil, err
		}
		certificates = append(certificates, *cert)
	}
	return certificates, nil
}

func (s *certificateService) AthleteCertificate(ctx context.Context, athleteID, classID int) (*models.Certificate, error) {
	athlete, err := s.athleteRepo.GetByID(ctx, athleteID)
	if err != nil {
		return nil, handleRepositoryError(err)
	}
	registrations, err := s.participantRepo.ListByAthlete(ctx, athleteID)
	if err != nil {
		return nil, fmt.Errorf("failed to load registrations of athlete %d: %w", athleteID, err)
	}
	for _, reg := range registrations {
		if reg.ClassID == classID {
			return s.buildCertificate(ctx, athlete, reg, make(map[int]*models.Competition))
		}
	}
	return nil, ErrNotRegisteredInClass
}

func (s *certificateService) buildCertificate(
	ctx context.Context,
	athlete *models.Athlete,
	reg *models.Participant,
	competitions map[int]*models.Competition,
) (*models.Certificate, error) {
	class, err := s.classRepo.GetByID(ctx, reg.ClassID)
	if err != nil {
		return nil, handleRepositoryError(err)
	}

	competition, ok := competitions[class.CompetitionID]
	if !ok {
		competition, err = s.competitionRepo.GetByID(ctx, class.CompetitionID)
		if err != nil {
			return nil, handleRepositoryError(err)
		}
		competitions[class.CompetitionID] = competition
	}

	matches, err := s.matchRepo.ListByClass(ctx, class.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load bracket of class %d: %w", class.ID, err)
	}
	placement := brackets.ResolvePlacement(models.ToBracketMatches(matches), reg.ID, brackets.FormatFor(class.IsPemula()))

	return &models.Certificate{
		AthleteID:       athlete.ID,
		AthleteName:     athlete.Name,
		DojangName:      reg.DojangName,
		CompetitionID:   competition.ID,
		CompetitionName: competition.Name,
		ClassID:         class.ID,
		ClassLabel:      class.FormatLabel(),
		Placement:       placement,
		PlacementText:   placement.DisplayText(),
	}, nil
}

func (s *certificateService) Render(w io.Writer, cert *models.Certificate) error {
	if cert == nil {
		return fmt.Errorf("%w: certificate is required", ErrValidationFailed)
	}
	if err := certificateTemplate.Execute(w, cert); err != nil {
		return fmt.Errorf("failed to render certificate: %w", err)
	}
	return nil
}

func (s *certificateService) Publish(ctx context.Context, cert *models.Certificate) (string, error) {
	if s.uploader == nil {
		return "", ErrUploadsDisabled
	}

	var buf bytes.Buffer
	if err := s.Render(&buf, cert); err != nil {
		return "", err
	}

	key := fmt.Sprintf("certificates/%d/%s.html", cert.CompetitionID, uuid.NewString())
	result, err := s.uploader.Upload(ctx, key, certificateContentType, &buf)
	if err != nil {
		return "", fmt.Errorf("failed to publish certificate: %w", err)
	}

	s.logger.InfoContext(ctx, "Certificate published",
		slog.Int("athlete_id", cert.AthleteID),
		slog.Int("class_id", cert.ClassID),
		slog.String("key", result.Key))

	return result.Location, nil
}
