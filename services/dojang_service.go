package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/Elmanda1/pemuda-berprestasi-legacy-sub004/models"
	"github.com/Elmanda1/pemuda-berprestasi-legacy-sub004/repositories"
	"github.com/Elmanda1/pemuda-berprestasi-legacy-sub004/storage"
	"github.com/google/uuid"
)

type DojangInput struct {
	Name      string  `json:"name"`
	Province  *string `json:"province"`
	City      *string `json:"city"`
	CoachName *string `json:"coach_name"`
}

type DojangService interface {
	CreateDojang(ctx context.Context, input DojangInput) (*models.Dojang, error)
	GetDojang(ctx context.Context, id int) (*models.Dojang, error)
	ListDojangs(ctx context.Context) ([]*models.Dojang, error)
	UpdateDojang(ctx context.Context, id int, input DojangInput) (*models.Dojang, error)
	UploadDojangLogo(ctx context.Context, id int, file io.Reader, contentType string) (*models.Dojang, error)
}

type dojangService struct {
	dojangRepo repositories.DojangRepository
	uploader   storage.FileUploader
	logger     *slog.Logger
}

func NewDojangService(dojangRepo repositories.DojangRepository, uploader storage.FileUploader, logger *slog.Logger) DojangService {
	if logger == nil {
		logger = slog.Default()
	}
	return &dojangService{
		dojangRepo: dojangRepo,
		uploader:   uploader,
		logger:     logger,
	}
}

func (s *dojangService) CreateDojang(ctx context.Context, input DojangInput) (*models.Dojang, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: dojang name is required", ErrValidationFailed)
	}
	dojang := &models.Dojang{
		Name:      name,
		Province:  input.Province,
		City:      input.City,
		CoachName: input.CoachName,
	}
	if err := s.dojangRepo.Create(ctx, dojang); err != nil {
		return nil, handleRepositoryError(err)
	}
	return dojang, nil
}

func (s *dojangService) GetDojang(ctx context.Context, id int) (*models.Dojang, error) {
	dojang, err := s.dojangRepo.GetByID(ctx, id)
	if err != nil {
		return nil, handleRepositoryError(err)
	}
	populateDojangLogoURLFunc(dojang, s.uploader)
	return dojang, nil
}

func (s *dojangService) ListDojangs(ctx context.Context) ([]*models.Dojang, error) {
	dojangs, err := s.dojangRepo.List(ctx)
	if err != nil {
		return nil, handleRepositoryError(err)
	}
	for _, d := range dojangs {
		populateDojangLogoURLFunc(d, s.uploader)
	}
	return dojangs, nil
}

func (s *dojangService) UpdateDojang(ctx context.Context, id int, input DojangInput) (*models.Dojang, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: dojang name is required", ErrValidationFailed)
	}
	dojang, err := s.dojangRepo.GetByID(ctx, id)
	if err != nil {
		return nil, handleRepositoryError(err)
	}
	dojang.Name = name
	dojang.Province = input.Province
	dojang.City = input.City
	dojang.CoachName = input.CoachName

	if err := s.dojangRepo.Update(ctx, dojang); err != nil {
		return nil, handleRepositoryError(err)
	}
	populateDojangLogoURLFunc(dojang, s.uploader)
	return dojang, nil
}

// UploadDojangLogo stores the new logo, points the dojang at it and removes
// the previous object. A failed cleanup is only logged.
func (s *dojangService) UploadDojangLogo(ctx context.Context, id int, file io.Reader, contentType string) (*models.Dojang, error) {
	if s.uploader == nil {
		return nil, ErrUploadsDisabled
	}
	ext, err := GetExtensionFromContentType(contentType)
	if err != nil {
		return nil, err
	}

	dojang, err := s.dojangRepo.GetByID(ctx, id)
	if err != nil {
		return nil, handleRepositoryError(err)
	}
	oldKey := dojang.LogoKey

	key := fmt.Sprintf("logos/dojangs/%d/%s%s", id, uuid.NewString(), ext)
	if _, err := s.uploader.Upload(ctx, key, contentType, file); err != nil {
		return nil, fmt.Errorf("failed to upload dojang logo: %w", err)
	}

	if err := s.dojangRepo.UpdateLogoKey(ctx, id, &key); err != nil {
		if delErr := s.uploader.Delete(ctx, key); delErr != nil {
			s.logger.WarnContext(ctx, "Failed to remove orphaned logo", slog.String("key", key), slog.Any("error", delErr))
		}
		return nil, handleRepositoryError(err)
	}

	if oldKey != nil && *oldKey != "" {
		if err := s.uploader.Delete(ctx, *oldKey); err != nil {
			s.logger.WarnContext(ctx, "Failed to delete previous dojang logo",
				slog.Int("dojang_id", id), slog.String("key", *oldKey), slog.Any("error", err))
		}
	}

	dojang.LogoKey = &key
	populateDojangLogoURLFunc(dojang, s.uploader)
	return dojang, nil
}
