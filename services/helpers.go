package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Elmanda1/pemuda-berprestasi-legacy-sub004/models"
	"github.com/Elmanda1/pemuda-berprestasi-legacy-sub004/repositories"
	"github.com/Elmanda1/pemuda-berprestasi-legacy-sub004/storage"
)

var repositoryErrors = []struct {
	repo    error
	service error
}{
	{repositories.ErrCompetitionNotFound, ErrCompetitionNotFound},
	{repositories.ErrClassNotFound, ErrClassNotFound},
	{repositories.ErrClassCompetitionInvalid, ErrCompetitionNotFound},
	{repositories.ErrDojangNotFound, ErrDojangNotFound},
	{repositories.ErrDojangNameConflict, ErrDojangNameConflict},
	{repositories.ErrAthleteNotFound, ErrAthleteNotFound},
	{repositories.ErrAthleteDojangInvalid, ErrDojangNotFound},
	{repositories.ErrParticipantConflict, ErrParticipantConflict},
	{repositories.ErrParticipantInvalid, ErrValidationFailed},
	{repositories.ErrParticipantNotFound, ErrNotFound},
	{repositories.ErrUserNotFound, ErrUserNotFound},
	{repositories.ErrUserEmailConflict, ErrUserEmailConflict},
	{repositories.ErrUserDojangInvalid, ErrDojangNotFound},
}

// handleRepositoryError translates repository sentinels into service errors.
// Unknown errors are returned unchanged.
func handleRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	for _, e := range repositoryErrors {
		if errors.Is(err, e.repo) {
			return e.service
		}
	}
	return err
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func populateDojangLogoURLFunc(dojang *models.Dojang, uploader storage.FileUploader) {
	if dojang != nil && dojang.LogoKey != nil && *dojang.LogoKey != "" && uploader != nil {
		url := uploader.GetPublicURL(*dojang.LogoKey)
		if url != "" {
			dojang.LogoURL = &url
		}
	}
}

func GetExtensionFromContentType(contentType string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(contentType)) {
	case "image/jpeg", "image/jpg":
		return ".jpg", nil
	case "image/png":
		return ".png", nil
	case "image/gif":
		return ".gif", nil
	case "image/webp":
		return ".webp", nil
	case "image/svg+xml":
		return ".svg", nil
	}
	return "", fmt.Errorf("%w: '%s'", ErrUnsupportedContentType, contentType)
}
