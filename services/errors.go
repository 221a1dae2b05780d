package services

import "errors"

// Shared service errors, mapped to HTTP statuses in handlers.
var (
	ErrNotFound = errors.New("requested resource not found")

	// Validation and business rules
	ErrValidationFailed       = errors.New("validation failed")
	ErrPasswordTooShort       = errors.New("password is too short")
	ErrInvalidEmail           = errors.New("invalid email address")
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrInvalidDateRange       = errors.New("end date must not be before start date")
	ErrInvalidStatus          = errors.New("invalid competition status")
	ErrInvalidClass           = errors.New("invalid championship class definition")
	ErrGenderMismatch         = errors.New("athlete gender does not match class gender")
	ErrNotRegisteredInClass   = errors.New("athlete is not registered in this class")
	ErrUnsupportedContentType = errors.New("unsupported content type")
	ErrUploadsDisabled        = errors.New("file uploads are not configured")

	// Conflicts
	ErrUserEmailConflict   = errors.New("email address is already in use")
	ErrDojangNameConflict  = errors.New("dojang name is already in use")
	ErrParticipantConflict = errors.New("athlete is already registered in this class")

	// Authorization
	ErrForbiddenOperation = errors.New("operation not allowed for the current user")

	// Entity specific not-found errors
	ErrCompetitionNotFound = errors.New("competition not found")
	ErrClassNotFound       = errors.New("championship class not found")
	ErrDojangNotFound      = errors.New("dojang not found")
	ErrAthleteNotFound     = errors.New("athlete not found")
	ErrUserNotFound        = errors.New("user not found")
)
