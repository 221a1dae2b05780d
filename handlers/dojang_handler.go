package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Elmanda1/pemuda-berprestasi-legacy-sub004/middleware"
	"github.com/Elmanda1/pemuda-berprestasi-legacy-sub004/services"
)

const maxLogoBytes = 5 << 20

type DojangHandler struct {
	dojangService  services.DojangService
	athleteService services.AthleteService
}

func NewDojangHandler(ds services.DojangService, as services.AthleteService) *DojangHandler {
	return &DojangHandler{
		dojangService:  ds,
		athleteService: as,
	}
}

// ListDojangs godoc
// @Summary List dojangs
// @Tags dojangs
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /dojangs [get]
func (h *DojangHandler) ListDojangs(w http.ResponseWriter, r *http.Request) {
	dojangs, err := h.dojangService.ListDojangs(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"dojangs": dojangs}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetDojang godoc
// @Summary Get a dojang
// @Tags dojangs
// @Produce json
// @Param dojangID path int true "Dojang ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /dojangs/{dojangID} [get]
func (h *DojangHandler) GetDojang(w http.ResponseWriter, r *http.Request) {
	dojangID, err := getIDFromURL(r, "dojangID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	dojang, err := h.dojangService.GetDojang(r.Context(), dojangID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"dojang": dojang}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// CreateDojang godoc
// @Summary Create a dojang
// @Tags dojangs
// @Accept json
// @Produce json
// @Param body body services.DojangInput true "Dojang"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /dojangs [post]
func (h *DojangHandler) CreateDojang(w http.ResponseWriter, r *http.Request) {
	var input services.DojangInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	dojang, err := h.dojangService.CreateDojang(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"dojang": dojang}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// UpdateDojang godoc
// @Summary Update a dojang
// @Tags dojangs
// @Accept json
// @Produce json
// @Param dojangID path int true "Dojang ID"
// @Param body body services.DojangInput true "Dojang"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /dojangs/{dojangID} [put]
func (h *DojangHandler) UpdateDojang(w http.ResponseWriter, r *http.Request) {
	dojangID, err := getIDFromURL(r, "dojangID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if !middleware.CanManageDojang(r.Context(), dojangID) {
		forbiddenResponse(w, r, services.ErrForbiddenOperation.Error())
		return
	}

	var input services.DojangInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	dojang, err := h.dojangService.UpdateDojang(r.Context(), dojangID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"dojang": dojang}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// UploadDojangLogo godoc
// @Summary Upload a dojang logo
// @Tags dojangs
// @Accept multipart/form-data
// @Produce json
// @Param dojangID path int true "Dojang ID"
// @Param logo formData file true "Logo image"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 503 {object} map[string]string "Uploads are not configured"
// @Security BearerAuth
// @Router /dojangs/{dojangID}/logo [post]
func (h *DojangHandler) UploadDojangLogo(w http.ResponseWriter, r *http.Request) {
	dojangID, err := getIDFromURL(r, "dojangID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if !middleware.CanManageDojang(r.Context(), dojangID) {
		forbiddenResponse(w, r, services.ErrForbiddenOperation.Error())
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxLogoBytes)
	if err := r.ParseMultipartForm(maxLogoBytes); err != nil {
		badRequestResponse(w, r, fmt.Errorf("failed to parse multipart form: %w", err))
		return
	}

	file, header, err := r.FormFile("logo")
	if err != nil {
		badRequestResponse(w, r, fmt.Errorf("failed to get logo file from form: %w", err))
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		badRequestResponse(w, r, errors.New("content-type header is required for logo"))
		return
	}

	dojang, err := h.dojangService.UploadDojangLogo(r.Context(), dojangID, file, contentType)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"dojang": dojang}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ListDojangAthletes godoc
// @Summary List the athletes of a dojang
// @Tags dojangs
// @Produce json
// @Param dojangID path int true "Dojang ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /dojangs/{dojangID}/athletes [get]
func (h *DojangHandler) ListDojangAthletes(w http.ResponseWriter, r *http.Request) {
	dojangID, err := getIDFromURL(r, "dojangID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	athletes, err := h.athleteService.ListDojangAthletes(r.Context(), dojangID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"athletes": athletes}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// CreateAthlete godoc
// @Summary Add an athlete to a dojang
// @Tags dojangs
// @Accept json
// @Produce json
// @Param dojangID path int true "Dojang ID"
// @Param body body services.CreateAthleteInput true "Athlete"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Security BearerAuth
// @Router /dojangs/{dojangID}/athletes [post]
func (h *DojangHandler) CreateAthlete(w http.ResponseWriter, r *http.Request) {
	dojangID, err := getIDFromURL(r, "dojangID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if !middleware.CanManageDojang(r.Context(), dojangID) {
		forbiddenResponse(w, r, services.ErrForbiddenOperation.Error())
		return
	}

	var input services.CreateAthleteInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	athlete, err := h.athleteService.CreateAthlete(r.Context(), dojangID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"athlete": athlete}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
