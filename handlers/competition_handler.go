package handlers

import (
	"fmt"
	"net/http"

	"github.com/Elmanda1/pemuda-berprestasi-legacy-sub004/models"
	"github.com/Elmanda1/pemuda-berprestasi-legacy-sub004/services"
)

type CompetitionHandler struct {
	competitionService services.CompetitionService
}

func NewCompetitionHandler(cs services.CompetitionService) *CompetitionHandler {
	return &CompetitionHandler{
		competitionService: cs,
	}
}

// ListCompetitions godoc
// @Summary List competitions
// @Tags competitions
// @Produce json
// @Param status query string false "upcoming, ongoing or finished"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /competitions [get]
func (h *CompetitionHandler) ListCompetitions(w http.ResponseWriter, r *http.Request) {
	var status *models.CompetitionStatus
	if raw := r.URL.Query().Get("status"); raw != "" {
		s := models.CompetitionStatus(raw)
		status = &s
	}

	competitions, err := h.competitionService.ListCompetitions(r.Context(), status)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"competitions": competitions}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetCompetition godoc
// @Summary Get a competition with its classes
// @Tags competitions
// @Produce json
// @Param competitionID path int true "Competition ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /competitions/{competitionID} [get]
func (h *CompetitionHandler) GetCompetition(w http.ResponseWriter, r *http.Request) {
	competitionID, err := getIDFromURL(r, "competitionID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	competition, err := h.competitionService.GetCompetition(r.Context(), competitionID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"competition": competition}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// CreateCompetition godoc
// @Summary Create a competition
// @Tags competitions
// @Accept json
// @Produce json
// @Param body body services.CreateCompetitionInput true "Competition"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Security BearerAuth
// @Router /competitions [post]
func (h *CompetitionHandler) CreateCompetition(w http.ResponseWriter, r *http.Request) {
	var input services.CreateCompetitionInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	competition, err := h.competitionService.CreateCompetition(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	headers := make(http.Header)
	headers.Set("Location", fmt.Sprintf("/competitions/%d", competition.ID))
	if err := writeJSON(w, http.StatusCreated, jsonResponse{"competition": competition}, headers); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ListClasses godoc
// @Summary List the championship classes of a competition
// @Tags competitions
// @Produce json
// @Param competitionID path int true "Competition ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /competitions/{competitionID}/classes [get]
func (h *CompetitionHandler) ListClasses(w http.ResponseWriter, r *http.Request) {
	competitionID, err := getIDFromURL(r, "competitionID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	classes, err := h.competitionService.ListClasses(r.Context(), competitionID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"classes": classes}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// CreateClass godoc
// @Summary Add a championship class to a competition
// @Tags competitions
// @Accept json
// @Produce json
// @Param competitionID path int true "Competition ID"
// @Param body body services.CreateClassInput true "Class"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /competitions/{competitionID}/classes [post]
func (h *CompetitionHandler) CreateClass(w http.ResponseWriter, r *http.Request) {
	competitionID, err := getIDFromURL(r, "competitionID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.CreateClassInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	class, err := h.competitionService.CreateClass(r.Context(), competitionID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"class": class}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetClassBracket godoc
// @Summary Get the stored bracket of a class
// @Tags classes
// @Produce json
// @Param classID path int true "Class ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /classes/{classID}/bracket [get]
func (h *CompetitionHandler) GetClassBracket(w http.ResponseWriter, r *http.Request) {
	classID, err := getIDFromURL(r, "classID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	matches, err := h.competitionService.GetClassBracket(r.Context(), classID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"matches": matches}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
