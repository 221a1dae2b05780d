package handlers

import (
	"errors"
	"net/http"

	"github.com/Elmanda1/pemuda-berprestasi-legacy-sub004/middleware"
	"github.com/Elmanda1/pemuda-berprestasi-legacy-sub004/services"
)

type ParticipantHandler struct {
	athleteService services.AthleteService
}

func NewParticipantHandler(as services.AthleteService) *ParticipantHandler {
	return &ParticipantHandler{
		athleteService: as,
	}
}

type registerParticipantInput struct {
	AthleteID int `json:"athlete_id"`
}

// RegisterParticipant godoc
// @Summary Register an athlete into a championship class
// @Tags classes
// @Accept json
// @Produce json
// @Param classID path int true "Class ID"
// @Param body body registerParticipantInput true "Athlete"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string "Validation error or gender mismatch"
// @Failure 403 {object} map[string]string
// @Failure 409 {object} map[string]string "Already registered"
// @Security BearerAuth
// @Router /classes/{classID}/participants [post]
func (h *ParticipantHandler) RegisterParticipant(w http.ResponseWriter, r *http.Request) {
	classID, err := getIDFromURL(r, "classID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input registerParticipantInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if input.AthleteID <= 0 {
		badRequestResponse(w, r, errors.New("athlete_id is required"))
		return
	}

	athlete, err := h.athleteService.GetAthlete(r.Context(), input.AthleteID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if !middleware.CanManageDojang(r.Context(), athlete.DojangID) {
		forbiddenResponse(w, r, services.ErrForbiddenOperation.Error())
		return
	}

	participant, err := h.athleteService.RegisterToClass(r.Context(), classID, input.AthleteID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"participant": participant}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
