package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/Elmanda1/pemuda-berprestasi-legacy-sub004/services"
)

const maxTallyCompetitions = 20

type MedalHandler struct {
	medalService services.MedalService
}

func NewMedalHandler(ms services.MedalService) *MedalHandler {
	return &MedalHandler{
		medalService: ms,
	}
}

// ClassPlacements godoc
// @Summary Resolve the placement of every participant of a class
// @Tags classes
// @Produce json
// @Param classID path int true "Class ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /classes/{classID}/placements [get]
func (h *MedalHandler) ClassPlacements(w http.ResponseWriter, r *http.Request) {
	classID, err := getIDFromURL(r, "classID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	placements, err := h.medalService.ClassPlacements(r.Context(), classID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"placements": placements}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// CompetitionTally godoc
// @Summary Medal tally per dojang for a competition
// @Tags medals
// @Produce json
// @Param competitionID path int true "Competition ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /competitions/{competitionID}/medal-tally [get]
func (h *MedalHandler) CompetitionTally(w http.ResponseWriter, r *http.Request) {
	competitionID, err := getIDFromURL(r, "competitionID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	tally, err := h.medalService.CompetitionTally(r.Context(), competitionID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"medal_tally": tally}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// CompetitionTallies godoc
// @Summary Medal tallies for several competitions
// @Description Competitions that cannot be tallied are left out of the result.
// @Tags medals
// @Produce json
// @Param competition_id query []int true "Competition IDs" collectionFormat(multi)
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /medal-tally [get]
func (h *MedalHandler) CompetitionTallies(w http.ResponseWriter, r *http.Request) {
	rawIDs := r.URL.Query()["competition_id"]
	if len(rawIDs) == 0 {
		badRequestResponse(w, r, fmt.Errorf("at least one competition_id is required"))
		return
	}
	if len(rawIDs) > maxTallyCompetitions {
		badRequestResponse(w, r, fmt.Errorf("at most %d competition_id values are allowed", maxTallyCompetitions))
		return
	}

	ids := make([]int, 0, len(rawIDs))
	for _, raw := range rawIDs {
		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			badRequestResponse(w, r, fmt.Errorf("invalid competition_id value: %q", raw))
			return
		}
		ids = append(ids, id)
	}

	tallies := h.medalService.CompetitionTallies(r.Context(), ids)
	if err := writeJSON(w, http.StatusOK, jsonResponse{"medal_tallies": tallies}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
