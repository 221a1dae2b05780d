package handlers

import (
	"bytes"
	"net/http"

	"github.com/Elmanda1/pemuda-berprestasi-legacy-sub004/middleware"
	"github.com/Elmanda1/pemuda-berprestasi-legacy-sub004/services"
)

type CertificateHandler struct {
	certificateService services.CertificateService
	athleteService     services.AthleteService
}

func NewCertificateHandler(cs services.CertificateService, as services.AthleteService) *CertificateHandler {
	return &CertificateHandler{
		certificateService: cs,
		athleteService:     as,
	}
}

// ListCertificates godoc
// @Summary Certificates of an athlete, one per registered class
// @Tags certificates
// @Produce json
// @Param athleteID path int true "Athlete ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /athletes/{athleteID}/certificates [get]
func (h *CertificateHandler) ListCertificates(w http.ResponseWriter, r *http.Request) {
	athleteID, err := getIDFromURL(r, "athleteID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	certificates, err := h.certificateService.AthleteCertificates(r.Context(), athleteID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"certificates": certificates}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// RenderCertificate godoc
// @Summary Printable HTML certificate
// @Tags certificates
// @Produce html
// @Param athleteID path int true "Athlete ID"
// @Param classID path int true "Class ID"
// @Success 200 {string} string "HTML document"
// @Failure 404 {object} map[string]string
// @Router /athletes/{athleteID}/certificates/{classID} [get]
func (h *CertificateHandler) RenderCertificate(w http.ResponseWriter, r *http.Request) {
	athleteID, err := getIDFromURL(r, "athleteID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	classID, err := getIDFromURL(r, "classID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	cert, err := h.certificateService.AthleteCertificate(r.Context(), athleteID, classID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	// Rendered into a buffer so a template failure can still produce a JSON error.
	var buf bytes.Buffer
	if err := h.certificateService.Render(&buf, cert); err != nil {
		serverErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

// PublishCertificate godoc
// @Summary Upload the certificate and return its public URL
// @Tags certificates
// @Produce json
// @Param athleteID path int true "Athlete ID"
// @Param classID path int true "Class ID"
// @Success 201 {object} map[string]interface{}
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 503 {object} map[string]string "Uploads are not configured"
// @Security BearerAuth
// @Router /athletes/{athleteID}/certificates/{classID}/publish [post]
func (h *CertificateHandler) PublishCertificate(w http.ResponseWriter, r *http.Request) {
	athleteID, err := getIDFromURL(r, "athleteID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	classID, err := getIDFromURL(r, "classID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	athlete, err := h.athleteService.GetAthlete(r.Context(), athleteID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if !middleware.CanManageDojang(r.Context(), athlete.DojangID) {
		forbiddenResponse(w, r, services.ErrForbiddenOperation.Error())
		return
	}

	cert, err := h.certificateService.AthleteCertificate(r.Context(), athleteID, classID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	url, err := h.certificateService.Publish(r.Context(), cert)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{
		"certificate": cert,
		"url":         url,
	}
	if err := writeJSON(w, http.StatusCreated, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
