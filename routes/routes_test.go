package routes

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Elmanda1/pemuda-berprestasi-legacy-sub004/handlers"
	"github.com/Elmanda1/pemuda-berprestasi-legacy-sub004/middleware"
	"github.com/Elmanda1/pemuda-berprestasi-legacy-sub004/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "route-secret"

func newTestRouter() *chi.Mux {
	router := chi.NewRouter()
	SetupRoutes(router, Options{
		JWTSecret:      testSecret,
		AllowedOrigins: []string{"https://app.example"},
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	}, Handlers{
		Auth:        handlers.NewAuthHandler(nil, testSecret),
		Competition: handlers.NewCompetitionHandler(nil),
		Medal:       handlers.NewMedalHandler(nil),
		Dojang:      handlers.NewDojangHandler(nil, nil),
		Participant: handlers.NewParticipantHandler(nil),
		Certificate: handlers.NewCertificateHandler(nil, nil),
		Dashboard:   handlers.NewDashboardHandler(nil),
		WebSocket:   handlers.NewWebSocketHandler(nil, nil, nil, nil),
	})
	return router
}

func tokenFor(t *testing.T, role models.UserRole) string {
	t.Helper()
	dojangID := 3
	token, err := middleware.NewToken([]byte(testSecret), &models.User{ID: 1, Name: "Tester", Role: role, DojangID: &dojangID}, time.Now())
	require.NoError(t, err)
	return token
}

func TestSetupRoutes_ProtectedRoutes(t *testing.T) {
	router := newTestRouter()

	tests := []struct {
		name       string
		method     string
		target     string
		role       models.UserRole
		wantStatus int
	}{
		{"create competition without token", http.MethodPost, "/competitions", "", http.StatusUnauthorized},
		{"create competition as dojang", http.MethodPost, "/competitions", models.RoleDojang, http.StatusForbidden},
		{"create class as dojang", http.MethodPost, "/competitions/1/classes", models.RoleDojang, http.StatusForbidden},
		{"create dojang as dojang", http.MethodPost, "/dojangs", models.RoleDojang, http.StatusForbidden},
		{"assign dojang without token", http.MethodPut, "/users/1/dojang", "", http.StatusUnauthorized},
		{"assign dojang as dojang", http.MethodPut, "/users/1/dojang", models.RoleDojang, http.StatusForbidden},
		{"update dojang without token", http.MethodPut, "/dojangs/3", "", http.StatusUnauthorized},
		{"upload logo without token", http.MethodPost, "/dojangs/3/logo", "", http.StatusUnauthorized},
		{"create athlete without token", http.MethodPost, "/dojangs/3/athletes", "", http.StatusUnauthorized},
		{"register participant without token", http.MethodPost, "/classes/2/participants", "", http.StatusUnauthorized},
		{"publish certificate without token", http.MethodPost, "/athletes/4/certificates/2/publish", "", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, nil)
			if tt.role != "" {
				req.Header.Set("Authorization", "Bearer "+tokenFor(t, tt.role))
			}
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestSetupRoutes_Swagger(t *testing.T) {
	router := newTestRouter()

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "/competitions/{competitionID}/medal-tally")
}

func TestSetupRoutes_NotFound(t *testing.T) {
	router := newTestRouter()

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/no-such-page", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error":"the requested resource could not be found"}`, rr.Body.String())
}

func TestSetupRoutes_CORSPreflight(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodOptions, "/competitions", nil)
	req.Header.Set("Origin", "https://app.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, "https://app.example", rr.Header().Get("Access-Control-Allow-Origin"))
}
