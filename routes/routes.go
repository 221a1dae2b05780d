package routes

import (
	"log/slog"
	"net/http"

	_ "github.com/Elmanda1/pemuda-berprestasi-legacy-sub004/docs"
	"github.com/Elmanda1/pemuda-berprestasi-legacy-sub004/handlers"
	"github.com/Elmanda1/pemuda-berprestasi-legacy-sub004/middleware"
	"github.com/Elmanda1/pemuda-berprestasi-legacy-sub004/models"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Options carries the router settings that do not belong to a single handler.
type Options struct {
	JWTSecret      string
	AllowedOrigins []string
	Logger         *slog.Logger
}

// Handlers groups every HTTP handler mounted by SetupRoutes.
type Handlers struct {
	Auth        *handlers.AuthHandler
	Competition *handlers.CompetitionHandler
	Medal       *handlers.MedalHandler
	Dojang      *handlers.DojangHandler
	Participant *handlers.ParticipantHandler
	Certificate *handlers.CertificateHandler
	Dashboard   *handlers.DashboardHandler
	WebSocket   *handlers.WebSocketHandler
}

func SetupRoutes(router *chi.Mux, opts Options, h Handlers) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	router.Get("/ws/competitions/{competitionID}", h.WebSocket.ServeWs)

	authenticate := middleware.Authenticate([]byte(opts.JWTSecret), opts.Logger)
	adminOnly := middleware.RequireRole(models.RoleAdmin)

	router.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.Auth.Register)
		r.Post("/login", h.Auth.Login)
	})

	router.With(authenticate, adminOnly).Put("/users/{userID}/dojang", h.Auth.AssignDojang)

	router.Route("/competitions", func(r chi.Router) {
		r.Get("/", h.Competition.ListCompetitions)
		r.With(authenticate, adminOnly).Post("/", h.Competition.CreateCompetition)

		r.Route("/{competitionID}", func(r chi.Router) {
			r.Get("/", h.Competition.GetCompetition)
			r.Get("/classes", h.Competition.ListClasses)
			r.With(authenticate, adminOnly).Post("/classes", h.Competition.CreateClass)
			r.Get("/medal-tally", h.Medal.CompetitionTally)
		})
	})

	router.Get("/medal-tally", h.Medal.CompetitionTallies)

	router.Route("/classes/{classID}", func(r chi.Router) {
		r.Get("/bracket", h.Competition.GetClassBracket)
		r.Get("/placements", h.Medal.ClassPlacements)
		r.With(authenticate).Post("/participants", h.Participant.RegisterParticipant)
	})

	router.Route("/dojangs", func(r chi.Router) {
		r.Get("/", h.Dojang.ListDojangs)
		r.With(authenticate, adminOnly).Post("/", h.Dojang.CreateDojang)

		r.Route("/{dojangID}", func(r chi.Router) {
			r.Get("/", h.Dojang.GetDojang)
			r.Get("/athletes", h.Dojang.ListDojangAthletes)

			r.Group(func(r chi.Router) {
				r.Use(authenticate)
				r.Put("/", h.Dojang.UpdateDojang)
				r.Post("/logo", h.Dojang.UploadDojangLogo)
				r.Post("/athletes", h.Dojang.CreateAthlete)
			})
		})
	})

	router.Route("/athletes/{athleteID}/certificates", func(r chi.Router) {
		r.Get("/", h.Certificate.ListCertificates)
		r.Get("/{classID}", h.Certificate.RenderCertificate)
		r.With(authenticate).Post("/{classID}/publish", h.Certificate.PublishCertificate)
	})

	router.Get("/dashboard/stats", h.Dashboard.GetStats)

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"the requested resource could not be found"}` + "\n"))
	})
}
