// Package api assembles the HTTP surface of the service:
//
//	GET    /api/health                          liveness and instance info
//	POST   /api/questions                       create a question
//	GET    /api/questions                       list (optionally by assignee)
//	PUT    /api/questions/bulk-reassign         reassign many questions
//	PUT    /api/questions/{id}                  update a question
//	DELETE /api/questions/{id}                  delete a question
//	GET    /api/questions/search                fuzzy search over question/answer
//	GET    /api/questions/search-properties     fuzzy search over properties
//	GET    /api/users                           distinct creators/updaters
//	GET    /api/companies                       distinct companies
package api

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/exp/slog"

	"questiondesk/internal/app/server/api/http/apierror"
	companyAPI "questiondesk/internal/app/server/api/http/company"
	healthAPI "questiondesk/internal/app/server/api/http/health"
	"questiondesk/internal/app/server/api/http/middleware/logger"
	questionAPI "questiondesk/internal/app/server/api/http/question"
	userAPI "questiondesk/internal/app/server/api/http/user"
	"questiondesk/internal/config"
	"questiondesk/internal/domain/company"
	"questiondesk/internal/domain/question"
	"questiondesk/internal/domain/user"
)

const (
	title   = "Questiondesk API"
	version = "1.0.0"
)

// Services are the domain services the routes delegate to.
type Services struct {
	Question question.Servicer
	User     user.Servicer
	Company  company.Servicer
}

type Handlers struct {
	Health   *healthAPI.Handler
	Question *questionAPI.Handler
	User     *userAPI.Handler
	Company  *companyAPI.Handler
}

// New creates a *chi.Mux with every operation registered through huma.
func New(cfg *config.Config, services Services, log *slog.Logger) *chi.Mux {
	apierror.Install()

	mux := chi.NewMux()
	mux.Use(chimw.RealIP)
	mux.Use(chimw.Recoverer)
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"Accept", "Content-Type", logger.HeaderRequestID},
		ExposedHeaders: []string{logger.HeaderRequestID},
		MaxAge:         300,
	}))

	API := humachi.New(mux, huma.DefaultConfig(title, version))

	h := handlers(cfg, services, log)
	h.Health.SetupRoutes(API)
	h.Question.SetupRoutes(API)
	h.User.SetupRoutes(API)
	h.Company.SetupRoutes(API)

	return mux
}

// handlers builds every resource handler. Health requests are not logged.
func handlers(cfg *config.Config, services Services, log *slog.Logger) *Handlers {
	requestLog := huma.Middlewares{logger.New(log).Middleware()}

	return &Handlers{
		Health: healthAPI.NewHandler(healthAPI.Instance{
			Env:   cfg.Env,
			Table: cfg.Airtable.Table,
		}, nil),
		Question: questionAPI.NewHandler(services.Question, log, requestLog),
		User:     userAPI.NewHandler(services.User, log, requestLog),
		Company:  companyAPI.NewHandler(services.Company, log, requestLog),
	}
}
