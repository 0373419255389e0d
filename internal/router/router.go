package router

import (
	"database/sql"
	"net/http"
	"os"

	mem "farm-records/internal/adapters/storage/memory"
	pg "farm-records/internal/adapters/storage/postgres"
	"farm-records/internal/domain/animals"
	"farm-records/internal/domain/feeds"
	"farm-records/internal/domain/weights"
	"farm-records/internal/middleware"
	"farm-records/internal/platform/logger"
	"farm-records/internal/ports/auth"

	_ "farm-records/docs"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	SessionVerifier auth.SessionVerifier // puede ser nil (modo dev)

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	Log logger.Logger
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Use(middleware.AuthContext(opts.SessionVerifier))

	log := opts.Log
	if log == nil {
		log = logger.NewFromEnv()
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	var (
		animalsRepo animals.Repository
		weightsRepo weights.Repository
		feedsRepo   feeds.Repository
	)

	// Si no te pasan DB explícita, intenta por env (para dev/handoff).
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			} else {
				log.Warn("postgres unavailable, falling back to memory", map[string]any{"error": err.Error()})
			}
		}
	}

	if db != nil {
		animalsRepo = pg.NewAnimalsRepo(db)
		weightsRepo = pg.NewWeightsRepo(db)
		feedsRepo = pg.NewFeedsRepo(db)
	} else {
		store := mem.NewStore()
		animalsRepo = mem.NewAnimalsRepo(store)
		weightsRepo = mem.NewWeightsRepo(store)
		feedsRepo = mem.NewFeedsRepo(store)
	}

	// Services por módulo
	animalsSvc := animals.NewService(animalsRepo)
	weightsSvc := weights.NewService(weightsRepo)
	feedsSvc := feeds.NewService(feedsRepo)

	// Rutas por módulo
	animals.RegisterRoutes(r, animalsSvc, log)
	weights.RegisterRoutes(r, weightsSvc, animalsSvc, log)
	feeds.RegisterRoutes(r, feedsSvc, animalsSvc, log)

	return r
}
