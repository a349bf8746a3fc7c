package router

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"path/filepath"

	_ "med-reminder/docs"
	"med-reminder/internal/adapters/storage/jsonfile"
	pg "med-reminder/internal/adapters/storage/postgres"
	"med-reminder/internal/config"
	"med-reminder/internal/domain/medications"
	"med-reminder/internal/domain/users"
	"med-reminder/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Cfg *config.Config
	Log zerolog.Logger

	// Opcional: si viene, fuerza Postgres (tests/handoff).
	// Si no, se decide por config: DB_DSN => Postgres, si no jsonfile.
	DB *sql.DB
}

func New(opts Options) (http.Handler, error) {
	cfg := opts.Cfg
	if cfg == nil {
		cfg = config.Default()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLogger(opts.Log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))
	r.Use(middleware.AllowList(cfg.AllowedIPs))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	var (
		usersRepo users.Repository
		medsRepo  medications.Repository
	)

	db := opts.DB
	if db == nil && cfg.DBDSN != "" {
		opened, err := pg.Open(cfg.DBDSN)
		if err != nil {
			return nil, err
		}
		db = opened
	}

	if db != nil {
		if err := pg.RunMigrations(context.Background(), db); err != nil {
			return nil, err
		}
		usersRepo = pg.NewUsersRepo(db)
		medsRepo = pg.NewMedicationsRepo(db)
	} else {
		dir := cfg.DataDir
		if dir == "" {
			dir = "data"
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
		usersRepo = jsonfile.NewUsersRepo(filepath.Join(dir, "users.json"))
		medsRepo = jsonfile.NewMedicationsRepo(filepath.Join(dir, "prescriptions.json"))
	}

	// Services por módulo
	usersSvc := users.NewService(usersRepo)
	medsSvc := medications.NewService(medsRepo)

	// Rutas por módulo
	users.RegisterRoutes(r, usersSvc)
	medications.RegisterRoutes(r, medsSvc)

	// Placeholders de imágenes y swagger UI
	staticDir := cfg.StaticDir
	if staticDir == "" {
		staticDir = "static"
	}
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))))
	r.Get("/swagger/*", httpSwagger.Handler())

	return r, nil
}
