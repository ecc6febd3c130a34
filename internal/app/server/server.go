package server

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"

	"leavedesk/internal/domain/audit"
	"leavedesk/internal/domain/leave"
	"leavedesk/internal/domain/users"
	"leavedesk/internal/platform/config"
	"leavedesk/internal/platform/db"
	"leavedesk/internal/platform/metrics"
	"leavedesk/internal/transport/http/api"
	authhandler "leavedesk/internal/transport/http/handlers/auth"
	leavehandler "leavedesk/internal/transport/http/handlers/leave"
	usershandler "leavedesk/internal/transport/http/handlers/users"
	"leavedesk/internal/transport/http/middleware"
)

type App struct {
	Config config.Config
	Pool   *pgxpool.Pool
	Router http.Handler
}

type Stores struct {
	Leave leave.Store
	Users users.Store
	Audit *audit.Service
}

// New assembles the router from the given stores. Callers pick Postgres or
// in-memory backends; the handler wiring is identical either way.
func New(cfg config.Config, stores Stores) *App {
	app := &App{Config: cfg}

	collector := metrics.New()

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Metrics(collector))
	router.Use(chimw.Recoverer)
	router.Use(middleware.Auth(cfg.JWTSecret))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if app.Pool != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := app.Pool.Ping(ctx); err != nil {
				http.Error(w, "db not ready", http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	router.Get("/metricsz", func(w http.ResponseWriter, r *http.Request) {
		api.Success(w, collector.Snapshot())
	})

	router.Route("/api", func(r chi.Router) {
		usersSvc := users.NewService(stores.Users)

		authHandler := authhandler.NewHandler(usersSvc, cfg.JWTSecret, cfg.TokenTTL)
		authHandler.RegisterRoutes(r)

		usersHandler := usershandler.NewHandler(usersSvc, cfg.AllowSelfSignup)
		usersHandler.RegisterRoutes(r)

		leaveHandler := leavehandler.NewHandler(leave.NewService(stores.Leave), stores.Audit)
		leaveHandler.RegisterRoutes(r)
	})

	app.Router = router
	return app
}

// Run starts the server with Postgres stores when DATABASE_URL is set and
// falls back to in-memory stores otherwise (demo mode).
func Run() {
	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	ctx := context.Background()
	stores := Stores{
		Leave: leave.NewMemoryStore(),
		Users: users.NewMemoryStore(),
		Audit: audit.New(nil),
	}

	var pool *pgxpool.Pool
	if cfg.DatabaseURL != "" {
		var err error
		pool, err = db.Connect(ctx, cfg)
		if err != nil {
			log.Fatalf("db connect failed: %v", err)
		}
		defer pool.Close()

		if cfg.RunMigrations {
			if err := db.Migrate(ctx, pool); err != nil {
				log.Fatalf("migrations failed: %v", err)
			}
		}
		if err := db.Seed(ctx, pool, cfg); err != nil {
			log.Fatalf("seed failed: %v", err)
		}

		stores = Stores{
			Leave: leave.NewPGStore(pool),
			Users: users.NewPGStore(pool),
			Audit: audit.New(pool),
		}
	} else {
		slog.Warn("DATABASE_URL not set, using in-memory stores")
	}

	app := New(cfg, stores)
	app.Pool = pool

	log.Printf("leavedesk server listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, app.Router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
