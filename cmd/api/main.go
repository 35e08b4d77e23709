// cmd/api/main.go
package main

import (
	"context"
	"net/http"
	"os"

	scs "github.com/alexedwards/scs/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"

	"github.com/briangreenhill/paceplan/internal/config"
	"github.com/briangreenhill/paceplan/internal/http/routes"
	"github.com/briangreenhill/paceplan/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fallback := zerolog.New(os.Stderr)
		fallback.Fatal().Err(err).Msg("config")
	}

	// Logger
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := zerolog.New(os.Stdout).Level(level).With().Timestamp().Logger()
	logger.Info().Str("port", cfg.Port).Msg("starting api")

	// Plan store: Postgres when configured, then plain files, then memory.
	var planStore store.PlanStore
	switch {
	case cfg.HasDatabase():
		pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
		if err != nil {
			logger.Fatal().Err(err).Msg("db connect")
		}
		defer pool.Close()
		pg := store.NewPGStore(pool)
		if err := pg.Migrate(context.Background()); err != nil {
			logger.Fatal().Err(err).Msg("db migrate")
		}
		planStore = pg
	case cfg.PlansDir != "":
		fs, err := store.NewFileStore(cfg.PlansDir)
		if err != nil {
			logger.Fatal().Err(err).Msg("file store")
		}
		planStore = fs
	default:
		logger.Warn().Msg("no DATABASE_URL or PLANS_DIR set, plans held in memory only")
		planStore = store.NewMemStore()
	}

	// Sessions
	sess := scs.New()
	sess.Lifetime = cfg.SessionLifetime
	sess.Cookie.HttpOnly = true
	sess.Cookie.SameSite = http.SameSiteLaxMode
	sess.Cookie.Secure = false

	// Router / server
	s := routes.New(routes.ServerOptions{
		Sess:      sess,
		Store:     planStore,
		RedisAddr: cfg.RedisAddr,
	})
	h := hlog.NewHandler(logger)(s.Router)

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: sess.LoadAndSave(h)}
	if err := srv.ListenAndServe(); err != nil {
		logger.Fatal().Err(err).Msg("server exited")
	}
}
