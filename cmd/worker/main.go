package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/briangreenhill/paceplan/internal/config"
	"github.com/briangreenhill/paceplan/internal/jobs"
	"github.com/briangreenhill/paceplan/internal/store"
	"github.com/briangreenhill/paceplan/plan"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("config")
	}
	if !cfg.HasDatabase() {
		logger.Fatal().Msg("worker requires DATABASE_URL")
	}
	if !cfg.HasRedis() {
		logger.Fatal().Msg("worker requires REDIS_ADDR")
	}

	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("db connect")
	}
	defer pool.Close()
	pg := store.NewPGStore(pool)
	if err := pg.Migrate(context.Background()); err != nil {
		logger.Fatal().Err(err).Msg("db migrate")
	}

	srv := asynq.NewServer(asynq.RedisClientOpt{Addr: cfg.RedisAddr}, asynq.Config{
		Concurrency:    8,
		StrictPriority: false,
		Queues: map[string]int{
			"plans":   10, // higher priority
			"default": 5,  // default priority
		},
	})
	mux := asynq.NewServeMux()

	mux.HandleFunc(jobs.TaskSavePlan, func(ctx context.Context, t *asynq.Task) error {
		var p jobs.SavePlanPayload
		if err := json.Unmarshal(t.Payload(), &p); err != nil {
			logger.Error().Err(err).Msg("bad payload, dropping job")
			return nil
		}
		start := time.Now()
		err := savePlan(ctx, pg, p)
		duration := time.Since(start)

		if err != nil {
			if isRetryableError(err) {
				logger.Warn().Err(err).Str("plan_id", p.PlanID).Dur("duration", duration).Msg("retryable save failure")
				return err // allow retry
			}
			logger.Error().Err(err).Str("plan_id", p.PlanID).Dur("duration", duration).Msg("permanent save failure, dropping job")
			return nil
		}
		logger.Info().Str("plan_id", p.PlanID).Dur("duration", duration).Msg("plan saved")
		return nil
	})

	logger.Info().Msg("worker running")
	if err := srv.Run(mux); err != nil {
		logger.Fatal().Err(err).Msg("worker exited")
	}
}

func savePlan(ctx context.Context, s store.PlanStore, p jobs.SavePlanPayload) error {
	id, err := uuid.Parse(p.PlanID)
	if err != nil {
		return fmt.Errorf("plan id %q: %w", p.PlanID, err)
	}
	var tp plan.TrainingPlan
	if err := json.Unmarshal(p.Plan, &tp); err != nil {
		return fmt.Errorf("unmarshal plan %s: %w", p.PlanID, err)
	}
	if tp.ID != id {
		return fmt.Errorf("payload id %s does not match plan %s", id, tp.ID)
	}
	return s.SavePlan(ctx, &tp)
}

// isRetryableError determines if an error should trigger a job retry
func isRetryableError(err error) bool {
	errStr := strings.ToLower(err.Error())

	// Network/connectivity issues - should retry
	if strings.Contains(errStr, "timeout") ||
		strings.Contains(errStr, "connection") ||
		strings.Contains(errStr, "network") ||
		strings.Contains(errStr, "dns") {
		return true
	}

	// Postgres shutting down or failing over - should retry
	if strings.Contains(errStr, "the database system is starting up") ||
		strings.Contains(errStr, "the database system is shutting down") ||
		strings.Contains(errStr, "too many clients") {
		return true
	}

	// Everything else (bad payloads, constraint violations) - don't retry
	return false
}
