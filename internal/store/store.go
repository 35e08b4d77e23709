// Package store persists generated training plans. The Postgres store is
// the production backend; the memory store backs tests and database-less
// deployments.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/briangreenhill/paceplan/plan"
)

// ErrNotFound is returned when a plan ID has no stored plan.
var ErrNotFound = errors.New("plan not found")

// PlanStore is the persistence surface the API and worker share.
type PlanStore interface {
	SavePlan(ctx context.Context, p *plan.TrainingPlan) error
	GetPlan(ctx context.Context, id uuid.UUID) (*plan.TrainingPlan, error)
}

// PGStore stores plans as JSONB rows keyed by plan ID.
type PGStore struct {
	pool *pgxpool.Pool
}

func NewPGStore(pool *pgxpool.Pool) *PGStore {
	return &PGStore{pool: pool}
}

// Migrate creates the plans table if it does not exist.
func (s *PGStore) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS plans (
			id         UUID PRIMARY KEY,
			data       JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	if err != nil {
		return fmt.Errorf("migrate plans table: %w", err)
	}
	return nil
}

func (s *PGStore) SavePlan(ctx context.Context, p *plan.TrainingPlan) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal plan %s: %w", p.ID, err)
	}
	_, err = s.pool.Exec(ctx, `
		INSERT INTO plans (id, data) VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET data = EXCLUDED.data, updated_at = now()`,
		p.ID, data)
	if err != nil {
		return fmt.Errorf("save plan %s: %w", p.ID, err)
	}
	return nil
}

func (s *PGStore) GetPlan(ctx context.Context, id uuid.UUID) (*plan.TrainingPlan, error) {
	var data []byte
	err := s.pool.QueryRow(ctx, `SELECT data FROM plans WHERE id = $1`, id).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get plan %s: %w", id, err)
	}
	var p plan.TrainingPlan
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("unmarshal plan %s: %w", id, err)
	}
	return &p, nil
}

// MemStore keeps plans in memory, safe for concurrent use.
type MemStore struct {
	mu    sync.RWMutex
	plans map[uuid.UUID][]byte
}

func NewMemStore() *MemStore {
	return &MemStore{plans: make(map[uuid.UUID][]byte)}
}

func (s *MemStore) SavePlan(_ context.Context, p *plan.TrainingPlan) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal plan %s: %w", p.ID, err)
	}
	s.mu.Lock()
	s.plans[p.ID] = data
	s.mu.Unlock()
	return nil
}

func (s *MemStore) GetPlan(_ context.Context, id uuid.UUID) (*plan.TrainingPlan, error) {
	s.mu.RLock()
	data, ok := s.plans[id]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	var p plan.TrainingPlan
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("unmarshal plan %s: %w", id, err)
	}
	return &p, nil
}
