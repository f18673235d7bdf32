// Package pg wraps pgxpool with optional query tracing
package pg

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Config holds the connection knobs the store layer exposes
type Config struct {
	URL      string
	MaxConns int32
	SlowMs   int
}

// PG owns a pgx pool plus the tracing settings the sql adapter consults
type PG struct {
	Pool   *pgxpool.Pool
	Tracer QueryTracer
	SlowMs int
}

// Open parses the URL, applies pool limits and connects
func Open(ctx context.Context, cfg Config, tracer QueryTracer) (*PG, error) {
	pc, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, err
	}
	if cfg.MaxConns > 0 {
		pc.MaxConns = cfg.MaxConns
	}
	pool, err := pgxpool.NewWithConfig(ctx, pc)
	if err != nil {
		return nil, err
	}
	return &PG{Pool: pool, Tracer: tracer, SlowMs: cfg.SlowMs}, nil
}

// Close releases the pool, safe on nil
func (p *PG) Close() {
	if p != nil && p.Pool != nil {
		p.Pool.Close()
	}
}
