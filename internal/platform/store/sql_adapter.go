package store

import (
	"context"
	"errors"
	"time"

	"falnama/internal/platform/store/pg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// tracerSink forwards query events to an optional pg.QueryTracer.
// The adapter and the tx querier share it so traced and transactional
// queries report identically.
type tracerSink struct {
	tracer pg.QueryTracer
	slowUS int64
}

func (s tracerSink) trace(ctx context.Context, sql string, args []any, start time.Time, err error) {
	if s.tracer == nil {
		return
	}
	us := time.Since(start).Microseconds()
	s.tracer.OnQuery(ctx, pg.QueryEvent{
		SQL:       sql,
		Args:      args,
		ElapsedUS: us,
		Err:       err,
		Slow:      s.slowUS >= 0 && us >= s.slowUS,
	})
}

// pgAdapter implements RowQuerier and TxRunner over pg.PG
type pgAdapter struct {
	p    *pg.PG
	sink tracerSink
}

func newPGAdapter(p *pg.PG) *pgAdapter {
	return &pgAdapter{
		p:    p,
		sink: tracerSink{tracer: p.Tracer, slowUS: int64(p.SlowMs) * 1000},
	}
}

func (a *pgAdapter) Ping(ctx context.Context) error {
	if a == nil {
		return errors.New("pg: nil adapter")
	}
	var one int
	return a.QueryRow(ctx, "SELECT 1").Scan(&one)
}

func (a *pgAdapter) Close() error { a.p.Close(); return nil }

func (a *pgAdapter) Exec(ctx context.Context, sql string, args ...any) (CommandTag, error) {
	start := time.Now()
	ct, err := a.p.Pool.Exec(ctx, sql, args...)
	a.sink.trace(ctx, sql, args, start, err)
	return cmdTag{ct}, err
}

func (a *pgAdapter) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	start := time.Now()
	rs, err := a.p.Pool.Query(ctx, sql, args...)
	a.sink.trace(ctx, sql, args, start, err)
	if err != nil {
		return nil, err
	}
	return pgRows{r: rs}, nil
}

func (a *pgAdapter) QueryRow(ctx context.Context, sql string, args ...any) Row {
	start := time.Now()
	// the event fires after Scan so it carries the scan error
	return pgRow{
		r:     a.p.Pool.QueryRow(ctx, sql, args...),
		after: func(scanErr error) { a.sink.trace(ctx, sql, args, start, scanErr) },
	}
}

// Tx runs fn inside a transaction, rolling back on error
func (a *pgAdapter) Tx(ctx context.Context, fn func(q RowQuerier) error) error {
	tx, err := a.p.Pool.Begin(ctx)
	if err != nil {
		return err
	}
	if err := fn(txQuerier{tx: tx, sink: a.sink}); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	return tx.Commit(ctx)
}

// txQuerier satisfies RowQuerier inside a transaction
type txQuerier struct {
	tx   pgx.Tx
	sink tracerSink
}

func (t txQuerier) Exec(ctx context.Context, sql string, args ...any) (CommandTag, error) {
	start := time.Now()
	ct, err := t.tx.Exec(ctx, sql, args...)
	t.sink.trace(ctx, sql, args, start, err)
	return cmdTag{ct}, err
}

func (t txQuerier) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	start := time.Now()
	rs, err := t.tx.Query(ctx, sql, args...)
	t.sink.trace(ctx, sql, args, start, err)
	if err != nil {
		return nil, err
	}
	return pgRows{r: rs}, nil
}

func (t txQuerier) QueryRow(ctx context.Context, sql string, args ...any) Row {
	start := time.Now()
	return pgRow{
		r:     t.tx.QueryRow(ctx, sql, args...),
		after: func(scanErr error) { t.sink.trace(ctx, sql, args, start, scanErr) },
	}
}

// thin pgx wrappers satisfying the store Row/Rows/CommandTag contracts

type pgRow struct {
	r     pgx.Row
	after func(error)
}

func (x pgRow) Scan(dst ...any) error {
	err := x.r.Scan(dst...)
	if x.after != nil {
		x.after(err)
	}
	return err
}

type pgRows struct{ r pgx.Rows }

func (x pgRows) Next() bool            { return x.r.Next() }
func (x pgRows) Scan(dst ...any) error { return x.r.Scan(dst...) }
func (x pgRows) Err() error            { return x.r.Err() }
func (x pgRows) Close()                { x.r.Close() }
func (x pgRows) Columns() []string {
	fields := x.r.FieldDescriptions()
	out := make([]string, len(fields))
	for i := range fields {
		out[i] = string(fields[i].Name)
	}
	return out
}

type cmdTag struct{ t pgconn.CommandTag }

func (t cmdTag) String() string      { return t.t.String() }
func (t cmdTag) RowsAffected() int64 { return t.t.RowsAffected() }
