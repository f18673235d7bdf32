// Package repo provides clickhouse rollups for stats
package repo

import (
	"context"
	"time"

	"falnama/internal/modkit/repokit"
	perr "falnama/internal/platform/errors"
)

// Repo defines the repository contract for stats rollups
type Repo interface {
	Systems(ctx context.Context) ([]RowSystemCount, error)
	Daily(ctx context.Context, days int) ([]RowDailyCount, error)
}

// RowSystemCount is one per-system rollup row
type RowSystemCount struct {
	System string
	Count  uint64
}

// RowDailyCount is one per-day rollup row
type RowDailyCount struct {
	Day   time.Time
	Count uint64
}

// NewCH creates a stats repo over ClickHouse
func NewCH(ch repokit.Clickhouse) Repo { return &chRepo{ch: ch} }

type chRepo struct{ ch repokit.Clickhouse }

func (r *chRepo) Systems(ctx context.Context) ([]RowSystemCount, error) {
	const sql = `
select system, count() as n
from reading_events
group by system
order by n desc
`
	rows, err := r.ch.Query(ctx, sql)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeDB, "stats systems query")
	}
	defer rows.Close()
	var out []RowSystemCount
	for rows.Next() {
		var rr RowSystemCount
		if err := rows.Scan(&rr.System, &rr.Count); err != nil {
			return nil, perr.Wrap(err, perr.ErrorCodeDB, "stats systems scan")
		}
		out = append(out, rr)
	}
	return out, rows.Err()
}

func (r *chRepo) Daily(ctx context.Context, days int) ([]RowDailyCount, error) {
	if days <= 0 || days > 365 {
		days = 30
	}
	const sql = `
select toStartOfDay(created_at) as day, count() as n
from reading_events
where created_at >= now() - toIntervalDay(?)
group by day
order by day
`
	rows, err := r.ch.Query(ctx, sql, days)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeDB, "stats daily query")
	}
	defer rows.Close()
	var out []RowDailyCount
	for rows.Next() {
		var rr RowDailyCount
		if err := rows.Scan(&rr.Day, &rr.Count); err != nil {
			return nil, perr.Wrap(err, perr.ErrorCodeDB, "stats daily scan")
		}
		out = append(out, rr)
	}
	return out, rows.Err()
}
