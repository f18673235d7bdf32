// Package repo provides postgres access for readings
package repo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"falnama/internal/modkit/repokit"
	perr "falnama/internal/platform/errors"
)

// Repo defines the repository contract for readings
type Repo interface {
	Insert(ctx context.Context, row RowReading) error
	GetByID(ctx context.Context, id uuid.UUID) (RowReading, error)
	Recent(ctx context.Context, system string, limit int) ([]RowReading, error)
}

// RowReading represents a reading row in the database
type RowReading struct {
	ID             uuid.UUID
	Name           string
	Script         string
	System         string
	DestinyNumber  int
	LifePathNumber *int
	BirthDate      *string
	CreatedAt      time.Time
}

type (
	// PG implements the Repo interface using Postgres
	PG struct{}

	// queries holds the database query methods
	queries struct{ q repokit.Queryer }
)

// NewPG creates a new Postgres repository binder
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind binds a Postgres queryer to the Repo implementation
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

func (r *queries) Insert(ctx context.Context, row RowReading) error {
	const sql = `
insert into readings (id, name, script, system, destiny_number, life_path_number, birth_date, created_at)
values ($1, $2, $3, $4, $5, $6, $7::date, $8)
`
	_, err := r.q.Exec(ctx, sql,
		row.ID,
		row.Name,
		row.Script,
		row.System,
		row.DestinyNumber,
		row.LifePathNumber,
		row.BirthDate,
		row.CreatedAt,
	)
	if err != nil {
		return perr.FromPg(err)
	}
	return nil
}

func (r *queries) GetByID(ctx context.Context, id uuid.UUID) (RowReading, error) {
	const sql = `
select id, name, script, system, destiny_number, life_path_number, birth_date::text, created_at
from readings
where id = $1
`
	var row RowReading
	err := r.q.QueryRow(ctx, sql, id).Scan(
		&row.ID,
		&row.Name,
		&row.Script,
		&row.System,
		&row.DestinyNumber,
		&row.LifePathNumber,
		&row.BirthDate,
		&row.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return RowReading{}, perr.NotFoundf("reading %s not found", id)
		}
		return RowReading{}, perr.FromPg(err)
	}
	return row, nil
}

func (r *queries) Recent(ctx context.Context, system string, limit int) ([]RowReading, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	const sql = `
select id, name, script, system, destiny_number, life_path_number, birth_date::text, created_at
from readings
where ($1 = '' or system = $1)
order by created_at desc
limit $2
`
	rows, err := r.q.Query(ctx, sql, system, limit)
	if err != nil {
		return nil, perr.FromPg(err)
	}
	defer rows.Close()
	var out []RowReading
	for rows.Next() {
		var rr RowReading
		if err := rows.Scan(
			&rr.ID,
			&rr.Name,
			&rr.Script,
			&rr.System,
			&rr.DestinyNumber,
			&rr.LifePathNumber,
			&rr.BirthDate,
			&rr.CreatedAt,
		); err != nil {
			return nil, perr.FromPg(err)
		}
		out = append(out, rr)
	}
	if err := rows.Err(); err != nil {
		return nil, perr.FromPg(err)
	}
	return out, nil
}
