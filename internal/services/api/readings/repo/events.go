package repo

import (
	"context"
	"time"

	"falnama/internal/modkit/repokit"
)

// eventsTable receives one row per computed reading for the stats rollups
const eventsTable = "reading_events"

var eventsColumns = []string{"id", "system", "script", "destiny_number", "created_at"}

// Event is one analytics row emitted after a reading is persisted
type Event struct {
	ID            string
	System        string
	Script        string
	DestinyNumber int
	CreatedAt     time.Time
}

// Events writes reading events to the analytics sink
type Events interface {
	Emit(ctx context.Context, ev Event) error
}

// NewCH creates an Events writer over ClickHouse
func NewCH(ch repokit.Clickhouse) Events { return &chEvents{ch: ch} }

type chEvents struct{ ch repokit.Clickhouse }

func (e *chEvents) Emit(ctx context.Context, ev Event) error {
	return e.ch.Insert(ctx, eventsTable, eventsColumns, [][]any{
		{ev.ID, ev.System, ev.Script, int32(ev.DestinyNumber), ev.CreatedAt},
	})
}
