// Package ch provides a clickhouse client over clickhouse-go native protocol
package ch

import (
	"context"
	"errors"
	"strings"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
)

// Config configures clickhouse client
type Config struct {
	URL        string
	ClientName string
	ClientTag  string
}

// Rows is the minimal result set iteration for ch
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
	Columns() []string
}

// CH wraps a clickhouse native connection
type CH struct {
	conn driver.Conn
}

// Open parses the DSN and connects
func Open(ctx context.Context, cfg Config) (*CH, error) {
	opts, err := clickhouse.ParseDSN(cfg.URL)
	if err != nil {
		return nil, err
	}
	opts.ClientInfo = BuildClientInfo(cfg.ClientName, cfg.ClientTag)

	conn, err := clickhouse.Open(opts)
	if err != nil {
		return nil, err
	}
	return &CH{conn: conn}, nil
}

// Ping verifies connectivity
func (c *CH) Ping(ctx context.Context) error {
	if c == nil || c.conn == nil {
		return errors.New("ch: nil connection")
	}
	return c.conn.Ping(ctx)
}

// Insert appends rows into table via a prepared batch
// columns names the insert columns in row order
func (c *CH) Insert(ctx context.Context, table string, columns []string, rows [][]any) error {
	if len(rows) == 0 {
		return nil
	}
	stmt := "INSERT INTO " + table
	if len(columns) > 0 {
		stmt += " (" + strings.Join(columns, ", ") + ")"
	}
	batch, err := c.conn.PrepareBatch(ctx, stmt)
	if err != nil {
		return err
	}
	for _, r := range rows {
		if err := batch.Append(r...); err != nil {
			return errors.Join(err, batch.Abort())
		}
	}
	return batch.Send()
}

// Query runs a query and returns ch.Rows
func (c *CH) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	return c.conn.Query(ctx, sql, args...)
}

// Close closes resources
func (c *CH) Close() error {
	if c == nil || c.conn == nil {
		return nil
	}
	return c.conn.Close()
}
