package modkit

import (
	"falnama/internal/modkit/repokit"
	"falnama/internal/platform/config"
	"falnama/internal/platform/logger"
	"falnama/internal/platform/store"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log logger.Logger
	Cfg config.Conf
	PG  repokit.TxRunner
	CH  store.Clickhouse
}
