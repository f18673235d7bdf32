// @title         Falnama API
// @version       0.1.0
// @description   Persian numerology readings, localization and interpretation endpoints

package main

import (
	"context"

	"github.com/joho/godotenv"

	"falnama/internal/platform/config"
	"falnama/internal/platform/logger"
	phttp "falnama/internal/platform/net/http"
	"falnama/internal/platform/store"

	"falnama/internal/services/api"
)

func main() {
	// local development convenience; real deployments set the env directly
	_ = godotenv.Load()

	// service-scoped config for HTTP etc (FALNAMA_API_*)
	root := config.New()
	apiCfg := root.Prefix("FALNAMA_API_")

	pgCfg := root.Prefix("SERVICE_PGSQL_")      // pgCfg lives under SERVICE_PGSQL_*
	chCfg := root.Prefix("SERVICE_CLICKHOUSE_") // chCfg lives under SERVICE_CLICKHOUSE_*

	// bring up logging early
	l := logger.Get()

	// open the platform store (postgres + optional CH sink)
	st, err := store.Open(
		context.Background(),
		store.Config{
			AppName: "falnama-api",
			PG: store.PGConfig{
				Enabled:     true,
				URL:         pgCfg.MustString("DBURL"),
				MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 4)),
				SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
				LogSQL:      pgCfg.MayBool("LOG_SQL", true),
			},
			CH: store.CHConfig{
				Enabled:    chCfg.MayBool("ENABLED", false),
				URL:        chCfg.MayString("DBURL", ""),
				ClientName: "falnama",
				ClientTag:  "api",
			},
		},
		store.WithLogger(*logger.Get()),
	)
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	if err := st.Guard(context.Background()); err != nil {
		l.Warn().Err(err).Msg("store readiness check failed at boot")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	// http server (reads FALNAMA_API_PORT / FALNAMA_API_ADDR)
	srv := phttp.NewServer(apiCfg)

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config:        apiCfg,
			Store:         st,
			Logger:        l,
			EnableSwagger: apiCfg.MayBool("SWAGGER", true),
		},
	)

	// run
	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
