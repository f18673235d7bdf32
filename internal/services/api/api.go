// Package api provides the HTTP API for the application
package api

import (
	"falnama/internal/platform/config"
	"falnama/internal/platform/logger"
	phttp "falnama/internal/platform/net/http"
	"falnama/internal/platform/store"

	"falnama/internal/modkit"
	"falnama/internal/modkit/httpkit"
	"falnama/internal/modkit/module"
	"falnama/internal/modkit/swaggerkit"

	interpretmod "falnama/internal/services/api/interpret/module"
	localizemod "falnama/internal/services/api/localize/module"
	metamod "falnama/internal/services/api/meta/module"
	readingsmod "falnama/internal/services/api/readings/module"
	scriptmod "falnama/internal/services/api/script/module"
	statsmod "falnama/internal/services/api/stats/module"
)

// Options are the API options
type Options struct {
	Config        config.Conf
	Store         *store.Store
	Logger        *logger.Logger
	EnableSwagger bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
		CH:  opt.Store.CH,
	}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}

	// Construct interpret first and hand its port to readings
	interpret := interpretmod.New(deps)
	interp := module.MustPortsOf[interpretmod.Ports](interpret).Interpreter

	readings := readingsmod.New(
		deps,
		modkit.WithPorts(readingsmod.Wiring{Interpreter: interp}),
	)

	mods := []module.Module{
		metamod.New(deps),
		localizemod.New(deps),
		scriptmod.New(deps),
		interpret,
		readings,
		statsmod.New(deps),
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		swaggerkit.Mount(r, opt.EnableSwagger)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
