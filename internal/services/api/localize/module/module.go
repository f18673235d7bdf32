// Package module wires localization into the API using modkit
package module

import (
	"net/http"

	modkit "falnama/internal/modkit"
	"falnama/internal/modkit/httpkit"
	str "falnama/internal/platform/strings"
	localizehttp "falnama/internal/services/api/localize/http"
	localizesvc "falnama/internal/services/api/localize/service"
)

// Module implements the modkit.Module interface
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws   []func(http.Handler) http.Handler
	ports any

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc localizesvc.Service
}

// New constructs a localize module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("localize"), modkit.WithPrefix("/localize")}, opts...)...)

	svc := localizesvc.New()

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = Ports{Localizer: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		localizehttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }
