// Package module wires interpretation into the API using modkit
package module

import (
	"net/http"

	"falnama/internal/adapters/oracle"
	modkit "falnama/internal/modkit"
	"falnama/internal/modkit/httpkit"
	str "falnama/internal/platform/strings"
	interprethttp "falnama/internal/services/api/interpret/http"
	interpretsvc "falnama/internal/services/api/interpret/service"
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

	svc interpretsvc.Service
}

// New constructs an interpret module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("interpret"), modkit.WithPrefix("/interpret")}, opts...)...)

	var gen interpretsvc.Generator
	if o := FromConfig(deps.Cfg); o.BaseURL != "" {
		gen = oracle.NewClient(o)
	}
	svc := interpretsvc.New(gen)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = Ports{Interpreter: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		interprethttp.Register(r, m.svc)
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
