// Package module wires cycles into the API using modkit
package module

import (
	"net/http"

	modkit "lunara/internal/modkit"
	"lunara/internal/modkit/httpkit"
	"lunara/internal/platform/config"
	"lunara/internal/platform/net/http/bind"
	str "lunara/internal/platform/strings"
	cycleshttp "lunara/internal/services/api/cycles/http"
	cyclesrepo "lunara/internal/services/api/cycles/repo"
	cyclessvc "lunara/internal/services/api/cycles/service"
)

// Options carries the module tunables
type Options struct {
	Svc  cyclessvc.Options
	Form bind.FormOptions
}

// FromConfig reads the module options from the environment view
func FromConfig(cfg config.Conf) Options {
	return Options{
		Svc: cyclessvc.Options{
			UserColumn:  cfg.MayString("USER_COLUMN", "user_id"),
			TempColumns: cfg.MayCSV("BBT_COLUMNS", []string{"bbt", "BBT", "temperature", "Temperature"}),
		},
		Form: bind.FormOptions{
			MaxBytes: cfg.MayInt64("MAX_UPLOAD_BYTES", 8<<20),
		},
	}
}

// Module implements the modkit.Module interface
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws   []func(http.Handler) http.Handler
	ports any

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc cyclessvc.Service
}

// New constructs a cycles module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("cycles"), modkit.WithPrefix("/cycles")}, opts...)...)

	mo := FromConfig(deps.Cfg)
	repo := cyclesrepo.NewTable()
	svc := cyclessvc.New(mo.Svc, repo)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = adaptCyclesPort{svc: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		cycleshttp.Register(r, m.svc, mo.Form)
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
