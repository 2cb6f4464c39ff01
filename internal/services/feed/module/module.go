// Package module wires the feed aggregator into the API using modkit
package module

import (
	"net/http"

	modkit "feedmill/internal/modkit"
	"feedmill/internal/modkit/httpkit"
	str "feedmill/internal/platform/strings"
	feedhttp "feedmill/internal/services/feed/http"
	feedsvc "feedmill/internal/services/feed/service"
)

// Module implements the feed module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc feedsvc.Service
}

// New constructs the feed module
// the five upstream ports must be injected via modkit.WithPorts(Ports{...})
func New(deps modkit.Deps, cfg feedsvc.Config, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("feed"), modkit.WithPrefix("/feed")}, opts...)...)

	up, ok := b.Ports.(Ports)
	if !ok {
		panic("feed module requires upstream Ports")
	}
	svc := feedsvc.New(up.Follows, up.Posts, up.Likes, up.Comments, up.Users, cfg)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = adaptFeedPort{svc: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		feedhttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes mounts the module routes on the given router
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
