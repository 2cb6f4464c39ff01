package module

import (
	"context"

	"feedmill/internal/services/feed/domain"
)

// Ports bundles the five upstream dependencies injected by the composition
// root; each has exactly one concrete adapter in internal/upstream
type Ports struct {
	Follows  domain.FollowGraphPort
	Posts    domain.ContentPort
	Likes    domain.ReactionsPort
	Comments domain.DiscussionsPort
	Users    domain.IdentityPort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptFeedPort struct{ svc domain.ServicePort }

// Feed returns one page of the viewer's timeline
func (a adaptFeedPort) Feed(ctx context.Context, v domain.Viewer, page, size int) (domain.FeedPage, error) {
	return a.svc.Feed(ctx, v, page, size)
}
