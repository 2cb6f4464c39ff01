// Package service contains the feed aggregation workflow
package service

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"feedmill/internal/platform/logger"
	"feedmill/internal/services/feed/domain"
)

// Service defines the feed service contract
type Service interface {
	domain.ServicePort
}

// Config bounds the aggregation fan-out
type Config struct {
	// AuthorWindow is how many posts are fetched per followed author.
	// A prolific author's older posts past this window never enter the
	// candidate timeline; see DESIGN.md for why this stays bounded.
	AuthorWindow int
	// FanoutLimit caps concurrent upstream calls per stage
	FanoutLimit int
}

func (c Config) withDefaults() Config {
	if c.AuthorWindow <= 0 {
		c.AuthorWindow = 100
	}
	if c.FanoutLimit <= 0 {
		c.FanoutLimit = 16
	}
	return c
}

// Svc aggregates posts from followed authors into a paginated timeline.
// It holds no request state; every call builds its candidate timeline
// from scratch.
type Svc struct {
	follows  domain.FollowGraphPort
	posts    domain.ContentPort
	likes    domain.ReactionsPort
	comments domain.DiscussionsPort
	users    domain.IdentityPort
	cfg      Config
}

// New constructs a feed service over the five upstream ports
func New(
	follows domain.FollowGraphPort,
	posts domain.ContentPort,
	likes domain.ReactionsPort,
	comments domain.DiscussionsPort,
	users domain.IdentityPort,
	cfg Config,
) *Svc {
	if follows == nil || posts == nil || likes == nil || comments == nil || users == nil {
		panic("feed.Service requires all five upstream ports")
	}
	return &Svc{
		follows:  follows,
		posts:    posts,
		likes:    likes,
		comments: comments,
		users:    users,
		cfg:      cfg.withDefaults(),
	}
}

// Feed answers "page P of viewer V's timeline"
// upstream failures degrade to empty contributions or zero-value
// annotations; the only early returns are the two normal-outcome paths
// (no follows, page past the end)
func (s *Svc) Feed(ctx context.Context, v domain.Viewer, page, size int) (domain.FeedPage, error) {
	log := logger.C(ctx)

	followed := s.followedSet(ctx, v)
	if len(followed) == 0 {
		return emptyPage(page, size), nil
	}

	timeline := s.candidateTimeline(ctx, v, followed)

	total := int64(len(timeline))
	totalPages := int((total + int64(size) - 1) / int64(size))
	last := page >= totalPages-1

	start := page * size
	if start >= len(timeline) {
		p := emptyPage(page, size)
		p.TotalElements = total
		p.TotalPages = totalPages
		p.Last = last
		return p, nil
	}
	end := start + size
	if end > len(timeline) {
		end = len(timeline)
	}
	window := timeline[start:end]

	items := s.enrich(ctx, v, window)

	log.Debug().
		Int64("viewer_id", v.UserID).
		Int("page", page).
		Int("size", size).
		Int64("total", total).
		Int("window", len(window)).
		Msg("feed assembled")

	return domain.FeedPage{
		Items:         items,
		Page:          page,
		Size:          size,
		TotalElements: total,
		TotalPages:    totalPages,
		Last:          last,
	}, nil
}

// followedSet resolves and dedupes the viewer's follow list
// a follow-graph outage yields an empty feed, not a failed request
func (s *Svc) followedSet(ctx context.Context, v domain.Viewer) []int64 {
	ids, err := s.follows.Following(ctx, v)
	if err != nil {
		logger.C(ctx).Warn().Err(err).
			Str("dependency", "follows").
			Int64("viewer_id", v.UserID).
			Msg("follow graph unavailable, serving empty feed")
		return nil
	}
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// candidateTimeline fans out one post-window fetch per author, then merges
// into the deterministic (createdAt, id) descending order. Each goroutine
// writes only its own slot; the sort runs single-threaded after the join.
func (s *Svc) candidateTimeline(ctx context.Context, v domain.Viewer, authors []int64) []domain.RawPost {
	log := logger.C(ctx)
	slots := make([][]domain.RawPost, len(authors))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.FanoutLimit)
	for i, authorID := range authors {
		g.Go(func() error {
			posts, totalCount, err := s.posts.PostsByAuthor(gctx, v, authorID, 0, s.cfg.AuthorWindow)
			if err != nil {
				log.Warn().Err(err).
					Str("dependency", "posts").
					Int64("author_id", authorID).
					Msg("author posts unavailable, omitting contribution")
				return nil
			}
			if totalCount > int64(s.cfg.AuthorWindow) {
				log.Warn().
					Int64("author_id", authorID).
					Int64("total", totalCount).
					Int("window", s.cfg.AuthorWindow).
					Msg("author window truncated older posts")
			}
			slots[i] = posts
			return nil
		})
	}
	_ = g.Wait() // goroutines never return errors, failures degrade above

	var timeline []domain.RawPost
	for _, posts := range slots {
		timeline = append(timeline, posts...)
	}
	sort.Slice(timeline, func(i, j int) bool { return domain.Less(timeline[i], timeline[j]) })
	return timeline
}

func emptyPage(page, size int) domain.FeedPage {
	return domain.FeedPage{
		Items: []domain.EnrichedPost{},
		Page:  page,
		Size:  size,
		Last:  true,
	}
}
