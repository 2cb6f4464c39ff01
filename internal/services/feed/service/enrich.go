package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"feedmill/internal/platform/logger"
	"feedmill/internal/services/feed/domain"
)

// enrich attaches like counts, comment counts, the viewer's reaction flag,
// and author identity to the already-paginated window. All lookups are
// scoped to the window, so fan-out here is proportional to page size.
// Joins happen by post id / author id, never by response position, and a
// failed lookup leaves the item in place with its zero-value annotation.
func (s *Svc) enrich(ctx context.Context, v domain.Viewer, window []domain.RawPost) []domain.EnrichedPost {
	if len(window) == 0 {
		return []domain.EnrichedPost{}
	}
	log := logger.C(ctx)

	postIDs := make([]int64, len(window))
	for i, p := range window {
		postIDs[i] = p.ID
	}

	// one batched call covers every like count on the page
	likeCounts, err := s.likes.BatchLikeCounts(ctx, v, postIDs)
	if err != nil {
		log.Warn().Err(err).
			Str("dependency", "likes").
			Ints64("post_ids", postIDs).
			Msg("batch like counts unavailable, defaulting to zero")
		likeCounts = map[int64]int64{}
	}

	// per-post flags and counts, one slot per window index
	liked := make([]bool, len(window))
	comments := make([]int64, len(window))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.FanoutLimit)
	for i, p := range window {
		g.Go(func() error {
			ok, err := s.likes.LikedByViewer(gctx, v, p.ID)
			if err != nil {
				log.Warn().Err(err).
					Str("dependency", "likes").
					Int64("post_id", p.ID).
					Msg("liked check unavailable, defaulting to false")
				return nil
			}
			liked[i] = ok
			return nil
		})
		g.Go(func() error {
			n, err := s.comments.CommentCount(gctx, v, p.ID)
			if err != nil {
				log.Warn().Err(err).
					Str("dependency", "comments").
					Int64("post_id", p.ID).
					Msg("comment count unavailable, defaulting to zero")
				return nil
			}
			comments[i] = n
			return nil
		})
	}

	// identity once per distinct author on the page
	authors := distinctAuthors(window)
	idents := make([]domain.Identity, len(authors))
	for i, authorID := range authors {
		g.Go(func() error {
			ident, err := s.users.Profile(gctx, v, authorID)
			if err != nil {
				log.Warn().Err(err).
					Str("dependency", "users").
					Int64("author_id", authorID).
					Msg("author identity unavailable, using sentinel")
				idents[i] = domain.UnknownAuthor
				return nil
			}
			idents[i] = ident
			return nil
		})
	}
	_ = g.Wait()

	identByAuthor := make(map[int64]domain.Identity, len(authors))
	for i, authorID := range authors {
		identByAuthor[authorID] = idents[i]
	}

	out := make([]domain.EnrichedPost, len(window))
	for i, p := range window {
		ident, ok := identByAuthor[p.AuthorID]
		if !ok {
			ident = domain.UnknownAuthor
		}
		out[i] = domain.EnrichedPost{
			RawPost:       p,
			AuthorName:    ident.DisplayName,
			AuthorAvatar:  ident.AvatarURL,
			LikeCount:     likeCounts[p.ID], // missing entries default to 0
			CommentCount:  comments[i],
			LikedByViewer: liked[i],
		}
	}
	return out
}

func distinctAuthors(window []domain.RawPost) []int64 {
	seen := make(map[int64]struct{}, len(window))
	out := make([]int64, 0, len(window))
	for _, p := range window {
		if _, dup := seen[p.AuthorID]; dup {
			continue
		}
		seen[p.AuthorID] = struct{}{}
		out = append(out, p.AuthorID)
	}
	return out
}
