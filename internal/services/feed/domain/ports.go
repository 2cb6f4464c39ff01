package domain

import "context"

// The five upstream capabilities the aggregator composes. One concrete
// adapter per dependency lives in internal/upstream; tests substitute fakes.
// Adapters surface transport failures as errors; the aggregator owns the
// degrade-to-default policy so a dead upstream can never fail a feed read.

// FollowGraphPort resolves a viewer to the ids they follow
type FollowGraphPort interface {
	Following(ctx context.Context, v Viewer) ([]int64, error)
}

// ContentPort resolves an author to a window of their non-deleted posts
// along with the author's total post count
type ContentPort interface {
	PostsByAuthor(ctx context.Context, v Viewer, authorID int64, page, size int) ([]RawPost, int64, error)
}

// ReactionsPort resolves like counts and the viewer's own reaction flag
type ReactionsPort interface {
	BatchLikeCounts(ctx context.Context, v Viewer, postIDs []int64) (map[int64]int64, error)
	LikedByViewer(ctx context.Context, v Viewer, postID int64) (bool, error)
}

// DiscussionsPort resolves a post to its comment count
type DiscussionsPort interface {
	CommentCount(ctx context.Context, v Viewer, postID int64) (int64, error)
}

// IdentityPort resolves an author id to display identity
// a missing profile is an error (ErrNotFound), never an empty Identity
type IdentityPort interface {
	Profile(ctx context.Context, v Viewer, userID int64) (Identity, error)
}

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Feed(ctx context.Context, v Viewer, page, size int) (FeedPage, error)
}
