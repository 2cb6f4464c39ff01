// Package domain holds feed types and ports
package domain

import "time"

// Viewer identifies the requesting user and carries the bearer credential
// forwarded to every upstream call. Lives for exactly one request.
type Viewer struct {
	UserID int64
	Token  string
}

// RawPost is a post as the content service returns it, immutable once fetched
type RawPost struct {
	ID        int64
	AuthorID  int64
	Content   string
	MediaURL  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Identity is the display identity of an author
type Identity struct {
	DisplayName string
	AvatarURL   *string
}

// UnknownAuthor is substituted when the identity service has no answer
var UnknownAuthor = Identity{DisplayName: "Unknown"}

// EnrichedPost is a RawPost plus best-effort annotations. Enrichment fields
// default to zero/false/sentinel when their source is unavailable; they are
// never required for pagination correctness.
type EnrichedPost struct {
	RawPost
	AuthorName    string
	AuthorAvatar  *string
	LikeCount     int64
	CommentCount  int64
	LikedByViewer bool
}

// FeedPage is one page of a viewer's timeline. Totals are computed over the
// full candidate timeline, not the enriched window.
type FeedPage struct {
	Items         []EnrichedPost
	Page          int
	Size          int
	TotalElements int64
	TotalPages    int
	Last          bool
}

// Less reports the candidate-timeline order: createdAt descending with ties
// broken by id descending so the total order is deterministic under
// concurrent writes sharing a timestamp.
func Less(a, b RawPost) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.ID > b.ID
}
