package upstream

import (
	"context"
	"fmt"
	"strconv"

	"feedmill/internal/services/feed/domain"
)

// LikesClient adapts the like service to domain.ReactionsPort
type LikesClient struct{ c *Client }

// NewLikes builds the reactions adapter
func NewLikes(c *Client) *LikesClient { return &LikesClient{c: c} }

type batchLikeCountRequest struct {
	PostIDs []int64 `json:"postIds"`
}

// counts come back keyed by the post id's decimal string form
type batchLikeCountResponse struct {
	Counts map[string]int64 `json:"counts"`
}

type likeCheckResponse struct {
	PostID int64 `json:"postId"`
	Liked  bool  `json:"liked"`
}

// BatchLikeCounts returns like counts for all given posts in one call
// ids missing from the answer are simply absent from the map
func (l *LikesClient) BatchLikeCounts(
	ctx context.Context, v domain.Viewer, postIDs []int64,
) (map[int64]int64, error) {
	var out batchLikeCountResponse
	err := l.c.PostJSON(ctx, "/api/likes/batch/counts", v.Token, batchLikeCountRequest{PostIDs: postIDs}, &out)
	if err != nil {
		return nil, err
	}
	counts := make(map[int64]int64, len(out.Counts))
	for k, n := range out.Counts {
		id, err := strconv.ParseInt(k, 10, 64)
		if err != nil {
			continue // unparseable key, drop the entry and let the default apply
		}
		counts[id] = n
	}
	return counts, nil
}

// LikedByViewer reports whether the viewer (from the credential) liked a post
func (l *LikesClient) LikedByViewer(ctx context.Context, v domain.Viewer, postID int64) (bool, error) {
	var out likeCheckResponse
	if err := l.c.GetJSON(ctx, fmt.Sprintf("/api/likes/%d/check", postID), v.Token, &out); err != nil {
		return false, err
	}
	return out.Liked, nil
}
