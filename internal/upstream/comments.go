package upstream

import (
	"context"
	"fmt"

	"feedmill/internal/services/feed/domain"
)

// CommentsClient adapts the comment service to domain.DiscussionsPort
type CommentsClient struct{ c *Client }

// NewComments builds the discussions adapter
func NewComments(c *Client) *CommentsClient { return &CommentsClient{c: c} }

type commentListResponse struct {
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
}

// CommentCount returns the comment total for a post
// asks for page 0 size 1 of the comment list and keeps only totalElements
func (d *CommentsClient) CommentCount(ctx context.Context, v domain.Viewer, postID int64) (int64, error) {
	path := fmt.Sprintf("/api/comments/post/%d%s", postID, pageQS(0, 1))
	var out commentListResponse
	if err := d.c.GetJSON(ctx, path, v.Token, &out); err != nil {
		return 0, err
	}
	return out.TotalElements, nil
}
