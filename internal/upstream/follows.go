package upstream

import (
	"context"
	"fmt"

	"feedmill/internal/services/feed/domain"
)

// followPageSize bounds one follow-graph read; the follow service pages its
// answer and the aggregator treats the first window as the followed set
const followPageSize = 1000

// FollowsClient adapts the follow service to domain.FollowGraphPort
type FollowsClient struct{ c *Client }

// NewFollows builds the follow-graph adapter
func NewFollows(c *Client) *FollowsClient { return &FollowsClient{c: c} }

type followingListResponse struct {
	FollowingIDs  []int64 `json:"followingIds"`
	Page          int     `json:"page"`
	Size          int     `json:"size"`
	TotalElements int64   `json:"totalElements"`
	TotalPages    int     `json:"totalPages"`
}

// Following returns the ids the viewer follows
func (f *FollowsClient) Following(ctx context.Context, v domain.Viewer) ([]int64, error) {
	path := fmt.Sprintf("/api/follows/%d/following%s", v.UserID, pageQS(0, followPageSize))
	var out followingListResponse
	if err := f.c.GetJSON(ctx, path, v.Token, &out); err != nil {
		return nil, err
	}
	return out.FollowingIDs, nil
}
