package upstream

import (
	"context"
	"fmt"
	"time"

	"feedmill/internal/services/feed/domain"
)

// PostsClient adapts the post service to domain.ContentPort
type PostsClient struct{ c *Client }

// NewPosts builds the content adapter
func NewPosts(c *Client) *PostsClient { return &PostsClient{c: c} }

type postWire struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Content   string    `json:"content"`
	MediaURL  string    `json:"mediaUrl"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type postListResponse struct {
	Posts         []postWire `json:"posts"`
	Page          int        `json:"page"`
	Size          int        `json:"size"`
	TotalElements int64      `json:"totalElements"`
	TotalPages    int        `json:"totalPages"`
}

// PostsByAuthor returns one window of an author's non-deleted posts in the
// author's own reverse-chronological order, plus the author's total count
func (p *PostsClient) PostsByAuthor(
	ctx context.Context, v domain.Viewer, authorID int64, page, size int,
) ([]domain.RawPost, int64, error) {
	path := fmt.Sprintf("/api/posts/user/%d%s", authorID, pageQS(page, size))
	var out postListResponse
	if err := p.c.GetJSON(ctx, path, v.Token, &out); err != nil {
		return nil, 0, err
	}
	posts := make([]domain.RawPost, 0, len(out.Posts))
	for _, w := range out.Posts {
		posts = append(posts, domain.RawPost{
			ID:        w.ID,
			AuthorID:  w.UserID,
			Content:   w.Content,
			MediaURL:  w.MediaURL,
			CreatedAt: w.CreatedAt,
			UpdatedAt: w.UpdatedAt,
		})
	}
	return posts, out.TotalElements, nil
}
