package domain

import "time"

// Wire DTOs for the feed surface. Field names match what the web client and
// the gateway already consume, so they change only with a wire version bump.

// PageableInfo echoes the requested page window
type PageableInfo struct {
	PageNumber int `json:"pageNumber" example:"0"`
	PageSize   int `json:"pageSize"   example:"20"`
}

// EnrichedPostResponse is one feed item on the wire
// swagger:model
type EnrichedPostResponse struct {
	ID                 int64     `json:"id"                 example:"42"`
	UserID             int64     `json:"userId"             example:"7"`
	Username           string    `json:"username"           example:"ada"`
	UserAvatarURL      *string   `json:"userAvatarUrl"`
	Content            string    `json:"content"            example:"hello world"`
	MediaURL           string    `json:"mediaUrl,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
	LikeCount          int64     `json:"likeCount"          example:"3"`
	CommentCount       int64     `json:"commentCount"       example:"1"`
	LikedByCurrentUser bool      `json:"likedByCurrentUser" example:"false"`
}

// FeedResponse is the assembled page on the wire
// swagger:model
type FeedResponse struct {
	Content       []EnrichedPostResponse `json:"content"`
	Pageable      PageableInfo           `json:"pageable"`
	TotalElements int64                  `json:"totalElements" example:"3"`
	TotalPages    int                    `json:"totalPages"    example:"2"`
	Last          bool                   `json:"last"          example:"false"`
}

// ToResponse maps a FeedPage to its wire form
func (p FeedPage) ToResponse() FeedResponse {
	items := make([]EnrichedPostResponse, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, EnrichedPostResponse{
			ID:                 it.ID,
			UserID:             it.AuthorID,
			Username:           it.AuthorName,
			UserAvatarURL:      it.AuthorAvatar,
			Content:            it.Content,
			MediaURL:           it.MediaURL,
			CreatedAt:          it.CreatedAt,
			UpdatedAt:          it.UpdatedAt,
			LikeCount:          it.LikeCount,
			CommentCount:       it.CommentCount,
			LikedByCurrentUser: it.LikedByViewer,
		})
	}
	return FeedResponse{
		Content:       items,
		Pageable:      PageableInfo{PageNumber: p.Page, PageSize: p.Size},
		TotalElements: p.TotalElements,
		TotalPages:    p.TotalPages,
		Last:          p.Last,
	}
}
