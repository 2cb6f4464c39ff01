package upstream

import (
	"context"
	"fmt"

	"feedmill/internal/services/feed/domain"
)

// UsersClient adapts the user service to domain.IdentityPort
type UsersClient struct{ c *Client }

// NewUsers builds the identity adapter
func NewUsers(c *Client) *UsersClient { return &UsersClient{c: c} }

type userProfileResponse struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	AvatarURL *string `json:"avatarUrl"`
}

// Profile returns the display identity for a user
// a missing profile surfaces as ErrNotFound and the caller substitutes the
// sentinel identity
func (u *UsersClient) Profile(ctx context.Context, v domain.Viewer, userID int64) (domain.Identity, error) {
	var out userProfileResponse
	if err := u.c.GetJSON(ctx, fmt.Sprintf("/api/users/user/%d", userID), v.Token, &out); err != nil {
		return domain.Identity{}, err
	}
	return domain.Identity{DisplayName: out.Name, AvatarURL: out.AvatarURL}, nil
}
