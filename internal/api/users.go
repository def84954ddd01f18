package api

import (
	"context"
	"fmt"

	"github.com/conectavoz/conectavoz/internal/models"
)

// ListUsers returns every user account. Admin only, enforced server-side.
func (c *Client) ListUsers(ctx context.Context) ([]models.User, error) {
	var page Page[models.User]
	if err := c.get(ctx, "/users/", &page); err != nil {
		return nil, err
	}
	return page.Results, nil
}

// NewUser carries the fields for an admin-created account.
type NewUser struct {
	Username   string      `json:"username"`
	Email      string      `json:"email"`
	Password   string      `json:"password"`
	FirstName  string      `json:"first_name"`
	LastName   string      `json:"last_name"`
	Role       models.Role `json:"role"`
	Department string      `json:"department,omitempty"`
	Team       string      `json:"team,omitempty"`
}

// CreateUser provisions an account.
func (c *Client) CreateUser(ctx context.Context, data NewUser) (*models.User, error) {
	var user models.User
	if err := c.post(ctx, "/users/", data, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser replaces a user record wholesale.
func (c *Client) UpdateUser(ctx context.Context, userID int64, user models.User) (*models.User, error) {
	var updated models.User
	if err := c.put(ctx, fmt.Sprintf("/users/%d/", userID), user, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteUser removes an account.
func (c *Client) DeleteUser(ctx context.Context, userID int64) error {
	return c.delete(ctx, fmt.Sprintf("/users/%d/", userID))
}

// UserRoles returns the assignable role names.
func (c *Client) UserRoles(ctx context.Context) ([]string, error) {
	var roles []string
	if err := c.get(ctx, "/users/roles/", &roles); err != nil {
		return nil, err
	}
	return roles, nil
}

// BulkUpdateUsers applies the same patch to several accounts at once.
func (c *Client) BulkUpdateUsers(ctx context.Context, userIDs []int64, update map[string]any) error {
	body := map[string]any{
		"user_ids":    userIDs,
		"update_data": update,
	}
	return c.post(ctx, "/users/bulk-update/", body, nil)
}
