package api

import (
	"context"

	"github.com/conectavoz/conectavoz/internal/models"
)

// Credentials are the login form fields.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterData are the self-registration form fields.
type RegisterData struct {
	Username   string `json:"username"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Department string `json:"department,omitempty"`
	Team       string `json:"team,omitempty"`
}

type authResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// Login exchanges credentials for a token and the user record.
func (c *Client) Login(ctx context.Context, creds Credentials) (*models.User, string, error) {
	var resp authResponse
	if err := c.post(ctx, "/auth/login/", creds, &resp); err != nil {
		return nil, "", err
	}
	return &resp.User, resp.Token, nil
}

// Register creates an account; the backend logs the new user in and
// returns a token, same contract as Login.
func (c *Client) Register(ctx context.Context, data RegisterData) (*models.User, string, error) {
	var resp authResponse
	if err := c.post(ctx, "/auth/register/", data, &resp); err != nil {
		return nil, "", err
	}
	return &resp.User, resp.Token, nil
}

// Logout tells the backend to discard the server-side token.
func (c *Client) Logout(ctx context.Context) error {
	return c.post(ctx, "/auth/logout/", nil, nil)
}

// CurrentUser fetches the user record for the attached token. A stale or
// revoked token surfaces as an *HTTPError with status 401.
func (c *Client) CurrentUser(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.get(ctx, "/auth/user/", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ProfileUpdate carries the editable profile fields.
type ProfileUpdate struct {
	Email      string `json:"email,omitempty"`
	FirstName  string `json:"first_name,omitempty"`
	LastName   string `json:"last_name,omitempty"`
	Department string `json:"department,omitempty"`
	Team       string `json:"team,omitempty"`
}

// UpdateProfile replaces the current user's profile and returns the
// updated record.
func (c *Client) UpdateProfile(ctx context.Context, update ProfileUpdate) (*models.User, error) {
	var user models.User
	if err := c.put(ctx, "/auth/profile/", update, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ChangePassword rotates the current user's password.
func (c *Client) ChangePassword(ctx context.Context, current, next string) error {
	body := map[string]string{
		"current_password": current,
		"new_password":     next,
	}
	return c.post(ctx, "/auth/change-password/", body, nil)
}
