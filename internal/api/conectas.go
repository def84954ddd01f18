package api

import (
	"context"
	"fmt"

	"github.com/conectavoz/conectavoz/internal/models"
)

// ListConectas returns every user holding the Conecta role.
func (c *Client) ListConectas(ctx context.Context) ([]models.User, error) {
	var page Page[models.User]
	if err := c.get(ctx, "/connectas/", &page); err != nil {
		return nil, err
	}
	return page.Results, nil
}

// AvailableConectas returns Conectas currently accepting connections.
// A fetch failure is a failure; there is no fallback directory.
func (c *Client) AvailableConectas(ctx context.Context) ([]models.User, error) {
	var page Page[models.User]
	if err := c.get(ctx, "/connectas/available/", &page); err != nil {
		return nil, err
	}
	return page.Results, nil
}

// MyConecta returns the caller's assigned Conecta, or nil when none is
// chosen yet (the backend answers with a JSON null).
func (c *Client) MyConecta(ctx context.Context) (*models.User, error) {
	var user *models.User
	if err := c.get(ctx, "/connectas/my-connecta/", &user); err != nil {
		return nil, err
	}
	return user, nil
}

// ChooseConecta assigns the given Conecta to the caller.
func (c *Client) ChooseConecta(ctx context.Context, conectaID int64) error {
	body := map[string]int64{"connecta_id": conectaID}
	return c.post(ctx, "/connectas/choose/", body, nil)
}

// RequestConnection asks a Conecta for a private mentoring connection.
func (c *Client) RequestConnection(ctx context.Context, conectaID int64) (*models.Connection, error) {
	var conn models.Connection
	if err := c.post(ctx, fmt.Sprintf("/connectas/%d/request/", conectaID), nil, &conn); err != nil {
		return nil, err
	}
	return &conn, nil
}

// MyConnections lists the caller's connection requests, in both
// directions for users who are themselves Conectas.
func (c *Client) MyConnections(ctx context.Context) ([]models.Connection, error) {
	var page Page[models.Connection]
	if err := c.get(ctx, "/connectas/my-connections/", &page); err != nil {
		return nil, err
	}
	return page.Results, nil
}

// AcceptConnection accepts an incoming connection request.
func (c *Client) AcceptConnection(ctx context.Context, connectionID int64) error {
	return c.post(ctx, fmt.Sprintf("/connectas/connections/%d/accept/", connectionID), nil, nil)
}

// RejectConnection declines an incoming connection request.
func (c *Client) RejectConnection(ctx context.Context, connectionID int64) error {
	return c.post(ctx, fmt.Sprintf("/connectas/connections/%d/reject/", connectionID), nil, nil)
}
