package api

import "context"

// Health probes the backend's health endpoint. A nil error means the
// backend is reachable and answering.
func (c *Client) Health(ctx context.Context) error {
	return c.get(ctx, "/health/", nil)
}
