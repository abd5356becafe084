package tasksdk

import (
	"context"
	"net/http"
)

// GetLiveness checks if the service is alive.
func (c *SDKClient) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	return c.probe(ctx, "/livez")
}

// GetReadiness checks if the service is ready.
func (c *SDKClient) GetReadiness(ctx context.Context) (*HealthResponse, error) {
	return c.probe(ctx, "/readyz")
}

// GetServerHealth calls GET /api/health.
func (c *SDKClient) GetServerHealth(ctx context.Context) (*ServerHealth, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/api/health", "", nil)
	if err != nil {
		return nil, err
	}

	env, err := decodeEnvelope[ServerHealth](resp, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &env.Data, nil
}

func (c *SDKClient) probe(ctx context.Context, path string) (*HealthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, path, "", nil)
	if err != nil {
		return nil, err
	}

	var health HealthResponse
	if err := decodeJSON(resp, &health, http.StatusOK); err != nil {
		return nil, err
	}
	return &health, nil
}
