package tasksdk

import (
	"context"
	"net/http"
)

// Register creates a local account and returns a session for it.
func (c *SDKClient) Register(ctx context.Context, req RegisterRequest) (*Session, error) {
	return c.authenticate(ctx, "/api/auth/register", req, http.StatusCreated)
}

// Login signs in with email and password.
func (c *SDKClient) Login(ctx context.Context, req LoginRequest) (*Session, error) {
	return c.authenticate(ctx, "/api/auth/login", req, http.StatusOK)
}

// Logout acknowledges a sign-out. Tokens are stateless, so the caller is
// expected to discard its own copy.
func (c *SDKClient) Logout(ctx context.Context) error {
	resp, err := c.doRequest(ctx, http.MethodPost, "/api/auth/logout", "", nil)
	if err != nil {
		return err
	}
	_, err = decodeEnvelope[any](resp, http.StatusOK)
	return err
}

func (c *SDKClient) authenticate(ctx context.Context, path string, body any, expectedStatus int) (*Session, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, path, "", body)
	if err != nil {
		return nil, err
	}

	env, err := decodeEnvelope[AuthData](resp, expectedStatus)
	if err != nil {
		return nil, err
	}

	return &Session{client: c, token: env.Data.Token, user: env.Data.User}, nil
}
