package tasksdk

import (
	"context"
	"net/http"
)

// Session carries a bearer token for authenticated operations. Tokens are
// not refreshed; when one expires, sign in again.
type Session struct {
	client *SDKClient
	token  string
	user   User
}

// Token returns the session's bearer token.
func (s *Session) Token() string { return s.token }

// User returns the account the session was created for. It is empty for
// sessions built with NewSession until Verify or Profile is called.
func (s *Session) User() User { return s.user }

// Verify checks the token with the server and refreshes the cached user.
func (s *Session) Verify(ctx context.Context) (*User, error) {
	return s.fetchUser(ctx, http.MethodGet, "/api/auth/verify", nil)
}

// Profile returns the caller's account.
func (s *Session) Profile(ctx context.Context) (*User, error) {
	return s.fetchUser(ctx, http.MethodGet, "/api/auth/profile", nil)
}

// UpdateProfile changes the caller's name and/or avatar.
func (s *Session) UpdateProfile(ctx context.Context, req ProfileUpdateRequest) (*User, error) {
	return s.fetchUser(ctx, http.MethodPut, "/api/auth/profile", req)
}

func (s *Session) fetchUser(ctx context.Context, method, path string, body any) (*User, error) {
	resp, err := s.client.doRequest(ctx, method, path, s.token, body)
	if err != nil {
		return nil, err
	}

	env, err := decodeEnvelope[UserData](resp, http.StatusOK)
	if err != nil {
		return nil, err
	}

	s.user = env.Data.User
	return &env.Data.User, nil
}
