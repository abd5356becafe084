package tasksdk

import (
	"net/http"
	"strings"
	"time"
)

// SDKClient is a client for the taskboard API. It provides the
// unauthenticated operations and creates Sessions.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a new taskboard client.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
			// The Google sign-in endpoints answer with redirects the caller
			// wants to inspect rather than follow.
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

// NewSession wraps a token obtained elsewhere.
func (c *SDKClient) NewSession(token string) *Session {
	return &Session{client: c, token: token}
}
