package tasksdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// url builds a complete URL by appending the path to the base URL.
func (c *SDKClient) url(path string) string {
	return c.BaseURL + path
}

// doRequest sends body, when non-nil, as JSON and sets a bearer token when
// token is non-empty.
func (c *SDKClient) doRequest(ctx context.Context, method, path, token string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path), reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	return resp, nil
}

// decodeEnvelope reads a JSON envelope and stores its data in target.
// Any status other than expectedStatus becomes an *APIError.
func decodeEnvelope[T any](resp *http.Response, expectedStatus int) (Response[T], error) {
	defer resp.Body.Close()

	var env Response[T]

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return env, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != expectedStatus {
		return env, parseErrorResponse(resp, bodyBytes)
	}

	if err := json.Unmarshal(bodyBytes, &env); err != nil {
		return env, fmt.Errorf("failed to decode response: %w", err)
	}
	return env, nil
}

// decodeJSON decodes a plain (non-envelope) JSON body such as the probes.
func decodeJSON(resp *http.Response, target any, expectedStatus int) error {
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != expectedStatus {
		return parseErrorResponse(resp, bodyBytes)
	}

	if err := json.Unmarshal(bodyBytes, target); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
