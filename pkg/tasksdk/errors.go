package tasksdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// APIError is returned for every non-2xx response.
type APIError struct {
	StatusCode int
	Message    string
	Errors     []FieldError
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("HTTP %d: %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}

// HasField reports whether the error lists a validation failure for field.
func (e *APIError) HasField(field string) bool {
	for _, fe := range e.Errors {
		if fe.Field == field {
			return true
		}
	}
	return false
}

// IsStatus reports whether err is an *APIError with the given status code.
func IsStatus(err error, code int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == code
}

// parseErrorResponse turns a non-2xx body into an *APIError, falling back to
// the status text when the body is not an envelope.
func parseErrorResponse(resp *http.Response, body []byte) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	var env Response[json.RawMessage]
	if err := json.Unmarshal(body, &env); err == nil {
		apiErr.Message = env.Message
		apiErr.Errors = env.Errors
	}
	return apiErr
}
