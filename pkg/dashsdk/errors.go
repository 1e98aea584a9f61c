package dashsdk

import "fmt"

// FieldError is one field-level validation failure from the server's 400
// envelope.
type FieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// APIError is a non-2xx response decoded from the server's error envelope.
// Message carries the server's text verbatim so callers can surface it
// without rewording.
type APIError struct {
	StatusCode int
	Message    string
	Fields     []FieldError
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api error %d", e.StatusCode)
}

// IsUnauthorized reports whether the server rejected the credentials or
// session outright.
func (e *APIError) IsUnauthorized() bool { return e.StatusCode == 401 }

// IsForbidden reports whether the caller's role is not allowed the operation.
func (e *APIError) IsForbidden() bool { return e.StatusCode == 403 }

// IsNotFound reports whether the resource does not exist.
func (e *APIError) IsNotFound() bool { return e.StatusCode == 404 }
