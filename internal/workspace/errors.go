package workspace

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound marks 404 responses so callers can render empty states
// instead of failures. Test with errors.Is.
var ErrNotFound = errors.New("not found")

// APIError is a non-2xx response from the workspace API. Message carries
// the server's own wording and is shown to the user verbatim.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("workspace API error (HTTP %d)", e.Status)
	}
	return e.Message
}

// Is lets errors.Is(err, ErrNotFound) match 404 API errors.
func (e *APIError) Is(target error) bool {
	return target == ErrNotFound && e.Status == http.StatusNotFound
}

// errorEnvelope is the wire shape of API failures. The backend sends
// {"error": "..."}; some middlewares wrap messages as {"message": "..."}.
type errorEnvelope struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (env *errorEnvelope) text() string {
	if env == nil {
		return ""
	}
	if env.Error != "" {
		return env.Error
	}
	return env.Message
}
