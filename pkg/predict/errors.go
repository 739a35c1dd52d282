package predict

import (
	"errors"
	"fmt"
	"strings"
)

// GenericMessage is shown whenever a failure carries no usable server message.
const GenericMessage = "An error occurred"

var (
	// ErrMalformedResponse marks a 2xx response whose body is not a prediction.
	ErrMalformedResponse = errors.New("predict: malformed response body")
	// ErrNilClient guards calls on a nil *Client.
	ErrNilClient = errors.New("predict: client is nil")
)

// ServerError reports a non-2xx response whose body carried an "error" string.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("predict: server responded %d: %s", e.StatusCode, e.Message)
}

// TransportError reports every failure without structured detail: unreachable
// host, a body that cannot be decoded, or a non-2xx status without a usable
// "error" field.
type TransportError struct {
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("predict: transport failure (status %d): %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("predict: transport failure: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Message converts a failure into the single human-readable string shown to
// the user: the server supplied message when present, GenericMessage
// otherwise. A nil error yields "".
func Message(err error) string {
	if err == nil {
		return ""
	}
	var serverErr *ServerError
	if errors.As(err, &serverErr) && strings.TrimSpace(serverErr.Message) != "" {
		return serverErr.Message
	}
	return GenericMessage
}
