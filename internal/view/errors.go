package view

import (
	"errors"

	"github.com/studiowebux/careerguide/internal/api"
)

// ValidationError rejects input before any network call. The view ends in
// Failure and shows Message.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Hint declines input without treating it as an error: the view returns
// to Idle and shows Message.
type Hint struct {
	Message string
}

func (h *Hint) Error() string { return h.Message }

// Messages are the fixed texts one view shows around a request
type Messages struct {
	Loading   string
	Transport string
	Network   string
}

// failure picks the text for a failed fetch. Anything that is not a
// NetworkError reads as a transport failure.
func (m Messages) failure(err error) string {
	var validation *ValidationError
	if errors.As(err, &validation) {
		return validation.Message
	}
	if api.IsNetwork(err) {
		return m.Network
	}
	return m.Transport
}
