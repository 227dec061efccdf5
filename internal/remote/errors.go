package remote

import "errors"

var (
	// ErrTimeout marks a call that exceeded the client-side timeout.
	ErrTimeout = errors.New("request timed out")
	// ErrUnreachable marks a transport failure with no response at all.
	ErrUnreachable = errors.New("backend unreachable")
)

// APIError is an application-level failure: the backend answered with
// success=false. The message is the server's and is shown to the user
// verbatim.
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return "request failed"
	}
	return e.Message
}

// Connectivity reports whether err means the backend could not be
// reached at all, as opposed to answering with a failure. Callers use
// it to skip follow-up requests that would just time out again.
func Connectivity(err error) bool {
	return errors.Is(err, ErrTimeout) || errors.Is(err, ErrUnreachable)
}

// Humanize converts any error from this package into the one string the
// view renders. All remote errors funnel through here; nothing
// propagates to the rendering layer as a raw error.
func Humanize(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *APIError
	switch {
	case errors.As(err, &apiErr):
		return apiErr.Message
	case errors.Is(err, ErrTimeout):
		return "Request timed out - the backend may be unreachable. Please try again."
	case errors.Is(err, ErrUnreachable):
		return "Unable to connect to the server. Please check your connection."
	}
	return "An unexpected error occurred"
}
