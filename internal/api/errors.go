package api

import "errors"

// Kind classifies a failed API call so callers can tell connectivity
// problems apart from server-reported failures.
type Kind int

const (
	// KindServer is a non-2xx response carrying a server-supplied message.
	KindServer Kind = iota
	// KindNetwork is a transport failure: no usable response was received.
	KindNetwork
	// KindDecode is a response whose body could not be decoded as the
	// expected JSON envelope.
	KindDecode
	// KindSessionExpired is a 401 response. The server's own message is
	// deliberately discarded; a 401 always means "re-authenticate".
	KindSessionExpired
)

const (
	// SessionExpiredMessage is the fixed user-facing text for every 401,
	// regardless of what the server body contained.
	SessionExpiredMessage = "Your session has expired. Please log in again."

	genericErrorMessage = "An error occurred"
	networkErrorMessage = "A network error occurred"
)

// Error is the uniform failure shape produced by the request dispatcher.
// Message is always safe to show to a user.
type Error struct {
	Kind    Kind
	Status  int // HTTP status code, 0 when no response was received
	Message string
	Err     error // underlying cause, when any
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

// IsSessionExpired reports whether err is a 401 session-expired failure.
func IsSessionExpired(err error) bool { return hasKind(err, KindSessionExpired) }

// IsNetwork reports whether err is a transport-level failure.
func IsNetwork(err error) bool { return hasKind(err, KindNetwork) }

// IsDecode reports whether err is a malformed-response failure.
func IsDecode(err error) bool { return hasKind(err, KindDecode) }

func hasKind(err error, k Kind) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == k
}
