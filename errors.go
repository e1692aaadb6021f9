package networking

import (
	"errors"
	"fmt"
)

// ErrorKind categorizes a RequestError.
type ErrorKind int

// Error kinds for categorization.
const (
	// KindUnknown covers unclassifiable status codes, responses without a
	// status code, and unconfigured informational or redirect responses.
	KindUnknown ErrorKind = iota

	// KindBadRequest is a client-error (4xx) response with no handler
	// configured for the class.
	KindBadRequest

	// KindServerError is a server-error (5xx) response.
	KindServerError

	// KindDecoding is a response body that could not be decoded into the
	// target value, or an ActionFail handler on the client-error class.
	KindDecoding
)

// message returns the human-readable message owned by the kind.
func (k ErrorKind) message() string {
	switch k {
	case KindBadRequest:
		return "bad request"
	case KindServerError:
		return "server error"
	case KindDecoding:
		return "failed to decode response"
	default:
		return "unknown error"
	}
}

// String returns a machine-readable name for the kind.
func (k ErrorKind) String() string {
	switch k {
	case KindBadRequest:
		return "BAD_REQUEST"
	case KindServerError:
		return "SERVER_ERROR"
	case KindDecoding:
		return "DECODING"
	default:
		return "UNKNOWN"
	}
}

// RequestError is a classified request failure. The message belongs to the
// kind; Cause carries the underlying error for decode failures and is nil
// otherwise. It supports comparison via errors.Is against the kind sentinels
// and unwrapping via errors.Unwrap.
type RequestError struct {
	Kind  ErrorKind
	Cause error
}

// Error implements the error interface.
func (e *RequestError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("networking: %s: %v", e.Kind.message(), e.Cause)
	}
	return "networking: " + e.Kind.message()
}

// Unwrap returns the underlying error for error chain support.
func (e *RequestError) Unwrap() error { return e.Cause }

// Is matches any *RequestError of the same kind, so
// errors.Is(err, ErrBadRequest) works regardless of the carried cause.
func (e *RequestError) Is(target error) bool {
	t, ok := target.(*RequestError)
	return ok && t.Kind == e.Kind
}

// Sentinel RequestError values for use with errors.Is. These match on kind
// only.
var (
	ErrBadRequest  = &RequestError{Kind: KindBadRequest}
	ErrServerError = &RequestError{Kind: KindServerError}
	ErrDecoding    = &RequestError{Kind: KindDecoding}
	ErrUnknown     = &RequestError{Kind: KindUnknown}
)

// Sentinel errors for request construction and configuration. These are
// distinct from RequestError so callers can tell "could not build the
// request" from "the response failed".
var (
	// ErrMalformedEndpoint reports an endpoint that does not resolve to a
	// usable URL.
	ErrMalformedEndpoint = errors.New("networking: endpoint does not resolve to a valid URL")

	// ErrInvalidBody reports a POST form that cannot be encoded.
	ErrInvalidBody = errors.New("networking: request body cannot be encoded")

	// ErrInvalidTimeout reports a negative configured timeout.
	ErrInvalidTimeout = errors.New("networking: timeout must not be negative")
)

// AsRequestError extracts a *RequestError from an error chain. It returns
// false for construction failures and transport failures, which are not
// RequestErrors.
func AsRequestError(err error) (*RequestError, bool) {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr, true
	}
	return nil, false
}
