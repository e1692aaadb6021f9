package networking

// StatusClass buckets an HTTP status code by its hundreds digit.
type StatusClass int

// Status classes. StatusUnknown covers every code outside 100-599.
const (
	StatusUnknown StatusClass = iota
	StatusInfo
	StatusSuccess
	StatusRedirect
	StatusClientError
	StatusServerError
)

// ClassifyStatus maps a numeric status code to its class. It is total over
// all integers: codes outside 100-599 classify as StatusUnknown.
func ClassifyStatus(code int) StatusClass {
	switch {
	case code >= 100 && code <= 199:
		return StatusInfo
	case code >= 200 && code <= 299:
		return StatusSuccess
	case code >= 300 && code <= 399:
		return StatusRedirect
	case code >= 400 && code <= 499:
		return StatusClientError
	case code >= 500 && code <= 599:
		return StatusServerError
	default:
		return StatusUnknown
	}
}

// String returns a string representation of the status class.
func (c StatusClass) String() string {
	switch c {
	case StatusInfo:
		return "informational"
	case StatusSuccess:
		return "success"
	case StatusRedirect:
		return "redirect"
	case StatusClientError:
		return "client error"
	case StatusServerError:
		return "server error"
	default:
		return "unknown"
	}
}

// StatusAction tells the response dispatcher what to do when a response's
// status class has an entry in the handler table: decode the body into the
// target value, or fail with the class's associated error kind.
type StatusAction int

const (
	// ActionFail fails the request with the class's associated error kind.
	ActionFail StatusAction = iota

	// ActionDecode decodes the response body into the target value, even for
	// classes that would fail by default.
	ActionDecode
)

// String returns a string representation of the action.
func (a StatusAction) String() string {
	if a == ActionDecode {
		return "decode"
	}
	return "fail"
}

// StatusHandlers overrides the dispatcher's per-class behavior. Classes
// without an entry keep the defaults: Success decodes, ClientError fails with
// ErrBadRequest, ServerError fails with ErrServerError, and everything else
// fails with ErrUnknown. Unclassifiable status codes always fail with
// ErrUnknown regardless of the table.
type StatusHandlers map[StatusClass]StatusAction
