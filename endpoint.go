package networking

// Endpoint identifies a request target. Implementations resolve to an
// absolute URL string; an identifier that does not resolve to a parseable URL
// fails request construction with ErrMalformedEndpoint.
//
// Callers typically define their endpoints as a small set of constants:
//
//	type catFactEndpoint string
//
//	func (e catFactEndpoint) URL() string { return "https://catfact.ninja" + string(e) }
//
//	const factEndpoint = catFactEndpoint("/fact")
type Endpoint interface {
	// URL returns the absolute URL for this endpoint.
	URL() string
}

// URLEndpoint is a plain URL string used directly as an Endpoint.
type URLEndpoint string

// URL implements Endpoint.
func (e URLEndpoint) URL() string { return string(e) }
