package networking

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
	"unicode/utf8"
)

// OutboundRequest is a fully formed request ready for a Transport: final URL,
// canonical verb, headers, and optional body bytes. One is built fresh per
// call and never retained afterwards.
type OutboundRequest struct {
	URL     string
	Method  string
	Headers map[string]string
	Body    []byte
}

// buildRequest assembles an OutboundRequest from the method, the endpoint's
// raw URL, and caller headers. It is a pure function of its inputs.
//
// GET query parameters are appended to the URL's query component in caller
// order. A POST form is serialized as application/x-www-form-urlencoded with
// keys sorted for a deterministic encoding; an empty form yields no body.
// Headers are attached verbatim, last write wins on duplicate keys.
func buildRequest(method Method, rawURL string, headers map[string]string) (*OutboundRequest, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrMalformedEndpoint, rawURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrMalformedEndpoint, rawURL)
	}

	if method.kind == methodGet && len(method.query) > 0 {
		q := encodeQuery(method.query)
		if u.RawQuery != "" {
			u.RawQuery += "&" + q
		} else {
			u.RawQuery = q
		}
	}

	req := &OutboundRequest{
		URL:     u.String(),
		Method:  method.Verb(),
		Headers: make(map[string]string, len(headers)+1),
	}
	for k, v := range headers {
		req.Headers[k] = v
	}

	if method.kind == methodPost && len(method.form) > 0 {
		body, err := encodeForm(method.form)
		if err != nil {
			return nil, err
		}
		req.Body = body
		if _, ok := req.Headers["Content-Type"]; !ok {
			req.Headers["Content-Type"] = "application/x-www-form-urlencoded"
		}
	}

	return req, nil
}

// encodeQuery url-encodes the pairs preserving caller order. url.Values would
// sort by key, so the pairs are written out directly.
func encodeQuery(params []QueryParam) string {
	var b strings.Builder
	for i, p := range params {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.Value))
	}
	return b.String()
}

// encodeForm serializes the form as key=value pairs joined with '&'. Keys and
// values must be valid UTF-8.
func encodeForm(form map[string]string) ([]byte, error) {
	keys := make([]string, 0, len(form))
	for k, v := range form {
		if !utf8.ValidString(k) || !utf8.ValidString(v) {
			return nil, fmt.Errorf("%w: form field %q is not valid UTF-8", ErrInvalidBody, k)
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(k))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(form[k]))
	}
	return []byte(b.String()), nil
}
