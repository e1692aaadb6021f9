package networking

import "net/http"

// QueryParam is a single query-string pair. Parameter order is preserved when
// the pairs are attached to the request URL.
type QueryParam struct {
	Key   string
	Value string
}

type methodKind int

const (
	methodGet methodKind = iota
	methodPost
)

// Method is the HTTP method for a request together with its payload: query
// parameters for GET, a url-encoded form body for POST. Construct values with
// Get or Post; the zero value is a GET with no parameters.
type Method struct {
	kind  methodKind
	query []QueryParam
	form  map[string]string
}

// Get returns a GET method carrying the given query parameters, in order.
func Get(params ...QueryParam) Method {
	return Method{kind: methodGet, query: params}
}

// Post returns a POST method whose body is the given form serialized as
// application/x-www-form-urlencoded. A nil or empty form yields no body.
func Post(form map[string]string) Method {
	return Method{kind: methodPost, form: form}
}

// Verb returns the canonical verb string, "GET" or "POST".
func (m Method) Verb() string {
	if m.kind == methodPost {
		return http.MethodPost
	}
	return http.MethodGet
}

// Equal reports whether two methods have the same variant and equal payloads.
// GET parameter order is significant; POST form order is not.
func (m Method) Equal(other Method) bool {
	if m.kind != other.kind {
		return false
	}
	switch m.kind {
	case methodGet:
		if len(m.query) != len(other.query) {
			return false
		}
		for i, p := range m.query {
			if other.query[i] != p {
				return false
			}
		}
	case methodPost:
		if len(m.form) != len(other.form) {
			return false
		}
		for k, v := range m.form {
			ov, ok := other.form[k]
			if !ok || ov != v {
				return false
			}
		}
	}
	return true
}
