package networkingtest

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"

	networking "github.com/djb950/modern-networking"
)

// MockServer is a test HTTP server that records incoming requests for
// verification.
type MockServer struct {
	*httptest.Server

	mu       sync.Mutex
	requests []*RecordedRequest

	// ResponseFunc customizes responses per request. If nil, the server
	// answers 200 with an empty JSON object.
	ResponseFunc func(r *http.Request) (int, any)
}

// RecordedRequest is one HTTP request seen by the server.
type RecordedRequest struct {
	Method      string
	Path        string
	Query       string
	Body        []byte
	Header      http.Header
	ContentType string
}

// NewMockServer starts a mock server. Callers must Close it, typically via
// t.Cleanup.
func NewMockServer() *MockServer {
	ms := &MockServer{
		requests: make([]*RecordedRequest, 0),
	}

	ms.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)

		ms.mu.Lock()
		ms.requests = append(ms.requests, &RecordedRequest{
			Method:      r.Method,
			Path:        r.URL.Path,
			Query:       r.URL.RawQuery,
			Body:        body,
			Header:      r.Header.Clone(),
			ContentType: r.Header.Get("Content-Type"),
		})
		ms.mu.Unlock()

		status := http.StatusOK
		var response any = map[string]any{}
		if ms.ResponseFunc != nil {
			status, response = ms.ResponseFunc(r)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if response != nil {
			json.NewEncoder(w).Encode(response)
		}
	}))

	return ms
}

// Endpoint returns an Endpoint pointing at path on this server.
func (ms *MockServer) Endpoint(path string) networking.Endpoint {
	return networking.URLEndpoint(ms.URL + path)
}

// Requests returns a copy of all recorded requests.
func (ms *MockServer) Requests() []*RecordedRequest {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return append([]*RecordedRequest{}, ms.requests...)
}

// RequestCount returns the number of recorded requests.
func (ms *MockServer) RequestCount() int {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return len(ms.requests)
}

// LastRequest returns the most recent request, or nil if none.
func (ms *MockServer) LastRequest() *RecordedRequest {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	if len(ms.requests) == 0 {
		return nil
	}
	return ms.requests[len(ms.requests)-1]
}

// Reset clears all recorded requests.
func (ms *MockServer) Reset() {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.requests = ms.requests[:0]
}
