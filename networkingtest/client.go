package networkingtest

import (
	networking "github.com/djb950/modern-networking"
)

// TestingT matches the subset of *testing.T and *testing.B the helpers need.
type TestingT interface {
	Fatalf(format string, args ...any)
	Cleanup(func())
	Helper()
}

// NewTestClient creates a default client paired with a fresh mock server.
// The client carries no routing to the server; point individual requests at
// it with server.Endpoint. The server is closed when the test ends. Extra
// options are applied on top of the defaults.
func NewTestClient(t TestingT, opts ...networking.ConfigOption) (*networking.Client, *MockServer) {
	t.Helper()

	server := NewMockServer()

	client, err := networking.New(opts...)
	if err != nil {
		server.Close()
		t.Fatalf("failed to create test client: %v", err)
	}

	t.Cleanup(func() {
		server.Close()
	})

	return client, server
}
