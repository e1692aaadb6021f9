package networking

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHTTPTransportSend(t *testing.T) {
	var gotMethod, gotAuth, gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotAuth = r.Header.Get("Authorization")
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	transport := NewHTTPTransport(server.Client())
	defer transport.CloseIdleConnections()

	resp, err := transport.Send(context.Background(), &OutboundRequest{
		URL:     server.URL + "/items",
		Method:  "POST",
		Headers: map[string]string{"Authorization": "Bearer token"},
		Body:    []byte("x=1"),
	})
	if err != nil {
		t.Fatalf("Send failed: %v", err)
	}

	if resp.StatusCode != http.StatusCreated {
		t.Errorf("StatusCode = %d, want 201", resp.StatusCode)
	}
	if string(resp.Body) != `{"ok":true}` {
		t.Errorf("Body = %q, want %q", resp.Body, `{"ok":true}`)
	}
	if gotMethod != "POST" {
		t.Errorf("server saw method %q, want POST", gotMethod)
	}
	if gotAuth != "Bearer token" {
		t.Errorf("server saw Authorization %q, want Bearer token", gotAuth)
	}
	if gotBody != "x=1" {
		t.Errorf("server saw body %q, want x=1", gotBody)
	}
}

func TestHTTPTransportSendNoBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.ContentLength != 0 {
			t.Errorf("ContentLength = %d, want 0", r.ContentLength)
		}
		w.Write([]byte("{}"))
	}))
	defer server.Close()

	transport := NewHTTPTransport(server.Client())
	defer transport.CloseIdleConnections()

	resp, err := transport.Send(context.Background(), &OutboundRequest{
		URL:    server.URL,
		Method: "GET",
	})
	if err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("StatusCode = %d, want 200", resp.StatusCode)
	}
}

func TestHTTPTransportSendConnectionError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse connections

	transport := NewHTTPTransport(http.DefaultClient)

	resp, err := transport.Send(context.Background(), &OutboundRequest{
		URL:    server.URL,
		Method: "GET",
	})
	if err == nil {
		t.Fatal("Send succeeded against a closed server")
	}
	if resp != nil {
		t.Errorf("resp = %+v, want nil", resp)
	}
	// The transport error must not be reclassified.
	if _, ok := AsRequestError(err); ok {
		t.Errorf("transport error was wrapped in a RequestError: %v", err)
	}
}

func TestHTTPTransportSendContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	transport := NewHTTPTransport(server.Client())
	defer transport.CloseIdleConnections()

	if _, err := transport.Send(ctx, &OutboundRequest{URL: server.URL, Method: "GET"}); err == nil {
		t.Fatal("Send succeeded with a cancelled context")
	}
}

func TestNewHTTPTransportNilClient(t *testing.T) {
	transport := NewHTTPTransport(nil)
	if transport.client != http.DefaultClient {
		t.Error("nil client did not default to http.DefaultClient")
	}
}
