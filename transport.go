package networking

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
)

// Response is what a Transport hands back: the numeric status code and the
// raw body bytes, read in full.
type Response struct {
	StatusCode int
	Body       []byte
}

// Transport sends an OutboundRequest and returns the raw response. Transport
// errors reach the caller of Request unmodified; the library never wraps or
// reclassifies them. Implementations own redirect, TLS, pooling, timeout, and
// cancellation behavior.
type Transport interface {
	Send(ctx context.Context, req *OutboundRequest) (*Response, error)
}

// HTTPTransport is the default Transport, backed by a net/http client.
type HTTPTransport struct {
	client *http.Client
}

// NewHTTPTransport wraps client as a Transport. A nil client uses
// http.DefaultClient.
func NewHTTPTransport(client *http.Client) *HTTPTransport {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPTransport{client: client}
}

// Send implements Transport.
func (t *HTTPTransport) Send(ctx context.Context, req *OutboundRequest) (*Response, error) {
	var bodyReader io.Reader
	if len(req.Body) > 0 {
		bodyReader = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("networking: failed to create request: %w", err)
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	resp, err := t.client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("networking: failed to read response body: %w", err)
	}

	return &Response{StatusCode: resp.StatusCode, Body: respBody}, nil
}

// CloseIdleConnections releases idle connections held by the underlying
// client's transport.
func (t *HTTPTransport) CloseIdleConnections() {
	t.client.CloseIdleConnections()
}
