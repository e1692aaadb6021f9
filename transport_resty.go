package networking

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
)

// RestyTransport adapts a resty.Client to the Transport interface, for
// callers already carrying a resty stack. Resty's own retry and redirect
// settings apply as configured on the wrapped client; responses with error
// status codes are returned, not turned into transport errors.
type RestyTransport struct {
	client *resty.Client
}

// NewRestyTransport wraps client as a Transport. A nil client gets a fresh
// resty.Client.
func NewRestyTransport(client *resty.Client) *RestyTransport {
	if client == nil {
		client = resty.New()
	}
	return &RestyTransport{client: client}
}

// NewRestyTransportWithTimeout returns a RestyTransport whose underlying
// client applies the given per-request timeout.
func NewRestyTransportWithTimeout(timeout time.Duration) *RestyTransport {
	c := resty.New()
	c.SetTimeout(timeout)
	return &RestyTransport{client: c}
}

// Client exposes the wrapped resty.Client for further configuration.
func (t *RestyTransport) Client() *resty.Client { return t.client }

// Send implements Transport.
func (t *RestyTransport) Send(ctx context.Context, req *OutboundRequest) (*Response, error) {
	r := t.client.R().SetContext(ctx)
	if len(req.Headers) > 0 {
		r.SetHeaders(req.Headers)
	}
	if len(req.Body) > 0 {
		r.SetBody(req.Body)
	}

	resp, err := r.Execute(req.Method, req.URL)
	if err != nil {
		return nil, err
	}

	return &Response{StatusCode: resp.StatusCode(), Body: resp.Body()}, nil
}
