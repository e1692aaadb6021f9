package networking

import (
	"context"
)

// Client issues requests. It holds configuration only and no per-request
// state: concurrent calls are safe, never interact, and share nothing beyond
// the immutable configuration and whatever pooling the transport provides.
type Client struct {
	config *Config
}

// New creates a Client.
func New(opts ...ConfigOption) (*Client, error) {
	cfg := &Config{}
	for _, opt := range opts {
		opt(cfg)
	}
	return NewWithConfig(cfg)
}

// NewWithConfig creates a Client from a Config struct, for callers that
// prefer a struct over functional options. The config is copied; later
// mutations of cfg do not affect the client.
func NewWithConfig(cfg *Config) (*Client, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	cfgCopy := *cfg
	if cfg.Headers != nil {
		cfgCopy.Headers = make(map[string]string, len(cfg.Headers))
		for k, v := range cfg.Headers {
			cfgCopy.Headers[k] = v
		}
	}
	if cfg.Handlers != nil {
		cfgCopy.Handlers = make(StatusHandlers, len(cfg.Handlers))
		for class, action := range cfg.Handlers {
			cfgCopy.Handlers[class] = action
		}
	}
	if err := cfgCopy.validate(); err != nil {
		return nil, err
	}
	return &Client{config: &cfgCopy}, nil
}

// Request builds a request for endpoint and method, sends it through the
// client's transport, and dispatches on the response status: the body is
// decoded into a T, or the call fails with a *RequestError.
//
// Construction failures are reported as ErrMalformedEndpoint or
// ErrInvalidBody. Transport failures (connection refused, timeout, TLS) are
// returned unmodified. A response without a recognizable status code fails
// with ErrUnknown.
func Request[T any](ctx context.Context, c *Client, endpoint Endpoint, method Method, opts ...RequestOption) (T, error) {
	var zero T

	var ro requestOptions
	for _, opt := range opts {
		opt(&ro)
	}

	cfg := c.config
	headers := mergeHeaders(cfg, ro.headers)

	req, err := buildRequest(method, endpoint.URL(), headers)
	if err != nil {
		cfg.Logger.Error("request construction failed", "endpoint", endpoint.URL(), "error", err)
		return zero, err
	}

	if cfg.Debug {
		cfg.Logger.Debug("sending request",
			"method", req.Method, "url", req.URL, "body_bytes", len(req.Body))
	}

	resp, err := cfg.Transport.Send(ctx, req)
	if err != nil {
		// Transport failures pass through unmodified.
		return zero, err
	}
	if resp == nil || resp.StatusCode == 0 {
		return zero, &RequestError{Kind: KindUnknown}
	}

	if cfg.Debug {
		cfg.Logger.Debug("received response",
			"status", resp.StatusCode, "class", ClassifyStatus(resp.StatusCode).String(),
			"body_bytes", len(resp.Body))
	}

	dec := ro.decoder
	if dec == nil {
		dec = cfg.Decoder
	}
	handlers := ro.handlers
	if handlers == nil {
		handlers = cfg.Handlers
	}

	return handleResponse[T](resp.Body, resp.StatusCode, dec, handlers)
}

// mergeHeaders combines client defaults with per-call headers, last write
// wins, and fills in the User-Agent when the caller did not set one.
func mergeHeaders(cfg *Config, perCall map[string]string) map[string]string {
	merged := make(map[string]string, len(cfg.Headers)+len(perCall)+1)
	merged["User-Agent"] = cfg.UserAgent
	for k, v := range cfg.Headers {
		merged[k] = v
	}
	for k, v := range perCall {
		merged[k] = v
	}
	return merged
}
