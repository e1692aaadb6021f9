package networking

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// ConfigOption is a function that modifies a Config.
type ConfigOption func(*Config)

// WithTransport sets the Transport used to send requests.
func WithTransport(t Transport) ConfigOption {
	return func(c *Config) {
		c.Transport = t
	}
}

// WithHTTPClient sends requests through the given net/http client.
func WithHTTPClient(client *http.Client) ConfigOption {
	return func(c *Config) {
		c.Transport = NewHTTPTransport(client)
	}
}

// WithRestyClient sends requests through the given resty client.
func WithRestyClient(client *resty.Client) ConfigOption {
	return func(c *Config) {
		c.Transport = NewRestyTransport(client)
	}
}

// WithTimeout sets the default transport's request timeout. It has no effect
// when a custom transport is configured.
func WithTimeout(timeout time.Duration) ConfigOption {
	return func(c *Config) {
		c.Timeout = timeout
	}
}

// WithHeader adds a header attached to every request.
func WithHeader(key, value string) ConfigOption {
	return func(c *Config) {
		if c.Headers == nil {
			c.Headers = make(map[string]string)
		}
		c.Headers[key] = value
	}
}

// WithUserAgent overrides the default User-Agent header.
func WithUserAgent(ua string) ConfigOption {
	return func(c *Config) {
		c.UserAgent = ua
	}
}

// WithDecoder sets the default response decoder.
func WithDecoder(d Decoder) ConfigOption {
	return func(c *Config) {
		c.Decoder = d
	}
}

// WithStatusHandlers sets the default status handler table.
func WithStatusHandlers(h StatusHandlers) ConfigOption {
	return func(c *Config) {
		c.Handlers = h
	}
}

// WithLogger sets the structured logger.
func WithLogger(l StructuredLogger) ConfigOption {
	return func(c *Config) {
		c.Logger = l
	}
}

// WithDebug enables request and response debug logging.
func WithDebug(debug bool) ConfigOption {
	return func(c *Config) {
		c.Debug = debug
	}
}

// requestOptions collects per-call overrides.
type requestOptions struct {
	decoder  Decoder
	handlers StatusHandlers
	headers  map[string]string
}

// RequestOption modifies a single call to Request.
type RequestOption func(*requestOptions)

// WithRequestDecoder overrides the response decoder for one call.
func WithRequestDecoder(d Decoder) RequestOption {
	return func(o *requestOptions) {
		o.decoder = d
	}
}

// WithRequestHandlers overrides the status handler table for one call.
func WithRequestHandlers(h StatusHandlers) RequestOption {
	return func(o *requestOptions) {
		o.handlers = h
	}
}

// WithRequestHeader adds a header to one call, overriding any client-level
// header with the same key.
func WithRequestHeader(key, value string) RequestOption {
	return func(o *requestOptions) {
		if o.headers == nil {
			o.headers = make(map[string]string)
		}
		o.headers[key] = value
	}
}
