package networking

import (
	"net/http"
	"time"
)

// Default configuration values.
const (
	// DefaultTimeout is the request timeout applied to the default
	// transport's HTTP client. Custom transports own their own timeout and
	// cancellation behavior.
	DefaultTimeout = 30 * time.Second

	// defaultUserAgent identifies the library on outbound requests.
	defaultUserAgent = "modern-networking/1.0.0"
)

// Config holds client configuration. Prefer the ConfigOption helpers with
// New; zero fields fall back to defaults.
type Config struct {
	// Transport sends built requests. Defaults to an HTTPTransport over a
	// net/http client with Timeout applied.
	Transport Transport

	// Timeout applies to the default transport only. Ignored when Transport
	// is set.
	Timeout time.Duration

	// Headers are attached to every request. Per-call headers override them
	// key by key.
	Headers map[string]string

	// UserAgent overrides the default User-Agent header. An explicit
	// User-Agent in Headers or per-call headers wins over both.
	UserAgent string

	// Decoder decodes response bodies when no per-call decoder is supplied.
	// Defaults to JSONDecoder{}.
	Decoder Decoder

	// Handlers overrides per-status-class dispatch for every call. Default
	// empty: 2xx decodes, 4xx fails with ErrBadRequest, 5xx with
	// ErrServerError.
	Handlers StatusHandlers

	// Logger receives the client's logs. Defaults to a no-op logger.
	Logger StructuredLogger

	// Debug logs every request and response at debug level.
	Debug bool
}

// validate applies defaults in place and reports configuration errors.
func (c *Config) validate() error {
	if c.Timeout < 0 {
		return ErrInvalidTimeout
	}
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
	if c.Transport == nil {
		c.Transport = NewHTTPTransport(&http.Client{Timeout: c.Timeout})
	}
	if c.Decoder == nil {
		c.Decoder = defaultDecoder
	}
	if c.Logger == nil {
		c.Logger = nopLogger{}
	}
	if c.UserAgent == "" {
		c.UserAgent = defaultUserAgent
	}
	return nil
}
