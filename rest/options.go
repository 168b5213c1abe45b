package rest

import (
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/hashicorp/go-cleanhttp"
)

// Option configures a Client during construction. Options are applied in
// order, so later options win on conflicts.
type Option func(*Client)

// WithBaseURL sets the base URL every request path is joined against.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient replaces the underlying transport. The supplied client
// owns connection handling, TLS, redirects and timeouts.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithTimeout sets the transport timeout. A timeout surfaces to callers as
// a network failure, i.e. the 503 fallback error.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithHeader adds one default header sent with every request.
func WithHeader(key, value string) Option {
	return func(c *Client) {
		v := value
		c.headers[key] = &v
	}
}

// WithHeaders merges a map of default headers. Entries with nil values are
// kept here and dropped with a diagnostic at dispatch time; they never
// reach the transport.
func WithHeaders(headers map[string]*string) Option {
	return func(c *Client) {
		for key, value := range headers {
			c.headers[key] = value
		}
	}
}

// WithProxy routes requests through an HTTP proxy at host:port. The proxy
// address is passed opaquely to the transport.
func WithProxy(host string, port int) Option {
	return func(c *Client) {
		proxyURL := &url.URL{
			Scheme: "http",
			Host:   net.JoinHostPort(host, strconv.Itoa(port)),
		}
		transport := cleanhttp.DefaultPooledTransport()
		transport.Proxy = http.ProxyURL(proxyURL)
		c.httpClient.Transport = transport
	}
}

// WithUserAgent overrides the default User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithLogger sets the diagnostics capability. The default discards
// everything.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithErrorParser replaces default error parsing wholesale. The parser
// must always return a non-nil *APIError synchronously.
func WithErrorParser(parser ErrorParser) Option {
	return func(c *Client) {
		if parser != nil {
			c.parseError = parser
		}
	}
}

// WithMetrics enables Prometheus instrumentation of the request lifecycle.
func WithMetrics(metrics *MetricsCollector) Option {
	return func(c *Client) {
		c.metrics = metrics
	}
}
