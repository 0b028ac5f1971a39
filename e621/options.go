package e621

import (
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// DefaultBaseURL is the production e621 site.
const DefaultBaseURL = "https://e621.net"

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	baseURL    string
	username   string
	apiKey     string
	timeout    time.Duration
	httpClient *http.Client
	registerer prometheus.Registerer
}

func defaultOptions() clientOptions {
	return clientOptions{
		baseURL: DefaultBaseURL,
	}
}

// WithBaseURL points the client at another deployment, such as a local
// development instance. A trailing slash is ignored.
func WithBaseURL(baseURL string) Option {
	return func(o *clientOptions) {
		if baseURL != "" {
			o.baseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

// WithCredentials sets the account name and API key. Requests are
// authenticated only when both are non-empty.
func WithCredentials(username, apiKey string) Option {
	return func(o *clientOptions) {
		o.username = username
		o.apiKey = apiKey
	}
}

// WithTimeout sets the HTTP client timeout. The default is no timeout;
// callers are expected to bound calls with their context.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		o.timeout = timeout
	}
}

// WithHTTPClient sets the underlying http.Client.
func WithHTTPClient(client *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = client
	}
}

// WithMetrics registers request counters and latency histograms on reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(o *clientOptions) {
		o.registerer = reg
	}
}
