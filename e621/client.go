package e621

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/s0up4200/go-e621/optional"
)

// Client represents an e621 API client
type Client struct {
	baseURL  string
	project  string
	username string
	http     *resty.Client
	settings Settings
	logger   zerolog.Logger
	metrics  *requestMetrics
}

// NewClient creates a new e621 client. project identifies the calling
// application in the User-Agent header and is required.
func NewClient(project string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if strings.TrimSpace(project) == "" {
		return nil, ErrMissingProject
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var rc *resty.Client
	if o.httpClient != nil {
		rc = resty.NewWithClient(o.httpClient)
	} else {
		rc = resty.New()
	}
	if o.timeout > 0 {
		rc.SetTimeout(o.timeout)
	}
	rc.SetBaseURL(o.baseURL).
		SetLogger(restyLogger{logger: logger})

	client := &Client{
		baseURL:  o.baseURL,
		project:  project,
		username: o.username,
		http:     rc,
		settings: defaultSettings(userAgent(project), o.username, o.apiKey),
		logger:   logger,
	}

	if o.registerer != nil {
		m, err := newRequestMetrics(o.registerer)
		if err != nil {
			return nil, fmt.Errorf("failed to register e621 metrics: %w", err)
		}
		client.metrics = m
	}

	if client.settings.Auth == nil && (o.username != "" || o.apiKey != "") {
		logger.Warn().Msg("e621 username and API key must both be set; sending unauthenticated requests")
	}

	return client, nil
}

func userAgent(project string) string {
	return fmt.Sprintf("%s/(by go-e621)", project)
}

// BaseURL returns the site the client talks to
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Username returns the configured account name, if any
func (c *Client) Username() string {
	return c.username
}

// Authenticated reports whether requests carry basic auth
func (c *Client) Authenticated() bool {
	return c.settings.Auth != nil
}

// UserAgent returns the User-Agent header sent with every request
func (c *Client) UserAgent() string {
	return c.settings.Headers["User-Agent"]
}

// TestConnection tests the connection to e621 with the smallest post listing
func (c *Client) TestConnection(ctx context.Context) error {
	_, err := c.ListPosts(ctx, ListPostsOptions{Limit: optional.Some(1)})
	if err != nil {
		return fmt.Errorf("failed to connect to e621: %w", err)
	}
	return nil
}

// restyLogger routes resty's internal warnings into zerolog.
type restyLogger struct {
	logger zerolog.Logger
}

func (l restyLogger) Errorf(format string, v ...interface{}) {
	l.logger.Error().Str("component", "resty").Msgf(format, v...)
}

func (l restyLogger) Warnf(format string, v ...interface{}) {
	l.logger.Warn().Str("component", "resty").Msgf(format, v...)
}

func (l restyLogger) Debugf(format string, v ...interface{}) {
	l.logger.Debug().Str("component", "resty").Msgf(format, v...)
}
