package e621

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/go-e621/optional"
)

// captured is one request as seen by the test server.
type captured struct {
	Method string
	Path   string
	Query  url.Values
	Form   url.Values
	Header http.Header
	User   string
	Pass   string
	Auth   bool
}

type recorder struct {
	mu       sync.Mutex
	requests []captured
	status   int
	body     string
}

func (rec *recorder) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	c := captured{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.Query(),
		Header: r.Header.Clone(),
	}
	c.User, c.Pass, c.Auth = r.BasicAuth()
	if r.Method != http.MethodGet && r.Method != http.MethodDelete {
		body, _ := io.ReadAll(r.Body)
		c.Form, _ = url.ParseQuery(string(body))
	}

	rec.mu.Lock()
	rec.requests = append(rec.requests, c)
	status, body := rec.status, rec.body
	rec.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func (rec *recorder) all() []captured {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	out := make([]captured, len(rec.requests))
	copy(out, rec.requests)
	return out
}

func (rec *recorder) last(t *testing.T) captured {
	t.Helper()
	reqs := rec.all()
	require.NotEmpty(t, reqs, "no request reached the server")
	return reqs[len(reqs)-1]
}

// newTestClient starts a server answering every request with status and
// body and returns a client pointed at it.
func newTestClient(t *testing.T, status int, body string, opts ...Option) (*Client, *recorder) {
	t.Helper()
	rec := &recorder{status: status, body: body}
	server := httptest.NewServer(rec)
	t.Cleanup(server.Close)

	opts = append([]Option{WithBaseURL(server.URL)}, opts...)
	client, err := NewClient("test", zerolog.Nop(), opts...)
	require.NoError(t, err)
	return client, rec
}

func TestNewClient(t *testing.T) {
	tests := []struct {
		name     string
		project  string
		opts     []Option
		wantErr  error
		wantAuth bool
	}{
		{
			name:    "missing project",
			project: "",
			wantErr: ErrMissingProject,
		},
		{
			name:    "blank project",
			project: "   ",
			wantErr: ErrMissingProject,
		},
		{
			name:    "anonymous",
			project: "test",
		},
		{
			name:     "credentials",
			project:  "test",
			opts:     []Option{WithCredentials("user", "key")},
			wantAuth: true,
		},
		{
			name:    "username without key",
			project: "test",
			opts:    []Option{WithCredentials("user", "")},
		},
		{
			name:    "key without username",
			project: "test",
			opts:    []Option{WithCredentials("", "key")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(tt.project, zerolog.Nop(), tt.opts...)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, client)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, DefaultBaseURL, client.BaseURL())
			assert.Equal(t, tt.wantAuth, client.Authenticated())
			assert.Equal(t, "test/(by go-e621)", client.UserAgent())
		})
	}
}

func TestClientOptions(t *testing.T) {
	client, err := NewClient("test", zerolog.Nop(),
		WithBaseURL("http://localhost:3000/"),
		WithCredentials("fox", "secret"),
	)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:3000", client.BaseURL())
	assert.Equal(t, "fox", client.Username())
}

func TestListPostsEndToEnd(t *testing.T) {
	client, rec := newTestClient(t, http.StatusOK, `{"posts":[]}`)

	resp, err := client.ListPosts(context.Background(), ListPostsOptions{Limit: optional.Some(3)})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())

	req := rec.last(t)
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "/posts.json", req.Path)
	assert.True(t, req.Query.Has("tags"))
	assert.Equal(t, "", req.Query.Get("tags"))
	assert.Equal(t, "0", req.Query.Get("page"))
	assert.Equal(t, "3", req.Query.Get("limit"))
	assert.False(t, req.Auth)
	assert.Empty(t, req.Header.Get("Authorization"))
	assert.Contains(t, req.Header.Get("User-Agent"), "test")

	var body map[string]any
	require.NoError(t, resp.Decode(&body))
	assert.Contains(t, body, "posts")
}

func TestListPostsDefaults(t *testing.T) {
	client, rec := newTestClient(t, http.StatusOK, `{}`)

	_, err := client.ListPosts(context.Background(), ListPostsOptions{})
	require.NoError(t, err)

	req := rec.last(t)
	assert.Equal(t, "50", req.Query.Get("limit"))
	assert.Equal(t, "0", req.Query.Get("page"))
}

func TestBasicAuthAttached(t *testing.T) {
	client, rec := newTestClient(t, http.StatusOK, `{}`, WithCredentials("fox", "secret"))

	_, err := client.ListPosts(context.Background(), ListPostsOptions{})
	require.NoError(t, err)

	req := rec.last(t)
	require.True(t, req.Auth)
	assert.Equal(t, "fox", req.User)
	assert.Equal(t, "secret", req.Pass)
}

func TestBasicAuthNeedsBothCredentials(t *testing.T) {
	client, rec := newTestClient(t, http.StatusOK, `{}`, WithCredentials("fox", ""))

	_, err := client.ListPosts(context.Background(), ListPostsOptions{})
	require.NoError(t, err)
	assert.False(t, rec.last(t).Auth)
}

func TestUnexpectedStatus(t *testing.T) {
	client, _ := newTestClient(t, http.StatusNotFound, `{"success":false,"reason":"not found"}`)

	resp, err := client.GetUser(context.Background(), "nobody")
	require.Error(t, err)

	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.True(t, se.IsNotFound())
	assert.False(t, se.IsUnauthorized())
	assert.Equal(t, http.StatusOK, se.Expected)
	assert.Equal(t, "/users/nobody.json", se.Path)
	assert.Contains(t, se.Body, "not found")

	require.NotNil(t, resp)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode())
}

func TestTransportError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	baseURL := server.URL
	server.Close()

	client, err := NewClient("test", zerolog.Nop(), WithBaseURL(baseURL))
	require.NoError(t, err)

	resp, err := client.ListPosts(context.Background(), ListPostsOptions{})
	require.Error(t, err)
	assert.Nil(t, resp)

	var se *StatusError
	assert.False(t, errors.As(err, &se))
}

func TestTestConnection(t *testing.T) {
	client, rec := newTestClient(t, http.StatusOK, `{"posts":[]}`)

	require.NoError(t, client.TestConnection(context.Background()))
	req := rec.last(t)
	assert.Equal(t, "/posts.json", req.Path)
	assert.Equal(t, "1", req.Query.Get("limit"))

	failing, _ := newTestClient(t, http.StatusUnauthorized, `{}`)
	err := failing.TestConnection(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to connect to e621")
}

func TestRequestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	client, _ := newTestClient(t, http.StatusOK, `{}`, WithMetrics(reg))

	for range 2 {
		_, err := client.ListPosts(context.Background(), ListPostsOptions{})
		require.NoError(t, err)
	}
	_, err := client.GetUser(context.Background(), "fox")
	require.NoError(t, err)

	assert.Equal(t, 2.0, testutil.ToFloat64(client.metrics.requests.WithLabelValues("GET", "/posts.json", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(client.metrics.requests.WithLabelValues("GET", "/users/{name}.json", "200")))
	assert.Equal(t, 2, testutil.CollectAndCount(client.metrics.duration))

	// a second client on the same registry shares the collectors
	other, _ := newTestClient(t, http.StatusOK, `{}`, WithMetrics(reg))
	_, err = other.ListPosts(context.Background(), ListPostsOptions{})
	require.NoError(t, err)
	assert.Equal(t, 3.0, testutil.ToFloat64(client.metrics.requests.WithLabelValues("GET", "/posts.json", "200")))
}

func TestRoute(t *testing.T) {
	tests := []struct {
		name     string
		template string
		args     []any
		want     string
	}{
		{"no placeholders", "/posts.json", nil, "/posts.json"},
		{"int id", "/posts/{id}/votes.json", []any{42}, "/posts/42/votes.json"},
		{"escaped name", "/users/{name}.json", []any{"a b/c"}, "/users/a%20b%2Fc.json"},
		{"missing arg keeps template", "/notes/{id}.json", nil, "/notes/{id}.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ep := route(tt.template, tt.args...)
			assert.Equal(t, tt.want, ep.path)
			assert.Equal(t, tt.template, ep.route)
		})
	}
}

func TestResponseDecodeEmptyBody(t *testing.T) {
	client, _ := newTestClient(t, http.StatusNoContent, "")

	resp, err := client.RevertNote(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.ErrorIs(t, resp.Decode(&map[string]any{}), ErrEmptyBody)
}
