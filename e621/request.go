package e621

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/s0up4200/go-e621/params"
)

const formContentType = "application/x-www-form-urlencoded;charset=utf-8"

// endpoint is a resolved API path together with the template it came from.
// The template labels logs and metrics.
type endpoint struct {
	route string
	path  string
}

// route fills each {placeholder} in template, in order, with the
// path-escaped form of args.
func route(template string, args ...any) endpoint {
	var sb strings.Builder
	rest := template
	for _, a := range args {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			break
		}
		end := strings.IndexByte(rest[open:], '}')
		if end < 0 {
			break
		}
		sb.WriteString(rest[:open])
		sb.WriteString(url.PathEscape(fmt.Sprint(a)))
		rest = rest[open+end+1:]
	}
	sb.WriteString(rest)
	return endpoint{route: template, path: sb.String()}
}

type requestConfig struct {
	expect    int
	override  Settings
	multipart bool
	files     []*resty.MultipartField
}

type requestOption func(*requestConfig)

// expectStatus overrides the expected status code (default 200).
func expectStatus(code int) requestOption {
	return func(rc *requestConfig) {
		rc.expect = code
	}
}

// withSettings supplies the per-call settings layer.
func withSettings(s Settings) requestOption {
	return func(rc *requestConfig) {
		rc.override = Merge(rc.override, s)
	}
}

// asMultipart sends the parameter set as multipart form data instead of
// URL-encoded form data, with optional file parts.
func asMultipart(files ...*resty.MultipartField) requestOption {
	return func(rc *requestConfig) {
		rc.multipart = true
		rc.files = append(rc.files, files...)
	}
}

func (c *Client) get(ctx context.Context, ep endpoint, query *params.Set, opts ...requestOption) (*Response, error) {
	return c.do(ctx, http.MethodGet, ep, query, opts...)
}

func (c *Client) post(ctx context.Context, ep endpoint, form *params.Set, opts ...requestOption) (*Response, error) {
	return c.do(ctx, http.MethodPost, ep, form, opts...)
}

func (c *Client) patch(ctx context.Context, ep endpoint, form *params.Set, opts ...requestOption) (*Response, error) {
	return c.do(ctx, http.MethodPatch, ep, form, opts...)
}

func (c *Client) put(ctx context.Context, ep endpoint, form *params.Set, opts ...requestOption) (*Response, error) {
	return c.do(ctx, http.MethodPut, ep, form, opts...)
}

func (c *Client) delete(ctx context.Context, ep endpoint, query *params.Set, opts ...requestOption) (*Response, error) {
	return c.do(ctx, http.MethodDelete, ep, query, opts...)
}

// do performs one round trip. GET and DELETE carry p as the query string;
// other verbs carry it as the body.
func (c *Client) do(ctx context.Context, method string, ep endpoint, p *params.Set, opts ...requestOption) (*Response, error) {
	rc := requestConfig{expect: http.StatusOK}
	for _, opt := range opts {
		opt(&rc)
	}

	req := c.http.R().SetContext(ctx)

	switch {
	case rc.multipart:
		req.SetMultipartFormData(p.Map())
		if len(rc.files) > 0 {
			req.SetMultipartFields(rc.files...)
		}
	case method == http.MethodGet || method == http.MethodDelete:
		if q := p.Encode(); q != "" {
			req.SetQueryString(q)
		}
	default:
		// the caller's own override still wins over the form content type
		form := Settings{Headers: map[string]string{"Content-Type": formContentType}}
		rc.override = Merge(form, rc.override)
		req.SetBody(p.Encode())
	}

	s := Merge(c.settings, rc.override)
	req.SetHeaders(s.Headers)
	if s.Auth != nil {
		req.SetBasicAuth(s.Auth.Username, s.Auth.Password)
	}

	start := time.Now()
	resp, err := req.Execute(method, ep.path)
	elapsed := time.Since(start)
	if err != nil {
		c.metrics.observe(method, ep.route, 0, elapsed)
		c.logger.Debug().
			Err(err).
			Str("method", method).
			Str("route", ep.route).
			Dur("elapsed", elapsed).
			Msg("e621 request failed")
		return nil, fmt.Errorf("e621: %s %s: %w", method, ep.path, err)
	}

	c.metrics.observe(method, ep.route, resp.StatusCode(), elapsed)
	c.logger.Debug().
		Str("method", method).
		Str("route", ep.route).
		Int("status", resp.StatusCode()).
		Int("params", p.Len()).
		Dur("elapsed", elapsed).
		Msg("e621 request")

	out := &Response{raw: resp}
	if resp.StatusCode() != rc.expect {
		return out, &StatusError{
			Method:     method,
			Path:       ep.path,
			Expected:   rc.expect,
			StatusCode: resp.StatusCode(),
			Body:       resp.String(),
		}
	}
	return out, nil
}
