package e621

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// ErrEmptyBody is returned by Response.Decode when there is nothing to decode.
var ErrEmptyBody = errors.New("e621: response has an empty body")

// Response is the transport result of one API call. The library does not
// model the API's JSON; use Decode with your own types or a generic map.
type Response struct {
	raw *resty.Response
}

// StatusCode returns the HTTP status code
func (r *Response) StatusCode() int {
	return r.raw.StatusCode()
}

// Header returns the response headers
func (r *Response) Header() http.Header {
	return r.raw.Header()
}

// Body returns the raw response body
func (r *Response) Body() []byte {
	return r.raw.Body()
}

// String returns the body as a string
func (r *Response) String() string {
	return r.raw.String()
}

// Duration returns how long the round trip took
func (r *Response) Duration() time.Duration {
	return r.raw.Time()
}

// Decode unmarshals the JSON body into v
func (r *Response) Decode(v any) error {
	body := r.raw.Body()
	if len(body) == 0 {
		return ErrEmptyBody
	}
	return json.Unmarshal(body, v)
}
