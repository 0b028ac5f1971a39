package e621

import "net/http"

// BasicAuth is an HTTP basic auth credential pair.
type BasicAuth struct {
	Username string
	Password string
}

// Settings is one layer of request configuration. The client holds the
// default layer and each call may supply an override layer; Merge resolves
// the two.
type Settings struct {
	Headers map[string]string
	Auth    *BasicAuth
}

// Merge resolves base and override into a new Settings.
//
// Precedence:
//   - Headers combine key by key; keys are compared in canonical form and
//     the override value wins.
//   - A non-nil override Auth replaces base Auth.
//
// Neither input is modified.
func Merge(base, override Settings) Settings {
	out := Settings{
		Headers: make(map[string]string, len(base.Headers)+len(override.Headers)),
	}
	for k, v := range base.Headers {
		out.Headers[http.CanonicalHeaderKey(k)] = v
	}
	for k, v := range override.Headers {
		out.Headers[http.CanonicalHeaderKey(k)] = v
	}

	switch {
	case override.Auth != nil:
		auth := *override.Auth
		out.Auth = &auth
	case base.Auth != nil:
		auth := *base.Auth
		out.Auth = &auth
	}
	return out
}

// defaultSettings builds the client's base layer. Basic auth is attached
// only when both halves of the credential are set.
func defaultSettings(userAgent, username, apiKey string) Settings {
	s := Settings{
		Headers: map[string]string{
			"User-Agent": userAgent,
			"Accept":     "application/json",
		},
	}
	if username != "" && apiKey != "" {
		s.Auth = &BasicAuth{Username: username, Password: apiKey}
	}
	return s
}
