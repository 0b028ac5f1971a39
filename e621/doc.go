// Package e621 provides a client for interacting with the e621 REST API.
//
// Every remote action is one method on Client. A method checks its
// required arguments, builds the parameter set the site expects (often
// nested under a wrapper such as post[...] or search[...]) and issues a
// single request. Responses are passed through untyped; decode them with
// Response.Decode into whatever shape the caller needs.
//
// # Usage
//
// Create a client with a project name, which identifies your application
// in the User-Agent header:
//
//	logger := zerolog.New(os.Stderr)
//	client, err := e621.NewClient("my-project", logger,
//		e621.WithCredentials("username", "api-key"),
//		e621.WithTimeout(30*time.Second),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	resp, err := client.ListPosts(ctx, e621.ListPostsOptions{
//		Tags:  optional.Some("wolf rating:s"),
//		Limit: optional.Some(10),
//	})
//
// Optional fields use optional.Value, so zero values such as page 0 or
// false can be sent deliberately. Unset fields are left out of the request.
//
// # Request settings
//
// The client holds default Settings (User-Agent, Accept and basic auth when
// both credentials are configured). Per call settings are layered on top
// with Merge: headers combine by canonical key with the per call value
// winning, and per call auth replaces the default.
//
// # Error Handling
//
//   - *ValidationError: arguments were rejected before any request was
//     sent. errors.Is(err, ErrInvalidArgument) matches it.
//   - *StatusError: the site answered with an unexpected status. The
//     Response is returned alongside it.
//   - Transport failures are wrapped and returned as is.
//
// Checking for a missing account:
//
//	resp, err := client.GetUser(ctx, "someone")
//	var se *e621.StatusError
//	if errors.As(err, &se) && se.IsNotFound() {
//		// no such account
//	}
package e621
