package e621

import (
	"context"
	"strings"

	"github.com/s0up4200/go-e621/optional"
	"github.com/s0up4200/go-e621/params"
)

// ListUsersOptions filters accounts.
type ListUsersOptions struct {
	AccountID       optional.Value[int]
	Level           optional.Value[AccountLevel]
	CanApprovePosts optional.Value[bool]
	CanUploadFree   optional.Value[bool]
	Limit           optional.Value[int]
}

// ListUsers searches accounts
func (c *Client) ListUsers(ctx context.Context, opts ListUsersOptions) (*Response, error) {
	p := params.New("search")
	p.Add("account_id", opts.AccountID)
	p.Add("level", opts.Level)
	p.Add("can_approve_posts", opts.CanApprovePosts)
	p.Add("can_upload_free", opts.CanUploadFree)
	p.AddUnwrapped("limit", opts.Limit)

	return c.get(ctx, route("/users.json"), p)
}

// GetUser fetches an account by name. An empty name means the configured
// account.
func (c *Client) GetUser(ctx context.Context, name string) (*Response, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = c.username
	}
	if err := requireArgs("GetUser", arg("name", name == "")); err != nil {
		return nil, err
	}
	return c.get(ctx, route("/users/{name}.json", name), nil)
}
