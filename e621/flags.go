package e621

import (
	"context"
	"net/http"
	"strings"

	"github.com/s0up4200/go-e621/optional"
	"github.com/s0up4200/go-e621/params"
)

// ListFlagsOptions filters post flags.
type ListFlagsOptions struct {
	CreatorID   optional.Value[int]
	PostID      optional.Value[int]
	CreatorName optional.Value[string]
	Limit       optional.Value[int]
}

// ListFlags lists flags raised on posts
func (c *Client) ListFlags(ctx context.Context, opts ListFlagsOptions) (*Response, error) {
	p := params.New("")
	p.Add("creator_id", opts.CreatorID)
	p.Add("post_id", opts.PostID)
	p.Add("creator_name", opts.CreatorName)
	p.Add("limit", opts.Limit)

	return c.get(ctx, route("/post_flags.json"), p)
}

// CreateFlagOptions holds the optional flag fields.
type CreateFlagOptions struct {
	// ParentID is the superior post; required for FlagInferior.
	ParentID optional.Value[int]
}

// CreateFlag flags a post for deletion. reason must be one of FlagReasons.
func (c *Client) CreateFlag(ctx context.Context, postID int, reason string, opts CreateFlagOptions) (*Response, error) {
	const op = "CreateFlag"
	if err := requireArgs(op,
		arg("post_id", postID <= 0),
		arg("reason_name", strings.TrimSpace(reason) == ""),
	); err != nil {
		return nil, err
	}

	fr := FlagReason(reason)
	if !oneOf(fr, FlagReasons()) {
		return nil, invalidArg(op, "reason_name", "must be one of %s, got %q", joinValues(FlagReasons()), reason)
	}
	if fr == FlagInferior {
		if err := requireArgs(op, arg("parent_id", opts.ParentID.UnwrapOr(0) <= 0)); err != nil {
			return nil, err
		}
	}

	p := params.New("post_flag")
	p.Add("post_id", optional.Some(postID))
	p.Put("reason_name", reason)
	p.Add("parent_id", opts.ParentID)

	return c.post(ctx, route("/post_flags.json"), p, expectStatus(http.StatusCreated))
}
