package e621

import (
	"context"
	"strings"

	"github.com/s0up4200/go-e621/optional"
	"github.com/s0up4200/go-e621/params"
)

// ListPostsOptions filters a post search. Unset fields fall back to an
// empty tag query, page 0 and 50 results.
type ListPostsOptions struct {
	Tags  optional.Value[string]
	Page  optional.Value[int]
	Limit optional.Value[int]
}

// ListPosts searches posts by tag query
func (c *Client) ListPosts(ctx context.Context, opts ListPostsOptions) (*Response, error) {
	p := params.New("")
	p.Add("tags", opts.Tags.Or(optional.Some("")))
	p.Add("page", opts.Page.Or(optional.Some(0)))
	p.Add("limit", opts.Limit.Or(optional.Some(50)))

	return c.get(ctx, route("/posts.json"), p)
}

// VoteOptions controls how a vote interacts with an earlier one.
type VoteOptions struct {
	// NoUnvote keeps the vote in place when the same score is sent twice.
	// Defaults to false.
	NoUnvote optional.Value[bool]
}

// VotePost votes "up" or "down" on a post
func (c *Client) VotePost(ctx context.Context, postID int, score string, opts VoteOptions) (*Response, error) {
	const op = "VotePost"
	if err := requireArgs(op,
		arg("post_id", postID <= 0),
		arg("score", strings.TrimSpace(score) == ""),
	); err != nil {
		return nil, err
	}

	vote, err := ParseVote(score)
	if err != nil {
		return nil, invalidArg(op, "score", "must be up or down, got %q", score)
	}

	p := params.New("")
	p.Add("score", optional.Some(vote))
	p.Add("no_unvote", opts.NoUnvote.Or(optional.Some(false)))

	return c.post(ctx, route("/posts/{id}/votes.json", postID), p)
}

// FavoritePost adds the post to the account's favorites when favorite is
// true and removes it otherwise.
func (c *Client) FavoritePost(ctx context.Context, postID int, favorite bool) (*Response, error) {
	if err := requireArgs("FavoritePost", arg("post_id", postID <= 0)); err != nil {
		return nil, err
	}

	if !favorite {
		return c.delete(ctx, route("/favorites/{id}.json", postID), nil)
	}

	p := params.New("")
	p.Add("post_id", optional.Some(postID))
	return c.post(ctx, route("/favorites.json"), p)
}

// DeletePostOptions configures DeletePost.
type DeletePostOptions struct {
	// Reason is required unless Undelete is set.
	Reason optional.Value[string]
	// Undelete restores a deleted post instead.
	Undelete bool
}

// DeletePost marks a post as deleted, or restores it with Undelete
func (c *Client) DeletePost(ctx context.Context, postID int, opts DeletePostOptions) (*Response, error) {
	reasonMissing := strings.TrimSpace(opts.Reason.UnwrapOr("")) == ""
	if err := requireArgs("DeletePost",
		arg("post_id", postID <= 0),
		arg("reason", !opts.Undelete && reasonMissing),
	); err != nil {
		return nil, err
	}

	p := params.New("")
	p.Add("reason", opts.Reason)

	if opts.Undelete {
		return c.post(ctx, route("/moderator/post/posts/{id}/undelete.json", postID), p)
	}

	p.Put("commit", "Delete")
	return c.post(ctx, route("/moderator/post/posts/{id}/delete.json", postID), p)
}

// DestroyPost permanently expunges a post
func (c *Client) DestroyPost(ctx context.Context, postID int) (*Response, error) {
	if err := requireArgs("DestroyPost", arg("post_id", postID <= 0)); err != nil {
		return nil, err
	}
	return c.post(ctx, route("/moderator/post/posts/{id}/expunge.json", postID), nil)
}

// UpdatePostOptions lists the editable post fields. Only present fields
// are sent.
type UpdatePostOptions struct {
	// TagStringDiff is a space separated list of tag changes, "-tag" removes.
	TagStringDiff optional.Value[string]
	// SourceDiff is a whitespace separated list of source changes.
	SourceDiff  optional.Value[string]
	ParentID    optional.Value[int]
	Description optional.Value[string]
	// Rating accepts the letter or the full word.
	Rating     optional.Value[string]
	EditReason optional.Value[string]
	LockRating optional.Value[bool]
	LockNotes  optional.Value[bool]
}

// UpdatePost edits a post
func (c *Client) UpdatePost(ctx context.Context, postID int, opts UpdatePostOptions) (*Response, error) {
	const op = "UpdatePost"
	if err := requireArgs(op, arg("post_id", postID <= 0)); err != nil {
		return nil, err
	}

	p := params.New("post")
	p.Add("tag_string_diff", opts.TagStringDiff)
	if !opts.SourceDiff.IsNone() {
		// one source per line
		p.Put("source_diff", strings.Join(strings.Fields(opts.SourceDiff.Unwrap()), "\n"))
	}
	p.Add("parent_id", opts.ParentID)
	p.Add("description", opts.Description)
	if !opts.Rating.IsNone() {
		rating, err := ParseRating(opts.Rating.Unwrap())
		if err != nil {
			return nil, invalidArg(op, "rating", "must be one of e, q, s, explicit, questionable, safe, got %q", opts.Rating.Unwrap())
		}
		p.Add("rating", optional.Some(rating))
	}
	p.Add("edit_reason", opts.EditReason)
	p.Add("is_rating_locked", opts.LockRating)
	p.Add("is_note_locked", opts.LockNotes)

	return c.patch(ctx, route("/posts/{id}.json", postID), p)
}
