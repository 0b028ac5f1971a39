package e621

import (
	"context"

	"github.com/s0up4200/go-e621/optional"
	"github.com/s0up4200/go-e621/params"
)

// ListWikiPagesOptions filters wiki pages.
type ListWikiPagesOptions struct {
	ID          optional.Value[int]
	Title       optional.Value[string]
	CreatorID   optional.Value[int]
	CreatorName optional.Value[string]
	IsLocked    optional.Value[bool]
	Limit       optional.Value[int]
}

// ListWikiPages lists wiki pages
func (c *Client) ListWikiPages(ctx context.Context, opts ListWikiPagesOptions) (*Response, error) {
	p := params.New("search")
	p.Add("id", opts.ID)
	p.Add("title", opts.Title)
	p.Add("creator_id", opts.CreatorID)
	p.Add("creator_name", opts.CreatorName)
	p.Add("is_locked", opts.IsLocked)
	p.AddUnwrapped("limit", opts.Limit)

	return c.get(ctx, route("/wiki_pages.json"), p)
}

// ListPostSetsOptions filters post sets.
type ListPostSetsOptions struct {
	ID        optional.Value[int]
	CreatorID optional.Value[int]
	Name      optional.Value[string]
	ShortName optional.Value[string]
	Limit     optional.Value[int]
}

// ListPostSets lists post sets
func (c *Client) ListPostSets(ctx context.Context, opts ListPostSetsOptions) (*Response, error) {
	p := params.New("search")
	p.Add("id", opts.ID)
	p.Add("creator_id", opts.CreatorID)
	p.Add("name", opts.Name)
	p.Add("short_name", opts.ShortName)
	p.AddUnwrapped("limit", opts.Limit)

	return c.get(ctx, route("/post_sets.json"), p)
}

// ListBlipsOptions filters blips.
type ListBlipsOptions struct {
	ID          optional.Value[int]
	CreatorID   optional.Value[int]
	CreatorName optional.Value[string]
	ResponseTo  optional.Value[int]
	Limit       optional.Value[int]
}

// ListBlips lists blips
func (c *Client) ListBlips(ctx context.Context, opts ListBlipsOptions) (*Response, error) {
	p := params.New("search")
	p.Add("id", opts.ID)
	p.Add("creator_id", opts.CreatorID)
	p.Add("creator_name", opts.CreatorName)
	p.Add("response_to", opts.ResponseTo)
	p.AddUnwrapped("limit", opts.Limit)

	return c.get(ctx, route("/blips.json"), p)
}

// ListUserFeedbackOptions filters user feedback.
type ListUserFeedbackOptions struct {
	ID        optional.Value[int]
	UserID    optional.Value[int]
	CreatorID optional.Value[int]
	Category  optional.Value[FeedbackCategory]
	Limit     optional.Value[int]
}

// ListUserFeedback lists feedback records
func (c *Client) ListUserFeedback(ctx context.Context, opts ListUserFeedbackOptions) (*Response, error) {
	if !opts.Category.IsNone() && !oneOf(opts.Category.Unwrap(), FeedbackCategories()) {
		return nil, invalidArg("ListUserFeedback", "category", "must be one of %s, got %q",
			joinValues(FeedbackCategories()), opts.Category.Unwrap())
	}

	p := params.New("search")
	p.Add("id", opts.ID)
	p.Add("user_id", opts.UserID)
	p.Add("creator_id", opts.CreatorID)
	p.Add("category", opts.Category)
	p.AddUnwrapped("limit", opts.Limit)

	return c.get(ctx, route("/user_feedbacks.json"), p)
}

// ListForumTopicsOptions filters forum topics.
type ListForumTopicsOptions struct {
	ID         optional.Value[int]
	IsSticky   optional.Value[bool]
	IsLocked   optional.Value[bool]
	CategoryID optional.Value[ForumCategory]
	Limit      optional.Value[int]
}

// ListForumTopics lists forum topics
func (c *Client) ListForumTopics(ctx context.Context, opts ListForumTopicsOptions) (*Response, error) {
	p := params.New("search")
	p.Add("id", opts.ID)
	p.Add("is_sticky", opts.IsSticky)
	p.Add("is_locked", opts.IsLocked)
	p.Add("category_id", opts.CategoryID)
	p.AddUnwrapped("limit", opts.Limit)

	return c.get(ctx, route("/forum_topics.json"), p)
}
