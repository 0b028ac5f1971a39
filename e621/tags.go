package e621

import (
	"context"

	"github.com/s0up4200/go-e621/optional"
	"github.com/s0up4200/go-e621/params"
)

// MaxTagLimit is the largest page size the tag listing accepts.
const MaxTagLimit = 1000

// ListTagsOptions filters a tag search. Unset fields fall back to order
// "date", hiding empty tags, 75 results and page 0.
type ListTagsOptions struct {
	NameMatches optional.Value[string]
	Category    optional.Value[TagCategory]
	Order       optional.Value[TagOrder]
	HideEmpty   optional.Value[bool]
	HasWiki     optional.Value[bool]
	HasArtist   optional.Value[bool]
	Limit       optional.Value[int]
	Page        optional.Value[int]
}

// ListTags searches tags
func (c *Client) ListTags(ctx context.Context, opts ListTagsOptions) (*Response, error) {
	const op = "ListTags"

	order := opts.Order.UnwrapOr(TagOrderDate)
	if !oneOf(order, TagOrders()) {
		return nil, invalidArg(op, "order", "must be one of %s, got %q", joinValues(TagOrders()), order)
	}
	limit := opts.Limit.UnwrapOr(75)
	if limit < 1 || limit > MaxTagLimit {
		return nil, invalidArg(op, "limit", "must be between 1 and %d, got %d", MaxTagLimit, limit)
	}

	p := params.New("search")
	p.Add("name_matches", opts.NameMatches)
	p.Add("category", opts.Category)
	p.Add("order", optional.Some(order))
	p.Add("hide_empty", opts.HideEmpty.Or(optional.Some(true)))
	p.Add("has_wiki", opts.HasWiki)
	p.Add("has_artist", opts.HasArtist)
	p.AddUnwrapped("limit", optional.Some(limit))
	p.AddUnwrapped("page", opts.Page.Or(optional.Some(0)))

	return c.get(ctx, route("/tags.json"), p)
}

// ListTagAliasesOptions filters tag aliases. Status and Order are
// validated only when set.
type ListTagAliasesOptions struct {
	NameMatches   optional.Value[string]
	Status        optional.Value[AliasStatus]
	Order         optional.Value[AliasOrder]
	AntecedentTag optional.Value[string]
	ConsequentTag optional.Value[string]
	Limit         optional.Value[int]
	Page          optional.Value[int]
}

// ListTagAliases lists tag aliases
func (c *Client) ListTagAliases(ctx context.Context, opts ListTagAliasesOptions) (*Response, error) {
	const op = "ListTagAliases"
	if !opts.Status.IsNone() && !oneOf(opts.Status.Unwrap(), AliasStatuses()) {
		return nil, invalidArg(op, "status", "must be one of %s, got %q", joinValues(AliasStatuses()), opts.Status.Unwrap())
	}
	if !opts.Order.IsNone() && !oneOf(opts.Order.Unwrap(), AliasOrders()) {
		return nil, invalidArg(op, "order", "must be one of %s, got %q", joinValues(AliasOrders()), opts.Order.Unwrap())
	}

	p := params.New("search")
	p.Add("name_matches", opts.NameMatches)
	p.Add("status", opts.Status)
	p.Add("order", opts.Order)
	p.Add("antecedent_tag", opts.AntecedentTag)
	p.Add("consequent_tag", opts.ConsequentTag)
	p.AddUnwrapped("limit", opts.Limit)
	p.AddUnwrapped("page", opts.Page)

	return c.get(ctx, route("/tag_aliases.json"), p)
}

// ListTagImplicationsOptions filters tag implications.
type ListTagImplicationsOptions struct {
	ID             optional.Value[int]
	AntecedentName optional.Value[string]
	ConsequentName optional.Value[string]
	Status         optional.Value[string]
	Limit          optional.Value[int]
}

// ListTagImplications lists tag implications
func (c *Client) ListTagImplications(ctx context.Context, opts ListTagImplicationsOptions) (*Response, error) {
	p := params.New("search")
	p.Add("id", opts.ID)
	p.Add("antecedent_name", opts.AntecedentName)
	p.Add("consequent_name", opts.ConsequentName)
	p.Add("status", opts.Status)
	p.AddUnwrapped("limit", opts.Limit)

	return c.get(ctx, route("/tag_implications.json"), p)
}
