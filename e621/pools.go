package e621

import (
	"context"
	"strconv"
	"strings"

	"github.com/s0up4200/go-e621/optional"
	"github.com/s0up4200/go-e621/params"
)

// ListPoolsOptions filters pools.
type ListPoolsOptions struct {
	NameMatches        optional.Value[string]
	ID                 optional.Value[int]
	DescriptionMatches optional.Value[string]
	CreatorName        optional.Value[string]
	CreatorID          optional.Value[int]
	IsActive           optional.Value[bool]
	IsDeleted          optional.Value[bool]
	Category           optional.Value[PoolCategory]
	Order              optional.Value[string]
	Limit              optional.Value[int]
}

// ListPools lists pools
func (c *Client) ListPools(ctx context.Context, opts ListPoolsOptions) (*Response, error) {
	if !opts.Category.IsNone() && !oneOf(opts.Category.Unwrap(), PoolCategories()) {
		return nil, invalidArg("ListPools", "category", "must be one of %s, got %q", joinValues(PoolCategories()), opts.Category.Unwrap())
	}

	p := params.New("search")
	p.Add("name_matches", opts.NameMatches)
	p.Add("id", opts.ID)
	p.Add("description_matches", opts.DescriptionMatches)
	p.Add("creator_name", opts.CreatorName)
	p.Add("creator_id", opts.CreatorID)
	p.Add("is_active", opts.IsActive)
	p.Add("is_deleted", opts.IsDeleted)
	p.Add("category", opts.Category)
	p.Add("order", opts.Order)
	p.AddUnwrapped("limit", opts.Limit)

	return c.get(ctx, route("/pools.json"), p)
}

// CreatePoolOptions holds the optional pool fields.
type CreatePoolOptions struct {
	Description optional.Value[string]
	IsLocked    optional.Value[bool]
}

// CreatePool creates a pool. category must be PoolSeries or PoolCollection.
func (c *Client) CreatePool(ctx context.Context, name string, category PoolCategory, opts CreatePoolOptions) (*Response, error) {
	const op = "CreatePool"
	if err := requireArgs(op,
		arg("name", strings.TrimSpace(name) == ""),
		arg("category", category == ""),
	); err != nil {
		return nil, err
	}
	if !oneOf(category, PoolCategories()) {
		return nil, invalidArg(op, "category", "must be one of %s, got %q", joinValues(PoolCategories()), category)
	}

	p := params.New("pool")
	p.Put("name", name)
	p.Add("category", optional.Some(category))
	p.Add("description", opts.Description)
	p.Add("is_locked", opts.IsLocked)

	return c.post(ctx, route("/pools.json"), p)
}

// UpdatePoolOptions lists the editable pool fields. Only present fields
// are sent; PostIDs replaces the pool's posts when non-empty.
type UpdatePoolOptions struct {
	Name        optional.Value[string]
	Description optional.Value[string]
	PostIDs     []int
	IsActive    optional.Value[bool]
	Category    optional.Value[PoolCategory]
}

// UpdatePool edits a pool
func (c *Client) UpdatePool(ctx context.Context, poolID int, opts UpdatePoolOptions) (*Response, error) {
	const op = "UpdatePool"
	if err := requireArgs(op, arg("pool_id", poolID <= 0)); err != nil {
		return nil, err
	}
	if !opts.Category.IsNone() && !oneOf(opts.Category.Unwrap(), PoolCategories()) {
		return nil, invalidArg(op, "category", "must be one of %s, got %q", joinValues(PoolCategories()), opts.Category.Unwrap())
	}

	p := params.New("pool")
	p.Add("name", opts.Name)
	p.Add("description", opts.Description)
	if len(opts.PostIDs) > 0 {
		p.Put("post_ids", joinIDs(opts.PostIDs))
	}
	p.Add("is_active", opts.IsActive)
	p.Add("category", opts.Category)

	return c.put(ctx, route("/pools/{id}.json", poolID), p)
}

// RevertPool restores a pool to an earlier version
func (c *Client) RevertPool(ctx context.Context, poolID, versionID int) (*Response, error) {
	if err := requireArgs("RevertPool",
		arg("pool_id", poolID <= 0),
		arg("version_id", versionID <= 0),
	); err != nil {
		return nil, err
	}

	p := params.New("")
	p.Add("version_id", optional.Some(versionID))

	return c.put(ctx, route("/pools/{id}/revert.json", poolID), p)
}

func joinIDs(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, " ")
}
