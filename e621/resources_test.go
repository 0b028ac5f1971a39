package e621

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/go-e621/optional"
)

func TestListTagsDefaults(t *testing.T) {
	client, rec := newTestClient(t, http.StatusOK, `[]`)

	_, err := client.ListTags(context.Background(), ListTagsOptions{})
	require.NoError(t, err)

	req := rec.last(t)
	assert.Equal(t, "/tags.json", req.Path)
	assert.Equal(t, url.Values{
		"search[order]":      {"date"},
		"search[hide_empty]": {"true"},
		"limit":              {"75"},
		"page":               {"0"},
	}, req.Query)
}

func TestListTags(t *testing.T) {
	client, rec := newTestClient(t, http.StatusOK, `[]`)

	_, err := client.ListTags(context.Background(), ListTagsOptions{
		NameMatches: optional.Some("wolf*"),
		Category:    optional.Some(TagCategorySpecies),
		Order:       optional.Some(TagOrderCount),
		HideEmpty:   optional.Some(false),
		HasWiki:     optional.Some(true),
		Limit:       optional.Some(1000),
		Page:        optional.Some(2),
	})
	require.NoError(t, err)

	q := rec.last(t).Query
	assert.Equal(t, "wolf*", q.Get("search[name_matches]"))
	assert.Equal(t, "5", q.Get("search[category]"))
	assert.Equal(t, "count", q.Get("search[order]"))
	assert.Equal(t, "false", q.Get("search[hide_empty]"))
	assert.Equal(t, "true", q.Get("search[has_wiki]"))
	assert.False(t, q.Has("search[has_artist]"))
	assert.Equal(t, "1000", q.Get("limit"))
	assert.Equal(t, "2", q.Get("page"))
}

func TestListTagsValidation(t *testing.T) {
	client, rec := newTestClient(t, http.StatusOK, `[]`)

	_, err := client.ListTags(context.Background(), ListTagsOptions{Limit: optional.Some(1001)})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "limit", ve.Field)

	_, err = client.ListTags(context.Background(), ListTagsOptions{Order: optional.Some(TagOrder("random"))})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "order", ve.Field)

	assert.Empty(t, rec.all())
}

func TestListTagAliases(t *testing.T) {
	client, rec := newTestClient(t, http.StatusOK, `[]`)

	_, err := client.ListTagAliases(context.Background(), ListTagAliasesOptions{})
	require.NoError(t, err)
	req := rec.last(t)
	assert.Equal(t, "/tag_aliases.json", req.Path)
	assert.Empty(t, req.Query)

	_, err = client.ListTagAliases(context.Background(), ListTagAliasesOptions{
		Status: optional.Some(AliasProcessing),
		Order:  optional.Some(AliasOrderTagCount),
		Page:   optional.Some(0),
	})
	require.NoError(t, err)
	q := rec.last(t).Query
	assert.Equal(t, "processing", q.Get("search[status]"))
	assert.Equal(t, "tag_count", q.Get("search[order]"))
	assert.Equal(t, "0", q.Get("page"))

	_, err = client.ListTagAliases(context.Background(), ListTagAliasesOptions{Status: optional.Some(AliasStatus("lost"))})
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Len(t, rec.all(), 2)
}

func TestListTagImplications(t *testing.T) {
	client, rec := newTestClient(t, http.StatusOK, `[]`)

	_, err := client.ListTagImplications(context.Background(), ListTagImplicationsOptions{
		AntecedentName: optional.Some("wolf"),
		Limit:          optional.Some(5),
	})
	require.NoError(t, err)

	req := rec.last(t)
	assert.Equal(t, "/tag_implications.json", req.Path)
	assert.Equal(t, "wolf", req.Query.Get("search[antecedent_name]"))
	assert.Equal(t, "5", req.Query.Get("limit"))
}

func TestNotes(t *testing.T) {
	note := Note{X: 0, Y: 10, Width: 100, Height: 50, Body: "hi"}

	t.Run("create", func(t *testing.T) {
		client, rec := newTestClient(t, http.StatusOK, `{}`)

		_, err := client.CreateNote(context.Background(), 7, note)
		require.NoError(t, err)

		req := rec.last(t)
		assert.Equal(t, http.MethodPost, req.Method)
		assert.Equal(t, "/notes.json", req.Path)
		assert.Equal(t, url.Values{
			"note[post_id]": {"7"},
			"note[x]":       {"0"},
			"note[y]":       {"10"},
			"note[width]":   {"100"},
			"note[height]":  {"50"},
			"note[body]":    {"hi"},
		}, req.Form)
	})

	t.Run("update", func(t *testing.T) {
		client, rec := newTestClient(t, http.StatusOK, `{}`)

		_, err := client.UpdateNote(context.Background(), 8, note)
		require.NoError(t, err)

		req := rec.last(t)
		assert.Equal(t, http.MethodPut, req.Method)
		assert.Equal(t, "/notes/8.json", req.Path)
		assert.False(t, req.Form.Has("note[post_id]"))
		assert.Equal(t, "hi", req.Form.Get("note[body]"))
	})

	t.Run("delete", func(t *testing.T) {
		client, rec := newTestClient(t, http.StatusOK, `{}`)

		_, err := client.DeleteNote(context.Background(), 8)
		require.NoError(t, err)
		req := rec.last(t)
		assert.Equal(t, http.MethodDelete, req.Method)
		assert.Equal(t, "/notes/8.json", req.Path)
	})

	t.Run("revert expects no content", func(t *testing.T) {
		client, rec := newTestClient(t, http.StatusNoContent, "")

		_, err := client.RevertNote(context.Background(), 8, 3)
		require.NoError(t, err)
		req := rec.last(t)
		assert.Equal(t, http.MethodPut, req.Method)
		assert.Equal(t, "/notes/8/revert.json", req.Path)
		assert.Equal(t, "3", req.Form.Get("version_id"))

		ok, _ := newTestClient(t, http.StatusOK, `{}`)
		_, err = ok.RevertNote(context.Background(), 8, 3)
		var se *StatusError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, http.StatusNoContent, se.Expected)
	})

	t.Run("negative offset", func(t *testing.T) {
		client, rec := newTestClient(t, http.StatusOK, `{}`)

		_, err := client.CreateNote(context.Background(), 7, Note{X: -1, Y: 0, Width: 1, Height: 1, Body: "x"})
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "x", ve.Field)
		assert.Empty(t, rec.all())
	})
}

func TestPools(t *testing.T) {
	t.Run("create", func(t *testing.T) {
		client, rec := newTestClient(t, http.StatusOK, `{}`)

		_, err := client.CreatePool(context.Background(), "My Pool", PoolSeries, CreatePoolOptions{IsLocked: optional.Some(false)})
		require.NoError(t, err)

		req := rec.last(t)
		assert.Equal(t, "/pools.json", req.Path)
		assert.Equal(t, "My Pool", req.Form.Get("pool[name]"))
		assert.Equal(t, "series", req.Form.Get("pool[category]"))
		assert.Equal(t, "false", req.Form.Get("pool[is_locked]"))
		assert.False(t, req.Form.Has("pool[description]"))
	})

	t.Run("create rejects unknown category", func(t *testing.T) {
		client, rec := newTestClient(t, http.StatusOK, `{}`)

		_, err := client.CreatePool(context.Background(), "My Pool", PoolCategory("album"), CreatePoolOptions{})
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "category", ve.Field)
		assert.Empty(t, rec.all())
	})

	t.Run("update", func(t *testing.T) {
		client, rec := newTestClient(t, http.StatusOK, `{}`)

		_, err := client.UpdatePool(context.Background(), 12, UpdatePoolOptions{
			PostIDs:  []int{1, 2, 3},
			IsActive: optional.Some(false),
		})
		require.NoError(t, err)

		req := rec.last(t)
		assert.Equal(t, http.MethodPut, req.Method)
		assert.Equal(t, "/pools/12.json", req.Path)
		assert.Equal(t, "1 2 3", req.Form.Get("pool[post_ids]"))
		assert.Equal(t, "false", req.Form.Get("pool[is_active]"))
	})

	t.Run("revert", func(t *testing.T) {
		client, rec := newTestClient(t, http.StatusOK, `{}`)

		_, err := client.RevertPool(context.Background(), 12, 4)
		require.NoError(t, err)

		req := rec.last(t)
		assert.Equal(t, http.MethodPut, req.Method)
		assert.Equal(t, "/pools/12/revert.json", req.Path)
		assert.Equal(t, "4", req.Form.Get("version_id"))
	})

	t.Run("list", func(t *testing.T) {
		client, rec := newTestClient(t, http.StatusOK, `[]`)

		_, err := client.ListPools(context.Background(), ListPoolsOptions{
			Category: optional.Some(PoolCollection),
			Limit:    optional.Some(20),
		})
		require.NoError(t, err)
		q := rec.last(t).Query
		assert.Equal(t, "collection", q.Get("search[category]"))
		assert.Equal(t, "20", q.Get("limit"))
	})
}

func TestUsers(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		client, rec := newTestClient(t, http.StatusOK, `[]`)

		_, err := client.ListUsers(context.Background(), ListUsersOptions{
			Level:         optional.Some(LevelJanitor),
			CanUploadFree: optional.Some(true),
		})
		require.NoError(t, err)
		q := rec.last(t).Query
		assert.Equal(t, "35", q.Get("search[level]"))
		assert.Equal(t, "true", q.Get("search[can_upload_free]"))
	})

	t.Run("get falls back to configured account", func(t *testing.T) {
		client, rec := newTestClient(t, http.StatusOK, `{}`, WithCredentials("fox", "key"))

		_, err := client.GetUser(context.Background(), "")
		require.NoError(t, err)
		assert.Equal(t, "/users/fox.json", rec.last(t).Path)
	})

	t.Run("get without any name", func(t *testing.T) {
		client, rec := newTestClient(t, http.StatusOK, `{}`)

		_, err := client.GetUser(context.Background(), "")
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, []string{"name"}, ve.Missing)
		assert.Empty(t, rec.all())
	})
}

func TestGenericListings(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		call      func(*Client) error
		wantPath  string
		wantQuery url.Values
	}{
		{
			name: "wiki pages",
			call: func(c *Client) error {
				_, err := c.ListWikiPages(ctx, ListWikiPagesOptions{Title: optional.Some("wolf"), IsLocked: optional.Some(false)})
				return err
			},
			wantPath:  "/wiki_pages.json",
			wantQuery: url.Values{"search[title]": {"wolf"}, "search[is_locked]": {"false"}},
		},
		{
			name: "post sets",
			call: func(c *Client) error {
				_, err := c.ListPostSets(ctx, ListPostSetsOptions{ShortName: optional.Some("best"), Limit: optional.Some(5)})
				return err
			},
			wantPath:  "/post_sets.json",
			wantQuery: url.Values{"search[short_name]": {"best"}, "limit": {"5"}},
		},
		{
			name: "blips",
			call: func(c *Client) error {
				_, err := c.ListBlips(ctx, ListBlipsOptions{ResponseTo: optional.Some(9)})
				return err
			},
			wantPath:  "/blips.json",
			wantQuery: url.Values{"search[response_to]": {"9"}},
		},
		{
			name: "user feedback",
			call: func(c *Client) error {
				_, err := c.ListUserFeedback(ctx, ListUserFeedbackOptions{Category: optional.Some(FeedbackNeutral)})
				return err
			},
			wantPath:  "/user_feedbacks.json",
			wantQuery: url.Values{"search[category]": {"neutral"}},
		},
		{
			name: "forum topics",
			call: func(c *Client) error {
				_, err := c.ListForumTopics(ctx, ListForumTopicsOptions{CategoryID: optional.Some(ForumArtTalk), IsSticky: optional.Some(true)})
				return err
			},
			wantPath:  "/forum_topics.json",
			wantQuery: url.Values{"search[category_id]": {"3"}, "search[is_sticky]": {"true"}},
		},
		{
			name: "notes",
			call: func(c *Client) error {
				_, err := c.ListNotes(ctx, ListNotesOptions{BodyMatches: optional.Some("hello"), Limit: optional.Some(1)})
				return err
			},
			wantPath:  "/notes.json",
			wantQuery: url.Values{"search[body_matches]": {"hello"}, "limit": {"1"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, rec := newTestClient(t, http.StatusOK, `[]`)

			require.NoError(t, tt.call(client))
			req := rec.last(t)
			assert.Equal(t, http.MethodGet, req.Method)
			assert.Equal(t, tt.wantPath, req.Path)
			assert.Equal(t, tt.wantQuery, req.Query)
		})
	}
}

func TestListUserFeedbackRejectsCategory(t *testing.T) {
	client, rec := newTestClient(t, http.StatusOK, `[]`)

	_, err := client.ListUserFeedback(context.Background(), ListUserFeedbackOptions{Category: optional.Some(FeedbackCategory("mixed"))})
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Empty(t, rec.all())
}

func TestMissingArguments(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		call    func(*Client) error
		missing []string
	}{
		{"vote", func(c *Client) error { _, err := c.VotePost(ctx, 0, "", VoteOptions{}); return err }, []string{"post_id", "score"}},
		{"favorite", func(c *Client) error { _, err := c.FavoritePost(ctx, 0, true); return err }, []string{"post_id"}},
		{"delete", func(c *Client) error { _, err := c.DeletePost(ctx, 0, DeletePostOptions{}); return err }, []string{"post_id", "reason"}},
		{"destroy", func(c *Client) error { _, err := c.DestroyPost(ctx, 0); return err }, []string{"post_id"}},
		{"update post", func(c *Client) error { _, err := c.UpdatePost(ctx, 0, UpdatePostOptions{}); return err }, []string{"post_id"}},
		{"create flag", func(c *Client) error { _, err := c.CreateFlag(ctx, 0, "", CreateFlagOptions{}); return err }, []string{"post_id", "reason_name"}},
		{"create note", func(c *Client) error { _, err := c.CreateNote(ctx, 0, Note{}); return err }, []string{"post_id", "width", "height", "body"}},
		{"update note", func(c *Client) error { _, err := c.UpdateNote(ctx, 0, Note{Width: 1, Height: 1}); return err }, []string{"note_id", "body"}},
		{"delete note", func(c *Client) error { _, err := c.DeleteNote(ctx, 0); return err }, []string{"note_id"}},
		{"revert note", func(c *Client) error { _, err := c.RevertNote(ctx, 0, 0); return err }, []string{"note_id", "version_id"}},
		{"create pool", func(c *Client) error { _, err := c.CreatePool(ctx, "", "", CreatePoolOptions{}); return err }, []string{"name", "category"}},
		{"update pool", func(c *Client) error { _, err := c.UpdatePool(ctx, 0, UpdatePoolOptions{}); return err }, []string{"pool_id"}},
		{"revert pool", func(c *Client) error { _, err := c.RevertPool(ctx, 1, 0); return err }, []string{"version_id"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, rec := newTestClient(t, http.StatusOK, `{}`)

			err := tt.call(client)
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.ErrorIs(t, err, ErrInvalidArgument)
			assert.Equal(t, tt.missing, ve.Missing)
			for _, name := range tt.missing {
				assert.Contains(t, err.Error(), name)
			}
			assert.Empty(t, rec.all())
		})
	}
}
