package e621

import (
	"context"
	"net/http"
	"strings"

	"github.com/s0up4200/go-e621/optional"
	"github.com/s0up4200/go-e621/params"
)

// ListNotesOptions filters notes.
type ListNotesOptions struct {
	BodyMatches   optional.Value[string]
	NoteID        optional.Value[int]
	PostTagsMatch optional.Value[string]
	CreatorName   optional.Value[string]
	CreatorID     optional.Value[int]
	IsActive      optional.Value[bool]
	Limit         optional.Value[int]
}

// ListNotes lists notes
func (c *Client) ListNotes(ctx context.Context, opts ListNotesOptions) (*Response, error) {
	p := params.New("search")
	p.Add("body_matches", opts.BodyMatches)
	p.Add("note_id", opts.NoteID)
	p.Add("post_tags_match", opts.PostTagsMatch)
	p.Add("creator_name", opts.CreatorName)
	p.Add("creator_id", opts.CreatorID)
	p.Add("is_active", opts.IsActive)
	p.AddUnwrapped("limit", opts.Limit)

	return c.get(ctx, route("/notes.json"), p)
}

// Note is the placement and text of a note. X and Y are the pixel offset
// of the top left corner from the top left of the image.
type Note struct {
	X      int
	Y      int
	Width  int
	Height int
	Body   string
}

func (n Note) validate(op string, leading ...argCheck) error {
	checks := append(leading,
		arg("width", n.Width <= 0),
		arg("height", n.Height <= 0),
		arg("body", strings.TrimSpace(n.Body) == ""),
	)
	if err := requireArgs(op, checks...); err != nil {
		return err
	}
	if n.X < 0 {
		return invalidArg(op, "x", "must not be negative, got %d", n.X)
	}
	if n.Y < 0 {
		return invalidArg(op, "y", "must not be negative, got %d", n.Y)
	}
	return nil
}

func (n Note) addTo(p *params.Set) {
	p.Add("x", optional.Some(n.X))
	p.Add("y", optional.Some(n.Y))
	p.Add("width", optional.Some(n.Width))
	p.Add("height", optional.Some(n.Height))
	p.Put("body", n.Body)
}

// CreateNote places a new note on a post
func (c *Client) CreateNote(ctx context.Context, postID int, note Note) (*Response, error) {
	if err := note.validate("CreateNote", arg("post_id", postID <= 0)); err != nil {
		return nil, err
	}

	p := params.New("note")
	p.Add("post_id", optional.Some(postID))
	note.addTo(p)

	return c.post(ctx, route("/notes.json"), p)
}

// UpdateNote replaces a note's placement and text
func (c *Client) UpdateNote(ctx context.Context, noteID int, note Note) (*Response, error) {
	if err := note.validate("UpdateNote", arg("note_id", noteID <= 0)); err != nil {
		return nil, err
	}

	p := params.New("note")
	note.addTo(p)

	return c.put(ctx, route("/notes/{id}.json", noteID), p)
}

// DeleteNote deletes a note
func (c *Client) DeleteNote(ctx context.Context, noteID int) (*Response, error) {
	if err := requireArgs("DeleteNote", arg("note_id", noteID <= 0)); err != nil {
		return nil, err
	}
	return c.delete(ctx, route("/notes/{id}.json", noteID), nil)
}

// RevertNote restores a note to an earlier version. The site answers 204.
func (c *Client) RevertNote(ctx context.Context, noteID, versionID int) (*Response, error) {
	if err := requireArgs("RevertNote",
		arg("note_id", noteID <= 0),
		arg("version_id", versionID <= 0),
	); err != nil {
		return nil, err
	}

	p := params.New("")
	p.Add("version_id", optional.Some(versionID))

	return c.put(ctx, route("/notes/{id}/revert.json", noteID), p, expectStatus(http.StatusNoContent))
}
