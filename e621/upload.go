package e621

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-resty/resty/v2"

	"github.com/s0up4200/go-e621/optional"
	"github.com/s0up4200/go-e621/params"
)

// CreatePostOptions holds the optional upload fields.
type CreatePostOptions struct {
	Description optional.Value[string]
	ParentID    optional.Value[int]
	// MD5Confirmation is computed from local files when unset.
	MD5Confirmation optional.Value[string]
}

// CreatePost uploads a new post. file is either an http(s) URL, sent as a
// direct link, or a local path whose contents are streamed.
func (c *Client) CreatePost(ctx context.Context, file, tags, rating, source string, opts CreatePostOptions) (*Response, error) {
	const op = "CreatePost"
	if err := requireArgs(op,
		arg("file", strings.TrimSpace(file) == ""),
		arg("tags", strings.TrimSpace(tags) == ""),
		arg("rating", strings.TrimSpace(rating) == ""),
		arg("source", strings.TrimSpace(source) == ""),
	); err != nil {
		return nil, err
	}

	r, err := ParseRating(rating)
	if err != nil {
		return nil, invalidArg(op, "rating", "must be one of e, q, s, explicit, questionable, safe, got %q", rating)
	}

	p := params.New("upload")
	var parts []*resty.MultipartField

	if isDirectURL(file) {
		p.Put("direct_url", file)
		p.Add("md5_confirmation", opts.MD5Confirmation)
	} else {
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("e621: %s: %w", op, err)
		}
		defer f.Close()

		sum := opts.MD5Confirmation
		if sum.IsNone() {
			hash, err := md5Hex(f)
			if err != nil {
				return nil, fmt.Errorf("e621: %s: hash %s: %w", op, file, err)
			}
			sum = optional.Some(hash)
			c.logger.Debug().Str("file", file).Str("md5", hash).Msg("computed upload checksum")
		}

		contentType, err := detectContentType(f)
		if err != nil {
			return nil, fmt.Errorf("e621: %s: read %s: %w", op, file, err)
		}

		parts = append(parts, &resty.MultipartField{
			Param:       p.Key("file"),
			FileName:    filepath.Base(file),
			ContentType: contentType,
			Reader:      f,
		})
		p.Add("md5_confirmation", sum)
	}

	p.Put("tag_string", tags)
	p.Add("rating", optional.Some(r))
	p.Put("source", source)
	p.Add("description", opts.Description)
	p.Add("parent_id", opts.ParentID)

	return c.post(ctx, route("/uploads.json"), p, asMultipart(parts...))
}

// isDirectURL reports whether s names a remote http(s) resource rather
// than a local path.
func isDirectURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// md5Hex hashes the rest of f and rewinds it.
func md5Hex(f io.ReadSeeker) (string, error) {
	h := md5.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// detectContentType sniffs the file header and rewinds f.
func detectContentType(f io.ReadSeeker) (string, error) {
	mtype, err := mimetype.DetectReader(f)
	if err != nil {
		return "", err
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	return mtype.String(), nil
}
