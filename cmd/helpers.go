package cmd

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/s0up4200/go-e621/e621"
	"github.com/s0up4200/go-e621/filter"
	"github.com/s0up4200/go-e621/optional"
)

var (
	whereExpr   string
	concurrency int
	noConfirm   bool
)

// Flags only become parameters when the user set them on the command line.

func optString(cmd *cobra.Command, name string) optional.Value[string] {
	if !cmd.Flags().Changed(name) {
		return optional.None[string]()
	}
	v, _ := cmd.Flags().GetString(name)
	return optional.Some(v)
}

func optInt(cmd *cobra.Command, name string) optional.Value[int] {
	if !cmd.Flags().Changed(name) {
		return optional.None[int]()
	}
	v, _ := cmd.Flags().GetInt(name)
	return optional.Some(v)
}

func optBool(cmd *cobra.Command, name string) optional.Value[bool] {
	if !cmd.Flags().Changed(name) {
		return optional.None[bool]()
	}
	v, _ := cmd.Flags().GetBool(name)
	return optional.Some(v)
}

// optParsed runs a string flag through an enumeration parser
func optParsed[T any](cmd *cobra.Command, name string, parse func(string) (T, error)) (optional.Value[T], error) {
	if !cmd.Flags().Changed(name) {
		return optional.None[T](), nil
	}
	raw, _ := cmd.Flags().GetString(name)
	v, err := parse(raw)
	if err != nil {
		return optional.None[T](), fmt.Errorf("--%s: %w", name, err)
	}
	return optional.Some(v), nil
}

// asIs is the parser for string enumerations the client validates itself
func asIs[T ~string](s string) (T, error) {
	return T(s), nil
}

func parseIDs(args []string) ([]int, error) {
	ids := make([]int, 0, len(args))
	for _, a := range args {
		for _, part := range strings.FieldsFunc(a, func(r rune) bool { return r == ',' }) {
			id, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil || id <= 0 {
				return nil, fmt.Errorf("invalid id: %q", part)
			}
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func parseID(arg string) (int, error) {
	ids, err := parseIDs([]string{arg})
	if err != nil {
		return 0, err
	}
	if len(ids) != 1 {
		return 0, fmt.Errorf("expected one id, got %q", arg)
	}
	return ids[0], nil
}

func addWhereFlag(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&whereExpr, "where", "w", "", "filter expression or @name of a configured filter")
}

// render prints a response body as indented JSON, keeping only the records
// matching --where when it is set.
func render(ctx context.Context, out io.Writer, resp *e621.Response) error {
	body := resp.Body()

	if whereExpr != "" {
		records, err := filter.Records(body)
		if err != nil {
			return err
		}
		matched, err := filters.Apply(ctx, whereExpr, records)
		if err != nil {
			return fmt.Errorf("failed to apply filter: %w", err)
		}
		logger.Debug().Int("total", len(records)).Int("matched", len(matched)).Msg("Filtered listing")

		if matched == nil {
			matched = []filter.Record{}
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(matched)
	}

	if len(bytes.TrimSpace(body)) == 0 {
		fmt.Fprintf(out, "OK (%d)\n", resp.StatusCode())
		return nil
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, body, "", "  "); err != nil {
		// not JSON; print as received
		_, err = out.Write(body)
		return err
	}
	buf.WriteByte('\n')
	_, err := buf.WriteTo(out)
	return err
}

// runListing executes a listing call and renders its result
func runListing(cmd *cobra.Command, call func(context.Context) (*e621.Response, error)) error {
	resp, err := call(cmd.Context())
	if err != nil {
		return err
	}
	return render(cmd.Context(), cmd.OutOrStdout(), resp)
}

// forEachID runs fn for every id, at most batch.concurrency at a time.
// Every id is attempted; the first error is returned.
func forEachID(ctx context.Context, ids []int, fn func(ctx context.Context, id int) error) error {
	limit := cfg.Batch.Concurrency
	if concurrency > 0 {
		limit = concurrency
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	var firstErr error
	errs := make([]error, len(ids))
	for i, id := range ids {
		g.Go(func() error {
			if err := fn(ctx, id); err != nil {
				logger.Error().Err(err).Int("id", id).Msg("Request failed")
				errs[i] = err
			}
			return nil
		})
	}
	_ = g.Wait()

	failed := 0
	for _, err := range errs {
		if err != nil {
			failed++
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d requests failed: %w", failed, len(ids), firstErr)
	}
	return nil
}

func addBatchFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&concurrency, "concurrency", 0, "parallel requests (default batch.concurrency)")
}

// confirm asks a yes/no question unless --yes was given
func confirm(cmd *cobra.Command, question string) bool {
	if noConfirm {
		return true
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N]: ", question)
	reader := bufio.NewReader(cmd.InOrStdin())
	response, _ := reader.ReadString('\n')
	return strings.ToLower(strings.TrimSpace(response)) == "y"
}
