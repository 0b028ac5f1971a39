package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s0up4200/go-e621/e621"
)

var notesCmd = &cobra.Command{
	Use:   "notes",
	Short: "List, place and edit post notes",
}

var notesListCmd = &cobra.Command{
	Use:   "list",
	Short: "Search notes",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := e621.ListNotesOptions{
			BodyMatches:   optString(cmd, "body"),
			NoteID:        optInt(cmd, "id"),
			PostTagsMatch: optString(cmd, "post-tags"),
			CreatorName:   optString(cmd, "creator"),
			CreatorID:     optInt(cmd, "creator-id"),
			IsActive:      optBool(cmd, "active"),
			Limit:         optInt(cmd, "limit"),
		}
		return runListing(cmd, func(ctx context.Context) (*e621.Response, error) {
			return client.ListNotes(ctx, opts)
		})
	},
}

// noteFromFlags reads the placement and text shared by create and update
func noteFromFlags(cmd *cobra.Command) e621.Note {
	var n e621.Note
	n.X, _ = cmd.Flags().GetInt("x")
	n.Y, _ = cmd.Flags().GetInt("y")
	n.Width, _ = cmd.Flags().GetInt("width")
	n.Height, _ = cmd.Flags().GetInt("height")
	n.Body, _ = cmd.Flags().GetString("body")
	return n
}

var notesCreateCmd = &cobra.Command{
	Use:   "create <post-id>",
	Short: "Place a note on a post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		resp, err := client.CreateNote(cmd.Context(), id, noteFromFlags(cmd))
		if err != nil {
			return err
		}
		return render(cmd.Context(), cmd.OutOrStdout(), resp)
	},
}

var notesUpdateCmd = &cobra.Command{
	Use:   "update <note-id>",
	Short: "Move, resize or rewrite a note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		resp, err := client.UpdateNote(cmd.Context(), id, noteFromFlags(cmd))
		if err != nil {
			return err
		}
		return render(cmd.Context(), cmd.OutOrStdout(), resp)
	},
}

var notesDeleteCmd = &cobra.Command{
	Use:   "delete <note-id>",
	Short: "Delete a note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if _, err := client.DeleteNote(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Deleted note %d\n", id)
		return nil
	},
}

var notesRevertCmd = &cobra.Command{
	Use:   "revert <note-id> <version-id>",
	Short: "Revert a note to an earlier version",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		versionID, err := parseID(args[1])
		if err != nil {
			return err
		}
		if _, err := client.RevertNote(cmd.Context(), id, versionID); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Reverted note %d to version %d\n", id, versionID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(notesCmd)
	notesCmd.AddCommand(notesListCmd, notesCreateCmd, notesUpdateCmd, notesDeleteCmd, notesRevertCmd)

	notesListCmd.Flags().String("body", "", "body pattern")
	notesListCmd.Flags().Int("id", 0, "note id")
	notesListCmd.Flags().String("post-tags", "", "tag query the noted post must match")
	notesListCmd.Flags().String("creator", "", "creator name")
	notesListCmd.Flags().Int("creator-id", 0, "creator account id")
	notesListCmd.Flags().Bool("active", true, "only active notes")
	notesListCmd.Flags().Int("limit", 0, "results per page")
	addWhereFlag(notesListCmd)

	for _, c := range []*cobra.Command{notesCreateCmd, notesUpdateCmd} {
		c.Flags().Int("x", 0, "left edge in pixels")
		c.Flags().Int("y", 0, "top edge in pixels")
		c.Flags().Int("width", 0, "width in pixels")
		c.Flags().Int("height", 0, "height in pixels")
		c.Flags().String("body", "", "note text")
		_ = c.MarkFlagRequired("width")
		_ = c.MarkFlagRequired("height")
		_ = c.MarkFlagRequired("body")
	}
}
