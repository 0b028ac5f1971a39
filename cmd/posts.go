package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/go-e621/e621"
	"github.com/s0up4200/go-e621/optional"
)

var postsCmd = &cobra.Command{
	Use:   "posts",
	Short: "List, upload and edit posts",
}

var postsListCmd = &cobra.Command{
	Use:   "list [tags...]",
	Short: "Search posts by tag query",
	Example: `  e6 posts list wolf solo rating:s --limit 10
  e6 posts list wolf --where 'fav_count > 100 and hasTag("smile")'`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := e621.ListPostsOptions{
			Page:  optInt(cmd, "page"),
			Limit: optInt(cmd, "limit"),
		}
		opts.Tags = optString(cmd, "tags")
		if len(args) > 0 {
			opts.Tags = optional.Some(strings.Join(args, " "))
		}
		return runListing(cmd, func(ctx context.Context) (*e621.Response, error) {
			return client.ListPosts(ctx, opts)
		})
	},
}

var postsCreateCmd = &cobra.Command{
	Use:   "create <file-or-url>",
	Short: "Upload a local file or a direct URL",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tags, _ := cmd.Flags().GetString("tags")
		rating, _ := cmd.Flags().GetString("rating")
		source, _ := cmd.Flags().GetString("source")

		opts := e621.CreatePostOptions{
			Description:     optString(cmd, "description"),
			ParentID:        optInt(cmd, "parent"),
			MD5Confirmation: optString(cmd, "md5"),
		}

		logger.Info().Str("file", args[0]).Str("rating", rating).Msg("Uploading post")
		resp, err := client.CreatePost(cmd.Context(), args[0], tags, rating, source, opts)
		if err != nil {
			return err
		}
		return render(cmd.Context(), cmd.OutOrStdout(), resp)
	},
}

var postsVoteCmd = &cobra.Command{
	Use:   "vote <up|down> <id>...",
	Short: "Vote on one or more posts",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		score := args[0]
		if _, err := e621.ParseVote(score); err != nil {
			return err
		}
		ids, err := parseIDs(args[1:])
		if err != nil {
			return err
		}

		opts := e621.VoteOptions{NoUnvote: optBool(cmd, "no-unvote")}
		return forEachID(cmd.Context(), ids, func(ctx context.Context, id int) error {
			if _, err := client.VotePost(ctx, id, score, opts); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Voted %s on post %d\n", score, id)
			return nil
		})
	},
}

var postsFavoriteCmd = &cobra.Command{
	Use:   "favorite <id>...",
	Short: "Add posts to or remove them from your favorites",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ids, err := parseIDs(args)
		if err != nil {
			return err
		}
		remove, _ := cmd.Flags().GetBool("remove")

		return forEachID(cmd.Context(), ids, func(ctx context.Context, id int) error {
			if _, err := client.FavoritePost(ctx, id, !remove); err != nil {
				return err
			}
			if remove {
				fmt.Fprintf(cmd.OutOrStdout(), "✓ Removed post %d from favorites\n", id)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "✓ Added post %d to favorites\n", id)
			}
			return nil
		})
	},
}

var postsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Edit tags, sources, rating and other fields of a post",
	Example: `  e6 posts update 123 --tags "wolf -fox" --reason "species fix"
  e6 posts update 123 --rating safe --lock-rating`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		opts := e621.UpdatePostOptions{
			TagStringDiff: optString(cmd, "tags"),
			SourceDiff:    optString(cmd, "sources"),
			ParentID:      optInt(cmd, "parent"),
			Description:   optString(cmd, "description"),
			Rating:        optString(cmd, "rating"),
			EditReason:    optString(cmd, "reason"),
			LockRating:    optBool(cmd, "lock-rating"),
			LockNotes:     optBool(cmd, "lock-notes"),
		}
		resp, err := client.UpdatePost(cmd.Context(), id, opts)
		if err != nil {
			return err
		}
		return render(cmd.Context(), cmd.OutOrStdout(), resp)
	},
}

var postsDeleteCmd = &cobra.Command{
	Use:   "delete <id>...",
	Short: "Delete posts, or restore them with --undelete",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ids, err := parseIDs(args)
		if err != nil {
			return err
		}
		undelete, _ := cmd.Flags().GetBool("undelete")
		opts := e621.DeletePostOptions{
			Reason:   optString(cmd, "reason"),
			Undelete: undelete,
		}

		verb := "Deleted"
		if undelete {
			verb = "Restored"
		} else if !confirm(cmd, fmt.Sprintf("Delete %d post(s)?", len(ids))) {
			logger.Info().Msg("Deletion cancelled")
			return nil
		}

		return forEachID(cmd.Context(), ids, func(ctx context.Context, id int) error {
			if _, err := client.DeletePost(ctx, id, opts); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ %s post %d\n", verb, id)
			return nil
		})
	},
}

var postsDestroyCmd = &cobra.Command{
	Use:   "destroy <id>",
	Short: "Permanently destroy a post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if !confirm(cmd, fmt.Sprintf("⚠️  Permanently destroy post %d? This cannot be undone.", id)) {
			logger.Info().Msg("Destroy cancelled")
			return nil
		}
		if _, err := client.DestroyPost(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Destroyed post %d\n", id)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(postsCmd)
	postsCmd.AddCommand(postsListCmd, postsCreateCmd, postsVoteCmd, postsFavoriteCmd,
		postsUpdateCmd, postsDeleteCmd, postsDestroyCmd)

	postsListCmd.Flags().String("tags", "", "tag query (alternative to arguments)")
	postsListCmd.Flags().Int("page", 0, "page number")
	postsListCmd.Flags().Int("limit", 50, "posts per page")
	addWhereFlag(postsListCmd)

	postsCreateCmd.Flags().String("tags", "", "space separated tags (required)")
	postsCreateCmd.Flags().String("rating", "", "s, q, e or safe, questionable, explicit (required)")
	postsCreateCmd.Flags().String("source", "", "source URL (required)")
	postsCreateCmd.Flags().String("description", "", "post description")
	postsCreateCmd.Flags().Int("parent", 0, "parent post id")
	postsCreateCmd.Flags().String("md5", "", "expected MD5 of the file")
	for _, name := range []string{"tags", "rating", "source"} {
		_ = postsCreateCmd.MarkFlagRequired(name)
	}

	postsVoteCmd.Flags().Bool("no-unvote", false, "keep the vote when voting the same way twice")
	addBatchFlags(postsVoteCmd)

	postsFavoriteCmd.Flags().Bool("remove", false, "remove from favorites instead")
	addBatchFlags(postsFavoriteCmd)

	postsUpdateCmd.Flags().String("tags", "", "tag changes, prefix with - to remove")
	postsUpdateCmd.Flags().String("sources", "", "source changes, prefix with - to remove")
	postsUpdateCmd.Flags().Int("parent", 0, "parent post id")
	postsUpdateCmd.Flags().String("description", "", "new description")
	postsUpdateCmd.Flags().String("rating", "", "new rating")
	postsUpdateCmd.Flags().String("reason", "", "edit reason")
	postsUpdateCmd.Flags().Bool("lock-rating", false, "lock the rating")
	postsUpdateCmd.Flags().Bool("lock-notes", false, "lock notes")

	postsDeleteCmd.Flags().String("reason", "", "deletion reason (required unless --undelete)")
	postsDeleteCmd.Flags().Bool("undelete", false, "restore deleted posts")
	postsDeleteCmd.Flags().BoolVarP(&noConfirm, "yes", "y", false, "skip confirmation prompt")
	addBatchFlags(postsDeleteCmd)

	postsDestroyCmd.Flags().BoolVarP(&noConfirm, "yes", "y", false, "skip confirmation prompt")
}
