package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/s0up4200/go-e621/e621"
)

var flagsCmd = &cobra.Command{
	Use:   "flags",
	Short: "List and create post flags",
}

var flagsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List post flags",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := e621.ListFlagsOptions{
			CreatorID:   optInt(cmd, "creator-id"),
			PostID:      optInt(cmd, "post"),
			CreatorName: optString(cmd, "creator"),
			Limit:       optInt(cmd, "limit"),
		}
		return runListing(cmd, func(ctx context.Context) (*e621.Response, error) {
			return client.ListFlags(ctx, opts)
		})
	},
}

var flagsCreateCmd = &cobra.Command{
	Use:   "create <post-id> <reason>",
	Short: "Flag a post for deletion",
	Long: `Flag a post for deletion. The reason is one of the values printed by
"e6 enums flag-reasons". The inferior reason needs --parent.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		resp, err := client.CreateFlag(cmd.Context(), id, args[1], e621.CreateFlagOptions{
			ParentID: optInt(cmd, "parent"),
		})
		if err != nil {
			return err
		}
		return render(cmd.Context(), cmd.OutOrStdout(), resp)
	},
}

func init() {
	rootCmd.AddCommand(flagsCmd)
	flagsCmd.AddCommand(flagsListCmd, flagsCreateCmd)

	flagsListCmd.Flags().Int("creator-id", 0, "flagger account id")
	flagsListCmd.Flags().String("creator", "", "flagger name")
	flagsListCmd.Flags().Int("post", 0, "flagged post id")
	flagsListCmd.Flags().Int("limit", 0, "results per page")
	addWhereFlag(flagsListCmd)

	flagsCreateCmd.Flags().Int("parent", 0, "superior post id for the inferior reason")
}
