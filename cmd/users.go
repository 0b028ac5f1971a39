package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/s0up4200/go-e621/e621"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Look up accounts",
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "Search accounts",
	RunE: func(cmd *cobra.Command, args []string) error {
		level, err := optParsed(cmd, "level", e621.ParseAccountLevel)
		if err != nil {
			return err
		}
		opts := e621.ListUsersOptions{
			AccountID:       optInt(cmd, "id"),
			Level:           level,
			CanApprovePosts: optBool(cmd, "can-approve"),
			CanUploadFree:   optBool(cmd, "unlimited-uploads"),
			Limit:           optInt(cmd, "limit"),
		}
		return runListing(cmd, func(ctx context.Context) (*e621.Response, error) {
			return client.ListUsers(ctx, opts)
		})
	},
}

var usersGetCmd = &cobra.Command{
	Use:   "get [name]",
	Short: "Show an account, your own when no name is given",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var name string
		if len(args) == 1 {
			name = args[0]
		}
		return runListing(cmd, func(ctx context.Context) (*e621.Response, error) {
			return client.GetUser(ctx, name)
		})
	},
}

func init() {
	rootCmd.AddCommand(usersCmd)
	usersCmd.AddCommand(usersListCmd, usersGetCmd)

	usersListCmd.Flags().Int("id", 0, "account id")
	usersListCmd.Flags().String("level", "", "account level label or code")
	usersListCmd.Flags().Bool("can-approve", false, "only accounts that can approve posts")
	usersListCmd.Flags().Bool("unlimited-uploads", false, "only accounts with unlimited uploads")
	usersListCmd.Flags().Int("limit", 0, "results per page")
	addWhereFlag(usersListCmd)
}
