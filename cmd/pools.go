package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s0up4200/go-e621/e621"
)

var poolsCmd = &cobra.Command{
	Use:   "pools",
	Short: "List, create and edit pools",
}

var poolsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Search pools",
	RunE: func(cmd *cobra.Command, args []string) error {
		category, err := optParsed(cmd, "category", asIs[e621.PoolCategory])
		if err != nil {
			return err
		}
		opts := e621.ListPoolsOptions{
			NameMatches:        optString(cmd, "name"),
			ID:                 optInt(cmd, "id"),
			DescriptionMatches: optString(cmd, "description"),
			CreatorName:        optString(cmd, "creator"),
			CreatorID:          optInt(cmd, "creator-id"),
			IsActive:           optBool(cmd, "active"),
			IsDeleted:          optBool(cmd, "deleted"),
			Category:           category,
			Order:              optString(cmd, "order"),
			Limit:              optInt(cmd, "limit"),
		}
		return runListing(cmd, func(ctx context.Context) (*e621.Response, error) {
			return client.ListPools(ctx, opts)
		})
	},
}

var poolsCreateCmd = &cobra.Command{
	Use:   "create <name> <series|collection>",
	Short: "Create a pool",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := client.CreatePool(cmd.Context(), args[0], e621.PoolCategory(args[1]), e621.CreatePoolOptions{
			Description: optString(cmd, "description"),
			IsLocked:    optBool(cmd, "locked"),
		})
		if err != nil {
			return err
		}
		return render(cmd.Context(), cmd.OutOrStdout(), resp)
	},
}

var poolsUpdateCmd = &cobra.Command{
	Use:   "update <pool-id>",
	Short: "Rename a pool or replace its posts",
	Example: `  e6 pools update 42 --posts 100,101,102
  e6 pools update 42 --name "New name" --category collection`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		category, err := optParsed(cmd, "category", asIs[e621.PoolCategory])
		if err != nil {
			return err
		}

		opts := e621.UpdatePoolOptions{
			Name:        optString(cmd, "name"),
			Description: optString(cmd, "description"),
			IsActive:    optBool(cmd, "active"),
			Category:    category,
		}
		if cmd.Flags().Changed("posts") {
			raw, _ := cmd.Flags().GetStringSlice("posts")
			if opts.PostIDs, err = parseIDs(raw); err != nil {
				return err
			}
		}

		resp, err := client.UpdatePool(cmd.Context(), id, opts)
		if err != nil {
			return err
		}
		return render(cmd.Context(), cmd.OutOrStdout(), resp)
	},
}

var poolsRevertCmd = &cobra.Command{
	Use:   "revert <pool-id> <version-id>",
	Short: "Revert a pool to an earlier version",
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
		if _, err := client.RevertPool(cmd.Context(), id, versionID); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Reverted pool %d to version %d\n", id, versionID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(poolsCmd)
	poolsCmd.AddCommand(poolsListCmd, poolsCreateCmd, poolsUpdateCmd, poolsRevertCmd)

	poolsListCmd.Flags().String("name", "", "name pattern")
	poolsListCmd.Flags().Int("id", 0, "pool id")
	poolsListCmd.Flags().String("description", "", "description pattern")
	poolsListCmd.Flags().String("creator", "", "creator name")
	poolsListCmd.Flags().Int("creator-id", 0, "creator account id")
	poolsListCmd.Flags().Bool("active", true, "only active pools")
	poolsListCmd.Flags().Bool("deleted", false, "only deleted pools")
	poolsListCmd.Flags().String("category", "", "series or collection")
	poolsListCmd.Flags().String("order", "", "sort order")
	poolsListCmd.Flags().Int("limit", 0, "results per page")
	addWhereFlag(poolsListCmd)

	poolsCreateCmd.Flags().String("description", "", "pool description")
	poolsCreateCmd.Flags().Bool("locked", false, "lock the pool")

	poolsUpdateCmd.Flags().String("name", "", "new name")
	poolsUpdateCmd.Flags().String("description", "", "new description")
	poolsUpdateCmd.Flags().StringSlice("posts", nil, "post ids in order, replacing the current list")
	poolsUpdateCmd.Flags().Bool("active", true, "mark the pool active")
	poolsUpdateCmd.Flags().String("category", "", "series or collection")
}
