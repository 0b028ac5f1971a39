package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/s0up4200/go-e621/e621"
)

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "Search tags, aliases and implications",
}

var tagsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Search tags",
	Example: `  e6 tags list --name 'wolf*' --category species --order count
  e6 tags list --name 'fox*' --where 'post_count > 1000'`,
	RunE: func(cmd *cobra.Command, args []string) error {
		category, err := optParsed(cmd, "category", e621.ParseTagCategory)
		if err != nil {
			return err
		}
		order, err := optParsed(cmd, "order", asIs[e621.TagOrder])
		if err != nil {
			return err
		}

		opts := e621.ListTagsOptions{
			NameMatches: optString(cmd, "name"),
			Category:    category,
			Order:       order,
			HideEmpty:   optBool(cmd, "hide-empty"),
			HasWiki:     optBool(cmd, "has-wiki"),
			HasArtist:   optBool(cmd, "has-artist"),
			Limit:       optInt(cmd, "limit"),
			Page:        optInt(cmd, "page"),
		}
		return runListing(cmd, func(ctx context.Context) (*e621.Response, error) {
			return client.ListTags(ctx, opts)
		})
	},
}

var tagsAliasesCmd = &cobra.Command{
	Use:   "aliases",
	Short: "Search tag aliases",
	RunE: func(cmd *cobra.Command, args []string) error {
		status, err := optParsed(cmd, "status", asIs[e621.AliasStatus])
		if err != nil {
			return err
		}
		order, err := optParsed(cmd, "order", asIs[e621.AliasOrder])
		if err != nil {
			return err
		}

		opts := e621.ListTagAliasesOptions{
			NameMatches:   optString(cmd, "name"),
			Status:        status,
			Order:         order,
			AntecedentTag: optString(cmd, "antecedent"),
			ConsequentTag: optString(cmd, "consequent"),
			Limit:         optInt(cmd, "limit"),
			Page:          optInt(cmd, "page"),
		}
		return runListing(cmd, func(ctx context.Context) (*e621.Response, error) {
			return client.ListTagAliases(ctx, opts)
		})
	},
}

var tagsImplicationsCmd = &cobra.Command{
	Use:   "implications",
	Short: "Search tag implications",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := e621.ListTagImplicationsOptions{
			ID:             optInt(cmd, "id"),
			AntecedentName: optString(cmd, "antecedent"),
			ConsequentName: optString(cmd, "consequent"),
			Status:         optString(cmd, "status"),
			Limit:          optInt(cmd, "limit"),
		}
		return runListing(cmd, func(ctx context.Context) (*e621.Response, error) {
			return client.ListTagImplications(ctx, opts)
		})
	},
}

func init() {
	rootCmd.AddCommand(tagsCmd)
	tagsCmd.AddCommand(tagsListCmd, tagsAliasesCmd, tagsImplicationsCmd)

	tagsListCmd.Flags().String("name", "", "name pattern, * is a wildcard")
	tagsListCmd.Flags().String("category", "", "category label or code")
	tagsListCmd.Flags().String("order", "", "date, count or name")
	tagsListCmd.Flags().Bool("hide-empty", true, "hide tags without posts")
	tagsListCmd.Flags().Bool("has-wiki", false, "only tags with a wiki page")
	tagsListCmd.Flags().Bool("has-artist", false, "only tags with an artist entry")
	tagsListCmd.Flags().Int("limit", 75, "results per page (max 1000)")
	tagsListCmd.Flags().Int("page", 0, "page number")
	addWhereFlag(tagsListCmd)

	tagsAliasesCmd.Flags().String("name", "", "name pattern")
	tagsAliasesCmd.Flags().String("status", "", "approved, active, pending, deleted, retired, processing or queued")
	tagsAliasesCmd.Flags().String("order", "", "status, created_at, updated_at, name or tag_count")
	tagsAliasesCmd.Flags().String("antecedent", "", "antecedent tag name")
	tagsAliasesCmd.Flags().String("consequent", "", "consequent tag name")
	tagsAliasesCmd.Flags().Int("limit", 0, "results per page")
	tagsAliasesCmd.Flags().Int("page", 0, "page number")
	addWhereFlag(tagsAliasesCmd)

	tagsImplicationsCmd.Flags().Int("id", 0, "implication id")
	tagsImplicationsCmd.Flags().String("antecedent", "", "antecedent tag name")
	tagsImplicationsCmd.Flags().String("consequent", "", "consequent tag name")
	tagsImplicationsCmd.Flags().String("status", "", "implication status")
	tagsImplicationsCmd.Flags().Int("limit", 0, "results per page")
	addWhereFlag(tagsImplicationsCmd)
}
