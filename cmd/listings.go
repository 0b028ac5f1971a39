package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/s0up4200/go-e621/e621"
)

var wikiCmd = &cobra.Command{
	Use:   "wiki",
	Short: "Search wiki pages",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := e621.ListWikiPagesOptions{
			ID:          optInt(cmd, "id"),
			Title:       optString(cmd, "title"),
			CreatorID:   optInt(cmd, "creator-id"),
			CreatorName: optString(cmd, "creator"),
			IsLocked:    optBool(cmd, "locked"),
			Limit:       optInt(cmd, "limit"),
		}
		return runListing(cmd, func(ctx context.Context) (*e621.Response, error) {
			return client.ListWikiPages(ctx, opts)
		})
	},
}

var setsCmd = &cobra.Command{
	Use:   "sets",
	Short: "Search post sets",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := e621.ListPostSetsOptions{
			ID:        optInt(cmd, "id"),
			CreatorID: optInt(cmd, "creator-id"),
			Name:      optString(cmd, "name"),
			ShortName: optString(cmd, "short-name"),
			Limit:     optInt(cmd, "limit"),
		}
		return runListing(cmd, func(ctx context.Context) (*e621.Response, error) {
			return client.ListPostSets(ctx, opts)
		})
	},
}

var blipsCmd = &cobra.Command{
	Use:   "blips",
	Short: "Search blips",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := e621.ListBlipsOptions{
			ID:          optInt(cmd, "id"),
			CreatorID:   optInt(cmd, "creator-id"),
			CreatorName: optString(cmd, "creator"),
			ResponseTo:  optInt(cmd, "response-to"),
			Limit:       optInt(cmd, "limit"),
		}
		return runListing(cmd, func(ctx context.Context) (*e621.Response, error) {
			return client.ListBlips(ctx, opts)
		})
	},
}

var feedbackCmd = &cobra.Command{
	Use:   "feedback",
	Short: "Search user feedback records",
	RunE: func(cmd *cobra.Command, args []string) error {
		category, err := optParsed(cmd, "category", asIs[e621.FeedbackCategory])
		if err != nil {
			return err
		}
		opts := e621.ListUserFeedbackOptions{
			ID:        optInt(cmd, "id"),
			UserID:    optInt(cmd, "user-id"),
			CreatorID: optInt(cmd, "creator-id"),
			Category:  category,
			Limit:     optInt(cmd, "limit"),
		}
		return runListing(cmd, func(ctx context.Context) (*e621.Response, error) {
			return client.ListUserFeedback(ctx, opts)
		})
	},
}

var forumCmd = &cobra.Command{
	Use:   "forum",
	Short: "Search forum topics",
	RunE: func(cmd *cobra.Command, args []string) error {
		category, err := optParsed(cmd, "category", e621.ParseForumCategory)
		if err != nil {
			return err
		}
		opts := e621.ListForumTopicsOptions{
			ID:         optInt(cmd, "id"),
			IsSticky:   optBool(cmd, "sticky"),
			IsLocked:   optBool(cmd, "locked"),
			CategoryID: category,
			Limit:      optInt(cmd, "limit"),
		}
		return runListing(cmd, func(ctx context.Context) (*e621.Response, error) {
			return client.ListForumTopics(ctx, opts)
		})
	},
}

func init() {
	rootCmd.AddCommand(wikiCmd, setsCmd, blipsCmd, feedbackCmd, forumCmd)

	wikiCmd.Flags().Int("id", 0, "page id")
	wikiCmd.Flags().String("title", "", "page title")
	wikiCmd.Flags().Int("creator-id", 0, "creator account id")
	wikiCmd.Flags().String("creator", "", "creator name")
	wikiCmd.Flags().Bool("locked", false, "only locked pages")

	setsCmd.Flags().Int("id", 0, "set id")
	setsCmd.Flags().Int("creator-id", 0, "creator account id")
	setsCmd.Flags().String("name", "", "set name")
	setsCmd.Flags().String("short-name", "", "set short name")

	blipsCmd.Flags().Int("id", 0, "blip id")
	blipsCmd.Flags().Int("creator-id", 0, "creator account id")
	blipsCmd.Flags().String("creator", "", "creator name")
	blipsCmd.Flags().Int("response-to", 0, "parent blip id")

	feedbackCmd.Flags().Int("id", 0, "feedback id")
	feedbackCmd.Flags().Int("user-id", 0, "account the feedback is about")
	feedbackCmd.Flags().Int("creator-id", 0, "account that wrote the feedback")
	feedbackCmd.Flags().String("category", "", "positive, negative or neutral")

	forumCmd.Flags().Int("id", 0, "topic id")
	forumCmd.Flags().Bool("sticky", false, "only sticky topics")
	forumCmd.Flags().Bool("locked", false, "only locked topics")
	forumCmd.Flags().String("category", "", "category label or code")

	for _, c := range []*cobra.Command{wikiCmd, setsCmd, blipsCmd, feedbackCmd, forumCmd} {
		c.Flags().Int("limit", 0, "results per page")
		addWhereFlag(c)
	}
}
