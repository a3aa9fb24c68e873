// Package cli wires the command-line interface for the indexer.
package cli

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/discord-account-support-corp/answers-indexer/internal/adapters/driven/search/meili"
	"github.com/discord-account-support-corp/answers-indexer/internal/config"
	"github.com/discord-account-support-corp/answers-indexer/internal/connectors/github"
	"github.com/discord-account-support-corp/answers-indexer/internal/core/services"
	"github.com/discord-account-support-corp/answers-indexer/internal/logger"
)

var (
	verboseFlag bool
	configFlag  string
)

var rootCmd = &cobra.Command{
	Use:   "answers-indexer",
	Short: "Index verified answers from GitHub into Meilisearch",
	Long: `Crawls every public repository in the organization, scans each README
for verified-answer markers of the form

  ✅ **Title Here** → ` + "`path/to/file.md`" + `

and indexes the referenced files into a Meilisearch instance.

Required environment:
  GITHUB_TOKEN   GitHub API token

Optional environment:
  MEILI_URL      Meilisearch URL (default http://localhost:7700)
  MEILI_KEY      Meilisearch API key (default masterKey)`,
	SilenceUsage: true,
	RunE:         runIndex,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(
		&verboseFlag, "verbose", "v", false, "enable verbose logging to stderr")
	rootCmd.Flags().StringVar(
		&configFlag, "config", "", "TOML file overriding organization and index name")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func runIndex(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verboseFlag)

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if configFlag != "" {
		if err := cfg.ApplyFile(configFlag); err != nil {
			return fmt.Errorf("load config file: %w", err)
		}
	}

	runID := uuid.New().String()
	logger.Debug("run %s: org=%s index=%s meili=%s",
		runID, cfg.Organization, cfg.IndexName, cfg.MeiliURL)

	ctx := context.Background()
	host := github.NewClient(ctx, cfg.GitHubToken)
	index := meili.New(cfg.MeiliURL, cfg.MeiliKey)

	crawler := services.NewCrawler(host, index, cfg, cmd.OutOrStdout())
	indexed, err := crawler.Run(ctx)
	if err != nil {
		if github.IsUnauthorized(err) {
			return fmt.Errorf("GitHub rejected the token, check GITHUB_TOKEN: %w", err)
		}
		return err
	}

	if indexed > 0 {
		cmd.Printf("✅ Indexing complete! (%d documents)\n", indexed)
	}
	return nil
}
