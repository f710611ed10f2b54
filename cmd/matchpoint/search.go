package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matchpoint/matchpoint/internal/matchsvc"
	"github.com/matchpoint/matchpoint/internal/observability"
)

var (
	searchSkills  []string
	searchMatcher string
)

var searchCmd = &cobra.Command{
	Use:   "search \"query\"",
	Short: "Search and rank candidates",
	Long:  `Run the ranking pipeline on the matching service and print candidates ordered by fit score, with the evidence phrases behind each score.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runSearch,
}

func init() {
	searchCmd.Flags().StringSliceVar(&searchSkills, "skills", nil, "Skill keywords to weight during evaluation")
	searchCmd.Flags().StringVar(&searchMatcher, "matcher-url", "", "Base URL of the matching service")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if searchMatcher != "" {
		cfg.MatcherURL = searchMatcher
	}
	if cfg.MatcherURL == "" {
		return fmt.Errorf("matcher URL is required (flag --matcher-url, config, or MATCHPOINT_MATCHER_URL)")
	}

	client := matchsvc.New(cfg.MatcherURL)
	resp, err := client.Search(cmd.Context(), &matchsvc.SearchRequest{
		Query:          args[0],
		RequiredSkills: searchSkills,
	})
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintSearchResults(resp)

	if cfg.Verbose {
		for _, c := range resp.Results {
			cmd.Printf("\n%s: %s\n", c.Name, c.Rationale)
			if len(c.Evidence) > 0 {
				cmd.Printf("  evidence: %s\n", strings.Join(c.Evidence, " | "))
			}
		}
	}
	return nil
}

// searchContext is a small helper so export can reuse the search call.
func searchCandidates(ctx context.Context, matcherURL, query string, skills []string) (*matchsvc.SearchResponse, error) {
	client := matchsvc.New(matcherURL)
	return client.Search(ctx, &matchsvc.SearchRequest{Query: query, RequiredSkills: skills})
}
