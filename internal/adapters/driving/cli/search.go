package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hidayah-labs/duafinder/internal/core/domain"
)

var (
	searchLimit int
	searchJSON  bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the corpus",
	Long: `Matches the query against every record in the corpus. The primary
scorer weighs curated keywords and titles; when it finds nothing, a
relaxed matcher tolerates misspellings and transliteration variants
(e.g. "rizk" for "rizq").`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 0, "maximum number of results")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if err := initServices(); err != nil {
		return err
	}

	results, err := searchService.Search(context.Background(), args[0], resultLimit(searchLimit))
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputSearchJSON(cmd, results)
	}
	return outputSearchList(cmd, results)
}

func outputSearchJSON(cmd *cobra.Command, results []domain.Record) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchList(cmd *cobra.Command, results []domain.Record) error {
	if len(results) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	for i, rec := range results {
		cmd.Printf("[%d] %s\n", i+1, recordHeading(rec))
		if rec.Arabic != "" {
			cmd.Printf("    %s\n", rec.Arabic)
		}
		if rec.English != "" {
			cmd.Printf("    %s\n", rec.English)
		}
		cmd.Println()
	}
	return nil
}

// recordHeading picks the best one-line label for a record.
func recordHeading(rec domain.Record) string {
	switch {
	case rec.Title != "" && rec.Category != "":
		return rec.Title + " - " + rec.Category
	case rec.Title != "":
		return rec.Title
	case rec.Category != "":
		return rec.Category
	default:
		return rec.ID
	}
}
