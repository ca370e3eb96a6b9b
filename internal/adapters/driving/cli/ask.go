package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hidayah-labs/duafinder/internal/core/domain"
	"github.com/hidayah-labs/duafinder/internal/core/ports/driving"
)

var askCmd = &cobra.Command{
	Use:   "ask",
	Short: "Interactive multi-turn search",
	Long: `Starts a conversational search loop. Type a query; when several
records match, reply with the option number to pick one. An empty
line or "q" quits.`,
	Args: cobra.NoArgs,
	RunE: runAsk,
}

func init() {
	rootCmd.AddCommand(askCmd)
}

// askKey is the session key for the local terminal conversation.
// Chat and user collapse to the same identity here; real chat hosts
// pass their own identifiers.
var askKey = domain.NewSessionKey("local", "")

func runAsk(cmd *cobra.Command, _ []string) error {
	if err := initServices(); err != nil {
		return err
	}

	ctx := context.Background()
	if err := sessionService.Begin(ctx, askKey); err != nil {
		return fmt.Errorf("starting session: %w", err)
	}
	defer func() { _ = sessionService.Clear(ctx, askKey) }()

	cmd.Println("What are you looking for? (q to quit)")
	scanner := bufio.NewScanner(cmd.InOrStdin())
	prompt(cmd)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line == "q" || line == "quit" {
			break
		}

		if err := handleTurn(ctx, cmd, line); err != nil {
			if errors.Is(err, domain.ErrSourceUnavailable) {
				// Session stays in awaiting-query; the user can retry
				// without starting over.
				cmd.Println("The corpus is unavailable right now, please try again.")
			} else {
				return err
			}
		}
		prompt(cmd)
	}

	if err := scanner.Err(); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func prompt(cmd *cobra.Command) {
	cmd.Print("> ")
}

// handleTurn routes one line of input through the session state
// machine: a numbered reply resolves a pending selection, anything
// else is a fresh query.
func handleTurn(ctx context.Context, cmd *cobra.Command, line string) error {
	session, err := sessionService.Get(ctx, askKey)
	if err != nil && !errors.Is(err, domain.ErrNoSession) {
		return err
	}

	if session != nil && session.Stage == domain.StageAwaitingSelection {
		record, outcome, err := sessionService.Resolve(ctx, askKey, line)
		if err != nil {
			return err
		}
		switch outcome {
		case driving.SelectionResolved:
			printRecord(cmd, *record)
			return sessionService.Begin(ctx, askKey)
		case driving.SelectionInvalid:
			// An out-of-range number keeps the selection open; a
			// non-numeric reply falls through as a fresh query.
			if isNumeric(line) {
				cmd.Printf("Please reply with a number between 1 and %d.\n", len(session.Options))
				return nil
			}
		}
	}

	return handleQuery(ctx, cmd, line)
}

func handleQuery(ctx context.Context, cmd *cobra.Command, query string) error {
	results, err := searchService.Search(ctx, query, resultLimit(0))
	if err != nil {
		return err
	}

	switch len(results) {
	case 0:
		cmd.Println("No results found. Try different words.")
		return sessionService.Begin(ctx, askKey)
	case 1:
		printRecord(cmd, results[0])
		return sessionService.Begin(ctx, askKey)
	default:
		cmd.Println("Did you mean:")
		for i, rec := range results {
			cmd.Printf("  [%d] %s\n", i+1, recordHeading(rec))
		}
		cmd.Println("Reply with a number to choose.")
		return sessionService.RecordOptions(ctx, askKey, results)
	}
}

func printRecord(cmd *cobra.Command, rec domain.Record) {
	cmd.Println()
	cmd.Println(recordHeading(rec))
	for _, text := range []string{rec.Arabic, rec.English, rec.Urdu, rec.RomanUrdu} {
		if text != "" {
			cmd.Printf("  %s\n", text)
		}
	}
	cmd.Println()
}

func isNumeric(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
