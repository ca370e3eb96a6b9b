package cli

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/hidayah-labs/duafinder/internal/adapters/driven/corpus"
	"github.com/hidayah-labs/duafinder/internal/adapters/driven/storage/sqlite"
)

var importCmd = &cobra.Command{
	Use:   "import [corpus.toml]",
	Short: "Import a TOML corpus into the record store",
	Long: `Reads a TOML corpus file and upserts every record into the SQLite
record store. Entries without an id are assigned one.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	records, err := corpus.Load(args[0])
	if err != nil {
		return fmt.Errorf("loading corpus: %w", err)
	}

	store, err := sqlite.NewStore(appConfig.DataDir)
	if err != nil {
		return fmt.Errorf("opening record store: %w", err)
	}
	defer store.Close()

	ctx := context.Background()
	imported := 0
	for _, rec := range records {
		if rec.ID == "" {
			rec.ID = uuid.New().String()
		}
		if err := store.Save(ctx, rec); err != nil {
			return fmt.Errorf("saving record %s: %w", rec.ID, err)
		}
		imported++
	}

	cmd.Printf("Imported %d records into %s\n", imported, store.Path())
	return nil
}
