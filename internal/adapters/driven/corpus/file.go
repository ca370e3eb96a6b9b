package corpus

import (
	"context"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/hidayah-labs/duafinder/internal/core/domain"
	"github.com/hidayah-labs/duafinder/internal/core/ports/driven"
)

// Ensure FileSource implements the interface.
var _ driven.RecordSource = (*FileSource)(nil)

// corpusFile is the on-disk TOML shape: a [[records]] array.
type corpusFile struct {
	Records []recordEntry `toml:"records"`
}

type recordEntry struct {
	ID         string   `toml:"id"`
	Title      string   `toml:"title"`
	Category   string   `toml:"category"`
	Arabic     string   `toml:"arabic"`
	English    string   `toml:"english"`
	Urdu       string   `toml:"urdu"`
	RomanUrdu  string   `toml:"roman_urdu"`
	Keywords   []string `toml:"keywords"`
	Tags       []string `toml:"tags"`
	SearchBlob string   `toml:"search_blob"`
}

func (e recordEntry) toDomain() domain.Record {
	return domain.Record{
		ID:         e.ID,
		Title:      e.Title,
		Category:   e.Category,
		Arabic:     e.Arabic,
		English:    e.English,
		Urdu:       e.Urdu,
		RomanUrdu:  e.RomanUrdu,
		Keywords:   e.Keywords,
		Tags:       e.Tags,
		SearchBlob: e.SearchBlob,
	}
}

// FileSource reads records from a TOML corpus file on every fetch.
type FileSource struct {
	path string
}

// NewFileSource creates a source reading from the given TOML file.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Path returns the corpus file path.
func (f *FileSource) Path() string {
	return f.path
}

// Records loads and parses the corpus file. Entries without an ID are
// kept; the record simply cannot win tie-breaks deterministically, so
// curated corpora should always set ids. Failures wrap
// domain.ErrSourceUnavailable.
func (f *FileSource) Records(_ context.Context) ([]domain.Record, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading corpus %s: %v", domain.ErrSourceUnavailable, f.path, err)
	}

	var parsed corpusFile
	if err := toml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("%w: parsing corpus %s: %v", domain.ErrSourceUnavailable, f.path, err)
	}

	records := make([]domain.Record, 0, len(parsed.Records))
	for _, entry := range parsed.Records {
		records = append(records, entry.toDomain())
	}
	return records, nil
}

// Load is a convenience for one-shot reads outside the source
// abstraction (the import command uses it).
func Load(path string) ([]domain.Record, error) {
	return NewFileSource(path).Records(context.Background())
}
