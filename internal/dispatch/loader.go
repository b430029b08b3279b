package dispatch

import (
	"context"
	"fmt"

	"job-dash/internal/domain"
)

// Loader loads the dataset variants a mode needs.
type Loader struct {
	Source            domain.TableSource
	RawLocation       string
	ProcessedLocation string
	// Prune lists the identifier columns removed from the raw table.
	Prune []string
}

// Load reads the variants mode.Needs() asks for. The raw table is pruned
// before it is returned; a missing prune column fails the load.
func (l *Loader) Load(ctx context.Context, mode Mode) (Tables, error) {
	var tables Tables
	needs := mode.Needs()

	if needs.Has(VariantRaw) {
		raw, err := l.Source.Load(ctx, l.RawLocation)
		if err != nil {
			return Tables{}, fmt.Errorf("load raw dataset: %w", err)
		}
		pruned, err := raw.Drop(l.Prune...)
		if err != nil {
			return Tables{}, fmt.Errorf("prune raw dataset: %w", err)
		}
		tables.Pruned = pruned
	}

	if needs.Has(VariantProcessed) {
		processed, err := l.Source.Load(ctx, l.ProcessedLocation)
		if err != nil {
			return Tables{}, fmt.Errorf("load processed dataset: %w", err)
		}
		tables.Processed = processed
	}
	return tables, nil
}
