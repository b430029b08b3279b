package domain

import "context"

// TableSource loads a dataset into memory.
// Implemented by the sources in the dataset package.
type TableSource interface {
	// Load reads the dataset at location. It fails with a *DataSourceError
	// when the location is missing, unreadable, or malformed.
	Load(ctx context.Context, location string) (*Table, error)
}

// TableSourceFunc adapts a function to TableSource.
type TableSourceFunc func(ctx context.Context, location string) (*Table, error)

// Load calls f(ctx, location).
func (f TableSourceFunc) Load(ctx context.Context, location string) (*Table, error) {
	return f(ctx, location)
}
