package dataset

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"job-dash/internal/domain"
)

func TestCachingSource(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "jobs.csv", "a\n1\n")
	loads := 0
	inner := countingCSV(&loads)
	cache := NewCachingSource(inner)
	ctx := context.Background()

	first, err := cache.Load(ctx, path)
	require.NoError(t, err)
	second, err := cache.Load(ctx, path)
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, 1, loads)
	assert.Equal(t, 1, cache.Len())

	require.NoError(t, os.WriteFile(path, []byte("a\n1\n2\n"), 0o600))
	later := time.Now().Add(2 * time.Second)
	require.NoError(t, os.Chtimes(path, later, later))

	third, err := cache.Load(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, 2, third.Len())
	assert.Equal(t, 2, loads)
}

func TestCachingSource_RemoteBypass(t *testing.T) {
	t.Parallel()

	loads := 0
	cache := NewCachingSource(countingStub(&loads))
	for range 3 {
		_, err := cache.Load(context.Background(), "s3://bucket/data.csv")
		require.NoError(t, err)
	}
	assert.Equal(t, 3, loads)
	assert.Equal(t, 0, cache.Len())
}

func TestCachingSource_ErrorNotCached(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "bad.csv", "a,a\n1,2\n")
	cache := NewCachingSource(NewCSVSource())

	_, err := cache.Load(context.Background(), path)
	require.Error(t, err)
	assert.Equal(t, 0, cache.Len())
}

func countingCSV(loads *int) domain.TableSource {
	csv := NewCSVSource()
	return domain.TableSourceFunc(func(ctx context.Context, location string) (*domain.Table, error) {
		*loads++
		return csv.Load(ctx, location)
	})
}

func countingStub(loads *int) domain.TableSource {
	return domain.TableSourceFunc(func(_ context.Context, _ string) (*domain.Table, error) {
		*loads++
		return domain.NewTable([]string{"a"}, nil)
	})
}
