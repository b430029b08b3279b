package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDatasetConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dataset.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDataset(t *testing.T) {
	t.Parallel()

	path := writeDatasetConfig(t, `
columns:
  title: Position
  location: City
prune: [id]
top-n: 5
home:
  credits:
    - Data Team
`)
	ds, err := LoadDataset(path)
	require.NoError(t, err)

	assert.Equal(t, "Position", ds.Columns.Title)
	assert.Equal(t, "City", ds.Columns.Location)
	assert.Equal(t, "Job Salary", ds.Columns.Salary, "unset fields keep defaults")
	assert.Equal(t, []string{"id"}, ds.Prune)
	assert.Equal(t, 5, ds.TopN)
	assert.Equal(t, 100, ds.MaxWords)
	assert.Equal(t, "Job Search App", ds.Home.Heading)
	assert.Equal(t, []string{"Data Team"}, ds.Home.Credits)
}

func TestLoadDataset_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{name: "malformed_yaml", content: "columns: [unterminated"},
		{name: "empty_column", content: "columns:\n  salary: \"\"\n"},
		{name: "negative_top_n", content: "top-n: -1\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := LoadDataset(writeDatasetConfig(t, tc.content))
			require.Error(t, err)
		})
	}

	_, err := LoadDataset(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestDefaultDataset_Valid(t *testing.T) {
	t.Parallel()
	require.NoError(t, DefaultDataset().Validate())
}
