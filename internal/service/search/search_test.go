package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"job-dash/internal/domain"
)

func ptr(s string) *string { return &s }

func mustTable(t *testing.T, columns []string, rows ...domain.Row) *domain.Table {
	t.Helper()
	tbl, err := domain.NewTable(columns, rows)
	require.NoError(t, err)
	return tbl
}

func twoJobs(t *testing.T) *domain.Table {
	t.Helper()
	return mustTable(t, []string{"Job Title", "Location"},
		domain.Row{domain.Value("Data Engineer"), domain.Value("Pune")},
		domain.Row{domain.Value("Data Analyst"), domain.Value("Mumbai")},
	)
}

func titles(r *domain.FilteredResult) []string {
	var out []string
	for _, row := range r.Rows.All() {
		out = append(out, row[0].String)
	}
	return out
}

func TestEngine_Filter(t *testing.T) {
	t.Parallel()
	engine := NewEngine("Job Title", "Location", EmptyAsAbsent)

	t.Run("title_only", func(t *testing.T) {
		res, err := engine.Filter(twoJobs(t), ptr("data"), nil)
		require.NoError(t, err)
		assert.Equal(t, 2, res.Count())
		assert.Equal(t, []int{0, 1}, res.Positions)
	})

	t.Run("title_and_location", func(t *testing.T) {
		res, err := engine.Filter(twoJobs(t), ptr("data"), ptr("mumbai"))
		require.NoError(t, err)
		assert.Equal(t, []string{"Data Analyst"}, titles(res))
		assert.Equal(t, []int{1}, res.Positions)
	})

	t.Run("location_only", func(t *testing.T) {
		res, err := engine.Filter(twoJobs(t), nil, ptr("UN"))
		require.NoError(t, err)
		assert.Equal(t, []string{"Data Engineer"}, titles(res))
	})

	t.Run("no_filter_requested", func(t *testing.T) {
		res, err := engine.Filter(twoJobs(t), nil, nil)
		require.ErrorIs(t, err, ErrNoFilterRequested)
		assert.Nil(t, res)
	})

	t.Run("zero_matches_is_not_no_filter", func(t *testing.T) {
		res, err := engine.Filter(twoJobs(t), ptr("chef"), nil)
		require.NoError(t, err)
		assert.Equal(t, 0, res.Count())
	})

	t.Run("substring_not_regex", func(t *testing.T) {
		res, err := engine.Filter(twoJobs(t), ptr("data.*"), nil)
		require.NoError(t, err)
		assert.Equal(t, 0, res.Count())
	})

	t.Run("unicode_case_folding", func(t *testing.T) {
		tbl := mustTable(t, []string{"Job Title", "Location"},
			domain.Row{domain.Value("Straße Planer"), domain.Value("München")},
		)
		res, err := engine.Filter(tbl, nil, ptr("MÜNCHEN"))
		require.NoError(t, err)
		assert.Equal(t, 1, res.Count())
	})
}

func TestEngine_Filter_NullCells(t *testing.T) {
	t.Parallel()

	tbl := mustTable(t, []string{"Job Title", "Location"},
		domain.Row{domain.Null, domain.Value("Pune")},
		domain.Row{domain.Value("Engineer"), domain.Null},
	)

	for _, policy := range []EmptyPatternPolicy{EmptyAsAbsent, EmptyMatchesAll} {
		t.Run(policy.String(), func(t *testing.T) {
			engine := NewEngine("Job Title", "Location", policy)
			res, err := engine.Filter(tbl, ptr("e"), nil)
			require.NoError(t, err)
			assert.Equal(t, []int{1}, res.Positions)
		})
	}
}

func TestEngine_EmptyPatternPolicy(t *testing.T) {
	t.Parallel()

	tbl := mustTable(t, []string{"Job Title", "Location"},
		domain.Row{domain.Value("Data Engineer"), domain.Value("Pune")},
		domain.Row{domain.Value("Chef"), domain.Null},
	)

	tests := []struct {
		name      string
		policy    EmptyPatternPolicy
		title     *string
		location  *string
		wantErr   error
		wantCount int
	}{
		{name: "absent_both_empty", policy: EmptyAsAbsent, title: ptr(""), location: ptr(""), wantErr: ErrNoFilterRequested},
		{name: "absent_empty_title", policy: EmptyAsAbsent, title: ptr(""), location: ptr("pune"), wantCount: 1},
		{name: "all_both_empty", policy: EmptyMatchesAll, title: ptr(""), location: ptr(""), wantCount: 1},
		{name: "all_empty_title", policy: EmptyMatchesAll, title: ptr(""), wantCount: 2},
		{name: "all_nil_both", policy: EmptyMatchesAll, wantErr: ErrNoFilterRequested},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			engine := NewEngine("Job Title", "Location", tc.policy)
			res, err := engine.Filter(tbl, tc.title, tc.location)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantCount, res.Count())
		})
	}
}

func TestEngine_Filter_Monotonic(t *testing.T) {
	t.Parallel()

	tbl := mustTable(t, []string{"Job Title", "Location"},
		domain.Row{domain.Value("Data Engineer"), domain.Value("Pune")},
		domain.Row{domain.Value("Data Analyst"), domain.Value("Mumbai")},
		domain.Row{domain.Value("Data Scientist"), domain.Value("Pune, Mumbai")},
		domain.Row{domain.Value("Engineer"), domain.Value("Delhi")},
	)
	engine := NewEngine("Job Title", "Location", EmptyAsAbsent)

	for _, title := range []string{"data", "engineer", "a", "x"} {
		only, err := engine.Filter(tbl, ptr(title), nil)
		require.NoError(t, err)
		for _, loc := range []string{"pune", "mumbai", "", "zzz"} {
			both, err := engine.Filter(tbl, ptr(title), ptr(loc))
			require.NoError(t, err)
			assert.LessOrEqual(t, both.Count(), only.Count(), "title=%q location=%q", title, loc)
		}
	}
}

func TestEngine_Filter_MissingColumn(t *testing.T) {
	t.Parallel()

	engine := NewEngine("Title", "Location", EmptyAsAbsent)
	_, err := engine.Filter(twoJobs(t), ptr("data"), nil)
	var colErr *domain.ColumnNotFoundError
	require.ErrorAs(t, err, &colErr)
	assert.Equal(t, "Title", colErr.Column)

	// The location column is only required when a location pattern is given.
	res, err := engine.Search(twoJobs(t), domain.SearchQuery{Location: ptr("pune")})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Count())
}

func TestParseEmptyPatternPolicy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    EmptyPatternPolicy
		wantErr bool
	}{
		{in: "", want: EmptyAsAbsent},
		{in: "absent", want: EmptyAsAbsent},
		{in: "ALL", want: EmptyMatchesAll},
		{in: "everything", wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseEmptyPatternPolicy(tc.in)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
