package visual

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"job-dash/internal/domain"
)

const notDisclosed = "Not Disclosed by Recruiter"

var testColumns = Columns{
	Title:        "Job Title",
	Location:     "Location",
	Salary:       "Job Salary",
	Skills:       "Key Skills",
	RoleCategory: "Role Category",
	Experience:   "Job Experience Required",
}

func listings(t *testing.T) *domain.Table {
	t.Helper()
	v := domain.Value
	rows := []domain.Row{
		{v("Data Engineer"), v("Pune"), v("5,00,000 PA"), v("Python| SQL"), v("Programming"), v("2 - 5 yrs")},
		{v("Data Engineer"), v("Pune"), v(notDisclosed), v("Spark| SQL"), v("Programming"), v("2 - 5 yrs")},
		{v("Data Engineer"), v("Mumbai"), v("5,00,000 PA"), v("Python| SQL"), v("Programming"), v("2 - 5 yrs")},
		{v("Analyst"), v("Pune"), v("3,00,000 PA"), v("Excel and SQL"), v("Analytics"), v("0 - 1 yrs")},
		{v("Analyst"), domain.Null, v("8,00,000 PA"), domain.Null, v("Analytics"), v("5 - 8 yrs")},
		{v("Designer"), v("Delhi"), domain.Null, v("Figma"), domain.Null, v("1 - 3 yrs")},
	}
	tbl, err := domain.NewTable([]string{
		"Job Title", "Location", "Job Salary", "Key Skills", "Role Category", "Job Experience Required",
	}, rows)
	require.NoError(t, err)
	return tbl
}

func TestService_Build(t *testing.T) {
	t.Parallel()

	svc := New(Options{Columns: testColumns, TopN: 2})
	v, err := svc.Build(listings(t))
	require.NoError(t, err)

	assert.Equal(t, domain.Count{Label: "Job Title", Count: 3}, v.UniqueCounts[0])
	assert.Equal(t, []domain.Count{
		{Label: "5,00,000 PA", Count: 2},
		{Label: notDisclosed, Count: 1},
	}, v.TopSalaries)

	require.Len(t, v.TitleBreakdowns, 2)
	assert.Equal(t, "Data Engineer", v.TitleBreakdowns[0].Title)
	assert.Equal(t, []domain.SalaryExperience{
		{Salary: "5,00,000 PA", Experience: "2 - 5 yrs", Count: 2},
	}, v.TitleBreakdowns[0].Pairs)
	assert.Equal(t, "Analyst", v.TitleBreakdowns[1].Title)
	assert.Len(t, v.TitleBreakdowns[1].Pairs, 2)

	require.Len(t, v.LocationRoles, 2)
	assert.Equal(t, "Pune", v.LocationRoles[0].Location)
	assert.Equal(t, []domain.Count{
		{Label: "Programming", Count: 2},
		{Label: "Analytics", Count: 1},
	}, v.LocationRoles[0].Roles)
	assert.Equal(t, "Mumbai", v.LocationRoles[1].Location)

	assert.NotEmpty(t, v.SkillWords)
	assert.Equal(t, "SQL", v.SkillWords[0].Label)
}

func TestService_RoleSalaries(t *testing.T) {
	t.Parallel()

	svc := New(Options{Columns: testColumns})
	got, err := svc.RoleSalaries(listings(t))
	require.NoError(t, err)

	assert.Equal(t, []domain.RoleSalaries{
		{Role: "Analytics", Count: 2, Salaries: []domain.Count{
			{Label: "8,00,000 PA", Count: 1},
			{Label: "3,00,000 PA", Count: 1},
		}},
		{Role: "Programming", Count: 2, Salaries: []domain.Count{{Label: "5,00,000 PA", Count: 2}}},
	}, got)
	for _, role := range got {
		for _, s := range role.Salaries {
			assert.NotEqual(t, notDisclosed, s.Label)
		}
	}
}

func TestService_Build_MissingColumn(t *testing.T) {
	t.Parallel()

	cols := testColumns
	cols.Skills = "Skills"
	_, err := New(Options{Columns: cols}).Build(listings(t))
	var colErr *domain.ColumnNotFoundError
	require.ErrorAs(t, err, &colErr)
	assert.Equal(t, "Skills", colErr.Column)
}

func TestNew_Defaults(t *testing.T) {
	t.Parallel()

	svc := New(Options{})
	assert.Equal(t, DefaultTopN, svc.opts.TopN)
	assert.Equal(t, DefaultNotDisclosed, svc.opts.NotDisclosed)
	assert.Equal(t, DefaultMaxWords, svc.opts.MaxWords)
}
