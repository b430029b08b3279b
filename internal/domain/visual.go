package domain

// SalaryExperience counts listings sharing one salary and experience range.
type SalaryExperience struct {
	Salary     string `json:"salary"`
	Experience string `json:"experience"`
	Count      int    `json:"count"`
}

// TitleBreakdown is the salary and experience mix of one popular job title.
type TitleBreakdown struct {
	Title string             `json:"title"`
	Pairs []SalaryExperience `json:"pairs"`
}

// RoleSalaries is one inner ring of the role-category to salary hierarchy.
type RoleSalaries struct {
	Role     string  `json:"role"`
	Count    int     `json:"count"`
	Salaries []Count `json:"salaries"`
}

// LocationRoles is the role-category mix of one popular location.
type LocationRoles struct {
	Location string  `json:"location"`
	Roles    []Count `json:"roles"`
}

// Visualizations holds the aggregates behind every chart on the
// visualizations page.
type Visualizations struct {
	UniqueCounts    []Count          `json:"unique_counts"`
	TopSalaries     []Count          `json:"top_salaries"`
	SkillWords      []Count          `json:"skill_words"`
	TitleBreakdowns []TitleBreakdown `json:"title_breakdowns"`
	RoleSalaries    []RoleSalaries   `json:"role_salaries"`
	LocationRoles   []LocationRoles  `json:"location_roles"`
}
