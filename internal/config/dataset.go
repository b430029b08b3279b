package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Dataset describes the listing columns the dashboard reads and how its
// pages are dressed. It is loaded from the DATASET_CONFIG YAML file.
type Dataset struct {
	Columns Columns `yaml:"columns"`
	// Prune lists the identifier columns dropped from the raw table.
	Prune []string `yaml:"prune"`
	// NotDisclosed is the salary placeholder left out of salary charts.
	NotDisclosed string `yaml:"not-disclosed"`
	TopN         int    `yaml:"top-n"`
	MaxWords     int    `yaml:"max-words"`
	Home         Home   `yaml:"home"`
}

// Columns maps roles to column names in the dataset header.
type Columns struct {
	Title        string `yaml:"title"`
	Location     string `yaml:"location"`
	Salary       string `yaml:"salary"`
	Skills       string `yaml:"skills"`
	RoleCategory string `yaml:"role-category"`
	Experience   string `yaml:"experience"`
}

// Home is the landing page text.
type Home struct {
	Heading string   `yaml:"heading"`
	Caption string   `yaml:"caption"`
	Credits []string `yaml:"credits"`
}

// DefaultDataset matches the header of the job-listings export.
func DefaultDataset() Dataset {
	return Dataset{
		Columns: Columns{
			Title:        "Job Title",
			Location:     "Location",
			Salary:       "Job Salary",
			Skills:       "Key Skills",
			RoleCategory: "Role Category",
			Experience:   "Job Experience Required",
		},
		Prune:        []string{"Uniq Id", "Crawl Timestamp"},
		NotDisclosed: "Not Disclosed by Recruiter",
		TopN:         10,
		MaxWords:     100,
		Home: Home{
			Heading: "Job Search App",
			Caption: "Job Search",
			Credits: []string{"Research and Analysis Interns"},
		},
	}
}

// LoadDataset reads a dataset YAML file. Fields the file leaves out keep
// their default values.
func LoadDataset(path string) (Dataset, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is operator-controlled
	if err != nil {
		return Dataset{}, fmt.Errorf("read dataset config %s: %w", path, err)
	}
	ds := DefaultDataset()
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return Dataset{}, fmt.Errorf("parse dataset config %s: %w", path, err)
	}
	if err := ds.Validate(); err != nil {
		return Dataset{}, fmt.Errorf("dataset config %s: %w", path, err)
	}
	return ds, nil
}

// Validate checks that every column role is named.
func (d Dataset) Validate() error {
	for role, name := range map[string]string{
		"title":         d.Columns.Title,
		"location":      d.Columns.Location,
		"salary":        d.Columns.Salary,
		"skills":        d.Columns.Skills,
		"role-category": d.Columns.RoleCategory,
		"experience":    d.Columns.Experience,
	} {
		if name == "" {
			return fmt.Errorf("columns.%s must not be empty", role)
		}
	}
	if d.TopN < 0 {
		return fmt.Errorf("top-n must not be negative")
	}
	return nil
}
