// Package app wires the dataset sources, services, and HTTP surfaces of the
// dashboard from a loaded configuration.
package app

import (
	"database/sql"
	"log/slog"

	"job-dash/internal/config"
	"job-dash/internal/dataset"
	"job-dash/internal/dispatch"
	"job-dash/internal/domain"
	"job-dash/internal/service/search"
	"job-dash/internal/service/visual"
)

// Deps holds the external dependencies that main() must provide.
type Deps struct {
	Cfg *config.Config
	// DuckDB backs Parquet reads and, with PreferDuckDB, CSV reads. When nil
	// those locations fail with a data source error.
	DuckDB *sql.DB
	Logger *slog.Logger
}

// App holds the wired components shared by the server and the CLI.
type App struct {
	Cfg        *config.Config
	Source     domain.TableSource
	Cache      *dataset.CachingSource // nil when TABLE_CACHE is off
	Loader     *dispatch.Loader
	Dispatcher *dispatch.Dispatcher
	Logger     *slog.Logger
}

// New wires every component from deps.
func New(deps Deps) *App {
	cfg := deps.Cfg
	ds := cfg.Dataset

	source, cache := newSource(deps)

	dispatcher := &dispatch.Dispatcher{
		Home: dispatch.HomeView{
			Heading: ds.Home.Heading,
			Caption: ds.Home.Caption,
			Credits: ds.Home.Credits,
		},
		Search: search.NewEngine(ds.Columns.Title, ds.Columns.Location, cfg.SearchEmptyPattern),
		Visual: visual.New(visual.Options{
			Columns: visual.Columns{
				Title:        ds.Columns.Title,
				Location:     ds.Columns.Location,
				Salary:       ds.Columns.Salary,
				Skills:       ds.Columns.Skills,
				RoleCategory: ds.Columns.RoleCategory,
				Experience:   ds.Columns.Experience,
			},
			TopN:         ds.TopN,
			NotDisclosed: ds.NotDisclosed,
			MaxWords:     ds.MaxWords,
		}),
	}

	return &App{
		Cfg:    cfg,
		Source: source,
		Cache:  cache,
		Loader: &dispatch.Loader{
			Source:            source,
			RawLocation:       cfg.RawDataPath,
			ProcessedLocation: cfg.ProcessedDataPath,
			Prune:             ds.Prune,
		},
		Dispatcher: dispatcher,
		Logger:     deps.Logger,
	}
}

func newSource(deps Deps) (domain.TableSource, *dataset.CachingSource) {
	cfg := deps.Cfg
	csvSource := dataset.NewCSVSource()
	router := &dataset.Router{
		CSV:          csvSource,
		SQLite:       dataset.NewSQLiteSource(),
		PreferDuckDB: cfg.PreferDuckDB,
		Logger:       deps.Logger.With("component", "dataset"),
	}
	if deps.DuckDB != nil {
		router.DuckDB = dataset.NewDuckDBSource(deps.DuckDB)
	}
	if cfg.HasS3Config() {
		router.S3 = dataset.NewS3Source(dataset.S3Options{
			KeyID:    *cfg.S3KeyID,
			Secret:   *cfg.S3Secret,
			Endpoint: *cfg.S3Endpoint,
			Region:   *cfg.S3Region,
		}, csvSource)
	}

	if !cfg.TableCache {
		return router, nil
	}
	cache := dataset.NewCachingSource(router)
	return cache, cache
}
