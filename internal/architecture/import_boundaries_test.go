package architecture_test

import (
	"go/parser"
	"go/token"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	modulePath = "job-dash"
	moduleRoot = "../.."
)

type layerRule struct {
	sourcePrefix string
	forbidden    []string
	hint         string
}

var rules = []layerRule{
	{
		sourcePrefix: modulePath + "/internal/domain",
		forbidden: []string{
			modulePath + "/internal",
			modulePath + "/pkg",
			modulePath + "/cmd",
		},
		hint: "domain may only import domain",
	},
	{
		sourcePrefix: modulePath + "/internal/dataset",
		forbidden: []string{
			modulePath + "/internal/service",
			modulePath + "/internal/dispatch",
			modulePath + "/internal/render",
			modulePath + "/internal/ui",
			modulePath + "/internal/api",
			modulePath + "/internal/app",
			modulePath + "/pkg/cli",
		},
		hint: "dataset adapters depend on domain only",
	},
	{
		sourcePrefix: modulePath + "/internal/service",
		forbidden: []string{
			modulePath + "/internal/dataset",
			modulePath + "/internal/dispatch",
			modulePath + "/internal/render",
			modulePath + "/internal/middleware",
			modulePath + "/internal/ui",
			modulePath + "/internal/api",
			modulePath + "/internal/app",
			modulePath + "/pkg/cli",
		},
		hint: "service should depend on domain and service-local packages",
	},
	{
		sourcePrefix: modulePath + "/internal/render",
		forbidden: []string{
			modulePath + "/internal/service",
			modulePath + "/internal/dataset",
			modulePath + "/internal/ui",
			modulePath + "/internal/api",
			modulePath + "/internal/app",
		},
		hint: "render draws domain aggregates",
	},
	{
		sourcePrefix: modulePath + "/internal/dispatch",
		forbidden: []string{
			modulePath + "/internal/dataset",
			modulePath + "/internal/ui",
			modulePath + "/internal/api",
			modulePath + "/internal/app",
			modulePath + "/pkg/cli",
		},
		hint: "dispatch reads tables through domain ports",
	},
	{
		sourcePrefix: modulePath + "/internal/ui",
		forbidden: []string{
			modulePath + "/internal/dataset",
			modulePath + "/internal/api",
			modulePath + "/internal/app",
			modulePath + "/pkg/cli",
		},
		hint: "ui should depend on dispatch/service/domain/render packages",
	},
	{
		sourcePrefix: modulePath + "/internal/api",
		forbidden: []string{
			modulePath + "/internal/dataset",
			modulePath + "/internal/ui",
			modulePath + "/internal/app",
			modulePath + "/pkg/cli",
		},
		hint: "api should depend on dispatch/service/domain packages",
	},
	{
		sourcePrefix: modulePath + "/internal/middleware",
		forbidden: []string{
			modulePath + "/internal/service",
			modulePath + "/internal/dataset",
			modulePath + "/internal/dispatch",
		},
		hint: "middleware should depend on domain and middleware-local packages",
	},
}

func TestImportBoundaries(t *testing.T) {
	files := sourceFiles(t)
	require.NotEmpty(t, files, "no source files found under %s", moduleRoot)

	violations := make([]string, 0)
	fset := token.NewFileSet()

	for _, file := range files {
		sourcePkg := packageImportPath(file)
		rule, ok := findRule(sourcePkg)
		if !ok {
			continue
		}

		parsed, parseErr := parser.ParseFile(fset, filepath.Join(moduleRoot, file), nil, parser.ImportsOnly)
		require.NoErrorf(t, parseErr, "parse imports for %s", file)

		for _, imp := range parsed.Imports {
			importPath := strings.Trim(imp.Path.Value, "\"")
			if !strings.HasPrefix(importPath, modulePath+"/") {
				continue
			}
			if hasPathPrefix(importPath, rule.sourcePrefix) {
				continue
			}
			if violatesRule(importPath, rule.forbidden) {
				violations = append(violations,
					"governance: "+sourcePkg+" imports "+importPath+" via "+file+"; allowed direction: "+rule.hint,
				)
			}
		}
	}

	if len(violations) > 0 {
		sort.Strings(violations)
		t.Fatalf("%s", strings.Join(violations, "\n"))
	}
}

// sourceFiles lists non-test Go files relative to the module root.
func sourceFiles(t *testing.T) []string {
	t.Helper()
	var files []string
	err := filepath.WalkDir(moduleRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if strings.HasPrefix(d.Name(), "_") || (strings.HasPrefix(d.Name(), ".") && path != moduleRoot) {
				return filepath.SkipDir
			}
			return nil
		}
		if shouldSkipFile(path) {
			return nil
		}
		rel, err := filepath.Rel(moduleRoot, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	require.NoError(t, err)
	return files
}

func shouldSkipFile(path string) bool {
	base := filepath.Base(path)
	if !strings.HasSuffix(base, ".go") || strings.HasSuffix(base, "_test.go") {
		return true
	}
	return false
}

func packageImportPath(file string) string {
	return modulePath + "/" + filepath.ToSlash(filepath.Dir(file))
}

func findRule(sourcePkg string) (layerRule, bool) {
	for _, rule := range rules {
		if hasPathPrefix(sourcePkg, rule.sourcePrefix) {
			return rule, true
		}
	}
	return layerRule{}, false
}

func violatesRule(importPath string, forbidden []string) bool {
	for _, prefix := range forbidden {
		if hasPathPrefix(importPath, prefix) {
			return true
		}
	}
	return false
}

func hasPathPrefix(value string, prefix string) bool {
	return value == prefix || strings.HasPrefix(value, prefix+"/")
}
