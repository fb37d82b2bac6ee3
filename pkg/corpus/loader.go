package corpus

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/treelang/treelang/pkg/parser"
	"gopkg.in/yaml.v3"
)

// Loader reads conformance cases from YAML files.
type Loader struct {
	fs fs.FS // filesystem holding the cases directory
}

// NewLoader creates a loader over the embedded built-in cases.
func NewLoader() *Loader {
	return &Loader{
		fs: builtinCasesFS,
	}
}

// NewLoaderWithFS creates a loader over a custom filesystem.
func NewLoaderWithFS(fsys fs.FS) *Loader {
	return &Loader{
		fs: fsys,
	}
}

// LoadCases parses all cases from YAML bytes.
func (l *Loader) LoadCases(data []byte) ([]*Case, error) {
	var yamlFile yamlCasesFile
	if err := yaml.Unmarshal(data, &yamlFile); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if len(yamlFile.Cases) == 0 {
		return nil, fmt.Errorf("no cases found in YAML")
	}

	cases := make([]*Case, 0, len(yamlFile.Cases))
	for _, yc := range yamlFile.Cases {
		c, err := convertYAMLCase(yc)
		if err != nil {
			return nil, err
		}
		cases = append(cases, c)
	}
	return cases, nil
}

// LoadBuiltinCases loads every case from the cases directory of the
// loader's filesystem.
func (l *Loader) LoadBuiltinCases() ([]*Case, error) {
	var cases []*Case

	err := fs.WalkDir(l.fs, "cases", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != ".yml" {
			return nil
		}

		data, err := fs.ReadFile(l.fs, path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		loaded, err := l.LoadCases(data)
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}
		cases = append(cases, loaded...)

		return nil
	})

	if err != nil {
		return nil, err
	}

	return cases, nil
}

// convertYAMLCase resolves yamlCase into a runnable Case, validating
// the expectation fields.
func convertYAMLCase(yc yamlCase) (*Case, error) {
	if yc.Name == "" {
		return nil, fmt.Errorf("case without a name")
	}
	if (yc.Outline == "") == (yc.Error == "") {
		return nil, fmt.Errorf("case %s: exactly one of outline and error is required", yc.Name)
	}

	indent, err := parseIndent(yc.Indent)
	if err != nil {
		return nil, fmt.Errorf("case %s: %w", yc.Name, err)
	}

	c := &Case{
		Name:    yc.Name,
		Indent:  indent,
		Input:   yc.Input,
		Outline: yc.Outline,
		Line:    yc.Line,
	}
	if yc.Error != "" {
		kind, ok := parser.LookupKind(yc.Error)
		if !ok {
			return nil, fmt.Errorf("case %s: unknown error kind %q", yc.Name, yc.Error)
		}
		c.Error = kind
	}
	return c, nil
}

// parseIndent reads the indent field: "tabs", "spaces(N)", or empty for
// the spaces(2) default.
func parseIndent(s string) (parser.Indent, error) {
	if s == "" {
		return parser.Spaces(2)
	}
	return parser.ParseIndent(s)
}
