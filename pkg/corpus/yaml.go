package corpus

// yamlCase is the on-disk form of one conformance case. Exactly one of
// Outline and Error must be present; Indent defaults to spaces(2).
type yamlCase struct {
	Name    string `yaml:"name"`
	Indent  string `yaml:"indent,omitempty"`
	Input   string `yaml:"input"`
	Outline string `yaml:"outline,omitempty"`
	Error   string `yaml:"error,omitempty"`
	Line    int    `yaml:"line,omitempty"`
}

// yamlCasesFile represents the top-level structure of a cases YAML file.
type yamlCasesFile struct {
	Cases []yamlCase `yaml:"cases"`
}
