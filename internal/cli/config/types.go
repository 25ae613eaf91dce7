// Package config provides configuration management for the sqltree CLI.
//
// Configuration is layered with koanf: built-in defaults, then
// sqltree.yaml (or sqltree.yml), then SQLTREE_* environment variables,
// then explicitly set command-line flags.
package config

// Default values for CLI configuration.
const (
	DefaultOutput   = "auto"
	DefaultIndent   = 2
	DefaultLanguage = "python"
	DefaultVarName  = "sql"
)

// ConfigFileNames are the file names searched for in the working directory,
// in order.
var ConfigFileNames = []string{"sqltree.yaml", "sqltree.yml"}

// FilterConfig holds defaults for the emit command.
type FilterConfig struct {
	Language string `koanf:"language"`
	VarName  string `koanf:"varname"`
}

// Config holds all CLI configuration options.
type Config struct {
	Output  string `koanf:"output"`
	Verbose bool   `koanf:"verbose"`
	// Indent is the number of spaces per tree level in text output.
	Indent int `koanf:"indent"`
	// Keywords maps a class name ("keyword", "dml", "ddl", "cte", "order",
	// "name", "builtin") to extra words lexed with that class.
	Keywords map[string][]string `koanf:"keywords"`
	Filter   FilterConfig        `koanf:"filter"`
}

// Default returns the configuration used when nothing else is set.
func Default() *Config {
	return &Config{
		Output: DefaultOutput,
		Indent: DefaultIndent,
		Filter: FilterConfig{
			Language: DefaultLanguage,
			VarName:  DefaultVarName,
		},
	}
}
