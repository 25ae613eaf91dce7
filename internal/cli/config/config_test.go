package config

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/leapstack-labs/sqltree/internal/testutil"
	"github.com/leapstack-labs/sqltree/pkg/token"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfig writes content to sqltree.yaml in a temp dir and returns its path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	cfgPath := filepath.Join(t.TempDir(), "sqltree.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0600))
	return cfgPath
}

func TestLoadConfig_Defaults(t *testing.T) {
	ResetConfig()
	chdir(t, t.TempDir())

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultOutput, cfg.Output)
	assert.Equal(t, DefaultIndent, cfg.Indent)
	assert.False(t, cfg.Verbose)
	assert.Equal(t, DefaultLanguage, cfg.Filter.Language)
	assert.Equal(t, DefaultVarName, cfg.Filter.VarName)
	assert.Empty(t, GetConfigFileUsed())
}

func TestLoadConfig_File(t *testing.T) {
	ResetConfig()
	cfgPath := writeConfig(t, `output: json
indent: 4
keywords:
  dml: [upsert]
  builtin: [jsonb, uuid]
filter:
  language: php
  varname: query
`)

	cfg, err := LoadConfig(cfgPath, nil)
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.Output)
	assert.Equal(t, 4, cfg.Indent)
	assert.Equal(t, []string{"upsert"}, cfg.Keywords["dml"])
	assert.Equal(t, []string{"jsonb", "uuid"}, cfg.Keywords["builtin"])
	assert.Equal(t, "php", cfg.Filter.Language)
	assert.Equal(t, "query", cfg.Filter.VarName)
	assert.Equal(t, cfgPath, GetConfigFileUsed())
}

func TestLoadConfig_FindsFileInWorkingDir(t *testing.T) {
	ResetConfig()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sqltree.yml"), []byte("indent: 3\n"), 0600))
	chdir(t, dir)

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Indent)
	assert.Equal(t, "sqltree.yml", GetConfigFileUsed())
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	ResetConfig()
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

// TestLoadConfig_FlagPrecedence tests that flags override env vars and config file.
func TestLoadConfig_FlagPrecedence(t *testing.T) {
	ResetConfig()
	cfgPath := writeConfig(t, "output: markdown\n")
	t.Setenv("SQLTREE_OUTPUT", "yaml")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.StringP("output", "o", "", "output format")
	require.NoError(t, flags.Set("output", "json"))

	cfg, err := LoadConfig(cfgPath, flags)
	require.NoError(t, err)

	// Flag should win
	assert.Equal(t, "json", cfg.Output, "flag value should override config file and env var")
}

// TestLoadConfig_EnvPrecedenceOverFile tests that env vars override config file.
func TestLoadConfig_EnvPrecedenceOverFile(t *testing.T) {
	ResetConfig()
	cfgPath := writeConfig(t, "output: markdown\nfilter:\n  varname: from_file\n")
	t.Setenv("SQLTREE_OUTPUT", "yaml")
	t.Setenv("SQLTREE_FILTER_VARNAME", "from_env")

	cfg, err := LoadConfig(cfgPath, nil)
	require.NoError(t, err)

	assert.Equal(t, "yaml", cfg.Output, "env var should override config file")
	assert.Equal(t, "from_env", cfg.Filter.VarName)
}

// TestLoadConfig_FlagNotSetUsesEnv tests that unset flags fall back to env vars.
func TestLoadConfig_FlagNotSetUsesEnv(t *testing.T) {
	ResetConfig()
	cfgPath := writeConfig(t, "indent: 2\n")
	t.Setenv("SQLTREE_INDENT", "8")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("indent", 0, "indent")

	cfg, err := LoadConfig(cfgPath, flags)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Indent, "env var should be used when flag is not set")
}

func TestLoadConfig_MappedFlags(t *testing.T) {
	ResetConfig()
	chdir(t, t.TempDir())

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("lang", "", "language")
	flags.String("varname", "", "variable name")
	require.NoError(t, flags.Set("lang", "php"))
	require.NoError(t, flags.Set("varname", "q"))

	cfg, err := LoadConfig("", flags)
	require.NoError(t, err)
	assert.Equal(t, "php", cfg.Filter.Language)
	assert.Equal(t, "q", cfg.Filter.VarName)
}

func TestLoadConfig_Invalid(t *testing.T) {
	ResetConfig()
	cfgPath := writeConfig(t, "output: html\n")

	_, err := LoadConfig(cfgPath, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		errSubstr string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "upper case output", mutate: func(c *Config) { c.Output = "JSON" }},
		{name: "unknown output", mutate: func(c *Config) { c.Output = "xml" }, errSubstr: "unknown output format"},
		{name: "negative indent", mutate: func(c *Config) { c.Indent = -1 }, errSubstr: "indent must not be negative"},
		{name: "unknown language", mutate: func(c *Config) { c.Filter.Language = "ruby" }, errSubstr: "unknown filter language"},
		{
			name:      "unknown keyword class",
			mutate:    func(c *Config) { c.Keywords = map[string][]string{"verb": {"x"}} },
			errSubstr: "unknown keyword class",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.errSubstr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errSubstr)
		})
	}
}

func TestConfig_RegisterKeywords(t *testing.T) {
	cfg := Default()
	cfg.Keywords = map[string][]string{
		"ddl":     {"cfgtest_vacuum"},
		"builtin": {"cfgtest_jsonb", "  "},
	}

	require.NoError(t, cfg.RegisterKeywords(testutil.NewTestLogger(t)))
	assert.Equal(t, token.KEYWORD_DDL, token.LookupKeyword("CFGTEST_VACUUM"))
	assert.Equal(t, token.NAME_BUILTIN, token.LookupKeyword("cfgtest_jsonb"))
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	NewLogger(&buf, false).Debug("hidden")
	assert.Empty(t, buf.String())

	NewLogger(&buf, true).Debug("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestGetLogger(t *testing.T) {
	assert.NotNil(t, GetLogger(context.Background()))

	logger := NewLogger(&bytes.Buffer{}, true)
	ctx := WithLogger(context.Background(), logger)
	assert.Same(t, logger, GetLogger(ctx))
	assert.Same(t, logger, ctx.Value(LoggerKey()))
}

// chdir changes the working directory to dir for the duration of the test
// (stand-in for testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
