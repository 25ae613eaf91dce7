package config

import (
	"fmt"
	"log/slog"
	"slices"
	"sort"
	"strings"

	"github.com/leapstack-labs/sqltree/pkg/filter"
	"github.com/leapstack-labs/sqltree/pkg/token"
)

// OutputModes lists the accepted values of the output setting.
var OutputModes = []string{"auto", "text", "markdown", "json", "yaml"}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Output != "" && !slices.Contains(OutputModes, strings.ToLower(c.Output)) {
		return fmt.Errorf("unknown output format %q\nHint: use one of %s", c.Output, strings.Join(OutputModes, ", "))
	}
	if c.Indent < 0 {
		return fmt.Errorf("indent must not be negative, got %d", c.Indent)
	}
	if c.Filter.Language != "" && !slices.Contains(filter.Languages(), strings.ToLower(c.Filter.Language)) {
		return fmt.Errorf("unknown filter language %q\nHint: use one of %s",
			c.Filter.Language, strings.Join(filter.Languages(), ", "))
	}
	for class := range c.Keywords {
		if _, ok := token.ParseClass(class); !ok {
			return fmt.Errorf("unknown keyword class %q in sqltree.yaml\nHint: use one of %s",
				class, strings.Join(token.ClassNames(), ", "))
		}
	}
	return nil
}

// RegisterKeywords adds the configured keywords to the lexer's table.
// Classes are registered in sorted order so a word listed under two
// classes resolves the same way on every run.
func (c *Config) RegisterKeywords(logger *slog.Logger) error {
	classes := make([]string, 0, len(c.Keywords))
	for class := range c.Keywords {
		classes = append(classes, class)
	}
	sort.Strings(classes)

	for _, class := range classes {
		tt, ok := token.ParseClass(class)
		if !ok {
			return fmt.Errorf("unknown keyword class %q", class)
		}
		for _, word := range c.Keywords[class] {
			if !token.RegisterKeyword(word, tt) {
				logger.Warn("ignoring keyword", "word", word, "class", class)
				continue
			}
			logger.Debug("registered keyword", "word", word, "class", tt.String())
		}
	}
	return nil
}
