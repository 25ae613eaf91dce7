package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/leapstack-labs/sqltree/internal/cli/config"
	"github.com/leapstack-labs/sqltree/internal/cli/output"
	"github.com/leapstack-labs/sqltree/pkg/grouping"
	"github.com/spf13/cobra"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext collects the config and logger stored on the command
// context and builds a renderer for the configured output mode.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := config.GetConfig(cmd.Context())
	logger := config.GetLogger(cmd.Context())

	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(cfg.Output))
	r.SetIndent(cfg.Indent)

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}
}

// GroupOptions returns the grouping options for this command.
func (c *CommandContext) GroupOptions(extra ...grouping.Option) []grouping.Option {
	return append([]grouping.Option{grouping.WithLogger(c.Logger)}, extra...)
}

// Input is SQL text with the name it was read from.
type Input struct {
	Name string
	SQL  string
}

// readInput reads the file named by args[0], or stdin when args is empty
// or "-".
func readInput(cmd *cobra.Command, args []string) (Input, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return Input{}, fmt.Errorf("failed to read stdin: %w", err)
		}
		return Input{Name: "<stdin>", SQL: string(data)}, nil
	}
	return readFile(args[0])
}

func readFile(path string) (Input, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Input{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Input{Name: path, SQL: string(data)}, nil
}
