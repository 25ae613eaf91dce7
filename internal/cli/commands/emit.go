package commands

import (
	"strings"

	"github.com/leapstack-labs/sqltree/pkg/filter"
	"github.com/leapstack-labs/sqltree/pkg/parser"
	"github.com/spf13/cobra"
)

// NewEmitCommand creates the emit command.
func NewEmitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "emit [file...]",
		Short: "Render SQL as a Python or PHP string assignment",
		Long: `Render each input as a variable assignment in another language.

Every file is one statement. The first statement is assigned to the
variable name, later ones get a numeric suffix (sql, sql2, sql3, ...).
Language and variable name default to the filter section of sqltree.yaml.`,
		Example: `  sqltree emit query.sql
  sqltree emit --lang php --varname query a.sql b.sql
  echo "SELECT 1" | sqltree emit`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEmit(cmd, args)
		},
	}

	cmd.Flags().String("lang", "", "Output language (python|php)")
	cmd.Flags().String("varname", "", "Variable name to assign to")

	_ = cmd.RegisterFlagCompletionFunc("lang", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return filter.Languages(), cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func runEmit(cmd *cobra.Command, args []string) error {
	c := NewCommandContext(cmd)

	f, err := filter.New(c.Cfg.Filter.Language, c.Cfg.Filter.VarName)
	if err != nil {
		return err
	}

	var inputs []Input
	if len(args) == 0 {
		in, err := readInput(cmd, nil)
		if err != nil {
			return err
		}
		inputs = append(inputs, in)
	}
	for _, path := range args {
		in, err := readInput(cmd, []string{path})
		if err != nil {
			return err
		}
		inputs = append(inputs, in)
	}

	for _, in := range inputs {
		stmt := parser.Parse(strings.TrimSpace(in.SQL), c.GroupOptions()...)
		c.Logger.Debug("emitting statement", "source", in.Name, "language", c.Cfg.Filter.Language)
		c.Renderer.Println(f.Process(stmt))
	}
	return nil
}
