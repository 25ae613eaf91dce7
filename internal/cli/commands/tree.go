package commands

import (
	"fmt"
	"slices"
	"strings"

	"github.com/leapstack-labs/sqltree/pkg/grouping"
	"github.com/leapstack-labs/sqltree/pkg/parser"
	"github.com/spf13/cobra"
)

// TreeOptions holds options for the tree command.
type TreeOptions struct {
	Whitespace bool
	Watch      bool
	Until      string
}

// NewTreeCommand creates the tree command.
func NewTreeCommand() *cobra.Command {
	opts := &TreeOptions{}

	cmd := &cobra.Command{
		Use:   "tree [file]",
		Short: "Show the grouped statement tree",
		Long: `Lex and group SQL, then print the resulting tree.

SQL is read from the file argument, or from stdin when no file (or "-")
is given. With --watch the file is re-rendered every time it changes.`,
		Example: `  sqltree tree query.sql
  echo "SELECT a, b FROM t" | sqltree tree
  sqltree tree query.sql -o json
  sqltree tree query.sql --until parenthesis
  sqltree tree query.sql --watch`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTree(cmd, args, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.Whitespace, "whitespace", "w", false, "Include whitespace tokens")
	cmd.Flags().BoolVar(&opts.Watch, "watch", false, "Re-render when the file changes")
	cmd.Flags().StringVar(&opts.Until, "until", "", "Stop grouping after the named pass")

	_ = cmd.RegisterFlagCompletionFunc("until", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return grouping.PassNames(), cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func runTree(cmd *cobra.Command, args []string, opts *TreeOptions) error {
	if opts.Until != "" && !slices.Contains(grouping.PassNames(), opts.Until) {
		return fmt.Errorf("unknown pass %q\nHint: use one of %s", opts.Until, strings.Join(grouping.PassNames(), ", "))
	}
	if opts.Watch && (len(args) == 0 || args[0] == "-") {
		return fmt.Errorf("--watch needs a file argument")
	}

	c := NewCommandContext(cmd)

	render := func() error {
		in, err := readInput(cmd, args)
		if err != nil {
			return err
		}
		stmt := parser.Parse(in.SQL, c.GroupOptions(grouping.WithUntil(opts.Until))...)
		c.Logger.Debug("parsed input", "source", in.Name, "bytes", len(in.SQL))
		return c.Renderer.Tree(stmt, opts.Whitespace)
	}

	if err := render(); err != nil {
		return err
	}
	if !opts.Watch {
		return nil
	}

	c.Renderer.Muted(fmt.Sprintf("Watching %s (Ctrl+C to stop)", args[0]))
	return watchFile(cmd.Context(), args[0], c.Logger, func() error {
		c.Renderer.Println()
		return render()
	})
}
