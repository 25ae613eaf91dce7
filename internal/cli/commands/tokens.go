package commands

import (
	"github.com/leapstack-labs/sqltree/pkg/lexer"
	"github.com/spf13/cobra"
)

// NewTokensCommand creates the tokens command.
func NewTokensCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens [file]",
		Short: "List the lexed tokens",
		Long: `Print the flat token sequence the grouping stage starts from,
with each token's type and source position.`,
		Example: `  sqltree tokens query.sql
  echo "SELECT 1" | sqltree tokens -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := NewCommandContext(cmd)
			in, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			tokens := lexer.Tokenize(in.SQL)
			c.Logger.Debug("lexed input", "source", in.Name, "tokens", len(tokens))
			return c.Renderer.Tokens(tokens)
		},
	}
}
