package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/leapstack-labs/sqltree/pkg/grouping"
	"github.com/leapstack-labs/sqltree/pkg/lexer"
	"github.com/leapstack-labs/sqltree/pkg/parser"
	"github.com/spf13/cobra"
)

const (
	replPrompt         = "sqltree> "
	replContinuePrompt = "    ...> "
)

// NewREPLCommand creates the repl command.
func NewREPLCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Inspect statement trees interactively",
		Long: `Start an interactive session. Each statement, terminated by a
semicolon, is grouped and its tree printed.`,
		Args: cobra.NoArgs,
		RunE: runREPL,
	}
}

func runREPL(cmd *cobra.Command, _ []string) error {
	c := NewCommandContext(cmd)

	historyFile := ""
	if home, err := os.UserHomeDir(); err == nil {
		historyFile = filepath.Join(home, ".sqltree_history")
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          replPrompt,
		HistoryFile:     historyFile,
		AutoComplete:    newREPLCompleter(),
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "sqltree REPL")
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Type .help for commands, .quit to exit")
	_, _ = fmt.Fprintln(cmd.OutOrStdout())

	return newREPLSession(c, cmd.ErrOrStderr()).run(rl)
}

// lineReader is the part of *readline.Instance the REPL loop uses.
type lineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
}

// run reads lines until .quit, EOF or a read error.
func (s *replSession) run(rl lineReader) error {
	for {
		line, err := rl.Readline()
		switch {
		case errors.Is(err, readline.ErrInterrupt):
			s.reset()
			rl.SetPrompt(replPrompt)
			continue
		case errors.Is(err, io.EOF):
			return nil
		case err != nil:
			return fmt.Errorf("failed to read input: %w", err)
		}

		if s.handleLine(line) {
			return nil
		}
		rl.SetPrompt(s.prompt())
	}
}

// replSession holds the state of one REPL run.
type replSession struct {
	c          *CommandContext
	errOut     io.Writer
	buf        strings.Builder
	showTokens bool
	whitespace bool
}

func newREPLSession(c *CommandContext, errOut io.Writer) *replSession {
	return &replSession{c: c, errOut: errOut}
}

func (s *replSession) reset() {
	s.buf.Reset()
}

func (s *replSession) prompt() string {
	if s.buf.Len() > 0 {
		return replContinuePrompt
	}
	return replPrompt
}

// handleLine processes one input line and reports whether to quit.
func (s *replSession) handleLine(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}

	// Handle dot-commands
	if s.buf.Len() == 0 && strings.HasPrefix(line, ".") {
		return s.dotCommand(line)
	}

	// Accumulate multi-line SQL until semicolon
	s.buf.WriteString(line)
	if !strings.HasSuffix(line, ";") {
		s.buf.WriteString("\n")
		return false
	}

	sql := s.buf.String()
	s.buf.Reset()
	s.show(sql)
	return false
}

func (s *replSession) show(sql string) {
	r := s.c.Renderer
	if s.showTokens {
		if err := r.Tokens(lexer.Tokenize(sql)); err != nil {
			_, _ = fmt.Fprintf(s.errOut, "Error: %v\n", err)
		}
	}
	if err := r.Tree(parser.Parse(sql, s.c.GroupOptions()...), s.whitespace); err != nil {
		_, _ = fmt.Fprintf(s.errOut, "Error: %v\n", err)
	}
	r.Println()
}

func (s *replSession) dotCommand(line string) bool {
	command := strings.ToLower(strings.Fields(line)[0])
	w := s.c.Renderer.Writer()

	switch command {
	case ".quit", ".exit":
		return true

	case ".help":
		printREPLHelp(w)

	case ".tokens":
		s.showTokens = !s.showTokens
		_, _ = fmt.Fprintf(w, "token table %s\n", onOff(s.showTokens))

	case ".whitespace":
		s.whitespace = !s.whitespace
		_, _ = fmt.Fprintf(w, "whitespace %s\n", onOff(s.whitespace))

	case ".passes":
		for _, name := range grouping.PassNames() {
			_, _ = fmt.Fprintln(w, name)
		}

	default:
		_, _ = fmt.Fprintf(s.errOut, "Unknown command: %s (type .help for commands)\n", command)
	}
	return false
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func printREPLHelp(w io.Writer) {
	help := `
Commands:
  .help           Show this help message
  .tokens         Toggle the token table before each tree
  .whitespace     Toggle whitespace tokens in the tree
  .passes         List the grouping passes in order
  .quit / .exit   Exit the REPL

Tips:
  - Statements must end with a semicolon (;)
  - Use arrow keys to navigate history
`
	_, _ = fmt.Fprintln(w, help)
}

func newREPLCompleter() *readline.PrefixCompleter {
	return readline.NewPrefixCompleter(
		readline.PcItem(".help"),
		readline.PcItem(".tokens"),
		readline.PcItem(".whitespace"),
		readline.PcItem(".passes"),
		readline.PcItem(".quit"),
		readline.PcItem(".exit"),
	)
}
