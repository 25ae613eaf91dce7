// Package filter renders grouped statements as source code of other
// languages, such as a Python or PHP string assignment.
package filter

import (
	"bytes"
	"sort"
	"strconv"
	"strings"

	"github.com/leapstack-labs/sqltree/pkg/tree"
	"gopkg.in/src-d/go-errors.v1"
)

// ErrUnknownLanguage is returned by New for an unsupported output language.
var ErrUnknownLanguage = errors.NewKind("unknown output language %q (want one of: %s)")

// DefaultVarName is the variable name used when none is given.
const DefaultVarName = "sql"

// Filter renders statements one after another. Filters are stateful: the
// second and later statements get a numbered variable name.
type Filter interface {
	Process(stmt *tree.Group) string
}

var constructors = map[string]func(varname string) Filter{
	"python": func(v string) Filter { return NewPython(v) },
	"php":    func(v string) Filter { return NewPHP(v) },
}

// New returns the filter for language ("python" or "php").
func New(language, varname string) (Filter, error) {
	ctor, ok := constructors[strings.ToLower(language)]
	if !ok {
		return nil, ErrUnknownLanguage.New(language, strings.Join(Languages(), ", "))
	}
	return ctor(varname), nil
}

// Languages returns the supported output languages, sorted.
func Languages() []string {
	out := make([]string, 0, len(constructors))
	for name := range constructors {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// counter numbers statements and derives the variable name for each.
type counter struct {
	varname string
	count   int
}

func newCounter(prefix, varname string) counter {
	if varname == "" {
		varname = DefaultVarName
	}
	return counter{varname: prefix + varname}
}

// next advances the counter and returns the variable name to use.
func (c *counter) next() string {
	c.count++
	if c.count > 1 {
		return c.varname + strconv.Itoa(c.count)
	}
	return c.varname
}

// printer accumulates rendered output.
type printer struct {
	output *bytes.Buffer
}

func newPrinter() *printer {
	return &printer{output: &bytes.Buffer{}}
}

func (p *printer) write(parts ...string) {
	for _, s := range parts {
		p.output.WriteString(s)
	}
}

func (p *printer) String() string {
	return p.output.String()
}

// lineHooks customises how a statement body is quoted line by line.
type lineHooks struct {
	// escape rewrites the text of a non-newline leaf.
	escape func(string) string
	// breakLine closes the current line and opens the next one.
	breakLine func(p *printer)
}

// body writes every leaf of stmt. A whitespace leaf holding a newline
// becomes a line break followed by whatever indentation came after the
// newline.
func body(p *printer, stmt *tree.Group, hooks lineHooks) {
	for _, tok := range stmt.Flatten() {
		if tok.IsWhitespace() && strings.Contains(tok.Value, "\n") {
			hooks.breakLine(p)
			if _, indent, _ := strings.Cut(tok.Value, "\n"); indent != "" {
				p.write(indent)
			}
			continue
		}
		p.write(hooks.escape(tok.Value))
	}
}

// multiline reports whether the trimmed statement spans several lines.
func multiline(stmt *tree.Group) bool {
	return strings.ContainsAny(strings.TrimSpace(stmt.String()), "\r\n")
}
