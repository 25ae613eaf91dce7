// Package grouping rewrites a flat statement into a tree of structural
// groups: brackets and blocks, WHERE clauses, qualified names, function
// calls, casts, aliases, operations, comparisons and comma lists.
//
// Grouping never rejects input. Every pass is a local, best-effort
// heuristic that leaves tokens alone when its pattern does not fit, so
// truncated or invalid SQL still yields a usable tree.
//
// Passes recurse into nested groups, so stack usage grows with the nesting
// depth of parentheses and blocks in the input. Very deep nesting is not
// guarded against.
package grouping

import (
	"io"
	"log/slog"
	"time"

	"github.com/leapstack-labs/sqltree/pkg/tree"
)

// Pass is one tree rewrite of the pipeline.
type Pass struct {
	Name string
	Func func(*tree.Group)
}

// Passes is the fixed pipeline order. Each pass relies on structure built
// by the ones before it: delimiters are paired before anything treats
// their contents as operands, functions exist before WHERE extraction and
// dot qualification, bare names are wrapped before operator, alias and
// comparison grouping, and comma lists are built last.
var Passes = []Pass{
	{Name: "comments", Func: groupComments},

	{Name: "brackets", Func: groupBrackets},
	{Name: "parenthesis", Func: groupParenthesis},
	{Name: "case", Func: groupCase},
	{Name: "if", Func: groupIf},
	{Name: "for", Func: groupFor},
	{Name: "begin", Func: groupBegin},

	{Name: "functions", Func: groupFunctions},
	{Name: "where", Func: groupWhere},
	{Name: "period", Func: groupPeriod},
	{Name: "arrays", Func: groupArrays},
	{Name: "identifiers", Func: groupIdentifier},
	{Name: "operators", Func: groupOperator},
	{Name: "order", Func: groupOrder},
	{Name: "typecasts", Func: groupTypecasts},
	{Name: "as", Func: groupAs},
	{Name: "aliased", Func: groupAliased},
	{Name: "assignment", Func: groupAssignment},
	{Name: "comparison", Func: groupComparison},

	{Name: "align-comments", Func: alignComments},
	{Name: "identifier-list", Func: groupIdentifierList},
}

// PassNames returns the pass names in pipeline order.
func PassNames() []string {
	names := make([]string, len(Passes))
	for i, p := range Passes {
		names[i] = p.Name
	}
	return names
}

// Options configures a pipeline run.
type Options struct {
	Logger *slog.Logger

	// Until stops the pipeline after the named pass. Empty runs every pass.
	Until string
}

// Option is a functional option for Group.
type Option func(*Options)

// WithLogger sets the logger that receives one debug record per pass.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		if logger != nil {
			o.Logger = logger
		}
	}
}

// WithUntil stops the pipeline after the named pass.
func WithUntil(name string) Option {
	return func(o *Options) {
		o.Until = name
	}
}

// Group runs every pass over stmt in order, mutating it in place, and
// returns it.
func Group(stmt *tree.Group, opts ...Option) *tree.Group {
	o := &Options{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(o)
	}

	for _, p := range Passes {
		start := time.Now()
		p.Func(stmt)
		o.Logger.Debug("grouping pass complete",
			"pass", p.Name,
			"nodes", stmt.Len(),
			"depth", tree.Depth(stmt),
			"duration", time.Since(start))
		if p.Name == o.Until {
			break
		}
	}
	return stmt
}
