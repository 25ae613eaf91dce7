// Package parser lexes and groups SQL text into a statement tree.
//
// # Usage
//
//	stmt := parser.Parse("SELECT a, b FROM t")
//	for _, n := range stmt.Tokens {
//	    // ...
//	}
//
// Parsing never fails on malformed SQL: the lexer classifies every byte and
// grouping only adds structure where its patterns fit. The tree always
// prints back to the exact input.
package parser

import (
	"fmt"
	"io"

	"github.com/leapstack-labs/sqltree/pkg/grouping"
	"github.com/leapstack-labs/sqltree/pkg/lexer"
	"github.com/leapstack-labs/sqltree/pkg/token"
	"github.com/leapstack-labs/sqltree/pkg/tree"
)

// Parse lexes sql and runs the grouping pipeline over it.
func Parse(sql string, opts ...grouping.Option) *tree.Group {
	return ParseTokens(lexer.Tokenize(sql), opts...)
}

// ParseTokens groups an already lexed token sequence.
func ParseTokens(tokens []*token.Token, opts ...grouping.Option) *tree.Group {
	return grouping.Group(tree.NewStatement(tokens), opts...)
}

// ParseReader reads all of r and parses it.
func ParseReader(r io.Reader, opts ...grouping.Option) (*tree.Group, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read SQL: %w", err)
	}
	return Parse(string(data), opts...), nil
}
