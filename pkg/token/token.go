// Package token defines the token types for SQL structural grouping.
//
// Token types form a closed set laid out in contiguous families so that
// family checks (IsKeyword, IsName, ...) are range comparisons. Words can be
// added to the keyword classification at runtime via RegisterKeyword.
package token

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TokenType represents the type of a lexical token.
//
//nolint:revive // Accept stutter as token.TokenType is clear and widely used
type TokenType int32

//nolint:revive // ALL_CAPS names follow SQL token conventions
const (
	// Special tokens
	ERROR TokenType = iota
	TEXT

	// Whitespace family
	WHITESPACE
	NEWLINE

	// Comment family
	COMMENT           // -- comment, # comment
	COMMENT_MULTILINE // /* comment */

	// Keyword family
	KEYWORD
	KEYWORD_DML   // SELECT, INSERT, ...
	KEYWORD_DDL   // CREATE, ALTER, ...
	KEYWORD_CTE   // WITH
	KEYWORD_ORDER // ASC, DESC

	// Name family
	NAME
	NAME_BUILTIN // INT, VARCHAR, ...
	PLACEHOLDER  // ?, :name, %s

	// String family
	STRING // 'hello'
	SYMBOL // "quoted identifier"

	// Number family
	INTEGER // 123
	FLOAT   // 45.67, 1e10
	HEX     // 0xFF

	// Operator family
	OPERATOR   // + - / || ...
	COMPARISON // = <> >= ...

	LITERAL     // $$dollar quoted$$
	ASSIGNMENT  // :=
	PUNCTUATION // ; : ( ) [ ] , . ::
	WILDCARD    // *
)

// String returns a human-readable representation of the token type.
func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TOKEN(%d)", t)
}

var tokenNames = map[TokenType]string{
	ERROR: "Error",
	TEXT:  "Text",

	WHITESPACE: "Whitespace",
	NEWLINE:    "Newline",

	COMMENT:           "Comment",
	COMMENT_MULTILINE: "Comment.Multiline",

	KEYWORD:       "Keyword",
	KEYWORD_DML:   "Keyword.DML",
	KEYWORD_DDL:   "Keyword.DDL",
	KEYWORD_CTE:   "Keyword.CTE",
	KEYWORD_ORDER: "Keyword.Order",

	NAME:         "Name",
	NAME_BUILTIN: "Name.Builtin",
	PLACEHOLDER:  "Name.Placeholder",

	STRING: "String",
	SYMBOL: "String.Symbol",

	INTEGER: "Number.Integer",
	FLOAT:   "Number.Float",
	HEX:     "Number.Hex",

	OPERATOR:   "Operator",
	COMPARISON: "Operator.Comparison",

	LITERAL:     "Literal",
	ASSIGNMENT:  "Assignment",
	PUNCTUATION: "Punctuation",
	WILDCARD:    "Wildcard",
}

// IsWhitespace returns true for spaces, tabs and newlines.
func IsWhitespace(t TokenType) bool {
	return t >= WHITESPACE && t <= NEWLINE
}

// IsComment returns true for line and block comments.
func IsComment(t TokenType) bool {
	return t >= COMMENT && t <= COMMENT_MULTILINE
}

// IsKeyword returns true if the token type is in the keyword family.
func IsKeyword(t TokenType) bool {
	return t >= KEYWORD && t <= KEYWORD_ORDER
}

// IsName returns true for names, builtin type names and placeholders.
func IsName(t TokenType) bool {
	return t >= NAME && t <= PLACEHOLDER
}

// IsString returns true for string literals and quoted symbols.
func IsString(t TokenType) bool {
	return t >= STRING && t <= SYMBOL
}

// IsNumber returns true for numeric literals.
func IsNumber(t TokenType) bool {
	return t >= INTEGER && t <= HEX
}

// IsOperator returns true if the token type is an operator.
func IsOperator(t TokenType) bool {
	return t >= OPERATOR && t <= COMPARISON
}

var upper = cases.Upper(language.Und)

// Token is a classified leaf of the input.
//
// Tokens are created once by the lexer. Only the type may change afterwards,
// through Reclassify.
type Token struct {
	Type       TokenType
	Value      string
	Normalized string
	Pos        Position
}

// New creates a token. Keywords get an upper-cased normalized form with
// inner whitespace collapsed, so "order  by" and "ORDER BY" compare equal.
func New(t TokenType, value string, pos Position) *Token {
	normalized := value
	if IsKeyword(t) {
		normalized = upper.String(strings.Join(strings.Fields(value), " "))
	}
	return &Token{Type: t, Value: value, Normalized: normalized, Pos: pos}
}

// String returns the raw token text.
func (t *Token) String() string {
	return t.Value
}

// IsGroup is always false for leaf tokens.
func (t *Token) IsGroup() bool {
	return false
}

// IsWhitespace reports whether the token is whitespace or a newline.
func (t *Token) IsWhitespace() bool {
	return IsWhitespace(t.Type)
}

// IsKeyword reports whether the token is in the keyword family.
func (t *Token) IsKeyword() bool {
	return IsKeyword(t.Type)
}

// Match reports whether the token has exactly type tt and, when values are
// given, one of those values. Keywords compare case-insensitively against
// the normalized form; everything else compares the raw text.
func (t *Token) Match(tt TokenType, values ...string) bool {
	if t.Type != tt {
		return false
	}
	if len(values) == 0 {
		return true
	}
	for _, v := range values {
		if t.IsKeyword() {
			if t.Normalized == upper.String(v) {
				return true
			}
		} else if t.Value == v {
			return true
		}
	}
	return false
}

// Reclassify changes the token type. The grouping stage uses it to confirm
// a wildcard as an arithmetic operator.
func (t *Token) Reclassify(tt TokenType) {
	t.Type = tt
	if IsKeyword(tt) {
		t.Normalized = upper.String(t.Value)
	} else {
		t.Normalized = t.Value
	}
}
