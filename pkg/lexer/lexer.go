// Package lexer turns SQL text into classified tokens for the grouping stage.
//
// Unlike a parser front end, the lexer keeps whitespace, newlines and
// comments as tokens and never fails: characters it cannot classify become
// ERROR tokens. Concatenating the Value of every token reproduces the input.
package lexer

import (
	"strings"

	"github.com/leapstack-labs/sqltree/pkg/token"
)

// Lexer tokenizes SQL input.
type Lexer struct {
	input string
	pos   int            // offset of the next unread byte
	at    token.Position // position of input[pos]
}

// New creates a new Lexer for the given input.
func New(input string) *Lexer {
	return &Lexer{
		input: input,
		at:    token.Position{Line: 1, Column: 1},
	}
}

// Tokenize returns all tokens from the input.
func Tokenize(input string) []*token.Token {
	l := New(input)
	var tokens []*token.Token
	for tok := l.Next(); tok != nil; tok = l.Next() {
		tokens = append(tokens, tok)
	}
	return tokens
}

// Next returns the next token, or nil at end of input.
func (l *Lexer) Next() *token.Token {
	if l.pos >= len(l.input) {
		return nil
	}

	ch := l.input[l.pos]
	next := l.peekChar(1)

	switch {
	case ch == '-' && next == '-', ch == '#' && (next == ' ' || next == '\t'):
		return l.emit(token.COMMENT, l.scanLineComment())
	case ch == '/' && next == '*':
		return l.emit(token.COMMENT_MULTILINE, l.scanBlockComment())
	case ch == '\r' && next == '\n':
		return l.emit(token.NEWLINE, l.pos+2)
	case ch == '\r' || ch == '\n':
		return l.emit(token.NEWLINE, l.pos+1)
	case isSpace(ch):
		end := l.pos
		for end < len(l.input) && isSpace(l.input[end]) {
			end++
		}
		return l.emit(token.WHITESPACE, end)
	case ch == ':' && next == '=':
		return l.emit(token.ASSIGNMENT, l.pos+2)
	case ch == ':' && next == ':':
		return l.emit(token.PUNCTUATION, l.pos+2)
	case ch == '*':
		return l.emit(token.WILDCARD, l.pos+1)
	case ch == '`':
		return l.emit(token.NAME, l.scanQuoted('`'))
	case ch == '\'':
		return l.emit(token.STRING, l.scanQuoted('\''))
	case ch == '"':
		return l.emit(token.SYMBOL, l.scanQuoted('"'))
	}

	if tok := l.lexSpecial(ch, next); tok != nil {
		return tok
	}

	switch {
	case isDigit(ch), ch == '.' && isDigit(next) && !l.afterWord():
		tt, end := l.scanNumber()
		return l.emit(tt, end)
	case isLetter(ch) || ch == '_':
		return l.lexWord()
	case strings.IndexByte(";:()[],.", ch) >= 0:
		return l.emit(token.PUNCTUATION, l.pos+1)
	case strings.IndexByte("<>=~!", ch) >= 0:
		end := l.pos
		for end < len(l.input) && strings.IndexByte("<>=~!", l.input[end]) >= 0 {
			end++
		}
		return l.emit(token.COMPARISON, end)
	case isOperatorChar(ch):
		end := l.pos + 1
		for end < len(l.input) && isOperatorChar(l.input[end]) && !l.commentStartsAt(end) {
			end++
		}
		return l.emit(token.OPERATOR, end)
	}

	return l.emit(token.ERROR, l.pos+1)
}

// lexSpecial handles placeholders, dollar-quoted literals, bracketed names
// and prefixed names. It returns nil when none of them apply.
func (l *Lexer) lexSpecial(ch, next byte) *token.Token {
	switch ch {
	case '$':
		if end, ok := l.scanDollarQuoted(); ok {
			return l.emit(token.LITERAL, end)
		}
		if isWordChar(next) && !l.afterWord() {
			return l.emit(token.PLACEHOLDER, l.scanWord(l.pos+1))
		}
	case '?':
		if isWordChar(next) && !l.afterWord() {
			return l.emit(token.PLACEHOLDER, l.scanWord(l.pos+1))
		}
		return l.emit(token.PLACEHOLDER, l.pos+1)
	case ':':
		if isLetter(next) || next == '_' || isDigit(next) {
			if !l.afterWord() {
				return l.emit(token.PLACEHOLDER, l.scanWord(l.pos+1))
			}
		}
	case '%':
		if end, ok := l.scanPyformat(); ok {
			return l.emit(token.PLACEHOLDER, end)
		}
	case '@':
		if isLetter(next) {
			return l.emit(token.NAME, l.scanWord(l.pos+1))
		}
	case '#':
		start := l.pos + 1
		if next == '#' {
			start++
		}
		if start < len(l.input) && isLetter(l.input[start]) {
			return l.emit(token.NAME, l.scanWord(start))
		}
	case '[':
		if end, ok := l.scanBracketName(); ok {
			return l.emit(token.NAME, end)
		}
	}
	return nil
}

// lexWord classifies a bare word as keyword or name.
func (l *Lexer) lexWord() *token.Token {
	if tt, end, ok := l.scanPhrase(); ok {
		return l.emit(tt, end)
	}

	end := l.scanWord(l.pos)
	word := l.input[l.pos:end]
	upperWord := strings.ToUpper(word)

	if token.IsRegistered(word) {
		return l.emit(token.LookupKeyword(word), end)
	}

	switch {
	case keepKeywordBeforeParen[upperWord] && l.peekAt(end) == '(':
		return l.emit(token.LookupKeyword(word), end)
	case l.pos > 0 && l.input[l.pos-1] == '.':
		return l.emit(token.NAME, end)
	case l.peekAt(l.skipSpaces(end)) == '.' && !isDigit(l.peekAt(l.skipSpaces(end)+1)):
		return l.emit(token.NAME, end)
	case l.peekAt(end) == '(':
		// Function names shadow keywords: COUNT(, REPLACE(, ...
		return l.emit(token.NAME, end)
	}
	return l.emit(token.LookupKeyword(word), end)
}

// keepKeywordBeforeParen lists words that stay keywords when directly
// followed by an opening parenthesis.
var keepKeywordBeforeParen = map[string]bool{
	"CASE":   true,
	"IN":     true,
	"VALUES": true,
	"USING":  true,
	"AND":    true,
	"OR":     true,
	"NOT":    true,
	"ON":     true,
}

// phrases are multi-word keywords lexed as a single token. Longer phrases
// come first so that "LEFT OUTER JOIN" wins over "LEFT JOIN".
var phrases = []struct {
	words []string
	class token.TokenType
}{
	{[]string{"CREATE", "OR", "REPLACE"}, token.KEYWORD_DDL},
	{[]string{"LEFT", "OUTER", "JOIN"}, token.KEYWORD},
	{[]string{"RIGHT", "OUTER", "JOIN"}, token.KEYWORD},
	{[]string{"FULL", "OUTER", "JOIN"}, token.KEYWORD},
	{[]string{"LEFT", "INNER", "JOIN"}, token.KEYWORD},
	{[]string{"RIGHT", "INNER", "JOIN"}, token.KEYWORD},
	{[]string{"LEFT", "JOIN"}, token.KEYWORD},
	{[]string{"RIGHT", "JOIN"}, token.KEYWORD},
	{[]string{"FULL", "JOIN"}, token.KEYWORD},
	{[]string{"INNER", "JOIN"}, token.KEYWORD},
	{[]string{"OUTER", "JOIN"}, token.KEYWORD},
	{[]string{"CROSS", "JOIN"}, token.KEYWORD},
	{[]string{"NATURAL", "JOIN"}, token.KEYWORD},
	{[]string{"STRAIGHT", "JOIN"}, token.KEYWORD},
	{[]string{"END", "IF"}, token.KEYWORD},
	{[]string{"END", "LOOP"}, token.KEYWORD},
	{[]string{"END", "WHILE"}, token.KEYWORD},
	{[]string{"GROUP", "BY"}, token.KEYWORD},
	{[]string{"ORDER", "BY"}, token.KEYWORD},
	{[]string{"UNION", "ALL"}, token.KEYWORD},
	{[]string{"NOT", "NULL"}, token.KEYWORD},
}

// scanPhrase tries every multi-word keyword at the current position.
func (l *Lexer) scanPhrase() (token.TokenType, int, bool) {
	for _, ph := range phrases {
		end := l.pos
		matched := true
		for i, w := range ph.words {
			if i > 0 {
				next := l.skipAllSpace(end)
				if next == end {
					matched = false
					break
				}
				end = next
			}
			wend := l.scanWord(end)
			if !strings.EqualFold(l.input[end:wend], w) {
				matched = false
				break
			}
			end = wend
		}
		if matched {
			return ph.class, end, true
		}
	}
	return token.ERROR, 0, false
}

// emit creates a token for input[pos:end] and advances past it.
func (l *Lexer) emit(tt token.TokenType, end int) *token.Token {
	if end <= l.pos {
		end = l.pos + 1
	}
	if end > len(l.input) {
		end = len(l.input)
	}
	value := l.input[l.pos:end]
	tok := token.New(tt, value, l.at)
	l.at = l.at.Advance(value)
	l.pos = end
	return tok
}

// peekChar returns the byte n positions ahead without advancing.
func (l *Lexer) peekChar(n int) byte {
	return l.peekAt(l.pos + n)
}

func (l *Lexer) peekAt(i int) byte {
	if i < 0 || i >= len(l.input) {
		return 0
	}
	return l.input[i]
}

// afterWord reports whether the byte before the current position ends a
// word, a quoted name or a closing bracket.
func (l *Lexer) afterWord() bool {
	if l.pos == 0 {
		return false
	}
	prev := l.input[l.pos-1]
	return isWordChar(prev) || prev == ')' || prev == ']' || prev == '"' || prev == '`'
}

func (l *Lexer) commentStartsAt(i int) bool {
	c, n := l.peekAt(i), l.peekAt(i+1)
	return (c == '-' && n == '-') || (c == '/' && n == '*')
}

func (l *Lexer) skipSpaces(i int) int {
	for i < len(l.input) && isSpace(l.input[i]) {
		i++
	}
	return i
}

func (l *Lexer) skipAllSpace(i int) int {
	for i < len(l.input) && (isSpace(l.input[i]) || l.input[i] == '\n' || l.input[i] == '\r') {
		i++
	}
	return i
}

func (l *Lexer) scanWord(i int) int {
	for i < len(l.input) && (isWordChar(l.input[i]) || l.input[i] == '$' || l.input[i] == '#') {
		i++
	}
	return i
}

// scanLineComment returns the end of a line comment, including its newline.
func (l *Lexer) scanLineComment() int {
	i := l.pos
	for i < len(l.input) && l.input[i] != '\n' && l.input[i] != '\r' {
		i++
	}
	if i < len(l.input) {
		if l.input[i] == '\r' && l.peekAt(i+1) == '\n' {
			return i + 2
		}
		return i + 1
	}
	return i
}

// scanBlockComment returns the end of a block comment. An unterminated
// comment runs to the end of input.
func (l *Lexer) scanBlockComment() int {
	if idx := strings.Index(l.input[l.pos+2:], "*/"); idx >= 0 {
		return l.pos + 2 + idx + 2
	}
	return len(l.input)
}

// scanQuoted returns the end of a quoted run. Doubled quotes and backslash
// escapes stay inside; an unterminated run ends at end of input.
func (l *Lexer) scanQuoted(quote byte) int {
	i := l.pos + 1
	for i < len(l.input) {
		c := l.input[i]
		switch {
		case c == '\\' && quote != '`' && i+1 < len(l.input):
			i += 2
		case c == quote && l.peekAt(i+1) == quote:
			i += 2
		case c == quote:
			return i + 1
		default:
			i++
		}
	}
	return i
}

// scanDollarQuoted matches $tag$ ... $tag$.
func (l *Lexer) scanDollarQuoted() (int, bool) {
	i := l.pos + 1
	if i < len(l.input) && (isLetter(l.input[i]) || l.input[i] == '_') {
		i = l.scanWordNoDollar(i)
	}
	if l.peekAt(i) != '$' {
		return 0, false
	}
	delim := l.input[l.pos : i+1]
	if idx := strings.Index(l.input[i+1:], delim); idx >= 0 {
		return i + 1 + idx + len(delim), true
	}
	return 0, false
}

func (l *Lexer) scanWordNoDollar(i int) int {
	for i < len(l.input) && isWordChar(l.input[i]) {
		i++
	}
	return i
}

// scanPyformat matches %s and %(name)s.
func (l *Lexer) scanPyformat() (int, bool) {
	i := l.pos + 1
	if l.peekAt(i) == '(' {
		j := l.scanWordNoDollar(i + 1)
		if j == i+1 || l.peekAt(j) != ')' {
			return 0, false
		}
		i = j + 1
	}
	if l.peekAt(i) == 's' && !isWordChar(l.peekAt(i+1)) {
		return i + 1, true
	}
	return 0, false
}

// scanBracketName matches [name] when it cannot be a subscript: the
// bracket does not follow a word or closing bracket and the content looks
// like an identifier.
func (l *Lexer) scanBracketName() (int, bool) {
	if l.afterWord() {
		return 0, false
	}
	i := l.pos + 1
	if i >= len(l.input) || !(isLetter(l.input[i]) || l.input[i] == '_') {
		return 0, false
	}
	for i < len(l.input) && l.input[i] != ']' {
		c := l.input[i]
		if !isWordChar(c) && c != ' ' {
			return 0, false
		}
		i++
	}
	if i >= len(l.input) {
		return 0, false
	}
	return i + 1, true
}

// scanNumber reads a numeric literal (hex, integer, decimal, or scientific).
func (l *Lexer) scanNumber() (token.TokenType, int) {
	i := l.pos
	if l.input[i] == '0' && (l.peekAt(i+1) == 'x' || l.peekAt(i+1) == 'X') && isHexDigit(l.peekAt(i+2)) {
		i += 2
		for i < len(l.input) && isHexDigit(l.input[i]) {
			i++
		}
		return token.HEX, i
	}

	tt := token.INTEGER
	for i < len(l.input) && isDigit(l.input[i]) {
		i++
	}
	if l.peekAt(i) == '.' && isDigit(l.peekAt(i+1)) {
		tt = token.FLOAT
		i++
		for i < len(l.input) && isDigit(l.input[i]) {
			i++
		}
	}
	if c := l.peekAt(i); c == 'e' || c == 'E' {
		j := i + 1
		if l.peekAt(j) == '-' || l.peekAt(j) == '+' {
			j++
		}
		if isDigit(l.peekAt(j)) {
			tt = token.FLOAT
			i = j
			for i < len(l.input) && isDigit(l.input[i]) {
				i++
			}
		}
	}
	return tt, i
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\f' || ch == '\v'
}

// isLetter treats every byte of a multi-byte UTF-8 sequence as a letter so
// non-ASCII names stay in one token.
func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch >= 0x80
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isHexDigit(ch byte) bool {
	return isDigit(ch) || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

func isWordChar(ch byte) bool {
	return isLetter(ch) || isDigit(ch) || ch == '_'
}

func isOperatorChar(ch byte) bool {
	return strings.IndexByte("+-/@#%^&|", ch) >= 0
}
