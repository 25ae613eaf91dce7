package token

import (
	"sort"
	"strings"
	"sync"
)

// dynamicKeywords holds words registered at runtime, keyed by upper-case word.
// Registration usually happens once at startup (from configuration), but
// lookups may run concurrently with it, so access is guarded.
var (
	dynamicMu       sync.RWMutex
	dynamicKeywords = make(map[string]TokenType)
)

// RegisterKeyword classifies word as class for all subsequent lexing.
// Registered words take precedence over the builtin table. Registering the
// same word twice keeps the latest class.
//
// class must be in the keyword or name family; anything else is ignored and
// reported by the false return value.
func RegisterKeyword(word string, class TokenType) bool {
	if !IsKeyword(class) && !IsName(class) {
		return false
	}
	w := strings.ToUpper(strings.TrimSpace(word))
	if w == "" {
		return false
	}

	dynamicMu.Lock()
	dynamicKeywords[w] = class
	dynamicMu.Unlock()
	return true
}

// LookupKeyword returns the class of word: registered words first, then the
// builtin table, otherwise NAME.
func LookupKeyword(word string) TokenType {
	w := strings.ToUpper(word)

	dynamicMu.RLock()
	tok, ok := dynamicKeywords[w]
	dynamicMu.RUnlock()
	if ok {
		return tok
	}

	if tok, ok := keywords[w]; ok {
		return tok
	}
	return NAME
}

// IsRegistered returns true if word was added via RegisterKeyword.
func IsRegistered(word string) bool {
	dynamicMu.RLock()
	defer dynamicMu.RUnlock()
	_, ok := dynamicKeywords[strings.ToUpper(word)]
	return ok
}

// RegisteredKeywords returns a copy of all registered words.
func RegisteredKeywords() map[string]TokenType {
	dynamicMu.RLock()
	defer dynamicMu.RUnlock()

	result := make(map[string]TokenType, len(dynamicKeywords))
	for k, v := range dynamicKeywords {
		result[k] = v
	}
	return result
}

// ParseClass maps a configuration name ("dml", "keyword", "builtin", ...)
// to a token type.
func ParseClass(name string) (TokenType, bool) {
	switch strings.ToLower(name) {
	case "keyword":
		return KEYWORD, true
	case "dml":
		return KEYWORD_DML, true
	case "ddl":
		return KEYWORD_DDL, true
	case "cte":
		return KEYWORD_CTE, true
	case "order":
		return KEYWORD_ORDER, true
	case "name":
		return NAME, true
	case "builtin":
		return NAME_BUILTIN, true
	}
	return ERROR, false
}

// ClassNames returns the names accepted by ParseClass, sorted.
func ClassNames() []string {
	names := []string{"keyword", "dml", "ddl", "cte", "order", "name", "builtin"}
	sort.Strings(names)
	return names
}
