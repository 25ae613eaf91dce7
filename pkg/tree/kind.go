package tree

import "fmt"

// Kind is the closed set of group types.
type Kind int

// Group kinds.
const (
	Statement Kind = iota
	TokenList
	Parenthesis
	SquareBrackets
	Case
	If
	For
	Begin
	Where
	Identifier
	IdentifierList
	Function
	Operation
	Comparison
	Assignment
	Comment
)

var kindNames = map[Kind]string{
	Statement:      "Statement",
	TokenList:      "TokenList",
	Parenthesis:    "Parenthesis",
	SquareBrackets: "SquareBrackets",
	Case:           "Case",
	If:             "If",
	For:            "For",
	Begin:          "Begin",
	Where:          "Where",
	Identifier:     "Identifier",
	IdentifierList: "IdentifierList",
	Function:       "Function",
	Operation:      "Operation",
	Comparison:     "Comparison",
	Assignment:     "Assignment",
	Comment:        "Comment",
}

// String returns the kind name.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// IsPaired reports whether groups of this kind start and end with a
// matching open and close marker.
func (k Kind) IsPaired() bool {
	switch k {
	case Parenthesis, SquareBrackets, Case, If, For, Begin:
		return true
	}
	return false
}
