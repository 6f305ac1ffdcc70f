/*
File    : mython-interpreter/lexer/token.go
*/
package lexer

import "fmt"

// TokenType represents the category of a lexical token in Mython.
// It is defined as a string to allow easy comparison and debugging.
type TokenType string

const (
	// Special types
	EOF_TYPE     TokenType = "EOF"
	INVALID_TYPE TokenType = "INVALID"

	// Structural markers synthesized from indentation
	NEWLINE_TYPE TokenType = "NEWLINE"
	INDENT_TYPE  TokenType = "INDENT"
	DEDENT_TYPE  TokenType = "DEDENT"

	// Literals
	NUMBER_LIT TokenType = "Number"
	STRING_LIT TokenType = "String"
	ID_TYPE    TokenType = "Id"

	// Single-character operators, carried verbatim as their own literal
	CHAR_TYPE TokenType = "Char"

	// Compound comparison operators
	EQ_OP    TokenType = "=="
	NE_OP    TokenType = "!="
	LE_OP    TokenType = "<="
	GE_OP    TokenType = ">="

	// Keywords
	CLASS_KEY  TokenType = "class"
	RETURN_KEY TokenType = "return"
	IF_KEY     TokenType = "if"
	ELSE_KEY   TokenType = "else"
	DEF_KEY    TokenType = "def"
	PRINT_KEY  TokenType = "print"
	AND_KEY    TokenType = "and"
	OR_KEY     TokenType = "or"
	NOT_KEY    TokenType = "not"
	NONE_KEY   TokenType = "None"
	TRUE_KEY   TokenType = "True"
	FALSE_KEY  TokenType = "False"
)

// KEYWORDS_MAP maps reserved words to their token types. Used by
// lookupIdent to distinguish keywords from user-defined identifiers.
var KEYWORDS_MAP = map[string]TokenType{
	"class":  CLASS_KEY,
	"return": RETURN_KEY,
	"if":     IF_KEY,
	"else":   ELSE_KEY,
	"def":    DEF_KEY,
	"print":  PRINT_KEY,
	"and":    AND_KEY,
	"or":     OR_KEY,
	"not":    NOT_KEY,
	"None":   NONE_KEY,
	"True":   TRUE_KEY,
	"False":  FALSE_KEY,
}

// Token is a single lexical token: its type, literal text, and its
// source position, carried for error reporting.
type Token struct {
	Type    TokenType
	Literal string
	Line    int
	Column  int
}

// NewToken creates a Token without position metadata. Used by tests
// that only care about the token stream shape.
func NewToken(tokenType TokenType, literal string) Token {
	return Token{Type: tokenType, Literal: literal}
}

// NewTokenWithMetadata creates a Token with full position information.
// The lexer uses this constructor exclusively during tokenization so
// that error messages can name a line and column.
func NewTokenWithMetadata(tokenType TokenType, literal string, line int, column int) Token {
	return Token{Type: tokenType, Literal: literal, Line: line, Column: column}
}

// Print writes a human-readable "literal:type" representation to
// standard output. Debugging aid only.
func (tok *Token) Print() {
	fmt.Printf("%s:%v\n", tok.Literal, tok.Type)
}

// lookupIdent classifies an identifier-shaped lexeme as a keyword or a
// plain identifier.
func lookupIdent(ident string) TokenType {
	if tok, ok := KEYWORDS_MAP[ident]; ok {
		return tok
	}
	return ID_TYPE
}
