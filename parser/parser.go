/*
File: mython-interpreter/parser/parser.go
*/

// Package parser turns a lexer.Token stream into an ast.Node tree.
// Mython's own spec treats the parser as an external collaborator
// specified only by its contract — parse_program(tokens) ->
// handle<Statement> — so this package is the concrete implementation
// this repository needs to actually run a program, built in the
// teacher's recursive-descent, per-concern-file style.
package parser

import (
	"fmt"

	"github.com/rackrossum/mython-interpreter/ast"
	"github.com/rackrossum/mython-interpreter/lexer"
)

// Parser holds the token stream and the lookahead the grammar needs.
type Parser struct {
	Lex *lexer.Lexer

	CurToken  lexer.Token
	PeekToken lexer.Token

	errors []error
}

// NewParser creates a Parser over src, priming CurToken/PeekToken.
func NewParser(src string) *Parser {
	p := &Parser{Lex: lexer.NewLexer(src)}
	p.advance()
	p.advance()
	return p
}

// HasErrors reports whether any parse error was recorded.
func (p *Parser) HasErrors() bool { return len(p.errors) > 0 }

// GetErrors returns every parse error recorded so far, in order.
func (p *Parser) GetErrors() []error { return p.errors }

func (p *Parser) advance() {
	p.CurToken = p.PeekToken
	p.PeekToken = p.Lex.NextToken()
}

func (p *Parser) curIs(t lexer.TokenType) bool  { return p.CurToken.Type == t }
func (p *Parser) peekIs(t lexer.TokenType) bool { return p.PeekToken.Type == t }

func (p *Parser) curIsChar(c string) bool {
	return p.CurToken.Type == lexer.CHAR_TYPE && p.CurToken.Literal == c
}

// expect advances past CurToken if it matches t, recording a parse
// error and leaving position unchanged otherwise.
func (p *Parser) expect(t lexer.TokenType) bool {
	if p.curIs(t) {
		p.advance()
		return true
	}
	p.errorf("expected %v, got %v (%q)", t, p.CurToken.Type, p.CurToken.Literal)
	return false
}

// expectChar is expect specialized for single-character operator
// tokens, where the literal (not just the type) must match.
func (p *Parser) expectChar(c string) bool {
	if p.curIsChar(c) {
		p.advance()
		return true
	}
	p.errorf("expected %q, got %v (%q)", c, p.CurToken.Type, p.CurToken.Literal)
	return false
}

func (p *Parser) errorf(format string, a ...interface{}) {
	msg := fmt.Sprintf(format, a...)
	p.errors = append(p.errors, fmt.Errorf("[%d:%d] parse error: %s", p.CurToken.Line, p.CurToken.Column, msg))
}

// Parse parses the entire token stream into a root Compound node,
// skipping blank NEWLINE-only lines at the top level.
func (p *Parser) Parse() ast.Node {
	var stmts []ast.Node
	for !p.curIs(lexer.EOF_TYPE) {
		if p.curIs(lexer.NEWLINE_TYPE) {
			p.advance()
			continue
		}
		stmt := p.parseStatement()
		if stmt != nil {
			stmts = append(stmts, stmt)
		}
		p.skipNewlines()
	}
	return &ast.Compound{Stmts: stmts}
}

func (p *Parser) skipNewlines() {
	for p.curIs(lexer.NEWLINE_TYPE) {
		p.advance()
	}
}

// parseBlock parses an INDENT-delimited sequence of statements,
// assuming CurToken is already INDENT, and consumes the matching
// DEDENT.
func (p *Parser) parseBlock() ast.Node {
	if !p.expect(lexer.INDENT_TYPE) {
		return &ast.Compound{}
	}
	var stmts []ast.Node
	for !p.curIs(lexer.DEDENT_TYPE) && !p.curIs(lexer.EOF_TYPE) {
		if p.curIs(lexer.NEWLINE_TYPE) {
			p.advance()
			continue
		}
		stmt := p.parseStatement()
		if stmt != nil {
			stmts = append(stmts, stmt)
		}
		p.skipNewlines()
	}
	p.expect(lexer.DEDENT_TYPE)
	return &ast.Compound{Stmts: stmts}
}
