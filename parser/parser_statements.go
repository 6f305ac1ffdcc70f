/*
File: mython-interpreter/parser/parser_statements.go
*/
package parser

import (
	"github.com/rackrossum/mython-interpreter/ast"
	"github.com/rackrossum/mython-interpreter/lexer"
)

// parseStatement dispatches on the current token to the right
// statement-level production. Block-bodied statements (class, if) are
// self-terminating — their last consumed token is the block's DEDENT
// — but the simple, single-line statements must be followed by a
// NEWLINE/DEDENT/EOF, or two statements run together on one physical
// line (`print 1 print 2`) would otherwise parse silently instead of
// being rejected.
func (p *Parser) parseStatement() ast.Node {
	switch p.CurToken.Type {
	case lexer.CLASS_KEY:
		return p.parseClassDefinition()
	case lexer.IF_KEY:
		return p.parseIfElse()
	case lexer.RETURN_KEY:
		stmt := p.parseReturn()
		p.expectStatementEnd()
		return stmt
	case lexer.PRINT_KEY:
		stmt := p.parsePrint()
		p.expectStatementEnd()
		return stmt
	default:
		stmt := p.parseExpressionStatement()
		p.expectStatementEnd()
		return stmt
	}
}

// expectStatementEnd requires the current token to close out a simple
// statement. On mismatch it records a parse error and advances one
// token so the caller's loop always makes progress.
func (p *Parser) expectStatementEnd() {
	if p.curIs(lexer.NEWLINE_TYPE) || p.curIs(lexer.EOF_TYPE) || p.curIs(lexer.DEDENT_TYPE) {
		return
	}
	p.errorf("expected end of statement, got %v (%q)", p.CurToken.Type, p.CurToken.Literal)
	p.advance()
}

// parseReturn parses `return <expr>`.
func (p *Parser) parseReturn() ast.Node {
	p.advance() // consume 'return'
	stmt := p.parseExpression()
	return &ast.Return{Stmt: stmt}
}

// parsePrint parses `print` followed by a possibly-empty,
// comma-separated argument list, per spec §4.4.
func (p *Parser) parsePrint() ast.Node {
	p.advance() // consume 'print'
	var args []ast.Node
	if p.curIs(lexer.NEWLINE_TYPE) || p.curIs(lexer.EOF_TYPE) || p.curIs(lexer.DEDENT_TYPE) {
		return &ast.Print{}
	}
	args = append(args, p.parseExpression())
	for p.curIsChar(",") {
		p.advance()
		args = append(args, p.parseExpression())
	}
	return &ast.Print{Args: args}
}

// parseIfElse parses `if <expr>:` followed by an indented block, with
// an optional `else:` clause (which may itself start a nested `if`,
// i.e. `else:` followed by a block whose sole statement is another
// IfElse — Mython has no dedicated `elif`).
func (p *Parser) parseIfElse() ast.Node {
	p.advance() // consume 'if'
	cond := p.parseExpression()
	p.expectChar(":")
	p.skipNewlines()
	thenBranch := p.parseBlock()

	var elseBranch ast.Node
	p.skipNewlines()
	if p.curIs(lexer.ELSE_KEY) {
		p.advance()
		p.expectChar(":")
		p.skipNewlines()
		elseBranch = p.parseBlock()
	}
	return &ast.IfElse{Condition: cond, Then: thenBranch, Else: elseBranch}
}

// parseExpressionStatement parses a bare expression. If, once parsed,
// it turns out to name a plain variable or dotted field path and is
// immediately followed by `=`, it is reinterpreted as an Assignment or
// FieldAssignment instead — this lets the grammar share one
// identifier-chain parser (see parsePrimary) between reads and
// assignment targets rather than duplicating the lookahead.
func (p *Parser) parseExpressionStatement() ast.Node {
	expr := p.parseExpression()
	if !p.curIsChar("=") {
		return expr
	}
	target, ok := expr.(*ast.VariableValue)
	if !ok {
		p.errorf("invalid assignment target")
		return expr
	}
	p.advance() // consume '='
	rhs := p.parseExpression()
	if len(target.Ids) == 1 {
		return &ast.Assignment{Name: target.Ids[0], Rhs: rhs}
	}
	fieldTarget := &ast.VariableValue{Ids: target.Ids[:len(target.Ids)-1], Line: target.Line, Column: target.Column}
	return &ast.FieldAssignment{
		Target: fieldTarget,
		Field:  target.Ids[len(target.Ids)-1],
		Rhs:    rhs,
		Line:   target.Line,
		Column: target.Column,
	}
}
