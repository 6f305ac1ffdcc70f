/*
File: mython-interpreter/parser/parser_structs.go
*/
package parser

import (
	"github.com/rackrossum/mython-interpreter/ast"
	"github.com/rackrossum/mython-interpreter/lexer"
)

// parseClassDefinition parses `class Name:` or `class Name(Parent):`
// followed by an indented block of `def` method definitions. The
// parenthesized-parent surface supplements spec.md's Class data model
// with concrete syntax, folded in from the original C++ grammar's
// `class Name : Parent` onto this indentation-based surface.
func (p *Parser) parseClassDefinition() ast.Node {
	p.advance() // consume 'class'
	name := p.CurToken.Literal
	p.expect(lexer.ID_TYPE)

	var parentName string
	if p.curIsChar("(") {
		p.advance()
		parentName = p.CurToken.Literal
		p.expect(lexer.ID_TYPE)
		p.expectChar(")")
	}
	p.expectChar(":")
	p.skipNewlines()

	var methods []*ast.MethodDef
	if p.expect(lexer.INDENT_TYPE) {
		for !p.curIs(lexer.DEDENT_TYPE) && !p.curIs(lexer.EOF_TYPE) {
			if p.curIs(lexer.NEWLINE_TYPE) {
				p.advance()
				continue
			}
			if !p.curIs(lexer.DEF_KEY) {
				p.errorf("expected method definition inside class body, got %v", p.CurToken.Type)
				p.advance()
				continue
			}
			methods = append(methods, p.parseMethodDef())
			p.skipNewlines()
		}
		p.expect(lexer.DEDENT_TYPE)
	}

	return &ast.ClassDefinition{Name: name, ParentName: parentName, Methods: methods}
}

// parseMethodDef parses `def name(params):` followed by an indented
// body. A leading literal `self` parameter — written Python-style in
// every method def per spec.md's own samples — is dropped from Params:
// call sites never pass it (spec.md:263's `do_add(counter)` has no
// self argument), and callMethod injects the receiving instance under
// that name directly into the call frame, so self must not also occupy
// a Params slot or every call's arity would be off by one.
func (p *Parser) parseMethodDef() *ast.MethodDef {
	p.advance() // consume 'def'
	name := p.CurToken.Literal
	p.expect(lexer.ID_TYPE)
	p.expectChar("(")

	var params []string
	if !p.curIsChar(")") {
		params = append(params, p.CurToken.Literal)
		p.expect(lexer.ID_TYPE)
		for p.curIsChar(",") {
			p.advance()
			params = append(params, p.CurToken.Literal)
			p.expect(lexer.ID_TYPE)
		}
	}
	p.expectChar(")")
	p.expectChar(":")
	p.skipNewlines()
	body := p.parseBlock()

	if len(params) > 0 && params[0] == "self" {
		params = params[1:]
	}

	return &ast.MethodDef{Name: name, Params: params, Body: body}
}
