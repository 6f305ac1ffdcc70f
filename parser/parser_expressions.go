/*
File: mython-interpreter/parser/parser_expressions.go
*/
package parser

import (
	"strconv"

	"github.com/rackrossum/mython-interpreter/ast"
	"github.com/rackrossum/mython-interpreter/lexer"
)

// parseExpression is the grammar's entry point, lowest precedence
// first: or, then and, then not, then comparison, then +/-, then
// */, then unary, then primary.
func (p *Parser) parseExpression() ast.Node {
	return p.parseOr()
}

func (p *Parser) parseOr() ast.Node {
	left := p.parseAnd()
	for p.curIs(lexer.OR_KEY) {
		line, col := p.CurToken.Line, p.CurToken.Column
		p.advance()
		right := p.parseAnd()
		left = &ast.BinaryOp{Op: ast.OpOr, Lhs: left, Rhs: right, Line: line, Column: col}
	}
	return left
}

func (p *Parser) parseAnd() ast.Node {
	left := p.parseNot()
	for p.curIs(lexer.AND_KEY) {
		line, col := p.CurToken.Line, p.CurToken.Column
		p.advance()
		right := p.parseNot()
		left = &ast.BinaryOp{Op: ast.OpAnd, Lhs: left, Rhs: right, Line: line, Column: col}
	}
	return left
}

func (p *Parser) parseNot() ast.Node {
	if p.curIs(lexer.NOT_KEY) {
		line, col := p.CurToken.Line, p.CurToken.Column
		p.advance()
		operand := p.parseNot()
		return &ast.UnaryOp{Op: ast.UnaryNot, Arg: operand, Line: line, Column: col}
	}
	return p.parseComparison()
}

func (p *Parser) parseComparison() ast.Node {
	left := p.parseAdditive()
	cmp, ok := p.comparisonKind()
	if !ok {
		return left
	}
	line, col := p.CurToken.Line, p.CurToken.Column
	p.advance()
	right := p.parseAdditive()
	return &ast.Comparison{Cmp: cmp, Lhs: left, Rhs: right, Line: line, Column: col}
}

func (p *Parser) comparisonKind() (ast.CompareKind, bool) {
	switch p.CurToken.Type {
	case lexer.EQ_OP:
		return ast.CmpEqual, true
	case lexer.NE_OP:
		return ast.CmpNotEqual, true
	case lexer.LE_OP:
		return ast.CmpLessOrEqual, true
	case lexer.GE_OP:
		return ast.CmpGreaterOrEqual, true
	case lexer.CHAR_TYPE:
		switch p.CurToken.Literal {
		case "<":
			return ast.CmpLess, true
		case ">":
			return ast.CmpGreater, true
		}
	}
	return 0, false
}

func (p *Parser) parseAdditive() ast.Node {
	left := p.parseMultiplicative()
	for p.curIsChar("+") || p.curIsChar("-") {
		op := ast.OpAdd
		if p.curIsChar("-") {
			op = ast.OpSub
		}
		line, col := p.CurToken.Line, p.CurToken.Column
		p.advance()
		right := p.parseMultiplicative()
		left = &ast.BinaryOp{Op: op, Lhs: left, Rhs: right, Line: line, Column: col}
	}
	return left
}

func (p *Parser) parseMultiplicative() ast.Node {
	left := p.parseUnary()
	for p.curIsChar("*") || p.curIsChar("/") {
		op := ast.OpMult
		if p.curIsChar("/") {
			op = ast.OpDiv
		}
		line, col := p.CurToken.Line, p.CurToken.Column
		p.advance()
		right := p.parseUnary()
		left = &ast.BinaryOp{Op: op, Lhs: left, Rhs: right, Line: line, Column: col}
	}
	return left
}

// parseUnary handles a leading unary minus. The lexer never produces
// a negative number literal (spec §4.1): `-8` is Char('-') followed by
// Number(8), and binding the sign is the parser's job, per spec §4.1.
func (p *Parser) parseUnary() ast.Node {
	if p.curIsChar("-") {
		line, col := p.CurToken.Line, p.CurToken.Column
		p.advance()
		operand := p.parseUnary()
		if num, ok := operand.(*ast.NumericConst); ok {
			return &ast.NumericConst{Value: -num.Value}
		}
		zero := &ast.NumericConst{Value: 0}
		return &ast.BinaryOp{Op: ast.OpSub, Lhs: zero, Rhs: operand, Line: line, Column: col}
	}
	return p.parsePrimary()
}

// parsePrimary parses a literal, a parenthesized expression, the
// `str(...)` stringify form, or an identifier chain (variable read,
// method call, or instance construction).
func (p *Parser) parsePrimary() ast.Node {
	switch p.CurToken.Type {
	case lexer.NUMBER_LIT:
		val, err := strconv.ParseInt(p.CurToken.Literal, 10, 64)
		if err != nil {
			p.errorf("malformed number literal %q", p.CurToken.Literal)
		}
		p.advance()
		return &ast.NumericConst{Value: val}
	case lexer.STRING_LIT:
		val := p.CurToken.Literal
		p.advance()
		return &ast.StringConst{Value: val}
	case lexer.TRUE_KEY:
		p.advance()
		return &ast.BoolConst{Value: true}
	case lexer.FALSE_KEY:
		p.advance()
		return &ast.BoolConst{Value: false}
	case lexer.NONE_KEY:
		p.advance()
		return &ast.NoneConst{}
	case lexer.CHAR_TYPE:
		if p.CurToken.Literal == "(" {
			p.advance()
			inner := p.parseExpression()
			p.expectChar(")")
			return inner
		}
		p.errorf("unexpected token %q", p.CurToken.Literal)
		p.advance()
		return &ast.NoneConst{}
	case lexer.ID_TYPE:
		if p.CurToken.Literal == "str" && p.peekIs(lexer.CHAR_TYPE) && p.PeekToken.Literal == "(" {
			line, col := p.CurToken.Line, p.CurToken.Column
			p.advance() // 'str'
			p.advance() // '('
			arg := p.parseExpression()
			p.expectChar(")")
			return &ast.UnaryOp{Op: ast.UnaryStringify, Arg: arg, Line: line, Column: col}
		}
		return p.parseIdentifierChain()
	default:
		p.errorf("unexpected token %v (%q)", p.CurToken.Type, p.CurToken.Literal)
		p.advance()
		return &ast.NoneConst{}
	}
}

// parseIdentifierChain parses a dotted identifier path and, if the
// path is immediately followed by `(...)`, reinterprets it as either a
// class instantiation (a single bare name: `Counter(...)`) or a method
// call (a dotted path: `obj.method(...)`).
func (p *Parser) parseIdentifierChain() ast.Node {
	line, col := p.CurToken.Line, p.CurToken.Column
	ids := []string{p.CurToken.Literal}
	p.advance()
	for p.curIsChar(".") {
		p.advance()
		if !p.curIs(lexer.ID_TYPE) {
			p.errorf("expected identifier after '.', got %q", p.CurToken.Literal)
			break
		}
		ids = append(ids, p.CurToken.Literal)
		p.advance()
	}

	if p.curIsChar("(") {
		args := p.parseArgList()
		if len(ids) == 1 {
			return &ast.NewInstance{ClassName: ids[0], Args: args, Line: line, Column: col}
		}
		object := ast.Node(&ast.VariableValue{Ids: ids[:len(ids)-1], Line: line, Column: col})
		return &ast.MethodCall{Object: object, Method: ids[len(ids)-1], Args: args, Line: line, Column: col}
	}
	return &ast.VariableValue{Ids: ids, Line: line, Column: col}
}

// parseArgList parses a parenthesized, comma-separated, possibly-empty
// argument list. Assumes CurToken is "(".
func (p *Parser) parseArgList() []ast.Node {
	p.expectChar("(")
	var args []ast.Node
	if p.curIsChar(")") {
		p.advance()
		return args
	}
	args = append(args, p.parseExpression())
	for p.curIsChar(",") {
		p.advance()
		args = append(args, p.parseExpression())
	}
	p.expectChar(")")
	return args
}
