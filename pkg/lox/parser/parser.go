/*
 * Copyright (c) 2022-2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package parser

import (
	"fmt"

	"github.com/dburkart/lox/pkg/common/parse"
	"github.com/dburkart/lox/pkg/lox/ast"
	"github.com/dburkart/lox/pkg/lox/scanner"
)

// DefaultMaxArguments is the largest argument list a call may have
const DefaultMaxArguments = 255

type Parser struct {
	Tokens       []scanner.Token
	Reporter     parse.Reporter
	MaxArguments int

	current int
	errs    []*parse.Error
}

// Parse builds an expression tree out of tokens, which should be the output of
// scanner.Scan. The first syntax error aborts the parse.
func Parse(tokens []scanner.Token, r parse.Reporter) (ast.Expr, error) {
	p := Parser{Tokens: tokens, Reporter: r}
	return p.Parse()
}

func (p *Parser) Parse() (expr ast.Expr, err error) {
	defer func() {
		if e := recover(); e != nil {
			if _, ok := e.(*parse.Error); !ok {
				panic(e)
			}
			expr = nil
			err = parse.Combine(p.errs)
		}
	}()

	if p.MaxArguments <= 0 {
		p.MaxArguments = DefaultMaxArguments
	}

	// Make sure we always have an end-of-input token to stop on
	if len(p.Tokens) == 0 || p.Tokens[len(p.Tokens)-1].Type != scanner.TOK_EOF {
		line := 1
		if len(p.Tokens) > 0 {
			line = p.Tokens[len(p.Tokens)-1].Line
		}
		tokens := make([]scanner.Token, len(p.Tokens), len(p.Tokens)+1)
		copy(tokens, p.Tokens)
		p.Tokens = append(tokens, scanner.Token{Type: scanner.TOK_EOF, Line: line})
	}

	expr = p.expression()

	// If we didn't parse all the input, return an error
	if !p.isAtEnd() {
		panic(p.syntaxError(parse.TrailingTokens, p.peek(), "Expect end of expression."))
	}

	return expr, parse.Combine(p.errs)
}

// expression returns the result of assignment
//
// Grammar:
//
//	expression      = assignment
func (p *Parser) expression() ast.Expr {
	return p.assignment()
}

// assignment returns an Assign or Set node, or the result of logicOr
//
// Grammar:
//
//	assignment      = ( call "." IDENTIFIER / IDENTIFIER ) "=" assignment / logic_or
func (p *Parser) assignment() ast.Expr {
	expr := p.logicOr()

	if p.match(scanner.TOK_EQ) {
		equals := p.previous()
		value := p.assignment()

		switch target := expr.(type) {
		case *ast.Variable:
			return &ast.Assign{Name: target.Name, Value: value}
		case *ast.Get:
			return &ast.Set{Object: target.Object, Name: target.Name, Value: value}
		}

		panic(p.syntaxError(parse.InvalidAssignmentTarget, equals, "Invalid assignment target."))
	}

	return expr
}

// logicOr returns a Logical node, or the result of logicAnd
//
// Grammar:
//
//	logic_or        = logic_and *( "or" logic_and )
func (p *Parser) logicOr() ast.Expr {
	expr := p.logicAnd()

	for p.match(scanner.TOK_OR) {
		op := p.previous()
		right := p.logicAnd()
		expr = &ast.Logical{Left: expr, Operator: op, Right: right}
	}

	return expr
}

// logicAnd returns a Logical node, or the result of equality
//
// Grammar:
//
//	logic_and       = equality *( "and" equality )
func (p *Parser) logicAnd() ast.Expr {
	expr := p.equality()

	for p.match(scanner.TOK_AND) {
		op := p.previous()
		right := p.equality()
		expr = &ast.Logical{Left: expr, Operator: op, Right: right}
	}

	return expr
}

// equality returns a Binary node, or the result of comparison
//
// Grammar:
//
//	equality        = comparison *( ( "!=" / "==" ) comparison )
func (p *Parser) equality() ast.Expr {
	expr := p.comparison()

	for p.match(scanner.TOK_BANG_EQ, scanner.TOK_EQ_EQ) {
		op := p.previous()
		right := p.comparison()
		expr = &ast.Binary{Left: expr, Operator: op, Right: right}
	}

	return expr
}

// comparison returns a Binary node, or the result of term
//
// Grammar:
//
//	comparison      = term *( ( ">" / ">=" / "<" / "<=" ) term )
func (p *Parser) comparison() ast.Expr {
	expr := p.term()

	for p.match(scanner.TOK_GREATER, scanner.TOK_GREATER_EQ, scanner.TOK_LESS, scanner.TOK_LESS_EQ) {
		op := p.previous()
		right := p.term()
		expr = &ast.Binary{Left: expr, Operator: op, Right: right}
	}

	return expr
}

// term returns a Binary node, or the result of factor
//
// Grammar:
//
//	term            = factor *( ( "-" / "+" ) factor )
func (p *Parser) term() ast.Expr {
	expr := p.factor()

	for p.match(scanner.TOK_MINUS, scanner.TOK_PLUS) {
		op := p.previous()
		right := p.factor()
		expr = &ast.Binary{Left: expr, Operator: op, Right: right}
	}

	return expr
}

// factor returns a Binary node, or the result of unary
//
// Grammar:
//
//	factor          = unary *( ( "/" / "*" ) unary )
func (p *Parser) factor() ast.Expr {
	expr := p.unary()

	for p.match(scanner.TOK_SLASH, scanner.TOK_STAR) {
		op := p.previous()
		right := p.unary()
		expr = &ast.Binary{Left: expr, Operator: op, Right: right}
	}

	return expr
}

// unary returns a Unary node, or the result of call
//
// Grammar:
//
//	unary           = ( "!" / "-" ) unary / call
func (p *Parser) unary() ast.Expr {
	if p.match(scanner.TOK_BANG, scanner.TOK_MINUS) {
		op := p.previous()
		right := p.unary()
		return &ast.Unary{Operator: op, Right: right}
	}

	return p.call()
}

// call returns nested Call and Get nodes, or the result of primary
//
// Grammar:
//
//	call            = primary *( "(" [ arguments ] ")" / "." IDENTIFIER )
func (p *Parser) call() ast.Expr {
	expr := p.primary()

	for {
		if p.match(scanner.TOK_PAREN_L) {
			expr = p.finishCall(expr)
		} else if p.match(scanner.TOK_DOT) {
			name := p.consume(scanner.TOK_IDENTIFIER, "Expect property name after '.'.")
			expr = &ast.Get{Object: expr, Name: name}
		} else {
			break
		}
	}

	return expr
}

// finishCall returns a Call node once the opening parenthesis is consumed
//
// Grammar:
//
//	arguments       = expression *( "," expression )
func (p *Parser) finishCall(callee ast.Expr) ast.Expr {
	open := p.previous()
	var arguments []ast.Expr

	if !p.check(scanner.TOK_PAREN_R) {
		for {
			if len(arguments) >= p.MaxArguments {
				// Too many arguments is worth reporting, but the parser is
				// not confused, so carry on
				p.syntaxError(parse.TooManyArguments, p.peek(),
					fmt.Sprintf("Can't have more than %d arguments.", p.MaxArguments))
			}
			arguments = append(arguments, p.expression())

			if !p.match(scanner.TOK_COMMA) {
				break
			}
		}
	}

	paren := p.consumeClosing(open, "Expect ')' after arguments.")

	return &ast.Call{Callee: callee, Paren: paren, Arguments: arguments}
}

// primary returns a leaf node, or a Grouping
//
// Grammar:
//
//	primary         = "true" / "false" / "nil" / "this" / NUMBER / STRING / IDENTIFIER /
//	                "(" expression ")" / "super" "." IDENTIFIER
func (p *Parser) primary() ast.Expr {
	switch {
	case p.match(scanner.TOK_FALSE):
		return &ast.Literal{Value: scanner.BooleanLiteral(false)}
	case p.match(scanner.TOK_TRUE):
		return &ast.Literal{Value: scanner.BooleanLiteral(true)}
	case p.match(scanner.TOK_NIL):
		return &ast.Literal{}
	case p.match(scanner.TOK_NUMBER, scanner.TOK_STRING):
		return &ast.Literal{Value: p.previous().Literal}
	case p.match(scanner.TOK_SUPER):
		keyword := p.previous()
		p.consume(scanner.TOK_DOT, "Expect '.' after 'super'.")
		method := p.consume(scanner.TOK_IDENTIFIER, "Expect superclass method name.")
		return &ast.Super{Keyword: keyword, Method: method}
	case p.match(scanner.TOK_THIS):
		return &ast.This{Keyword: p.previous()}
	case p.match(scanner.TOK_IDENTIFIER):
		return &ast.Variable{Name: p.previous()}
	case p.match(scanner.TOK_PAREN_L):
		open := p.previous()
		expr := p.expression()
		p.consumeClosing(open, "Expect ')' after expression.")
		return &ast.Grouping{Expression: expr}
	}

	panic(p.syntaxError(parse.MissingExpectedToken, p.peek(), "Expect expression."))
}

// match consumes the next token if it is any of types
func (p *Parser) match(types ...scanner.TokenType) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) check(t scanner.TokenType) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Type == t
}

func (p *Parser) advance() scanner.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == scanner.TOK_EOF
}

func (p *Parser) peek() scanner.Token {
	return p.Tokens[p.current]
}

func (p *Parser) previous() scanner.Token {
	return p.Tokens[p.current-1]
}

// consume returns the next token, which must be of type t
func (p *Parser) consume(t scanner.TokenType, message string) scanner.Token {
	if p.check(t) {
		return p.advance()
	}
	panic(p.syntaxError(parse.MissingExpectedToken, p.peek(), message))
}

// consumeClosing returns the ')' matching open. A missing ')' is reported on
// the line of the unmatched '('.
func (p *Parser) consumeClosing(open scanner.Token, message string) scanner.Token {
	if p.check(scanner.TOK_PAREN_R) {
		return p.advance()
	}

	e := p.newError(parse.MissingExpectedToken, p.peek(), message)
	e.Line = open.Line
	p.report(e)
	panic(e)
}

// syntaxError records and reports an error found at tok, and returns it so
// fatal errors can be raised with panic.
func (p *Parser) syntaxError(kind parse.ErrorKind, tok scanner.Token, message string) *parse.Error {
	e := p.newError(kind, tok, message)
	p.report(e)
	return e
}

func (p *Parser) newError(kind parse.ErrorKind, tok scanner.Token, message string) *parse.Error {
	where := fmt.Sprintf(" at '%s'", tok.Lexeme)
	if tok.Type == scanner.TOK_EOF {
		where = " at end"
	}

	e := parse.NewError(kind, tok.Location, where, message)
	e.Line = tok.Line
	return e
}

func (p *Parser) report(e *parse.Error) {
	p.errs = append(p.errs, e)
	parse.Report(p.Reporter, e)
}
