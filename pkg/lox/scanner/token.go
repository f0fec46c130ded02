/*
 * Copyright (c) 2022-2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package scanner

import (
	"fmt"
	"strconv"

	"github.com/dburkart/lox/pkg/common/parse"
)

type TokenType int

const (
	// Single-character tokens
	TOK_PAREN_L TokenType = iota
	TOK_PAREN_R
	TOK_BRACE_L
	TOK_BRACE_R
	TOK_COMMA
	TOK_DOT
	TOK_MINUS
	TOK_PLUS
	TOK_SEMICOLON
	TOK_SLASH
	TOK_STAR

	// One or two character tokens
	TOK_BANG
	TOK_BANG_EQ
	TOK_EQ
	TOK_EQ_EQ
	TOK_GREATER
	TOK_GREATER_EQ
	TOK_LESS
	TOK_LESS_EQ

	// Literals
	TOK_IDENTIFIER
	TOK_STRING
	TOK_NUMBER

	// Keywords
	TOK_AND
	TOK_CLASS
	TOK_ELSE
	TOK_FALSE
	TOK_FUN
	TOK_FOR
	TOK_IF
	TOK_NIL
	TOK_OR
	TOK_PRINT
	TOK_RETURN
	TOK_SUPER
	TOK_THIS
	TOK_TRUE
	TOK_VAR
	TOK_WHILE

	TOK_EOF
)

var tokenNames = [...]string{
	TOK_PAREN_L:    "TOK_PAREN_L",
	TOK_PAREN_R:    "TOK_PAREN_R",
	TOK_BRACE_L:    "TOK_BRACE_L",
	TOK_BRACE_R:    "TOK_BRACE_R",
	TOK_COMMA:      "TOK_COMMA",
	TOK_DOT:        "TOK_DOT",
	TOK_MINUS:      "TOK_MINUS",
	TOK_PLUS:       "TOK_PLUS",
	TOK_SEMICOLON:  "TOK_SEMICOLON",
	TOK_SLASH:      "TOK_SLASH",
	TOK_STAR:       "TOK_STAR",
	TOK_BANG:       "TOK_BANG",
	TOK_BANG_EQ:    "TOK_BANG_EQ",
	TOK_EQ:         "TOK_EQ",
	TOK_EQ_EQ:      "TOK_EQ_EQ",
	TOK_GREATER:    "TOK_GREATER",
	TOK_GREATER_EQ: "TOK_GREATER_EQ",
	TOK_LESS:       "TOK_LESS",
	TOK_LESS_EQ:    "TOK_LESS_EQ",
	TOK_IDENTIFIER: "TOK_IDENTIFIER",
	TOK_STRING:     "TOK_STRING",
	TOK_NUMBER:     "TOK_NUMBER",
	TOK_AND:        "TOK_AND",
	TOK_CLASS:      "TOK_CLASS",
	TOK_ELSE:       "TOK_ELSE",
	TOK_FALSE:      "TOK_FALSE",
	TOK_FUN:        "TOK_FUN",
	TOK_FOR:        "TOK_FOR",
	TOK_IF:         "TOK_IF",
	TOK_NIL:        "TOK_NIL",
	TOK_OR:         "TOK_OR",
	TOK_PRINT:      "TOK_PRINT",
	TOK_RETURN:     "TOK_RETURN",
	TOK_SUPER:      "TOK_SUPER",
	TOK_THIS:       "TOK_THIS",
	TOK_TRUE:       "TOK_TRUE",
	TOK_VAR:        "TOK_VAR",
	TOK_WHILE:      "TOK_WHILE",
	TOK_EOF:        "TOK_EOF",
}

func (t TokenType) ToString() string {
	if t < 0 || int(t) >= len(tokenNames) {
		return "TOK_UNKNOWN"
	}
	return tokenNames[t]
}

func (t TokenType) String() string {
	return t.ToString()
}

// Keywords maps every reserved word to its token type. Lookups must be exact;
// "forEach" is an identifier, not "for" followed by "Each".
var Keywords = map[string]TokenType{
	"and":    TOK_AND,
	"class":  TOK_CLASS,
	"else":   TOK_ELSE,
	"false":  TOK_FALSE,
	"fun":    TOK_FUN,
	"for":    TOK_FOR,
	"if":     TOK_IF,
	"nil":    TOK_NIL,
	"or":     TOK_OR,
	"print":  TOK_PRINT,
	"return": TOK_RETURN,
	"super":  TOK_SUPER,
	"this":   TOK_THIS,
	"true":   TOK_TRUE,
	"var":    TOK_VAR,
	"while":  TOK_WHILE,
}

type LiteralKind int

const (
	LIT_STRING LiteralKind = iota
	LIT_NUMBER
	LIT_BOOLEAN
)

// Literal is the payload of a string, number or boolean token.
type Literal struct {
	Kind    LiteralKind
	Text    string
	Number  float64
	Boolean bool
}

func StringLiteral(s string) *Literal {
	return &Literal{Kind: LIT_STRING, Text: s}
}

func NumberLiteral(n float64) *Literal {
	return &Literal{Kind: LIT_NUMBER, Number: n}
}

func BooleanLiteral(b bool) *Literal {
	return &Literal{Kind: LIT_BOOLEAN, Boolean: b}
}

func (l *Literal) ToString() string {
	if l == nil {
		return "nil"
	}

	switch l.Kind {
	case LIT_STRING:
		return l.Text
	case LIT_NUMBER:
		return strconv.FormatFloat(l.Number, 'f', -1, 64)
	case LIT_BOOLEAN:
		return strconv.FormatBool(l.Boolean)
	}
	return "nil"
}

type Token struct {
	Type     TokenType
	Lexeme   string
	Literal  *Literal
	Line     int
	Location parse.Location
}

func (t Token) String() string {
	if t.Literal == nil {
		return fmt.Sprintf("%s %s", t.Type.ToString(), t.Lexeme)
	}
	return fmt.Sprintf("%s %s %s", t.Type.ToString(), t.Lexeme, t.Literal.ToString())
}
