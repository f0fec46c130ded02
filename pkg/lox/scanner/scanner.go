/*
 * Copyright (c) 2022-2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package scanner

import (
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/dburkart/lox/pkg/common/parse"
)

// Scanner turns a source buffer into tokens. A Scanner is single use: call
// ScanTokens once and discard it.
type Scanner struct {
	Input    string
	Start    int
	Pos      int
	Line     int
	Reporter parse.Reporter

	startLine int
	tokens    []Token
	errs      []*parse.Error
}

// Scan returns every token in input, terminated by a single TOK_EOF. Lexical
// errors are reported to r as they are found and scanning carries on; the
// returned error combines all of them.
func Scan(input string, r parse.Reporter) ([]Token, error) {
	s := Scanner{Input: input, Reporter: r}
	return s.ScanTokens()
}

func (s *Scanner) ScanTokens() ([]Token, error) {
	if s.Line == 0 {
		s.Line = 1
	}

	for !s.isAtEnd() {
		s.Start = s.Pos
		s.startLine = s.Line
		s.scanToken()
	}

	s.tokens = append(s.tokens, Token{
		Type:     TOK_EOF,
		Line:     s.Line,
		Location: parse.Location{Start: s.Pos, End: s.Pos, Line: s.Line},
	})

	return s.tokens, parse.Combine(s.errs)
}

func (s *Scanner) scanToken() {
	r := s.advance()

	switch {
	case r == '(':
		s.addToken(TOK_PAREN_L, nil)
	case r == ')':
		s.addToken(TOK_PAREN_R, nil)
	case r == '{':
		s.addToken(TOK_BRACE_L, nil)
	case r == '}':
		s.addToken(TOK_BRACE_R, nil)
	case r == ',':
		s.addToken(TOK_COMMA, nil)
	case r == '.':
		s.addToken(TOK_DOT, nil)
	case r == '-':
		s.addToken(TOK_MINUS, nil)
	case r == '+':
		s.addToken(TOK_PLUS, nil)
	case r == ';':
		s.addToken(TOK_SEMICOLON, nil)
	case r == '*':
		s.addToken(TOK_STAR, nil)
	case r == '!':
		s.addToken(s.either('=', TOK_BANG_EQ, TOK_BANG), nil)
	case r == '=':
		s.addToken(s.either('=', TOK_EQ_EQ, TOK_EQ), nil)
	case r == '<':
		s.addToken(s.either('=', TOK_LESS_EQ, TOK_LESS), nil)
	case r == '>':
		s.addToken(s.either('=', TOK_GREATER_EQ, TOK_GREATER), nil)
	case r == '/':
		if s.match('/') {
			// Comments run to the end of the line, the newline itself is
			// left for the next pass so the line count stays correct
			for s.peek() != '\n' && !s.isAtEnd() {
				s.advance()
			}
			break
		}
		s.addToken(TOK_SLASH, nil)
	case r == ' ' || r == '\r' || r == '\t':
		// Skip
	case r == '\n':
		s.Line++
	case r == '"':
		s.stringLiteral()
	case isDigit(r):
		s.number()
	case isAlpha(r):
		s.identifier()
	default:
		s.reportError(parse.UnexpectedCharacter, s.Line, "Unexpected character.")
	}
}

// MatchNumber returns the length of the number starting at s.Start
//
// Grammar:
//
//	number          = 1*DIGIT [ "." 1*DIGIT ]
func (s *Scanner) MatchNumber() int {
	i := s.Start
	for i < len(s.Input) && isDigit(rune(s.Input[i])) {
		i++
	}

	// A trailing '.' only belongs to the number when a digit follows it
	if i+1 < len(s.Input) && s.Input[i] == '.' && isDigit(rune(s.Input[i+1])) {
		i++
		for i < len(s.Input) && isDigit(rune(s.Input[i])) {
			i++
		}
	}

	return i - s.Start
}

// MatchIdentifier returns the length of the identifier starting at s.Start
//
// Grammar:
//
//	identifier      = ( ALPHA / "_" ) *( ALPHA / DIGIT / "_" )
func (s *Scanner) MatchIdentifier() int {
	i := s.Start
	r, width := utf8.DecodeRuneInString(s.Input[i:])

	for i < len(s.Input) && (isAlpha(r) || isDigit(r)) {
		i += width
		r, width = utf8.DecodeRuneInString(s.Input[i:])
	}

	return i - s.Start
}

func (s *Scanner) number() {
	s.Pos = s.Start + s.MatchNumber()

	// Digit runs too large for a float64 come back as +Inf
	value, _ := strconv.ParseFloat(s.Input[s.Start:s.Pos], 64)

	s.addToken(TOK_NUMBER, NumberLiteral(value))
}

func (s *Scanner) identifier() {
	s.Pos = s.Start + s.MatchIdentifier()

	text := s.Input[s.Start:s.Pos]
	t, ok := Keywords[text]
	if !ok {
		s.addToken(TOK_IDENTIFIER, nil)
		return
	}

	switch t {
	case TOK_TRUE:
		s.addToken(t, BooleanLiteral(true))
	case TOK_FALSE:
		s.addToken(t, BooleanLiteral(false))
	default:
		s.addToken(t, nil)
	}
}

func (s *Scanner) stringLiteral() {
	for s.peek() != '"' && !s.isAtEnd() {
		if s.peek() == '\n' {
			s.Line++
		}
		s.advance()
	}

	if s.isAtEnd() {
		s.reportError(parse.UnterminatedString, s.Line, "Unterminated string.")
		return
	}

	// The closing quote
	s.advance()

	s.addToken(TOK_STRING, StringLiteral(s.Input[s.Start+1:s.Pos-1]))
}

func (s *Scanner) isAtEnd() bool {
	return s.Pos >= len(s.Input)
}

func (s *Scanner) advance() rune {
	r, width := utf8.DecodeRuneInString(s.Input[s.Pos:])
	s.Pos += width
	return r
}

func (s *Scanner) peek() rune {
	if s.isAtEnd() {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(s.Input[s.Pos:])
	return r
}

// match consumes the next rune only if it is expected
func (s *Scanner) match(expected rune) bool {
	if s.peek() != expected || s.isAtEnd() {
		return false
	}
	s.Pos += utf8.RuneLen(expected)
	return true
}

// either picks the two-character form when the next rune extends the token
func (s *Scanner) either(next rune, long, short TokenType) TokenType {
	if s.match(next) {
		return long
	}
	return short
}

func (s *Scanner) location() parse.Location {
	return parse.Location{Start: s.Start, End: s.Pos, Line: s.startLine}
}

func (s *Scanner) addToken(t TokenType, literal *Literal) {
	s.tokens = append(s.tokens, Token{
		Type:     t,
		Lexeme:   s.Input[s.Start:s.Pos],
		Literal:  literal,
		Line:     s.startLine,
		Location: s.location(),
	})
}

func (s *Scanner) reportError(kind parse.ErrorKind, line int, message string) {
	e := parse.NewError(kind, s.location(), "", message)
	e.Line = line
	s.errs = append(s.errs, e)
	parse.Report(s.Reporter, e)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isAlpha(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}
