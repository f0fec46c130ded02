/*
 * Copyright (c) 2022, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package parse

import (
	"fmt"
	"strings"
)

type ErrorKind int

const (
	// Lexical errors
	UnexpectedCharacter ErrorKind = iota
	UnterminatedString

	// Syntax errors
	MissingExpectedToken
	InvalidAssignmentTarget
	TooManyArguments
	TrailingTokens
)

func (k ErrorKind) ToString() string {
	switch k {
	case UnexpectedCharacter:
		return "UnexpectedCharacter"
	case UnterminatedString:
		return "UnterminatedString"
	case MissingExpectedToken:
		return "MissingExpectedToken"
	case InvalidAssignmentTarget:
		return "InvalidAssignmentTarget"
	case TooManyArguments:
		return "TooManyArguments"
	case TrailingTokens:
		return "TrailingTokens"
	}
	return "Unknown"
}

// IsLexical is true for errors raised by the scanner
func (k ErrorKind) IsLexical() bool {
	return k == UnexpectedCharacter || k == UnterminatedString
}

// Error is a single lexical or syntax error found in a source buffer.
type Error struct {
	Kind     ErrorKind
	Line     int
	Where    string
	Message  string
	Location Location
}

func NewError(kind ErrorKind, loc Location, where, m string) *Error {
	return &Error{Kind: kind, Line: loc.Line, Where: where, Message: m, Location: loc}
}

func (e *Error) Error() string {
	return fmt.Sprintf("[line %d] Error%s: %s", e.Line, e.Where, e.Message)
}

// FormatError renders the offending source line with a caret under the
// error's location.
func (e *Error) FormatError(input string) string {
	start := e.Location.Start
	if start > len(input) {
		start = len(input)
	}
	if start < 0 {
		start = 0
	}

	lineStart := strings.LastIndexByte(input[:start], '\n') + 1
	lineEnd := strings.IndexByte(input[start:], '\n')
	if lineEnd < 0 {
		lineEnd = len(input)
	} else {
		lineEnd += start
	}

	repeat := e.Location.Width() - 1
	if repeat < 0 {
		repeat = 0
	}
	// Don't underline past the end of the line
	if start+1+repeat > lineEnd {
		repeat = lineEnd - start - 1
		if repeat < 0 {
			repeat = 0
		}
	}

	line := e.Location.Line
	if line == 0 {
		line = e.Line
	}

	errorString := fmt.Sprintf("Error found on line %d:\n", line)
	errorString += input[lineStart:lineEnd]
	errorString += fmt.Sprintf("\n%s^%s ", strings.Repeat(" ", start-lineStart), strings.Repeat("~", repeat))
	errorString += fmt.Sprintf("%s\n", e.Message)
	return errorString
}
