// SPDX-License-Identifier: Apache-2.0
// Copyright © 2025 the dsv authors

package dsv

import (
	"errors"
	"fmt"
)

var (
	// ErrUnclosedQuote is returned when input ends inside a quoted field.
	ErrUnclosedQuote = errors.New("unclosed quoted field")
	// ErrCharAfterQuote is returned in strict mode when a closing quote is
	// followed by anything other than the delimiter or a row terminator.
	ErrCharAfterQuote = errors.New("unexpected character after closing quote")
	// ErrFieldCount is returned in strict mode when a row's field count
	// differs from the first accepted row's.
	ErrFieldCount = errors.New("field count mismatch")

	// ErrNoSource is returned by Parser reads before a source is opened or
	// after Close.
	ErrNoSource = errors.New("dsv: no source opened")
	// ErrNoSink is returned by Writer writes before a sink is opened or
	// after Close.
	ErrNoSink = errors.New("dsv: no sink opened")
)

// ParseError reports a grammar violation at a specific row. The parser
// remains usable after a ParseError, though the offending row is lost.
type ParseError struct {
	Row int
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("dsv: parse error on row %d: %v", e.Row, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
