// SPDX-License-Identifier: Apache-2.0
// Copyright © 2025 the dsv authors

package dsv

import "fmt"

// Config controls how a Parser or Writer interprets delimiter-separated
// text. A Config is copied at construction time and never mutated afterward.
type Config struct {
	// Delimiter separates fields within a row.
	Delimiter byte
	// Quote opens and closes a quoted field.
	Quote byte
	// Escape escapes a quote inside a quoted field. When Escape equals
	// Quote, embedded quotes are represented by doubling (RFC 4180).
	Escape byte
	// TrimWhitespace trims leading and trailing whitespace from unquoted
	// fields. Quoted fields are never trimmed.
	TrimWhitespace bool
	// SkipEmptyRows silently drops rows whose fields are all empty.
	SkipEmptyRows bool
	// StrictMode enables RFC 4180 conformance checks: uniform field count
	// across rows and no stray characters after a closing quote.
	StrictMode bool
}

// DefaultConfig returns the standard RFC 4180 comma-separated configuration.
func DefaultConfig() Config {
	return Config{
		Delimiter: ',',
		Quote:     '"',
		Escape:    '"',
	}
}

// Validate rejects configurations that would make the grammar ambiguous.
func (c Config) Validate() error {
	if c.Delimiter == '\n' || c.Delimiter == '\r' {
		return fmt.Errorf("dsv: delimiter must not be a line ending")
	}
	if c.Quote == '\n' || c.Quote == '\r' {
		return fmt.Errorf("dsv: quote must not be a line ending")
	}
	if c.Escape == '\n' || c.Escape == '\r' {
		return fmt.Errorf("dsv: escape must not be a line ending")
	}
	if c.Delimiter == c.Quote {
		return fmt.Errorf("dsv: delimiter and quote must differ")
	}
	return nil
}
