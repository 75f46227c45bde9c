// SPDX-License-Identifier: Apache-2.0
// Copyright © 2025 the dsv authors

package dsv

import (
	"fmt"
	"io"
	"strings"
)

// Parser reads delimiter-separated rows from a byte source, one row per
// ReadRow call. A Parser is bound to at most one source at a time and is not
// safe for concurrent use.
type Parser struct {
	config Config
	src    *source

	rowNumber      int
	expectedFields int // strict mode; 0 means not yet established
	buf            []byte
	lastErr        string
}

// NewParser returns a parser with the default RFC 4180 configuration.
func NewParser() *Parser {
	p, _ := NewParserWithConfig(DefaultConfig())
	return p
}

// NewParserWithConfig returns a parser bound to cfg, or an error if cfg is
// invalid.
func NewParserWithConfig(cfg Config) (*Parser, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Parser{config: cfg}, nil
}

// Config returns the configuration the parser was constructed with.
func (p *Parser) Config() Config {
	return p.config
}

// OpenFile binds the parser to the file at path, closing any previously
// owned source. Paths ending in ".gz" are transparently decompressed.
func (p *Parser) OpenFile(path string) error {
	p.lastErr = ""
	src, err := fileSource(path)
	if err != nil {
		return p.fail(err)
	}
	p.reset(src)
	return nil
}

// OpenStream binds the parser to a caller-owned stream. The parser never
// closes r.
func (p *Parser) OpenStream(r io.Reader) error {
	p.lastErr = ""
	if r == nil {
		return p.fail(ErrNoSource)
	}
	p.reset(streamSource(r))
	return nil
}

// OpenString binds the parser to an in-memory string.
func (p *Parser) OpenString(data string) error {
	p.lastErr = ""
	p.reset(stringSource(data))
	return nil
}

func (p *Parser) reset(src *source) {
	if p.src != nil {
		p.src.Close()
	}
	p.src = src
	p.rowNumber = 0
	p.expectedFields = 0
}

// Close releases any source the parser owns. Reads after Close return
// ErrNoSource until a new source is opened.
func (p *Parser) Close() error {
	if p.src == nil {
		return nil
	}
	err := p.src.Close()
	p.src = nil
	return err
}

// LastError returns the message of the last failed call, or the empty
// string. It is valid until the next operation on the parser.
func (p *Parser) LastError() string {
	return p.lastErr
}

func (p *Parser) fail(err error) error {
	p.lastErr = err.Error()
	return err
}

// ReadRow consumes exactly one logical row from the source. It returns
// io.EOF when nothing remains. After a ParseError the parser stays usable;
// the offending row is lost.
func (p *Parser) ReadRow() (*Row, error) {
	p.lastErr = ""
	if p.src == nil {
		return nil, p.fail(ErrNoSource)
	}
	// Keep reading candidate rows until one is accepted or input ends.
	for {
		row, err := p.parseRow()
		if err != nil {
			if err == io.EOF {
				return nil, err
			}
			return nil, p.fail(err)
		}
		p.rowNumber++
		row.Number = p.rowNumber
		if p.config.SkipEmptyRows && row.IsEmpty() {
			continue
		}
		if p.config.StrictMode {
			if p.expectedFields == 0 {
				p.expectedFields = len(row.Fields)
			} else if len(row.Fields) != p.expectedFields {
				return nil, p.fail(&ParseError{Row: row.Number, Err: ErrFieldCount})
			}
		}
		return row, nil
	}
}

// parseRow runs the per-character state machine over the next row. Errors
// other than io.EOF are either *ParseError or wrapped read failures.
func (p *Parser) parseRow() (*Row, error) {
	row := &Row{}
	p.buf = p.buf[:0]
	var (
		inQuotes     bool
		fieldStarted bool
		fieldQuoted  bool
		atEOF        bool
	)

scan:
	for {
		c, err := p.src.scanner.ReadByte()
		if err != nil {
			if err != io.EOF {
				return nil, fmt.Errorf("dsv: read: %w", err)
			}
			atEOF = true
			break
		}

		// CRLF normalization applies outside quoted fields only.
		if !inQuotes && c == '\r' {
			next, err := p.src.scanner.ReadByte()
			switch {
			case err == nil && next != '\n':
				p.src.scanner.UnreadByte()
			case err != nil && err != io.EOF:
				return nil, fmt.Errorf("dsv: read: %w", err)
			}
			c = '\n'
		}

		if !inQuotes {
			switch {
			case c == p.config.Quote && !fieldStarted:
				inQuotes = true
				fieldStarted = true
				fieldQuoted = true
				continue
			case c == p.config.Delimiter:
				row.Fields = append(row.Fields, p.finishField(fieldQuoted))
				fieldStarted = false
				fieldQuoted = false
				continue
			case c == '\n':
				break scan
			}
		} else if c == p.config.Escape {
			next, err := p.src.scanner.ReadByte()
			if err == io.EOF {
				// Truncated escape; the unclosed-quote check below fires.
				atEOF = true
				break
			}
			if err != nil {
				return nil, fmt.Errorf("dsv: read: %w", err)
			}
			switch {
			case next == p.config.Quote:
				c = p.config.Quote
			case next == p.config.Escape:
				c = p.config.Escape
			case p.config.Escape == p.config.Quote:
				// RFC 4180 mode: the character just consumed was really the
				// closing quote.
				if p.config.StrictMode && next != p.config.Delimiter && next != '\n' && next != '\r' {
					return nil, &ParseError{Row: p.rowNumber + 1, Err: ErrCharAfterQuote}
				}
				p.src.scanner.UnreadByte()
				inQuotes = false
				continue
			default:
				// Backslash mode with a non-special character following the
				// escape: keep both bytes verbatim.
				p.buf = append(p.buf, c)
				c = next
			}
		} else if c == p.config.Quote && p.config.Escape != p.config.Quote {
			// Quote terminates the field when escaping uses a distinct
			// character.
			inQuotes = false
			if p.config.StrictMode {
				next, err := p.src.scanner.ReadByte()
				if err == nil {
					if next != p.config.Delimiter && next != '\n' && next != '\r' {
						return nil, &ParseError{Row: p.rowNumber + 1, Err: ErrCharAfterQuote}
					}
					p.src.scanner.UnreadByte()
				} else if err != io.EOF {
					return nil, fmt.Errorf("dsv: read: %w", err)
				}
			}
			continue
		}

		p.buf = append(p.buf, c)
		fieldStarted = true
	}

	if atEOF && len(p.buf) == 0 && len(row.Fields) == 0 && !fieldStarted {
		return nil, io.EOF
	}
	if inQuotes {
		return nil, &ParseError{Row: p.rowNumber + 1, Err: ErrUnclosedQuote}
	}
	row.Fields = append(row.Fields, p.finishField(fieldQuoted))
	return row, nil
}

func (p *Parser) finishField(quoted bool) string {
	s := string(p.buf)
	p.buf = p.buf[:0]
	if p.config.TrimWhitespace && !quoted {
		s = strings.TrimSpace(s)
	}
	return s
}
