// SPDX-License-Identifier: Apache-2.0
// Copyright © 2025 the dsv authors

package dsv

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// Writer emits delimiter-separated rows to a byte sink. A Writer is bound to
// at most one sink at a time and is not safe for concurrent use.
type Writer struct {
	config  Config
	w       *bufio.Writer
	closers []io.Closer
	lastErr string
}

// NewWriter returns a writer with the default RFC 4180 configuration.
func NewWriter() *Writer {
	w, _ := NewWriterWithConfig(DefaultConfig())
	return w
}

// NewWriterWithConfig returns a writer bound to cfg, or an error if cfg is
// invalid. Strict mode has no effect on writing but is accepted.
func NewWriterWithConfig(cfg Config) (*Writer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Writer{config: cfg}, nil
}

// Config returns the configuration the writer was constructed with.
func (w *Writer) Config() Config {
	return w.config
}

// OpenFile creates or truncates the file at path for writing, closing any
// previously owned sink. Paths ending in ".gz" are gzip-compressed.
func (w *Writer) OpenFile(path string) error {
	w.Close()
	w.lastErr = ""
	f, err := os.Create(path)
	if err != nil {
		return w.fail(err)
	}
	if strings.HasSuffix(path, ".gz") {
		zw := gzip.NewWriter(f)
		w.w = bufio.NewWriter(zw)
		w.closers = []io.Closer{zw, f}
	} else {
		w.w = bufio.NewWriter(f)
		w.closers = []io.Closer{f}
	}
	return nil
}

// OpenStream binds the writer to a caller-owned stream. The writer never
// closes out.
func (w *Writer) OpenStream(out io.Writer) error {
	if out == nil {
		return w.fail(ErrNoSink)
	}
	w.Close()
	w.lastErr = ""
	w.w = bufio.NewWriter(out)
	w.closers = nil
	return nil
}

// WriteRow writes fields joined by the delimiter plus a trailing newline. A
// field is quoted only when it contains the delimiter, the quote character,
// or a line ending; embedded quotes are preceded by the escape character.
func (w *Writer) WriteRow(fields []string) error {
	w.lastErr = ""
	if w.w == nil {
		return w.fail(ErrNoSink)
	}
	for i, field := range fields {
		if i > 0 {
			if err := w.w.WriteByte(w.config.Delimiter); err != nil {
				return w.failWrite(err)
			}
		}
		if err := w.writeField(field); err != nil {
			return w.failWrite(err)
		}
	}
	if err := w.w.WriteByte('\n'); err != nil {
		return w.failWrite(err)
	}
	return nil
}

func (w *Writer) writeField(field string) error {
	if !w.needsQuoting(field) {
		_, err := w.w.WriteString(field)
		return err
	}
	if err := w.w.WriteByte(w.config.Quote); err != nil {
		return err
	}
	for i := 0; i < len(field); i++ {
		if field[i] == w.config.Quote {
			if err := w.w.WriteByte(w.config.Escape); err != nil {
				return err
			}
		}
		if err := w.w.WriteByte(field[i]); err != nil {
			return err
		}
	}
	return w.w.WriteByte(w.config.Quote)
}

func (w *Writer) needsQuoting(field string) bool {
	return strings.IndexByte(field, w.config.Delimiter) >= 0 ||
		strings.IndexByte(field, w.config.Quote) >= 0 ||
		strings.IndexByte(field, '\n') >= 0 ||
		strings.IndexByte(field, '\r') >= 0
}

// Flush forces buffered output to the underlying sink.
func (w *Writer) Flush() error {
	w.lastErr = ""
	if w.w == nil {
		return w.fail(ErrNoSink)
	}
	if err := w.w.Flush(); err != nil {
		return w.failWrite(err)
	}
	return nil
}

// Close flushes and releases any sink the writer owns. Writes after Close
// return ErrNoSink until a new sink is opened.
func (w *Writer) Close() error {
	if w.w == nil {
		return nil
	}
	err := w.w.Flush()
	w.w = nil
	if e := w.closeSink(); err == nil {
		err = e
	}
	if err != nil {
		return w.fail(err)
	}
	return nil
}

func (w *Writer) closeSink() error {
	var err error
	for _, c := range w.closers {
		if e := c.Close(); e != nil && err == nil {
			err = e
		}
	}
	w.closers = nil
	return err
}

// LastError returns the message of the last failed call, or the empty
// string. It is valid until the next operation on the writer.
func (w *Writer) LastError() string {
	return w.lastErr
}

func (w *Writer) fail(err error) error {
	w.lastErr = err.Error()
	return err
}

func (w *Writer) failWrite(err error) error {
	return w.fail(fmt.Errorf("dsv: write: %w", err))
}
