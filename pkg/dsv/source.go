// SPDX-License-Identifier: Apache-2.0
// Copyright © 2025 the dsv authors

package dsv

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// source binds a parser to one provider of "next byte" plus one byte of
// pushback. bufio.Reader and strings.Reader both satisfy io.ByteScanner,
// which is exactly that contract, so no extra lookahead wrapper is needed.
type source struct {
	scanner io.ByteScanner
	closers []io.Closer
}

// fileSource opens path for reading. Paths ending in ".gz" are
// transparently decompressed.
func fileSource(path string) (*source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if strings.HasSuffix(path, ".gz") {
		zr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return &source{
			scanner: bufio.NewReader(zr),
			closers: []io.Closer{zr, f},
		}, nil
	}
	return &source{
		scanner: bufio.NewReader(f),
		closers: []io.Closer{f},
	}, nil
}

// streamSource wraps a caller-owned stream. The caller keeps ownership:
// Close on the source does not close r.
func streamSource(r io.Reader) *source {
	return &source{scanner: bufio.NewReader(r)}
}

// stringSource reads from an in-memory string, which the parser only
// borrows.
func stringSource(data string) *source {
	return &source{scanner: strings.NewReader(data)}
}

// Close releases handles the source owns. Caller-supplied streams are left
// open.
func (s *source) Close() error {
	var err error
	for _, c := range s.closers {
		if e := c.Close(); e != nil && err == nil {
			err = e
		}
	}
	s.closers = nil
	return err
}
