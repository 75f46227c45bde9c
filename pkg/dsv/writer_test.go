// SPDX-License-Identifier: Apache-2.0
// Copyright © 2025 the dsv authors

package dsv

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRows(t *testing.T, cfg Config, rows [][]string) string {
	t.Helper()
	w, err := NewWriterWithConfig(cfg)
	require.NoError(t, err)
	buf := bytes.NewBuffer(nil)
	require.NoError(t, w.OpenStream(buf))
	for _, row := range rows {
		require.NoError(t, w.WriteRow(row))
	}
	require.NoError(t, w.Flush())
	return buf.String()
}

func TestWriteRow(t *testing.T) {
	out := writeRows(t, DefaultConfig(), [][]string{
		{"a", "b", "c"},
		{"1", "2", "3"},
	})
	assert.Equal(t, "a,b,c\n1,2,3\n", out)
}

func TestWriteRowQuotesOnlyWhenNeeded(t *testing.T) {
	out := writeRows(t, DefaultConfig(), [][]string{
		{"plain", "with,comma", `with"quote`, "with\nnewline", "with\rcr"},
	})
	assert.Equal(t, "plain,\"with,comma\",\"with\"\"quote\",\"with\nnewline\",\"with\rcr\"\n", out)
}

func TestWriteRowBackslashEscape(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Escape = '\\'
	out := writeRows(t, cfg, [][]string{{`say "hi"`}})
	assert.Equal(t, "\"say \\\"hi\\\"\"\n", out)
}

func TestWriteRowCustomDelimiter(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Delimiter = ';'
	out := writeRows(t, cfg, [][]string{{"a;b", "c"}})
	assert.Equal(t, "\"a;b\";c\n", out)
}

func TestWriteEmptyRow(t *testing.T) {
	out := writeRows(t, DefaultConfig(), [][]string{{}, {""}})
	assert.Equal(t, "\n\n", out)
}

func TestWriteBeforeOpen(t *testing.T) {
	w := NewWriter()
	err := w.WriteRow([]string{"a"})
	assert.ErrorIs(t, err, ErrNoSink)
	assert.Equal(t, ErrNoSink.Error(), w.LastError())
}

func TestWriteAfterClose(t *testing.T) {
	w := NewWriter()
	buf := bytes.NewBuffer(nil)
	require.NoError(t, w.OpenStream(buf))
	require.NoError(t, w.WriteRow([]string{"a"}))
	require.NoError(t, w.Close())
	assert.ErrorIs(t, w.WriteRow([]string{"b"}), ErrNoSink)
	assert.Equal(t, "a\n", buf.String())
}

func TestRoundTrip(t *testing.T) {
	rows := [][]string{
		{"plain", "with,delimiter", `with "quotes"`, "multi\nline", "crlf\r\nfield"},
		{"", " padded ", "\ttabbed\t"},
	}
	for _, cfg := range []Config{
		DefaultConfig(),
		{Delimiter: ';', Quote: '\'', Escape: '\''},
		{Delimiter: '\t', Quote: '"', Escape: '\\'},
	} {
		out := writeRows(t, cfg, rows)
		p, err := NewParserWithConfig(cfg)
		require.NoError(t, err)
		require.NoError(t, p.OpenString(out))
		assert.Equal(t, rows, readAll(t, p), "config %+v", cfg)
	}
}

func TestWriterConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Delimiter = '\t'
	w, err := NewWriterWithConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, cfg, w.Config())
}

// FuzzRoundTrip checks that any pair of field values survives a
// write-then-parse cycle in the default configuration.
func FuzzRoundTrip(f *testing.F) {
	f.Add("a", "b")
	f.Add("with,comma", `with"quote`)
	f.Add("multi\nline", "cr\rfield")
	f.Add("", "  spaced  ")
	f.Fuzz(func(t *testing.T, a, b string) {
		w := NewWriter()
		buf := bytes.NewBuffer(nil)
		if err := w.OpenStream(buf); err != nil {
			t.Fatal(err)
		}
		if err := w.WriteRow([]string{a, b}); err != nil {
			t.Fatal(err)
		}
		if err := w.Flush(); err != nil {
			t.Fatal(err)
		}
		p := NewParser()
		if err := p.OpenString(buf.String()); err != nil {
			t.Fatal(err)
		}
		row, err := p.ReadRow()
		if err != nil {
			t.Fatalf("parse back %q: %v", buf.String(), err)
		}
		if len(row.Fields) != 2 || row.Fields[0] != a || row.Fields[1] != b {
			t.Fatalf("round trip mismatch: wrote %q got %q", []string{a, b}, row.Fields)
		}
		if _, err := p.ReadRow(); err != io.EOF {
			t.Fatalf("expected EOF after single row, got %v", err)
		}
	})
}
