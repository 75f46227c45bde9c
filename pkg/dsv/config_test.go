// SPDX-License-Identifier: Apache-2.0
// Copyright © 2025 the dsv authors

package dsv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	for _, c := range []struct {
		name string
		cfg  Config
	}{
		{"delimiterEqualsQuote", Config{Delimiter: '"', Quote: '"', Escape: '"'}},
		{"delimiterNewline", Config{Delimiter: '\n', Quote: '"', Escape: '"'}},
		{"delimiterCR", Config{Delimiter: '\r', Quote: '"', Escape: '"'}},
		{"quoteNewline", Config{Delimiter: ',', Quote: '\n', Escape: '"'}},
		{"quoteCR", Config{Delimiter: ',', Quote: '\r', Escape: '"'}},
		{"escapeNewline", Config{Delimiter: ',', Quote: '"', Escape: '\n'}},
		{"escapeCR", Config{Delimiter: ',', Quote: '"', Escape: '\r'}},
	} {
		t.Run(c.name, func(t *testing.T) {
			assert.Error(t, c.cfg.Validate())
			p, err := NewParserWithConfig(c.cfg)
			assert.Error(t, err)
			assert.Nil(t, p)
			w, err := NewWriterWithConfig(c.cfg)
			assert.Error(t, err)
			assert.Nil(t, w)
		})
	}
}

func TestValidateAcceptsDialects(t *testing.T) {
	for _, cfg := range []Config{
		{Delimiter: '\t', Quote: '"', Escape: '"'},
		{Delimiter: ';', Quote: '"', Escape: '\\'},
		{Delimiter: ',', Quote: '\'', Escape: '\''},
	} {
		assert.NoError(t, cfg.Validate())
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, byte(','), cfg.Delimiter)
	assert.Equal(t, byte('"'), cfg.Quote)
	assert.Equal(t, byte('"'), cfg.Escape)
	assert.False(t, cfg.TrimWhitespace)
	assert.False(t, cfg.SkipEmptyRows)
	assert.False(t, cfg.StrictMode)
}
