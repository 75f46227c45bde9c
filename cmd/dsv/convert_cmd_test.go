// SPDX-License-Identifier: Apache-2.0
// Copyright © 2025 the dsv authors

package dsv

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dsvio/dsv/pkg/dsv"
	"github.com/dsvio/dsv/pkg/testutils"
)

func TestConvertCmd(t *testing.T) {
	fp := testutils.CreateCSVFile(t, []string{
		"a,b",
		`"c,1",d`,
	})
	cmd := RootCmd()
	cmd.SetArgs([]string{"convert", fp, "--out-delimiter", ";", "--no-progress"})
	assertCmdOutput(t, cmd, "a;b\nc,1;d\n")
}

func TestConvertCmdStdin(t *testing.T) {
	cmd := RootCmd()
	cmd.SetIn(strings.NewReader("a;b\n\n;\nc;d\n"))
	cmd.SetArgs([]string{"convert", "-", "--delimiter", ";", "--skip-empty", "--no-progress"})
	assertCmdOutput(t, cmd, "a,b\nc,d\n")
}

func TestConvertCmdQuoting(t *testing.T) {
	cmd := RootCmd()
	cmd.SetIn(strings.NewReader("a\tsay \"hi\"\n"))
	cmd.SetArgs([]string{"convert", "-", "--delimiter", "\t", "--no-progress",
		"--out-delimiter", ",", "--out-quote", "\"", "--out-escape", "\\"})
	assertCmdOutput(t, cmd, "a,\"say \\\"hi\\\"\"\n")
}

func TestConvertCmdToFile(t *testing.T) {
	fp := testutils.CreateCSVFile(t, []string{
		"x,y",
		"1,2",
	})
	out := filepath.Join(t.TempDir(), "out.csv.gz")
	cmd := RootCmd()
	cmd.SetArgs([]string{"convert", fp, "-o", out, "--out-delimiter", "\t", "--no-progress"})
	cmd.SetOut(io.Discard)
	require.NoError(t, cmd.Execute())

	cfg := dsv.DefaultConfig()
	cfg.Delimiter = '\t'
	p, err := dsv.NewParserWithConfig(cfg)
	require.NoError(t, err)
	require.NoError(t, p.OpenFile(out))
	defer p.Close()
	row, err := p.ReadRow()
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, row.Fields)
	row, err = p.ReadRow()
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, row.Fields)
}

func TestConvertCmdParseError(t *testing.T) {
	cmd := RootCmd()
	cmd.SetIn(strings.NewReader("\"unclosed"))
	cmd.SetArgs([]string{"convert", "-", "--no-progress"})
	buf := bytes.NewBufferString("")
	cmd.SetOut(buf)
	err := cmd.Execute()
	assert.ErrorIs(t, err, dsv.ErrUnclosedQuote)
}
