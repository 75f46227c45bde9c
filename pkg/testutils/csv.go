// SPDX-License-Identifier: Apache-2.0
// Copyright © 2025 the dsv authors

package testutils

import (
	"math/rand"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// BuildRawCSV returns a random header row plus numRow random data rows, with
// an incrementing id column first.
func BuildRawCSV(numCol, numRow int) [][]string {
	columns := []string{"id"}
	for i := 0; i < numCol-1; i++ {
		columns = append(columns, RandomAlphaNumericString(5))
	}
	rows := [][]string{columns}
	for i := 0; i < numRow; i++ {
		row := []string{strconv.Itoa(i + 1)}
		for j := 0; j < numCol-1; j++ {
			row = append(row, RandomAlphaNumericString(rand.Intn(20)+1))
		}
		rows = append(rows, row)
	}
	return rows
}

// CreateCSVFile writes lines to a temp file and returns its path. The file
// is removed when the test ends.
func CreateCSVFile(t *testing.T, lines []string) string {
	t.Helper()
	f, err := TempFile("", "test_*.csv")
	require.NoError(t, err)
	defer f.Close()
	_, err = f.WriteString(strings.Join(lines, "\n") + "\n")
	require.NoError(t, err)
	t.Cleanup(func() { os.Remove(f.Name()) })
	return f.Name()
}
