// SPDX-License-Identifier: Apache-2.0
// Copyright © 2025 the dsv authors

package dsv

import (
	"io"
	"strings"
	"testing"
)

func benchmarkData() string {
	return strings.Repeat(`id,name,notes
1,alice,"likes ""quotes"" and, commas"
2,bob,plain
3,carol,"multi
line"
`, 200)
}

func BenchmarkReadRow(b *testing.B) {
	data := benchmarkData()
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	p := NewParser()
	for i := 0; i < b.N; i++ {
		if err := p.OpenString(data); err != nil {
			b.Fatal(err)
		}
		for {
			if _, err := p.ReadRow(); err != nil {
				if err == io.EOF {
					break
				}
				b.Fatal(err)
			}
		}
	}
}

func BenchmarkWriteRow(b *testing.B) {
	row := []string{"1", "alice", `likes "quotes" and, commas`, "plain"}
	w := NewWriter()
	if err := w.OpenStream(io.Discard); err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if err := w.WriteRow(row); err != nil {
			b.Fatal(err)
		}
	}
}
