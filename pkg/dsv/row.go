// SPDX-License-Identifier: Apache-2.0
// Copyright © 2025 the dsv authors

package dsv

// Row is one parsed record. Fields appear in column order. Number is
// 1-based and counts every parsed row, including rows later dropped by
// SkipEmptyRows, so numbers of dropped rows are not reused.
type Row struct {
	Fields []string
	Number int
}

// IsEmpty reports whether the row has no fields or only empty fields.
func (r *Row) IsEmpty() bool {
	for _, f := range r.Fields {
		if f != "" {
			return false
		}
	}
	return true
}
