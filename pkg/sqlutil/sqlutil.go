// SPDX-License-Identifier: Apache-2.0
// Copyright © 2025 the dsv authors

package sqlutil

import (
	"database/sql"
	"fmt"
	"strings"
)

// RunInTx runs fn inside a transaction, rolling back on error.
func RunInTx(db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	if err = fn(tx); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

// QuoteIdent makes name safe to splice into a statement as an identifier.
func QuoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// CreateTableStmt builds a CREATE TABLE statement with one TEXT column per
// name.
func CreateTableStmt(table string, columns []string) string {
	cols := make([]string, len(columns))
	for i, c := range columns {
		cols[i] = QuoteIdent(c) + " TEXT"
	}
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", QuoteIdent(table), strings.Join(cols, ", "))
}

// InsertStmt builds a parameterized INSERT statement for the given columns.
func InsertStmt(table string, columns []string) string {
	cols := make([]string, len(columns))
	params := make([]string, len(columns))
	for i, c := range columns {
		cols[i] = QuoteIdent(c)
		params[i] = "?"
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		QuoteIdent(table), strings.Join(cols, ", "), strings.Join(params, ", "))
}
