// SPDX-License-Identifier: Apache-2.0
// Copyright © 2025 the dsv authors

package dsv

import (
	"database/sql"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	"github.com/spf13/cobra"

	"github.com/dsvio/dsv/cmd/dsv/utils"
	"github.com/dsvio/dsv/pkg/dsv"
	"github.com/dsvio/dsv/pkg/errors"
	"github.com/dsvio/dsv/pkg/sqlutil"
)

func newLoadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "load {PATH | -} DB_PATH",
		Short: "Load tabular data into a SQLite table",
		Long:  "Load reads the first row as column names, creates the table if needed, and inserts all remaining rows in a single transaction.",
		Args:  cobra.ExactArgs(2),
		Example: utils.CombineExamples([]utils.Example{
			{
				Comment: `load a CSV file into table "people" of people.db`,
				Line:    `dsv load people.csv people.db`,
			},
			{
				Comment: "pick the table name and read TSV from stdin",
				Line:    `cat data.tsv | dsv load - data.db --delimiter "	" --table measurements`,
			},
		}),
		RunE: func(cmd *cobra.Command, args []string) error {
			cleanup, err := utils.SetupLogger(cmd)
			if err != nil {
				return err
			}
			defer cleanup()
			logger := utils.GetLogger(cmd)
			table, err := cmd.Flags().GetString("table")
			if err != nil {
				return err
			}
			if table == "" {
				table = tableNameFromPath(args[0])
			}
			cfg, err := getReadConfig(cmd)
			if err != nil {
				return err
			}
			p, err := dsv.NewParserWithConfig(cfg)
			if err != nil {
				return err
			}
			if err := openSource(cmd, p, args[0]); err != nil {
				return err
			}
			defer p.Close()

			header, err := p.ReadRow()
			if err == io.EOF {
				return fmt.Errorf("empty input: no header row")
			}
			if err != nil {
				return err
			}
			columns := header.Fields

			db, err := sql.Open("sqlite3", args[1])
			if err != nil {
				return err
			}
			defer db.Close()
			if _, err := db.Exec(sqlutil.CreateTableStmt(table, columns)); err != nil {
				return errors.Wrap("creating table", err)
			}
			container, err := utils.GetProgressBarContainer(cmd)
			if err != nil {
				return err
			}
			bar := container.NewBar(0, "rows")
			n := 0
			err = sqlutil.RunInTx(db, func(tx *sql.Tx) error {
				stmt, err := tx.Prepare(sqlutil.InsertStmt(table, columns))
				if err != nil {
					return err
				}
				defer stmt.Close()
				vals := make([]interface{}, len(columns))
				for {
					row, err := p.ReadRow()
					if err == io.EOF {
						return nil
					}
					if err != nil {
						return err
					}
					if len(row.Fields) != len(columns) {
						return fmt.Errorf("row %d: expected %d field(s), found %d", row.Number, len(columns), len(row.Fields))
					}
					for i, f := range row.Fields {
						vals[i] = f
					}
					if _, err := stmt.Exec(vals...); err != nil {
						return errors.Wrap(fmt.Sprintf("inserting row %d", row.Number), err)
					}
					bar.Incr()
					n++
				}
			})
			if err != nil {
				bar.Abort()
				container.Wait()
				return err
			}
			bar.Done()
			container.Wait()
			logger.Info("load complete", "table", table, "rows", n)
			cmd.Printf("Loaded %d row(s) into table %q\n", n, table)
			return nil
		},
	}
	cmd.Flags().String("table", "", "table name. Defaults to the input file name without extension, or \"data\" for stdin")
	return cmd
}

func tableNameFromPath(path string) string {
	if path == "-" {
		return "data"
	}
	name := filepath.Base(path)
	name = strings.TrimSuffix(name, ".gz")
	if i := strings.LastIndexByte(name, '.'); i > 0 {
		name = name[:i]
	}
	return name
}
