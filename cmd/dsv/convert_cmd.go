// SPDX-License-Identifier: Apache-2.0
// Copyright © 2025 the dsv authors

package dsv

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/dsvio/dsv/cmd/dsv/utils"
	"github.com/dsvio/dsv/pkg/dsv"
)

func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert {PATH | -}",
		Short: "Rewrite tabular data in another dialect",
		Args:  cobra.ExactArgs(1),
		Example: utils.CombineExamples([]utils.Example{
			{
				Comment: "convert CSV to TSV",
				Line:    `dsv convert data.csv --out-delimiter "	" > data.tsv`,
			},
			{
				Comment: "convert semicolon-separated input from stdin, dropping blank lines",
				Line:    `cat data.txt | dsv convert - --delimiter ";" --skip-empty`,
			},
			{
				Comment: "read a gzipped file and write a gzipped file",
				Line:    `dsv convert data.csv.gz -o out.csv.gz --out-quote "'" --out-escape "'"`,
			},
		}),
		RunE: func(cmd *cobra.Command, args []string) error {
			cleanup, err := utils.SetupLogger(cmd)
			if err != nil {
				return err
			}
			defer cleanup()
			logger := utils.GetLogger(cmd)
			output, err := cmd.Flags().GetString("output")
			if err != nil {
				return err
			}
			inCfg, err := getReadConfig(cmd)
			if err != nil {
				return err
			}
			outCfg, err := getWriteConfig(cmd)
			if err != nil {
				return err
			}
			p, err := dsv.NewParserWithConfig(inCfg)
			if err != nil {
				return err
			}
			if err := openSource(cmd, p, args[0]); err != nil {
				return err
			}
			defer p.Close()
			w, err := dsv.NewWriterWithConfig(outCfg)
			if err != nil {
				return err
			}
			if err := openSink(cmd, w, output); err != nil {
				return err
			}
			container, err := utils.GetProgressBarContainer(cmd)
			if err != nil {
				return err
			}
			bar := container.NewBar(0, "rows")
			n := 0
			for {
				row, err := p.ReadRow()
				if err == io.EOF {
					break
				}
				if err != nil {
					bar.Abort()
					container.Wait()
					return err
				}
				if err := w.WriteRow(row.Fields); err != nil {
					bar.Abort()
					container.Wait()
					return err
				}
				bar.Incr()
				n++
			}
			bar.Done()
			container.Wait()
			if err := w.Close(); err != nil {
				return err
			}
			logger.Info("conversion complete", "rows", n)
			return nil
		},
	}
	addWriteConfigFlags(cmd)
	cmd.Flags().StringP("output", "o", "", "write to file instead of stdout. Paths ending in .gz are gzip-compressed")
	return cmd
}
