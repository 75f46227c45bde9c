// SPDX-License-Identifier: Apache-2.0
// Copyright © 2025 the dsv authors

package dsv

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dsvio/dsv/cmd/dsv/utils"
	"github.com/dsvio/dsv/pkg/dsv"
)

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate {PATH | -}",
		Short: "Check that input conforms to RFC 4180 strict rules",
		Long:  "Validate parses the whole input in strict mode and reports every grammar violation with its row number: unclosed quotes, stray characters after a closing quote, and rows whose field count differs from the first row's.",
		Args:  cobra.ExactArgs(1),
		Example: utils.CombineExamples([]utils.Example{
			{
				Comment: "validate a CSV file",
				Line:    `dsv validate data.csv`,
			},
			{
				Comment: "validate semicolon-separated data from stdin",
				Line:    `cat data.txt | dsv validate - --delimiter ";"`,
			},
		}),
		RunE: func(cmd *cobra.Command, args []string) error {
			cleanup, err := utils.SetupLogger(cmd)
			if err != nil {
				return err
			}
			defer cleanup()
			maxErrors, err := cmd.Flags().GetInt("max-errors")
			if err != nil {
				return err
			}
			cfg, err := getReadConfig(cmd)
			if err != nil {
				return err
			}
			cfg.StrictMode = true
			p, err := dsv.NewParserWithConfig(cfg)
			if err != nil {
				return err
			}
			if err := openSource(cmd, p, args[0]); err != nil {
				return err
			}
			defer p.Close()
			container, err := utils.GetProgressBarContainer(cmd)
			if err != nil {
				return err
			}
			bar := container.NewBar(0, "rows")
			red := color.New(color.FgRed)
			nRows, nErrs := 0, 0
			for nErrs < maxErrors {
				_, err := p.ReadRow()
				if err == io.EOF {
					break
				}
				if err != nil {
					var pe *dsv.ParseError
					if errors.As(err, &pe) {
						red.Fprintf(cmd.OutOrStdout(), "row %d: %v\n", pe.Row, pe.Err)
						nErrs++
						continue
					}
					bar.Abort()
					container.Wait()
					return err
				}
				nRows++
				bar.Incr()
			}
			bar.Done()
			container.Wait()
			if nErrs > 0 {
				return fmt.Errorf("found %d error(s) in %d row(s)", nErrs, nRows+nErrs)
			}
			color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "OK: %d row(s)\n", nRows)
			return nil
		},
	}
	cmd.Flags().Int("max-errors", 10, "stop after reporting this many errors")
	return cmd
}
