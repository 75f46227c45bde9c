// SPDX-License-Identifier: Apache-2.0
// Copyright © 2025 the dsv authors

package utils

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/dsvio/dsv/pkg/pbar"
)

func AddProgressBarFlags(flags *pflag.FlagSet) {
	flags.Bool("no-progress", false, "don't display progress bar")
}

// GetProgressBarContainer returns a container rendering to stderr. Bars are
// suppressed with --no-progress or when stderr is not a terminal.
func GetProgressBarContainer(cmd *cobra.Command) (*pbar.Container, error) {
	noProgress, err := cmd.Flags().GetBool("no-progress")
	if err != nil {
		return nil, err
	}
	out := cmd.ErrOrStderr()
	quiet := noProgress
	if !quiet {
		f, ok := out.(*os.File)
		quiet = !ok || !term.IsTerminal(int(f.Fd()))
	}
	return pbar.NewContainer(out, quiet), nil
}
