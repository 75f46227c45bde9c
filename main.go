// SPDX-License-Identifier: Apache-2.0
// Copyright © 2025 the dsv authors

package main

import (
	"fmt"
	"os"

	"github.com/dsvio/dsv/cmd/dsv"
)

func main() {
	rootCmd := dsv.RootCmd()
	rootCmd.SetOut(os.Stdout)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err.Error())
		os.Exit(1)
	}
}
