// SPDX-License-Identifier: Apache-2.0
// Copyright © 2025 the dsv authors

package dsv

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dsvio/dsv/pkg/dsv"
)

func parseChar(name, s string) (byte, error) {
	if len(s) != 1 {
		return 0, fmt.Errorf("invalid %s %q: must be a single character", name, s)
	}
	return s[0], nil
}

// getReadConfig assembles the input dialect from the persistent flags, with
// DSV_DELIMITER, DSV_QUOTE and DSV_ESCAPE as environment fallbacks.
func getReadConfig(cmd *cobra.Command) (cfg dsv.Config, err error) {
	for _, v := range []struct {
		name string
		dst  *byte
	}{
		{"delimiter", &cfg.Delimiter},
		{"quote", &cfg.Quote},
		{"escape", &cfg.Escape},
	} {
		*v.dst, err = parseChar(v.name, viper.GetString(v.name))
		if err != nil {
			return
		}
	}
	for _, v := range []struct {
		name string
		dst  *bool
	}{
		{"trim", &cfg.TrimWhitespace},
		{"skip-empty", &cfg.SkipEmptyRows},
		{"strict", &cfg.StrictMode},
	} {
		*v.dst, err = cmd.Flags().GetBool(v.name)
		if err != nil {
			return
		}
	}
	return cfg, nil
}

func addWriteConfigFlags(cmd *cobra.Command) {
	cmd.Flags().String("out-delimiter", ",", "output field delimiter, a single character")
	cmd.Flags().String("out-quote", `"`, "output quote character")
	cmd.Flags().String("out-escape", `"`, "output escape character")
}

func getWriteConfig(cmd *cobra.Command) (cfg dsv.Config, err error) {
	for _, v := range []struct {
		name string
		dst  *byte
	}{
		{"out-delimiter", &cfg.Delimiter},
		{"out-quote", &cfg.Quote},
		{"out-escape", &cfg.Escape},
	} {
		s, err := cmd.Flags().GetString(v.name)
		if err != nil {
			return cfg, err
		}
		*v.dst, err = parseChar(v.name, s)
		if err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

// openSource binds the parser to path, with "-" meaning stdin.
func openSource(cmd *cobra.Command, p *dsv.Parser, path string) error {
	if path == "-" {
		return p.OpenStream(cmd.InOrStdin())
	}
	return p.OpenFile(path)
}

// openSink binds the writer to path, with "" meaning stdout.
func openSink(cmd *cobra.Command, w *dsv.Writer, path string) error {
	if path == "" {
		return w.OpenStream(cmd.OutOrStdout())
	}
	return w.OpenFile(path)
}
