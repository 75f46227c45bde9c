// SPDX-License-Identifier: Apache-2.0
// Copyright © 2025 the dsv authors

package dsv

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dsvio/dsv/cmd/dsv/utils"
)

// RootCmd returns the dsv command tree.
func RootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "dsv",
		Short:         "Read, write and convert delimiter-separated tabular data",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Usage()
		},
	}
	flags := rootCmd.PersistentFlags()
	flags.String("delimiter", ",", "input field delimiter, a single character")
	flags.String("quote", `"`, "input quote character")
	flags.String("escape", `"`, "input escape character. Equal to the quote character means RFC 4180 doubled-quote escaping")
	flags.Bool("trim", false, "trim leading/trailing whitespace from unquoted fields")
	flags.Bool("skip-empty", false, "silently drop rows whose fields are all empty")
	flags.Bool("strict", false, "enable RFC 4180 strict checks (uniform field count, no stray characters after a closing quote)")
	viper.SetEnvPrefix("dsv")
	for _, name := range []string{"delimiter", "quote", "escape"} {
		viper.BindEnv(name)
		viper.BindPFlag(name, flags.Lookup(name))
	}
	utils.AddLoggerFlags(flags)
	utils.AddProgressBarFlags(flags)
	rootCmd.AddCommand(newConvertCmd())
	rootCmd.AddCommand(newValidateCmd())
	rootCmd.AddCommand(newGenCmd())
	rootCmd.AddCommand(newLoadCmd())
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}
