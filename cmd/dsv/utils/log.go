// SPDX-License-Identifier: Apache-2.0
// Copyright © 2025 the dsv authors

package utils

import (
	"context"
	"log"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type loggerKey struct{}

func SetLogger(ctx context.Context, logger *logr.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// GetLogger returns the logger installed by SetupLogger, or a discarding
// logger when none is set.
func GetLogger(cmd *cobra.Command) logr.Logger {
	if v := cmd.Context().Value(loggerKey{}); v != nil {
		return *v.(*logr.Logger)
	}
	return logr.Discard()
}

func AddLoggerFlags(flags *pflag.FlagSet) {
	flags.Int("log-verbosity", 0, "log verbosity. Higher value means more log")
	flags.String("log-file", "", "output logs to specified file instead of stderr")
}

// SetupLogger installs a logr.Logger in the command context, writing to
// stderr or to the file given with --log-file.
func SetupLogger(cmd *cobra.Command) (cleanup func(), err error) {
	cleanup = func() {}
	if v := cmd.Context().Value(loggerKey{}); v != nil {
		return cleanup, nil
	}
	verbosity, err := cmd.Flags().GetInt("log-verbosity")
	if err != nil {
		return nil, err
	}
	logFile, err := cmd.Flags().GetString("log-file")
	if err != nil {
		return nil, err
	}
	var std stdr.StdLogger
	if logFile != "" {
		f, err := os.Create(logFile)
		if err != nil {
			return nil, err
		}
		std = log.New(f, "", log.LstdFlags)
		cleanup = func() {
			f.Close()
		}
	} else {
		std = log.New(cmd.ErrOrStderr(), "", log.LstdFlags)
	}
	logger := stdr.New(std).V(1)
	stdr.SetVerbosity(verbosity)
	cmd.SetContext(SetLogger(cmd.Context(), &logger))
	return cleanup, nil
}
