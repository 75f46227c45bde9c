// SPDX-License-Identifier: Apache-2.0
// Copyright © 2025 the dsv authors

package testutils

import (
	"math/rand"
	"os"
	"path/filepath"
	"strings"
)

const letterBytes = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// RandomAlphaNumericString returns a pseudo-random string for test fixtures.
// Not for use outside of tests.
func RandomAlphaNumericString(length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = letterBytes[rand.Intn(len(letterBytes))]
	}
	return string(b)
}

// TempDir is a light wrapper of os.MkdirTemp which places the dir under the
// RUNNER_TEMP env var if it is specified. This is necessary for Github
// action to work correctly.
func TempDir(dir, pattern string) (string, error) {
	if v := os.Getenv("RUNNER_TEMP"); v != "" && !strings.HasPrefix(dir, "/") {
		dir = filepath.Join(v, dir)
	}
	return os.MkdirTemp(dir, pattern)
}

// TempFile is a light wrapper of os.CreateTemp which places the file under
// the RUNNER_TEMP env var if it is specified.
func TempFile(dir, pattern string) (*os.File, error) {
	if v := os.Getenv("RUNNER_TEMP"); v != "" && !strings.HasPrefix(dir, "/") {
		dir = filepath.Join(v, dir)
	}
	return os.CreateTemp(dir, pattern)
}
