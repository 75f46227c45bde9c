// SPDX-License-Identifier: Apache-2.0
// Copyright © 2025 the dsv authors

package errors

import (
	"errors"
	"fmt"
)

// Error pairs a message with a wrapped cause.
type Error struct {
	msg string
	err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.msg, e.err)
}

func (e *Error) Unwrap() error {
	return e.err
}

// Wrap returns err annotated with msg.
func Wrap(msg string, err error) *Error {
	return &Error{msg: msg, err: err}
}

func Unwrap(err error) error {
	return errors.Unwrap(err)
}

// Contains reports whether err or any error in its unwrap chain has the same
// message as v, which may be a string or an error.
func Contains(err error, v interface{}) bool {
	if v == nil {
		return err == nil
	}
	var s string
	switch t := v.(type) {
	case string:
		s = t
	case error:
		s = t.Error()
	default:
		return false
	}
	for err != nil {
		if err.Error() == s {
			return true
		}
		err = Unwrap(err)
	}
	return false
}
