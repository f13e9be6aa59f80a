// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package optable

import (
	"errors"
	"fmt"
)

// Error describes a problem with one
// row of the opcode table.
type Error struct {
	Row  int    // The line number in the CSV data, or zero.
	Code string // The instruction code on that row, if known.
	Err  string // The error message.
}

func (err *Error) Error() string {
	switch {
	case err.Row == 0:
		return err.Err
	case err.Code == "":
		return fmt.Sprintf("line %d: %s", err.Row, err.Err)
	default:
		return fmt.Sprintf("line %d (%s): %s", err.Row, err.Code, err.Err)
	}
}

// Errorf returns an *Error for the given
// row. If the last argument is itself an
// *Error, its position is kept.
func Errorf(row int, code string, format string, v ...any) error {
	if len(v) != 0 {
		last, ok := v[len(v)-1].(error)
		var e *Error
		if ok && errors.As(last, &e) {
			v[len(v)-1] = e.Err
			if e.Row != 0 {
				row = e.Row
			}

			if e.Code != "" {
				code = e.Code
			}
		}
	}

	return &Error{
		Row:  row,
		Code: code,
		Err:  fmt.Sprintf(format, v...),
	}
}
