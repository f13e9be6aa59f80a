// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package decoder

import (
	"errors"
	"fmt"
)

var (
	// ErrBitness is returned by New for
	// a CPU mode other than 16, 32, or 64.
	ErrBitness = errors.New("bitness must be 16, 32, or 64")

	// ErrNoMoreBytes is returned by Decode
	// once every byte has been decoded.
	ErrNoMoreBytes = errors.New("no more bytes")

	ErrTruncated      = errors.New("truncated instruction")
	ErrTooLong        = errors.New("instruction longer than 15 bytes")
	ErrInvalidOpcode  = errors.New("invalid opcode")
	ErrInvalidPrefix  = errors.New("invalid prefix")
	ErrInvalidOperand = errors.New("invalid operand")
)

// DecodeError describes an instruction
// that could not be decoded.
//
// Length is the number of bytes the
// decoder skipped. It is the full
// length of the instruction whenever
// the instruction could be read to its
// end, and the number of bytes read
// otherwise.
type DecodeError struct {
	Offset int    // The instruction's offset in the data.
	IP     uint64 // The instruction's address.
	Length int
	Err    error  // One of the sentinel errors.
	Reason string // Any further detail.
}

func (e *DecodeError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("offset %d (ip %#x): %v", e.Offset, e.IP, e.Err)
	}

	return fmt.Sprintf("offset %d (ip %#x): %v: %s", e.Offset, e.IP, e.Err, e.Reason)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
