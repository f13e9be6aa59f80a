// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

import (
	"fmt"
)

//go:generate go run ../internal/optable/gen-codes -out codes.go ../internal/optable/opcodes.csv

// Code identifies one instruction form, such
// as Cmovs_r16_rm16. Each row of the opcode
// table has its own Code. The zero value,
// INVALID, is used for undecodable input.
type Code uint16

// NumCodes is the number of instruction
// codes, including INVALID.
const NumCodes = len(codeNames)

func (c Code) String() string {
	if int(c) < len(codeNames) {
		return codeNames[c]
	}

	return fmt.Sprintf("Code(%d)", c)
}

// CodesByName maps each code's name to
// the code.
var CodesByName = make(map[string]Code, NumCodes)

func init() {
	for i, name := range codeNames {
		CodesByName[name] = Code(i)
	}
}

func (c Code) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Code) UnmarshalText(text []byte) error {
	got, ok := CodesByName[string(text)]
	if !ok {
		return fmt.Errorf("invalid instruction code %q", text)
	}

	*c = got

	return nil
}
