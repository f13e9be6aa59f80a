// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

import (
	"encoding/hex"
	"encoding/json"
)

type jsonEncoding struct {
	// The textual representation.
	Syntax string `json:"syntax"`

	// Legacy prefixes.
	NoVEXPrefixes   bool   `json:"noVexPrefixes,omitempty"`
	NoRepPrefixes   bool   `json:"noRepPrefixes,omitempty"`
	MandatoryPrefix string `json:"mandatoryPrefix,omitempty"`

	// REX prefixes.
	REX_W bool `json:"rexW,omitempty"`

	// VEX, XOP, and EVEX prefixes.
	VEX       bool  `json:"vex,omitempty"`
	XOP       bool  `json:"xop,omitempty"`
	EVEX      bool  `json:"evex,omitempty"`
	VEX_L     bool  `json:"vexL,omitempty"`
	EVEX_Lp   bool  `json:"evexLp,omitempty"`
	VEX_LIG   bool  `json:"vexLig,omitempty"`
	VEXpp     uint8 `json:"vexPp,omitempty"`
	VEXm_mmmm uint8 `json:"vexMmmmm,omitempty"`
	VEX_W     bool  `json:"vexW,omitempty"`
	VEX_WIG   bool  `json:"vexWig,omitempty"`
	VEXis4    bool  `json:"vexIs4,omitempty"`

	// Opcode data.
	Opcode           string `json:"opcode"`
	RegisterModifier int    `json:"registerModifier,omitempty"`

	// Code offset after the opcode.
	CodeOffset bool `json:"codeOffset,omitempty"`

	// ModR/M byte.
	ModRM    bool  `json:"modRm,omitempty"`
	ModRMmod uint8 `json:"modRmMod,omitempty"`
	ModRMreg uint8 `json:"modRmReg,omitempty"`
	ModRMrm  uint8 `json:"modRmRm,omitempty"`

	// Vector SIB.
	VSIB bool `json:"vsib,omitempty"`
}

// MarshalJSON encodes the encoding with
// its opcode bytes in hexadecimal.
func (e *Encoding) MarshalJSON() ([]byte, error) {
	j := jsonEncoding{
		Syntax: e.Syntax,

		NoVEXPrefixes: e.NoVEXPrefixes,
		NoRepPrefixes: e.NoRepPrefixes,
		// MandatoryPrefix is handled separately.

		REX_W: e.REX_W,

		VEX:       e.VEX,
		XOP:       e.XOP,
		EVEX:      e.EVEX,
		VEX_L:     e.VEX_L,
		EVEX_Lp:   e.EVEX_Lp,
		VEX_LIG:   e.VEX_LIG,
		VEXpp:     e.VEXpp,
		VEXm_mmmm: e.VEXm_mmmm,
		VEX_W:     e.VEX_W,
		VEX_WIG:   e.VEX_WIG,
		VEXis4:    e.VEXis4,

		Opcode:           hex.EncodeToString(e.Opcode),
		RegisterModifier: e.RegisterModifier,

		CodeOffset: e.CodeOffset,

		ModRM:    e.ModRM,
		ModRMmod: e.ModRMmod,
		ModRMreg: e.ModRMreg,
		ModRMrm:  e.ModRMrm,

		VSIB: e.VSIB,
	}

	if e.MandatoryPrefix != MandatoryNone {
		j.MandatoryPrefix = e.MandatoryPrefix.String()
	}

	return json.Marshal(j)
}
