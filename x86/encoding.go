// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Encoding includes the textual description of
// an x86 instruction's encoding, as described
// in the Intel and AMD manuals, plus a structured
// representation of the same information.
type Encoding struct {
	// The textual representation.
	Syntax string

	// Legacy prefixes.
	NoVEXPrefixes   bool            // Whether non-mandatory prefixes 66, F2, and F3 are forbidden.
	NoRepPrefixes   bool            // Whether non-mandatory prefixes F2 and F3 are forbidden.
	MandatoryPrefix MandatoryPrefix // Any mandatory 66, F2, or F3 prefix that selects the instruction.

	// REX prefixes.
	REX_W bool // Whether a REX prefix is always required with REX.W set.

	// VEX, XOP, and EVEX prefixes.
	VEX       bool  // Whether a VEX prefix is always required.
	XOP       bool  // Whether an XOP prefix is always required.
	EVEX      bool  // Whether an EVEX prefix is always required.
	VEX_L     bool  // Any VEX.L value.
	EVEX_Lp   bool  // Any EVEX.L' value.
	VEX_LIG   bool  // Whether to ignore VEX.L and EVEX.L'.
	VEXpp     uint8 // Any VEX.pp value that should be included (2 bits).
	VEXm_mmmm uint8 // Any VEX.m_mmmm or XOP map_select value (5 bits).
	VEX_W     bool  // Any VEX.W value.
	VEX_WIG   bool  // Whether to ignore VEX.W.
	VEXis4    bool  // Whether a register is expected in the 4-bit immediate.

	// Opcode data.
	Opcode           []byte // One or more opcode bytes, including any escape bytes.
	RegisterModifier int    // The opcode byte index where the register is encoded without a ModR/M byte, plus one. Zero for no modifier.

	// Code offset after the opcode.
	CodeOffset bool // Whether a code offset is expected.

	// ModR/M byte.
	ModRM    bool  // Whether a ModR/M byte is always required.
	ModRMmod uint8 // Any fixed value used as the ModR/M byte's mod field, plus one. Zero for no value. Five for any value except 0b11.
	ModRMreg uint8 // Any fixed value used as the ModR/M byte's reg field, plus one. Zero for no value.
	ModRMrm  uint8 // Any fixed value used as the ModR/M byte's r/m field, plus one. Zero for no value.

	// Vector SIB.
	VSIB bool // Whether the instruction uses the Vector SIB.
}

// Map returns the opcode map containing the
// instruction and the final opcode byte.
//
// For legacy encodings, the map is taken
// from the 0F, 0F 38, and 0F 3A escape
// bytes at the start of the opcode.
func (e *Encoding) Map() (Map, byte) {
	last := e.Opcode[len(e.Opcode)-1]
	if e.VEX || e.XOP || e.EVEX {
		return Map(e.VEXm_mmmm), last
	}

	switch {
	case len(e.Opcode) >= 3 && e.Opcode[0] == 0x0f && e.Opcode[1] == 0x38:
		return Map0F38, last
	case len(e.Opcode) >= 3 && e.Opcode[0] == 0x0f && e.Opcode[1] == 0x3a:
		return Map0F3A, last
	case len(e.Opcode) >= 2 && e.Opcode[0] == 0x0f:
		return Map0F, last
	}

	return MapLegacy, last
}

// Prefix returns the mandatory prefix that
// selects the instruction, either as a
// legacy prefix or in the pp field.
func (e *Encoding) Prefix() MandatoryPrefix {
	if e.VEX || e.XOP || e.EVEX {
		return MandatoryPrefix(e.VEXpp)
	}

	return e.MandatoryPrefix
}

// VectorSize returns the instruction's vector size,
// if any. Encodings that ignore the vector length
// return zero.
func (e *Encoding) VectorSize() int {
	if !e.VEX && !e.XOP && !e.EVEX {
		return 0
	}

	if e.VEX_LIG {
		return 0
	}

	L := e.VEX_L
	Lp := e.EVEX_Lp
	switch {
	case !L && !Lp:
		return 128
	case L && !Lp:
		return 256
	case !L && Lp:
		return 512
	default:
		panic(fmt.Sprintf("invalid VEX encoding: L: %v, L': %v", L, Lp))
	}
}

// MachineCodeMatch indicates whether a machine code
// sequence matched an instruction encoding, according
// to Encoding.MatchesMachineCode.
type MachineCodeMatch uint8

const (
	Match MachineCodeMatch = iota
	MismatchNoMachineCode
	MismatchNoOpcode
	MismatchForbiddenVEXPrefix
	MismatchForbiddenRepPrefix
	MismatchMissingMandatoryPrefix
	MismatchMissingREXPrefix
	MismatchMissingREX_W
	MismatchMissingVEXPrefix
	MismatchTruncatedVEXPrefix
	MismatchUnexpected2ByteVEXPrefix
	MismatchMissingVEXm_mmmm
	MismatchMissingVEX_W
	MismatchMissingVEX_L
	MismatchMissingVEXpp
	MismatchMissingXOPPrefix
	MismatchMissingEVEXPrefix
	MismatchTruncatedEVEXPrefix
	MismatchWrongOpcode
	MismatchWrongModifiedOpcode
	MismatchMissingModRM
	MismatchWrongModRMmod
	MismatchWrongModRMreg
)

func (m MachineCodeMatch) String() string {
	switch m {
	case Match:
		return "match"
	case MismatchNoMachineCode:
		return "no machine code"
	case MismatchNoOpcode:
		return "no opcode"
	case MismatchForbiddenVEXPrefix:
		return "forbidden VEX prefix"
	case MismatchForbiddenRepPrefix:
		return "forbidden rep prefix"
	case MismatchMissingMandatoryPrefix:
		return "missing mandatory prefix"
	case MismatchMissingREXPrefix:
		return "missing REX prefix"
	case MismatchMissingREX_W:
		return "missing REX.W"
	case MismatchMissingVEXPrefix:
		return "missing VEX prefix"
	case MismatchTruncatedVEXPrefix:
		return "truncated VEX prefix"
	case MismatchUnexpected2ByteVEXPrefix:
		return "unexpected 2-byte VEX prefix"
	case MismatchMissingVEXm_mmmm:
		return "missing VEX.m_mmmm"
	case MismatchMissingVEX_W:
		return "missing VEX.W"
	case MismatchMissingVEX_L:
		return "missing VEX.L"
	case MismatchMissingVEXpp:
		return "missing VEX.pp"
	case MismatchMissingXOPPrefix:
		return "missing XOP prefix"
	case MismatchMissingEVEXPrefix:
		return "missing EVEX prefix"
	case MismatchTruncatedEVEXPrefix:
		return "truncated EVEX prefix"
	case MismatchWrongOpcode:
		return "wrong opcode"
	case MismatchWrongModifiedOpcode:
		return "wrong modified opcode"
	case MismatchMissingModRM:
		return "missing Mod/RM byte"
	case MismatchWrongModRMmod:
		return "wrong ModR/M.mod"
	case MismatchWrongModRMreg:
		return "wrong ModR/M.reg"
	default:
		return fmt.Sprintf("MachineCodeMatch(%d)", m)
	}
}

// MatchesMachineCode indicates whether the given
// machine code could be produced by encoding this
// instruction. This is not a perfect process, as
// it only uses the prefixes, opcodes, and any fixed
// ModR/M fields, so missing or incorrect operands
// will not be identified. The machine code is
// assumed to be 64-bit code.
func (e *Encoding) MatchesMachineCode(code []byte) MachineCodeMatch {
	if len(code) == 0 {
		return MismatchNoMachineCode
	}

	// Isolate the legacy prefixes.
	var prefixes []Prefix
	for len(code) > 0 && IsLegacyPrefix(code[0]) {
		prefixes = append(prefixes, Prefix(code[0]))
		code = code[1:]
	}

	vectorised := e.VEX || e.XOP || e.EVEX
	for _, prefix := range prefixes {
		switch prefix {
		case PrefixOperandSize, PrefixRepeatNot, PrefixRepeat:
			if vectorised || (e.NoVEXPrefixes && e.MandatoryPrefix == MandatoryNone) {
				return MismatchForbiddenVEXPrefix
			}
		}

		switch prefix {
		case PrefixRepeatNot, PrefixRepeat:
			if e.NoRepPrefixes {
				return MismatchForbiddenRepPrefix
			}
		}
	}

	if e.MandatoryPrefix != MandatoryNone {
		want := PrefixOperandSize
		switch e.MandatoryPrefix {
		case MandatoryF2:
			want = PrefixRepeatNot
		case MandatoryF3:
			want = PrefixRepeat
		}

		ok := false
		for _, got := range prefixes {
			if got == want {
				ok = true
				break
			}
		}

		if !ok {
			return MismatchMissingMandatoryPrefix
		}
	}

	if len(code) == 0 {
		return MismatchNoOpcode
	}

	// Legacy opcodes may be preceded
	// by a REX prefix.
	if !vectorised {
		if IsREX(code[0]) && (e.RegisterModifier == 0 || e.Opcode[0]>>4 != 4) {
			rex := REX(code[0])
			code = code[1:]
			if e.REX_W && !rex.W() {
				return MismatchMissingREX_W
			}
		} else if e.REX_W {
			return MismatchMissingREXPrefix
		}
	}

	// Check any VEX, XOP, or EVEX prefix,
	// stripping the escape bytes from the
	// opcode we expect.
	opcode := e.Opcode
	switch {
	case e.EVEX:
		if code[0] != 0x62 {
			return MismatchMissingEVEXPrefix
		}

		if len(code) < 5 {
			return MismatchTruncatedEVEXPrefix
		}

		evex := EVEX{code[1], code[2], code[3]}
		code = code[4:]
		if evex.MM() != e.VEXm_mmmm {
			return MismatchMissingVEXm_mmmm
		}

		if !e.VEX_WIG && evex.W() != e.VEX_W {
			return MismatchMissingVEX_W
		}

		if !e.VEX_LIG && ((evex.LL()&1 == 1) != e.VEX_L || (evex.LL()>>1 == 1) != e.EVEX_Lp) {
			return MismatchMissingVEX_L
		}

		if evex.PP() != e.VEXpp {
			return MismatchMissingVEXpp
		}
	case e.VEX, e.XOP:
		var vex VEX
		switch {
		case e.XOP && code[0] != 0x8f:
			return MismatchMissingXOPPrefix
		case e.VEX && code[0] == 0xc4, e.XOP:
			if len(code) < 4 {
				return MismatchTruncatedVEXPrefix
			}

			vex = VEX{code[1], code[2]}
			code = code[3:]
		case e.VEX && code[0] == 0xc5:
			if len(code) < 3 {
				return MismatchTruncatedVEXPrefix
			}

			if (e.VEX_W && !e.VEX_WIG) || e.VEXm_mmmm != byte(Map0F) {
				return MismatchUnexpected2ByteVEXPrefix
			}

			vex = VEX2(code[1])
			code = code[2:]
		default:
			return MismatchMissingVEXPrefix
		}

		if vex.M_MMMM() != e.VEXm_mmmm {
			return MismatchMissingVEXm_mmmm
		}

		if !e.VEX_WIG && vex.W() != e.VEX_W {
			return MismatchMissingVEX_W
		}

		if !e.VEX_LIG && vex.L() != e.VEX_L {
			return MismatchMissingVEX_L
		}

		if vex.PP() != e.VEXpp {
			return MismatchMissingVEXpp
		}
	}

	// Finally, we check the opcode, which
	// may have a modifier.
	if len(code) < len(opcode) {
		return MismatchNoOpcode
	}

	got := code[:len(opcode)]
	code = code[len(opcode):]
	if e.RegisterModifier != 0 {
		// Any opcode bytes before the
		// modifier should still be the
		// same.
		idx := e.RegisterModifier - 1
		if !bytes.Equal(got[:idx], opcode[:idx]) {
			return MismatchWrongOpcode
		}

		// The modified opcode byte can
		// be up to 7 more than the base.
		if got[idx] < opcode[idx] || opcode[idx]+7 < got[idx] {
			return MismatchWrongModifiedOpcode
		}
	} else if !bytes.Equal(got, opcode) {
		return MismatchWrongOpcode
	}

	if !e.ModRM {
		return Match
	}

	if len(code) == 0 {
		return MismatchMissingModRM
	}

	modrm := ModRM(code[0])
	switch e.ModRMmod {
	case 0:
	case 5:
		if modrm.IsRegister() {
			return MismatchWrongModRMmod
		}
	default:
		if modrm.Mod() != e.ModRMmod-1 {
			return MismatchWrongModRMmod
		}
	}

	if e.ModRMreg != 0 && modrm.Reg() != e.ModRMreg-1 {
		return MismatchWrongModRMreg
	}

	return Match
}

// ParseEncoding processes the textual description
// of an x86 instruction's encoding, producing
// a structured representation of the same
// information.
//
// In addition to the syntax in the Intel manuals,
// XOP prefixes are written like VEX prefixes, with
// the map select as 08, 09, or 0A:
//
//	XOP.128.09.W0 C1 /r
func ParseEncoding(s string) (*Encoding, error) {
	// From the Intel x86 manuals, Volume 2A, section
	// 3.1.1.1:
	//
	// - NP: Indicates the use of 66/F2/F3 prefixes (beyond those already part of the instructions opcode) are not
	//   allowed with the instruction.
	// - NFx: Indicates the use of F2/F3 prefixes (beyond those already part of the instructions opcode) are not
	//   allowed with the instruction.
	// - REX.W: Indicates the use of a REX prefix that affects operand size or instruction semantics.
	// - /digit: A digit between 0 and 7 indicates that the ModR/M byte of the instruction uses only the r/m (register
	//   or memory) operand. The reg field contains the digit that provides an extension to the instruction's opcode.
	// - /r: Indicates that the ModR/M byte of the instruction contains a register operand and an r/m operand.
	// - cb, cw, cd: A 1-byte (cb), 2-byte (cw), or 4-byte (cd) value following the opcode, used as a code offset.
	// - ib, iw, id, io: A 1-byte (ib), 2-byte (iw), 4-byte (id) or 8-byte (io) immediate operand.
	// - +rb, +rw, +rd, +ro: The lower 3 bits of the opcode byte encode the register operand without a ModR/M byte.

	e := &Encoding{
		Syntax: s,
	}

	// Start with any prefixes.
	parts := strings.Fields(s)
	if len(parts) == 0 {
		return nil, fmt.Errorf("bad encoding syntax %q: no opcode", s)
	}

prefixes:
	for i, clause := range parts {
		switch clause {
		case "NP":
			e.NoVEXPrefixes = true
		case "NFx":
			e.NoRepPrefixes = true
		case "REX.W":
			e.REX_W = true
		case "+":
		case "66": // Operand size.
			e.MandatoryPrefix = Mandatory66
		case "F3": // REP or REPE/REPZ.
			e.MandatoryPrefix = MandatoryF3
		case "F2": // REPNE/REPNZ.
			e.MandatoryPrefix = MandatoryF2
		default:
			parts = parts[i:]
			break prefixes
		}

		// A prefix byte with nothing after
		// it is the opcode.
		if i == len(parts)-1 && e.MandatoryPrefix != MandatoryNone {
			return nil, fmt.Errorf("bad encoding syntax %q: missing opcode after prefixes", s)
		}
	}

	// Parse the remaining encoding
	// to identify the different fields.
	for _, clause := range parts {
		if strings.HasSuffix(clause, "+rb") || strings.HasSuffix(clause, "+rw") ||
			strings.HasSuffix(clause, "+rd") || strings.HasSuffix(clause, "+ro") {
			opcode, _, _ := strings.Cut(clause, "+")
			b, err := strconv.ParseUint(opcode, 16, 8)
			if err != nil {
				return nil, fmt.Errorf("invalid opcode register modifier clause %q: %v", clause, err)
			}

			if b&0b111 != 0 {
				return nil, fmt.Errorf("invalid opcode register modifier clause %q: low bits set", clause)
			}

			e.Opcode = append(e.Opcode, byte(b))
			e.RegisterModifier = len(e.Opcode)
			continue
		}

		// Handle VEX, XOP, and EVEX clauses,
		// as they're complex.
		family, _, _ := strings.Cut(clause, ".")
		switch family {
		case "VEX", "XOP", "EVEX":
			err := e.parseVectorClause(family, clause)
			if err != nil {
				return nil, err
			}

			continue
		}

		// Handle fixed ModR/M clauses.
		if strings.Contains(clause, ":") {
			err := e.parseModRMClause(clause)
			if err != nil {
				return nil, err
			}

			continue
		}

		switch clause {
		case "/0", "/1", "/2", "/3", "/4", "/5", "/6", "/7":
			digit := byte(clause[1] - '0')
			e.ModRMreg = digit + 1
			e.ModRM = true
		case "/r":
			e.ModRM = true
		case "cb", "cw", "cd":
			if e.CodeOffset {
				return nil, fmt.Errorf("invalid encoding clause: unexpected second code offset clause %q", clause)
			}

			e.CodeOffset = true
		case "ib", "iw", "id", "io":
			// Nothing to do here, as
			// the information is also
			// in the operands.
		case "/is4":
			if e.VEXis4 {
				return nil, fmt.Errorf("invalid encoding clause: unexpected second %q clause", clause)
			}

			e.VEXis4 = true
		case "/vsib":
			e.VSIB = true
			e.ModRM = true
		default:
			b, err := strconv.ParseUint(clause, 16, 8)
			if err != nil {
				return nil, fmt.Errorf("bad encoding syntax %q: failed to handle encoding clause %q", s, clause)
			}

			e.Opcode = append(e.Opcode, byte(b))
		}
	}

	if len(e.Opcode) == 0 {
		return nil, fmt.Errorf("bad encoding syntax %q: no opcode", s)
	}

	vectorised := e.VEX || e.XOP || e.EVEX
	if vectorised && len(e.Opcode) != 1 {
		return nil, fmt.Errorf("bad encoding syntax %q: %d opcode bytes after vector prefix", s, len(e.Opcode))
	}

	if e.VEXis4 && !e.VEX && !e.XOP {
		return nil, fmt.Errorf("bad encoding syntax %q: /is4 without VEX or XOP prefix", s)
	}

	return e, nil
}

func (e *Encoding) parseVectorClause(family, clause string) error {
	switch family {
	case "VEX":
		e.VEX = true
	case "XOP":
		e.XOP = true
	case "EVEX":
		e.EVEX = true
	}

	parts := strings.Split(clause, ".")
	for _, part := range parts[1:] {
		switch part {
		case "NDS", "NDD", "DDS":
			// These are also encoded in
			// the operand details.
		case "128", "L0", "LZ":
			e.VEX_L = false
			e.EVEX_Lp = false
		case "256", "L1":
			e.VEX_L = true
			e.EVEX_Lp = false
		case "512":
			if !e.EVEX {
				return fmt.Errorf("invalid encoding clause %s: 512-bit vector without EVEX", clause)
			}

			e.VEX_L = false
			e.EVEX_Lp = true
		case "LIG", "LLIG":
			e.VEX_LIG = true
		case "NP":
			e.VEXpp = 0b00
		case "66":
			e.VEXpp = 0b01
		case "F3":
			e.VEXpp = 0b10
		case "F2":
			e.VEXpp = 0b11
		case "0F":
			e.VEXm_mmmm = byte(Map0F)
		case "0F38":
			e.VEXm_mmmm = byte(Map0F38)
		case "0F3A":
			e.VEXm_mmmm = byte(Map0F3A)
		case "08":
			e.VEXm_mmmm = byte(MapXOP8)
		case "09":
			e.VEXm_mmmm = byte(MapXOP9)
		case "0A":
			e.VEXm_mmmm = byte(MapXOPA)
		case "WIG":
			e.VEX_WIG = true
			e.VEX_W = false
		case "W0":
			e.VEX_W = false
		case "W1":
			e.VEX_W = true
		default:
			return fmt.Errorf("invalid encoding clause %s: bad %s clause %q", clause, family, part)
		}
	}

	// Check the map suits the family.
	m := Map(e.VEXm_mmmm)
	switch {
	case m == MapLegacy:
		return fmt.Errorf("invalid encoding clause %s: missing %s map", clause, family)
	case e.XOP && m < MapXOP8:
		return fmt.Errorf("invalid encoding clause %s: XOP map %s", clause, m)
	case !e.XOP && m >= MapXOP8:
		return fmt.Errorf("invalid encoding clause %s: %s map %s", clause, family, m)
	}

	return nil
}

func (e *Encoding) parseModRMClause(clause string) error {
	fields := strings.Split(clause, ":")
	if len(fields) != 3 {
		return fmt.Errorf("invalid encoding clause %s: failed to parse ModR/M fields", clause)
	}

	switch fields[0] {
	case "11":
		e.ModRMmod = 0b11 + 1
	case "!(11)":
		e.ModRMmod = 5 // Any value except 0b11.
	default:
		return fmt.Errorf("invalid encoding clause %s: invalid ModR/M.mod field %q", clause, fields[0])
	}

	parse := func(name, field, any string) (uint8, error) {
		if field == any {
			return 0, nil
		}

		n, err := strconv.ParseUint(field, 2, 8)
		if err != nil {
			return 0, fmt.Errorf("invalid encoding clause %s: invalid ModR/M.%s field %q: %v", clause, name, field, err)
		}

		if n > 0b111 {
			return 0, fmt.Errorf("invalid encoding clause %s: invalid ModR/M.%s field %q: exceeds bounds", clause, name, field)
		}

		return uint8(n) + 1, nil
	}

	var err error
	e.ModRMreg, err = parse("reg", fields[1], "rrr")
	if err != nil {
		return err
	}

	e.ModRMrm, err = parse("r/m", fields[2], "bbb")
	if err != nil {
		return err
	}

	e.ModRM = true

	return nil
}
