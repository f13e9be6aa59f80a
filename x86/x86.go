// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

// Package x86 contains the shared vocabulary of
// the x86 instruction decoder: registers, prefix
// bit fields, instruction encodings, memory sizes,
// and the set of instruction codes.
package x86

import (
	"fmt"
)

// MaxInstructionLength is the architectural
// limit on the length of one instruction.
const MaxInstructionLength = 15

// Prefix represents a legacy x86 prefix.
type Prefix byte

const (
	PrefixLock        Prefix = 0xf0
	PrefixRepeatNot   Prefix = 0xf2
	PrefixRepeat      Prefix = 0xf3
	PrefixCS          Prefix = 0x2e
	PrefixSS          Prefix = 0x36
	PrefixDS          Prefix = 0x3e
	PrefixES          Prefix = 0x26
	PrefixFS          Prefix = 0x64
	PrefixGS          Prefix = 0x65
	PrefixOperandSize Prefix = 0x66
	PrefixAddressSize Prefix = 0x67
)

// IsLegacyPrefix reports whether b is one of
// the eleven legacy prefix bytes.
func IsLegacyPrefix(b byte) bool {
	switch Prefix(b) {
	case PrefixLock, PrefixRepeatNot, PrefixRepeat,
		PrefixCS, PrefixSS, PrefixDS, PrefixES, PrefixFS, PrefixGS,
		PrefixOperandSize, PrefixAddressSize:
		return true
	}

	return false
}

// Segment returns the segment register
// selected by a segment override prefix,
// or nil.
func (p Prefix) Segment() *Register {
	switch p {
	case PrefixES:
		return ES
	case PrefixCS:
		return CS
	case PrefixSS:
		return SS
	case PrefixDS:
		return DS
	case PrefixFS:
		return FS
	case PrefixGS:
		return GS
	}

	return nil
}

func (p Prefix) String() string {
	switch p {
	case PrefixLock:
		return "lock"
	case PrefixRepeatNot:
		return "repne"
	case PrefixRepeat:
		return "rep/repe"
	case PrefixCS:
		return "cs"
	case PrefixSS:
		return "ss"
	case PrefixDS:
		return "ds"
	case PrefixES:
		return "es"
	case PrefixFS:
		return "fs"
	case PrefixGS:
		return "gs"
	case PrefixOperandSize:
		return "data16/data32"
	case PrefixAddressSize:
		return "addr16/addr32"
	default:
		return fmt.Sprintf("Prefix(%#02x)", byte(p))
	}
}

// MandatoryPrefix is the SIMD prefix that
// selects an instruction, either as a legacy
// 66, F3, or F2 byte or as a VEX/XOP/EVEX pp
// field. The values match the pp encoding.
type MandatoryPrefix uint8

const (
	MandatoryNone MandatoryPrefix = iota
	Mandatory66
	MandatoryF3
	MandatoryF2
)

func (p MandatoryPrefix) String() string {
	switch p {
	case MandatoryNone:
		return "NP"
	case Mandatory66:
		return "66"
	case MandatoryF3:
		return "F3"
	case MandatoryF2:
		return "F2"
	default:
		return fmt.Sprintf("MandatoryPrefix(%d)", p)
	}
}

// Map identifies an opcode map. The values
// match the VEX m-mmmm and XOP map-select
// encodings.
type Map uint8

const (
	MapLegacy Map = 0
	Map0F     Map = 1
	Map0F38   Map = 2
	Map0F3A   Map = 3
	MapXOP8   Map = 8
	MapXOP9   Map = 9
	MapXOPA   Map = 10
)

func (m Map) String() string {
	switch m {
	case MapLegacy:
		return "legacy"
	case Map0F:
		return "0F"
	case Map0F38:
		return "0F38"
	case Map0F3A:
		return "0F3A"
	case MapXOP8:
		return "XOP8"
	case MapXOP9:
		return "XOP9"
	case MapXOPA:
		return "XOPA"
	default:
		return fmt.Sprintf("Map(%d)", m)
	}
}

// TupleType contains an EVEX instruction
// tuple kind, as defined in Intel x86,
// Volume 2A, Section 2.6.5.
type TupleType uint8

const (
	TupleNone TupleType = iota
	TupleFull
	TupleHalf
	TupleFullMem
	Tuple1Scalar
	Tuple1Fixed
	Tuple2
	Tuple4
	Tuple8
	TupleHalfMem
	TupleQuarterMem
	TupleEighthMem
	TupleMem128
	TupleMOVDDUP
)

var TupleTypes = map[string]TupleType{
	"":              TupleNone,
	"None":          TupleNone,
	"Full":          TupleFull,
	"Half":          TupleHalf,
	"Full Mem":      TupleFullMem,
	"Tuple1 Scalar": Tuple1Scalar,
	"Tuple1 Fixed":  Tuple1Fixed,
	"Tuple2":        Tuple2,
	"Tuple4":        Tuple4,
	"Tuple8":        Tuple8,
	"Half Mem":      TupleHalfMem,
	"Quarter Mem":   TupleQuarterMem,
	"Eighth Mem":    TupleEighthMem,
	"Mem128":        TupleMem128,
	"MOVDDUP":       TupleMOVDDUP,
}

func (t TupleType) String() string {
	switch t {
	case TupleNone:
		return "None"
	case TupleFull:
		return "Full"
	case TupleHalf:
		return "Half"
	case TupleFullMem:
		return "Full Mem"
	case Tuple1Scalar:
		return "Tuple1 Scalar"
	case Tuple1Fixed:
		return "Tuple1 Fixed"
	case Tuple2:
		return "Tuple2"
	case Tuple4:
		return "Tuple4"
	case Tuple8:
		return "Tuple8"
	case TupleHalfMem:
		return "Half Mem"
	case TupleQuarterMem:
		return "Quarter Mem"
	case TupleEighthMem:
		return "Eighth Mem"
	case TupleMem128:
		return "Mem128"
	case TupleMOVDDUP:
		return "MOVDDUP"
	default:
		return fmt.Sprintf("TupleType(%d)", t)
	}
}

// Disp8N returns the scaling factor N that
// an EVEX-encoded 8-bit displacement is
// multiplied by, as described in Intel x86
// manuals, Volume 2A, Section 2.7.5.
//
// vectorBits is the instruction's vector
// length, w is EVEX.W, broadcast is EVEX.b
// on a memory operand, and elementBytes is
// the size of the memory operand's element,
// which is used by Tuple1 Scalar.
func (t TupleType) Disp8N(vectorBits int, w, broadcast bool, elementBytes int) int {
	inputSize := 4
	if w {
		inputSize = 8
	}

	vectorBytes := vectorBits / 8
	switch t {
	case TupleFull:
		if broadcast {
			return inputSize
		}

		return vectorBytes
	case TupleHalf:
		if broadcast {
			return 4
		}

		return vectorBytes / 2
	case TupleFullMem:
		return vectorBytes
	case Tuple1Scalar:
		if elementBytes == 0 {
			return 1
		}

		return elementBytes
	case Tuple1Fixed:
		return inputSize
	case Tuple2:
		return inputSize * 2
	case Tuple4:
		return inputSize * 4
	case Tuple8:
		return 32
	case TupleHalfMem:
		return vectorBytes / 2
	case TupleQuarterMem:
		return vectorBytes / 4
	case TupleEighthMem:
		return vectorBytes / 8
	case TupleMem128:
		return 16
	case TupleMOVDDUP:
		if vectorBits == 128 {
			return 8
		}

		return vectorBytes
	}

	return 1
}

// REX provides helper functionality
// for reading a REX prefix byte.
type REX byte

// Intel x86 manuals, Volume 2A,
// Section 2.2.1.2, Table 2-4.
//
// 	| 7  6  5  4   3  2  1  0 |
// 	+-------------------------|
// 	| 0  1  0  0   W  R  X  B |

// IsREX reports whether b is a REX prefix
// byte. It only is in 64-bit mode.
func IsREX(b byte) bool { return b&0xf0 == 0x40 }

func (r REX) W() bool { return ((r >> 3) & 1) == 1 }
func (r REX) R() bool { return ((r >> 2) & 1) == 1 }
func (r REX) X() bool { return ((r >> 1) & 1) == 1 }
func (r REX) B() bool { return ((r >> 0) & 1) == 1 }

func (r REX) String() string {
	out := []byte("0100WRXB")
	for i := 4; i < 8; i++ {
		if (r>>(7-i))&1 == 0 {
			out[i] = '0'
		}
	}

	return string(out)
}

// VEX provides helper functionality
// for reading a VEX or XOP prefix.
//
// We always store the prefix in the
// 3-byte form, expanding the 2-byte
// form with VEX2.
type VEX [2]byte

// Intel x86 manuals, Volume 2A,
// Section 2.3.5, Table 2-9.
//
// 3-byte form (XOP uses 0x8f and
// map values of 8 and above):
//
// 	| 7  6  5  4   3  2  1  0 |
// 	+-------------------------|
// 	| 1  1  0  0   0  1  0  0 | // 0xc4 prefix.
// 	| R  X  B  m   m  m  m  m | // P0.
// 	| W  v  v  v   v  L  p  p | // P1.
//
// 2-byte form:
//
// 	| 7  6  5  4   3  2  1  0 |
// 	+-------------------------|
// 	| 1  1  0  0   0  1  0  1 | // 0xc5 prefix.
// 	| R  v  v  v   v  L  p  p | // P0.

// VEX2 expands the payload of a 2-byte VEX
// prefix into the 3-byte form, with X and
// B unset, W0, and the 0F map.
func VEX2(p0 byte) VEX {
	return VEX{(p0 & 0x80) | 0b0110_0000 | byte(Map0F), p0 & 0x7f}
}

// The R, X, B, and vvvv fields are stored
// inverted.

// P0.
func (v VEX) R() bool      { return ((v[0] >> 7) & 1) == 0 }
func (v VEX) X() bool      { return ((v[0] >> 6) & 1) == 0 }
func (v VEX) B() bool      { return ((v[0] >> 5) & 1) == 0 }
func (v VEX) M_MMMM() byte { return v[0] & 0b1_1111 }

// P1.
func (v VEX) W() bool    { return ((v[1] >> 7) & 1) == 1 }
func (v VEX) VVVV() byte { return (^v[1] >> 3) & 0b1111 }
func (v VEX) L() bool    { return ((v[1] >> 2) & 1) == 1 }
func (v VEX) PP() byte   { return v[1] & 0b11 }

func (v VEX) String() string {
	return fmt.Sprintf("{R: %v, X: %v, B: %v, m-mmmm: %05b, W: %v, vvvv: %04b, L: %v, pp: %02b}",
		v.R(), v.X(), v.B(), v.M_MMMM(), v.W(), v.VVVV(), v.L(), v.PP())
}

// EVEX provides helper functionality
// for reading an EVEX prefix.
type EVEX [3]byte

// Intel x86 manuals, Volume 2A,
// Section 2.6.1, Table 2-11.
//
// 	| 7  6  5  4   3  2  1  0 |
// 	+-------------------------|
// 	| 0  1  1  0   0  0  1  0 | // 0x62 prefix.
// 	| R  X  B  R'  0  0  m  m | // P0.
// 	| W  v  v  v   v  1  p  p | // P1.
// 	| z  L' L  b   V' a  a  a | // P2.
//
// As with VEX, R, X, B, R', vvvv, and V'
// are stored inverted.

// P0.
func (p EVEX) R() bool        { return ((p[0] >> 7) & 1) == 0 }
func (p EVEX) X() bool        { return ((p[0] >> 6) & 1) == 0 }
func (p EVEX) B() bool        { return ((p[0] >> 5) & 1) == 0 }
func (p EVEX) Rp() bool       { return ((p[0] >> 4) & 1) == 0 }
func (p EVEX) Reserved() byte { return p[0] & 0b1100 }
func (p EVEX) MM() byte       { return p[0] & 0b11 }

// P1.
func (p EVEX) W() bool     { return ((p[1] >> 7) & 1) == 1 }
func (p EVEX) VVVV() byte  { return (^p[1] >> 3) & 0b1111 }
func (p EVEX) Fixed() bool { return ((p[1] >> 2) & 1) == 1 }
func (p EVEX) PP() byte    { return p[1] & 0b11 }

// P2.
func (p EVEX) Z() bool   { return ((p[2] >> 7) & 1) == 1 }
func (p EVEX) LL() byte  { return (p[2] >> 5) & 0b11 }
func (p EVEX) Br() bool  { return ((p[2] >> 4) & 1) == 1 }
func (p EVEX) Vp() bool  { return ((p[2] >> 3) & 1) == 0 }
func (p EVEX) AAA() byte { return p[2] & 0b111 }

func (p EVEX) String() string {
	return fmt.Sprintf("{R: %v, X: %v, B: %v, R': %v, mm: %02b // W: %v, vvvv: %04b, pp: %02b // z: %v, L'L: %02b, b: %v, V': %v, aaa: %03b}",
		p.R(), p.X(), p.B(), p.Rp(), p.MM(),
		p.W(), p.VVVV(), p.PP(),
		p.Z(), p.LL(), p.Br(), p.Vp(), p.AAA())
}

// ModRM provides helper functionality
// for reading a ModR/M byte.
type ModRM byte

// Section 2.1.5, table 2.2.
const (
	ModRMmodRegister          = 0b11
	ModRMrmSIB                = 0b100
	ModRMrmDisplacementOnly32 = 0b101
	ModRMrmDisplacementOnly16 = 0b110
)

func (m ModRM) Mod() byte { return byte(m&0b11000000) >> 6 }
func (m ModRM) Reg() byte { return byte(m&0b00111000) >> 3 }
func (m ModRM) RM() byte  { return byte(m&0b00000111) >> 0 }

// IsRegister reports whether the r/m field
// selects a register rather than memory.
func (m ModRM) IsRegister() bool { return m.Mod() == ModRMmodRegister }

func (m ModRM) String() string {
	return fmt.Sprintf("{Mod: %02b, Reg: %03b, R/M: %03b}", m.Mod(), m.Reg(), m.RM())
}

// SIB provides helper functionality
// for reading a SIB byte.
type SIB byte

// Section 2.1.5, table 2.3.
const (
	SIBindexNone = 0b100
	SIBbaseNone  = 0b101
)

func (s SIB) Scale() byte { return byte(s&0b11000000) >> 6 }
func (s SIB) Index() byte { return byte(s&0b00111000) >> 3 }
func (s SIB) Base() byte  { return byte(s&0b00000111) >> 0 }

// ScaleFactor returns the index multiplier:
// 1, 2, 4, or 8.
func (s SIB) ScaleFactor() uint8 { return 1 << s.Scale() }

func (s SIB) String() string {
	return fmt.Sprintf("{Scale: %02b, Index: %03b, Base: %03b}", s.Scale(), s.Index(), s.Base())
}
