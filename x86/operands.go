// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

import (
	"encoding/json"
	"fmt"
)

// Operand describes one operand to an instruction,
// as written in the opcode table's syntax.
type Operand struct {
	Name     string          `json:"name"`               // The operand's name in the opcode table.
	Type     OperandType     `json:"type"`               // The operand type.
	Encoding OperandEncoding `json:"encoding"`           // The way the operand is encoded in machine code.
	Bits     int             `json:"bits,omitempty"`     // The register, immediate, or memory size in bits.
	Class    RegisterType    `json:"class,omitempty"`    // The register file for any register.
	Register *Register       `json:"register,omitempty"` // The register for implicit register operands.
	Memory   MemorySize      `json:"memory,omitempty"`   // The default size of any memory operand.
}

func (op *Operand) String() string {
	return fmt.Sprintf("%s %s (%s)", op.Type, op.Name, op.Encoding)
}

// HasMemory reports whether the operand
// can be a memory reference.
func (op *Operand) HasMemory() bool {
	switch op.Type {
	case TypeMemory, TypeRegisterOrMemory, TypeMemoryOffset, TypeStringDst, TypeStringSrc:
		return true
	}

	return false
}

// OperandType categories an operand
// to an x86 instruction.
type OperandType uint8

const (
	_                     OperandType = iota
	TypeSignedImmediate               // A signed integer literal.
	TypeUnsignedImmediate             // An unsigned integer literal.
	TypeRegister                      // A register selection.
	TypeRegisterOrMemory              // A register or a memory address expression, chosen by ModR/M.mod.
	TypeRelativeAddress               // An address offset from the instruction pointer.
	TypeMemory                        // A memory address expression.
	TypeMemoryOffset                  // A memory offset expression.
	TypeStringDst                     // A memory address for a string destination.
	TypeStringSrc                     // A memory address for a string source.
)

var OperandTypes = map[string]OperandType{
	"signed immediate":   TypeSignedImmediate,
	"unsigned immediate": TypeUnsignedImmediate,
	"register":           TypeRegister,
	"register or memory": TypeRegisterOrMemory,
	"relative address":   TypeRelativeAddress,
	"memory":             TypeMemory,
	"memory offset":      TypeMemoryOffset,
	"string destination": TypeStringDst,
	"string source":      TypeStringSrc,
}

func (t OperandType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *OperandType) UnmarshalJSON(data []byte) error {
	var s string
	err := json.Unmarshal(data, &s)
	if err != nil {
		return err
	}

	got, ok := OperandTypes[s]
	if !ok {
		return fmt.Errorf("invalid operand type %q", s)
	}

	*t = got

	return nil
}

func (t OperandType) String() string {
	switch t {
	case TypeSignedImmediate:
		return "signed immediate"
	case TypeUnsignedImmediate:
		return "unsigned immediate"
	case TypeRegister:
		return "register"
	case TypeRegisterOrMemory:
		return "register or memory"
	case TypeRelativeAddress:
		return "relative address"
	case TypeMemory:
		return "memory"
	case TypeMemoryOffset:
		return "memory offset"
	case TypeStringDst:
		return "string destination"
	case TypeStringSrc:
		return "string source"
	default:
		return fmt.Sprintf("OperandType(%d)", t)
	}
}

// OperandEncoding represents a way in
// which an x86 instruction's operand
// is encoded (or not) in the machine
// code.
type OperandEncoding uint8

const (
	_                        OperandEncoding = iota
	EncodingImplicit                         // The operand is implied by the opcode and is not encoded.
	EncodingVEXvvvv                          // The operand is encoded in the VEX.vvvv field of the machine code.
	EncodingRegisterModifier                 // The operand is encoded in the opcode byte.
	EncodingCodeOffset                       // The operand is encoded as a code offset after the opcode.
	EncodingModRMreg                         // The operand is encoded in the ModR/M.reg field of the machine code.
	EncodingModRMrm                          // The operand is encoded in the ModR/M.rm field of the machine code.
	EncodingSIB                              // The operand is encoded in the (vector) SIB byte.
	EncodingDisplacement                     // The operand is encoded in the displacement field of the machine code.
	EncodingImmediate                        // The operand is encoded in the immediate field of the machine code.
	EncodingVEXis4                           // The operand is encoded in the VEX /is4 immediate byte.
)

var OperandEncodings = map[string]OperandEncoding{
	"implicit":          EncodingImplicit,
	"VEX.vvvv":          EncodingVEXvvvv,
	"register modifier": EncodingRegisterModifier,
	"code offset":       EncodingCodeOffset,
	"ModR/M reg":        EncodingModRMreg,
	"ModR/M r/m":        EncodingModRMrm,
	"SIB":               EncodingSIB,
	"displacement":      EncodingDisplacement,
	"immediate":         EncodingImmediate,
	"VEX /is4":          EncodingVEXis4,
}

func (e OperandEncoding) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.String())
}

func (e *OperandEncoding) UnmarshalJSON(data []byte) error {
	var s string
	err := json.Unmarshal(data, &s)
	if err != nil {
		return err
	}

	got, ok := OperandEncodings[s]
	if !ok {
		return fmt.Errorf("invalid operand encoding %q", s)
	}

	*e = got

	return nil
}

func (e OperandEncoding) String() string {
	switch e {
	case EncodingImplicit:
		return "implicit"
	case EncodingVEXvvvv:
		return "VEX.vvvv"
	case EncodingRegisterModifier:
		return "register modifier"
	case EncodingCodeOffset:
		return "code offset"
	case EncodingModRMreg:
		return "ModR/M reg"
	case EncodingModRMrm:
		return "ModR/M r/m"
	case EncodingSIB:
		return "SIB"
	case EncodingDisplacement:
		return "displacement"
	case EncodingImmediate:
		return "immediate"
	case EncodingVEXis4:
		return "VEX /is4"
	default:
		return fmt.Sprintf("OperandEncoding(%d)", e)
	}
}

// Operands maps the operand names used in
// the opcode table's syntax to their
// descriptions.
//
// General purpose operands have a fixed
// size; the operand size attribute picks
// between the instruction forms that use
// them. The rmr forms are registers in
// the ModR/M.rm field, and the V forms
// are encoded in VEX.vvvv.
var Operands = map[string]*Operand{
	"r8":        {Name: "r8", Type: TypeRegister, Encoding: EncodingModRMreg, Bits: 8, Class: TypeGeneralPurpose},
	"rm8":       {Name: "rm8", Type: TypeRegisterOrMemory, Encoding: EncodingModRMrm, Bits: 8, Class: TypeGeneralPurpose, Memory: MemorySizeUInt8},
	"r8op":      {Name: "r8op", Type: TypeRegister, Encoding: EncodingRegisterModifier, Bits: 8, Class: TypeGeneralPurpose},
	"moffs8":    {Name: "moffs8", Type: TypeMemoryOffset, Encoding: EncodingDisplacement, Bits: 8, Memory: MemorySizeUInt8},
	"src8":      {Name: "src8", Type: TypeStringSrc, Encoding: EncodingImplicit, Bits: 8, Memory: MemorySizeUInt8},
	"dst8":      {Name: "dst8", Type: TypeStringDst, Encoding: EncodingImplicit, Bits: 8, Memory: MemorySizeUInt8},
	"r16":       {Name: "r16", Type: TypeRegister, Encoding: EncodingModRMreg, Bits: 16, Class: TypeGeneralPurpose},
	"rm16":      {Name: "rm16", Type: TypeRegisterOrMemory, Encoding: EncodingModRMrm, Bits: 16, Class: TypeGeneralPurpose, Memory: MemorySizeUInt16},
	"r16op":     {Name: "r16op", Type: TypeRegister, Encoding: EncodingRegisterModifier, Bits: 16, Class: TypeGeneralPurpose},
	"moffs16":   {Name: "moffs16", Type: TypeMemoryOffset, Encoding: EncodingDisplacement, Bits: 16, Memory: MemorySizeUInt16},
	"src16":     {Name: "src16", Type: TypeStringSrc, Encoding: EncodingImplicit, Bits: 16, Memory: MemorySizeUInt16},
	"dst16":     {Name: "dst16", Type: TypeStringDst, Encoding: EncodingImplicit, Bits: 16, Memory: MemorySizeUInt16},
	"r32":       {Name: "r32", Type: TypeRegister, Encoding: EncodingModRMreg, Bits: 32, Class: TypeGeneralPurpose},
	"rm32":      {Name: "rm32", Type: TypeRegisterOrMemory, Encoding: EncodingModRMrm, Bits: 32, Class: TypeGeneralPurpose, Memory: MemorySizeUInt32},
	"r32op":     {Name: "r32op", Type: TypeRegister, Encoding: EncodingRegisterModifier, Bits: 32, Class: TypeGeneralPurpose},
	"moffs32":   {Name: "moffs32", Type: TypeMemoryOffset, Encoding: EncodingDisplacement, Bits: 32, Memory: MemorySizeUInt32},
	"src32":     {Name: "src32", Type: TypeStringSrc, Encoding: EncodingImplicit, Bits: 32, Memory: MemorySizeUInt32},
	"dst32":     {Name: "dst32", Type: TypeStringDst, Encoding: EncodingImplicit, Bits: 32, Memory: MemorySizeUInt32},
	"r64":       {Name: "r64", Type: TypeRegister, Encoding: EncodingModRMreg, Bits: 64, Class: TypeGeneralPurpose},
	"rm64":      {Name: "rm64", Type: TypeRegisterOrMemory, Encoding: EncodingModRMrm, Bits: 64, Class: TypeGeneralPurpose, Memory: MemorySizeUInt64},
	"r64op":     {Name: "r64op", Type: TypeRegister, Encoding: EncodingRegisterModifier, Bits: 64, Class: TypeGeneralPurpose},
	"moffs64":   {Name: "moffs64", Type: TypeMemoryOffset, Encoding: EncodingDisplacement, Bits: 64, Memory: MemorySizeUInt64},
	"src64":     {Name: "src64", Type: TypeStringSrc, Encoding: EncodingImplicit, Bits: 64, Memory: MemorySizeUInt64},
	"dst64":     {Name: "dst64", Type: TypeStringDst, Encoding: EncodingImplicit, Bits: 64, Memory: MemorySizeUInt64},
	"rmr32":     {Name: "rmr32", Type: TypeRegister, Encoding: EncodingModRMrm, Bits: 32, Class: TypeGeneralPurpose},
	"r32V":      {Name: "r32V", Type: TypeRegister, Encoding: EncodingVEXvvvv, Bits: 32, Class: TypeGeneralPurpose},
	"r32/m16":   {Name: "r32/m16", Type: TypeRegisterOrMemory, Encoding: EncodingModRMrm, Bits: 32, Class: TypeGeneralPurpose, Memory: MemorySizeUInt16},
	"rmr64":     {Name: "rmr64", Type: TypeRegister, Encoding: EncodingModRMrm, Bits: 64, Class: TypeGeneralPurpose},
	"r64V":      {Name: "r64V", Type: TypeRegister, Encoding: EncodingVEXvvvv, Bits: 64, Class: TypeGeneralPurpose},
	"r64/m16":   {Name: "r64/m16", Type: TypeRegisterOrMemory, Encoding: EncodingModRMrm, Bits: 64, Class: TypeGeneralPurpose, Memory: MemorySizeUInt16},
	"Sreg":      {Name: "Sreg", Type: TypeRegister, Encoding: EncodingModRMreg, Bits: 16, Class: TypeSegment},
	"m":         {Name: "m", Type: TypeMemory, Encoding: EncodingModRMrm},
	"m8":        {Name: "m8", Type: TypeMemory, Encoding: EncodingModRMrm, Bits: 8, Memory: MemorySizeUInt8},
	"m16":       {Name: "m16", Type: TypeMemory, Encoding: EncodingModRMrm, Bits: 16, Memory: MemorySizeUInt16},
	"m32":       {Name: "m32", Type: TypeMemory, Encoding: EncodingModRMrm, Bits: 32, Memory: MemorySizeUInt32},
	"m64":       {Name: "m64", Type: TypeMemory, Encoding: EncodingModRMrm, Bits: 64, Memory: MemorySizeUInt64},
	"m128":      {Name: "m128", Type: TypeMemory, Encoding: EncodingModRMrm, Bits: 128, Memory: MemorySizeUInt128},
	"m256":      {Name: "m256", Type: TypeMemory, Encoding: EncodingModRMrm, Bits: 256, Memory: MemorySizeUInt256},
	"m512":      {Name: "m512", Type: TypeMemory, Encoding: EncodingModRMrm, Bits: 512, Memory: MemorySizeUInt512},
	"m16&16":    {Name: "m16&16", Type: TypeMemory, Encoding: EncodingModRMrm, Bits: 32, Memory: MemorySizeBound16_WordWord},
	"m32&32":    {Name: "m32&32", Type: TypeMemory, Encoding: EncodingModRMrm, Bits: 64, Memory: MemorySizeBound32_DwordDword},
	"m16:16":    {Name: "m16:16", Type: TypeMemory, Encoding: EncodingModRMrm, Bits: 32, Memory: MemorySizeSegPtr16},
	"m16:32":    {Name: "m16:32", Type: TypeMemory, Encoding: EncodingModRMrm, Bits: 48, Memory: MemorySizeSegPtr32},
	"imm8":      {Name: "imm8", Type: TypeSignedImmediate, Encoding: EncodingImmediate, Bits: 8},
	"imm8u":     {Name: "imm8u", Type: TypeUnsignedImmediate, Encoding: EncodingImmediate, Bits: 8},
	"imm16":     {Name: "imm16", Type: TypeSignedImmediate, Encoding: EncodingImmediate, Bits: 16},
	"imm16u":    {Name: "imm16u", Type: TypeUnsignedImmediate, Encoding: EncodingImmediate, Bits: 16},
	"imm32":     {Name: "imm32", Type: TypeSignedImmediate, Encoding: EncodingImmediate, Bits: 32},
	"imm32u":    {Name: "imm32u", Type: TypeUnsignedImmediate, Encoding: EncodingImmediate, Bits: 32},
	"imm64":     {Name: "imm64", Type: TypeUnsignedImmediate, Encoding: EncodingImmediate, Bits: 64},
	"1":         {Name: "1", Type: TypeUnsignedImmediate, Encoding: EncodingImplicit, Bits: 8},
	"rel8":      {Name: "rel8", Type: TypeRelativeAddress, Encoding: EncodingCodeOffset, Bits: 8},
	"rel16":     {Name: "rel16", Type: TypeRelativeAddress, Encoding: EncodingCodeOffset, Bits: 16},
	"rel32":     {Name: "rel32", Type: TypeRelativeAddress, Encoding: EncodingCodeOffset, Bits: 32},
	"al":        {Name: "al", Type: TypeRegister, Encoding: EncodingImplicit, Bits: 8, Class: TypeGeneralPurpose, Register: AL},
	"cl":        {Name: "cl", Type: TypeRegister, Encoding: EncodingImplicit, Bits: 8, Class: TypeGeneralPurpose, Register: CL},
	"ax":        {Name: "ax", Type: TypeRegister, Encoding: EncodingImplicit, Bits: 16, Class: TypeGeneralPurpose, Register: AX},
	"dx":        {Name: "dx", Type: TypeRegister, Encoding: EncodingImplicit, Bits: 16, Class: TypeGeneralPurpose, Register: DX},
	"eax":       {Name: "eax", Type: TypeRegister, Encoding: EncodingImplicit, Bits: 32, Class: TypeGeneralPurpose, Register: EAX},
	"rax":       {Name: "rax", Type: TypeRegister, Encoding: EncodingImplicit, Bits: 64, Class: TypeGeneralPurpose, Register: RAX},
	"xmm1":      {Name: "xmm1", Type: TypeRegister, Encoding: EncodingModRMreg, Bits: 128, Class: TypeXMM},
	"xmm2":      {Name: "xmm2", Type: TypeRegister, Encoding: EncodingModRMrm, Bits: 128, Class: TypeXMM},
	"xmmV":      {Name: "xmmV", Type: TypeRegister, Encoding: EncodingVEXvvvv, Bits: 128, Class: TypeXMM},
	"xmm2/m128": {Name: "xmm2/m128", Type: TypeRegisterOrMemory, Encoding: EncodingModRMrm, Bits: 128, Class: TypeXMM, Memory: MemorySizeUInt128},
	"vm32x":     {Name: "vm32x", Type: TypeMemory, Encoding: EncodingSIB, Bits: 32, Class: TypeXMM, Memory: MemorySizeInt32},
	"ymm1":      {Name: "ymm1", Type: TypeRegister, Encoding: EncodingModRMreg, Bits: 256, Class: TypeYMM},
	"ymm2":      {Name: "ymm2", Type: TypeRegister, Encoding: EncodingModRMrm, Bits: 256, Class: TypeYMM},
	"ymmV":      {Name: "ymmV", Type: TypeRegister, Encoding: EncodingVEXvvvv, Bits: 256, Class: TypeYMM},
	"ymm2/m256": {Name: "ymm2/m256", Type: TypeRegisterOrMemory, Encoding: EncodingModRMrm, Bits: 256, Class: TypeYMM, Memory: MemorySizeUInt256},
	"vm32y":     {Name: "vm32y", Type: TypeMemory, Encoding: EncodingSIB, Bits: 32, Class: TypeYMM, Memory: MemorySizeInt32},
	"zmm1":      {Name: "zmm1", Type: TypeRegister, Encoding: EncodingModRMreg, Bits: 512, Class: TypeZMM},
	"zmm2":      {Name: "zmm2", Type: TypeRegister, Encoding: EncodingModRMrm, Bits: 512, Class: TypeZMM},
	"zmmV":      {Name: "zmmV", Type: TypeRegister, Encoding: EncodingVEXvvvv, Bits: 512, Class: TypeZMM},
	"zmm2/m512": {Name: "zmm2/m512", Type: TypeRegisterOrMemory, Encoding: EncodingModRMrm, Bits: 512, Class: TypeZMM, Memory: MemorySizeUInt512},
	"vm32z":     {Name: "vm32z", Type: TypeMemory, Encoding: EncodingSIB, Bits: 32, Class: TypeZMM, Memory: MemorySizeInt32},
	"xmm2/m8":   {Name: "xmm2/m8", Type: TypeRegisterOrMemory, Encoding: EncodingModRMrm, Bits: 128, Class: TypeXMM, Memory: MemorySizeUInt8},
	"xmm2/m16":  {Name: "xmm2/m16", Type: TypeRegisterOrMemory, Encoding: EncodingModRMrm, Bits: 128, Class: TypeXMM, Memory: MemorySizeUInt16},
	"xmm2/m32":  {Name: "xmm2/m32", Type: TypeRegisterOrMemory, Encoding: EncodingModRMrm, Bits: 128, Class: TypeXMM, Memory: MemorySizeUInt32},
	"xmm2/m64":  {Name: "xmm2/m64", Type: TypeRegisterOrMemory, Encoding: EncodingModRMrm, Bits: 128, Class: TypeXMM, Memory: MemorySizeUInt64},
	"ymm2/m128": {Name: "ymm2/m128", Type: TypeRegisterOrMemory, Encoding: EncodingModRMrm, Bits: 256, Class: TypeYMM, Memory: MemorySizeUInt128},
	"xmmIH":     {Name: "xmmIH", Type: TypeRegister, Encoding: EncodingVEXis4, Bits: 128, Class: TypeXMM},
	"ymmIH":     {Name: "ymmIH", Type: TypeRegister, Encoding: EncodingVEXis4, Bits: 256, Class: TypeYMM},
	"mm1":       {Name: "mm1", Type: TypeRegister, Encoding: EncodingModRMreg, Bits: 64, Class: TypeMMX},
	"mm2/m64":   {Name: "mm2/m64", Type: TypeRegisterOrMemory, Encoding: EncodingModRMrm, Bits: 64, Class: TypeMMX, Memory: MemorySizeUInt64},
	"k1":        {Name: "k1", Type: TypeRegister, Encoding: EncodingModRMreg, Bits: 64, Class: TypeOpmask},
	"k2":        {Name: "k2", Type: TypeRegister, Encoding: EncodingModRMrm, Bits: 64, Class: TypeOpmask},
	"kV":        {Name: "kV", Type: TypeRegister, Encoding: EncodingVEXvvvv, Bits: 64, Class: TypeOpmask},
	"k2/m16":    {Name: "k2/m16", Type: TypeRegisterOrMemory, Encoding: EncodingModRMrm, Bits: 64, Class: TypeOpmask, Memory: MemorySizeUInt16},
}
