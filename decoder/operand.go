// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package decoder

import (
	"firefly-os.dev/x86dec/internal/optable"
	"firefly-os.dev/x86dec/x86"
)

// bind decodes operand i of the instruction
// form, consuming any bytes it is encoded in.
func (s *state) bind(tmpl *optable.Template, i int, op *x86.Operand) Operand {
	switch op.Encoding {
	case x86.EncodingImplicit:
		return s.implicit(op)
	case x86.EncodingModRMreg:
		num := s.modrm.Reg() + s.f.R
		if isVector(op.Class) || op.Class == x86.TypeOpmask {
			num += s.f.Rp
		}

		return s.registerOperand(i, op, num)
	case x86.EncodingModRMrm:
		if !s.modrm.IsRegister() {
			return Operand{Kind: OpMemory, Memory: s.mem}
		}

		num := s.modrm.RM() + s.f.B
		if s.f.family == optable.FamilyEVEX && isVector(op.Class) && s.f.X != 0 {
			num += 16
		}

		return s.registerOperand(i, op, num)
	case x86.EncodingSIB:
		return Operand{Kind: OpMemory, Memory: s.mem}
	case x86.EncodingVEXvvvv:
		return s.registerOperand(i, op, s.f.vvvv)
	case x86.EncodingRegisterModifier:
		return s.registerOperand(i, op, s.opcode&7+s.f.B)
	case x86.EncodingVEXis4:
		s.markImmediate(1)
		num := s.next() >> 4
		if s.mode != 64 {
			num &= 7
		}

		return s.registerOperand(i, op, num)
	case x86.EncodingImmediate:
		return s.immediate(tmpl, op)
	case x86.EncodingCodeOffset:
		return s.branch(op)
	case x86.EncodingDisplacement:
		return s.memoryOffset(op)
	}

	s.fail(ErrInvalidOperand, "operand %s has unsupported encoding %s", op.Name, op.Encoding)

	return Operand{}
}

func isVector(typ x86.RegisterType) bool {
	switch typ {
	case x86.TypeXMM, x86.TypeYMM, x86.TypeZMM:
		return true
	}

	return false
}

// implicit returns an operand that is not
// encoded in the machine code.
func (s *state) implicit(op *x86.Operand) Operand {
	switch op.Type {
	case x86.TypeStringSrc:
		kind, base := OpMemorySegSI, x86.SI
		switch s.addrSize {
		case 32:
			kind, base = OpMemorySegESI, x86.ESI
		case 64:
			kind, base = OpMemorySegRSI, x86.RSI
		}

		mem := Memory{
			Segment: s.segmentFor(false),
			Base:    base,
			Scale:   1,
			Size:    op.Memory,
		}

		return Operand{Kind: kind, Memory: mem}
	case x86.TypeStringDst:
		kind, base := OpMemoryESDI, x86.DI
		switch s.addrSize {
		case 32:
			kind, base = OpMemoryESEDI, x86.EDI
		case 64:
			kind, base = OpMemoryESRDI, x86.RDI
		}

		// The destination segment cannot be
		// overridden.
		mem := Memory{
			Segment: x86.ES,
			Base:    base,
			Scale:   1,
			Size:    op.Memory,
		}

		return Operand{Kind: kind, Memory: mem}
	}

	if op.Register != nil {
		return Operand{Kind: OpRegister, Register: op.Register}
	}

	if op.Name == "1" {
		return Operand{Kind: OpImmediate8, Immediate: 1}
	}

	s.fail(ErrInvalidOperand, "unknown implicit operand %s", op.Name)

	return Operand{}
}

// registerOperand returns the register with
// the given encoding number in the operand's
// register file.
func (s *state) registerOperand(i int, op *x86.Operand, num byte) Operand {
	switch op.Class {
	case x86.TypeOpmask:
		if num >= 8 {
			s.illegal(ErrInvalidOperand, "opmask register number %d", num)
		}

		num &= 7
	case x86.TypeMMX:
		num &= 7
	case x86.TypeSegment:
		num &= 7
		if num > 5 {
			s.fail(ErrInvalidOperand, "segment register number %d", num)
			return Operand{}
		}

		if i == 0 && num == 1 {
			s.fail(ErrInvalidOperand, "move to cs")
		}
	}

	reg := x86.RegisterFor(op.Class, op.Bits, num, s.hasREX)
	if reg == nil {
		s.fail(ErrInvalidOperand, "no %s with number %d", op.Class, num)
		return Operand{}
	}

	return Operand{Kind: OpRegister, Register: reg}
}

// markImmediate records the position of an
// immediate of the given size in bytes,
// which is about to be read.
func (s *state) markImmediate(size int) {
	if s.offsets.ImmediateSize != 0 {
		return
	}

	s.offsets.ImmediateOffset = s.n
	s.offsets.ImmediateSize = size
}

// immediate reads an immediate operand.
func (s *state) immediate(tmpl *optable.Template, op *x86.Operand) Operand {
	size := op.Bits / 8
	s.markImmediate(size)
	v := s.read(size)
	signed := op.Type == x86.TypeSignedImmediate
	switch {
	case size == 1 && signed && tmpl.OperandSize != 0:
		imm := uint64(signExtend(v, 1))
		switch s.opSize {
		case 16:
			return Operand{Kind: OpImmediate8to16, Immediate: imm & 0xffff}
		case 32:
			return Operand{Kind: OpImmediate8to32, Immediate: imm & 0xffff_ffff}
		}

		return Operand{Kind: OpImmediate8to64, Immediate: imm}
	case size == 1:
		return Operand{Kind: OpImmediate8, Immediate: v}
	case size == 2:
		return Operand{Kind: OpImmediate16, Immediate: v}
	case size == 4 && signed && s.opSize == 64:
		return Operand{Kind: OpImmediate32to64, Immediate: uint64(signExtend(v, 4))}
	case size == 4:
		return Operand{Kind: OpImmediate32, Immediate: v}
	}

	return Operand{Kind: OpImmediate64, Immediate: v}
}

// branch reads a relative branch offset. The
// target address is filled in once the
// instruction's length is known.
func (s *state) branch(op *x86.Operand) Operand {
	size := op.Bits / 8
	s.markImmediate(size)
	disp := signExtend(s.read(size), size)
	kind := OpNearBranch64
	switch s.opSize {
	case 16:
		kind = OpNearBranch16
	case 32:
		kind = OpNearBranch32
	}

	return Operand{Kind: kind, Immediate: uint64(disp)}
}

// memoryOffset reads an absolute memory
// offset of the address size, as used by
// the moffs forms of MOV.
func (s *state) memoryOffset(op *x86.Operand) Operand {
	size := s.addrSize / 8
	s.offsets.DisplacementOffset = s.n
	s.offsets.DisplacementSize = size
	mem := Memory{
		Segment:      s.segmentFor(false),
		Scale:        1,
		Displacement: int64(s.read(size)),
		DisplSize:    uint8(size),
		Size:         op.Memory,
	}

	return Operand{Kind: OpMemory, Memory: mem}
}

// checkVVVV rejects a non-zero vvvv field in
// instruction forms that do not use it.
func (s *state) checkVVVV(tmpl *optable.Template) {
	if s.f.family == optable.FamilyLegacy {
		return
	}

	vsib := false
	for _, op := range tmpl.Operands {
		switch op.Encoding {
		case x86.EncodingVEXvvvv:
			return
		case x86.EncodingSIB:
			vsib = true
		}
	}

	unused := s.f.vvvvAll
	if vsib {
		// EVEX.V' extends the vector index.
		unused &= 0xf
	}

	if unused != 0 {
		s.illegal(ErrInvalidPrefix, "vvvv is %d but unused", unused)
	}
}
