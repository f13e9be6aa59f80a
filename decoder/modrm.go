// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package decoder

import (
	"firefly-os.dev/x86dec/internal/optable"
	"firefly-os.dev/x86dec/x86"
)

// addressSize returns the effective address
// size in bits.
func (s *state) addressSize() int {
	switch s.mode {
	case 16:
		if s.has67 {
			return 32
		}

		return 16
	case 32:
		if s.has67 {
			return 16
		}

		return 32
	}

	if s.has67 {
		return 32
	}

	return 64
}

// Intel x86 manuals, Volume 2A,
// Section 2.1.5, Table 2-1.
var (
	bases16   = [8]*x86.Register{x86.BX, x86.BX, x86.BP, x86.BP, x86.SI, x86.DI, x86.BP, x86.BX}
	indexes16 = [4]*x86.Register{x86.SI, x86.DI, x86.SI, x86.DI}
)

// resolveMemory decodes the memory operand
// described by the ModR/M byte, including
// any SIB byte and displacement.
func (s *state) resolveMemory(tmpl *optable.Template) {
	var vsib *x86.Operand
	for _, op := range tmpl.Operands {
		if op.Encoding == x86.EncodingSIB {
			vsib = op
			break
		}
	}

	s.mem.Scale = 1
	s.mem.Size, s.mem.Broadcast = s.memorySize(tmpl)

	mod := s.modrm.Mod()
	rm := s.modrm.RM()
	if s.addrSize == 16 {
		if vsib != nil {
			s.fail(ErrInvalidOperand, "vector SIB with 16-bit addressing")
		}

		displSize := 0
		switch {
		case mod == 0 && rm == x86.ModRMrmDisplacementOnly16:
			displSize = 2
		default:
			s.mem.Base = bases16[rm]
			if rm < 4 {
				s.mem.Index = indexes16[rm]
			}

			switch mod {
			case 1:
				displSize = 1
			case 2:
				displSize = 2
			}
		}

		s.displacement(tmpl, displSize)
		s.mem.Segment = s.segmentFor(s.mem.Base == x86.BP)

		return
	}

	displSize := 0
	switch mod {
	case 1:
		displSize = 1
	case 2:
		displSize = 4
	}

	stack := false
	switch {
	case rm == x86.ModRMrmSIB:
		sib := x86.SIB(s.next())
		index := sib.Index() + s.f.X
		switch {
		case vsib != nil:
			if s.f.family == optable.FamilyEVEX {
				index += s.f.Vp
			}

			s.mem.Index = x86.RegisterFor(vsib.Class, 0, index, false)
		case index != x86.SIBindexNone:
			s.mem.Index = x86.RegisterFor(x86.TypeGeneralPurpose, s.addrSize, index, false)
		}

		if s.mem.Index != nil {
			s.mem.Scale = sib.ScaleFactor()
		}

		if mod == 0 && sib.Base() == x86.SIBbaseNone {
			displSize = 4
			break
		}

		base := sib.Base() + s.f.B
		s.mem.Base = x86.RegisterFor(x86.TypeGeneralPurpose, s.addrSize, base, false)
		stack = base == 4 || base == 5
	case vsib != nil:
		s.fail(ErrInvalidOperand, "vector SIB form without a SIB byte")
	case mod == 0 && rm == x86.ModRMrmDisplacementOnly32:
		displSize = 4
		if s.mode == 64 {
			s.mem.Base = x86.RIP
			if s.addrSize == 32 {
				s.mem.Base = x86.EIP
			}
		}
	default:
		base := rm + s.f.B
		s.mem.Base = x86.RegisterFor(x86.TypeGeneralPurpose, s.addrSize, base, false)
		stack = base == 4 || base == 5
	}

	s.displacement(tmpl, displSize)
	s.mem.Segment = s.segmentFor(stack)
}

// segmentFor returns the segment used for
// a memory access, which is SS for stack
// bases and DS otherwise, unless there is
// a segment override.
func (s *state) segmentFor(stack bool) *x86.Register {
	switch {
	case s.segment != nil:
		return s.segment
	case stack:
		return x86.SS
	}

	return x86.DS
}

// memorySize returns the size of the ModR/M
// memory operand and whether it is an EVEX
// broadcast.
func (s *state) memorySize(tmpl *optable.Template) (x86.MemorySize, bool) {
	if s.f.family == optable.FamilyEVEX && s.f.bcst && tmpl.Broadcast {
		return tmpl.BroadcastMemory, true
	}

	if tmpl.Memory != x86.MemorySizeUnknown {
		return tmpl.Memory, false
	}

	for _, op := range tmpl.Operands {
		if op.Encoding == x86.EncodingModRMrm || op.Encoding == x86.EncodingSIB {
			return op.Memory, false
		}
	}

	return x86.MemorySizeUnknown, false
}

// displacement consumes a displacement of
// the given size in bytes, which may be
// zero.
func (s *state) displacement(tmpl *optable.Template, size int) {
	if size == 0 {
		return
	}

	s.offsets.DisplacementOffset = s.n
	s.offsets.DisplacementSize = size
	s.mem.DisplSize = uint8(size)
	disp := signExtend(s.read(size), size)
	if size == 1 && s.f.family == optable.FamilyEVEX {
		n := tmpl.Tuple.Disp8N(s.vectorBits, s.f.W, s.mem.Broadcast, s.mem.Size.ElementSize())
		disp *= int64(n)
	}

	s.mem.Displacement = disp
}
