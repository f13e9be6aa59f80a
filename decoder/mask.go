// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package decoder

import (
	"firefly-os.dev/x86dec/internal/optable"
	"firefly-os.dev/x86dec/x86"
)

// finalize applies the EVEX opmask, zeroing,
// broadcast, and rounding settings.
func (s *state) finalize(tmpl *optable.Template, inst *Instruction) {
	if s.f.family != optable.FamilyEVEX {
		return
	}

	if s.f.aaa != 0 {
		if !tmpl.Mask {
			s.illegal(ErrInvalidOperand, "%s does not accept an opmask", tmpl.Code)
		}

		inst.OpMask = x86.RegisterFor(x86.TypeOpmask, 64, s.f.aaa, false)
	} else if tmpl.MaskRequired {
		s.illegal(ErrInvalidOperand, "%s requires an opmask other than k0", tmpl.Code)
	}

	if s.f.z {
		if !tmpl.Zero {
			s.illegal(ErrInvalidOperand, "%s does not accept zeroing-masking", tmpl.Code)
		} else if len(tmpl.Operands) > 0 && inst.Operands[0].Kind == OpMemory {
			s.illegal(ErrInvalidOperand, "zeroing-masking with a memory destination")
		}

		inst.ZeroingMasking = s.f.aaa != 0
	}

	if !s.f.bcst {
		return
	}

	if s.modrm.IsRegister() {
		switch {
		case tmpl.Rounding:
			inst.RoundingControl = RoundingControl(s.f.L + 1)
		case tmpl.Suppress:
			inst.SuppressAllExceptions = true
		default:
			s.illegal(ErrInvalidOperand, "%s does not accept embedded rounding or SAE", tmpl.Code)
		}

		return
	}

	if !tmpl.Broadcast {
		s.illegal(ErrInvalidOperand, "%s does not accept a broadcast", tmpl.Code)
	}
}

// checkGather rejects gathers whose registers
// overlap. The destination, vector index,
// and any mask operand must all differ.
func (s *state) checkGather(tmpl *optable.Template, inst *Instruction) {
	var dst, index, mask *x86.Register
	for i, op := range tmpl.Operands {
		switch op.Encoding {
		case x86.EncodingModRMreg:
			dst = inst.Operands[i].Register
		case x86.EncodingSIB:
			index = inst.Operands[i].Memory.Index
		case x86.EncodingVEXvvvv:
			mask = inst.Operands[i].Register
		}
	}

	if index == nil || dst == nil {
		return
	}

	if dst.Reg == index.Reg {
		s.illegal(ErrInvalidOperand, "gather destination %s is also the index", dst)
	}

	if mask == nil {
		return
	}

	if mask.Reg == dst.Reg || mask.Reg == index.Reg {
		s.illegal(ErrInvalidOperand, "gather mask %s is also the destination or index", mask)
	}
}
