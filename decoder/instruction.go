// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package decoder

import (
	"fmt"
	"strconv"
	"strings"

	"firefly-os.dev/x86dec/internal/optable"
	"firefly-os.dev/x86dec/x86"
)

// EncodingKind identifies the prefix family
// used to encode an instruction.
type EncodingKind uint8

const (
	EncodingLegacy EncodingKind = iota
	EncodingVEX
	EncodingXOP
	EncodingEVEX
)

func (k EncodingKind) String() string {
	switch k {
	case EncodingLegacy:
		return "Legacy"
	case EncodingVEX:
		return "VEX"
	case EncodingXOP:
		return "XOP"
	case EncodingEVEX:
		return "EVEX"
	default:
		return fmt.Sprintf("EncodingKind(%d)", k)
	}
}

func (k EncodingKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// RoundingControl is an EVEX embedded
// rounding mode.
type RoundingControl uint8

const (
	RoundNone RoundingControl = iota
	RoundToNearest
	RoundDown
	RoundUp
	RoundTowardZero
)

func (rc RoundingControl) String() string {
	switch rc {
	case RoundNone:
		return "None"
	case RoundToNearest:
		return "RoundToNearest"
	case RoundDown:
		return "RoundDown"
	case RoundUp:
		return "RoundUp"
	case RoundTowardZero:
		return "RoundTowardZero"
	default:
		return fmt.Sprintf("RoundingControl(%d)", rc)
	}
}

func (rc RoundingControl) MarshalText() ([]byte, error) {
	return []byte(rc.String()), nil
}

// decoration returns the rounding mode as
// it is written after an operand list.
func (rc RoundingControl) decoration() string {
	switch rc {
	case RoundToNearest:
		return "{rn-sae}"
	case RoundDown:
		return "{rd-sae}"
	case RoundUp:
		return "{ru-sae}"
	case RoundTowardZero:
		return "{rz-sae}"
	}

	return ""
}

// OpKind identifies the kind of an
// instruction operand.
type OpKind uint8

const (
	_ OpKind = iota
	OpRegister
	OpMemory
	OpMemorySegSI  // DS:SI, or a segment override.
	OpMemorySegESI // DS:ESI, or a segment override.
	OpMemorySegRSI // DS:RSI, or a segment override.
	OpMemoryESDI
	OpMemoryESEDI
	OpMemoryESRDI
	OpImmediate8
	OpImmediate16
	OpImmediate32
	OpImmediate64
	OpImmediate8to16 // An 8-bit immediate sign-extended to 16 bits.
	OpImmediate8to32 // An 8-bit immediate sign-extended to 32 bits.
	OpImmediate8to64 // An 8-bit immediate sign-extended to 64 bits.
	OpImmediate32to64
	OpNearBranch16
	OpNearBranch32
	OpNearBranch64
)

var opKindNames = [...]string{
	OpRegister:        "Register",
	OpMemory:          "Memory",
	OpMemorySegSI:     "MemorySegSI",
	OpMemorySegESI:    "MemorySegESI",
	OpMemorySegRSI:    "MemorySegRSI",
	OpMemoryESDI:      "MemoryESDI",
	OpMemoryESEDI:     "MemoryESEDI",
	OpMemoryESRDI:     "MemoryESRDI",
	OpImmediate8:      "Immediate8",
	OpImmediate16:     "Immediate16",
	OpImmediate32:     "Immediate32",
	OpImmediate64:     "Immediate64",
	OpImmediate8to16:  "Immediate8to16",
	OpImmediate8to32:  "Immediate8to32",
	OpImmediate8to64:  "Immediate8to64",
	OpImmediate32to64: "Immediate32to64",
	OpNearBranch16:    "NearBranch16",
	OpNearBranch32:    "NearBranch32",
	OpNearBranch64:    "NearBranch64",
}

func (k OpKind) String() string {
	if 0 < k && int(k) < len(opKindNames) {
		return opKindNames[k]
	}

	return fmt.Sprintf("OpKind(%d)", k)
}

func (k OpKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// IsImmediate reports whether the operand
// is a literal value.
func (k OpKind) IsImmediate() bool {
	return OpImmediate8 <= k && k <= OpImmediate32to64
}

// IsNearBranch reports whether the operand
// is a branch target.
func (k OpKind) IsNearBranch() bool {
	return OpNearBranch16 <= k && k <= OpNearBranch64
}

// IsMemory reports whether the operand
// references memory, including string
// operands.
func (k OpKind) IsMemory() bool {
	return OpMemory <= k && k <= OpMemoryESRDI
}

// Memory describes a memory operand.
//
// Segment is the segment used for the
// access, which is either the default
// segment for the addressing form or the
// segment override prefix.
type Memory struct {
	Segment      *x86.Register
	Base         *x86.Register // RIP or EIP for IP-relative addressing.
	Index        *x86.Register
	Scale        uint8 // 1, 2, 4, or 8.
	Displacement int64 // Sign-extended, and scaled for EVEX disp8*N.
	DisplSize    uint8 // The encoded displacement size in bytes.
	Size         x86.MemorySize
	Broadcast    bool
}

func (m Memory) String() string {
	var b strings.Builder
	if m.Size != x86.MemorySizeUnknown {
		b.WriteString(m.Size.String())
		b.WriteByte(' ')
	}

	if m.Segment != nil {
		b.WriteString(m.Segment.Name)
		b.WriteByte(':')
	}

	b.WriteByte('[')
	plus := false
	if m.Base != nil {
		b.WriteString(m.Base.Name)
		plus = true
	}

	if m.Index != nil {
		if plus {
			b.WriteByte('+')
		}

		b.WriteString(m.Index.Name)
		if m.Scale > 1 {
			b.WriteByte('*')
			b.WriteString(strconv.Itoa(int(m.Scale)))
		}

		plus = true
	}

	switch {
	case !plus:
		fmt.Fprintf(&b, "%#x", uint64(m.Displacement))
	case m.Displacement < 0:
		fmt.Fprintf(&b, "-%#x", uint64(-m.Displacement))
	case m.Displacement > 0:
		fmt.Fprintf(&b, "+%#x", uint64(m.Displacement))
	}

	b.WriteByte(']')
	if m.Broadcast {
		b.WriteString("{1toN}")
	}

	return b.String()
}

// Operand is one decoded operand.
//
// Kind determines which of the other
// fields are used. The rest are zero.
type Operand struct {
	Kind      OpKind
	Register  *x86.Register
	Immediate uint64 // Immediates and branch targets.
	Memory    Memory
}

func (op Operand) String() string {
	switch {
	case op.Kind == OpRegister:
		return op.Register.Name
	case op.Kind.IsMemory():
		return op.Memory.String()
	case op.Kind.IsImmediate(), op.Kind.IsNearBranch():
		return fmt.Sprintf("%#x", op.Immediate)
	}

	return "?"
}

// ConstantOffsets records where the
// displacement and immediate are found
// in the instruction's bytes.
//
// Relative branch offsets and the VEX
// /is4 byte count as immediates, and
// memory offsets count as displacements.
type ConstantOffsets struct {
	DisplacementOffset int
	DisplacementSize   int
	ImmediateOffset    int
	ImmediateSize      int
}

// HasDisplacement reports whether the
// instruction has an encoded displacement.
func (o ConstantOffsets) HasDisplacement() bool { return o.DisplacementSize != 0 }

// HasImmediate reports whether the
// instruction has an encoded immediate.
func (o ConstantOffsets) HasImmediate() bool { return o.ImmediateSize != 0 }

// Instruction is a decoded instruction.
//
// Its fields are set by the decoder and
// should be treated as read-only. An
// Instruction holds no references to the
// decoded bytes, so it can be kept after
// the buffer is reused, and two decodes
// of the same bytes compare equal.
type Instruction struct {
	Code       x86.Code
	Bitness    int
	IP         uint64
	ByteLength int
	Encoding   EncodingKind

	OpCount  int
	Operands [4]Operand

	HasLockPrefix  bool
	HasRepePrefix  bool
	HasRepnePrefix bool
	SegmentPrefix  *x86.Register // The segment override prefix, if any.

	OpMask                *x86.Register // Nil when no opmask is used. Never K0.
	ZeroingMasking        bool
	RoundingControl       RoundingControl
	SuppressAllExceptions bool

	Offsets ConstantOffsets
}

// NextIP returns the address of the
// following instruction.
func (inst *Instruction) NextIP() uint64 {
	return inst.IP + uint64(inst.ByteLength)
}

// Op returns the operand at index i.
func (inst *Instruction) Op(i int) Operand {
	if i < 0 || i >= inst.OpCount {
		return Operand{}
	}

	return inst.Operands[i]
}

// OpKind returns the kind of the
// operand at index i.
func (inst *Instruction) OpKind(i int) OpKind {
	return inst.Op(i).Kind
}

// OpRegister returns the register
// operand at index i, or nil.
func (inst *Instruction) OpRegister(i int) *x86.Register {
	return inst.Op(i).Register
}

// Immediate returns the immediate value
// or branch target at index i.
func (inst *Instruction) Immediate(i int) uint64 {
	return inst.Op(i).Immediate
}

// Memory returns the instruction's explicit
// memory operand, if it has one. String
// operands are not included.
func (inst *Instruction) Memory() (Memory, bool) {
	for i := 0; i < inst.OpCount; i++ {
		if inst.Operands[i].Kind == OpMemory {
			return inst.Operands[i].Memory, true
		}
	}

	return Memory{}, false
}

func (inst *Instruction) MemorySegment() *x86.Register {
	m, _ := inst.Memory()
	return m.Segment
}

func (inst *Instruction) MemoryBase() *x86.Register {
	m, _ := inst.Memory()
	return m.Base
}

func (inst *Instruction) MemoryIndex() *x86.Register {
	m, _ := inst.Memory()
	return m.Index
}

func (inst *Instruction) MemoryIndexScale() uint8 {
	m, _ := inst.Memory()
	return m.Scale
}

func (inst *Instruction) MemoryDisplacement() int64 {
	m, _ := inst.Memory()
	return m.Displacement
}

func (inst *Instruction) MemoryDisplSize() uint8 {
	m, _ := inst.Memory()
	return m.DisplSize
}

func (inst *Instruction) MemorySize() x86.MemorySize {
	m, _ := inst.Memory()
	return m.Size
}

// IsBroadcast reports whether the memory
// operand is an EVEX broadcast.
func (inst *Instruction) IsBroadcast() bool {
	m, _ := inst.Memory()
	return m.Broadcast
}

// IPRelativeMemoryAddress returns the
// address referenced by an RIP- or
// EIP-relative memory operand.
func (inst *Instruction) IPRelativeMemoryAddress() (addr uint64, ok bool) {
	m, ok := inst.Memory()
	if !ok {
		return 0, false
	}

	switch m.Base {
	case x86.RIP:
		return inst.NextIP() + uint64(m.Displacement), true
	case x86.EIP:
		return uint64(uint32(inst.NextIP() + uint64(m.Displacement))), true
	}

	return 0, false
}

// String returns a compact description of
// the instruction for debugging. It is not
// assembly syntax.
func (inst *Instruction) String() string {
	var b strings.Builder
	if inst.HasLockPrefix {
		b.WriteString("lock ")
	}

	if inst.HasRepePrefix {
		b.WriteString("repe ")
	}

	if inst.HasRepnePrefix {
		b.WriteString("repne ")
	}

	b.WriteString(inst.Code.String())
	for i := 0; i < inst.OpCount; i++ {
		if i == 0 {
			b.WriteByte(' ')
		} else {
			b.WriteString(", ")
		}

		b.WriteString(inst.Operands[i].String())
		if i == 0 {
			if inst.OpMask != nil {
				b.WriteString("{" + inst.OpMask.Name + "}")
			}

			if inst.ZeroingMasking {
				b.WriteString("{z}")
			}
		}
	}

	switch {
	case inst.RoundingControl != RoundNone:
		b.WriteString(", " + inst.RoundingControl.decoration())
	case inst.SuppressAllExceptions:
		b.WriteString(", {sae}")
	}

	return b.String()
}

// assemble fills in the instruction from the
// chosen form and the decoded prefixes.
func (s *state) assemble(tmpl *optable.Template, inst *Instruction) {
	inst.Code = tmpl.Code
	inst.OpCount = len(tmpl.Operands)
	inst.ByteLength = s.n
	inst.SegmentPrefix = s.segment
	inst.Offsets = s.offsets
	switch s.f.family {
	case optable.FamilyVEX:
		inst.Encoding = EncodingVEX
	case optable.FamilyXOP:
		inst.Encoding = EncodingXOP
	case optable.FamilyEVEX:
		inst.Encoding = EncodingEVEX
	default:
		inst.Encoding = EncodingLegacy
	}

	if s.lock {
		inst.HasLockPrefix = true
		if !tmpl.Lock || !s.hasModRM || s.modrm.IsRegister() {
			s.illegal(ErrInvalidOperand, "lock prefix with %s", tmpl.Code)
		}
	}

	if tmpl.Rep {
		inst.HasRepePrefix = s.repe && s.consumed != x86.MandatoryF3
		inst.HasRepnePrefix = s.repne && s.consumed != x86.MandatoryF2
	}

	next := inst.NextIP()
	for i := 0; i < inst.OpCount; i++ {
		op := &inst.Operands[i]
		switch op.Kind {
		case OpNearBranch16:
			op.Immediate = uint64(uint16(next + op.Immediate))
		case OpNearBranch32:
			op.Immediate = uint64(uint32(next + op.Immediate))
		case OpNearBranch64:
			op.Immediate = next + op.Immediate
		}
	}
}
