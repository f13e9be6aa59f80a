// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

// Package optable contains the x86 opcode table used
// by the decoder.
//
// The table is built once from the embedded CSV data
// and is read-only afterwards, so it can be shared
// by any number of decoders.
//
// Each row of the CSV data describes one instruction
// form as an Intel encoding string, an Intel syntax
// string, and a small set of tags. The rows are
// grouped by the bytes that identify an opcode: the
// encoding family, the opcode map, the final opcode
// byte, and the mandatory prefix. Within a group, a
// Selector chooses the first row whose remaining
// constraints (CPU mode, operand size, W, vector
// length, ModR/M fields, and so on) are satisfied.
package optable

import (
	"fmt"
	"sort"

	"firefly-os.dev/x86dec/x86"
)

// Family identifies the prefix family that
// introduces an instruction.
type Family uint8

const (
	FamilyLegacy Family = iota
	FamilyVEX
	FamilyXOP
	FamilyEVEX
)

func (f Family) String() string {
	switch f {
	case FamilyLegacy:
		return "legacy"
	case FamilyVEX:
		return "VEX"
	case FamilyXOP:
		return "XOP"
	case FamilyEVEX:
		return "EVEX"
	default:
		return fmt.Sprintf("Family(%d)", f)
	}
}

// Modes is a set of CPU modes.
type Modes uint8

const (
	Mode16 Modes = 1 << iota
	Mode32
	Mode64
)

// Has reports whether the set includes
// the mode with the given bitness.
func (m Modes) Has(bits int) bool {
	switch bits {
	case 16:
		return m&Mode16 != 0
	case 32:
		return m&Mode32 != 0
	case 64:
		return m&Mode64 != 0
	}

	return false
}

func (m Modes) String() string {
	var out []byte
	for _, mode := range []struct {
		bit  Modes
		name string
	}{{Mode16, "16"}, {Mode32, "32"}, {Mode64, "64"}} {
		if m&mode.bit == 0 {
			continue
		}

		if len(out) != 0 {
			out = append(out, ' ')
		}

		out = append(out, mode.name...)
	}

	return string(out)
}

// Template describes one instruction form.
type Template struct {
	Code     x86.Code
	Syntax   string // The Intel syntax, including any {k1}, {z}, {er}, or {sae} decorations.
	Mnemonic string
	Family   Family
	Encoding *x86.Encoding
	Operands []*x86.Operand

	// EVEX decorations.
	Mask      bool // Accepts an opmask register ({k1}).
	Zero      bool // Accepts zeroing-masking ({z}).
	Rounding  bool // Accepts embedded rounding ({er}).
	Suppress  bool // Accepts suppress-all-exceptions ({sae}).
	Broadcast bool // Accepts a broadcast memory operand (/m32bcst or /m64bcst).

	Tuple           x86.TupleType  // The EVEX tuple type, used for disp8*N.
	Memory          x86.MemorySize // The size of the ModR/M memory operand, if it differs from the operand's default.
	BroadcastMemory x86.MemorySize // The size of a broadcast memory operand.

	Modes        Modes
	OperandSize  int  // The operand size the form requires, or zero.
	Default64    bool // The operand size defaults to 64 bits in 64-bit mode.
	Force64      bool // The operand size is always 64 bits in 64-bit mode.
	Lock         bool // A lock prefix is allowed with a memory destination.
	Rep          bool // Repeat prefixes are meaningful.
	MemOnly      bool // The ModR/M r/m field must reference memory.
	RegOnly      bool // The ModR/M r/m field must reference a register.
	NoREXB       bool // The form does not match when REX.B is set.
	MaskRequired bool // An opmask register other than k0 is required.

	Row int // The line in the CSV data.
}

func (t *Template) String() string {
	return fmt.Sprintf("%s: %s (%s)", t.Code, t.Syntax, t.Encoding.Syntax)
}

// OperandSize returns the effective operand size
// in bits of the instruction form t when decoded
// in the given CPU mode, with or without an
// operand size prefix and the W bit.
//
// W is only used in 64-bit mode.
func OperandSize(mode int, has66, w bool, t *Template) int {
	switch mode {
	case 16:
		if has66 {
			return 32
		}

		return 16
	case 32:
		if has66 {
			return 16
		}

		return 32
	}

	switch {
	case t.Force64:
		return 64
	case w:
		return 64
	case t.Default64:
		if has66 {
			return 16
		}

		return 64
	case has66:
		return 16
	}

	return 32
}

// Key identifies the group of instruction
// forms that share an opcode.
type Key struct {
	Family Family
	Map    x86.Map
	Opcode byte
	Prefix x86.MandatoryPrefix
}

// String returns the key as the family, any
// escape map, the opcode, and the mandatory
// prefix, such as "VEX 0F38 18 66".
func (k Key) String() string {
	if k.Map == x86.MapLegacy {
		return fmt.Sprintf("%s %02X %s", k.Family, k.Opcode, k.Prefix)
	}

	return fmt.Sprintf("%s %s %02X %s", k.Family, k.Map, k.Opcode, k.Prefix)
}

func (k Key) less(other Key) bool {
	if k.Family != other.Family {
		return k.Family < other.Family
	}

	if k.Map != other.Map {
		return k.Map < other.Map
	}

	if k.Opcode != other.Opcode {
		return k.Opcode < other.Opcode
	}

	return k.Prefix < other.Prefix
}

// Entry contains the instruction forms that
// share a Key, in table order.
type Entry struct {
	Key        Key
	Templates  []*Template
	NeedsModRM bool // Whether a ModR/M byte follows the opcode.
}

// Selector holds the properties of an
// instruction being decoded that are used
// to choose between the templates in an
// Entry.
type Selector struct {
	Mode int // The CPU mode: 16, 32, or 64.

	// Legacy prefixes that have not been
	// consumed as a mandatory prefix.
	Has66 bool
	HasF2 bool
	HasF3 bool

	W          bool      // REX.W, or the VEX, XOP, or EVEX W bit.
	VectorBits int       // The vector length, for VEX, XOP, and EVEX.
	ModRM      x86.ModRM // The ModR/M byte, if NeedsModRM is set.
	REXB       bool      // Whether REX.B is set.
}

// Select returns the first template in e
// that accepts sel, or nil.
func (e *Entry) Select(sel *Selector) *Template {
	for _, t := range e.Templates {
		if t.Accepts(sel) {
			return t
		}
	}

	return nil
}

// Accepts reports whether the instruction
// form can decode an instruction with the
// properties in sel.
func (t *Template) Accepts(sel *Selector) bool {
	if !t.Modes.Has(sel.Mode) {
		return false
	}

	enc := t.Encoding
	if enc.NoVEXPrefixes && (sel.Has66 || sel.HasF2 || sel.HasF3) {
		return false
	}

	if enc.NoRepPrefixes && (sel.HasF2 || sel.HasF3) {
		return false
	}

	if t.OperandSize != 0 && OperandSize(sel.Mode, sel.Has66, sel.W, t) != t.OperandSize {
		return false
	}

	if t.Family != FamilyLegacy {
		if !enc.VEX_WIG && enc.VEX_W != sel.W {
			return false
		}

		if !enc.VEX_LIG && enc.VectorSize() != sel.VectorBits {
			return false
		}
	}

	if enc.ModRM {
		if enc.ModRMreg != 0 && enc.ModRMreg != sel.ModRM.Reg()+1 {
			return false
		}

		if enc.ModRMrm != 0 && enc.ModRMrm != sel.ModRM.RM()+1 {
			return false
		}

		register := sel.ModRM.IsRegister()
		switch enc.ModRMmod {
		case 0b11 + 1:
			if !register {
				return false
			}
		case 5:
			if register {
				return false
			}
		}

		if (t.MemOnly && register) || (t.RegOnly && !register) {
			return false
		}
	}

	if t.NoREXB && sel.REXB {
		return false
	}

	return true
}

// Table is a parsed opcode table.
type Table struct {
	templates []*Template // Indexed by Code-1.
	entries   map[Key]*Entry
	keys      []Key // Sorted.
}

// Lookup returns the entry for the given key,
// or nil.
func (t *Table) Lookup(key Key) *Entry {
	return t.entries[key]
}

// Template returns the template for the given
// instruction code, or nil.
func (t *Table) Template(code x86.Code) *Template {
	i := int(code) - 1
	if i < 0 || i >= len(t.templates) {
		return nil
	}

	return t.templates[i]
}

// Templates returns the number of instruction
// forms in the table.
func (t *Table) Templates() int {
	return len(t.templates)
}

// Walk calls fn for each template in code
// order, stopping at the first error.
func (t *Table) Walk(fn func(*Template) error) error {
	for _, tmpl := range t.templates {
		err := fn(tmpl)
		if err != nil {
			return err
		}
	}

	return nil
}

// Entries returns the table's entries, sorted
// by key.
func (t *Table) Entries() []*Entry {
	out := make([]*Entry, len(t.keys))
	for i, key := range t.keys {
		out[i] = t.entries[key]
	}

	return out
}

// Match returns the templates whose encoding
// matches the start of the given 64-bit
// machine code, in code order.
func (t *Table) Match(code []byte) []*Template {
	var out []*Template
	for _, tmpl := range t.templates {
		if tmpl.Encoding.MatchesMachineCode(code) == x86.Match {
			out = append(out, tmpl)
		}
	}

	return out
}

func newTable() *Table {
	return &Table{
		entries: make(map[Key]*Entry),
	}
}

// add inserts tmpl under each key its
// encoding can produce.
func (t *Table) add(tmpl *Template) error {
	m, last := tmpl.Encoding.Map()
	key := Key{
		Family: tmpl.Family,
		Map:    m,
		Opcode: last,
		Prefix: tmpl.Encoding.Prefix(),
	}

	n := 1
	if tmpl.Encoding.RegisterModifier != 0 {
		n = 8
	}

	for i := 0; i < n; i++ {
		key.Opcode = last + byte(i)
		entry := t.entries[key]
		if entry == nil {
			entry = &Entry{Key: key, NeedsModRM: tmpl.Encoding.ModRM}
			t.entries[key] = entry
			t.keys = append(t.keys, key)
		}

		if entry.NeedsModRM != tmpl.Encoding.ModRM {
			return fmt.Errorf("ModR/M usage differs from %s for opcode %s", entry.Templates[0].Code, key)
		}

		entry.Templates = append(entry.Templates, tmpl)
	}

	t.templates = append(t.templates, tmpl)

	return nil
}

func (t *Table) sortKeys() {
	sort.Slice(t.keys, func(i, j int) bool { return t.keys[i].less(t.keys[j]) })
}
