// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package optable

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"firefly-os.dev/x86dec/x86"
)

//go:embed opcodes.csv
var opcodesCSV []byte

// Columns lists the columns of the
// opcode table, in order.
var Columns = []string{"code", "syntax", "encoding", "modes", "tags", "tuple", "memory", "broadcast"}

var defaultTable *Table

func init() {
	table, err := Parse(bytes.NewReader(opcodesCSV))
	if err != nil {
		panic("invalid opcode table: " + err.Error())
	}

	defaultTable = table
}

// Default returns the opcode table built
// from the embedded data.
func Default() *Table {
	return defaultTable
}

// Parse reads an opcode table in CSV form.
//
// Each row's code must match the instruction
// code at the same position in package x86,
// so the table and the generated codes cannot
// drift apart.
func Parse(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = len(Columns)

	header, err := cr.Read()
	if err != nil {
		return nil, csvError(err)
	}

	for i, name := range Columns {
		if header[i] != name {
			line, _ := cr.FieldPos(i)
			return nil, Errorf(line, "", "column %d: got %q, want %q", i+1, header[i], name)
		}
	}

	table := newTable()
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, csvError(err)
		}

		line, _ := cr.FieldPos(0)
		tmpl, err := parseTemplate(record)
		if err != nil {
			return nil, Errorf(line, record[0], "%v", err)
		}

		tmpl.Row = line
		want := x86.Code(table.Templates() + 1)
		if tmpl.Code != want {
			return nil, Errorf(line, record[0], "code out of order: got %s, want %s (regenerate codes.go)", tmpl.Code, want)
		}

		err = table.add(tmpl)
		if err != nil {
			return nil, Errorf(line, record[0], "%v", err)
		}
	}

	if table.Templates() != x86.NumCodes-1 {
		return nil, Errorf(0, "", "found %d instruction forms, want %d (regenerate codes.go)", table.Templates(), x86.NumCodes-1)
	}

	table.sortKeys()

	return table, nil
}

func csvError(err error) error {
	var perr *csv.ParseError
	if errors.As(err, &perr) {
		return Errorf(perr.Line, "", "%v", perr.Err)
	}

	return Errorf(0, "", "%v", err)
}

// parseTemplate parses one row of the table.
func parseTemplate(record []string) (*Template, error) {
	var (
		name      = record[0]
		syntax    = record[1]
		encoding  = record[2]
		modes     = record[3]
		tags      = record[4]
		tuple     = record[5]
		memory    = record[6]
		broadcast = record[7]
	)

	code, ok := x86.CodesByName[name]
	if !ok {
		return nil, fmt.Errorf("unknown instruction code %q (regenerate codes.go)", name)
	}

	enc, err := x86.ParseEncoding(encoding)
	if err != nil {
		return nil, err
	}

	t := &Template{
		Code:     code,
		Syntax:   syntax,
		Encoding: enc,
	}

	switch {
	case enc.VEX:
		t.Family = FamilyVEX
	case enc.XOP:
		t.Family = FamilyXOP
	case enc.EVEX:
		t.Family = FamilyEVEX
	default:
		t.Family = FamilyLegacy
	}

	err = t.parseSyntax(syntax)
	if err != nil {
		return nil, err
	}

	for _, mode := range strings.Fields(modes) {
		switch mode {
		case "16":
			t.Modes |= Mode16
		case "32":
			t.Modes |= Mode32
		case "64":
			t.Modes |= Mode64
		default:
			return nil, fmt.Errorf("invalid mode %q", mode)
		}
	}

	if t.Modes == 0 {
		return nil, fmt.Errorf("no CPU modes")
	}

	for _, tag := range strings.Fields(tags) {
		switch tag {
		case "o16", "o32", "o64":
			if t.OperandSize != 0 {
				return nil, fmt.Errorf("second operand size tag %q", tag)
			}

			t.OperandSize, _ = strconv.Atoi(tag[1:])
		case "d64":
			t.Default64 = true
		case "f64":
			t.Force64 = true
		case "lock":
			t.Lock = true
		case "rep":
			t.Rep = true
		case "norexb":
			t.NoREXB = true
		case "kreq":
			t.MaskRequired = true
		default:
			return nil, fmt.Errorf("invalid tag %q", tag)
		}
	}

	if enc.REX_W {
		if t.OperandSize != 0 && t.OperandSize != 64 {
			return nil, fmt.Errorf("REX.W encoding with %d-bit operand size", t.OperandSize)
		}

		t.OperandSize = 64
	}

	t.Tuple, ok = x86.TupleTypes[tuple]
	if !ok {
		return nil, fmt.Errorf("invalid tuple type %q", tuple)
	}

	if memory != "" {
		t.Memory, ok = x86.MemorySizes[memory]
		if !ok {
			return nil, fmt.Errorf("invalid memory size %q", memory)
		}
	}

	if broadcast != "" {
		t.BroadcastMemory, ok = x86.MemorySizes[broadcast]
		if !ok {
			return nil, fmt.Errorf("invalid broadcast memory size %q", broadcast)
		}

		if !t.BroadcastMemory.IsBroadcast() {
			return nil, fmt.Errorf("broadcast memory size %s is not a broadcast", t.BroadcastMemory)
		}
	}

	err = t.check()
	if err != nil {
		return nil, err
	}

	return t, nil
}

// parseSyntax splits the Intel syntax into
// the mnemonic and operands, removing any
// EVEX decorations.
func (t *Template) parseSyntax(syntax string) error {
	mnemonic, rest, _ := strings.Cut(syntax, " ")
	if mnemonic == "" {
		return fmt.Errorf("missing mnemonic")
	}

	t.Mnemonic = mnemonic
	if rest == "" {
		return nil
	}

	for _, name := range strings.Split(rest, ",") {
		name = strings.TrimSpace(name)
		switch name {
		case "{er}":
			t.Rounding = true
			continue
		case "{sae}":
			t.Suppress = true
			continue
		}

		if s, ok := strings.CutSuffix(name, "{z}"); ok {
			t.Zero = true
			name = s
		}

		if s, ok := strings.CutSuffix(name, "{k1}"); ok {
			t.Mask = true
			name = s
		}

		for _, suffix := range []string{"/m32bcst", "/m64bcst"} {
			if s, ok := strings.CutSuffix(name, suffix); ok {
				t.Broadcast = true
				name = s
			}
		}

		op, ok := x86.Operands[name]
		if !ok {
			return fmt.Errorf("unknown operand %q", name)
		}

		t.Operands = append(t.Operands, op)
	}

	if len(t.Operands) > 4 {
		return fmt.Errorf("%d operands, want at most 4", len(t.Operands))
	}

	return nil
}

// check ensures that the template's
// operands agree with its encoding and
// derives the register and memory
// constraints on the ModR/M byte.
func (t *Template) check() error {
	enc := t.Encoding
	evex := t.Family == FamilyEVEX
	vector := t.Family != FamilyLegacy
	if !evex && (t.Mask || t.Zero || t.Rounding || t.Suppress || t.Broadcast) {
		return fmt.Errorf("EVEX decorations without EVEX encoding")
	}

	if t.Zero && !t.Mask {
		return fmt.Errorf("{z} without {k1}")
	}

	if t.MaskRequired && !t.Mask {
		return fmt.Errorf("kreq without {k1}")
	}

	if t.Broadcast != (t.BroadcastMemory != x86.MemorySizeUnknown) {
		return fmt.Errorf("broadcast operand and broadcast memory size disagree")
	}

	if t.Default64 && t.Force64 {
		return fmt.Errorf("both d64 and f64")
	}

	var is4, rm, sib bool
	for _, op := range t.Operands {
		switch op.Encoding {
		case x86.EncodingModRMreg:
			if !enc.ModRM {
				return fmt.Errorf("operand %s needs a ModR/M byte", op.Name)
			}
		case x86.EncodingModRMrm:
			if !enc.ModRM {
				return fmt.Errorf("operand %s needs a ModR/M byte", op.Name)
			}

			rm = true
			switch op.Type {
			case x86.TypeMemory:
				t.MemOnly = true
			case x86.TypeRegister:
				t.RegOnly = true
			}
		case x86.EncodingSIB:
			if !enc.VSIB {
				return fmt.Errorf("operand %s needs a vector SIB", op.Name)
			}

			sib = true
			t.MemOnly = true
		case x86.EncodingVEXvvvv:
			if !vector {
				return fmt.Errorf("operand %s needs a VEX, XOP, or EVEX prefix", op.Name)
			}
		case x86.EncodingVEXis4:
			is4 = true
		case x86.EncodingRegisterModifier:
			if enc.RegisterModifier == 0 {
				return fmt.Errorf("operand %s needs an opcode register modifier", op.Name)
			}
		case x86.EncodingCodeOffset:
			if !enc.CodeOffset {
				return fmt.Errorf("operand %s needs a code offset", op.Name)
			}
		}
	}

	if is4 != enc.VEXis4 {
		return fmt.Errorf("/is4 encoding and operands disagree")
	}

	if enc.VSIB && !sib {
		return fmt.Errorf("/vsib encoding without a vector memory operand")
	}

	if rm && sib {
		return fmt.Errorf("both r/m and vector SIB operands")
	}

	if evex && t.Tuple == x86.TupleNone {
		for _, op := range t.Operands {
			if op.HasMemory() {
				return fmt.Errorf("EVEX memory operand %s without a tuple type", op.Name)
			}
		}
	}

	return nil
}
