// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

// Package decoder decodes x86 machine code into
// structured instructions.
//
// A Decoder reads instructions one at a time from
// a byte slice, in 16-bit, 32-bit, or 64-bit mode.
// Each instruction passes through the same stages:
// the legacy prefixes are scanned, any VEX, XOP, or
// EVEX prefix is decoded into a common set of fields,
// the instruction form is chosen from the opcode
// table, the ModR/M, SIB, and displacement bytes are
// resolved, and the form's operands are bound to
// registers, memory, and immediates. EVEX forms then
// have their opmask, zeroing, broadcast, and rounding
// settings applied.
//
// Malformed input is reported with a *DecodeError,
// which wraps one of the package's sentinel errors.
// The decoder always moves past a bad instruction,
// so decoding can continue with the next one.
package decoder

import (
	"encoding/binary"
	"fmt"

	"firefly-os.dev/x86dec/internal/optable"
	"firefly-os.dev/x86dec/x86"
)

// Options changes how strictly instructions
// are decoded and which prefix families are
// recognised.
type Options uint8

const (
	// NoInvalidCheck accepts instructions that
	// break only legality rules, such as a lock
	// prefix on a form that cannot be locked.
	// Truncated input and unknown opcodes are
	// still rejected.
	NoInvalidCheck Options = 1 << iota

	// NoVEX treats C4 and C5 as LES and LDS.
	NoVEX

	// NoXOP treats 8F as POP.
	NoXOP

	// NoEVEX treats 62 as BOUND.
	NoEVEX
)

// Decoder decodes a sequence of instructions.
//
// A Decoder is not safe for concurrent use,
// but separate Decoders can be used in
// parallel.
type Decoder struct {
	bitness int
	data    []byte
	pos     int
	ip      uint64
	options Options
	table   *optable.Table
}

// New returns a decoder for the machine code
// in data, which is not copied. The first
// instruction is at address ip.
func New(bitness int, data []byte, ip uint64, options Options) (*Decoder, error) {
	switch bitness {
	case 16, 32, 64:
	default:
		return nil, ErrBitness
	}

	d := &Decoder{
		bitness: bitness,
		data:    data,
		ip:      ip,
		options: options,
		table:   optable.Default(),
	}

	return d, nil
}

// Bitness returns the decoder's CPU mode.
func (d *Decoder) Bitness() int { return d.bitness }

// Position returns the offset into the data
// of the next instruction.
func (d *Decoder) Position() int { return d.pos }

// SetPosition moves the decoder to the given
// offset into the data. The instruction
// pointer is not changed.
func (d *Decoder) SetPosition(pos int) error {
	if pos < 0 || pos > len(d.data) {
		return fmt.Errorf("position %d is outside the data (%d bytes)", pos, len(d.data))
	}

	d.pos = pos

	return nil
}

// IP returns the address of the next
// instruction.
func (d *Decoder) IP() uint64 { return d.ip }

// SetIP changes the address of the next
// instruction.
func (d *Decoder) SetIP(ip uint64) { d.ip = ip }

// CanDecode reports whether any bytes
// remain to be decoded.
func (d *Decoder) CanDecode() bool { return d.pos < len(d.data) }

// Decode decodes the next instruction.
//
// Once every byte has been decoded, Decode
// returns ErrNoMoreBytes. If the instruction
// is malformed, Decode returns an Instruction
// with the code x86.INVALID and a *DecodeError.
// In either case, the decoder moves past the
// bytes it has consumed, which is always at
// least one byte.
func (d *Decoder) Decode() (Instruction, error) {
	inst := Instruction{
		Bitness: d.bitness,
		IP:      d.ip,
	}

	if d.pos >= len(d.data) {
		return inst, ErrNoMoreBytes
	}

	end := min(d.pos+x86.MaxInstructionLength, len(d.data))
	s := state{
		mode:    d.bitness,
		options: d.options,
		table:   d.table,
		code:    d.data[d.pos:end],
		more:    end < len(d.data),
	}

	err := s.decode(&inst)
	length := inst.ByteLength
	if err != nil {
		length = max(s.n, 1)
		reason := s.reason
		if s.err != nil {
			reason = ""
		}

		err = &DecodeError{
			Offset: d.pos,
			IP:     d.ip,
			Length: length,
			Err:    err,
			Reason: reason,
		}

		inst = Instruction{
			Code:       x86.INVALID,
			Bitness:    d.bitness,
			IP:         d.ip,
			ByteLength: length,
		}
	}

	d.pos += length
	d.ip += uint64(length)

	return inst, err
}

// state holds the progress of decoding a
// single instruction.
type state struct {
	mode    int
	options Options
	table   *optable.Table
	code    []byte // At most 15 bytes.
	more    bool   // Whether the data continues past code.
	n       int    // The number of bytes consumed.

	err     error // ErrTruncated or ErrTooLong.
	invalid error // The first other error.
	reason  string

	// Legacy prefixes.
	has66     bool
	has67     bool
	lock      bool
	repe      bool
	repne     bool
	mandatory x86.MandatoryPrefix // The candidate mandatory prefix.
	consumed  x86.MandatoryPrefix // The mandatory prefix used by the chosen form.
	segment   *x86.Register
	rex       x86.REX
	hasREX    bool

	f fields

	opcode     byte
	modrm      x86.ModRM
	hasModRM   bool
	opSize     int
	addrSize   int
	vectorBits int

	mem     Memory // The ModR/M memory operand.
	offsets ConstantOffsets
}

// truncated records that the instruction
// continues beyond the available bytes.
func (s *state) truncated() {
	if s.err != nil {
		return
	}

	if s.more {
		s.err = ErrTooLong
	} else {
		s.err = ErrTruncated
	}
}

// next consumes and returns one byte.
func (s *state) next() byte {
	if s.err != nil {
		return 0
	}

	if s.n >= len(s.code) {
		s.truncated()
		return 0
	}

	b := s.code[s.n]
	s.n++

	return b
}

// peek returns the next byte without
// consuming it.
func (s *state) peek() (byte, bool) {
	if s.err != nil || s.n >= len(s.code) {
		return 0, false
	}

	return s.code[s.n], true
}

// read consumes a little-endian value of
// 1, 2, 4, or 8 bytes.
func (s *state) read(size int) uint64 {
	if s.err != nil {
		return 0
	}

	if s.n+size > len(s.code) {
		s.n = len(s.code)
		s.truncated()
		return 0
	}

	b := s.code[s.n : s.n+size]
	s.n += size
	switch size {
	case 1:
		return uint64(b[0])
	case 2:
		return uint64(binary.LittleEndian.Uint16(b))
	case 4:
		return uint64(binary.LittleEndian.Uint32(b))
	case 8:
		return binary.LittleEndian.Uint64(b)
	}

	panic(fmt.Sprintf("invalid read size %d", size))
}

func signExtend(v uint64, size int) int64 {
	switch size {
	case 1:
		return int64(int8(v))
	case 2:
		return int64(int16(v))
	case 4:
		return int64(int32(v))
	}

	return int64(v)
}

// fail records an error, unless one has
// already been found. Decoding continues
// so the instruction's length is known.
func (s *state) fail(err error, format string, v ...any) {
	if s.invalid != nil {
		return
	}

	s.invalid = err
	s.reason = fmt.Sprintf(format, v...)
}

// illegal records an encoding that breaks
// only a legality rule, which is ignored
// with NoInvalidCheck.
func (s *state) illegal(err error, format string, v ...any) {
	if s.options&NoInvalidCheck != 0 {
		return
	}

	s.fail(err, format, v...)
}

// abort records an error that prevents any
// further decoding.
func (s *state) abort(err error, format string, v ...any) error {
	s.invalid = err
	s.reason = fmt.Sprintf(format, v...)

	return s.result()
}

func (s *state) result() error {
	if s.err != nil {
		return s.err
	}

	return s.invalid
}

// decode runs each stage of decoding for
// a single instruction.
func (s *state) decode(inst *Instruction) error {
	m, opcode, err := s.readOpcode()
	if err != nil {
		return err
	}

	tmpl, err := s.lookup(m, opcode)
	if err != nil {
		return err
	}

	s.opSize = tmpl.OperandSize
	if s.opSize == 0 {
		s.opSize = optable.OperandSize(s.mode, s.has66 && s.consumed != x86.Mandatory66, s.f.W, tmpl)
	}

	s.addrSize = s.addressSize()
	if s.hasModRM && !s.modrm.IsRegister() {
		s.resolveMemory(tmpl)
	}

	for i, op := range tmpl.Operands {
		inst.Operands[i] = s.bind(tmpl, i, op)
	}

	if s.err != nil {
		return s.err
	}

	s.checkVVVV(tmpl)
	s.checkGather(tmpl, inst)
	s.finalize(tmpl, inst)
	s.assemble(tmpl, inst)

	return s.result()
}

// lookup chooses the instruction form, reading
// the ModR/M byte if the opcode has one.
//
// A legacy 66, F2, or F3 prefix may select the
// instruction or just modify it, so forms with
// the prefix as a mandatory prefix are tried
// first, then forms without one.
func (s *state) lookup(m x86.Map, opcode byte) (*optable.Template, error) {
	key := optable.Key{
		Family: s.f.family,
		Map:    m,
		Opcode: opcode,
		Prefix: s.f.pp,
	}

	entry := s.table.Lookup(key)
	var fallback *optable.Entry
	if s.f.family == optable.FamilyLegacy && key.Prefix != x86.MandatoryNone {
		plain := key
		plain.Prefix = x86.MandatoryNone
		fallback = s.table.Lookup(plain)
		if entry == nil {
			entry, fallback = fallback, nil
		}
	}

	if entry == nil {
		return nil, s.abort(ErrInvalidOpcode, "no instruction with opcode %s", key)
	}

	if entry.NeedsModRM {
		s.modrm = x86.ModRM(s.next())
		s.hasModRM = true
		if s.err != nil {
			return nil, s.err
		}
	}

	s.vectorBits = s.vectorLength()
	sel := s.selector(entry.Key.Prefix)
	tmpl := entry.Select(&sel)
	if tmpl == nil && fallback != nil && fallback.NeedsModRM == entry.NeedsModRM {
		entry = fallback
		sel = s.selector(x86.MandatoryNone)
		tmpl = entry.Select(&sel)
	}

	if tmpl == nil {
		return nil, s.abort(ErrInvalidOpcode, "no form of opcode %s matches", entry.Key)
	}

	if s.f.family == optable.FamilyLegacy {
		s.consumed = entry.Key.Prefix
	}

	return tmpl, nil
}

// selector describes the instruction for
// choosing between the forms of an opcode,
// given the mandatory prefix of those forms.
func (s *state) selector(consumed x86.MandatoryPrefix) optable.Selector {
	sel := optable.Selector{
		Mode:  s.mode,
		W:     s.f.W,
		ModRM: s.modrm,
		REXB:  s.f.B != 0,
	}

	if s.f.family == optable.FamilyLegacy {
		sel.Has66 = s.has66 && consumed != x86.Mandatory66
		sel.HasF2 = s.repne && consumed != x86.MandatoryF2
		sel.HasF3 = s.repe && consumed != x86.MandatoryF3
	} else {
		sel.VectorBits = s.vectorBits
	}

	return sel
}
