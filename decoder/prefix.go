// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package decoder

import (
	"firefly-os.dev/x86dec/internal/optable"
	"firefly-os.dev/x86dec/x86"
)

// readOpcode consumes the prefixes and opcode
// bytes, returning the opcode map and the
// final opcode byte.
func (s *state) readOpcode() (x86.Map, byte, error) {
	s.scanPrefixes()
	if s.err != nil {
		return 0, 0, s.err
	}

	b := s.next()
	if s.err != nil {
		return 0, 0, s.err
	}

	s.f.family = s.extension(b)
	if s.f.family == optable.FamilyLegacy {
		if s.hasREX {
			if s.rex.R() {
				s.f.R = 8
			}
			if s.rex.X() {
				s.f.X = 8
			}
			if s.rex.B() {
				s.f.B = 8
			}

			s.f.W = s.rex.W()
		}

		m, opcode := s.legacyOpcode(b)
		s.f.m = m
		s.f.pp = s.mandatory
		s.opcode = opcode

		return m, opcode, s.err
	}

	err := s.extensionPrefix(b)
	if err != nil {
		return 0, 0, err
	}

	s.opcode = s.next()

	return s.f.m, s.opcode, s.err
}

// scanPrefixes consumes any legacy and REX
// prefixes.
func (s *state) scanPrefixes() {
	for {
		b, ok := s.peek()
		if !ok {
			return
		}

		if s.mode == 64 && x86.IsREX(b) {
			s.n++
			s.rex = x86.REX(b)
			s.hasREX = true
			continue
		}

		if !x86.IsLegacyPrefix(b) {
			return
		}

		s.n++

		// A REX prefix only applies if it
		// immediately precedes the opcode.
		s.rex = 0
		s.hasREX = false

		switch p := x86.Prefix(b); p {
		case x86.PrefixLock:
			s.lock = true
		case x86.PrefixRepeatNot:
			s.repne = true
			s.repe = false
			s.mandatory = x86.MandatoryF2
		case x86.PrefixRepeat:
			s.repe = true
			s.repne = false
			s.mandatory = x86.MandatoryF3
		case x86.PrefixOperandSize:
			s.has66 = true
			if s.mandatory == x86.MandatoryNone {
				s.mandatory = x86.Mandatory66
			}
		case x86.PrefixAddressSize:
			s.has67 = true
		default:
			seg := p.Segment()
			if s.mode == 64 && seg != x86.FS && seg != x86.GS {
				// In 64-bit mode, an ES, CS, SS, or
				// DS override does not replace FS
				// or GS.
				if s.segment == x86.FS || s.segment == x86.GS {
					continue
				}
			}

			s.segment = seg
		}
	}
}

// extension returns the prefix family
// introduced by b.
func (s *state) extension(b byte) optable.Family {
	switch b {
	case 0xc4, 0xc5:
		if s.options&NoVEX == 0 && s.extensionFollows(false) {
			return optable.FamilyVEX
		}
	case 0x62:
		if s.options&NoEVEX == 0 && s.extensionFollows(false) {
			return optable.FamilyEVEX
		}
	case 0x8f:
		if s.options&NoXOP == 0 && s.extensionFollows(true) {
			return optable.FamilyXOP
		}
	}

	return optable.FamilyLegacy
}

// extensionFollows reports whether a byte
// that can start a VEX, XOP, or EVEX prefix
// does so.
//
// Outside 64-bit mode, C4, C5, and 62 are
// also LES, LDS, and BOUND, which can only
// take a memory operand, so the prefix is
// recognised when the following byte would
// be a register ModR/M byte. 8F is also POP
// r/m, which has a ModR/M reg field of zero,
// in every mode.
func (s *state) extensionFollows(xop bool) bool {
	if !xop && s.mode == 64 {
		return true
	}

	next, ok := s.peek()
	if !ok {
		// Leave the truncation to be found by
		// the legacy decoding.
		return false
	}

	modrm := x86.ModRM(next)
	if xop {
		return modrm.Reg() != 0
	}

	return modrm.IsRegister()
}

// legacyOpcode consumes any escape bytes
// after the first opcode byte b.
func (s *state) legacyOpcode(b byte) (x86.Map, byte) {
	if b != 0x0f {
		return x86.MapLegacy, b
	}

	b = s.next()
	switch b {
	case 0x38:
		return x86.Map0F38, s.next()
	case 0x3a:
		return x86.Map0F3A, s.next()
	}

	return x86.Map0F, b
}
