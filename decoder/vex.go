// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package decoder

import (
	"firefly-os.dev/x86dec/internal/optable"
	"firefly-os.dev/x86dec/x86"
)

// fields contains the instruction properties
// that can be set by a REX, VEX, XOP, or EVEX
// prefix, normalised so the later stages do
// not depend on which prefix was used.
//
// Register extensions are stored as the value
// to add to the register number, so R, X, and
// B are 0 or 8, and Rp and Vp are 0 or 16.
type fields struct {
	family optable.Family
	m      x86.Map
	pp     x86.MandatoryPrefix

	R, X, B byte
	Rp, Vp  byte

	vvvv    byte // The register number in vvvv.
	vvvvAll byte // Every vvvv bit, including those ignored outside 64-bit mode.
	W       bool
	L       byte // VEX.L, or EVEX.L'L.

	// EVEX only.
	aaa  byte
	z    bool
	bcst bool // EVEX.b
}

// extensionPrefix decodes the VEX, XOP, or EVEX
// prefix that starts with b.
func (s *state) extensionPrefix(b byte) error {
	if s.hasREX {
		s.illegal(ErrInvalidPrefix, "REX prefix before %s prefix", s.f.family)
	}

	if s.mandatory != x86.MandatoryNone {
		s.illegal(ErrInvalidPrefix, "%s prefix before %s prefix", s.mandatory, s.f.family)
	}

	s.hasREX = false
	s.rex = 0

	switch s.f.family {
	case optable.FamilyEVEX:
		return s.evex()
	case optable.FamilyXOP:
		return s.vex(b, x86.MapXOP8, x86.MapXOPA)
	}

	return s.vex(b, x86.Map0F, x86.Map0F3A)
}

// vex decodes a 2-byte or 3-byte VEX prefix,
// or an XOP prefix, whose map must be in the
// range [first, last].
func (s *state) vex(b byte, first, last x86.Map) error {
	var p x86.VEX
	if b == 0xc5 {
		p = x86.VEX2(s.next())
	} else {
		p[0] = s.next()
		p[1] = s.next()
	}

	if s.err != nil {
		return s.err
	}

	vvvv := p.VVVV()
	s.f.vvvvAll = vvvv
	if s.mode == 64 {
		if p.R() {
			s.f.R = 8
		}
		if p.X() {
			s.f.X = 8
		}
		if p.B() {
			s.f.B = 8
		}
	} else {
		vvvv &= 7
	}

	s.f.vvvv = vvvv
	s.f.W = p.W()
	if p.L() {
		s.f.L = 1
	}

	s.f.pp = x86.MandatoryPrefix(p.PP())
	s.f.m = x86.Map(p.M_MMMM())
	if s.f.m < first || s.f.m > last {
		return s.abort(ErrInvalidOpcode, "invalid %s map %d", s.f.family, p.M_MMMM())
	}

	return nil
}

// evex decodes an EVEX prefix.
func (s *state) evex() error {
	var p x86.EVEX
	p[0] = s.next()
	p[1] = s.next()
	p[2] = s.next()
	if s.err != nil {
		return s.err
	}

	if p.Reserved() != 0 || !p.Fixed() {
		s.fail(ErrInvalidPrefix, "reserved EVEX bits set in %s", p)
	}

	if p.MM() == 0 {
		return s.abort(ErrInvalidOpcode, "invalid EVEX map 0")
	}

	vvvv := p.VVVV()
	s.f.vvvvAll = vvvv
	if s.mode == 64 {
		if p.R() {
			s.f.R = 8
		}
		if p.X() {
			s.f.X = 8
		}
		if p.B() {
			s.f.B = 8
		}
		if p.Rp() {
			s.f.Rp = 16
		}
		if p.Vp() {
			s.f.Vp = 16
		}

		s.f.vvvvAll += s.f.Vp
		vvvv += s.f.Vp
	} else {
		vvvv &= 7
	}

	s.f.vvvv = vvvv
	s.f.W = p.W()
	s.f.L = p.LL()
	s.f.pp = x86.MandatoryPrefix(p.PP())
	s.f.m = x86.Map(p.MM())
	s.f.aaa = p.AAA()
	s.f.z = p.Z()
	s.f.bcst = p.Br()
	if s.f.z && s.f.aaa == 0 {
		s.illegal(ErrInvalidOperand, "zeroing-masking with k0")
	}

	return nil
}

// vectorLength returns the vector length in
// bits used to choose the instruction form.
func (s *state) vectorLength() int {
	switch s.f.family {
	case optable.FamilyVEX, optable.FamilyXOP:
		return 128 << s.f.L
	case optable.FamilyEVEX:
		// With a register operand, b selects
		// embedded rounding or SAE, which
		// implies 512-bit vectors.
		if s.f.bcst && s.hasModRM && s.modrm.IsRegister() {
			return 512
		}

		if s.f.L == 3 {
			// Only forms that ignore the vector
			// length can match.
			return 1024
		}

		return 128 << s.f.L
	}

	return 0
}
