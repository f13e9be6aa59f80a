// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDisp8N(t *testing.T) {
	tests := []struct {
		Name      string
		Tuple     TupleType
		Bits      int
		W         bool
		Broadcast bool
		Element   int
		Want      int
	}{
		{Name: "full 128", Tuple: TupleFull, Bits: 128, Want: 16},
		{Name: "full 512", Tuple: TupleFull, Bits: 512, Want: 64},
		{Name: "full broadcast W0", Tuple: TupleFull, Bits: 512, Broadcast: true, Want: 4},
		{Name: "full broadcast W1", Tuple: TupleFull, Bits: 256, W: true, Broadcast: true, Want: 8},
		{Name: "half broadcast", Tuple: TupleHalf, Bits: 512, Broadcast: true, Want: 4},
		{Name: "half", Tuple: TupleHalf, Bits: 256, Want: 16},
		{Name: "full mem", Tuple: TupleFullMem, Bits: 128, Want: 16},
		{Name: "scalar dword", Tuple: Tuple1Scalar, Bits: 128, Element: 4, Want: 4},
		{Name: "scalar qword", Tuple: Tuple1Scalar, Bits: 512, Element: 8, Want: 8},
		{Name: "fixed W1", Tuple: Tuple1Fixed, Bits: 128, W: true, Want: 8},
		{Name: "tuple2", Tuple: Tuple2, Bits: 256, Want: 8},
		{Name: "tuple4", Tuple: Tuple4, Bits: 512, Want: 16},
		{Name: "tuple8", Tuple: Tuple8, Bits: 512, Want: 32},
		{Name: "quarter mem", Tuple: TupleQuarterMem, Bits: 512, Want: 16},
		{Name: "eighth mem", Tuple: TupleEighthMem, Bits: 128, Want: 2},
		{Name: "mem128", Tuple: TupleMem128, Bits: 512, Want: 16},
		{Name: "movddup 128", Tuple: TupleMOVDDUP, Bits: 128, Want: 8},
		{Name: "movddup 256", Tuple: TupleMOVDDUP, Bits: 256, Want: 32},
		{Name: "none", Tuple: TupleNone, Bits: 512, Want: 1},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			got := test.Tuple.Disp8N(test.Bits, test.W, test.Broadcast, test.Element)
			if got != test.Want {
				t.Fatalf("%s.Disp8N(%d, %v, %v, %d): got %d, want %d", test.Tuple, test.Bits, test.W, test.Broadcast, test.Element, got, test.Want)
			}
		})
	}
}

func TestRegisterFor(t *testing.T) {
	tests := []struct {
		Name string
		Type RegisterType
		Bits int
		Num  byte
		REX  bool
		Want *Register
	}{
		{Name: "al", Type: TypeGeneralPurpose, Bits: 8, Num: 0, Want: AL},
		{Name: "ah", Type: TypeGeneralPurpose, Bits: 8, Num: 4, Want: AH},
		{Name: "spl", Type: TypeGeneralPurpose, Bits: 8, Num: 4, REX: true, Want: SPL},
		{Name: "r9l", Type: TypeGeneralPurpose, Bits: 8, Num: 9, REX: true, Want: R9L},
		{Name: "bx", Type: TypeGeneralPurpose, Bits: 16, Num: 3, Want: BX},
		{Name: "r15d", Type: TypeGeneralPurpose, Bits: 32, Num: 15, REX: true, Want: R15D},
		{Name: "rsp", Type: TypeGeneralPurpose, Bits: 64, Num: 4, Want: RSP},
		{Name: "ds", Type: TypeSegment, Num: 3, Want: DS},
		{Name: "bad segment", Type: TypeSegment, Num: 6, Want: nil},
		{Name: "k7", Type: TypeOpmask, Num: 7, Want: K7},
		{Name: "mm5", Type: TypeMMX, Num: 5, Want: MM5},
		{Name: "xmm9", Type: TypeXMM, Num: 9, Want: XMM9},
		{Name: "ymm31", Type: TypeYMM, Num: 31, Want: YMM31},
		{Name: "zmm16", Type: TypeZMM, Num: 16, Want: ZMM16},
		{Name: "too big", Type: TypeGeneralPurpose, Bits: 32, Num: 16, Want: nil},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			got := RegisterFor(test.Type, test.Bits, test.Num, test.REX)
			if got != test.Want {
				t.Fatalf("RegisterFor(%s, %d, %d, %v): got %v, want %v", test.Type, test.Bits, test.Num, test.REX, got, test.Want)
			}
		})
	}
}

func TestRegisterEncodings(t *testing.T) {
	// Every register must be reachable
	// from its own encoding.
	for _, reg := range Registers {
		if reg.Type == TypeInstructionPointer {
			continue
		}

		rex := reg.MinMode == 64
		got := RegisterFor(reg.Type, reg.Bits, reg.Reg, rex)
		if got != reg {
			t.Errorf("RegisterFor(%s, %d, %d, %v): got %v, want %v", reg.Type, reg.Bits, reg.Reg, rex, got, reg)
		}
	}
}

func TestVEXFields(t *testing.T) {
	type fields struct {
		R, X, B bool
		Map     byte
		W       bool
		VVVV    byte
		L       bool
		PP      byte
	}

	tests := []struct {
		Name string
		VEX  VEX
		Want fields
	}{
		{
			Name: "two-byte",
			VEX:  VEX2(0x65), // 0 1100 1 01
			Want: fields{R: true, Map: 1, VVVV: 3, L: true, PP: 1},
		},
		{
			Name: "three-byte",
			VEX:  VEX{0xe2, 0x7d}, // 111 00010, 0 1111 1 01
			Want: fields{Map: 2, VVVV: 0, L: true, PP: 1},
		},
		{
			Name: "extended",
			VEX:  VEX{0x43, 0xf1}, // 010 00011, 1 1110 0 01
			Want: fields{R: true, B: true, Map: 3, W: true, VVVV: 1, PP: 1},
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			got := fields{
				R:    test.VEX.R(),
				X:    test.VEX.X(),
				B:    test.VEX.B(),
				Map:  test.VEX.M_MMMM(),
				W:    test.VEX.W(),
				VVVV: test.VEX.VVVV(),
				L:    test.VEX.L(),
				PP:   test.VEX.PP(),
			}

			if diff := cmp.Diff(test.Want, got); diff != "" {
				t.Fatalf("%s: (-want, +got)\n%s", test.VEX, diff)
			}
		})
	}
}

func TestEVEXFields(t *testing.T) {
	type fields struct {
		R, X, B, Rp bool
		MM          byte
		W           bool
		VVVV        byte
		Fixed       bool
		PP          byte
		Z           bool
		LL          byte
		Br          bool
		Vp          bool
		AAA         byte
	}

	// 62 f2 4d 0b: vpshufb xmm?{k3}, xmm6, ...
	evex := EVEX{0xf2, 0x4d, 0x0b}
	want := fields{
		MM:    2,
		VVVV:  6,
		Fixed: true,
		PP:    1,
		AAA:   3,
	}

	got := fields{
		R:     evex.R(),
		X:     evex.X(),
		B:     evex.B(),
		Rp:    evex.Rp(),
		MM:    evex.MM(),
		W:     evex.W(),
		VVVV:  evex.VVVV(),
		Fixed: evex.Fixed(),
		PP:    evex.PP(),
		Z:     evex.Z(),
		LL:    evex.LL(),
		Br:    evex.Br(),
		Vp:    evex.Vp(),
		AAA:   evex.AAA(),
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("%s: (-want, +got)\n%s", evex, diff)
	}

	if evex.Reserved() != 0 {
		t.Fatalf("%s: got reserved bits %#b", evex, evex.Reserved())
	}
}

func TestMemorySizes(t *testing.T) {
	tests := []struct {
		Size      MemorySize
		Bytes     int
		Element   int
		Broadcast bool
	}{
		{MemorySizeUInt16, 2, 2, false},
		{MemorySizePacked128_UInt8, 16, 1, false},
		{MemorySizePacked512_Float32, 64, 4, false},
		{MemorySizeBroadcast512_Float32, 4, 4, true},
		{MemorySizeBroadcast256_Int64, 8, 8, true},
		{MemorySizeSegPtr32, 6, 6, false},
	}

	for _, test := range tests {
		t.Run(test.Size.String(), func(t *testing.T) {
			if got := test.Size.Size(); got != test.Bytes {
				t.Errorf("%s.Size(): got %d, want %d", test.Size, got, test.Bytes)
			}

			if got := test.Size.ElementSize(); got != test.Element {
				t.Errorf("%s.ElementSize(): got %d, want %d", test.Size, got, test.Element)
			}

			if got := test.Size.IsBroadcast(); got != test.Broadcast {
				t.Errorf("%s.IsBroadcast(): got %v, want %v", test.Size, got, test.Broadcast)
			}

			if got := MemorySizes[test.Size.String()]; got != test.Size {
				t.Errorf("MemorySizes[%q]: got %v, want %v", test.Size, got, test.Size)
			}
		})
	}
}

func TestCodes(t *testing.T) {
	if INVALID != 0 {
		t.Fatalf("INVALID: got %d, want 0", INVALID)
	}

	for _, name := range []string{"Cmovs_r16_rm16", "Pblendvb_VX_WX", "EVEX_Vpshufb_xmm_k1z_xmm_xmmm128"} {
		code, ok := CodesByName[name]
		if !ok {
			t.Errorf("CodesByName[%q]: missing", name)
			continue
		}

		if code.String() != name {
			t.Errorf("CodesByName[%q].String(): got %q", name, code.String())
		}
	}
}

func TestPrefixes(t *testing.T) {
	for b := 0; b < 0x100; b++ {
		got := IsLegacyPrefix(byte(b))
		want := false
		switch b {
		case 0x26, 0x2e, 0x36, 0x3e, 0x64, 0x65, 0x66, 0x67, 0xf0, 0xf2, 0xf3:
			want = true
		}

		if got != want {
			t.Errorf("IsLegacyPrefix(%#02x): got %v, want %v", b, got, want)
		}
	}

	if got := PrefixFS.Segment(); got != FS {
		t.Errorf("PrefixFS.Segment(): got %v, want fs", got)
	}

	if got := PrefixLock.Segment(); got != nil {
		t.Errorf("PrefixLock.Segment(): got %v, want nil", got)
	}
}
