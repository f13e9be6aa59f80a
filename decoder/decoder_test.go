// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package decoder

import (
	"encoding/hex"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"firefly-os.dev/x86dec/x86"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(strings.ReplaceAll(s, " ", ""))
	if err != nil {
		t.Fatalf("invalid hex %q: %v", s, err)
	}

	return b
}

func reg(r *x86.Register) Operand {
	return Operand{Kind: OpRegister, Register: r}
}

func mem(m Memory) Operand {
	return Operand{Kind: OpMemory, Memory: m}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		Name    string
		Mode    int
		IP      uint64
		Code    string
		Options Options
		Want    Instruction
	}{
		{
			Name: "cmovs 16-bit",
			Mode: 16,
			Code: "0f 48 18",
			Want: Instruction{
				Code:       x86.Cmovs_r16_rm16,
				ByteLength: 3,
				OpCount:    2,
				Operands: [4]Operand{
					reg(x86.BX),
					mem(Memory{Segment: x86.DS, Base: x86.BX, Index: x86.SI, Scale: 1, Size: x86.MemorySizeUInt16}),
				},
			},
		},
		{
			Name: "evex vpshufb 16-bit",
			Mode: 16,
			Code: "62 f2 4d 0b 00 50 01",
			Want: Instruction{
				Code:       x86.EVEX_Vpshufb_xmm_k1z_xmm_xmmm128,
				ByteLength: 7,
				Encoding:   EncodingEVEX,
				OpCount:    3,
				Operands: [4]Operand{
					reg(x86.XMM2),
					reg(x86.XMM6),
					mem(Memory{Segment: x86.DS, Base: x86.BX, Index: x86.SI, Scale: 1, Displacement: 16, DisplSize: 1, Size: x86.MemorySizePacked128_UInt8}),
				},
				OpMask:  x86.K3,
				Offsets: ConstantOffsets{DisplacementOffset: 6, DisplacementSize: 1},
			},
		},
		{
			Name: "evex vpshufb 32-bit",
			Mode: 32,
			Code: "62 f2 4d 0b 00 50 01",
			Want: Instruction{
				Code:       x86.EVEX_Vpshufb_xmm_k1z_xmm_xmmm128,
				ByteLength: 7,
				Encoding:   EncodingEVEX,
				OpCount:    3,
				Operands: [4]Operand{
					reg(x86.XMM2),
					reg(x86.XMM6),
					mem(Memory{Segment: x86.DS, Base: x86.EAX, Scale: 1, Displacement: 16, DisplSize: 1, Size: x86.MemorySizePacked128_UInt8}),
				},
				OpMask:  x86.K3,
				Offsets: ConstantOffsets{DisplacementOffset: 6, DisplacementSize: 1},
			},
		},
		{
			Name: "evex vpshufb 64-bit",
			Mode: 64,
			Code: "62 f2 4d 0b 00 50 01",
			Want: Instruction{
				Code:       x86.EVEX_Vpshufb_xmm_k1z_xmm_xmmm128,
				ByteLength: 7,
				Encoding:   EncodingEVEX,
				OpCount:    3,
				Operands: [4]Operand{
					reg(x86.XMM2),
					reg(x86.XMM6),
					mem(Memory{Segment: x86.DS, Base: x86.RAX, Scale: 1, Displacement: 16, DisplSize: 1, Size: x86.MemorySizePacked128_UInt8}),
				},
				OpMask:  x86.K3,
				Offsets: ConstantOffsets{DisplacementOffset: 6, DisplacementSize: 1},
			},
		},
		{
			Name: "pblendvb",
			Mode: 64,
			Code: "66 0f 38 10 cd",
			Want: Instruction{
				Code:       x86.Pblendvb_VX_WX,
				ByteLength: 5,
				OpCount:    2,
				Operands:   [4]Operand{reg(x86.XMM1), reg(x86.XMM5)},
			},
		},
		{
			Name: "pblendvb with rex.r",
			Mode: 64,
			Code: "66 44 0f 38 10 cd",
			Want: Instruction{
				Code:       x86.Pblendvb_VX_WX,
				ByteLength: 6,
				OpCount:    2,
				Operands:   [4]Operand{reg(x86.XMM9), reg(x86.XMM5)},
			},
		},
		{
			Name: "evex embedded rounding",
			Mode: 64,
			Code: "62 f1 7c 38 58 c2",
			Want: Instruction{
				Code:            x86.EVEX_Vaddps_zmm_k1z_zmm_zmmm512b32_er,
				ByteLength:      6,
				Encoding:        EncodingEVEX,
				OpCount:         3,
				Operands:        [4]Operand{reg(x86.ZMM0), reg(x86.ZMM0), reg(x86.ZMM2)},
				RoundingControl: RoundDown,
			},
		},
		{
			Name: "evex suppress all exceptions",
			Mode: 64,
			Code: "62 f1 7c 18 5f c2",
			Want: Instruction{
				Code:                  x86.EVEX_Vmaxps_zmm_k1z_zmm_zmmm512b32_sae,
				ByteLength:            6,
				Encoding:              EncodingEVEX,
				OpCount:               3,
				Operands:              [4]Operand{reg(x86.ZMM0), reg(x86.ZMM0), reg(x86.ZMM2)},
				SuppressAllExceptions: true,
			},
		},
		{
			Name: "evex opmask",
			Mode: 64,
			Code: "62 f1 7c 1b 5f c2",
			Want: Instruction{
				Code:                  x86.EVEX_Vmaxps_zmm_k1z_zmm_zmmm512b32_sae,
				ByteLength:            6,
				Encoding:              EncodingEVEX,
				OpCount:               3,
				Operands:              [4]Operand{reg(x86.ZMM0), reg(x86.ZMM0), reg(x86.ZMM2)},
				OpMask:                x86.K3,
				SuppressAllExceptions: true,
			},
		},
		{
			Name: "evex zeroing-masking",
			Mode: 64,
			Code: "62 f1 7c 9b 5f c2",
			Want: Instruction{
				Code:                  x86.EVEX_Vmaxps_zmm_k1z_zmm_zmmm512b32_sae,
				ByteLength:            6,
				Encoding:              EncodingEVEX,
				OpCount:               3,
				Operands:              [4]Operand{reg(x86.ZMM0), reg(x86.ZMM0), reg(x86.ZMM2)},
				OpMask:                x86.K3,
				ZeroingMasking:        true,
				SuppressAllExceptions: true,
			},
		},
		{
			Name: "evex broadcast",
			Mode: 64,
			Code: "62 f1 7d 18 fe 40 01",
			Want: Instruction{
				Code:       x86.EVEX_Vpaddd_xmm_k1z_xmm_xmmm128b32,
				ByteLength: 7,
				Encoding:   EncodingEVEX,
				OpCount:    3,
				Operands: [4]Operand{
					reg(x86.XMM0),
					reg(x86.XMM0),
					mem(Memory{Segment: x86.DS, Base: x86.RAX, Scale: 1, Displacement: 4, DisplSize: 1, Size: x86.MemorySizeBroadcast128_Int32, Broadcast: true}),
				},
				Offsets: ConstantOffsets{DisplacementOffset: 6, DisplacementSize: 1},
			},
		},
		{
			Name: "lock add",
			Mode: 32,
			Code: "f0 01 18",
			Want: Instruction{
				Code:          x86.Add_rm32_r32,
				ByteLength:    3,
				OpCount:       2,
				Operands:      [4]Operand{mem(Memory{Segment: x86.DS, Base: x86.EAX, Scale: 1, Size: x86.MemorySizeUInt32}), reg(x86.EBX)},
				HasLockPrefix: true,
			},
		},
		{
			Name:    "lock on register without checks",
			Mode:    32,
			Code:    "f0 01 c0",
			Options: NoInvalidCheck,
			Want: Instruction{
				Code:          x86.Add_rm32_r32,
				ByteLength:    3,
				OpCount:       2,
				Operands:      [4]Operand{reg(x86.EAX), reg(x86.EAX)},
				HasLockPrefix: true,
			},
		},
		{
			Name: "mov imm64",
			Mode: 64,
			Code: "48 b8 88 77 66 55 44 33 22 11",
			Want: Instruction{
				Code:       x86.Mov_r64_imm64,
				ByteLength: 10,
				OpCount:    2,
				Operands:   [4]Operand{reg(x86.RAX), {Kind: OpImmediate64, Immediate: 0x1122334455667788}},
				Offsets:    ConstantOffsets{ImmediateOffset: 2, ImmediateSize: 8},
			},
		},
		{
			Name: "mov extended register",
			Mode: 64,
			Code: "41 b8 01 00 00 00",
			Want: Instruction{
				Code:       x86.Mov_r32_imm32,
				ByteLength: 6,
				OpCount:    2,
				Operands:   [4]Operand{reg(x86.R8D), {Kind: OpImmediate32, Immediate: 1}},
				Offsets:    ConstantOffsets{ImmediateOffset: 2, ImmediateSize: 4},
			},
		},
		{
			Name: "add sign-extended imm8",
			Mode: 32,
			Code: "83 c0 ff",
			Want: Instruction{
				Code:       x86.Add_rm32_imm8,
				ByteLength: 3,
				OpCount:    2,
				Operands:   [4]Operand{reg(x86.EAX), {Kind: OpImmediate8to32, Immediate: 0xffff_ffff}},
				Offsets:    ConstantOffsets{ImmediateOffset: 2, ImmediateSize: 1},
			},
		},
		{
			Name: "add sign-extended imm8 to 64 bits",
			Mode: 64,
			Code: "48 83 c0 ff",
			Want: Instruction{
				Code:       x86.Add_rm64_imm8,
				ByteLength: 4,
				OpCount:    2,
				Operands:   [4]Operand{reg(x86.RAX), {Kind: OpImmediate8to64, Immediate: 0xffff_ffff_ffff_ffff}},
				Offsets:    ConstantOffsets{ImmediateOffset: 3, ImmediateSize: 1},
			},
		},
		{
			Name: "lea rip-relative",
			Mode: 64,
			IP:   0x1000,
			Code: "48 8d 05 10 00 00 00",
			Want: Instruction{
				Code:       x86.Lea_r64_m,
				ByteLength: 7,
				OpCount:    2,
				Operands:   [4]Operand{reg(x86.RAX), mem(Memory{Segment: x86.DS, Base: x86.RIP, Scale: 1, Displacement: 0x10, DisplSize: 4})},
				Offsets:    ConstantOffsets{DisplacementOffset: 3, DisplacementSize: 4},
			},
		},
		{
			Name: "mov stack base",
			Mode: 32,
			Code: "8b 45 08",
			Want: Instruction{
				Code:       x86.Mov_r32_rm32,
				ByteLength: 3,
				OpCount:    2,
				Operands:   [4]Operand{reg(x86.EAX), mem(Memory{Segment: x86.SS, Base: x86.EBP, Scale: 1, Displacement: 8, DisplSize: 1, Size: x86.MemorySizeUInt32})},
				Offsets:    ConstantOffsets{DisplacementOffset: 2, DisplacementSize: 1},
			},
		},
		{
			Name: "mov sib without index",
			Mode: 64,
			Code: "8b 04 a5 78 56 34 12",
			Want: Instruction{
				Code:       x86.Mov_r32_rm32,
				ByteLength: 7,
				OpCount:    2,
				Operands:   [4]Operand{reg(x86.EAX), mem(Memory{Segment: x86.DS, Scale: 1, Displacement: 0x12345678, DisplSize: 4, Size: x86.MemorySizeUInt32})},
				Offsets:    ConstantOffsets{DisplacementOffset: 3, DisplacementSize: 4},
			},
		},
		{
			Name: "mov sib",
			Mode: 32,
			Code: "8b 04 8b",
			Want: Instruction{
				Code:       x86.Mov_r32_rm32,
				ByteLength: 3,
				OpCount:    2,
				Operands:   [4]Operand{reg(x86.EAX), mem(Memory{Segment: x86.DS, Base: x86.EBX, Index: x86.ECX, Scale: 4, Size: x86.MemorySizeUInt32})},
			},
		},
		{
			Name: "mov sib without base",
			Mode: 64,
			Code: "8b 04 25 78 56 34 12",
			Want: Instruction{
				Code:       x86.Mov_r32_rm32,
				ByteLength: 7,
				OpCount:    2,
				Operands:   [4]Operand{reg(x86.EAX), mem(Memory{Segment: x86.DS, Scale: 1, Displacement: 0x12345678, DisplSize: 4, Size: x86.MemorySizeUInt32})},
				Offsets:    ConstantOffsets{DisplacementOffset: 3, DisplacementSize: 4},
			},
		},
		{
			Name: "mov fs override",
			Mode: 64,
			Code: "64 8b 03",
			Want: Instruction{
				Code:          x86.Mov_r32_rm32,
				ByteLength:    3,
				OpCount:       2,
				Operands:      [4]Operand{reg(x86.EAX), mem(Memory{Segment: x86.FS, Base: x86.RBX, Scale: 1, Size: x86.MemorySizeUInt32})},
				SegmentPrefix: x86.FS,
			},
		},
		{
			Name: "ds override after fs",
			Mode: 64,
			Code: "64 3e 8b 03",
			Want: Instruction{
				Code:          x86.Mov_r32_rm32,
				ByteLength:    4,
				OpCount:       2,
				Operands:      [4]Operand{reg(x86.EAX), mem(Memory{Segment: x86.FS, Base: x86.RBX, Scale: 1, Size: x86.MemorySizeUInt32})},
				SegmentPrefix: x86.FS,
			},
		},
		{
			Name: "mov moffs",
			Mode: 32,
			Code: "a1 78 56 34 12",
			Want: Instruction{
				Code:       x86.Mov_EAX_moffs32,
				ByteLength: 5,
				OpCount:    2,
				Operands:   [4]Operand{reg(x86.EAX), mem(Memory{Segment: x86.DS, Scale: 1, Displacement: 0x12345678, DisplSize: 4, Size: x86.MemorySizeUInt32})},
				Offsets:    ConstantOffsets{DisplacementOffset: 1, DisplacementSize: 4},
			},
		},
		{
			Name: "jmp rel8 64-bit",
			Mode: 64,
			IP:   0x1000,
			Code: "eb fe",
			Want: Instruction{
				Code:       x86.Jmp_rel8_64,
				ByteLength: 2,
				OpCount:    1,
				Operands:   [4]Operand{{Kind: OpNearBranch64, Immediate: 0x1000}},
				Offsets:    ConstantOffsets{ImmediateOffset: 1, ImmediateSize: 1},
			},
		},
		{
			Name: "jmp rel8 16-bit wraps",
			Mode: 16,
			IP:   0x0,
			Code: "eb f0",
			Want: Instruction{
				Code:       x86.Jmp_rel8_16,
				ByteLength: 2,
				OpCount:    1,
				Operands:   [4]Operand{{Kind: OpNearBranch16, Immediate: 0xfff2}},
				Offsets:    ConstantOffsets{ImmediateOffset: 1, ImmediateSize: 1},
			},
		},
		{
			Name: "call rel32",
			Mode: 32,
			IP:   0x400000,
			Code: "e8 00 01 00 00",
			Want: Instruction{
				Code:       x86.Call_rel32_32,
				ByteLength: 5,
				OpCount:    1,
				Operands:   [4]Operand{{Kind: OpNearBranch32, Immediate: 0x400105}},
				Offsets:    ConstantOffsets{ImmediateOffset: 1, ImmediateSize: 4},
			},
		},
		{
			Name: "rep movsd",
			Mode: 32,
			Code: "f3 a5",
			Want: Instruction{
				Code:       x86.Movsd_m32_m32,
				ByteLength: 2,
				OpCount:    2,
				Operands: [4]Operand{
					{Kind: OpMemoryESEDI, Memory: Memory{Segment: x86.ES, Base: x86.EDI, Scale: 1, Size: x86.MemorySizeUInt32}},
					{Kind: OpMemorySegESI, Memory: Memory{Segment: x86.DS, Base: x86.ESI, Scale: 1, Size: x86.MemorySizeUInt32}},
				},
				HasRepePrefix: true,
			},
		},
		{
			Name: "repe on non-string instruction",
			Mode: 64,
			Code: "f3 48 01 c0",
			Want: Instruction{
				Code:       x86.Add_rm64_r64,
				ByteLength: 4,
				OpCount:    2,
				Operands:   [4]Operand{reg(x86.RAX), reg(x86.RAX)},
			},
		},
		{
			Name: "repne on non-string instruction",
			Mode: 64,
			Code: "f2 48 01 c0",
			Want: Instruction{
				Code:       x86.Add_rm64_r64,
				ByteLength: 4,
				OpCount:    2,
				Operands:   [4]Operand{reg(x86.RAX), reg(x86.RAX)},
			},
		},
		{
			Name: "pause consumes f3",
			Mode: 64,
			Code: "f3 90",
			Want: Instruction{
				Code:       x86.Pause,
				ByteLength: 2,
			},
		},
		{
			Name: "movss consumes f3",
			Mode: 64,
			Code: "f3 0f 10 c1",
			Want: Instruction{
				Code:       x86.Movss_VX_WX,
				ByteLength: 4,
				OpCount:    2,
				Operands:   [4]Operand{reg(x86.XMM0), reg(x86.XMM1)},
			},
		},
		{
			Name: "shift by one",
			Mode: 32,
			Code: "d1 e0",
			Want: Instruction{
				Code:       x86.Shl_rm32_1,
				ByteLength: 2,
				OpCount:    2,
				Operands:   [4]Operand{reg(x86.EAX), {Kind: OpImmediate8, Immediate: 1}},
			},
		},
		{
			Name: "vex2 vaddps",
			Mode: 64,
			Code: "c5 f0 58 c2",
			Want: Instruction{
				Code:       x86.VEX_Vaddps_xmm_xmm_xmmm128,
				ByteLength: 4,
				Encoding:   EncodingVEX,
				OpCount:    3,
				Operands:   [4]Operand{reg(x86.XMM0), reg(x86.XMM1), reg(x86.XMM2)},
			},
		},
		{
			Name: "vex2 vaddps 32-bit",
			Mode: 32,
			Code: "c5 f0 58 c2",
			Want: Instruction{
				Code:       x86.VEX_Vaddps_xmm_xmm_xmmm128,
				ByteLength: 4,
				Encoding:   EncodingVEX,
				OpCount:    3,
				Operands:   [4]Operand{reg(x86.XMM0), reg(x86.XMM1), reg(x86.XMM2)},
			},
		},
		{
			Name: "vex vpblendvb is4",
			Mode: 64,
			Code: "c4 e3 71 4c c2 30",
			Want: Instruction{
				Code:       x86.VEX_Vpblendvb_xmm_xmm_xmmm128_xmm,
				ByteLength: 6,
				Encoding:   EncodingVEX,
				OpCount:    4,
				Operands:   [4]Operand{reg(x86.XMM0), reg(x86.XMM1), reg(x86.XMM2), reg(x86.XMM3)},
				Offsets:    ConstantOffsets{ImmediateOffset: 5, ImmediateSize: 1},
			},
		},
		{
			Name: "vex gather",
			Mode: 64,
			Code: "c4 e2 69 90 04 88",
			Want: Instruction{
				Code:       x86.VEX_Vpgatherdd_xmm_vm32x_xmm,
				ByteLength: 6,
				Encoding:   EncodingVEX,
				OpCount:    3,
				Operands: [4]Operand{
					reg(x86.XMM0),
					mem(Memory{Segment: x86.DS, Base: x86.RAX, Index: x86.XMM1, Scale: 4, Size: x86.MemorySizeInt32}),
					reg(x86.XMM2),
				},
			},
		},
		{
			Name: "xop vprotb",
			Mode: 32,
			Code: "8f e8 78 c0 c1 05",
			Want: Instruction{
				Code:       x86.XOP_Vprotb_xmm_xmmm128_imm8,
				ByteLength: 6,
				Encoding:   EncodingXOP,
				OpCount:    3,
				Operands:   [4]Operand{reg(x86.XMM0), reg(x86.XMM1), {Kind: OpImmediate8, Immediate: 5}},
				Offsets:    ConstantOffsets{ImmediateOffset: 5, ImmediateSize: 1},
			},
		},
		{
			Name: "pop rm is not xop",
			Mode: 32,
			Code: "8f 00",
			Want: Instruction{
				Code:       x86.Pop_rm32,
				ByteLength: 2,
				OpCount:    1,
				Operands:   [4]Operand{mem(Memory{Segment: x86.DS, Base: x86.EAX, Scale: 1, Size: x86.MemorySizeUInt32})},
			},
		},
		{
			Name: "les is not vex",
			Mode: 32,
			Code: "c4 00",
			Want: Instruction{
				Code:       x86.Les_r32_m1632,
				ByteLength: 2,
				OpCount:    2,
				Operands:   [4]Operand{reg(x86.EAX), mem(Memory{Segment: x86.DS, Base: x86.EAX, Scale: 1, Size: x86.MemorySizeSegPtr32})},
			},
		},
		{
			Name: "lds is not vex",
			Mode: 16,
			Code: "c5 07",
			Want: Instruction{
				Code:       x86.Lds_r16_m1616,
				ByteLength: 2,
				OpCount:    2,
				Operands:   [4]Operand{reg(x86.AX), mem(Memory{Segment: x86.DS, Base: x86.BX, Scale: 1, Size: x86.MemorySizeSegPtr16})},
			},
		},
		{
			Name: "bound is not evex",
			Mode: 32,
			Code: "62 00",
			Want: Instruction{
				Code:       x86.Bound_r32_m3232,
				ByteLength: 2,
				OpCount:    2,
				Operands:   [4]Operand{reg(x86.EAX), mem(Memory{Segment: x86.DS, Base: x86.EAX, Scale: 1, Size: x86.MemorySizeBound32_DwordDword})},
			},
		},
		{
			Name:    "pop rm with xop disabled",
			Mode:    64,
			Code:    "8f c0",
			Options: NoXOP,
			Want: Instruction{
				Code:       x86.Pop_rm64,
				ByteLength: 2,
				OpCount:    1,
				Operands:   [4]Operand{reg(x86.RAX)},
			},
		},
		{
			Name:    "bound with evex disabled",
			Mode:    32,
			Code:    "62 00",
			Options: NoEVEX,
			Want: Instruction{
				Code:       x86.Bound_r32_m3232,
				ByteLength: 2,
				OpCount:    2,
				Operands:   [4]Operand{reg(x86.EAX), mem(Memory{Segment: x86.DS, Base: x86.EAX, Scale: 1, Size: x86.MemorySizeBound32_DwordDword})},
			},
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			d, err := New(test.Mode, mustHex(t, test.Code), test.IP, test.Options)
			if err != nil {
				t.Fatalf("New(%d): %v", test.Mode, err)
			}

			got, err := d.Decode()
			if err != nil {
				t.Fatalf("Decode(%s): %v", test.Code, err)
			}

			want := test.Want
			want.Bitness = test.Mode
			want.IP = test.IP
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("Decode(%s): (-want, +got)\n%s", test.Code, diff)
			}

			if d.Position() != got.ByteLength {
				t.Errorf("Decode(%s): position %d, want %d", test.Code, d.Position(), got.ByteLength)
			}

			if d.IP() != got.NextIP() {
				t.Errorf("Decode(%s): IP %#x, want %#x", test.Code, d.IP(), got.NextIP())
			}
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		Name    string
		Mode    int
		Code    string
		Options Options
		Err     error
		Length  int
	}{
		{
			Name:   "truncated evex",
			Mode:   64,
			Code:   "62 f2 4d 0b 00",
			Err:    ErrTruncated,
			Length: 5,
		},
		{
			Name:   "truncated displacement",
			Mode:   64,
			Code:   "62 f2 4d 0b 00 50",
			Err:    ErrTruncated,
			Length: 6,
		},
		{
			Name:   "truncated escape",
			Mode:   32,
			Code:   "0f",
			Err:    ErrTruncated,
			Length: 1,
		},
		{
			Name:   "truncated immediate",
			Mode:   64,
			Code:   "48 b8 88 77",
			Err:    ErrTruncated,
			Length: 4,
		},
		{
			Name:   "too long",
			Mode:   32,
			Code:   strings.Repeat("66 ", 15) + "90",
			Err:    ErrTooLong,
			Length: 15,
		},
		{
			Name:   "unknown opcode",
			Mode:   32,
			Code:   "0f ff",
			Err:    ErrInvalidOpcode,
			Length: 2,
		},
		{
			Name:    "lds in 64-bit mode without vex",
			Mode:    64,
			Code:    "c5 f0 58",
			Options: NoVEX,
			Err:     ErrInvalidOpcode,
			Length:  2,
		},
		{
			Name:    "xop disabled",
			Mode:    32,
			Code:    "8f e8 78 c0 c1 02",
			Options: NoXOP,
			Err:     ErrInvalidOpcode,
			Length:  2,
		},
		{
			Name:    "evex disabled",
			Mode:    32,
			Code:    "62 f1 7c 18 5f c2",
			Options: NoEVEX,
			Err:     ErrInvalidOpcode,
			Length:  2,
		},
		{
			Name:    "evex disabled in 64-bit mode",
			Mode:    64,
			Code:    "62 00",
			Options: NoEVEX,
			Err:     ErrInvalidOpcode,
			Length:  2,
		},
		{
			Name:   "lock on register",
			Mode:   32,
			Code:   "f0 01 c0",
			Err:    ErrInvalidOperand,
			Length: 3,
		},
		{
			Name:   "lock without lock form",
			Mode:   32,
			Code:   "f0 8b 00",
			Err:    ErrInvalidOperand,
			Length: 3,
		},
		{
			Name:   "rex before vex",
			Mode:   64,
			Code:   "48 c5 f0 58 c2",
			Err:    ErrInvalidPrefix,
			Length: 5,
		},
		{
			Name:   "66 before vex",
			Mode:   64,
			Code:   "66 c5 f0 58 c2",
			Err:    ErrInvalidPrefix,
			Length: 5,
		},
		{
			Name:   "unused vvvv",
			Mode:   64,
			Code:   "c5 f0 77",
			Err:    ErrInvalidPrefix,
			Length: 3,
		},
		{
			Name:   "reserved evex bits",
			Mode:   64,
			Code:   "62 f5 7c 08 58 c2",
			Err:    ErrInvalidPrefix,
			Length: 6,
		},
		{
			Name:   "zeroing with k0",
			Mode:   64,
			Code:   "62 f1 7c 88 58 c2",
			Err:    ErrInvalidOperand,
			Length: 6,
		},
		{
			Name:   "move to cs",
			Mode:   32,
			Code:   "8e c8",
			Err:    ErrInvalidOperand,
			Length: 2,
		},
		{
			Name:   "segment register 6",
			Mode:   32,
			Code:   "8e f0",
			Err:    ErrInvalidOperand,
			Length: 2,
		},
		{
			Name:   "gather mask is index",
			Mode:   64,
			Code:   "c4 e2 71 90 04 88",
			Err:    ErrInvalidOperand,
			Length: 6,
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			d, err := New(test.Mode, mustHex(t, test.Code), 0x1000, test.Options)
			if err != nil {
				t.Fatalf("New(%d): %v", test.Mode, err)
			}

			got, err := d.Decode()
			if !errors.Is(err, test.Err) {
				t.Fatalf("Decode(%s): got error %v, want %v", test.Code, err, test.Err)
			}

			var derr *DecodeError
			if !errors.As(err, &derr) {
				t.Fatalf("Decode(%s): got error %T, want *DecodeError", test.Code, err)
			}

			if derr.Length != test.Length || got.ByteLength != test.Length {
				t.Errorf("Decode(%s): got length %d (instruction %d), want %d", test.Code, derr.Length, got.ByteLength, test.Length)
			}

			if derr.IP != 0x1000 || derr.Offset != 0 {
				t.Errorf("Decode(%s): got IP %#x offset %d, want IP 0x1000 offset 0", test.Code, derr.IP, derr.Offset)
			}

			if got.Code != x86.INVALID {
				t.Errorf("Decode(%s): got code %s, want INVALID", test.Code, got.Code)
			}

			if d.Position() != test.Length {
				t.Errorf("Decode(%s): position %d, want %d", test.Code, d.Position(), test.Length)
			}
		})
	}
}

func TestNew(t *testing.T) {
	for _, mode := range []int{0, 8, 128} {
		_, err := New(mode, nil, 0, 0)
		if !errors.Is(err, ErrBitness) {
			t.Errorf("New(%d): got error %v, want %v", mode, err, ErrBitness)
		}
	}

	d, err := New(64, []byte{0x90}, 0, 0)
	if err != nil {
		t.Fatalf("New(64): %v", err)
	}

	if err := d.SetPosition(2); err == nil {
		t.Errorf("SetPosition(2): got nil error")
	}

	if err := d.SetPosition(1); err != nil {
		t.Errorf("SetPosition(1): %v", err)
	}

	if d.CanDecode() {
		t.Errorf("CanDecode(): got true at the end of the data")
	}
}

func TestDecodeSequence(t *testing.T) {
	d, err := New(32, mustHex(t, "90 0f ff 90"), 0x100, 0)
	if err != nil {
		t.Fatal(err)
	}

	want := []struct {
		Code x86.Code
		IP   uint64
		Err  error
	}{
		{x86.Nopd, 0x100, nil},
		{x86.INVALID, 0x101, ErrInvalidOpcode},
		{x86.Nopd, 0x103, nil},
		{x86.INVALID, 0x104, ErrNoMoreBytes},
	}

	for i, w := range want {
		inst, err := d.Decode()
		if !errors.Is(err, w.Err) || (w.Err == nil && err != nil) {
			t.Fatalf("Decode #%d: got error %v, want %v", i, err, w.Err)
		}

		if inst.Code != w.Code || inst.IP != w.IP {
			t.Errorf("Decode #%d: got %s at %#x, want %s at %#x", i, inst.Code, inst.IP, w.Code, w.IP)
		}
	}

	// The end of the data is not a decode
	// error.
	_, err = d.Decode()
	var derr *DecodeError
	if errors.As(err, &derr) {
		t.Errorf("Decode at end: got %v, want plain ErrNoMoreBytes", err)
	}
}

func TestIdempotent(t *testing.T) {
	code := mustHex(t, "62 f2 4d 0b 00 50 01 f0 01 18 c4 e3 71 4c c2 30 48 8d 05 10 00 00 00")
	decode := func() []Instruction {
		d, err := New(64, code, 0x7000, 0)
		if err != nil {
			t.Fatal(err)
		}

		var out []Instruction
		for d.CanDecode() {
			inst, err := d.Decode()
			if err != nil {
				t.Fatalf("Decode at %#x: %v", inst.IP, err)
			}

			out = append(out, inst)
		}

		return out
	}

	first := decode()
	second := decode()
	if len(first) != 4 {
		t.Fatalf("decoded %d instructions, want 4", len(first))
	}

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("second decode differs: (-first, +second)\n%s", diff)
	}
}

func TestDisplacementSizes(t *testing.T) {
	tests := []struct {
		Mode      int
		Code      string
		DisplSize uint8
		Displ     int64
	}{
		// 16-bit addressing.
		{16, "8b 00", 0, 0},
		{16, "8b 40 f0", 1, -16},
		{16, "8b 80 34 12", 2, 0x1234},
		{16, "8b 80 00 80", 2, -0x8000},
		{16, "8b 06 34 12", 2, 0x1234},
		{32, "67 8b 40 7f", 1, 0x7f},
		// 32-bit and 64-bit addressing.
		{32, "8b 00", 0, 0},
		{32, "8b 40 f0", 1, -16},
		{32, "8b 80 78 56 34 12", 4, 0x12345678},
		{32, "8b 80 00 00 00 80", 4, -0x80000000},
		{64, "8b 44 24 08", 1, 8},
		{64, "8b 84 24 00 01 00 00", 4, 0x100},
		{16, "67 8b 40 01", 1, 1},
	}

	for _, test := range tests {
		d, err := New(test.Mode, mustHex(t, test.Code), 0, 0)
		if err != nil {
			t.Fatal(err)
		}

		inst, err := d.Decode()
		if err != nil {
			t.Errorf("Decode(%s) in %d-bit mode: %v", test.Code, test.Mode, err)
			continue
		}

		if got := inst.MemoryDisplSize(); got != test.DisplSize {
			t.Errorf("Decode(%s) in %d-bit mode: got displacement size %d, want %d", test.Code, test.Mode, got, test.DisplSize)
		}

		if got := inst.MemoryDisplacement(); got != test.Displ {
			t.Errorf("Decode(%s) in %d-bit mode: got displacement %#x, want %#x", test.Code, test.Mode, got, test.Displ)
		}

		if got, want := inst.Offsets.DisplacementSize, int(test.DisplSize); got != want {
			t.Errorf("Decode(%s) in %d-bit mode: got displacement offset size %d, want %d", test.Code, test.Mode, got, want)
		}
	}
}

func TestIPRelativeMemoryAddress(t *testing.T) {
	tests := []struct {
		Code string
		IP   uint64
		Want uint64
		OK   bool
	}{
		{"48 8d 05 10 00 00 00", 0x1000, 0x1017, true},
		{"48 8d 05 f0 ff ff ff", 0x1000, 0xff7, true},
		{"67 8d 05 10 00 00 00", 0xffff_fff0, 0x7, true},
		{"8b 00", 0x1000, 0, false},
		{"90", 0x1000, 0, false},
	}

	for _, test := range tests {
		d, err := New(64, mustHex(t, test.Code), test.IP, 0)
		if err != nil {
			t.Fatal(err)
		}

		inst, err := d.Decode()
		if err != nil {
			t.Fatalf("Decode(%s): %v", test.Code, err)
		}

		got, ok := inst.IPRelativeMemoryAddress()
		if got != test.Want || ok != test.OK {
			t.Errorf("IPRelativeMemoryAddress(%s): got %#x, %v, want %#x, %v", test.Code, got, ok, test.Want, test.OK)
		}
	}
}
