// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package decoder

import (
	"errors"
	"testing"

	"firefly-os.dev/x86dec/x86"
)

func TestInstructionString(t *testing.T) {
	tests := []struct {
		Mode int
		IP   uint64
		Code string
		Want string
	}{
		{32, 0, "f0 01 18", "lock Add_rm32_r32 UInt32 ds:[eax], ebx"},
		{64, 0, "62 f2 4d 0b 00 50 01", "EVEX_Vpshufb_xmm_k1z_xmm_xmmm128 xmm2{k3}, xmm6, Packed128_UInt8 ds:[rax+0x10]"},
		{64, 0, "62 f2 4d 8b 00 c1", "EVEX_Vpshufb_xmm_k1z_xmm_xmmm128 xmm0{k3}{z}, xmm6, xmm1"},
		{64, 0, "62 f1 7c 38 58 c2", "EVEX_Vaddps_zmm_k1z_zmm_zmmm512b32_er zmm0, zmm0, zmm2, {rd-sae}"},
		{64, 0, "62 f1 7d 18 fe 40 01", "EVEX_Vpaddd_xmm_k1z_xmm_xmmm128b32 xmm0, xmm0, Broadcast128_Int32 ds:[rax+0x4]{1toN}"},
		{32, 0, "f3 a5", "repe Movsd_m32_m32 UInt32 es:[edi], UInt32 ds:[esi]"},
		{32, 0, "a1 78 56 34 12", "Mov_EAX_moffs32 eax, UInt32 ds:[0x12345678]"},
		{32, 0, "8b 40 f0", "Mov_r32_rm32 eax, UInt32 ds:[eax-0x10]"},
		{32, 0, "8b 04 8b", "Mov_r32_rm32 eax, UInt32 ds:[ebx+ecx*4]"},
		{64, 0x1000, "eb fe", "Jmp_rel8_64 0x1000"},
		{64, 0, "48 83 c0 ff", "Add_rm64_imm8 rax, 0xffffffffffffffff"},
		{64, 0, "f3 90", "Pause"},
	}

	for _, test := range tests {
		d, err := New(test.Mode, mustHex(t, test.Code), test.IP, 0)
		if err != nil {
			t.Fatal(err)
		}

		inst, err := d.Decode()
		if err != nil {
			t.Errorf("Decode(%s): %v", test.Code, err)
			continue
		}

		if got := inst.String(); got != test.Want {
			t.Errorf("Decode(%s).String():\n got %q\nwant %q", test.Code, got, test.Want)
		}
	}
}

func TestInstructionAccessors(t *testing.T) {
	d, err := New(32, mustHex(t, "64 8b 44 8b 08"), 0, 0)
	if err != nil {
		t.Fatal(err)
	}

	inst, err := d.Decode()
	if err != nil {
		t.Fatal(err)
	}

	if got := inst.OpKind(0); got != OpRegister {
		t.Errorf("OpKind(0): got %s, want %s", got, OpRegister)
	}

	if got := inst.OpRegister(0); got != x86.EAX {
		t.Errorf("OpRegister(0): got %v, want %v", got, x86.EAX)
	}

	if got := inst.OpKind(1); got != OpMemory {
		t.Errorf("OpKind(1): got %s, want %s", got, OpMemory)
	}

	if got := inst.OpKind(2); got != 0 {
		t.Errorf("OpKind(2): got %s, want none", got)
	}

	if got := inst.MemorySegment(); got != x86.FS {
		t.Errorf("MemorySegment(): got %v, want %v", got, x86.FS)
	}

	if got := inst.SegmentPrefix; got != x86.FS {
		t.Errorf("SegmentPrefix: got %v, want %v", got, x86.FS)
	}

	if got := inst.MemoryBase(); got != x86.EBX {
		t.Errorf("MemoryBase(): got %v, want %v", got, x86.EBX)
	}

	if got := inst.MemoryIndex(); got != x86.ECX {
		t.Errorf("MemoryIndex(): got %v, want %v", got, x86.ECX)
	}

	if got := inst.MemoryIndexScale(); got != 4 {
		t.Errorf("MemoryIndexScale(): got %d, want 4", got)
	}

	if got := inst.MemoryDisplacement(); got != 8 {
		t.Errorf("MemoryDisplacement(): got %d, want 8", got)
	}

	if got := inst.MemorySize(); got != x86.MemorySizeUInt32 {
		t.Errorf("MemorySize(): got %s, want %s", got, x86.MemorySizeUInt32)
	}

	if inst.IsBroadcast() {
		t.Errorf("IsBroadcast(): got true")
	}

	if got := inst.NextIP(); got != 5 {
		t.Errorf("NextIP(): got %d, want 5", got)
	}
}

func TestOpKind(t *testing.T) {
	tests := []struct {
		Kind      OpKind
		Name      string
		Immediate bool
		Branch    bool
		Memory    bool
	}{
		{OpRegister, "Register", false, false, false},
		{OpMemory, "Memory", false, false, true},
		{OpMemorySegRSI, "MemorySegRSI", false, false, true},
		{OpMemoryESRDI, "MemoryESRDI", false, false, true},
		{OpImmediate8, "Immediate8", true, false, false},
		{OpImmediate32to64, "Immediate32to64", true, false, false},
		{OpNearBranch16, "NearBranch16", false, true, false},
		{OpNearBranch64, "NearBranch64", false, true, false},
		{OpKind(200), "OpKind(200)", false, false, false},
	}

	for _, test := range tests {
		if got := test.Kind.String(); got != test.Name {
			t.Errorf("OpKind(%d).String(): got %q, want %q", test.Kind, got, test.Name)
		}

		if got := test.Kind.IsImmediate(); got != test.Immediate {
			t.Errorf("%s.IsImmediate(): got %v, want %v", test.Name, got, test.Immediate)
		}

		if got := test.Kind.IsNearBranch(); got != test.Branch {
			t.Errorf("%s.IsNearBranch(): got %v, want %v", test.Name, got, test.Branch)
		}

		if got := test.Kind.IsMemory(); got != test.Memory {
			t.Errorf("%s.IsMemory(): got %v, want %v", test.Name, got, test.Memory)
		}
	}
}

func TestDecodeErrorMessage(t *testing.T) {
	err := error(&DecodeError{Offset: 3, IP: 0x1003, Length: 2, Err: ErrInvalidOpcode, Reason: "no instruction"})
	if got, want := err.Error(), "offset 3 (ip 0x1003): invalid opcode: no instruction"; got != want {
		t.Errorf("Error(): got %q, want %q", got, want)
	}

	if !errors.Is(err, ErrInvalidOpcode) {
		t.Errorf("errors.Is(%v, ErrInvalidOpcode): got false", err)
	}

	err = &DecodeError{Offset: 0, IP: 0, Length: 1, Err: ErrTruncated}
	if got, want := err.Error(), "offset 0 (ip 0x0): truncated instruction"; got != want {
		t.Errorf("Error(): got %q, want %q", got, want)
	}
}
