// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Register contains information about
// an x86 register, including its size
// in bits and the number used to encode
// it in ModR/M, SIB, VEX.vvvv and opcode
// fields.
type Register struct {
	Name    string       `json:"name"`
	Type    RegisterType `json:"-"`
	Bits    int          `json:"-"`
	Reg     byte         `json:"-"` // The 5-bit encoding of the register.
	MinMode uint8        `json:"-"` // Any CPU mode requirements as a number of bits.
	EVEX    bool         `json:"-"` // Whether the register can only be reached with EVEX encoding.
	Aliases []string     `json:"-"`
}

func (r *Register) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Name)
}

func (r *Register) UnmarshalJSON(data []byte) error {
	var s string
	err := json.Unmarshal(data, &s)
	if err != nil {
		return err
	}

	got, ok := RegistersByName[s]
	if !ok {
		return fmt.Errorf("invalid register %q", s)
	}

	*r = *got

	return nil
}

func (r *Register) String() string    { return r.Name }
func (r *Register) UpperName() string { return strings.ToUpper(r.Name) }

var (
	// 8-bit registers.
	AL   = &Register{Name: "al", Type: TypeGeneralPurpose, Reg: 0x00, Bits: 8}
	CL   = &Register{Name: "cl", Type: TypeGeneralPurpose, Reg: 0x01, Bits: 8}
	DL   = &Register{Name: "dl", Type: TypeGeneralPurpose, Reg: 0x02, Bits: 8}
	BL   = &Register{Name: "bl", Type: TypeGeneralPurpose, Reg: 0x03, Bits: 8}
	AH   = &Register{Name: "ah", Type: TypeGeneralPurpose, Reg: 0x04, Bits: 8}
	CH   = &Register{Name: "ch", Type: TypeGeneralPurpose, Reg: 0x05, Bits: 8}
	DH   = &Register{Name: "dh", Type: TypeGeneralPurpose, Reg: 0x06, Bits: 8}
	BH   = &Register{Name: "bh", Type: TypeGeneralPurpose, Reg: 0x07, Bits: 8}
	SPL  = &Register{Name: "spl", Type: TypeGeneralPurpose, Reg: 0x04, Bits: 8, MinMode: 64}
	BPL  = &Register{Name: "bpl", Type: TypeGeneralPurpose, Reg: 0x05, Bits: 8, MinMode: 64}
	SIL  = &Register{Name: "sil", Type: TypeGeneralPurpose, Reg: 0x06, Bits: 8, MinMode: 64}
	DIL  = &Register{Name: "dil", Type: TypeGeneralPurpose, Reg: 0x07, Bits: 8, MinMode: 64}
	R8L  = &Register{Name: "r8l", Type: TypeGeneralPurpose, Reg: 0x08, Bits: 8, MinMode: 64, Aliases: []string{"r8b"}}
	R9L  = &Register{Name: "r9l", Type: TypeGeneralPurpose, Reg: 0x09, Bits: 8, MinMode: 64, Aliases: []string{"r9b"}}
	R10L = &Register{Name: "r10l", Type: TypeGeneralPurpose, Reg: 0x0a, Bits: 8, MinMode: 64, Aliases: []string{"r10b"}}
	R11L = &Register{Name: "r11l", Type: TypeGeneralPurpose, Reg: 0x0b, Bits: 8, MinMode: 64, Aliases: []string{"r11b"}}
	R12L = &Register{Name: "r12l", Type: TypeGeneralPurpose, Reg: 0x0c, Bits: 8, MinMode: 64, Aliases: []string{"r12b"}}
	R13L = &Register{Name: "r13l", Type: TypeGeneralPurpose, Reg: 0x0d, Bits: 8, MinMode: 64, Aliases: []string{"r13b"}}
	R14L = &Register{Name: "r14l", Type: TypeGeneralPurpose, Reg: 0x0e, Bits: 8, MinMode: 64, Aliases: []string{"r14b"}}
	R15L = &Register{Name: "r15l", Type: TypeGeneralPurpose, Reg: 0x0f, Bits: 8, MinMode: 64, Aliases: []string{"r15b"}}

	// 16-bit registers.
	AX   = &Register{Name: "ax", Type: TypeGeneralPurpose, Reg: 0x00, Bits: 16}
	CX   = &Register{Name: "cx", Type: TypeGeneralPurpose, Reg: 0x01, Bits: 16}
	DX   = &Register{Name: "dx", Type: TypeGeneralPurpose, Reg: 0x02, Bits: 16}
	BX   = &Register{Name: "bx", Type: TypeGeneralPurpose, Reg: 0x03, Bits: 16}
	SP   = &Register{Name: "sp", Type: TypeGeneralPurpose, Reg: 0x04, Bits: 16}
	BP   = &Register{Name: "bp", Type: TypeGeneralPurpose, Reg: 0x05, Bits: 16}
	SI   = &Register{Name: "si", Type: TypeGeneralPurpose, Reg: 0x06, Bits: 16}
	DI   = &Register{Name: "di", Type: TypeGeneralPurpose, Reg: 0x07, Bits: 16}
	R8W  = &Register{Name: "r8w", Type: TypeGeneralPurpose, Reg: 0x08, Bits: 16, MinMode: 64}
	R9W  = &Register{Name: "r9w", Type: TypeGeneralPurpose, Reg: 0x09, Bits: 16, MinMode: 64}
	R10W = &Register{Name: "r10w", Type: TypeGeneralPurpose, Reg: 0x0a, Bits: 16, MinMode: 64}
	R11W = &Register{Name: "r11w", Type: TypeGeneralPurpose, Reg: 0x0b, Bits: 16, MinMode: 64}
	R12W = &Register{Name: "r12w", Type: TypeGeneralPurpose, Reg: 0x0c, Bits: 16, MinMode: 64}
	R13W = &Register{Name: "r13w", Type: TypeGeneralPurpose, Reg: 0x0d, Bits: 16, MinMode: 64}
	R14W = &Register{Name: "r14w", Type: TypeGeneralPurpose, Reg: 0x0e, Bits: 16, MinMode: 64}
	R15W = &Register{Name: "r15w", Type: TypeGeneralPurpose, Reg: 0x0f, Bits: 16, MinMode: 64}

	// 32-bit registers.
	EAX  = &Register{Name: "eax", Type: TypeGeneralPurpose, Reg: 0x00, Bits: 32}
	ECX  = &Register{Name: "ecx", Type: TypeGeneralPurpose, Reg: 0x01, Bits: 32}
	EDX  = &Register{Name: "edx", Type: TypeGeneralPurpose, Reg: 0x02, Bits: 32}
	EBX  = &Register{Name: "ebx", Type: TypeGeneralPurpose, Reg: 0x03, Bits: 32}
	ESP  = &Register{Name: "esp", Type: TypeGeneralPurpose, Reg: 0x04, Bits: 32}
	EBP  = &Register{Name: "ebp", Type: TypeGeneralPurpose, Reg: 0x05, Bits: 32}
	ESI  = &Register{Name: "esi", Type: TypeGeneralPurpose, Reg: 0x06, Bits: 32}
	EDI  = &Register{Name: "edi", Type: TypeGeneralPurpose, Reg: 0x07, Bits: 32}
	R8D  = &Register{Name: "r8d", Type: TypeGeneralPurpose, Reg: 0x08, Bits: 32, MinMode: 64}
	R9D  = &Register{Name: "r9d", Type: TypeGeneralPurpose, Reg: 0x09, Bits: 32, MinMode: 64}
	R10D = &Register{Name: "r10d", Type: TypeGeneralPurpose, Reg: 0x0a, Bits: 32, MinMode: 64}
	R11D = &Register{Name: "r11d", Type: TypeGeneralPurpose, Reg: 0x0b, Bits: 32, MinMode: 64}
	R12D = &Register{Name: "r12d", Type: TypeGeneralPurpose, Reg: 0x0c, Bits: 32, MinMode: 64}
	R13D = &Register{Name: "r13d", Type: TypeGeneralPurpose, Reg: 0x0d, Bits: 32, MinMode: 64}
	R14D = &Register{Name: "r14d", Type: TypeGeneralPurpose, Reg: 0x0e, Bits: 32, MinMode: 64}
	R15D = &Register{Name: "r15d", Type: TypeGeneralPurpose, Reg: 0x0f, Bits: 32, MinMode: 64}

	// 64-bit registers.
	RAX = &Register{Name: "rax", Type: TypeGeneralPurpose, Reg: 0x00, Bits: 64, MinMode: 64}
	RCX = &Register{Name: "rcx", Type: TypeGeneralPurpose, Reg: 0x01, Bits: 64, MinMode: 64}
	RDX = &Register{Name: "rdx", Type: TypeGeneralPurpose, Reg: 0x02, Bits: 64, MinMode: 64}
	RBX = &Register{Name: "rbx", Type: TypeGeneralPurpose, Reg: 0x03, Bits: 64, MinMode: 64}
	RSP = &Register{Name: "rsp", Type: TypeGeneralPurpose, Reg: 0x04, Bits: 64, MinMode: 64}
	RBP = &Register{Name: "rbp", Type: TypeGeneralPurpose, Reg: 0x05, Bits: 64, MinMode: 64}
	RSI = &Register{Name: "rsi", Type: TypeGeneralPurpose, Reg: 0x06, Bits: 64, MinMode: 64}
	RDI = &Register{Name: "rdi", Type: TypeGeneralPurpose, Reg: 0x07, Bits: 64, MinMode: 64}
	R8  = &Register{Name: "r8", Type: TypeGeneralPurpose, Reg: 0x08, Bits: 64, MinMode: 64}
	R9  = &Register{Name: "r9", Type: TypeGeneralPurpose, Reg: 0x09, Bits: 64, MinMode: 64}
	R10 = &Register{Name: "r10", Type: TypeGeneralPurpose, Reg: 0x0a, Bits: 64, MinMode: 64}
	R11 = &Register{Name: "r11", Type: TypeGeneralPurpose, Reg: 0x0b, Bits: 64, MinMode: 64}
	R12 = &Register{Name: "r12", Type: TypeGeneralPurpose, Reg: 0x0c, Bits: 64, MinMode: 64}
	R13 = &Register{Name: "r13", Type: TypeGeneralPurpose, Reg: 0x0d, Bits: 64, MinMode: 64}
	R14 = &Register{Name: "r14", Type: TypeGeneralPurpose, Reg: 0x0e, Bits: 64, MinMode: 64}
	R15 = &Register{Name: "r15", Type: TypeGeneralPurpose, Reg: 0x0f, Bits: 64, MinMode: 64}

	// Instruction pointer.
	IP  = &Register{Name: "ip", Type: TypeInstructionPointer, Reg: 0x00, Bits: 16}
	EIP = &Register{Name: "eip", Type: TypeInstructionPointer, Reg: 0x00, Bits: 32}
	RIP = &Register{Name: "rip", Type: TypeInstructionPointer, Reg: 0x00, Bits: 64, MinMode: 64}

	// Segment registers.
	ES = &Register{Name: "es", Type: TypeSegment, Reg: 0x00, Bits: 16}
	CS = &Register{Name: "cs", Type: TypeSegment, Reg: 0x01, Bits: 16}
	SS = &Register{Name: "ss", Type: TypeSegment, Reg: 0x02, Bits: 16}
	DS = &Register{Name: "ds", Type: TypeSegment, Reg: 0x03, Bits: 16}
	FS = &Register{Name: "fs", Type: TypeSegment, Reg: 0x04, Bits: 16}
	GS = &Register{Name: "gs", Type: TypeSegment, Reg: 0x05, Bits: 16}

	// Opmask registers.
	K0 = &Register{Name: "k0", Type: TypeOpmask, Reg: 0x00, Bits: 64}
	K1 = &Register{Name: "k1", Type: TypeOpmask, Reg: 0x01, Bits: 64}
	K2 = &Register{Name: "k2", Type: TypeOpmask, Reg: 0x02, Bits: 64}
	K3 = &Register{Name: "k3", Type: TypeOpmask, Reg: 0x03, Bits: 64}
	K4 = &Register{Name: "k4", Type: TypeOpmask, Reg: 0x04, Bits: 64}
	K5 = &Register{Name: "k5", Type: TypeOpmask, Reg: 0x05, Bits: 64}
	K6 = &Register{Name: "k6", Type: TypeOpmask, Reg: 0x06, Bits: 64}
	K7 = &Register{Name: "k7", Type: TypeOpmask, Reg: 0x07, Bits: 64}

	// MMX registers.
	MM0 = &Register{Name: "mm0", Type: TypeMMX, Reg: 0x00, Bits: 64, Aliases: []string{"mmx0"}}
	MM1 = &Register{Name: "mm1", Type: TypeMMX, Reg: 0x01, Bits: 64, Aliases: []string{"mmx1"}}
	MM2 = &Register{Name: "mm2", Type: TypeMMX, Reg: 0x02, Bits: 64, Aliases: []string{"mmx2"}}
	MM3 = &Register{Name: "mm3", Type: TypeMMX, Reg: 0x03, Bits: 64, Aliases: []string{"mmx3"}}
	MM4 = &Register{Name: "mm4", Type: TypeMMX, Reg: 0x04, Bits: 64, Aliases: []string{"mmx4"}}
	MM5 = &Register{Name: "mm5", Type: TypeMMX, Reg: 0x05, Bits: 64, Aliases: []string{"mmx5"}}
	MM6 = &Register{Name: "mm6", Type: TypeMMX, Reg: 0x06, Bits: 64, Aliases: []string{"mmx6"}}
	MM7 = &Register{Name: "mm7", Type: TypeMMX, Reg: 0x07, Bits: 64, Aliases: []string{"mmx7"}}

	// XMM registers.
	XMM0  = &Register{Name: "xmm0", Type: TypeXMM, Reg: 0x00, Bits: 128}
	XMM1  = &Register{Name: "xmm1", Type: TypeXMM, Reg: 0x01, Bits: 128}
	XMM2  = &Register{Name: "xmm2", Type: TypeXMM, Reg: 0x02, Bits: 128}
	XMM3  = &Register{Name: "xmm3", Type: TypeXMM, Reg: 0x03, Bits: 128}
	XMM4  = &Register{Name: "xmm4", Type: TypeXMM, Reg: 0x04, Bits: 128}
	XMM5  = &Register{Name: "xmm5", Type: TypeXMM, Reg: 0x05, Bits: 128}
	XMM6  = &Register{Name: "xmm6", Type: TypeXMM, Reg: 0x06, Bits: 128}
	XMM7  = &Register{Name: "xmm7", Type: TypeXMM, Reg: 0x07, Bits: 128}
	XMM8  = &Register{Name: "xmm8", Type: TypeXMM, Reg: 0x08, Bits: 128, MinMode: 64}
	XMM9  = &Register{Name: "xmm9", Type: TypeXMM, Reg: 0x09, Bits: 128, MinMode: 64}
	XMM10 = &Register{Name: "xmm10", Type: TypeXMM, Reg: 0x0a, Bits: 128, MinMode: 64}
	XMM11 = &Register{Name: "xmm11", Type: TypeXMM, Reg: 0x0b, Bits: 128, MinMode: 64}
	XMM12 = &Register{Name: "xmm12", Type: TypeXMM, Reg: 0x0c, Bits: 128, MinMode: 64}
	XMM13 = &Register{Name: "xmm13", Type: TypeXMM, Reg: 0x0d, Bits: 128, MinMode: 64}
	XMM14 = &Register{Name: "xmm14", Type: TypeXMM, Reg: 0x0e, Bits: 128, MinMode: 64}
	XMM15 = &Register{Name: "xmm15", Type: TypeXMM, Reg: 0x0f, Bits: 128, MinMode: 64}
	XMM16 = &Register{Name: "xmm16", Type: TypeXMM, Reg: 0x10, Bits: 128, MinMode: 64, EVEX: true}
	XMM17 = &Register{Name: "xmm17", Type: TypeXMM, Reg: 0x11, Bits: 128, MinMode: 64, EVEX: true}
	XMM18 = &Register{Name: "xmm18", Type: TypeXMM, Reg: 0x12, Bits: 128, MinMode: 64, EVEX: true}
	XMM19 = &Register{Name: "xmm19", Type: TypeXMM, Reg: 0x13, Bits: 128, MinMode: 64, EVEX: true}
	XMM20 = &Register{Name: "xmm20", Type: TypeXMM, Reg: 0x14, Bits: 128, MinMode: 64, EVEX: true}
	XMM21 = &Register{Name: "xmm21", Type: TypeXMM, Reg: 0x15, Bits: 128, MinMode: 64, EVEX: true}
	XMM22 = &Register{Name: "xmm22", Type: TypeXMM, Reg: 0x16, Bits: 128, MinMode: 64, EVEX: true}
	XMM23 = &Register{Name: "xmm23", Type: TypeXMM, Reg: 0x17, Bits: 128, MinMode: 64, EVEX: true}
	XMM24 = &Register{Name: "xmm24", Type: TypeXMM, Reg: 0x18, Bits: 128, MinMode: 64, EVEX: true}
	XMM25 = &Register{Name: "xmm25", Type: TypeXMM, Reg: 0x19, Bits: 128, MinMode: 64, EVEX: true}
	XMM26 = &Register{Name: "xmm26", Type: TypeXMM, Reg: 0x1a, Bits: 128, MinMode: 64, EVEX: true}
	XMM27 = &Register{Name: "xmm27", Type: TypeXMM, Reg: 0x1b, Bits: 128, MinMode: 64, EVEX: true}
	XMM28 = &Register{Name: "xmm28", Type: TypeXMM, Reg: 0x1c, Bits: 128, MinMode: 64, EVEX: true}
	XMM29 = &Register{Name: "xmm29", Type: TypeXMM, Reg: 0x1d, Bits: 128, MinMode: 64, EVEX: true}
	XMM30 = &Register{Name: "xmm30", Type: TypeXMM, Reg: 0x1e, Bits: 128, MinMode: 64, EVEX: true}
	XMM31 = &Register{Name: "xmm31", Type: TypeXMM, Reg: 0x1f, Bits: 128, MinMode: 64, EVEX: true}

	// YMM registers.
	YMM0  = &Register{Name: "ymm0", Type: TypeYMM, Reg: 0x00, Bits: 256}
	YMM1  = &Register{Name: "ymm1", Type: TypeYMM, Reg: 0x01, Bits: 256}
	YMM2  = &Register{Name: "ymm2", Type: TypeYMM, Reg: 0x02, Bits: 256}
	YMM3  = &Register{Name: "ymm3", Type: TypeYMM, Reg: 0x03, Bits: 256}
	YMM4  = &Register{Name: "ymm4", Type: TypeYMM, Reg: 0x04, Bits: 256}
	YMM5  = &Register{Name: "ymm5", Type: TypeYMM, Reg: 0x05, Bits: 256}
	YMM6  = &Register{Name: "ymm6", Type: TypeYMM, Reg: 0x06, Bits: 256}
	YMM7  = &Register{Name: "ymm7", Type: TypeYMM, Reg: 0x07, Bits: 256}
	YMM8  = &Register{Name: "ymm8", Type: TypeYMM, Reg: 0x08, Bits: 256, MinMode: 64}
	YMM9  = &Register{Name: "ymm9", Type: TypeYMM, Reg: 0x09, Bits: 256, MinMode: 64}
	YMM10 = &Register{Name: "ymm10", Type: TypeYMM, Reg: 0x0a, Bits: 256, MinMode: 64}
	YMM11 = &Register{Name: "ymm11", Type: TypeYMM, Reg: 0x0b, Bits: 256, MinMode: 64}
	YMM12 = &Register{Name: "ymm12", Type: TypeYMM, Reg: 0x0c, Bits: 256, MinMode: 64}
	YMM13 = &Register{Name: "ymm13", Type: TypeYMM, Reg: 0x0d, Bits: 256, MinMode: 64}
	YMM14 = &Register{Name: "ymm14", Type: TypeYMM, Reg: 0x0e, Bits: 256, MinMode: 64}
	YMM15 = &Register{Name: "ymm15", Type: TypeYMM, Reg: 0x0f, Bits: 256, MinMode: 64}
	YMM16 = &Register{Name: "ymm16", Type: TypeYMM, Reg: 0x10, Bits: 256, MinMode: 64, EVEX: true}
	YMM17 = &Register{Name: "ymm17", Type: TypeYMM, Reg: 0x11, Bits: 256, MinMode: 64, EVEX: true}
	YMM18 = &Register{Name: "ymm18", Type: TypeYMM, Reg: 0x12, Bits: 256, MinMode: 64, EVEX: true}
	YMM19 = &Register{Name: "ymm19", Type: TypeYMM, Reg: 0x13, Bits: 256, MinMode: 64, EVEX: true}
	YMM20 = &Register{Name: "ymm20", Type: TypeYMM, Reg: 0x14, Bits: 256, MinMode: 64, EVEX: true}
	YMM21 = &Register{Name: "ymm21", Type: TypeYMM, Reg: 0x15, Bits: 256, MinMode: 64, EVEX: true}
	YMM22 = &Register{Name: "ymm22", Type: TypeYMM, Reg: 0x16, Bits: 256, MinMode: 64, EVEX: true}
	YMM23 = &Register{Name: "ymm23", Type: TypeYMM, Reg: 0x17, Bits: 256, MinMode: 64, EVEX: true}
	YMM24 = &Register{Name: "ymm24", Type: TypeYMM, Reg: 0x18, Bits: 256, MinMode: 64, EVEX: true}
	YMM25 = &Register{Name: "ymm25", Type: TypeYMM, Reg: 0x19, Bits: 256, MinMode: 64, EVEX: true}
	YMM26 = &Register{Name: "ymm26", Type: TypeYMM, Reg: 0x1a, Bits: 256, MinMode: 64, EVEX: true}
	YMM27 = &Register{Name: "ymm27", Type: TypeYMM, Reg: 0x1b, Bits: 256, MinMode: 64, EVEX: true}
	YMM28 = &Register{Name: "ymm28", Type: TypeYMM, Reg: 0x1c, Bits: 256, MinMode: 64, EVEX: true}
	YMM29 = &Register{Name: "ymm29", Type: TypeYMM, Reg: 0x1d, Bits: 256, MinMode: 64, EVEX: true}
	YMM30 = &Register{Name: "ymm30", Type: TypeYMM, Reg: 0x1e, Bits: 256, MinMode: 64, EVEX: true}
	YMM31 = &Register{Name: "ymm31", Type: TypeYMM, Reg: 0x1f, Bits: 256, MinMode: 64, EVEX: true}

	// ZMM registers.
	ZMM0  = &Register{Name: "zmm0", Type: TypeZMM, Reg: 0x00, Bits: 512, EVEX: true}
	ZMM1  = &Register{Name: "zmm1", Type: TypeZMM, Reg: 0x01, Bits: 512, EVEX: true}
	ZMM2  = &Register{Name: "zmm2", Type: TypeZMM, Reg: 0x02, Bits: 512, EVEX: true}
	ZMM3  = &Register{Name: "zmm3", Type: TypeZMM, Reg: 0x03, Bits: 512, EVEX: true}
	ZMM4  = &Register{Name: "zmm4", Type: TypeZMM, Reg: 0x04, Bits: 512, EVEX: true}
	ZMM5  = &Register{Name: "zmm5", Type: TypeZMM, Reg: 0x05, Bits: 512, EVEX: true}
	ZMM6  = &Register{Name: "zmm6", Type: TypeZMM, Reg: 0x06, Bits: 512, EVEX: true}
	ZMM7  = &Register{Name: "zmm7", Type: TypeZMM, Reg: 0x07, Bits: 512, EVEX: true}
	ZMM8  = &Register{Name: "zmm8", Type: TypeZMM, Reg: 0x08, Bits: 512, MinMode: 64, EVEX: true}
	ZMM9  = &Register{Name: "zmm9", Type: TypeZMM, Reg: 0x09, Bits: 512, MinMode: 64, EVEX: true}
	ZMM10 = &Register{Name: "zmm10", Type: TypeZMM, Reg: 0x0a, Bits: 512, MinMode: 64, EVEX: true}
	ZMM11 = &Register{Name: "zmm11", Type: TypeZMM, Reg: 0x0b, Bits: 512, MinMode: 64, EVEX: true}
	ZMM12 = &Register{Name: "zmm12", Type: TypeZMM, Reg: 0x0c, Bits: 512, MinMode: 64, EVEX: true}
	ZMM13 = &Register{Name: "zmm13", Type: TypeZMM, Reg: 0x0d, Bits: 512, MinMode: 64, EVEX: true}
	ZMM14 = &Register{Name: "zmm14", Type: TypeZMM, Reg: 0x0e, Bits: 512, MinMode: 64, EVEX: true}
	ZMM15 = &Register{Name: "zmm15", Type: TypeZMM, Reg: 0x0f, Bits: 512, MinMode: 64, EVEX: true}
	ZMM16 = &Register{Name: "zmm16", Type: TypeZMM, Reg: 0x10, Bits: 512, MinMode: 64, EVEX: true}
	ZMM17 = &Register{Name: "zmm17", Type: TypeZMM, Reg: 0x11, Bits: 512, MinMode: 64, EVEX: true}
	ZMM18 = &Register{Name: "zmm18", Type: TypeZMM, Reg: 0x12, Bits: 512, MinMode: 64, EVEX: true}
	ZMM19 = &Register{Name: "zmm19", Type: TypeZMM, Reg: 0x13, Bits: 512, MinMode: 64, EVEX: true}
	ZMM20 = &Register{Name: "zmm20", Type: TypeZMM, Reg: 0x14, Bits: 512, MinMode: 64, EVEX: true}
	ZMM21 = &Register{Name: "zmm21", Type: TypeZMM, Reg: 0x15, Bits: 512, MinMode: 64, EVEX: true}
	ZMM22 = &Register{Name: "zmm22", Type: TypeZMM, Reg: 0x16, Bits: 512, MinMode: 64, EVEX: true}
	ZMM23 = &Register{Name: "zmm23", Type: TypeZMM, Reg: 0x17, Bits: 512, MinMode: 64, EVEX: true}
	ZMM24 = &Register{Name: "zmm24", Type: TypeZMM, Reg: 0x18, Bits: 512, MinMode: 64, EVEX: true}
	ZMM25 = &Register{Name: "zmm25", Type: TypeZMM, Reg: 0x19, Bits: 512, MinMode: 64, EVEX: true}
	ZMM26 = &Register{Name: "zmm26", Type: TypeZMM, Reg: 0x1a, Bits: 512, MinMode: 64, EVEX: true}
	ZMM27 = &Register{Name: "zmm27", Type: TypeZMM, Reg: 0x1b, Bits: 512, MinMode: 64, EVEX: true}
	ZMM28 = &Register{Name: "zmm28", Type: TypeZMM, Reg: 0x1c, Bits: 512, MinMode: 64, EVEX: true}
	ZMM29 = &Register{Name: "zmm29", Type: TypeZMM, Reg: 0x1d, Bits: 512, MinMode: 64, EVEX: true}
	ZMM30 = &Register{Name: "zmm30", Type: TypeZMM, Reg: 0x1e, Bits: 512, MinMode: 64, EVEX: true}
	ZMM31 = &Register{Name: "zmm31", Type: TypeZMM, Reg: 0x1f, Bits: 512, MinMode: 64, EVEX: true}
)

// Registers contains every register
// known to the decoder.
var Registers = []*Register{
	AL, CL, DL, BL, AH, CH, DH, BH,
	SPL, BPL, SIL, DIL, R8L, R9L, R10L, R11L,
	R12L, R13L, R14L, R15L,
	AX, CX, DX, BX, SP, BP, SI, DI,
	R8W, R9W, R10W, R11W, R12W, R13W, R14W, R15W,
	EAX, ECX, EDX, EBX, ESP, EBP, ESI, EDI,
	R8D, R9D, R10D, R11D, R12D, R13D, R14D, R15D,
	RAX, RCX, RDX, RBX, RSP, RBP, RSI, RDI,
	R8, R9, R10, R11, R12, R13, R14, R15,
	IP, EIP, RIP,
	ES, CS, SS, DS, FS, GS,
	K0, K1, K2, K3, K4, K5, K6, K7,
	MM0, MM1, MM2, MM3, MM4, MM5, MM6, MM7,
	XMM0, XMM1, XMM2, XMM3, XMM4, XMM5, XMM6, XMM7,
	XMM8, XMM9, XMM10, XMM11, XMM12, XMM13, XMM14, XMM15,
	XMM16, XMM17, XMM18, XMM19, XMM20, XMM21, XMM22, XMM23,
	XMM24, XMM25, XMM26, XMM27, XMM28, XMM29, XMM30, XMM31,
	YMM0, YMM1, YMM2, YMM3, YMM4, YMM5, YMM6, YMM7,
	YMM8, YMM9, YMM10, YMM11, YMM12, YMM13, YMM14, YMM15,
	YMM16, YMM17, YMM18, YMM19, YMM20, YMM21, YMM22, YMM23,
	YMM24, YMM25, YMM26, YMM27, YMM28, YMM29, YMM30, YMM31,
	ZMM0, ZMM1, ZMM2, ZMM3, ZMM4, ZMM5, ZMM6, ZMM7,
	ZMM8, ZMM9, ZMM10, ZMM11, ZMM12, ZMM13, ZMM14, ZMM15,
	ZMM16, ZMM17, ZMM18, ZMM19, ZMM20, ZMM21, ZMM22, ZMM23,
	ZMM24, ZMM25, ZMM26, ZMM27, ZMM28, ZMM29, ZMM30, ZMM31,
}

// The register files below are indexed by
// encoding number.
var (
	registers8bitLegacy = [8]*Register{AL, CL, DL, BL, AH, CH, DH, BH}
	registers8bit       = [16]*Register{AL, CL, DL, BL, SPL, BPL, SIL, DIL, R8L, R9L, R10L, R11L, R12L, R13L, R14L, R15L}
	registers16bit      = [16]*Register{AX, CX, DX, BX, SP, BP, SI, DI, R8W, R9W, R10W, R11W, R12W, R13W, R14W, R15W}
	registers32bit      = [16]*Register{EAX, ECX, EDX, EBX, ESP, EBP, ESI, EDI, R8D, R9D, R10D, R11D, R12D, R13D, R14D, R15D}
	registers64bit      = [16]*Register{RAX, RCX, RDX, RBX, RSP, RBP, RSI, RDI, R8, R9, R10, R11, R12, R13, R14, R15}
	registersSegment    = [6]*Register{ES, CS, SS, DS, FS, GS}
	registersOpmask     = [8]*Register{K0, K1, K2, K3, K4, K5, K6, K7}
	registersMMX        = [8]*Register{MM0, MM1, MM2, MM3, MM4, MM5, MM6, MM7}
	registersXMM        = [32]*Register{
		XMM0, XMM1, XMM2, XMM3, XMM4, XMM5, XMM6, XMM7,
		XMM8, XMM9, XMM10, XMM11, XMM12, XMM13, XMM14, XMM15,
		XMM16, XMM17, XMM18, XMM19, XMM20, XMM21, XMM22, XMM23,
		XMM24, XMM25, XMM26, XMM27, XMM28, XMM29, XMM30, XMM31,
	}
	registersYMM = [32]*Register{
		YMM0, YMM1, YMM2, YMM3, YMM4, YMM5, YMM6, YMM7,
		YMM8, YMM9, YMM10, YMM11, YMM12, YMM13, YMM14, YMM15,
		YMM16, YMM17, YMM18, YMM19, YMM20, YMM21, YMM22, YMM23,
		YMM24, YMM25, YMM26, YMM27, YMM28, YMM29, YMM30, YMM31,
	}
	registersZMM = [32]*Register{
		ZMM0, ZMM1, ZMM2, ZMM3, ZMM4, ZMM5, ZMM6, ZMM7,
		ZMM8, ZMM9, ZMM10, ZMM11, ZMM12, ZMM13, ZMM14, ZMM15,
		ZMM16, ZMM17, ZMM18, ZMM19, ZMM20, ZMM21, ZMM22, ZMM23,
		ZMM24, ZMM25, ZMM26, ZMM27, ZMM28, ZMM29, ZMM30, ZMM31,
	}
)

// RegisterFor returns the register of the
// given type with encoding number num, or
// nil if there is no such register.
//
// For general purpose registers, bits picks
// the register size. An 8-bit register
// number between 4 and 7 selects AH, CH,
// DH, or BH unless rex is set, in which
// case it selects SPL, BPL, SIL, or DIL.
func RegisterFor(typ RegisterType, bits int, num byte, rex bool) *Register {
	switch typ {
	case TypeGeneralPurpose:
		if num >= 16 {
			return nil
		}

		switch bits {
		case 8:
			if !rex && num < 8 {
				return registers8bitLegacy[num]
			}

			return registers8bit[num]
		case 16:
			return registers16bit[num]
		case 32:
			return registers32bit[num]
		case 64:
			return registers64bit[num]
		}
	case TypeSegment:
		if int(num) < len(registersSegment) {
			return registersSegment[num]
		}
	case TypeOpmask:
		if int(num) < len(registersOpmask) {
			return registersOpmask[num]
		}
	case TypeMMX:
		if int(num) < len(registersMMX) {
			return registersMMX[num]
		}
	case TypeXMM:
		if int(num) < len(registersXMM) {
			return registersXMM[num]
		}
	case TypeYMM:
		if int(num) < len(registersYMM) {
			return registersYMM[num]
		}
	case TypeZMM:
		if int(num) < len(registersZMM) {
			return registersZMM[num]
		}
	}

	return nil
}

// RegistersByName maps register names
// and their aliases to registers.
var RegistersByName = make(map[string]*Register)

func init() {
	for _, reg := range Registers {
		RegistersByName[reg.Name] = reg
		for _, alias := range reg.Aliases {
			RegistersByName[alias] = reg
		}
	}
}

// RegisterType categorises an x86
// register.
type RegisterType uint8

const (
	_ RegisterType = iota
	TypeGeneralPurpose
	TypeInstructionPointer
	TypeSegment
	TypeOpmask
	TypeMMX
	TypeXMM
	TypeYMM
	TypeZMM
)

func (t RegisterType) String() string {
	switch t {
	case TypeGeneralPurpose:
		return "general purpose register"
	case TypeInstructionPointer:
		return "instruction pointer register"
	case TypeSegment:
		return "segment register"
	case TypeOpmask:
		return "opmask register"
	case TypeMMX:
		return "MMX register"
	case TypeXMM:
		return "XMM register"
	case TypeYMM:
		return "YMM register"
	case TypeZMM:
		return "ZMM register"
	default:
		return fmt.Sprintf("RegisterType(%d)", t)
	}
}

// VectorRegisterType returns the vector
// register type for the given vector
// length in bits.
func VectorRegisterType(bits int) RegisterType {
	switch bits {
	case 128:
		return TypeXMM
	case 256:
		return TypeYMM
	case 512:
		return TypeZMM
	}

	return 0
}
