// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package decoder

import (
	"testing"

	"golang.org/x/arch/x86/x86asm"
)

// TestLengthsAgree checks the lengths of legacy
// instructions against the x86asm decoder.
func TestLengthsAgree(t *testing.T) {
	tests := []struct {
		Mode int
		Code string
	}{
		{16, "0f 48 18"},
		{16, "8b 80 34 12"},
		{16, "8b 06 34 12"},
		{16, "66 8b 44 08"},
		{16, "e8 10 00"},
		{32, "f0 01 18"},
		{32, "8b 45 08"},
		{32, "8b 04 8b"},
		{32, "64 8b 44 8b 08"},
		{32, "67 8b 40 7f"},
		{32, "83 c0 ff"},
		{32, "81 c0 78 56 34 12"},
		{32, "66 81 c0 34 12"},
		{32, "a1 78 56 34 12"},
		{32, "f3 a5"},
		{32, "e8 00 01 00 00"},
		{32, "c4 00"},
		{32, "8f 00"},
		{32, "d1 e0"},
		{32, "c1 e0 04"},
		{64, "48 8d 05 10 00 00 00"},
		{64, "48 b8 88 77 66 55 44 33 22 11"},
		{64, "41 b8 01 00 00 00"},
		{64, "8b 04 25 78 56 34 12"},
		{64, "8b 84 24 00 01 00 00"},
		{64, "48 83 c0 ff"},
		{64, "48 c7 00 ff ff ff ff"},
		{64, "eb fe"},
		{64, "0f 84 00 00 00 00"},
		{64, "f3 0f 10 c1"},
		{64, "66 0f ef c1"},
		{64, "0f 1f 44 00 00"},
		{64, "f3 90"},
		{64, "0f 05"},
	}

	for _, test := range tests {
		code := mustHex(t, test.Code)
		want, err := x86asm.Decode(code, test.Mode)
		if err != nil {
			t.Fatalf("x86asm.Decode(%s) in %d-bit mode: %v", test.Code, test.Mode, err)
		}

		d, err := New(test.Mode, code, 0, 0)
		if err != nil {
			t.Fatal(err)
		}

		got, err := d.Decode()
		if err != nil {
			t.Errorf("Decode(%s) in %d-bit mode: %v", test.Code, test.Mode, err)
			continue
		}

		if got.ByteLength != want.Len {
			t.Errorf("Decode(%s) in %d-bit mode: got length %d, x86asm has %d (%v)", test.Code, test.Mode, got.ByteLength, want.Len, want)
		}
	}
}
