// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package opcodes

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"rsc.io/diff"

	"firefly-os.dev/x86dec/internal/optable"
	"firefly-os.dev/x86dec/x86"
)

func TestCommand(t *testing.T) {
	tests := []struct {
		Name string
		Args []string
		Want string
	}{
		{
			Name: "register",
			Args: []string{"-reg", "RAX"},
			Want: "rax\n" +
				"  type:     general purpose register\n" +
				"  bits:     64\n" +
				"  number:   0\n" +
				"  min mode: 64\n",
		},
		{
			Name: "match",
			Args: []string{"-match", "0f 48 c3"},
			Want: "Cmovs_r16_rm16\tCMOVS r16, rm16\t0F 48 /r\n" +
				"Cmovs_r32_rm32\tCMOVS r32, rm32\t0F 48 /r\n",
		},
		{
			Name: "code",
			Args: []string{"-code", "Cmovs_r16_rm16"},
			Want: "Cmovs_r16_rm16\n" +
				"  syntax:   CMOVS r16, rm16\n" +
				"  encoding: 0F 48 /r\n" +
				"  family:   legacy\n" +
				"  modes:    16 32 64\n" +
				"  op0:      " + optable.Default().Template(x86.Cmovs_r16_rm16).Operands[0].String() + "\n" +
				"  op1:      " + optable.Default().Template(x86.Cmovs_r16_rm16).Operands[1].String() + "\n" +
				"  row:      524\n",
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			var buf bytes.Buffer
			err := Main(context.Background(), &buf, test.Args)
			if err != nil {
				t.Fatalf("Main(%q): %v", test.Args, err)
			}

			if got := buf.String(); got != test.Want {
				t.Fatalf("Main(%q):\n%s", test.Args, diff.Format(got, test.Want))
			}
		})
	}
}

func TestMainErrors(t *testing.T) {
	tests := [][]string{
		{"-reg", "foo"},
		{"-code", "Frobnicate"},
		{"-match", "0g"},
		{"-mode", "8"},
		{"-family", "3DNow"},
	}

	for _, args := range tests {
		var buf bytes.Buffer
		err := Main(context.Background(), &buf, args)
		if err == nil {
			t.Errorf("Main(%q): unexpected success", args)
		}
	}
}

func TestTree(t *testing.T) {
	table := optable.Default()
	tests := []struct {
		Name    string
		Mode    int
		Family  string
		Want    []string
		NotWant []string
	}{
		{
			Name: "all",
			Want: []string{
				"legacy",
				"0F",
				"48 NP /r",
				"Cmovs_r16_rm16: CMOVS r16, rm16 [16 32 64]",
				"Cmovs_r64_rm64: CMOVS r64, rm64 [64]",
				"EVEX_Vpshufb_xmm_k1z_xmm_xmmm128: VPSHUFB xmm1{k1}{z}, xmmV, xmm2/m128 [16 32 64]",
			},
		},
		{
			Name: "16-bit",
			Mode: 16,
			Want: []string{
				"Cmovs_r16_rm16: CMOVS r16, rm16 [16 32 64]",
			},
			NotWant: []string{
				"Cmovs_r64_rm64",
			},
		},
		{
			Name:   "XOP",
			Family: "xop",
			Want: []string{
				"XOP8",
				"XOP_Vpcmov_xmm_xmm_xmmm128_xmm",
			},
			NotWant: []string{
				"legacy",
				"EVEX",
				"Cmovs",
			},
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			f, err := newFilter(test.Mode, test.Family)
			if err != nil {
				t.Fatal(err)
			}

			got := buildTree(table, f).String()
			if !strings.HasPrefix(got, "x86 (") {
				t.Errorf("buildTree(): missing root in:\n%s", got)
			}

			for _, want := range test.Want {
				if !strings.Contains(got, want) {
					t.Errorf("buildTree(): missing %q", want)
				}
			}

			for _, notWant := range test.NotWant {
				if strings.Contains(got, notWant) {
					t.Errorf("buildTree(): unexpected %q", notWant)
				}
			}
		})
	}
}

func TestJSON(t *testing.T) {
	f, err := newFilter(0, "EVEX")
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	err = writeJSON(&buf, optable.Default(), f)
	if err != nil {
		t.Fatal(err)
	}

	var got []struct {
		Code   string `json:"code"`
		Family string `json:"family"`
		Tuple  string `json:"tuple"`
		Row    int    `json:"row"`
	}

	err = json.Unmarshal(buf.Bytes(), &got)
	if err != nil {
		t.Fatalf("failed to parse JSON: %v", err)
	}

	if len(got) == 0 {
		t.Fatalf("writeJSON(EVEX): no instruction forms")
	}

	for _, tmpl := range got {
		if tmpl.Family != "EVEX" || !strings.HasPrefix(tmpl.Code, "EVEX_") {
			t.Errorf("writeJSON(EVEX): got %s in family %s", tmpl.Code, tmpl.Family)
		}

		if tmpl.Row == 0 {
			t.Errorf("writeJSON(EVEX): %s has no row", tmpl.Code)
		}
	}
}

func TestJSONRoundTrip(t *testing.T) {
	table := optable.Default()
	f, err := newFilter(64, "")
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	err = writeJSON(&buf, table, f)
	if err != nil {
		t.Fatal(err)
	}

	var got []struct {
		Code     x86.Code       `json:"code"`
		Operands []*x86.Operand `json:"operands"`
		Memory   x86.MemorySize `json:"memory"`
	}

	err = json.Unmarshal(buf.Bytes(), &got)
	if err != nil {
		t.Fatalf("failed to parse JSON: %v", err)
	}

	if len(got) == 0 {
		t.Fatalf("writeJSON(64): no instruction forms")
	}

	for _, form := range got {
		tmpl := table.Template(form.Code)
		if tmpl == nil {
			t.Errorf("writeJSON(64): unknown instruction form %s", form.Code)
			continue
		}

		if diff := cmp.Diff(tmpl.Operands, form.Operands, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("writeJSON(%s): operands (-want, +got)\n%s", form.Code, diff)
		}

		if form.Memory != tmpl.Memory {
			t.Errorf("writeJSON(%s): got memory %s, want %s", form.Code, form.Memory, tmpl.Memory)
		}
	}
}
