// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

// Package opcodes prints information about the opcode table
// and the registers the decoder knows about.
package opcodes

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/xlab/treeprint"

	"firefly-os.dev/x86dec/cmd/decode"
	"firefly-os.dev/x86dec/internal/optable"
	"firefly-os.dev/x86dec/x86"
)

var program = filepath.Base(os.Args[0])

// Main prints the opcode table.
func Main(ctx context.Context, w io.Writer, args []string) error {
	flags := flag.NewFlagSet("opcodes", flag.ExitOnError)

	var help, asJSON bool
	var mode int
	var family, match, register, code string
	flags.BoolVar(&help, "h", false, "Show this message and exit.")
	flags.BoolVar(&asJSON, "json", false, "Print the instruction forms as JSON, rather than a tree.")
	flags.IntVar(&mode, "mode", 0, "Only include instruction forms valid in the given CPU mode (16, 32, or 64).")
	flags.StringVar(&family, "family", "", "Only include instruction forms with the given encoding (legacy, VEX, XOP, or EVEX).")
	flags.StringVar(&match, "match", "", "List the instruction forms that match the given 64-bit machine code, in hexadecimal.")
	flags.StringVar(&register, "reg", "", "Describe the named register.")
	flags.StringVar(&code, "code", "", "Describe the named instruction form, such as Cmovs_r16_rm16.")

	flags.Usage = func() {
		log.Printf("Usage:\n  %s %s [OPTIONS]\n\n", program, flags.Name())
		flags.PrintDefaults()
		os.Exit(2)
	}

	err := flags.Parse(args)
	if err != nil || help || flags.NArg() != 0 {
		flags.Usage()
	}

	table := optable.Default()
	switch {
	case register != "":
		return describeRegister(w, register)
	case code != "":
		c, ok := x86.CodesByName[code]
		if !ok {
			return fmt.Errorf("unknown instruction form %q", code)
		}

		return describeTemplate(w, table.Template(c))
	case match != "":
		machineCode, err := decode.ParseHex(match)
		if err != nil {
			return fmt.Errorf("invalid -match: %v", err)
		}

		for _, tmpl := range table.Match(machineCode) {
			fmt.Fprintf(w, "%s\t%s\t%s\n", tmpl.Code, tmpl.Syntax, tmpl.Encoding.Syntax)
		}

		return nil
	}

	f, err := newFilter(mode, family)
	if err != nil {
		return err
	}

	if asJSON {
		return writeJSON(w, table, f)
	}

	_, err = fmt.Fprintln(w, buildTree(table, f).String())

	return err
}

// filter selects the instruction forms
// to print.
type filter struct {
	mode   int
	family string
}

func newFilter(mode int, family string) (*filter, error) {
	switch mode {
	case 0, 16, 32, 64:
	default:
		return nil, fmt.Errorf("invalid -mode %d: must be 16, 32, or 64", mode)
	}

	switch strings.ToLower(family) {
	case "", "legacy", "vex", "xop", "evex":
	default:
		return nil, fmt.Errorf("invalid -family %q: must be legacy, VEX, XOP, or EVEX", family)
	}

	return &filter{mode: mode, family: strings.ToLower(family)}, nil
}

func (f *filter) accepts(tmpl *optable.Template) bool {
	if f.mode != 0 && !tmpl.Modes.Has(f.mode) {
		return false
	}

	if f.family != "" && strings.ToLower(tmpl.Family.String()) != f.family {
		return false
	}

	return true
}

// buildTree returns the opcode table as a
// tree of encoding families, opcode maps,
// opcodes, and instruction forms.
func buildTree(table *optable.Table, f *filter) treeprint.Tree {
	root := treeprint.NewWithRoot("x86")
	var (
		familyNode treeprint.Tree
		mapNode    treeprint.Tree
		lastFamily = optable.Family(255)
		lastMap    = x86.Map(255)
	)

	forms := 0
	for _, entry := range table.Entries() {
		var templates []*optable.Template
		for _, tmpl := range entry.Templates {
			if f.accepts(tmpl) {
				templates = append(templates, tmpl)
			}
		}

		if len(templates) == 0 {
			continue
		}

		key := entry.Key
		if familyNode == nil || key.Family != lastFamily {
			familyNode = root.AddBranch(key.Family.String())
			lastFamily = key.Family
			mapNode = nil
		}

		if mapNode == nil || key.Map != lastMap {
			mapNode = familyNode.AddBranch(key.Map.String())
			lastMap = key.Map
		}

		opcode := fmt.Sprintf("%02X %s", key.Opcode, key.Prefix)
		if entry.NeedsModRM {
			opcode += " /r"
		}

		opcodeNode := mapNode.AddBranch(opcode)
		for _, tmpl := range templates {
			opcodeNode.AddNode(fmt.Sprintf("%s: %s [%s]", tmpl.Code, tmpl.Syntax, tmpl.Modes))
			forms++
		}
	}

	root.SetValue(fmt.Sprintf("x86 (%d instruction forms)", forms))

	return root
}

type jsonTemplate struct {
	Code     x86.Code       `json:"code"`
	Syntax   string         `json:"syntax"`
	Family   string         `json:"family"`
	Modes    string         `json:"modes"`
	Encoding *x86.Encoding  `json:"encoding"`
	Operands []*x86.Operand `json:"operands,omitempty"`
	Tuple    string         `json:"tuple,omitempty"`
	Memory   x86.MemorySize `json:"memory,omitempty"`
	Row      int            `json:"row"`
}

func newJSONTemplate(tmpl *optable.Template) *jsonTemplate {
	j := &jsonTemplate{
		Code:     tmpl.Code,
		Syntax:   tmpl.Syntax,
		Family:   tmpl.Family.String(),
		Modes:    tmpl.Modes.String(),
		Encoding: tmpl.Encoding,
		Operands: tmpl.Operands,
		Memory:   tmpl.Memory,
		Row:      tmpl.Row,
	}

	if tmpl.Tuple != x86.TupleNone {
		j.Tuple = tmpl.Tuple.String()
	}

	return j
}

func writeJSON(w io.Writer, table *optable.Table, f *filter) error {
	var out []*jsonTemplate
	err := table.Walk(func(tmpl *optable.Template) error {
		if f.accepts(tmpl) {
			out = append(out, newJSONTemplate(tmpl))
		}

		return nil
	})
	if err != nil {
		return err
	}

	e := json.NewEncoder(w)
	e.SetIndent("", "\t")

	return e.Encode(out)
}

func describeTemplate(w io.Writer, tmpl *optable.Template) error {
	if tmpl == nil {
		return fmt.Errorf("instruction form not in the table")
	}

	fmt.Fprintf(w, "%s\n", tmpl.Code)
	fmt.Fprintf(w, "  syntax:   %s\n", tmpl.Syntax)
	fmt.Fprintf(w, "  encoding: %s\n", tmpl.Encoding.Syntax)
	fmt.Fprintf(w, "  family:   %s\n", tmpl.Family)
	fmt.Fprintf(w, "  modes:    %s\n", tmpl.Modes)
	for i, op := range tmpl.Operands {
		fmt.Fprintf(w, "  op%d:      %s\n", i, op)
	}

	if tmpl.Tuple != x86.TupleNone {
		fmt.Fprintf(w, "  tuple:    %s\n", tmpl.Tuple)
	}

	_, err := fmt.Fprintf(w, "  row:      %d\n", tmpl.Row)

	return err
}

func describeRegister(w io.Writer, name string) error {
	reg, ok := x86.RegistersByName[strings.ToLower(name)]
	if !ok {
		return fmt.Errorf("unknown register %q", name)
	}

	fmt.Fprintf(w, "%s\n", reg.Name)
	fmt.Fprintf(w, "  type:     %s\n", reg.Type)
	fmt.Fprintf(w, "  bits:     %d\n", reg.Bits)
	fmt.Fprintf(w, "  number:   %d\n", reg.Reg)
	if reg.MinMode != 0 {
		fmt.Fprintf(w, "  min mode: %d\n", reg.MinMode)
	}

	if reg.EVEX {
		fmt.Fprintf(w, "  EVEX only\n")
	}

	if len(reg.Aliases) != 0 {
		fmt.Fprintf(w, "  aliases:  %s\n", strings.Join(reg.Aliases, ", "))
	}

	return nil
}
