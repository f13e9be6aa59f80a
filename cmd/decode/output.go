// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package decode

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"gopkg.in/yaml.v3"

	"firefly-os.dev/x86dec/decoder"
)

// Listing contains the instructions
// decoded from one input.
type Listing struct {
	Name    string    `json:"name" yaml:"name"`
	Records []*Record `json:"instructions" yaml:"instructions"`

	insts []decoder.Instruction
}

// Invalid returns the number of instructions
// that could not be decoded.
func (l *Listing) Invalid() int {
	n := 0
	for _, rec := range l.Records {
		if rec.Error != "" {
			n++
		}
	}

	return n
}

// Record describes one decoded instruction
// in a form suitable for serialisation.
type Record struct {
	Offset   int      `json:"offset" yaml:"offset"`
	IP       uint64   `json:"ip" yaml:"ip"`
	Bytes    string   `json:"bytes" yaml:"bytes"`
	Code     string   `json:"code" yaml:"code"`
	Encoding string   `json:"encoding,omitempty" yaml:"encoding,omitempty"`
	Prefixes []string `json:"prefixes,omitempty" yaml:"prefixes,omitempty"`
	Operands []string `json:"operands,omitempty" yaml:"operands,omitempty"`
	OpMask   string   `json:"opmask,omitempty" yaml:"opmask,omitempty"`
	Zeroing  bool     `json:"zeroing,omitempty" yaml:"zeroing,omitempty"`
	Rounding string   `json:"rounding,omitempty" yaml:"rounding,omitempty"`
	SAE      bool     `json:"sae,omitempty" yaml:"sae,omitempty"`
	Error    string   `json:"error,omitempty" yaml:"error,omitempty"`

	text string
}

func newRecord(offset int, code []byte, inst *decoder.Instruction, derr *decoder.DecodeError) *Record {
	rec := &Record{
		Offset: offset,
		IP:     inst.IP,
		Bytes:  hex.EncodeToString(code),
		Code:   inst.Code.String(),
	}

	if derr != nil {
		rec.Error = derr.Error()
		rec.text = "(bad) " + derr.Err.Error()
		return rec
	}

	rec.text = inst.String()
	rec.Encoding = inst.Encoding.String()
	if inst.HasLockPrefix {
		rec.Prefixes = append(rec.Prefixes, "lock")
	}

	if inst.HasRepePrefix {
		rec.Prefixes = append(rec.Prefixes, "repe")
	}

	if inst.HasRepnePrefix {
		rec.Prefixes = append(rec.Prefixes, "repne")
	}

	if inst.SegmentPrefix != nil {
		rec.Prefixes = append(rec.Prefixes, inst.SegmentPrefix.Name)
	}

	for i := 0; i < inst.OpCount; i++ {
		rec.Operands = append(rec.Operands, inst.Operands[i].String())
	}

	if inst.OpMask != nil {
		rec.OpMask = inst.OpMask.Name
	}

	rec.Zeroing = inst.ZeroingMasking
	if inst.RoundingControl != decoder.RoundNone {
		rec.Rounding = inst.RoundingControl.String()
	}

	rec.SAE = inst.SuppressAllExceptions

	return rec
}

// Write prints the listings to w in the
// given format.
func Write(w io.Writer, format string, listings []*Listing) error {
	switch format {
	case "text":
		return writeText(w, listings)
	case "json":
		e := json.NewEncoder(w)
		e.SetIndent("", "\t")
		return e.Encode(listings)
	case "yaml":
		e := yaml.NewEncoder(w)
		e.SetIndent(2)
		err := e.Encode(listings)
		if err != nil {
			return err
		}

		return e.Close()
	case "debug":
		cfg := spew.ConfigState{
			Indent:                  "\t",
			DisablePointerAddresses: true,
			DisableCapacities:       true,
			SortKeys:                true,
		}

		for _, l := range listings {
			fmt.Fprintf(w, "%s:\n", l.Name)
			cfg.Fdump(w, l.insts)
		}

		return nil
	}

	return fmt.Errorf("unknown format %q", format)
}

// writeText prints one instruction per line,
// as its address, its bytes, and a short
// description. The name of each listing is
// printed first if there is more than one.
func writeText(w io.Writer, listings []*Listing) error {
	for i, l := range listings {
		if len(listings) > 1 {
			if i > 0 {
				fmt.Fprintln(w)
			}

			fmt.Fprintf(w, "%s:\n", l.Name)
		}

		for _, rec := range l.Records {
			_, err := fmt.Fprintf(w, "%0*x\t%s\t%s\n", addressWidth(rec.IP), rec.IP, rec.Bytes, rec.text)
			if err != nil {
				return err
			}
		}
	}

	return nil
}

// addressWidth returns the number of hex
// digits used to print addresses.
func addressWidth(ip uint64) int {
	if ip > 0xffff_ffff {
		return 16
	}

	return 8
}
