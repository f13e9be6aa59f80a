// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

// Package xcheck compares the decoder against the x86asm
// decoder from golang.org/x/arch.
//
// The x86asm decoder does not support VEX, XOP, or EVEX
// instructions, so only legacy instructions are compared.
package xcheck

import (
	"context"
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"golang.org/x/arch/x86/x86asm"

	"firefly-os.dev/x86dec/cmd/decode"
	"firefly-os.dev/x86dec/decoder"
)

var program = filepath.Base(os.Args[0])

// Main cross-checks the decoder on machine code
// from the given files.
func Main(ctx context.Context, w io.Writer, args []string) error {
	flags := flag.NewFlagSet("xcheck", flag.ExitOnError)

	var help, hexInput, verbose bool
	var bitness int
	var code string
	flags.BoolVar(&help, "h", false, "Show this message and exit.")
	flags.BoolVar(&hexInput, "hex", false, "Read the input as hexadecimal text, rather than binary.")
	flags.BoolVar(&verbose, "v", false, "Print every instruction, not just disagreements.")
	flags.IntVar(&bitness, "mode", 64, "The CPU mode (16, 32, or 64).")
	flags.StringVar(&code, "code", "", "Machine code to check, in hexadecimal, instead of reading files.")

	flags.Usage = func() {
		log.Printf("Usage:\n  %s %s [OPTIONS] [FILE...]\n\n", program, flags.Name())
		flags.PrintDefaults()
		os.Exit(2)
	}

	err := flags.Parse(args)
	if err != nil || help {
		flags.Usage()
	}

	var inputs []*decode.Input
	if code != "" {
		data, err := decode.ParseHex(code)
		if err != nil {
			return fmt.Errorf("invalid -code: %v", err)
		}

		inputs = append(inputs, &decode.Input{Name: "code", Data: data})
	}

	for _, name := range flags.Args() {
		data, err := os.ReadFile(name)
		if err != nil {
			return fmt.Errorf("failed to read %s: %v", name, err)
		}

		input, err := decode.NewInput(name, data, hexInput)
		if err != nil {
			return err
		}

		inputs = append(inputs, input)
	}

	if len(inputs) == 0 {
		flags.Usage()
	}

	var mismatches int
	for _, input := range inputs {
		if err := ctx.Err(); err != nil {
			return err
		}

		report, err := Compare(bitness, 0, input.Data)
		if err != nil {
			return fmt.Errorf("failed to check %s: %v", input.Name, err)
		}

		report.Name = input.Name
		err = report.Write(w, verbose)
		if err != nil {
			return err
		}

		mismatches += len(report.Mismatches)
	}

	if mismatches != 0 {
		return fmt.Errorf("found %d disagreements", mismatches)
	}

	return nil
}

// Result is the outcome of comparing one
// instruction.
type Result struct {
	Offset int
	IP     uint64
	Bytes  []byte

	Ours      string // The decoded instruction, or the error.
	OurLength int
	OurErr    error

	Theirs      string
	TheirLength int
	TheirErr    error
}

func (r *Result) String() string {
	return fmt.Sprintf("%#x\t%s\tx86dec: %s (%d bytes)\tx86asm: %s (%d bytes)",
		r.IP, hex.EncodeToString(r.Bytes), r.Ours, r.OurLength, r.Theirs, r.TheirLength)
}

// Agrees reports whether both decoders
// reached the same length, or both
// rejected the instruction.
func (r *Result) Agrees() bool {
	if r.OurErr != nil || r.TheirErr != nil {
		return r.OurErr != nil && r.TheirErr != nil
	}

	return r.OurLength == r.TheirLength
}

// Report summarises a comparison.
type Report struct {
	Name       string
	Checked    int
	Agreed     int
	Skipped    int // Instructions x86asm cannot decode.
	Mismatches []*Result
	Results    []*Result
}

// Compare decodes the machine code with
// both decoders. Instructions that use
// VEX, XOP, or EVEX prefixes are skipped.
// The decoder's own lengths are used to
// step through the code.
func Compare(bitness int, ip uint64, data []byte) (*Report, error) {
	d, err := decoder.New(bitness, data, ip, 0)
	if err != nil {
		return nil, err
	}

	report := new(Report)
	for d.CanDecode() {
		offset := d.Position()
		inst, err := d.Decode()
		var derr *decoder.DecodeError
		if err != nil && !errors.As(err, &derr) {
			return nil, err
		}

		if err == nil && inst.Encoding != decoder.EncodingLegacy {
			report.Skipped++
			continue
		}

		res := &Result{
			Offset:    offset,
			IP:        inst.IP,
			Bytes:     data[offset : offset+inst.ByteLength],
			OurLength: inst.ByteLength,
			OurErr:    err,
		}

		if err != nil {
			res.Ours = derr.Err.Error()
		} else {
			res.Ours = inst.String()
		}

		theirs, err := x86asm.Decode(data[offset:], bitness)
		if err != nil {
			res.TheirErr = err
			res.Theirs = err.Error()
		} else {
			res.TheirLength = theirs.Len
			res.Theirs = x86asm.IntelSyntax(theirs, inst.IP, nil)
		}

		report.Checked++
		report.Results = append(report.Results, res)
		if res.Agrees() {
			report.Agreed++
		} else {
			report.Mismatches = append(report.Mismatches, res)
		}
	}

	return report, nil
}

// Write prints the report's disagreements,
// or every result if verbose is set, then
// a summary.
func (r *Report) Write(w io.Writer, verbose bool) error {
	results := r.Mismatches
	if verbose {
		results = r.Results
	}

	for _, res := range results {
		_, err := fmt.Fprintln(w, res)
		if err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "%s: %d checked, %d agreed, %d disagreed, %d skipped\n",
		r.Name, r.Checked, r.Agreed, len(r.Mismatches), r.Skipped)

	return err
}
