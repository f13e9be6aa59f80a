// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

// Package decode decodes x86 machine code and prints the
// instructions it contains.
package decode

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
	"runtime"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"firefly-os.dev/x86dec/decoder"
)

var program = filepath.Base(os.Args[0])

// Main decodes machine code from files, the
// standard input, or the command line.
func Main(ctx context.Context, w io.Writer, args []string) error {
	flags := flag.NewFlagSet("decode", flag.ExitOnError)

	var help, hexInput, verbose, noInvalidCheck bool
	var bitness int
	var configName, ip, format, disable, code string
	flags.BoolVar(&help, "h", false, "Show this message and exit.")
	flags.BoolVar(&hexInput, "hex", false, "Read the input as hexadecimal text, rather than binary.")
	flags.BoolVar(&verbose, "v", false, "Log progress information.")
	flags.BoolVar(&noInvalidCheck, "no-invalid-check", false, "Accept instructions that break encoding rules, if they can be decoded.")
	flags.IntVar(&bitness, "mode", 64, "The CPU mode (16, 32, or 64).")
	flags.StringVar(&configName, "config", "", "A TOML file containing default settings.")
	flags.StringVar(&ip, "ip", "0", "The address of the first instruction.")
	flags.StringVar(&format, "format", "text", "The output format (text, json, yaml, or debug).")
	flags.StringVar(&disable, "disable", "", "A comma-separated list of encodings to reject (vex, xop, evex).")
	flags.StringVar(&code, "code", "", "Machine code to decode, in hexadecimal, instead of reading files.")

	flags.Usage = func() {
		log.Printf("Usage:\n  %s %s [OPTIONS] [FILE...]\n\n", program, flags.Name())
		flags.PrintDefaults()
		os.Exit(2)
	}

	err := flags.Parse(args)
	if err != nil || help {
		flags.Usage()
	}

	cfg := DefaultConfig()
	if configName != "" {
		cfg, err = LoadConfig(configName)
		if err != nil {
			return err
		}
	}

	// Flags that were set take precedence
	// over the config file.
	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "mode":
			cfg.Bitness = bitness
		case "ip":
			var v uint64
			v, err = strconv.ParseUint(ip, 0, 64)
			if err != nil {
				err = fmt.Errorf("invalid -ip %q: %v", ip, err)
			}

			cfg.IP = v
		case "format":
			cfg.Format = format
		case "no-invalid-check":
			cfg.NoInvalidCheck = noInvalidCheck
		case "disable":
			cfg.Disable = strings.Split(disable, ",")
		}
	})

	if err != nil {
		return err
	}

	err = cfg.check()
	if err != nil {
		return err
	}

	var inputs []*Input
	filenames := flags.Args()
	switch {
	case code != "":
		data, err := ParseHex(code)
		if err != nil {
			return fmt.Errorf("invalid -code: %v", err)
		}

		inputs = []*Input{{Name: "code", Data: data}}
	case len(filenames) == 0 || (len(filenames) == 1 && filenames[0] == "-"):
		if !hexInput && term.IsTerminal(int(os.Stdin.Fd())) {
			return errors.New("refusing to read binary machine code from a terminal; use -hex or -code")
		}

		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %v", err)
		}

		input, err := NewInput("stdin", data, hexInput)
		if err != nil {
			return err
		}

		inputs = []*Input{input}
	default:
		inputs = make([]*Input, len(filenames))
		for i, name := range filenames {
			data, err := os.ReadFile(name)
			if err != nil {
				return fmt.Errorf("failed to read %s: %v", name, err)
			}

			inputs[i], err = NewInput(name, data, hexInput)
			if err != nil {
				return err
			}
		}
	}

	listings, err := DecodeAll(ctx, cfg, inputs)
	if err != nil {
		return err
	}

	if verbose {
		for _, l := range listings {
			log.Printf("%s: decoded %d instructions (%d invalid)", l.Name, len(l.Records), l.Invalid())
		}
	}

	return Write(w, cfg.Format, listings)
}

// Input is machine code to be decoded.
type Input struct {
	Name string
	Data []byte
}

// NewInput returns the input with the given
// name, parsing data as hexadecimal text if
// isHex is set.
func NewInput(name string, data []byte, isHex bool) (*Input, error) {
	if !isHex {
		return &Input{Name: name, Data: data}, nil
	}

	code, err := ParseHex(string(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %v", name, err)
	}

	return &Input{Name: name, Data: code}, nil
}

// ParseHex parses hexadecimal machine code.
// Bytes may be separated by whitespace and
// each line may end in a comment, which
// starts with '#' or ';'.
func ParseHex(text string) ([]byte, error) {
	var out []byte
	for i, line := range strings.Split(text, "\n") {
		if j := strings.IndexAny(line, "#;"); j >= 0 {
			line = line[:j]
		}

		for _, field := range strings.Fields(line) {
			field = strings.TrimPrefix(strings.TrimPrefix(field, "0x"), "0X")
			b, err := hex.DecodeString(field)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid hex %q", i+1, field)
			}

			out = append(out, b...)
		}
	}

	return out, nil
}

// DecodeAll decodes each of the inputs, with
// a separate decoder for each one. The inputs
// are decoded in parallel.
func DecodeAll(ctx context.Context, cfg *Config, inputs []*Input) ([]*Listing, error) {
	opts, err := cfg.Options()
	if err != nil {
		return nil, err
	}

	listings := make([]*Listing, len(inputs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, input := range inputs {
		i, input := i, input
		g.Go(func() error {
			l, err := decodeInput(ctx, cfg, opts, input)
			if err != nil {
				return err
			}

			listings[i] = l

			return nil
		})
	}

	err = g.Wait()
	if err != nil {
		return nil, err
	}

	return listings, nil
}

func decodeInput(ctx context.Context, cfg *Config, opts decoder.Options, input *Input) (*Listing, error) {
	d, err := decoder.New(cfg.Bitness, input.Data, cfg.IP, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %v", input.Name, err)
	}

	l := &Listing{Name: input.Name}
	for d.CanDecode() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		offset := d.Position()
		inst, err := d.Decode()
		var derr *decoder.DecodeError
		if err != nil && !errors.As(err, &derr) {
			return nil, fmt.Errorf("failed to decode %s at offset %d: %v", input.Name, offset, err)
		}

		code := input.Data[offset : offset+inst.ByteLength]
		l.Records = append(l.Records, newRecord(offset, code, &inst, derr))
		l.insts = append(l.insts, inst)
	}

	return l, nil
}
