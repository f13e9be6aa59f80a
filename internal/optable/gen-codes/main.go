// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

// Command gen-codes reads the opcode table
// and generates the set of instruction codes
// in package x86, with one code per row.
//
// The resulting Go code is then written out.
package main

import (
	"bytes"
	"embed"
	"encoding/csv"
	"flag"
	"fmt"
	"go/format"
	"go/token"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

var program = filepath.Base(os.Args[0])

func init() {
	log.SetFlags(0)
	log.SetOutput(os.Stderr)
	log.SetPrefix("")
}

func main() {
	var help bool
	var output string
	flag.BoolVar(&help, "h", false, "Show this message and exit.")
	flag.StringVar(&output, "out", "", "Path to the generated codes output")

	flag.Usage = func() {
		log.Printf("Usage:\n  %s OPTIONS CSV\n\n", program)
		flag.PrintDefaults()
		os.Exit(2)
	}

	flag.Parse()
	if help {
		flag.Usage()
	}

	args := flag.Args()
	if output == "" || len(args) != 1 {
		flag.Usage()
	}

	err := genCodes(output, args[0])
	if err != nil {
		log.Fatal(err)
	}
}

//go:embed templates/*.tmpl
var templatesFS embed.FS

var templates = template.Must(template.New("").ParseFS(templatesFS, "templates/*.tmpl"))

// readCodes returns the instruction
// codes in the first column of the
// opcode table, checking that each
// is a unique Go identifier.
func readCodes(r io.Reader) ([]string, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(records) == 0 || len(records[0]) == 0 || records[0][0] != "code" {
		return nil, fmt.Errorf("missing header row")
	}

	seen := make(map[string]bool)
	codes := make([]string, 0, len(records)-1)
	for _, record := range records[1:] {
		code := record[0]
		if !token.IsIdentifier(code) || !token.IsExported(code) {
			return nil, fmt.Errorf("invalid instruction code %q", code)
		}

		if seen[code] || code == "INVALID" {
			return nil, fmt.Errorf("duplicate instruction code %q", code)
		}

		seen[code] = true
		codes = append(codes, code)
	}

	return codes, nil
}

// genCodes reads the opcode table from
// input and writes the instruction codes
// as Go code to output.
func genCodes(output, input string) error {
	f, err := os.Open(input)
	if err != nil {
		return fmt.Errorf("failed to open %s: %v", input, err)
	}

	codes, err := readCodes(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("failed to parse %s: %v", input, err)
	}

	command := program + " " + strings.Join(os.Args[1:], " ")
	formatted, err := generate(command, codes)
	if formatted == nil {
		return err
	}

	fail := false
	if err != nil {
		fail = true
		log.Println(err)
	}

	err = os.WriteFile(output, formatted, 0644)
	if err != nil {
		return fmt.Errorf("failed to write %s: %v", output, err)
	}

	if fail {
		os.Exit(1)
	}

	return nil
}

// generate returns the Go source for the
// given codes. If the source cannot be
// formatted, the unformatted source is
// returned with the error.
func generate(command string, codes []string) ([]byte, error) {
	var data struct {
		Command string
		Package string
		Codes   []string
	}

	data.Command = command
	data.Package = "x86"
	data.Codes = codes

	var b bytes.Buffer
	err := templates.ExecuteTemplate(&b, "codes.go.tmpl", data)
	if err != nil {
		return nil, fmt.Errorf("failed to execute codes.go.tmpl template: %v", err)
	}

	formatted, err := format.Source(b.Bytes())
	if err != nil {
		return b.Bytes(), err
	}

	return formatted, nil
}
