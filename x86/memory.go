// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

import (
	"encoding/json"
	"fmt"
)

// MemorySize describes the data a memory
// operand refers to: its total size and
// the type of its elements.
//
// For broadcast sizes, Size is the size
// of the single element that is read and
// repeated across the vector.
type MemorySize uint8

const (
	MemorySizeUnknown MemorySize = iota
	MemorySizeUInt8
	MemorySizeUInt16
	MemorySizeUInt32
	MemorySizeUInt64
	MemorySizeUInt128
	MemorySizeUInt256
	MemorySizeUInt512
	MemorySizeInt32
	MemorySizeInt64
	MemorySizeFloat32
	MemorySizeFloat64
	MemorySizeSegPtr16
	MemorySizeSegPtr32
	MemorySizeBound16_WordWord
	MemorySizeBound32_DwordDword
	MemorySizePacked64_UInt8
	MemorySizePacked64_Int8
	MemorySizePacked128_UInt8
	MemorySizePacked128_Int8
	MemorySizePacked128_UInt32
	MemorySizePacked128_Int32
	MemorySizePacked128_Int64
	MemorySizePacked128_Float32
	MemorySizePacked128_Float64
	MemorySizePacked256_UInt8
	MemorySizePacked256_Int32
	MemorySizePacked256_Int64
	MemorySizePacked256_Float32
	MemorySizePacked256_Float64
	MemorySizePacked512_UInt8
	MemorySizePacked512_Int32
	MemorySizePacked512_Int64
	MemorySizePacked512_Float32
	MemorySizePacked512_Float64
	MemorySizeBroadcast128_Int32
	MemorySizeBroadcast256_Int32
	MemorySizeBroadcast512_Int32
	MemorySizeBroadcast128_Int64
	MemorySizeBroadcast256_Int64
	MemorySizeBroadcast512_Int64
	MemorySizeBroadcast128_Float32
	MemorySizeBroadcast256_Float32
	MemorySizeBroadcast512_Float32
	MemorySizeBroadcast128_Float64
	MemorySizeBroadcast256_Float64
	MemorySizeBroadcast512_Float64
)

type memorySizeInfo struct {
	name      string
	size      int
	element   int
	broadcast bool
}

var memorySizes = [...]memorySizeInfo{
	MemorySizeUnknown:              {"Unknown", 0, 0, false},
	MemorySizeUInt8:                {"UInt8", 1, 1, false},
	MemorySizeUInt16:               {"UInt16", 2, 2, false},
	MemorySizeUInt32:               {"UInt32", 4, 4, false},
	MemorySizeUInt64:               {"UInt64", 8, 8, false},
	MemorySizeUInt128:              {"UInt128", 16, 16, false},
	MemorySizeUInt256:              {"UInt256", 32, 32, false},
	MemorySizeUInt512:              {"UInt512", 64, 64, false},
	MemorySizeInt32:                {"Int32", 4, 4, false},
	MemorySizeInt64:                {"Int64", 8, 8, false},
	MemorySizeFloat32:              {"Float32", 4, 4, false},
	MemorySizeFloat64:              {"Float64", 8, 8, false},
	MemorySizeSegPtr16:             {"SegPtr16", 4, 4, false},
	MemorySizeSegPtr32:             {"SegPtr32", 6, 6, false},
	MemorySizeBound16_WordWord:     {"Bound16_WordWord", 4, 2, false},
	MemorySizeBound32_DwordDword:   {"Bound32_DwordDword", 8, 4, false},
	MemorySizePacked64_UInt8:       {"Packed64_UInt8", 8, 1, false},
	MemorySizePacked64_Int8:        {"Packed64_Int8", 8, 1, false},
	MemorySizePacked128_UInt8:      {"Packed128_UInt8", 16, 1, false},
	MemorySizePacked128_Int8:       {"Packed128_Int8", 16, 1, false},
	MemorySizePacked128_UInt32:     {"Packed128_UInt32", 16, 4, false},
	MemorySizePacked128_Int32:      {"Packed128_Int32", 16, 4, false},
	MemorySizePacked128_Int64:      {"Packed128_Int64", 16, 8, false},
	MemorySizePacked128_Float32:    {"Packed128_Float32", 16, 4, false},
	MemorySizePacked128_Float64:    {"Packed128_Float64", 16, 8, false},
	MemorySizePacked256_UInt8:      {"Packed256_UInt8", 32, 1, false},
	MemorySizePacked256_Int32:      {"Packed256_Int32", 32, 4, false},
	MemorySizePacked256_Int64:      {"Packed256_Int64", 32, 8, false},
	MemorySizePacked256_Float32:    {"Packed256_Float32", 32, 4, false},
	MemorySizePacked256_Float64:    {"Packed256_Float64", 32, 8, false},
	MemorySizePacked512_UInt8:      {"Packed512_UInt8", 64, 1, false},
	MemorySizePacked512_Int32:      {"Packed512_Int32", 64, 4, false},
	MemorySizePacked512_Int64:      {"Packed512_Int64", 64, 8, false},
	MemorySizePacked512_Float32:    {"Packed512_Float32", 64, 4, false},
	MemorySizePacked512_Float64:    {"Packed512_Float64", 64, 8, false},
	MemorySizeBroadcast128_Int32:   {"Broadcast128_Int32", 4, 4, true},
	MemorySizeBroadcast256_Int32:   {"Broadcast256_Int32", 4, 4, true},
	MemorySizeBroadcast512_Int32:   {"Broadcast512_Int32", 4, 4, true},
	MemorySizeBroadcast128_Int64:   {"Broadcast128_Int64", 8, 8, true},
	MemorySizeBroadcast256_Int64:   {"Broadcast256_Int64", 8, 8, true},
	MemorySizeBroadcast512_Int64:   {"Broadcast512_Int64", 8, 8, true},
	MemorySizeBroadcast128_Float32: {"Broadcast128_Float32", 4, 4, true},
	MemorySizeBroadcast256_Float32: {"Broadcast256_Float32", 4, 4, true},
	MemorySizeBroadcast512_Float32: {"Broadcast512_Float32", 4, 4, true},
	MemorySizeBroadcast128_Float64: {"Broadcast128_Float64", 8, 8, true},
	MemorySizeBroadcast256_Float64: {"Broadcast256_Float64", 8, 8, true},
	MemorySizeBroadcast512_Float64: {"Broadcast512_Float64", 8, 8, true},
}

// MemorySizes maps memory size names,
// as used in the opcode table, to their
// values.
var MemorySizes = make(map[string]MemorySize)

func init() {
	for i, info := range memorySizes {
		MemorySizes[info.name] = MemorySize(i)
	}
}

// Size returns the number of bytes
// read or written.
func (s MemorySize) Size() int { return memorySizes[s].size }

// ElementSize returns the number of
// bytes in each element.
func (s MemorySize) ElementSize() int { return memorySizes[s].element }

// IsBroadcast reports whether the size
// describes an EVEX broadcast.
func (s MemorySize) IsBroadcast() bool { return memorySizes[s].broadcast }

func (s MemorySize) String() string {
	if int(s) < len(memorySizes) {
		return memorySizes[s].name
	}

	return fmt.Sprintf("MemorySize(%d)", s)
}

func (s MemorySize) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *MemorySize) UnmarshalJSON(data []byte) error {
	var name string
	err := json.Unmarshal(data, &name)
	if err != nil {
		return err
	}

	got, ok := MemorySizes[name]
	if !ok {
		return fmt.Errorf("invalid memory size %q", name)
	}

	*s = got

	return nil
}
