// Package binutil contains endian-aware primitive readers and the
// subrecord iterator used to scan ESM-format byte regions.
//
// Xbox 360 Fallout: New Vegas dumps mix big-endian console-native records
// with little-endian mirror copies of the same logical data, so every
// primitive here takes an explicit byte order instead of assuming one.
package binutil

import (
	"encoding/binary"
	"math"
)

// ByteOrder returns the binary.ByteOrder for a record's endianness tag.
func ByteOrder(bigEndian bool) binary.ByteOrder {
	if bigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// Uint16At reads a uint16 at off using the given endianness.
// ok is false if the slice is too short.
func Uint16At(b []byte, off int, bigEndian bool) (v uint16, ok bool) {
	if off < 0 || off+2 > len(b) {
		return 0, false
	}
	return ByteOrder(bigEndian).Uint16(b[off:]), true
}

// Uint32At reads a uint32 at off using the given endianness.
func Uint32At(b []byte, off int, bigEndian bool) (v uint32, ok bool) {
	if off < 0 || off+4 > len(b) {
		return 0, false
	}
	return ByteOrder(bigEndian).Uint32(b[off:]), true
}

// Int16At reads an int16 at off using the given endianness.
func Int16At(b []byte, off int, bigEndian bool) (v int16, ok bool) {
	u, ok := Uint16At(b, off, bigEndian)
	return int16(u), ok
}

// Int32At reads an int32 at off using the given endianness.
func Int32At(b []byte, off int, bigEndian bool) (v int32, ok bool) {
	u, ok := Uint32At(b, off, bigEndian)
	return int32(u), ok
}

// Float32At reads an IEEE-754 float32 at off using the given endianness.
func Float32At(b []byte, off int, bigEndian bool) (v float32, ok bool) {
	u, ok := Uint32At(b, off, bigEndian)
	if !ok {
		return 0, false
	}
	return math.Float32frombits(u), true
}

// Int8At reads a signed byte at off.
func Int8At(b []byte, off int) (v int8, ok bool) {
	if off < 0 || off >= len(b) {
		return 0, false
	}
	return int8(b[off]), true
}

// CString reads a NUL-terminated UTF-8 string from b, truncating at the
// first NUL byte or at end-of-slice, whichever comes first.
func CString(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}
