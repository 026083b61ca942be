// Package natio reads and writes natural numbers in a versioned,
// line-oriented binary layout:
//
//	offset 0   version, uint16 little-endian
//	offset 2   version 1: line count, uint32 little-endian
//	...        zero padding up to LineSize
//	LineSize   count lines of LineSize bytes, digits in little-endian
//	           byte order, the last line zero padded
//
// Digits are stored least significant first, so the byte stream is the
// little-endian encoding of the whole number and is independent of the
// digit width used by the writer.
package natio

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/zeebo/errs"

	"github.com/agbru/bignum/internal/digit"
	"github.com/agbru/bignum/internal/nat"
)

const (
	// Version1 is the only defined layout.
	Version1 uint16 = 1
	// LineSize is the size of the header and of every data line in bytes.
	LineSize = 64
)

// Error is the error class for format and I/O failures.
var Error = errs.Class("natio")

// ErrUnknownVersion is returned for a version tag this package cannot read.
var ErrUnknownVersion = Error.New("unknown format version")

// Write encodes x to w in the version 1 layout.
func Write[D digit.Digit](w io.Writer, x nat.Nat[D]) (err error) {
	defer Error.WrapP(&err)

	width := digit.Bytes[D]()
	perLine := LineSize / width
	digits := []D(x)
	if x.IsZero() {
		digits = nil
	}
	lines := (len(digits) + perLine - 1) / perLine
	if uint64(lines) > uint64(^uint32(0)) {
		return Error.New("value too large: %d lines", lines)
	}

	bw := bufio.NewWriter(w)
	var line [LineSize]byte
	binary.LittleEndian.PutUint16(line[0:], Version1)
	binary.LittleEndian.PutUint32(line[2:], uint32(lines))
	if _, err := bw.Write(line[:]); err != nil {
		return err
	}

	for i := 0; i < lines; i++ {
		clear(line[:])
		chunk := digits[i*perLine : min((i+1)*perLine, len(digits))]
		for j, d := range chunk {
			putDigit(line[j*width:], d)
		}
		if _, err := bw.Write(line[:]); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Read decodes a value written by Write. Truncated input fails with an
// error wrapping io.ErrUnexpectedEOF.
func Read[D digit.Digit](r io.Reader) (_ nat.Nat[D], err error) {
	defer Error.WrapP(&err)

	var tag [2]byte
	if _, err := io.ReadFull(r, tag[:]); err != nil {
		return nil, eof(err)
	}
	switch v := binary.LittleEndian.Uint16(tag[:]); v {
	case Version1:
		return readV1[D](r)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownVersion, v)
	}
}

func readV1[D digit.Digit](r io.Reader) (nat.Nat[D], error) {
	var header [LineSize - 2]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, eof(err)
	}
	lines := binary.LittleEndian.Uint32(header[:4])

	width := digit.Bytes[D]()
	perLine := LineSize / width
	var digits []D
	var line [LineSize]byte
	for i := uint32(0); i < lines; i++ {
		if _, err := io.ReadFull(r, line[:]); err != nil {
			return nil, eof(err)
		}
		for j := 0; j < perLine; j++ {
			digits = append(digits, getDigit[D](line[j*width:]))
		}
	}
	return nat.FromDigits(digits), nil
}

// eof reports a short read as io.ErrUnexpectedEOF.
func eof(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}

func putDigit[D digit.Digit](b []byte, d D) {
	if digit.Bytes[D]() == 4 {
		binary.LittleEndian.PutUint32(b, uint32(d))
		return
	}
	binary.LittleEndian.PutUint64(b, uint64(d))
}

func getDigit[D digit.Digit](b []byte) D {
	if digit.Bytes[D]() == 4 {
		return D(binary.LittleEndian.Uint32(b))
	}
	return D(binary.LittleEndian.Uint64(b))
}

// WriteFile writes x to the named file, creating or truncating it.
func WriteFile[D digit.Digit](path string, x nat.Nat[D]) (err error) {
	defer Error.WrapP(&err)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { err = errs.Combine(err, f.Close()) }()
	return Write(f, x)
}

// ReadFile reads a value from the named file.
func ReadFile[D digit.Digit](path string) (_ nat.Nat[D], err error) {
	defer Error.WrapP(&err)

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return Read[D](bufio.NewReader(f))
}
