package ar

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// Upper bounds for counts stored in an archive.
const (
	maxCode    = 1 << 23 // Bytes addressable through a 22 bit word address.
	maxName    = 1 << 10 // Bytes in a symbol name.
	maxSymbols = 1 << 20 // Entries in the symbol table.
)

func check(err error) {
	if err != nil {
		panic(err)
	}
}

// checkLimit panics with ErrLimit if n exceeds max.
func checkLimit(n, max int, what string) {
	if n > max {
		panic(errors.Wrapf(ErrLimit, "%s: %d exceeds %d", what, n, max))
	}
}

var endian = binary.LittleEndian

func readU32(r io.Reader) (v uint32) {
	check(binary.Read(r, endian, &v))
	return
}

// readCount reads a length prefix and verifies it against max before
// anything is allocated for it.
func readCount(r io.Reader, max int, what string) int {
	n := readU32(r)
	if uint64(n) > uint64(max) {
		panic(errors.Wrapf(ErrLimit, "%s: %d exceeds %d", what, n, max))
	}
	return int(n)
}

func readBytes(r io.Reader, max int, what string) []byte {
	p := make([]byte, readCount(r, max, what))
	_, err := io.ReadFull(r, p)
	check(err)
	return p
}

func writeU32(w io.Writer, v uint32) {
	check(binary.Write(w, endian, v))
}

func writeBytes(w io.Writer, p []byte, max int, what string) {
	checkLimit(len(p), max, what)
	writeU32(w, uint32(len(p)))
	_, err := w.Write(p)
	check(err)
}
