// Package ar defines the encoded archive type, as well as an encoder
// and decoder for its file format and exporters for flashing tools.
package ar

import (
	"compress/gzip"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/pkg/errors"
)

// ErrLimit is returned when an archive holds more data than the format allows.
var ErrLimit = errors.New("archive size limit exceeded")

// Archive defines a complete, encoded program.
type Archive struct {
	Symbols Symbols // Named addresses recorded while encoding.
	Code    []byte  // Encoded machine code, starting at address 0.
}

// New creates a new, empty archive.
func New() *Archive {
	return &Archive{}
}

// Load reads archive data from the given stream.
func (a *Archive) Load(r io.Reader) (err error) {
	gz, err := gzip.NewReader(r)
	if err != nil {
		return errors.Wrapf(err, "ar: invalid archive format")
	}

	defer gz.Close()
	defer recoverOnPanic(&err)

	a.Symbols.read(gz)
	a.Code = readBytes(gz, maxCode, "code size")
	return
}

// Save writes archive data to the given stream.
func (a *Archive) Save(w io.Writer) (err error) {
	defer recoverOnPanic(&err)

	gz := gzip.NewWriter(w)
	defer func() {
		if cerr := gz.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "ar")
		}
	}()

	a.Symbols.write(gz)
	writeBytes(gz, a.Code, maxCode, "code size")
	return
}

// WriteBinary writes the raw machine code to w.
func (a *Archive) WriteBinary(w io.Writer) error {
	_, err := w.Write(a.Code)
	return errors.Wrapf(err, "ar")
}

func recoverOnPanic(err *error) {
	x := recover()
	if x == nil {
		return
	}

	switch tx := x.(type) {
	case runtime.Error:
		panic(tx)
	case error:
		*err = errors.Wrapf(tx, "ar")
	default:
		*err = fmt.Errorf("ar: %v", tx)
	}
}

// String returns a human-readable dump of the archive's contents.
// Code rows start at every symbol address, labelled with the symbol names.
func (a *Archive) String() string {
	var sb strings.Builder

	if len(a.Symbols) > 0 {
		fmt.Fprintf(&sb, "Symbols (%d):\n", len(a.Symbols))
		for _, v := range a.Symbols.Sorted() {
			fmt.Fprintf(&sb, " %06x: %s\n", v.Address, v.Name)
		}
	}

	if len(a.Code) > 0 {
		fmt.Fprintf(&sb, "Code (%d bytes):\n", len(a.Code))
		for addr := 0; addr < len(a.Code); {
			for _, name := range a.Symbols.At(uint32(addr)) {
				fmt.Fprintf(&sb, "%s:\n", name)
			}

			end := a.rowEnd(addr)
			fmt.Fprintf(&sb, " %06x: % x\n", addr, a.Code[addr:end])
			addr = end
		}
	}

	return sb.String()
}

// rowEnd returns the end of the dump row starting at addr. Rows hold up to
// 16 bytes and stop short of the next symbol.
func (a *Archive) rowEnd(addr int) int {
	end := addr + 16
	if end > len(a.Code) {
		end = len(a.Code)
	}

	for _, v := range a.Symbols {
		if int(v.Address) > addr && int(v.Address) < end {
			end = int(v.Address)
		}
	}
	return end
}
