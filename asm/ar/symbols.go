package ar

import (
	"io"

	"golang.org/x/exp/slices"
)

// Symbol defines a named program address.
type Symbol struct {
	Name    string // Symbol name.
	Address uint32 // Byte address in program memory.
}

// Symbols defines the symbol table of an archive.
type Symbols []Symbol

// At returns the names of all symbols defined at the given address.
func (s Symbols) At(addr uint32) []string {
	var out []string
	for _, v := range s {
		if v.Address == addr {
			out = append(out, v.Name)
		}
	}
	return out
}

// Sorted returns a copy of the table ordered by address, then name.
func (s Symbols) Sorted() Symbols {
	out := slices.Clone(s)
	slices.SortStableFunc(out, func(a, b Symbol) bool {
		if a.Address != b.Address {
			return a.Address < b.Address
		}
		return a.Name < b.Name
	})
	return out
}

func (s *Symbols) read(r io.Reader) {
	n := readCount(r, maxSymbols, "symbol count")

	// Entries are appended as they are read, so a bogus count fails on the
	// stream rather than on allocation.
	*s = nil
	for i := 0; i < n; i++ {
		name := string(readBytes(r, maxName, "symbol name"))
		*s = append(*s, Symbol{Name: name, Address: readU32(r)})
	}
}

func (s Symbols) write(w io.Writer) {
	checkLimit(len(s), maxSymbols, "symbol count")
	writeU32(w, uint32(len(s)))
	for _, v := range s {
		writeBytes(w, []byte(v.Name), maxName, "symbol name")
		writeU32(w, v.Address)
	}
}
