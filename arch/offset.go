package arch

import "fmt"

// OffsetKind tells how an Offset is to be interpreted.
type OffsetKind byte

// Known offset kinds.
const (
	Absolute OffsetKind = iota // Fixed byte address in program memory.
	Relative                   // Distance in words from the end of the instruction.
)

// Offset defines a branch, jump or call target.
//
// Relative offsets are resolved against the output position at the time the owning
// instruction is encoded, so an Offset built from Rel describes the same distance
// wherever it is used.
type Offset struct {
	Kind    OffsetKind
	Address uint32 // Byte address for Absolute offsets.
	Words   int32  // Word distance for Relative offsets.
	Odd     bool   // Relative offset was built from an odd byte delta.
}

// Abs returns an offset pointing at the given byte address.
func Abs(addr uint32) Offset {
	return Offset{Kind: Absolute, Address: addr}
}

// Rel returns an offset pointing delta bytes past the end of the instruction
// it is used in. This mirrors the `.+delta` notation of disassembly listings.
// The delta must be even; an odd delta makes the offset unusable.
func Rel(delta int32) Offset {
	return Offset{Kind: Relative, Words: delta / 2, Odd: delta%2 != 0}
}

func (o Offset) String() string {
	if o.Kind == Absolute {
		return fmt.Sprintf("0x%x", o.Address)
	}
	if o.Odd {
		return ".+?"
	}
	if o.Words < 0 {
		return fmt.Sprintf(".%d", o.Words*2)
	}
	return fmt.Sprintf(".+%d", o.Words*2)
}
