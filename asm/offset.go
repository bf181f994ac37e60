package asm

import (
	"github.com/hexaflex/avr/arch"
	"github.com/pkg/errors"
)

// Position describes where the instruction being encoded sits in the output.
// Offsets are resolved against it rather than against the output buffer, so an
// instruction can be encoded for any address.
type Position struct {
	Here uint32 // Byte address of the instruction.
	Next uint32 // Byte address of the instruction following it.
}

// At returns the position of an instruction of size bytes at byte address addr.
func At(addr uint32, size int) Position {
	return Position{Here: addr, Next: addr + uint32(size)}
}

// ResolveAbsolute returns the byte address o points to.
func (p Position) ResolveAbsolute(o arch.Offset) (uint32, error) {
	if o.Kind == arch.Absolute {
		return o.Address, nil
	}

	if o.Odd {
		return 0, errors.Wrapf(ErrAlignment, "relative offset %s is not a whole number of words", o)
	}

	target := int64(p.Next) + 2*int64(o.Words)
	if target < 0 || target > int64(^uint32(0)) {
		return 0, errors.Wrapf(ErrRange, "offset %s from %#x leaves the address space", o, p.Next)
	}
	return uint32(target), nil
}

// ResolveAbsoluteWords returns the word address o points to, for fields
// that address program memory in words.
func (p Position) ResolveAbsoluteWords(o arch.Offset) (uint32, error) {
	addr, err := p.ResolveAbsolute(o)
	if err != nil {
		return 0, err
	}

	if addr%2 != 0 {
		return 0, errors.Wrapf(ErrAlignment, "%#x is not a word address", addr)
	}
	return addr / 2, nil
}

// ResolveRelative returns the signed distance in words from the end of the
// instruction to the target of o.
func (p Position) ResolveRelative(o arch.Offset) (int32, error) {
	addr, err := p.ResolveAbsolute(o)
	if err != nil {
		return 0, err
	}

	if addr%2 != 0 {
		return 0, errors.Wrapf(ErrAlignment, "%#x is not a word address", addr)
	}
	return int32((int64(addr) - int64(p.Next)) / 2), nil
}
