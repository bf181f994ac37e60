package asm

import (
	"github.com/hexaflex/avr/arch"
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// splitRegisterWidth is the width of a register field written twice, as in
// `clr rd` which encodes `eor rd, rd`. Bit 4 of the second copy is separated
// from its low nibble by the first copy.
const splitRegisterWidth = 10

// encodeRegister returns the pattern for r in a field of the given width.
func encodeRegister(r arch.Register, width int) (uint32, error) {
	id := uint32(r)

	switch width {
	case 5:
		if !r.Valid() {
			return 0, errors.Wrapf(ErrRegister, "%s does not exist", r)
		}
		return id, nil

	case 4:
		if r < arch.R16 || !r.Valid() {
			return 0, errors.Wrapf(ErrRegister, "%s is not one of r16-r31", r)
		}
		return id & 0xf, nil

	case 3:
		if r < arch.R16 || r > arch.R23 {
			return 0, errors.Wrapf(ErrRegister, "%s is not one of r16-r23", r)
		}
		return id & 0x7, nil

	case splitRegisterWidth:
		if !r.Valid() {
			return 0, errors.Wrapf(ErrRegister, "%s does not exist", r)
		}
		return id<<4 | (id&0x10)<<5 | id&0xf, nil
	}

	return 0, errors.Wrapf(ErrOperand, "no %d bit register field", width)
}

// encodePair returns the pattern for p in a field of the given width.
// Narrow fields only reach the top pairs: a 2 bit field holds r24 through r30.
func encodePair(p arch.RegisterPair, width int) (uint32, error) {
	if !p.Valid() {
		return 0, errors.Wrapf(ErrPair, "%s:%s", p.High, p.Low)
	}

	if width < 1 || width > 4 {
		return 0, errors.Wrapf(ErrOperand, "no %d bit register pair field", width)
	}

	lowest := arch.RegisterCount - 2<<uint(width)
	if int(p.Low) < lowest {
		return 0, errors.Wrapf(ErrPair, "%s is below r%d", p, lowest)
	}

	return uint32(p.Low/2) & (1<<uint(width) - 1), nil
}

// encodeUnsigned returns v as a pattern of the given width.
func encodeUnsigned[T constraints.Integer](v T, width int) (uint32, error) {
	if v < 0 || uint64(v)>>uint(width) != 0 {
		return 0, errors.Wrapf(ErrRange, "%d does not fit %d bits", v, width)
	}
	return uint32(v), nil
}

// encodeSigned returns v as a two's complement pattern of the given width.
func encodeSigned[T constraints.Signed](v T, width int) (uint32, error) {
	min := -(int64(1) << uint(width-1))
	max := int64(1)<<uint(width-1) - 1

	if int64(v) < min || int64(v) > max {
		return 0, errors.Wrapf(ErrRange, "%d does not fit %d signed bits", v, width)
	}
	return uint32(v) & (1<<uint(width) - 1), nil
}

// encodeComplement returns the inverted pattern of v for the given width.
func encodeComplement[T constraints.Integer](v T, width int) (uint32, error) {
	n, err := encodeUnsigned(v, width)
	if err != nil {
		return 0, err
	}
	return ^n & (1<<uint(width) - 1), nil
}

// encodeFixedZ verifies an implicit Z operand. It produces no bits.
func encodeFixedZ(p arch.RegisterPair) error {
	if p != arch.Z {
		return errors.Wrapf(ErrOperand, "expected Z, have %s", p)
	}
	return nil
}

// immediate converts any integer operand to a pattern of the given width.
func immediate(v interface{}, width int, complement bool) (uint32, error) {
	enc := func(n int64) (uint32, error) {
		if complement {
			return encodeComplement(n, width)
		}
		return encodeUnsigned(n, width)
	}

	switch tv := v.(type) {
	case int:
		return enc(int64(tv))
	case int8:
		return enc(int64(tv))
	case int16:
		return enc(int64(tv))
	case int32:
		return enc(int64(tv))
	case int64:
		return enc(tv)
	case uint:
		return encodeImmediateUnsigned(uint64(tv), width, complement)
	case uint8:
		return enc(int64(tv))
	case uint16:
		return enc(int64(tv))
	case uint32:
		return enc(int64(tv))
	case uint64:
		return encodeImmediateUnsigned(tv, width, complement)
	}

	return 0, errors.Wrapf(ErrOperand, "%v (%T) is not an integer", v, v)
}

func encodeImmediateUnsigned(v uint64, width int, complement bool) (uint32, error) {
	if complement {
		return encodeComplement(v, width)
	}
	return encodeUnsigned(v, width)
}
