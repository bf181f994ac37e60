package template

import (
	"github.com/pkg/errors"
)

// Field defines an encoded operand value bound to a template designator.
type Field struct {
	Designator byte   // Template letter the value is written to.
	Value      uint32 // Canonical bit pattern.
	Width      int    // Number of significant bits in Value.
}

// check verifies that fields matches the template exactly: every designator
// present once, with the width the template expects and a value that fits it.
func (t *Template) check(fields []Field) error {
	seen := make(map[byte]bool, len(fields))

	for _, f := range fields {
		if seen[f.Designator] {
			return errors.Wrapf(ErrMismatch, "%q: field %c given twice", t.source, f.Designator)
		}
		seen[f.Designator] = true

		width := t.widths[f.Designator]
		if width == 0 {
			return errors.Wrapf(ErrMismatch, "%q: no field %c", t.source, f.Designator)
		}

		if width != f.Width {
			return errors.Wrapf(ErrMismatch, "%q: field %c is %d bits wide, operand is %d", t.source, f.Designator, width, f.Width)
		}

		if width < 32 && f.Value>>uint(width) != 0 {
			return errors.Wrapf(ErrMismatch, "%q: value %#x overflows %d bit field %c", t.source, f.Value, width, f.Designator)
		}
	}

	for _, d := range t.fields {
		if !seen[d] {
			return errors.Wrapf(ErrMismatch, "%q: missing field %c", t.source, d)
		}
	}

	return nil
}

// Pack fills the template with the given fields and returns the resulting
// instruction words in template order.
func (t *Template) Pack(fields []Field) ([]uint16, error) {
	if err := t.check(fields); err != nil {
		return nil, err
	}

	rest := make(map[byte]uint32, len(fields))
	for _, f := range fields {
		rest[f.Designator] = f.Value
	}

	// Walk from the least significant end, popping one bit per designator occurrence.
	var acc uint64
	for i := len(t.bits) - 1; i >= 0; i-- {
		pos := uint(len(t.bits) - 1 - i)

		switch c := t.bits[i]; c {
		case '0':
		case '1':
			acc |= 1 << pos
		default:
			acc |= uint64(rest[c]&1) << pos
			rest[c] >>= 1
		}
	}

	words := make([]uint16, t.Words())
	for i := range words {
		shift := uint(len(t.bits) - (i+1)*WordBits)
		words[i] = uint16(acc >> shift)
	}

	return words, nil
}

// Append packs the fields and appends the encoded bytes to dst.
// dst is returned unchanged if the fields do not match the template.
func (t *Template) Append(dst []byte, fields []Field) ([]byte, error) {
	words, err := t.Pack(fields)
	if err != nil {
		return dst, err
	}
	return AppendWords(dst, words...), nil
}

// AppendWords appends instruction words to dst, each stored low byte first.
func AppendWords(dst []byte, words ...uint16) []byte {
	for _, w := range words {
		dst = append(dst, byte(w), byte(w>>8))
	}
	return dst
}

// Unpack extracts the field values from the given instruction words.
// It returns an error if the literal bits of the template do not match.
func (t *Template) Unpack(words []uint16) (map[byte]uint32, error) {
	if len(words) != t.Words() {
		return nil, errors.Wrapf(ErrMismatch, "%q: want %d words, have %d", t.source, t.Words(), len(words))
	}

	var acc uint64
	for _, w := range words {
		acc = acc<<WordBits | uint64(w)
	}

	out := make(map[byte]uint32, len(t.fields))
	count := make(map[byte]uint, len(t.fields))

	for i := len(t.bits) - 1; i >= 0; i-- {
		bit := uint32(acc>>uint(len(t.bits)-1-i)) & 1

		switch c := t.bits[i]; c {
		case '0', '1':
			if bit != uint32(c-'0') {
				return nil, errors.Wrapf(ErrMismatch, "%q: literal bit %d differs", t.source, len(t.bits)-1-i)
			}
		default:
			out[c] |= bit << count[c]
			count[c]++
		}
	}

	return out, nil
}

