// Package template implements the bit templates instructions are encoded with.
//
// A template is written most significant bit first as groups of four characters
// separated by spaces. Each character is a literal 0 or 1 or a field designator
// letter. Every occurrence of a designator holds one bit of that field's value;
// the number of occurrences is the field's width. Occurrences are filled from the
// right, so the k-th occurrence counted from the end receives bit k of the value.
// This allows fields to be split over non-contiguous groups and across words:
//
//	1001 010k kkkk 111k kkkk kkkk kkkk kkkk
//
// holds a 22 bit field k whose top six bits live in the first word.
package template

import (
	"strings"

	"github.com/pkg/errors"
)

// Known template errors.
var (
	ErrMalformed = errors.New("malformed template")
	ErrMismatch  = errors.New("operand does not match template")
)

// WordBits is the size of one instruction word.
const WordBits = 16

// maxBits limits templates to what fits the packing accumulator.
const maxBits = 64

// Template defines a compiled bit template.
type Template struct {
	source string       // Template as written.
	bits   []byte       // Template characters without separators, most significant first.
	widths map[byte]int // Bit width per field designator.
	fields []byte       // Field designators in order of first appearance.
}

// Compile parses the given template.
func Compile(s string) (*Template, error) {
	t := &Template{
		source: s,
		widths: make(map[byte]int),
	}

	for _, group := range strings.Split(s, " ") {
		if len(group) != 4 {
			return nil, errors.Wrapf(ErrMalformed, "%q: group %q is not four characters wide", s, group)
		}

		for i := 0; i < len(group); i++ {
			c := group[i]
			switch {
			case c == '0' || c == '1':
			case isDesignator(c):
				if t.widths[c] == 0 {
					t.fields = append(t.fields, c)
				}
				t.widths[c]++
			default:
				return nil, errors.Wrapf(ErrMalformed, "%q: invalid character %q", s, c)
			}
			t.bits = append(t.bits, c)
		}
	}

	if len(t.bits)%WordBits != 0 {
		return nil, errors.Wrapf(ErrMalformed, "%q: %d bits is not a whole number of words", s, len(t.bits))
	}

	if len(t.bits) > maxBits {
		return nil, errors.Wrapf(ErrMalformed, "%q: %d bits exceeds %d", s, len(t.bits), maxBits)
	}

	return t, nil
}

// MustCompile is like Compile but panics if the template is malformed.
// It simplifies initialisation of global template tables.
func MustCompile(s string) *Template {
	t, err := Compile(s)
	if err != nil {
		panic(err)
	}
	return t
}

func isDesignator(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// Width returns the bit width of the given field. Returns 0 if the template
// does not contain it.
func (t *Template) Width(designator byte) int {
	return t.widths[designator]
}

// Fields returns the field designators in order of first appearance.
func (t *Template) Fields() []byte {
	return append([]byte(nil), t.fields...)
}

// Bits returns the total number of bits in the template.
func (t *Template) Bits() int {
	return len(t.bits)
}

// Words returns the number of instruction words the template encodes into.
func (t *Template) Words() int {
	return len(t.bits) / WordBits
}

// Size returns the number of bytes the template encodes into.
func (t *Template) Size() int {
	return t.Words() * 2
}

func (t *Template) String() string {
	return t.source
}
