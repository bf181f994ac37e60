// Package asm implements an encoder which turns typed AVR instructions into
// machine code, ready to be flashed onto a device.
package asm

import (
	"fmt"
	"io"
	"strings"

	"github.com/hexaflex/avr/arch"
	"github.com/hexaflex/avr/asm/ar"
	"github.com/hexaflex/avr/asm/template"
	"github.com/pkg/errors"
)

// Encoder holds encoder context. It appends encoded instructions to its
// output buffer in call order. An instruction is either encoded completely
// or not at all: a failed call leaves the output untouched.
//
// An Encoder is not safe for concurrent use.
type Encoder struct {
	Trace   io.Writer         // Optional writer receiving one line per encoded instruction.
	code    []byte            // Encoded output.
	symbols map[string]uint32 // Named addresses, as recorded by Mark.
	order   []string          // Symbol names in definition order.
}

// New creates a new, empty encoder.
func New() *Encoder {
	return &Encoder{
		symbols: make(map[string]uint32),
	}
}

// Bytes returns the encoded output. The slice is only valid until the next
// call that modifies the encoder.
func (e *Encoder) Bytes() []byte {
	return e.code
}

// Len returns the number of bytes encoded so far.
func (e *Encoder) Len() int {
	return len(e.code)
}

// Here returns the byte address at which the next instruction is written.
func (e *Encoder) Here() uint32 {
	return uint32(len(e.code))
}

// Reset discards all output and symbols.
func (e *Encoder) Reset() {
	e.code = e.code[:0]
	e.symbols = make(map[string]uint32)
	e.order = nil
}

// Mark defines a symbol at the current address.
func (e *Encoder) Mark(name string) error {
	if len(name) == 0 {
		return errors.Wrap(ErrSymbol, "empty symbol name")
	}

	if _, ok := e.symbols[name]; ok {
		return errors.Wrapf(ErrSymbol, "duplicate symbol %q", name)
	}

	e.symbols[name] = e.Here()
	e.order = append(e.order, name)
	return nil
}

// Symbol returns an absolute offset to the named symbol.
// Returns false if the symbol has not been defined yet.
func (e *Encoder) Symbol(name string) (arch.Offset, bool) {
	addr, ok := e.symbols[name]
	return arch.Abs(addr), ok
}

// Words appends raw data words, each stored low byte first.
func (e *Encoder) Words(words ...uint16) {
	e.code = template.AppendWords(e.code, words...)
}

// Data appends raw bytes. A zero byte is added if needed to keep the next
// instruction word aligned.
func (e *Encoder) Data(p ...byte) {
	e.code = append(e.code, p...)
	if len(e.code)%2 != 0 {
		e.code = append(e.code, 0)
	}
}

// Archive returns the output and symbol table as an archive.
func (e *Encoder) Archive() *ar.Archive {
	a := ar.New()
	a.Code = append([]byte(nil), e.code...)
	for _, name := range e.order {
		a.Symbols = append(a.Symbols, ar.Symbol{Name: name, Address: e.symbols[name]})
	}
	return a
}

// Encode encodes the named instruction with the given operands and appends
// it to the output. Operand types follow the catalog: arch.Register,
// arch.RegisterPair, arch.Offset, arch.Indirect, arch.Displaced or any
// integer type for immediates. Data and program addresses are arch.Offset.
func (e *Encoder) Encode(mnemonic string, args ...interface{}) (err error) {
	addr := len(e.code)
	defer func() {
		if err != nil {
			err = &Error{Address: addr, Mnemonic: strings.ToLower(mnemonic), Err: err}
		}
	}()
	defer recoverOnPanic(&err)

	instr, ok := arch.Lookup(mnemonic, len(args))
	if !ok {
		if arch.IsMnemonic(mnemonic) {
			check(errors.Wrapf(ErrOperand, "no form takes %d operands", len(args)))
		}
		check(ErrUnknown)
	}

	tpl := e.selectTemplate(instr, args)
	fields := e.fields(instr, tpl, args, At(uint32(addr), tpl.Size()))

	code, err := tpl.Append(e.code, fields)
	check(err)

	e.trace(addr, code[addr:], instr.Name, args)
	e.code = code
	return nil
}

// selectTemplate returns the template for the given instruction. For
// instructions with a pointer operand, the pointer decides.
func (e *Encoder) selectTemplate(instr *arch.Instruction, args []interface{}) *template.Template {
	if !instr.Dispatched() {
		return templates[instr]
	}

	for i, slot := range instr.Operands {
		switch slot.Kind {
		case arch.IndirectSlot:
			ptr, ok := args[i].(arch.Indirect)
			if !ok {
				check(operandError(i, slot, args[i]))
			}
			tpl, err := selectIndirect(instr.Name, ptr)
			check(err)
			return tpl

		case arch.DisplacedSlot:
			ptr, ok := args[i].(arch.Displaced)
			if !ok {
				check(operandError(i, slot, args[i]))
			}
			tpl, err := selectDisplaced(instr.Name, ptr)
			check(err)
			return tpl
		}
	}

	panic(errors.Errorf("%s has no pointer operand", instr.Name))
}

// fields encodes every operand for the given template.
func (e *Encoder) fields(instr *arch.Instruction, tpl *template.Template, args []interface{}, pos Position) []template.Field {
	out := make([]template.Field, 0, len(args))

	for i, slot := range instr.Operands {
		if slot.Field == 0 {
			if slot.Kind == arch.FixedZSlot {
				p, ok := args[i].(arch.RegisterPair)
				if !ok {
					check(operandError(i, slot, args[i]))
				}
				check(encodeFixedZ(p))
			}
			continue
		}

		width := tpl.Width(slot.Field)
		value, err := encodeSlot(slot, args[i], width, pos)
		if err != nil {
			check(errors.Wrapf(err, "operand %d", i+1))
		}

		out = append(out, template.Field{
			Designator: slot.Field,
			Value:      value,
			Width:      width,
		})
	}

	return out
}

// encodeSlot resolves and encodes a single operand.
func encodeSlot(slot arch.Slot, arg interface{}, width int, pos Position) (uint32, error) {
	switch slot.Kind {
	case arch.RegisterSlot:
		if r, ok := arg.(arch.Register); ok {
			return encodeRegister(r, width)
		}

	case arch.PairSlot:
		if p, ok := arg.(arch.RegisterPair); ok {
			return encodePair(p, width)
		}

	case arch.ImmediateSlot:
		return immediate(arg, width, false)

	case arch.ComplementSlot:
		return immediate(arg, width, true)

	case arch.AddressSlot:
		if o, ok := arg.(arch.Offset); ok {
			addr, err := pos.ResolveAbsolute(o)
			if err != nil {
				return 0, err
			}
			return encodeUnsigned(addr, width)
		}

	case arch.WordAddressSlot:
		if o, ok := arg.(arch.Offset); ok {
			addr, err := pos.ResolveAbsoluteWords(o)
			if err != nil {
				return 0, err
			}
			return encodeUnsigned(addr, width)
		}

	case arch.BranchSlot:
		if o, ok := arg.(arch.Offset); ok {
			dist, err := pos.ResolveRelative(o)
			if err != nil {
				return 0, err
			}
			return encodeSigned(dist, width)
		}

	case arch.DisplacedSlot:
		if d, ok := arg.(arch.Displaced); ok {
			return encodeUnsigned(d.Disp, width)
		}
	}

	return 0, operandError(-1, slot, arg)
}

func operandError(i int, slot arch.Slot, arg interface{}) error {
	if i < 0 {
		return errors.Wrapf(ErrOperand, "expected %s, have %T", slot.Kind, arg)
	}
	return errors.Wrapf(ErrOperand, "operand %d: expected %s, have %T", i+1, slot.Kind, arg)
}

// trace writes a listing line for an encoded instruction.
func (e *Encoder) trace(addr int, code []byte, name string, args []interface{}) {
	if e.Trace == nil {
		return
	}

	operands := make([]string, len(args))
	for i, v := range args {
		operands[i] = fmt.Sprint(v)
	}

	fmt.Fprintf(e.Trace, "%06x: % x\t%s %s\n", addr, code, name, strings.Join(operands, ", "))
}
