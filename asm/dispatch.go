package asm

import (
	"fmt"

	"github.com/hexaflex/avr/arch"
	"github.com/hexaflex/avr/asm/template"
	"github.com/pkg/errors"
)

type indirectKey struct {
	name string
	pair arch.RegisterPair
	mode arch.Mode
}

type displacedKey struct {
	name string
	pair arch.RegisterPair
}

// Compiled templates for every catalog entry and addressing form.
var (
	templates          = make(map[*arch.Instruction]*template.Template)
	indirectTemplates  = make(map[indirectKey]*template.Template)
	displacedTemplates = make(map[displacedKey]*template.Template)
)

func init() {
	for _, form := range arch.IndirectForms {
		key := indirectKey{form.Name, form.Pair, form.Mode}
		if _, ok := indirectTemplates[key]; ok {
			panic(fmt.Sprintf("asm: duplicate %s form for %s", form.Name, arch.Indirect{Pair: form.Pair, Mode: form.Mode}))
		}
		indirectTemplates[key] = template.MustCompile(form.Template)
	}

	for _, form := range arch.DisplacedForms {
		key := displacedKey{form.Name, form.Pair}
		if _, ok := displacedTemplates[key]; ok {
			panic(fmt.Sprintf("asm: duplicate %s form for %s", form.Name, form.Pair))
		}
		displacedTemplates[key] = template.MustCompile(form.Template)
	}

	for _, instr := range arch.Instructions() {
		if !instr.Dispatched() {
			templates[instr] = template.MustCompile(instr.Template)
		}
		if err := verify(instr); err != nil {
			panic(err)
		}
	}

	for key := range indirectTemplates {
		if !isDispatched(key.name, arch.IndirectSlot) {
			panic(fmt.Sprintf("asm: indirect form for unknown instruction %s", key.name))
		}
	}

	for key := range displacedTemplates {
		if !isDispatched(key.name, arch.DisplacedSlot) {
			panic(fmt.Sprintf("asm: displaced form for unknown instruction %s", key.name))
		}
	}
}

// isDispatched returns true if name has a catalog entry taking a pointer of the given kind.
func isDispatched(name string, kind arch.SlotKind) bool {
	for _, instr := range arch.Variants(name) {
		if instr.Dispatched() && hasSlot(instr, kind) {
			return true
		}
	}
	return false
}

// verify checks that every template a catalog entry can be encoded with
// matches its operand slots.
func verify(instr *arch.Instruction) error {
	var forms []*template.Template

	switch {
	case !instr.Dispatched():
		forms = append(forms, templates[instr])
	case hasSlot(instr, arch.IndirectSlot):
		for key, tpl := range indirectTemplates {
			if key.name == instr.Name {
				forms = append(forms, tpl)
			}
		}
	case hasSlot(instr, arch.DisplacedSlot):
		for key, tpl := range displacedTemplates {
			if key.name == instr.Name {
				forms = append(forms, tpl)
			}
		}
	}

	if len(forms) == 0 {
		return errors.Errorf("asm: %s has no template", instr.Name)
	}

	for _, tpl := range forms {
		want := 0
		for _, slot := range instr.Operands {
			if slot.Field == 0 {
				continue
			}

			want++
			width := tpl.Width(slot.Field)
			if width == 0 {
				return errors.Errorf("asm: %s: operand %c missing from %q", instr.Name, slot.Field, tpl)
			}

			if !validWidth(slot.Kind, width) {
				return errors.Errorf("asm: %s: %d bit field %c cannot hold a %s", instr.Name, width, slot.Field, slot.Kind)
			}
		}

		if len(tpl.Fields()) != want {
			return errors.Errorf("asm: %s: %q has fields without operands", instr.Name, tpl)
		}
	}

	return nil
}

func hasSlot(instr *arch.Instruction, kind arch.SlotKind) bool {
	for _, slot := range instr.Operands {
		if slot.Kind == kind {
			return true
		}
	}
	return false
}

func validWidth(kind arch.SlotKind, width int) bool {
	switch kind {
	case arch.RegisterSlot:
		return width == 3 || width == 4 || width == 5 || width == splitRegisterWidth
	case arch.PairSlot:
		return width >= 1 && width <= 4
	case arch.DisplacedSlot:
		return width == 6
	}
	return width > 0 && width <= 32
}

// selectIndirect returns the template for the given instruction and pointer.
func selectIndirect(name string, ptr arch.Indirect) (*template.Template, error) {
	if !ptr.Pair.IsIndex() {
		return nil, errors.Wrapf(ErrAddressing, "%s is not an index register pair", ptr.Pair)
	}

	tpl, ok := indirectTemplates[indirectKey{name, ptr.Pair, ptr.Mode}]
	if !ok {
		return nil, errors.Wrapf(ErrAddressing, "%s cannot address through %s", name, ptr)
	}
	return tpl, nil
}

// selectDisplaced returns the template for the given instruction and displacement pointer.
func selectDisplaced(name string, ptr arch.Displaced) (*template.Template, error) {
	tpl, ok := displacedTemplates[displacedKey{name, ptr.Pair}]
	if !ok {
		return nil, errors.Wrapf(ErrAddressing, "%s cannot address through %s", name, ptr)
	}
	return tpl, nil
}
