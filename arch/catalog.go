// Package arch defines the AVR instruction set, its operand types and the
// bit templates each instruction is encoded with.
package arch

import (
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// SlotKind defines the type of value an operand slot accepts.
type SlotKind byte

// Known operand slot kinds.
const (
	RegisterSlot    SlotKind = iota // Register; field width selects the register subset.
	PairSlot                        // RegisterPair, encoded as its index.
	ImmediateSlot                   // Unsigned integer.
	ComplementSlot                  // Unsigned integer, encoded inverted.
	AddressSlot                     // Offset resolved to an absolute byte address.
	WordAddressSlot                 // Offset resolved to an absolute word address.
	BranchSlot                      // Offset resolved to a signed word distance.
	FixedZSlot                      // RegisterPair which must be Z; not encoded.
	IndirectSlot                    // Indirect; selects the template.
	DisplacedSlot                   // Displaced; selects the template and fills field q.
)

func (k SlotKind) String() string {
	switch k {
	case RegisterSlot:
		return "register"
	case PairSlot:
		return "register pair"
	case ImmediateSlot:
		return "immediate"
	case ComplementSlot:
		return "complemented immediate"
	case AddressSlot:
		return "address"
	case WordAddressSlot:
		return "word address"
	case BranchSlot:
		return "branch offset"
	case FixedZSlot:
		return "Z"
	case IndirectSlot:
		return "indirect pointer"
	case DisplacedSlot:
		return "displaced pointer"
	}
	return "unknown"
}

// Slot defines one operand of an instruction.
type Slot struct {
	Field byte     // Template designator receiving the value; 0 if none.
	Kind  SlotKind // Accepted value type.
}

// Instruction defines one catalog entry.
type Instruction struct {
	Name     string // Lower case mnemonic.
	Operands []Slot // Operands in source order.
	Template string // Bit template; empty if selected by addressing mode.
}

// Argc returns the number of operands the instruction takes.
func (i *Instruction) Argc() int {
	return len(i.Operands)
}

// Dispatched returns true if the template depends on the addressing mode
// of a pointer operand.
func (i *Instruction) Dispatched() bool {
	return i.Template == ""
}

func reg(f byte) Slot  { return Slot{f, RegisterSlot} }
func pair(f byte) Slot { return Slot{f, PairSlot} }
func imm(f byte) Slot  { return Slot{f, ImmediateSlot} }
func cmp(f byte) Slot  { return Slot{f, ComplementSlot} }
func addr(f byte) Slot { return Slot{f, AddressSlot} }
func word(f byte) Slot { return Slot{f, WordAddressSlot} }
func br(f byte) Slot   { return Slot{f, BranchSlot} }

var (
	fixedZ    = Slot{0, FixedZSlot}
	indirect  = Slot{0, IndirectSlot}
	displaced = Slot{'q', DisplacedSlot}
)

func op(name, template string, operands ...Slot) *Instruction {
	return &Instruction{Name: name, Operands: operands, Template: template}
}

// instructions lists the instruction set. Templates are written most significant
// bit first, one group per nibble, with a second word following the first.
var instructions = []*Instruction{
	// Arithmetic and logic.
	op("add", "0000 11rd dddd rrrr", reg('d'), reg('r')),
	op("adc", "0001 11rd dddd rrrr", reg('d'), reg('r')),
	op("adiw", "1001 0110 KKdd KKKK", pair('d'), imm('K')),
	op("sub", "0001 10rd dddd rrrr", reg('d'), reg('r')),
	op("subi", "0101 KKKK dddd KKKK", reg('d'), imm('K')),
	op("sbc", "0000 10rd dddd rrrr", reg('d'), reg('r')),
	op("sbci", "0100 KKKK dddd KKKK", reg('d'), imm('K')),
	op("sbiw", "1001 0111 KKdd KKKK", pair('d'), imm('K')),
	op("and", "0010 00rd dddd rrrr", reg('d'), reg('r')),
	op("andi", "0111 KKKK dddd KKKK", reg('d'), imm('K')),
	op("or", "0010 10rd dddd rrrr", reg('d'), reg('r')),
	op("ori", "0110 KKKK dddd KKKK", reg('d'), imm('K')),
	op("eor", "0010 01rd dddd rrrr", reg('d'), reg('r')),
	op("com", "1001 010d dddd 0000", reg('d')),
	op("neg", "1001 010d dddd 0001", reg('d')),
	op("sbr", "0110 KKKK dddd KKKK", reg('d'), imm('K')),
	op("cbr", "0111 KKKK dddd KKKK", reg('d'), cmp('K')),
	op("inc", "1001 010d dddd 0011", reg('d')),
	op("dec", "1001 010d dddd 1010", reg('d')),
	op("tst", "0010 00dd dddd dddd", reg('d')),
	op("clr", "0010 01dd dddd dddd", reg('d')),
	op("ser", "1110 1111 dddd 1111", reg('d')),
	op("mul", "1001 11rd dddd rrrr", reg('d'), reg('r')),
	op("muls", "0000 0010 dddd rrrr", reg('d'), reg('r')),
	op("mulsu", "0000 0011 0ddd 0rrr", reg('d'), reg('r')),
	op("fmul", "0000 0011 0ddd 1rrr", reg('d'), reg('r')),
	op("fmuls", "0000 0011 1ddd 0rrr", reg('d'), reg('r')),
	op("fmulsu", "0000 0011 1ddd 1rrr", reg('d'), reg('r')),
	op("des", "1001 0100 KKKK 1011", imm('K')),

	// Branches.
	op("rjmp", "1100 kkkk kkkk kkkk", br('k')),
	op("ijmp", "1001 0100 0000 1001"),
	op("eijmp", "1001 0100 0001 1001"),
	op("jmp", "1001 010k kkkk 110k kkkk kkkk kkkk kkkk", word('k')),
	op("rcall", "1101 kkkk kkkk kkkk", br('k')),
	op("icall", "1001 0101 0000 1001"),
	op("eicall", "1001 0101 0001 1001"),
	op("call", "1001 010k kkkk 111k kkkk kkkk kkkk kkkk", word('k')),
	op("ret", "1001 0101 0000 1000"),
	op("reti", "1001 0101 0001 1000"),
	op("cpse", "0001 00rd dddd rrrr", reg('d'), reg('r')),
	op("cp", "0001 01rd dddd rrrr", reg('d'), reg('r')),
	op("cpc", "0000 01rd dddd rrrr", reg('d'), reg('r')),
	op("cpi", "0011 KKKK dddd KKKK", reg('d'), imm('K')),
	op("sbrc", "1111 110r rrrr 0bbb", reg('r'), imm('b')),
	op("sbrs", "1111 111r rrrr 0bbb", reg('r'), imm('b')),
	op("sbic", "1001 1001 AAAA Abbb", imm('A'), imm('b')),
	op("sbis", "1001 1011 AAAA Abbb", imm('A'), imm('b')),
	op("brbs", "1111 00kk kkkk ksss", imm('s'), br('k')),
	op("brbc", "1111 01kk kkkk ksss", imm('s'), br('k')),
	op("brcs", "1111 00kk kkkk k000", br('k')),
	op("brlo", "1111 00kk kkkk k000", br('k')),
	op("brcc", "1111 01kk kkkk k000", br('k')),
	op("brsh", "1111 01kk kkkk k000", br('k')),
	op("breq", "1111 00kk kkkk k001", br('k')),
	op("brne", "1111 01kk kkkk k001", br('k')),
	op("brmi", "1111 00kk kkkk k010", br('k')),
	op("brpl", "1111 01kk kkkk k010", br('k')),
	op("brvs", "1111 00kk kkkk k011", br('k')),
	op("brvc", "1111 01kk kkkk k011", br('k')),
	op("brlt", "1111 00kk kkkk k100", br('k')),
	op("brge", "1111 01kk kkkk k100", br('k')),
	op("brhs", "1111 00kk kkkk k101", br('k')),
	op("brhc", "1111 01kk kkkk k101", br('k')),
	op("brts", "1111 00kk kkkk k110", br('k')),
	op("brtc", "1111 01kk kkkk k110", br('k')),
	op("brie", "1111 00kk kkkk k111", br('k')),
	op("brid", "1111 01kk kkkk k111", br('k')),

	// Bit operations.
	op("sbi", "1001 1010 AAAA Abbb", imm('A'), imm('b')),
	op("cbi", "1001 1000 AAAA Abbb", imm('A'), imm('b')),
	op("lsl", "0000 11dd dddd dddd", reg('d')),
	op("lsr", "1001 010d dddd 0110", reg('d')),
	op("rol", "0001 11dd dddd dddd", reg('d')),
	op("ror", "1001 010d dddd 0111", reg('d')),
	op("asr", "1001 010d dddd 0101", reg('d')),
	op("swap", "1001 010d dddd 0010", reg('d')),
	op("bset", "1001 0100 0sss 1000", imm('s')),
	op("bclr", "1001 0100 1sss 1000", imm('s')),
	op("bst", "1111 101d dddd 0bbb", reg('d'), imm('b')),
	op("bld", "1111 100d dddd 0bbb", reg('d'), imm('b')),
	op("sec", "1001 0100 0000 1000"),
	op("clc", "1001 0100 1000 1000"),
	op("sez", "1001 0100 0001 1000"),
	op("clz", "1001 0100 1001 1000"),
	op("sen", "1001 0100 0010 1000"),
	op("cln", "1001 0100 1010 1000"),
	op("sev", "1001 0100 0011 1000"),
	op("clv", "1001 0100 1011 1000"),
	op("ses", "1001 0100 0100 1000"),
	op("cls", "1001 0100 1100 1000"),
	op("seh", "1001 0100 0101 1000"),
	op("clh", "1001 0100 1101 1000"),
	op("set", "1001 0100 0110 1000"),
	op("clt", "1001 0100 1110 1000"),
	op("sei", "1001 0100 0111 1000"),
	op("cli", "1001 0100 1111 1000"),

	// Data transfer.
	op("mov", "0010 11rd dddd rrrr", reg('d'), reg('r')),
	op("movw", "0000 0001 dddd rrrr", pair('d'), pair('r')),
	op("ldi", "1110 KKKK dddd KKKK", reg('d'), imm('K')),
	op("ld", "", reg('d'), indirect),
	op("ldd", "", reg('d'), displaced),
	op("lds", "1001 000d dddd 0000 kkkk kkkk kkkk kkkk", reg('d'), addr('k')),
	op("st", "", indirect, reg('r')),
	op("std", "", displaced, reg('r')),
	op("sts", "1001 001r rrrr 0000 kkkk kkkk kkkk kkkk", addr('k'), reg('r')),
	op("lpm", "1001 0101 1100 1000"),
	op("lpm", "", reg('d'), indirect),
	op("elpm", "1001 0101 1101 1000"),
	op("elpm", "", reg('d'), indirect),
	op("spm", "1001 0101 1110 1000"),
	op("spm", "", indirect),
	op("in", "1011 0AAd dddd AAAA", reg('d'), imm('A')),
	op("out", "1011 1AAr rrrr AAAA", imm('A'), reg('r')),
	op("push", "1001 001d dddd 1111", reg('d')),
	op("pop", "1001 000d dddd 1111", reg('d')),
	op("xch", "1001 001r rrrr 0100", fixedZ, reg('r')),
	op("las", "1001 001r rrrr 0101", fixedZ, reg('r')),
	op("lac", "1001 001r rrrr 0110", fixedZ, reg('r')),
	op("lat", "1001 001r rrrr 0111", fixedZ, reg('r')),

	// MCU control.
	op("nop", "0000 0000 0000 0000"),
	op("sleep", "1001 0101 1000 1000"),
	op("wdr", "1001 0101 1010 1000"),
	op("break", "1001 0101 1001 1000"),
}

// catalog maps a mnemonic to its variants, ordered by operand count.
var catalog = make(map[string][]*Instruction)

func init() {
	for _, instr := range instructions {
		catalog[instr.Name] = append(catalog[instr.Name], instr)
	}
}

// Lookup returns the catalog entry for the given mnemonic and operand count.
// Returns false if the name is not recognized.
func Lookup(name string, argc int) (*Instruction, bool) {
	for _, instr := range catalog[strings.ToLower(name)] {
		if instr.Argc() == argc {
			return instr, true
		}
	}
	return nil, false
}

// IsMnemonic returns true if the given name represents a known instruction.
func IsMnemonic(name string) bool {
	_, ok := catalog[strings.ToLower(name)]
	return ok
}

// Variants returns all catalog entries sharing the given mnemonic.
func Variants(name string) []*Instruction {
	return catalog[strings.ToLower(name)]
}

// Mnemonics returns every known mnemonic in alphabetical order.
func Mnemonics() []string {
	names := maps.Keys(catalog)
	slices.Sort(names)
	return names
}

// Instructions returns every catalog entry in declaration order.
func Instructions() []*Instruction {
	return slices.Clone(instructions)
}
