package arch

import "fmt"

// Mode defines how an index pair changes around an indirect access.
type Mode byte

// Known indirect address modes.
const (
	Unchanged     Mode = iota // x = mem[Z]
	PreDecrement              // x = mem[--Z]
	PostIncrement             // x = mem[Z++]
)

// Modes lists every indirect address mode.
var Modes = [...]Mode{Unchanged, PreDecrement, PostIncrement}

func (m Mode) String() string {
	switch m {
	case Unchanged:
		return "unchanged"
	case PreDecrement:
		return "pre-decrement"
	case PostIncrement:
		return "post-increment"
	}
	return fmt.Sprintf("Mode(%d)", byte(m))
}

// Indirect is an index pair used as a memory pointer.
type Indirect struct {
	Pair RegisterPair
	Mode Mode
}

func (i Indirect) String() string {
	switch i.Mode {
	case PreDecrement:
		return "-" + i.Pair.String()
	case PostIncrement:
		return i.Pair.String() + "+"
	}
	return i.Pair.String()
}

// Displaced is an index pair plus a fixed unsigned displacement.
type Displaced struct {
	Pair RegisterPair
	Disp uint8 // 0-63
}

// MaxDisplacement is the largest displacement a Displaced operand can carry.
const MaxDisplacement = 63

func (d Displaced) String() string {
	return fmt.Sprintf("%s+%d", d.Pair, d.Disp)
}

// Ind returns p as an indirect pointer which is left untouched.
func (p RegisterPair) Ind() Indirect {
	return Indirect{Pair: p, Mode: Unchanged}
}

// PreDec returns p as an indirect pointer decremented before the access.
func (p RegisterPair) PreDec() Indirect {
	return Indirect{Pair: p, Mode: PreDecrement}
}

// PostInc returns p as an indirect pointer incremented after the access.
func (p RegisterPair) PostInc() Indirect {
	return Indirect{Pair: p, Mode: PostIncrement}
}

// Disp returns p as a pointer with displacement q.
func (p RegisterPair) Disp(q uint8) Displaced {
	return Displaced{Pair: p, Disp: q}
}
