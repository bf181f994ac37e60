package arch

import (
	"fmt"
	"strconv"
)

// Register identifies one of the 32 general purpose registers.
type Register uint8

// Known registers.
const (
	R0 Register = iota
	R1
	R2
	R3
	R4
	R5
	R6
	R7
	R8
	R9
	R10
	R11
	R12
	R13
	R14
	R15
	R16
	R17
	R18
	R19
	R20
	R21
	R22
	R23
	R24
	R25
	R26
	R27
	R28
	R29
	R30
	R31
)

// RegisterCount is the number of general purpose registers.
const RegisterCount = 32

// Valid returns true if r names an existing register.
func (r Register) Valid() bool {
	return r < RegisterCount
}

func (r Register) String() string {
	return "r" + strconv.Itoa(int(r))
}

// RegisterPair defines two consecutive registers used as one 16-bit operand.
type RegisterPair struct {
	High Register // Most significant half; always Low+1.
	Low  Register // Least significant half; always even.
}

// The three index pairs used for indirect addressing.
var (
	X = RegisterPair{High: R27, Low: R26}
	Y = RegisterPair{High: R29, Low: R28}
	Z = RegisterPair{High: R31, Low: R30}
)

// Pair returns the register pair whose low half is the given register.
func Pair(low Register) RegisterPair {
	return RegisterPair{High: low + 1, Low: low}
}

// Valid returns true if p holds two consecutive registers starting at an even one.
func (p RegisterPair) Valid() bool {
	return p.Low.Valid() && p.High.Valid() && p.Low%2 == 0 && p.High == p.Low+1
}

// IsIndex returns true if p is one of X, Y or Z.
func (p RegisterPair) IsIndex() bool {
	return p == X || p == Y || p == Z
}

func (p RegisterPair) String() string {
	switch p {
	case X:
		return "X"
	case Y:
		return "Y"
	case Z:
		return "Z"
	}
	return fmt.Sprintf("%s:%s", p.High, p.Low)
}
