package asm

import (
	"fmt"
	"runtime"

	"github.com/pkg/errors"
)

// Known encoding errors. Errors returned by the Encoder wrap one of these.
var (
	ErrUnknown    = errors.New("unknown instruction")
	ErrOperand    = errors.New("invalid operand")
	ErrRegister   = errors.New("register out of range")
	ErrPair       = errors.New("invalid register pair")
	ErrRange      = errors.New("value out of range")
	ErrAlignment  = errors.New("misaligned address")
	ErrAddressing = errors.New("invalid addressing mode")
	ErrSymbol     = errors.New("invalid symbol")
)

// Error defines an encoding error for a single instruction.
type Error struct {
	Address  int    // Output offset at which the instruction would have been written.
	Mnemonic string // Instruction being encoded.
	Err      error  // Underlying cause.
}

func (e *Error) Error() string {
	return fmt.Sprintf("%04x: %s: %v", e.Address, e.Mnemonic, e.Err)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Cause returns the underlying error.
func (e *Error) Cause() error {
	return e.Err
}

// check panics with err if it is not nil. The panic is turned back into an
// error by recoverOnPanic at the public API boundary.
func check(err error) {
	if err != nil {
		panic(err)
	}
}

func recoverOnPanic(err *error) {
	x := recover()
	if x == nil {
		return
	}

	switch tx := x.(type) {
	case runtime.Error:
		panic(tx)
	case error:
		*err = tx
	default:
		*err = fmt.Errorf("asm: %v", tx)
	}
}
