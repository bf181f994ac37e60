package asm

import (
	"bytes"
	"testing"

	"github.com/hexaflex/avr/arch"
	"github.com/hexaflex/avr/asm/ar"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	for _, tc := range []struct {
		name string
		emit func(e *Encoder) error
		want []byte
	}{
		{"nop", func(e *Encoder) error { return e.Nop() }, []byte{0x00, 0x00}},
		{"ldi r16, 0xff", func(e *Encoder) error { return e.Ldi(arch.R16, 0xff) }, []byte{0x0f, 0xef}},
		{"ser r16", func(e *Encoder) error { return e.Ser(arch.R16) }, []byte{0x0f, 0xef}},
		{"cbr r16, 0x0f", func(e *Encoder) error { return e.Cbr(arch.R16, 0x0f) }, []byte{0x00, 0x7f}},
		{"sbr r17, 0x81", func(e *Encoder) error { return e.Sbr(arch.R17, 0x81) }, []byte{0x11, 0x68}},
		{"clr r1", func(e *Encoder) error { return e.Clr(arch.R1) }, []byte{0x11, 0x24}},
		{"clr r24", func(e *Encoder) error { return e.Clr(arch.R24) }, []byte{0x88, 0x27}},
		{"lsl r24", func(e *Encoder) error { return e.Lsl(arch.R24) }, []byte{0x88, 0x0f}},
		{"rol r25", func(e *Encoder) error { return e.Rol(arch.R25) }, []byte{0x99, 0x1f}},
		{"tst r24", func(e *Encoder) error { return e.Tst(arch.R24) }, []byte{0x88, 0x23}},
		{"eor r1, r1", func(e *Encoder) error { return e.Eor(arch.R1, arch.R1) }, []byte{0x11, 0x24}},
		{"add r24, r22", func(e *Encoder) error { return e.Add(arch.R24, arch.R22) }, []byte{0x86, 0x0f}},
		{"mov r31, r16", func(e *Encoder) error { return e.Mov(arch.R31, arch.R16) }, []byte{0xf0, 0x2f}},
		{"movw r24, r30", func(e *Encoder) error { return e.Movw(arch.Pair(arch.R24), arch.Z) }, []byte{0xcf, 0x01}},
		{"adiw r24, 1", func(e *Encoder) error { return e.Adiw(arch.Pair(arch.R24), 1) }, []byte{0x01, 0x96}},
		{"sbiw r30, 1", func(e *Encoder) error { return e.Sbiw(arch.Z, 1) }, []byte{0x31, 0x97}},
		{"mulsu r16, r17", func(e *Encoder) error { return e.Mulsu(arch.R16, arch.R17) }, []byte{0x01, 0x03}},
		{"muls r16, r31", func(e *Encoder) error { return e.Muls(arch.R16, arch.R31) }, []byte{0x0f, 0x02}},
		{"in r24, 0x3f", func(e *Encoder) error { return e.In(arch.R24, 0x3f) }, []byte{0x8f, 0xb7}},
		{"out 0x3f, r1", func(e *Encoder) error { return e.Out(0x3f, arch.R1) }, []byte{0x1f, 0xbe}},
		{"sbi 0x04, 5", func(e *Encoder) error { return e.Sbi(0x04, 5) }, []byte{0x25, 0x9a}},
		{"push r28", func(e *Encoder) error { return e.Push(arch.R28) }, []byte{0xcf, 0x93}},
		{"pop r28", func(e *Encoder) error { return e.Pop(arch.R28) }, []byte{0xcf, 0x91}},
		{"lds r24, 0x0100", func(e *Encoder) error { return e.Lds(arch.R24, arch.Abs(0x0100)) }, []byte{0x80, 0x91, 0x00, 0x01}},
		{"sts 0x0100, r1", func(e *Encoder) error { return e.Sts(arch.Abs(0x0100), arch.R1) }, []byte{0x10, 0x92, 0x00, 0x01}},
		{"ld r24, Z+", func(e *Encoder) error { return e.Ld(arch.R24, arch.Z.PostInc()) }, []byte{0x81, 0x91}},
		{"ld r24, -X", func(e *Encoder) error { return e.Ld(arch.R24, arch.X.PreDec()) }, []byte{0x8e, 0x91}},
		{"ld r24, Y", func(e *Encoder) error { return e.Ld(arch.R24, arch.Y.Ind()) }, []byte{0x88, 0x81}},
		{"st X+, r1", func(e *Encoder) error { return e.St(arch.X.PostInc(), arch.R1) }, []byte{0x1d, 0x92}},
		{"st Z, r24", func(e *Encoder) error { return e.St(arch.Z.Ind(), arch.R24) }, []byte{0x80, 0x83}},
		{"ldd r24, Y+1", func(e *Encoder) error { return e.Ldd(arch.R24, arch.Y.Disp(1)) }, []byte{0x89, 0x81}},
		{"std Z+5, r1", func(e *Encoder) error { return e.Std(arch.Z.Disp(5), arch.R1) }, []byte{0x15, 0x82}},
		{"lpm", func(e *Encoder) error { return e.Lpm() }, []byte{0xc8, 0x95}},
		{"lpm r24, Z", func(e *Encoder) error { return e.LpmRd(arch.R24, arch.Z.Ind()) }, []byte{0x84, 0x91}},
		{"elpm r0, Z+", func(e *Encoder) error { return e.ElpmRd(arch.R0, arch.Z.PostInc()) }, []byte{0x07, 0x90}},
		{"spm Z+", func(e *Encoder) error { return e.SpmZ(arch.Z.PostInc()) }, []byte{0xf8, 0x95}},
		{"xch Z, r16", func(e *Encoder) error { return e.Xch(arch.Z, arch.R16) }, []byte{0x04, 0x93}},
		{"rjmp .-2", func(e *Encoder) error { return e.Rjmp(arch.Rel(-2)) }, []byte{0xff, 0xcf}},
		{"rjmp 0", func(e *Encoder) error { return e.Rjmp(arch.Abs(0)) }, []byte{0xff, 0xcf}},
		{"rcall .+0", func(e *Encoder) error { return e.Rcall(arch.Rel(0)) }, []byte{0x00, 0xd0}},
		{"jmp 0x68", func(e *Encoder) error { return e.Jmp(arch.Abs(0x68)) }, []byte{0x0c, 0x94, 0x34, 0x00}},
		{"call 0x20000", func(e *Encoder) error { return e.Call(arch.Abs(0x00020000)) }, []byte{0x0f, 0x94, 0x00, 0x00}},
		{"brbs 1, .+4", func(e *Encoder) error { return e.Brbs(1, arch.Rel(4)) }, []byte{0x11, 0xf0}},
		{"sei", func(e *Encoder) error { return e.Sei() }, []byte{0x78, 0x94}},
		{"cli", func(e *Encoder) error { return e.Cli() }, []byte{0xf8, 0x94}},
		{"ret", func(e *Encoder) error { return e.Ret() }, []byte{0x08, 0x95}},
		{"reti", func(e *Encoder) error { return e.Reti() }, []byte{0x18, 0x95}},
		{"sleep", func(e *Encoder) error { return e.Sleep() }, []byte{0x88, 0x95}},
		{"wdr", func(e *Encoder) error { return e.Wdr() }, []byte{0xa8, 0x95}},
		{"break", func(e *Encoder) error { return e.Break() }, []byte{0x98, 0x95}},
		{"des 15", func(e *Encoder) error { return e.Des(15) }, []byte{0xfb, 0x94}},
	} {
		e := New()
		require.NoError(t, tc.emit(e), tc.name)
		assert.Equal(t, tc.want, e.Bytes(), tc.name)
	}
}

func TestEncodeLongCall(t *testing.T) {
	e := New()
	require.NoError(t, e.Call(arch.Abs(0x00020000)))
	require.Len(t, e.Bytes(), 4)

	// Bit 16 of the word address sits in bit 0 of the opcode word.
	first := uint16(e.Bytes()[0]) | uint16(e.Bytes()[1])<<8
	assert.Equal(t, uint16(0x940e), first&^0x01f1)
	assert.Equal(t, uint16(1), first&0x01)

	second := uint16(e.Bytes()[2]) | uint16(e.Bytes()[3])<<8
	assert.Equal(t, uint16((0x00020000/2)&0xffff), second)
}

func TestEncodeBranchAfterOutput(t *testing.T) {
	e := New()
	for i := 0; i < 5; i++ {
		require.NoError(t, e.Nop())
	}
	require.Equal(t, 10, e.Len())

	// Three words back from the end of the branch.
	require.NoError(t, e.Breq(arch.Abs(6)))
	assert.Equal(t, []byte{0xe9, 0xf3}, e.Bytes()[10:])

	require.NoError(t, e.Brne(arch.Abs(6)))
	assert.Equal(t, []byte{0xe1, 0xf7}, e.Bytes()[12:])
}

func TestEncodeDataAddress(t *testing.T) {
	e := New()
	require.NoError(t, e.Lds(arch.R24, arch.Abs(0x0100)))
	require.NoError(t, e.Sts(arch.Abs(0x0100), arch.R24))

	// Relative targets count from the end of the four byte instruction.
	require.NoError(t, e.Lds(arch.R24, arch.Rel(0x100-12)))
	require.NoError(t, e.Sts(arch.Rel(0x100-16), arch.R24))

	// Data memory is byte addressed and small addresses keep the long form.
	require.NoError(t, e.Lds(arch.R16, arch.Abs(0x0101)))
	require.NoError(t, e.Lds(arch.R16, arch.Abs(0x0040)))

	assert.Equal(t, []byte{
		0x80, 0x91, 0x00, 0x01,
		0x80, 0x93, 0x00, 0x01,
		0x80, 0x91, 0x00, 0x01,
		0x80, 0x93, 0x00, 0x01,
		0x00, 0x91, 0x01, 0x01,
		0x00, 0x91, 0x40, 0x00,
	}, e.Bytes())
}

func TestEncodeSymbols(t *testing.T) {
	e := New()
	require.NoError(t, e.Mark("main"))
	require.NoError(t, e.Ldi(arch.R24, 10))
	require.NoError(t, e.Mark("loop"))
	require.NoError(t, e.Dec(arch.R24))

	loop, ok := e.Symbol("loop")
	require.True(t, ok)
	assert.Equal(t, arch.Abs(2), loop)
	require.NoError(t, e.Brne(loop))

	_, ok = e.Symbol("missing")
	assert.False(t, ok)

	assert.True(t, errors.Is(e.Mark("loop"), ErrSymbol))
	assert.True(t, errors.Is(e.Mark(""), ErrSymbol))

	a := e.Archive()
	assert.Equal(t, ar.Symbols{{Name: "main", Address: 0}, {Name: "loop", Address: 2}}, a.Symbols)
	assert.Equal(t, []byte{0x8a, 0xe0, 0x8a, 0x95, 0xf1, 0xf7}, a.Code)

	// The archive owns its copy.
	a.Code[0] = 0
	assert.Equal(t, byte(0x8a), e.Bytes()[0])

	e.Reset()
	assert.Equal(t, 0, e.Len())
	_, ok = e.Symbol("main")
	assert.False(t, ok)
	assert.Empty(t, e.Archive().Symbols)
}

func TestEncodeData(t *testing.T) {
	e := New()
	e.Words(0xabcd, 0x0102)
	assert.Equal(t, []byte{0xcd, 0xab, 0x02, 0x01}, e.Bytes())

	e.Data('h', 'i', '!')
	assert.Equal(t, 8, e.Len())
	assert.Equal(t, []byte{'h', 'i', '!', 0}, e.Bytes()[4:])
	assert.Equal(t, uint32(8), e.Here())
}

func TestEncodeIdempotent(t *testing.T) {
	emit := func(e *Encoder) {
		require.NoError(t, e.Ldi(arch.R24, 0x55))
		require.NoError(t, e.Out(0x05, arch.R24))
		require.NoError(t, e.Rjmp(arch.Abs(0)))
		require.NoError(t, e.Call(arch.Abs(0x1234)))
	}

	a, b := New(), New()
	emit(a)
	emit(b)
	assert.Equal(t, a.Bytes(), b.Bytes())
}

func TestEncodeErrors(t *testing.T) {
	for _, tc := range []struct {
		name string
		emit func(e *Encoder) error
		want error
	}{
		{"ldi r15", func(e *Encoder) error { return e.Ldi(arch.R15, 1) }, ErrRegister},
		{"fmul r24", func(e *Encoder) error { return e.Fmul(arch.R24, arch.R16) }, ErrRegister},
		{"mov r32", func(e *Encoder) error { return e.Mov(arch.Register(32), arch.R0) }, ErrRegister},
		{"movw odd", func(e *Encoder) error { return e.Movw(arch.Pair(arch.R1), arch.Z) }, ErrPair},
		{"movw split", func(e *Encoder) error {
			return e.Movw(arch.RegisterPair{High: arch.R5, Low: arch.R2}, arch.Z)
		}, ErrPair},
		{"adiw r22", func(e *Encoder) error { return e.Adiw(arch.Pair(arch.R22), 1) }, ErrPair},
		{"adiw 64", func(e *Encoder) error { return e.Adiw(arch.Pair(arch.R24), 64) }, ErrRange},
		{"sbi 32", func(e *Encoder) error { return e.Sbi(32, 0) }, ErrRange},
		{"bld 8", func(e *Encoder) error { return e.Bld(arch.R0, 8) }, ErrRange},
		{"brne far", func(e *Encoder) error { return e.Brne(arch.Rel(200)) }, ErrRange},
		{"rjmp far", func(e *Encoder) error { return e.Rjmp(arch.Abs(0x2000)) }, ErrRange},
		{"rjmp odd", func(e *Encoder) error { return e.Rjmp(arch.Rel(3)) }, ErrAlignment},
		{"jmp odd", func(e *Encoder) error { return e.Jmp(arch.Abs(3)) }, ErrAlignment},
		{"lds far", func(e *Encoder) error { return e.Lds(arch.R24, arch.Abs(0x10000)) }, ErrRange},
		{"lds before start", func(e *Encoder) error { return e.Lds(arch.R24, arch.Rel(-8)) }, ErrRange},
		{"sts odd", func(e *Encoder) error { return e.Sts(arch.Rel(3), arch.R1) }, ErrAlignment},
		{"lds integer", func(e *Encoder) error { return e.Encode("lds", arch.R24, 0x100) }, ErrOperand},
		{"call far", func(e *Encoder) error { return e.Call(arch.Abs(0x800000)) }, ErrRange},
		{"ldd X", func(e *Encoder) error { return e.Ldd(arch.R24, arch.X.Disp(1)) }, ErrAddressing},
		{"ldd Y+64", func(e *Encoder) error { return e.Ldd(arch.R24, arch.Y.Disp(64)) }, ErrRange},
		{"lpm X+", func(e *Encoder) error { return e.LpmRd(arch.R0, arch.X.PostInc()) }, ErrAddressing},
		{"lpm -Z", func(e *Encoder) error { return e.LpmRd(arch.R0, arch.Z.PreDec()) }, ErrAddressing},
		{"ld r24:r25", func(e *Encoder) error { return e.Ld(arch.R0, arch.Pair(arch.R24).Ind()) }, ErrAddressing},
		{"xch X", func(e *Encoder) error { return e.Xch(arch.X, arch.R16) }, ErrOperand},
		{"unknown", func(e *Encoder) error { return e.Encode("frob") }, ErrUnknown},
		{"argc", func(e *Encoder) error { return e.Encode("ldi", arch.R16) }, ErrOperand},
		{"type", func(e *Encoder) error { return e.Encode("ldi", 16, 1) }, ErrOperand},
		{"pointer type", func(e *Encoder) error { return e.Encode("ld", arch.R0, arch.X) }, ErrOperand},
		{"offset type", func(e *Encoder) error { return e.Encode("rjmp", 2) }, ErrOperand},
	} {
		e := New()
		require.NoError(t, e.Nop())

		err := tc.emit(e)
		require.Error(t, err, tc.name)
		assert.True(t, errors.Is(err, tc.want), "%s: %v", tc.name, err)
		assert.Equal(t, []byte{0x00, 0x00}, e.Bytes(), tc.name)

		var encErr *Error
		require.True(t, errors.As(err, &encErr), tc.name)
		assert.Equal(t, 2, encErr.Address, tc.name)
	}
}

func TestEncodeGeneric(t *testing.T) {
	e := New()
	require.NoError(t, e.Encode("LDI", arch.R16, 0x42))
	require.NoError(t, e.Encode("andi", arch.R16, uint8(0x0f)))
	assert.Equal(t, []byte{0x02, 0xe4, 0x0f, 0x70}, e.Bytes())
}

func TestErrorMessage(t *testing.T) {
	e := New()
	require.NoError(t, e.Nop())

	err := e.Ldi(arch.R1, 0)
	require.Error(t, err)
	assert.Equal(t, "0002: ldi: operand 1: r1 is not one of r16-r31: register out of range", err.Error())
	assert.Equal(t, ErrRegister, errors.Cause(err))
}

func TestTrace(t *testing.T) {
	var buf bytes.Buffer

	e := New()
	e.Trace = &buf
	require.NoError(t, e.Ldi(arch.R16, 0xff))
	require.NoError(t, e.Rjmp(arch.Rel(-2)))
	require.Error(t, e.Ldi(arch.R0, 0))

	assert.Equal(t, ""+
		"000000: 0f ef\tldi r16, 255\n"+
		"000002: ff cf\trjmp .-2\n", buf.String())
}

// validOperands returns operands accepted by every slot of instr, or false if
// the instruction takes a pointer whose valid forms are tested separately.
func validOperands(instr *arch.Instruction) ([]interface{}, bool) {
	args := make([]interface{}, len(instr.Operands))
	for i, slot := range instr.Operands {
		switch slot.Kind {
		case arch.RegisterSlot:
			args[i] = arch.R16
		case arch.PairSlot:
			args[i] = arch.Z
		case arch.ImmediateSlot, arch.ComplementSlot:
			args[i] = 1
		case arch.AddressSlot, arch.WordAddressSlot:
			args[i] = arch.Abs(0x100)
		case arch.BranchSlot:
			args[i] = arch.Rel(2)
		case arch.FixedZSlot:
			args[i] = arch.Z
		default:
			return nil, false
		}
	}
	return args, true
}

func TestEncodeCatalog(t *testing.T) {
	for _, instr := range arch.Instructions() {
		args, ok := validOperands(instr)
		if !ok {
			continue
		}

		e := New()
		require.NoError(t, e.Encode(instr.Name, args...), instr.Name)

		tpl := templates[instr]
		require.Len(t, e.Bytes(), tpl.Size(), instr.Name)

		words := make([]uint16, tpl.Words())
		for i := range words {
			words[i] = uint16(e.Bytes()[2*i]) | uint16(e.Bytes()[2*i+1])<<8
		}

		fields, err := tpl.Unpack(words)
		require.NoError(t, err, instr.Name)
		for _, f := range e.fields(instr, tpl, args, At(0, tpl.Size())) {
			assert.Equal(t, f.Value, fields[f.Designator], "%s: field %c", instr.Name, f.Designator)
		}
	}
}
