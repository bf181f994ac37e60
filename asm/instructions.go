package asm

import "github.com/hexaflex/avr/arch"

// One method per catalog entry. Each appends the encoded instruction or
// returns an error without touching the output.

// Arithmetic and logic.

func (e *Encoder) Add(rd, rr arch.Register) error { return e.Encode("add", rd, rr) }
func (e *Encoder) Adc(rd, rr arch.Register) error { return e.Encode("adc", rd, rr) }
func (e *Encoder) Adiw(rd arch.RegisterPair, k uint8) error { return e.Encode("adiw", rd, k) }
func (e *Encoder) Sub(rd, rr arch.Register) error { return e.Encode("sub", rd, rr) }
func (e *Encoder) Subi(rd arch.Register, k uint8) error { return e.Encode("subi", rd, k) }
func (e *Encoder) Sbc(rd, rr arch.Register) error { return e.Encode("sbc", rd, rr) }
func (e *Encoder) Sbci(rd arch.Register, k uint8) error { return e.Encode("sbci", rd, k) }
func (e *Encoder) Sbiw(rd arch.RegisterPair, k uint8) error { return e.Encode("sbiw", rd, k) }
func (e *Encoder) And(rd, rr arch.Register) error { return e.Encode("and", rd, rr) }
func (e *Encoder) Andi(rd arch.Register, k uint8) error { return e.Encode("andi", rd, k) }
func (e *Encoder) Or(rd, rr arch.Register) error { return e.Encode("or", rd, rr) }
func (e *Encoder) Ori(rd arch.Register, k uint8) error { return e.Encode("ori", rd, k) }
func (e *Encoder) Eor(rd, rr arch.Register) error { return e.Encode("eor", rd, rr) }
func (e *Encoder) Com(rd arch.Register) error { return e.Encode("com", rd) }
func (e *Encoder) Neg(rd arch.Register) error { return e.Encode("neg", rd) }
func (e *Encoder) Sbr(rd arch.Register, k uint8) error { return e.Encode("sbr", rd, k) }
func (e *Encoder) Cbr(rd arch.Register, k uint8) error { return e.Encode("cbr", rd, k) }
func (e *Encoder) Inc(rd arch.Register) error { return e.Encode("inc", rd) }
func (e *Encoder) Dec(rd arch.Register) error { return e.Encode("dec", rd) }
func (e *Encoder) Tst(rd arch.Register) error { return e.Encode("tst", rd) }
func (e *Encoder) Clr(rd arch.Register) error { return e.Encode("clr", rd) }
func (e *Encoder) Ser(rd arch.Register) error { return e.Encode("ser", rd) }
func (e *Encoder) Mul(rd, rr arch.Register) error { return e.Encode("mul", rd, rr) }
func (e *Encoder) Muls(rd, rr arch.Register) error { return e.Encode("muls", rd, rr) }
func (e *Encoder) Mulsu(rd, rr arch.Register) error { return e.Encode("mulsu", rd, rr) }
func (e *Encoder) Fmul(rd, rr arch.Register) error { return e.Encode("fmul", rd, rr) }
func (e *Encoder) Fmuls(rd, rr arch.Register) error { return e.Encode("fmuls", rd, rr) }
func (e *Encoder) Fmulsu(rd, rr arch.Register) error { return e.Encode("fmulsu", rd, rr) }
func (e *Encoder) Des(k uint8) error { return e.Encode("des", k) }

// Branches.

func (e *Encoder) Rjmp(k arch.Offset) error { return e.Encode("rjmp", k) }
func (e *Encoder) Ijmp() error { return e.Encode("ijmp") }
func (e *Encoder) Eijmp() error { return e.Encode("eijmp") }
func (e *Encoder) Jmp(k arch.Offset) error { return e.Encode("jmp", k) }
func (e *Encoder) Rcall(k arch.Offset) error { return e.Encode("rcall", k) }
func (e *Encoder) Icall() error { return e.Encode("icall") }
func (e *Encoder) Eicall() error { return e.Encode("eicall") }
func (e *Encoder) Call(k arch.Offset) error { return e.Encode("call", k) }
func (e *Encoder) Ret() error { return e.Encode("ret") }
func (e *Encoder) Reti() error { return e.Encode("reti") }
func (e *Encoder) Cpse(rd, rr arch.Register) error { return e.Encode("cpse", rd, rr) }
func (e *Encoder) Cp(rd, rr arch.Register) error { return e.Encode("cp", rd, rr) }
func (e *Encoder) Cpc(rd, rr arch.Register) error { return e.Encode("cpc", rd, rr) }
func (e *Encoder) Cpi(rd arch.Register, k uint8) error { return e.Encode("cpi", rd, k) }
func (e *Encoder) Sbrc(rr arch.Register, b uint8) error { return e.Encode("sbrc", rr, b) }
func (e *Encoder) Sbrs(rr arch.Register, b uint8) error { return e.Encode("sbrs", rr, b) }
func (e *Encoder) Sbic(a, b uint8) error { return e.Encode("sbic", a, b) }
func (e *Encoder) Sbis(a, b uint8) error { return e.Encode("sbis", a, b) }
func (e *Encoder) Brbs(s uint8, k arch.Offset) error { return e.Encode("brbs", s, k) }
func (e *Encoder) Brbc(s uint8, k arch.Offset) error { return e.Encode("brbc", s, k) }
func (e *Encoder) Brcs(k arch.Offset) error { return e.Encode("brcs", k) }
func (e *Encoder) Brlo(k arch.Offset) error { return e.Encode("brlo", k) }
func (e *Encoder) Brcc(k arch.Offset) error { return e.Encode("brcc", k) }
func (e *Encoder) Brsh(k arch.Offset) error { return e.Encode("brsh", k) }
func (e *Encoder) Breq(k arch.Offset) error { return e.Encode("breq", k) }
func (e *Encoder) Brne(k arch.Offset) error { return e.Encode("brne", k) }
func (e *Encoder) Brmi(k arch.Offset) error { return e.Encode("brmi", k) }
func (e *Encoder) Brpl(k arch.Offset) error { return e.Encode("brpl", k) }
func (e *Encoder) Brvs(k arch.Offset) error { return e.Encode("brvs", k) }
func (e *Encoder) Brvc(k arch.Offset) error { return e.Encode("brvc", k) }
func (e *Encoder) Brlt(k arch.Offset) error { return e.Encode("brlt", k) }
func (e *Encoder) Brge(k arch.Offset) error { return e.Encode("brge", k) }
func (e *Encoder) Brhs(k arch.Offset) error { return e.Encode("brhs", k) }
func (e *Encoder) Brhc(k arch.Offset) error { return e.Encode("brhc", k) }
func (e *Encoder) Brts(k arch.Offset) error { return e.Encode("brts", k) }
func (e *Encoder) Brtc(k arch.Offset) error { return e.Encode("brtc", k) }
func (e *Encoder) Brie(k arch.Offset) error { return e.Encode("brie", k) }
func (e *Encoder) Brid(k arch.Offset) error { return e.Encode("brid", k) }

// Bit operations.

func (e *Encoder) Sbi(a, b uint8) error { return e.Encode("sbi", a, b) }
func (e *Encoder) Cbi(a, b uint8) error { return e.Encode("cbi", a, b) }
func (e *Encoder) Lsl(rd arch.Register) error { return e.Encode("lsl", rd) }
func (e *Encoder) Lsr(rd arch.Register) error { return e.Encode("lsr", rd) }
func (e *Encoder) Rol(rd arch.Register) error { return e.Encode("rol", rd) }
func (e *Encoder) Ror(rd arch.Register) error { return e.Encode("ror", rd) }
func (e *Encoder) Asr(rd arch.Register) error { return e.Encode("asr", rd) }
func (e *Encoder) Swap(rd arch.Register) error { return e.Encode("swap", rd) }
func (e *Encoder) Bset(s uint8) error { return e.Encode("bset", s) }
func (e *Encoder) Bclr(s uint8) error { return e.Encode("bclr", s) }
func (e *Encoder) Bst(rd arch.Register, b uint8) error { return e.Encode("bst", rd, b) }
func (e *Encoder) Bld(rd arch.Register, b uint8) error { return e.Encode("bld", rd, b) }
func (e *Encoder) Sec() error { return e.Encode("sec") }
func (e *Encoder) Clc() error { return e.Encode("clc") }
func (e *Encoder) Sez() error { return e.Encode("sez") }
func (e *Encoder) Clz() error { return e.Encode("clz") }
func (e *Encoder) Sen() error { return e.Encode("sen") }
func (e *Encoder) Cln() error { return e.Encode("cln") }
func (e *Encoder) Sev() error { return e.Encode("sev") }
func (e *Encoder) Clv() error { return e.Encode("clv") }
func (e *Encoder) Ses() error { return e.Encode("ses") }
func (e *Encoder) Cls() error { return e.Encode("cls") }
func (e *Encoder) Seh() error { return e.Encode("seh") }
func (e *Encoder) Clh() error { return e.Encode("clh") }
func (e *Encoder) Set() error { return e.Encode("set") }
func (e *Encoder) Clt() error { return e.Encode("clt") }
func (e *Encoder) Sei() error { return e.Encode("sei") }
func (e *Encoder) Cli() error { return e.Encode("cli") }

// Data transfer.

func (e *Encoder) Mov(rd, rr arch.Register) error { return e.Encode("mov", rd, rr) }
func (e *Encoder) Movw(rd, rr arch.RegisterPair) error { return e.Encode("movw", rd, rr) }
func (e *Encoder) Ldi(rd arch.Register, k uint8) error { return e.Encode("ldi", rd, k) }
func (e *Encoder) Ld(rd arch.Register, ptr arch.Indirect) error { return e.Encode("ld", rd, ptr) }
func (e *Encoder) Ldd(rd arch.Register, ptr arch.Displaced) error { return e.Encode("ldd", rd, ptr) }
func (e *Encoder) Lds(rd arch.Register, k arch.Offset) error { return e.Encode("lds", rd, k) }
func (e *Encoder) St(ptr arch.Indirect, rr arch.Register) error { return e.Encode("st", ptr, rr) }
func (e *Encoder) Std(ptr arch.Displaced, rr arch.Register) error { return e.Encode("std", ptr, rr) }
func (e *Encoder) Sts(k arch.Offset, rr arch.Register) error { return e.Encode("sts", k, rr) }
func (e *Encoder) Lpm() error { return e.Encode("lpm") }
func (e *Encoder) LpmRd(rd arch.Register, ptr arch.Indirect) error { return e.Encode("lpm", rd, ptr) }
func (e *Encoder) Elpm() error { return e.Encode("elpm") }
func (e *Encoder) ElpmRd(rd arch.Register, ptr arch.Indirect) error { return e.Encode("elpm", rd, ptr) }
func (e *Encoder) Spm() error { return e.Encode("spm") }
func (e *Encoder) SpmZ(ptr arch.Indirect) error { return e.Encode("spm", ptr) }
func (e *Encoder) In(rd arch.Register, a uint8) error { return e.Encode("in", rd, a) }
func (e *Encoder) Out(a uint8, rr arch.Register) error { return e.Encode("out", a, rr) }
func (e *Encoder) Push(rr arch.Register) error { return e.Encode("push", rr) }
func (e *Encoder) Pop(rd arch.Register) error { return e.Encode("pop", rd) }
func (e *Encoder) Xch(z arch.RegisterPair, rd arch.Register) error { return e.Encode("xch", z, rd) }
func (e *Encoder) Las(z arch.RegisterPair, rd arch.Register) error { return e.Encode("las", z, rd) }
func (e *Encoder) Lac(z arch.RegisterPair, rd arch.Register) error { return e.Encode("lac", z, rd) }
func (e *Encoder) Lat(z arch.RegisterPair, rd arch.Register) error { return e.Encode("lat", z, rd) }

// MCU control.

func (e *Encoder) Nop() error { return e.Encode("nop") }
func (e *Encoder) Sleep() error { return e.Encode("sleep") }
func (e *Encoder) Wdr() error { return e.Encode("wdr") }
func (e *Encoder) Break() error { return e.Encode("break") }
