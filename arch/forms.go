package arch

// IndirectForm binds a pointer/mode combination of a dispatched instruction to its template.
type IndirectForm struct {
	Name     string
	Pair     RegisterPair
	Mode     Mode
	Template string
}

// DisplacedForm binds a displacement pointer of a dispatched instruction to its template.
type DisplacedForm struct {
	Name     string
	Pair     RegisterPair
	Template string
}

// IndirectForms lists every valid indirect addressing combination. Anything not
// listed here is not encodable.
var IndirectForms = []IndirectForm{
	{"ld", X, Unchanged, "1001 000d dddd 1100"},
	{"ld", X, PostIncrement, "1001 000d dddd 1101"},
	{"ld", X, PreDecrement, "1001 000d dddd 1110"},
	{"ld", Y, Unchanged, "1000 000d dddd 1000"},
	{"ld", Y, PostIncrement, "1001 000d dddd 1001"},
	{"ld", Y, PreDecrement, "1001 000d dddd 1010"},
	{"ld", Z, Unchanged, "1000 000d dddd 0000"},
	{"ld", Z, PostIncrement, "1001 000d dddd 0001"},
	{"ld", Z, PreDecrement, "1001 000d dddd 0010"},

	{"st", X, Unchanged, "1001 001r rrrr 1100"},
	{"st", X, PostIncrement, "1001 001r rrrr 1101"},
	{"st", X, PreDecrement, "1001 001r rrrr 1110"},
	{"st", Y, Unchanged, "1000 001r rrrr 1000"},
	{"st", Y, PostIncrement, "1001 001r rrrr 1001"},
	{"st", Y, PreDecrement, "1001 001r rrrr 1010"},
	{"st", Z, Unchanged, "1000 001r rrrr 0000"},
	{"st", Z, PostIncrement, "1001 001r rrrr 0001"},
	{"st", Z, PreDecrement, "1001 001r rrrr 0010"},

	{"lpm", Z, Unchanged, "1001 000d dddd 0100"},
	{"lpm", Z, PostIncrement, "1001 000d dddd 0101"},
	{"elpm", Z, Unchanged, "1001 000d dddd 0110"},
	{"elpm", Z, PostIncrement, "1001 000d dddd 0111"},
	{"spm", Z, PostIncrement, "1001 0101 1111 1000"},
}

// DisplacedForms lists every valid displacement addressing combination.
var DisplacedForms = []DisplacedForm{
	{"ldd", Y, "10q0 qq0d dddd 1qqq"},
	{"ldd", Z, "10q0 qq0d dddd 0qqq"},
	{"std", Y, "10q0 qq1r rrrr 1qqq"},
	{"std", Z, "10q0 qq1r rrrr 0qqq"},
}

// IndexPairs lists the pairs usable as pointers, in X, Y, Z order.
var IndexPairs = [...]RegisterPair{X, Y, Z}
