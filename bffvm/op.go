package bffvm

// Op is a single instruction, stored as its source symbol.
type Op byte

const (
	OpHead0Left  Op = '<'
	OpHead0Right Op = '>'
	OpHead1Left  Op = '{'
	OpHead1Right Op = '}'
	OpDec        Op = '-'
	OpInc        Op = '+'
	OpCopyOut    Op = '.' // tape[head1] = tape[head0]
	OpCopyIn     Op = ',' // tape[head0] = tape[head1]
	OpLoopOpen   Op = '['
	OpLoopClose  Op = ']'
)

func IsOp(b byte) bool {
	switch Op(b) {
	case OpHead0Left, OpHead0Right,
		OpHead1Left, OpHead1Right,
		OpDec, OpInc,
		OpCopyOut, OpCopyIn,
		OpLoopOpen, OpLoopClose:
		return true
	}
	return false
}

func (o Op) String() string {
	return string(rune(o))
}
