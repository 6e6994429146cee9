package rpn

import (
	"strconv"
	"strings"
)

// Lexem is an element of a postfix program: a number or an operator.
type Lexem struct {
	// Op is the operator. If Op.Kind is OpUnknown, the lexem is the number
	// Num.
	Op  Operator
	Num Number
}

// NumLexem creates a number lexem.
func NumLexem(x Number) Lexem {
	return Lexem{Num: x}
}

// OpLexem creates an operator lexem. Panics if op is unknown, since such a
// lexem would read as a number.
func OpLexem(op Operator) Lexem {
	if op.Kind == OpUnknown {
		panic("rpn: lexem from unknown operator " + strconv.Quote(op.Name))
	}
	return Lexem{Op: op}
}

// IsOp returns whether the lexem is an operator.
func (l Lexem) IsOp() bool {
	return l.Op.Kind != OpUnknown
}

func (l Lexem) String() string {
	if l.IsOp() {
		return l.Op.String()
	}
	return strconv.FormatFloat(float64(l.Num), 'g', -1, 32)
}

// Expression is a postfix program. It is a queue: Evaluate drains it from
// the front, so an expression can be evaluated only once.
type Expression struct {
	q    []Lexem
	head int
}

// NewExpression creates an expression from lexems in postfix order.
func NewExpression(lexems ...Lexem) *Expression {
	return &Expression{q: append([]Lexem(nil), lexems...)}
}

// Push appends a lexem to the end of the program.
func (e *Expression) Push(l Lexem) {
	e.q = append(e.q, l)
}

// next removes and returns the lexem at the front of the program. The second
// result is false if the program is exhausted.
func (e *Expression) next() (Lexem, bool) {
	if e.head >= len(e.q) {
		return Lexem{}, false
	}
	l := e.q[e.head]
	e.q[e.head] = Lexem{}
	e.head++
	return l, true
}

// Len returns the number of lexems not yet evaluated.
func (e *Expression) Len() int {
	return len(e.q) - e.head
}

// Lexems returns a copy of the lexems not yet evaluated.
func (e *Expression) Lexems() []Lexem {
	return append([]Lexem(nil), e.q[e.head:]...)
}

// String formats the remaining program with lexems separated by spaces,
// e.g. "2 2 2 * +".
func (e *Expression) String() string {
	var b strings.Builder
	for i, l := range e.q[e.head:] {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(l.String())
	}
	return b.String()
}
