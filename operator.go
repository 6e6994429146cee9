package rpn

import (
	"math"
	"strconv"
)

// Number is the numeric type of every value in an expression.
type Number = float32

// OpKind is the arity class of an operator.
type OpKind int8

const (
	// OpUnknown is the kind of text that names no operator.
	OpUnknown OpKind = iota
	// OpUnary operators take one operand.
	OpUnary
	// OpBinary operators take two operands.
	OpBinary
)

func (k OpKind) String() string {
	switch k {
	case OpUnknown:
		return "Unknown"
	case OpUnary:
		return "Unary"
	case OpBinary:
		return "Binary"
	default:
		return "OpKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// opcode selects the reduction an operator performs.
type opcode int8

const (
	opNone opcode = iota

	opPos // x
	opNeg // -x
	opShl // x << y
	opShr // x >> y
	opAdd // x + y
	opSub // x - y
	opDiv // x / y
	opMul // x * y
	opMod // x % y
	opPow // x ^ y

	opCall1 // f1(x)
	opCall2 // f2(x, y)
)

// Operator is a resolved operator or function. Operators are values; Resolve
// creates a new one for each token.
type Operator struct {
	// Kind is the operator's arity class.
	Kind OpKind
	// Name is a display name.
	Name string
	// Symbol is the text the operator was resolved from.
	Symbol string
	// Priority is the operator's rank. An operator on the conversion stack
	// is emitted before an incoming operator of greater or equal priority,
	// so lower priorities bind more tightly.
	Priority int
	// Left indicates left-associativity.
	Left bool

	code opcode
	f1   func(Number) Number
	f2   func(Number, Number) Number
}

// table holds the operator symbols other than the unary signs.
var table = map[string]Operator{
	"<<": {Kind: OpBinary, Name: "<<", Priority: 4, Left: true, code: opShl},
	">>": {Kind: OpBinary, Name: ">>", Priority: 4, Left: true, code: opShr},
	"+":  {Kind: OpBinary, Name: "+", Priority: 3, Left: true, code: opAdd},
	"-":  {Kind: OpBinary, Name: "-", Priority: 3, Left: true, code: opSub},
	"/":  {Kind: OpBinary, Name: "/", Priority: 2, Left: true, code: opDiv},
	"*":  {Kind: OpBinary, Name: "×", Priority: 2, Left: true, code: opMul},
	"%":  {Kind: OpBinary, Name: "%", Priority: 2, Left: true, code: opMod},
	"^":  {Kind: OpBinary, Name: "pow", Priority: 5, Left: false, code: opPow},
}

var (
	unaryPlus  = Operator{Kind: OpUnary, Name: "pos", Priority: 1, Left: true, code: opPos}
	unaryMinus = Operator{Kind: OpUnary, Name: "neg", Priority: 1, Left: true, code: opNeg}
)

// Resolve finds the operator a token denotes. + and - are unary when the
// token is a UnaryOperator and binary otherwise. Function tokens resolve
// through the function table. If the token names nothing, the result has
// Kind OpUnknown.
func Resolve(tok Token) Operator {
	var op Operator
	switch {
	case tok.Kind == UnaryOperator && tok.Text == "+":
		op = unaryPlus
	case tok.Kind == UnaryOperator && tok.Text == "-":
		op = unaryMinus
	case tok.Kind == Function:
		op = funcs[tok.Text]
	default:
		op = table[tok.Text]
	}
	if op.Kind == OpUnknown {
		return Operator{Name: tok.Text, Symbol: tok.Text}
	}
	op.Symbol = tok.Text
	return op
}

// IsFunc returns whether the operator is a named function.
func (o Operator) IsFunc() bool {
	return o.code == opCall1 || o.code == opCall2
}

// Arity returns the number of operands the operator takes.
func (o Operator) Arity() int {
	switch o.Kind {
	case OpUnary:
		return 1
	case OpBinary:
		return 2
	default:
		return 0
	}
}

// Compare orders o against p by priority. The second result is false if
// either operator is unknown or right-associative; such operators are not
// comparable, so the converter never pops on their account. Otherwise the
// first result is negative, zero, or positive as o's priority is less than,
// equal to, or greater than p's.
func (o Operator) Compare(p Operator) (int, bool) {
	if o.Kind == OpUnknown || p.Kind == OpUnknown || !o.Left || !p.Left {
		return 0, false
	}
	switch {
	case o.Priority < p.Priority:
		return -1, true
	case o.Priority > p.Priority:
		return 1, true
	default:
		return 0, true
	}
}

// Equal returns whether o and p are both left-associative with the same
// priority.
func (o Operator) Equal(p Operator) bool {
	c, ok := o.Compare(p)
	return ok && c == 0
}

// Apply1 applies a unary operator. Panics if o is not unary.
func (o Operator) Apply1(x Number) Number {
	switch o.code {
	case opPos:
		return x
	case opNeg:
		return -x
	case opCall1:
		return o.f1(x)
	default:
		panic("rpn: Apply1 on " + o.Kind.String() + " operator " + o.Name)
	}
}

// Apply2 applies a binary operator to left and right operands. Panics if o
// is not binary.
func (o Operator) Apply2(x, y Number) Number {
	switch o.code {
	case opShl:
		return Number(toInt32(x) << shiftCount(y))
	case opShr:
		return Number(toInt32(x) >> shiftCount(y))
	case opAdd:
		return x + y
	case opSub:
		return x - y
	case opDiv:
		return x / y
	case opMul:
		return x * y
	case opMod:
		return Number(math.Mod(float64(x), float64(y)))
	case opPow:
		return Number(math.Pow(float64(x), float64(y)))
	case opCall2:
		return o.f2(x, y)
	default:
		panic("rpn: Apply2 on " + o.Kind.String() + " operator " + o.Name)
	}
}

// toInt32 truncates x toward zero, saturating at the int32 bounds. NaN is 0.
func toInt32(x Number) int32 {
	f := float64(x)
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt32:
		return math.MaxInt32
	case f <= math.MinInt32:
		return math.MinInt32
	}
	return int32(f)
}

// shiftCount converts a shift operand with toInt32 and keeps its low five
// bits, so negative or oversized counts wrap instead of panicking.
func shiftCount(y Number) uint32 {
	return uint32(toInt32(y)) & 31
}

// String returns the operator as it appears in a postfix program. Unary
// signs use their names so they can't be mistaken for binary operators.
func (o Operator) String() string {
	if o.Kind == OpUnary && !o.IsFunc() {
		return o.Name
	}
	if o.Symbol == "" {
		return o.Name
	}
	return o.Symbol
}
