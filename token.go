package rpn

import "strconv"

// TokenKind is the category of a token.
type TokenKind int8

const (
	// NumberInt is a run of decimal digits.
	NumberInt TokenKind = iota
	// NumberFloat is a decimal number with a fractional part, e.g. 1.5.
	NumberFloat
	// UnaryOperator is a sign. The tokenizer marks every + and - unary;
	// validation decides which of them are binary.
	UnaryOperator
	// BinaryOperator is an infix operator.
	BinaryOperator
	// Function is a function name.
	Function
	// OpenParen is (.
	OpenParen
	// CloseParen is ).
	CloseParen
	// Separator separates function arguments.
	Separator
	// Whitespace is a run of spaces. The tokenizer never emits it.
	Whitespace
)

func (k TokenKind) String() string {
	switch k {
	case NumberInt:
		return "NumberInt"
	case NumberFloat:
		return "NumberFloat"
	case UnaryOperator:
		return "UnaryOperator"
	case BinaryOperator:
		return "BinaryOperator"
	case Function:
		return "Function"
	case OpenParen:
		return "OpenParen"
	case CloseParen:
		return "CloseParen"
	case Separator:
		return "Separator"
	case Whitespace:
		return "Whitespace"
	default:
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Token is a classified piece of input text.
type Token struct {
	// Kind is the token's category.
	Kind TokenKind
	// Text is the exact text matched.
	Text string
	// Col is the 1-based rune column of the start of the token in the
	// original input. Zero means unknown.
	Col int
}

func (t Token) String() string {
	return t.Kind.String() + ":" + t.Text + "@" + strconv.Itoa(t.Col)
}

// isNumber returns whether the token is a number literal.
func (t Token) isNumber() bool {
	return t.Kind == NumberInt || t.Kind == NumberFloat
}
