package rpn

import (
	"strconv"

	"github.com/rs/zerolog"
)

// Converter reorders a validated token sequence into a postfix program.
type Converter interface {
	Convert(toks []Token) (*Expression, error)
}

// ShuntingYard converts infix tokens to postfix with Dijkstra's shunting-yard
// algorithm.
type ShuntingYard struct {
	// Log receives the finished program at debug level and a warning for
	// each whitespace token, which Tokenize never produces.
	Log zerolog.Logger
}

var _ Converter = (*ShuntingYard)(nil)

// Convert converts toks to postfix using a silent ShuntingYard.
func Convert(toks []Token) (*Expression, error) {
	s := ShuntingYard{Log: zerolog.Nop()}
	return s.Convert(toks)
}

// pending is an entry on the conversion stack. op is unknown for
// parentheses.
type pending struct {
	tok Token
	op  Operator
}

// Convert reorders toks into a postfix program. Numbers go straight to the
// output; operators and function names wait on a stack until precedence,
// a separator, or a close parenthesis releases them. Convert never computes
// anything.
func (s *ShuntingYard) Convert(toks []Token) (*Expression, error) {
	var stack []pending
	out := &Expression{q: make([]Lexem, 0, len(toks))}
	// unwind moves operators to the output until an open parenthesis is on
	// top of the stack. Returns false if the stack empties first.
	unwind := func() bool {
		for len(stack) > 0 {
			top := stack[len(stack)-1]
			if top.tok.Kind == OpenParen {
				return true
			}
			out.Push(OpLexem(top.op))
			stack = stack[:len(stack)-1]
		}
		return false
	}
	for _, tok := range toks {
		switch tok.Kind {
		case NumberInt, NumberFloat:
			out.Push(NumLexem(number(tok.Text)))
		case Function:
			op := Resolve(tok)
			if op.Kind == OpUnknown {
				return nil, &FunctionError{Col: tok.Col, Name: tok.Text}
			}
			stack = append(stack, pending{tok, op})
		case UnaryOperator:
			// Unary operators apply right to left, so they never release
			// anything already on the stack.
			op := Resolve(tok)
			if op.Kind != OpUnary {
				return nil, &OperatorError{Col: tok.Col, Operator: tok.Text, Unary: true}
			}
			stack = append(stack, pending{tok, op})
		case BinaryOperator:
			op := Resolve(tok)
			if op.Kind != OpBinary {
				return nil, &OperatorError{Col: tok.Col, Operator: tok.Text}
			}
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.op.Kind == OpUnknown {
					break
				}
				// Incomparable operators, i.e. right-associative ones,
				// always wait.
				if c, ok := op.Compare(top.op); !ok || c < 0 {
					break
				}
				out.Push(OpLexem(top.op))
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, pending{tok: tok, op: op})
		case OpenParen:
			stack = append(stack, pending{tok: tok})
		case Separator:
			if !unwind() {
				return nil, &ParenError{Col: tok.Col, Err: ErrMissingSeparator}
			}
		case CloseParen:
			if !unwind() {
				return nil, &ParenError{Col: tok.Col, Err: ErrMissingOpenParen}
			}
			stack = stack[:len(stack)-1]
			if k := len(stack) - 1; k >= 0 && stack[k].tok.Kind == Function {
				out.Push(OpLexem(stack[k].op))
				stack = stack[:k]
			}
		case Whitespace:
			s.Log.Warn().Int("col", tok.Col).Msg("whitespace token in converter input")
		default:
			panic("rpn: unknown token: " + tok.String())
		}
	}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.tok.Kind == OpenParen {
			return nil, &ParenError{Col: top.tok.Col, Err: ErrUnbalancedParen}
		}
		out.Push(OpLexem(top.op))
		stack = stack[:len(stack)-1]
	}
	s.Log.Debug().Stringer("postfix", out).Msg("converted")
	return out, nil
}

// number parses a number token. Literals too large for a Number become
// infinity.
func number(text string) Number {
	f, err := strconv.ParseFloat(text, 32)
	if err != nil && !isRange(err) {
		panic("rpn: invalid number: " + text + " (" + err.Error() + ")")
	}
	return Number(f)
}

func isRange(err error) bool {
	ne, ok := err.(*strconv.NumError)
	return ok && ne.Err == strconv.ErrRange
}
