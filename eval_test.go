package rpn_test

import (
	"errors"
	"math"
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/zephyrtronium/rpn"
)

func TestEval(t *testing.T) {
	cases := []struct {
		name string
		src  string
		r    rpn.Number
	}{
		{"num", "1", 1},
		{"float", "1.5", 1.5},
		{"plus", "+4", 4},
		{"neg", "-4", -4},
		{"neg-neg", "--4", 4},
		{"add", "4+5+6", 4 + 5 + 6},
		{"sub", "4-5-6", 4 - 5 - 6},
		{"mul", "4*5*6", 4 * 5 * 6},
		{"div", "8/4/2", 1},
		{"div-frac", "7/2", 3.5},
		{"neg-div", "-7/2", -3.5},
		{"precedence", "2+2*2", 6},
		{"parens", "(2+2)*2", 8},
		{"sub-neg", "1--1", 2},
		{"spaced", " 1 - -1 ", 2},
		{"pow", "2^10", 1024},
		{"pow-right", "2^3^2", 512},
		{"pow-neg", "-2^2", -4},
		{"mul-pow", "2*3^2", 18},
		{"pow-greedy", "2^3+1", 16},
		{"shl", "1<<4", 16},
		{"shr", "256>>4", 16},
		{"shift-add", "1<<3+1", 16},
		{"shift-trunc", "5.9>>1.9", 2},
		{"mixed", "(1+-1.1)*2/3>>4<<5", 0},
		{"sqrt", "sqrt(16)*2", 8},
		{"sqrt-bare", "sqrt 16 + 1", 5},
		{"abs", "abs(-3)", 3},
		{"max-min", "max(1, 2) + min(3, 4)", 5},
		{"max-exprs", "max(1+2, 2*2)", 4},
		{"hypot", "hypot(3, 4)", 5},
		{"nested-call", "max(sqrt(4), -1)", 2},
		{"exp", "exp(0)", 1},
		{"ln", "ln(1)", 0},
		{"floor-ceil", "floor(1.5) + ceil(1.5)", 3},
		{"div-zero", "1/0", rpn.Number(math.Inf(1))},
		{"overflow", "99999999999999999999999999999999999999999", rpn.Number(math.Inf(1))},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := rpn.EvalString(c.src)
			if err != nil {
				t.Fatalf("%q failed: %v", c.src, err)
			}
			if r != c.r {
				t.Errorf("%q: want %g, got %g", c.src, c.r, r)
			}
		})
	}
}

func TestEvaluate(t *testing.T) {
	plus := rpn.Resolve(rpn.Token{Kind: rpn.BinaryOperator, Text: "+"})
	e := rpn.NewExpression(rpn.NumLexem(1), rpn.NumLexem(1), rpn.OpLexem(plus))
	if got := e.String(); got != "1 1 +" {
		t.Errorf("want program %q, got %q", "1 1 +", got)
	}
	r, err := rpn.Evaluate(e)
	if err != nil {
		t.Fatal(err)
	}
	if r != 2 {
		t.Errorf("want 2, got %g", r)
	}
	if e.Len() != 0 {
		t.Errorf("expression not drained: %d lexems left", e.Len())
	}
	// Expressions are single use.
	if _, err := rpn.Evaluate(e); !errors.Is(err, rpn.ErrEmptyExpression) {
		t.Errorf("second evaluation: want %v, got %v", rpn.ErrEmptyExpression, err)
	}
}

func TestEvaluateOperandOrder(t *testing.T) {
	cases := []struct {
		op string
		r  rpn.Number
	}{
		{"-", 3},
		{"/", 2.5},
		{"^", 25},
		{"<<", 20},
		{">>", 1},
	}
	for _, c := range cases {
		t.Run(c.op, func(t *testing.T) {
			op := rpn.Resolve(rpn.Token{Kind: rpn.BinaryOperator, Text: c.op})
			e := rpn.NewExpression(rpn.NumLexem(5), rpn.NumLexem(2), rpn.OpLexem(op))
			r, err := rpn.Evaluate(e)
			if err != nil {
				t.Fatal(err)
			}
			if r != c.r {
				t.Errorf("5 2 %s: want %g, got %g", c.op, c.r, r)
			}
		})
	}
}

func TestEvaluateErrors(t *testing.T) {
	plus := rpn.Resolve(rpn.Token{Kind: rpn.BinaryOperator, Text: "+"})
	neg := rpn.Resolve(rpn.Token{Kind: rpn.UnaryOperator, Text: "-"})
	t.Run("binary-none", func(t *testing.T) {
		_, err := rpn.Evaluate(rpn.NewExpression(rpn.OpLexem(plus)))
		var aerr *rpn.ArityError
		if !errors.As(err, &aerr) {
			t.Fatalf("%#v is not an *ArityError", err)
		}
		if aerr.Want != 2 || aerr.Have != 0 {
			t.Errorf("wrong arity error: %v", aerr)
		}
	})
	t.Run("binary-one", func(t *testing.T) {
		_, err := rpn.Evaluate(rpn.NewExpression(rpn.NumLexem(1), rpn.OpLexem(plus)))
		var aerr *rpn.ArityError
		if !errors.As(err, &aerr) {
			t.Fatalf("%#v is not an *ArityError", err)
		}
		if aerr.Want != 2 || aerr.Have != 1 {
			t.Errorf("wrong arity error: %v", aerr)
		}
	})
	t.Run("unary-none", func(t *testing.T) {
		_, err := rpn.Evaluate(rpn.NewExpression(rpn.OpLexem(neg)))
		var aerr *rpn.ArityError
		if !errors.As(err, &aerr) {
			t.Fatalf("%#v is not an *ArityError", err)
		}
		if aerr.Want != 1 || aerr.Op != "neg" {
			t.Errorf("wrong arity error: %v", aerr)
		}
	})
	t.Run("leftover", func(t *testing.T) {
		_, err := rpn.Evaluate(rpn.NewExpression(rpn.NumLexem(1), rpn.NumLexem(2)))
		var lerr *rpn.LeftoverError
		if !errors.As(err, &lerr) {
			t.Fatalf("%#v is not a *LeftoverError", err)
		}
		if lerr.Count != 2 {
			t.Errorf("want 2 leftovers, got %d", lerr.Count)
		}
	})
	t.Run("empty", func(t *testing.T) {
		_, err := rpn.Evaluate(rpn.NewExpression())
		if !errors.Is(err, rpn.ErrEmptyExpression) {
			t.Errorf("want %v, got %v", rpn.ErrEmptyExpression, err)
		}
	})
}

func TestOpLexemUnknown(t *testing.T) {
	unknown := rpn.Resolve(rpn.Token{Kind: rpn.BinaryOperator, Text: "?"})
	defer func() {
		if recover() == nil {
			t.Error("no panic creating a lexem from an unknown operator")
		}
	}()
	e := rpn.NewExpression(rpn.OpLexem(unknown))
	r, err := rpn.Evaluate(e)
	t.Errorf("unknown operator evaluated to %g, %v", r, err)
}

func TestEvalStringErrors(t *testing.T) {
	cases := []struct {
		name  string
		src   string
		check func(error) bool
	}{
		{"empty", "", func(err error) bool { return errors.Is(err, rpn.ErrEmptyExpression) }},
		{"empty-parens", "()", func(err error) bool { return errors.Is(err, rpn.ErrEmptyExpression) }},
		{"sign-only", "-", func(err error) bool { return errors.As(err, new(*rpn.ArityError)) }},
		{"dangling", "1+", func(err error) bool { return errors.As(err, new(*rpn.ArityError)) }},
		{"group-sep", "(1,1 1)", func(err error) bool { return errors.As(err, new(*rpn.LeftoverError)) }},
		{"juxtaposed", "1 2", func(err error) bool { return errors.As(err, new(*rpn.LeftoverError)) }},
		{"unmatched", "1 & 2", func(err error) bool { return errors.As(err, new(*rpn.UnmatchedCharError)) }},
		{"adjacent", "1*/2", func(err error) bool { return errors.As(err, new(*rpn.ValidationError)) }},
		{"unbalanced", "())", func(err error) bool { return errors.Is(err, rpn.ErrUnbalancedParen) }},
		{"unknown-func", "foo(2)", func(err error) bool { return errors.As(err, new(*rpn.FunctionError)) }},
		{"call-arity", "max(1)", func(err error) bool { return errors.As(err, new(*rpn.ArityError)) }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := rpn.EvalString(c.src)
			if err == nil {
				t.Fatalf("%q gave %g with no error", c.src, r)
			}
			if !c.check(err) {
				t.Errorf("%q gave the wrong error: %#v", c.src, err)
			}
		})
	}
}

// tree is a randomly generated expression.
type tree struct {
	lit   string
	op    string
	unary bool
	l, r  *tree
}

var genops = []string{"+", "-", "*", "/", "<<", ">>", "^"}

func gentree(rng *rand.Rand, depth int) *tree {
	if depth == 0 || rng.Intn(4) == 0 {
		if rng.Intn(2) == 0 {
			return &tree{lit: strconv.Itoa(rng.Intn(100))}
		}
		return &tree{lit: strconv.Itoa(rng.Intn(100)) + "." + strconv.Itoa(rng.Intn(100))}
	}
	if rng.Intn(5) == 0 {
		op := "-"
		if rng.Intn(2) == 0 {
			op = "+"
		}
		return &tree{op: op, unary: true, l: gentree(rng, depth-1)}
	}
	return &tree{op: genops[rng.Intn(len(genops))], l: gentree(rng, depth-1), r: gentree(rng, depth-1)}
}

// String writes the tree with every operation in parentheses.
func (t *tree) String() string {
	var b strings.Builder
	t.fmt(&b)
	return b.String()
}

func (t *tree) fmt(b *strings.Builder) {
	switch {
	case t.lit != "":
		b.WriteString(t.lit)
	case t.unary:
		b.WriteString("(" + t.op)
		t.l.fmt(b)
		b.WriteByte(')')
	default:
		b.WriteByte('(')
		t.l.fmt(b)
		b.WriteString(t.op)
		t.r.fmt(b)
		b.WriteByte(')')
	}
}

// eval computes the tree's value directly with the same operators.
func (t *tree) eval() rpn.Number {
	switch {
	case t.lit != "":
		f, _ := strconv.ParseFloat(t.lit, 32)
		return rpn.Number(f)
	case t.unary:
		return rpn.Resolve(rpn.Token{Kind: rpn.UnaryOperator, Text: t.op}).Apply1(t.l.eval())
	default:
		l, r := t.l.eval(), t.r.eval()
		return rpn.Resolve(rpn.Token{Kind: rpn.BinaryOperator, Text: t.op}).Apply2(l, r)
	}
}

func TestEvalParenthesized(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 2000; i++ {
		tr := gentree(rng, 6)
		src := tr.String()
		want := tr.eval()
		got, err := rpn.EvalString(src)
		if err != nil {
			t.Fatalf("%q failed: %v", src, err)
		}
		if got != want && !(math.IsNaN(float64(got)) && math.IsNaN(float64(want))) {
			t.Errorf("%q: want %g, got %g", src, want, got)
		}
	}
}
