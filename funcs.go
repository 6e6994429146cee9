package rpn

import (
	"math"
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// funcprec is the precision in bits of functions computed with big floats.
const funcprec = 64

// funcs is the table of named functions. Functions bind more tightly than
// any operator, so "sqrt 4 + 5" is "(sqrt 4) + 5".
var funcs = map[string]Operator{
	"abs":   Monadic("abs", math.Abs),
	"sqrt":  Monadic("sqrt", math.Sqrt),
	"floor": Monadic("floor", math.Floor),
	"ceil":  Monadic("ceil", math.Ceil),
	"sin":   Monadic("sin", math.Sin),
	"cos":   Monadic("cos", math.Cos),
	"tan":   Monadic("tan", math.Tan),
	"exp":   Monadic("exp", exp),
	"ln":    Monadic("ln", ln),

	"max":   Dyadic("max", math.Max),
	"min":   Dyadic("min", math.Min),
	"hypot": Dyadic("hypot", math.Hypot),
	"atan2": Dyadic("atan2", math.Atan2),
}

// Monadic wraps a function of one variable into a function operator. f
// computes in float64; its result is rounded to a Number.
func Monadic(name string, f func(float64) float64) Operator {
	return Operator{
		Kind:     OpUnary,
		Name:     name,
		Priority: 0,
		Left:     true,
		code:     opCall1,
		f1:       func(x Number) Number { return Number(f(float64(x))) },
	}
}

// Dyadic wraps a function of two variables into a function operator. f
// computes in float64; its result is rounded to a Number.
func Dyadic(name string, f func(float64, float64) float64) Operator {
	return Operator{
		Kind:     OpBinary,
		Name:     name,
		Priority: 0,
		Left:     true,
		code:     opCall2,
		f2:       func(x, y Number) Number { return Number(f(float64(x), float64(y))) },
	}
}

// Funcs returns the names of the available functions.
func Funcs() []string {
	names := make([]string, 0, len(funcs))
	for k := range funcs {
		names = append(names, k)
	}
	sortstrs(names)
	return names
}

// sortstrs sorts a string slice without using package sort because that has
// reflection and allocation problems.
func sortstrs(names []string) {
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && names[j] < names[j-1]; j-- {
			names[j], names[j-1] = names[j-1], names[j]
		}
	}
}

// exp computes e^x with big floats. Arguments whose result can't be a
// finite nonzero float32 skip the big computation.
func exp(x float64) float64 {
	switch {
	case math.IsNaN(x), x > 89:
		return math.Exp(x)
	case x < -104:
		return 0
	case x == 0:
		return 1
	}
	z := new(big.Float).SetPrec(funcprec)
	bigfloat.Exp(z, new(big.Float).SetPrec(funcprec).SetFloat64(x))
	r, _ := z.Float64()
	return r
}

// ln computes the natural logarithm of x with big floats. One, zero,
// negative, and non-finite arguments take the float64 result.
func ln(x float64) float64 {
	if x <= 0 || x == 1 || math.IsNaN(x) || math.IsInf(x, 0) {
		return math.Log(x)
	}
	z := new(big.Float).SetPrec(funcprec)
	bigfloat.Log(z, new(big.Float).SetPrec(funcprec).SetFloat64(x))
	r, _ := z.Float64()
	return r
}
