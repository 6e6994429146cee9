package rpn

import (
	"errors"
	"fmt"
	"strconv"
)

// UnmatchedCharError is an error indicating a character that begins no
// token. It implements InputError.
type UnmatchedCharError struct {
	// Char is the unrecognized character.
	Char rune
	// Col is the position of the character.
	Col int
}

func (err *UnmatchedCharError) Error() string {
	return errpos(err.Col, "unrecognized character "+strconv.QuoteRune(err.Char))
}

func (err *UnmatchedCharError) Pos() int {
	return err.Col
}

// ValidationError is an error indicating that a validation rule rejected
// the token sequence. It implements InputError.
type ValidationError struct {
	// Rule is the name of the rule that failed.
	Rule string
	// Col is the position of the first token the rule rejected, or 0 if the
	// rule did not say.
	Col int
}

func (err *ValidationError) Error() string {
	return errpos(err.Col, "validation failed: "+err.Rule)
}

func (err *ValidationError) Pos() int {
	return err.Col
}

// Grouping errors wrapped by ParenError.
var (
	// ErrMissingSeparator means an argument separator appeared with no
	// open parenthesis before it.
	ErrMissingSeparator = errors.New("missing argument separator or open parenthesis")
	// ErrUnbalancedParen means an open parenthesis was never closed.
	ErrUnbalancedParen = errors.New("unbalanced parenthesis")
	// ErrMissingOpenParen means a close parenthesis has no matching open
	// parenthesis. It unwraps to ErrUnbalancedParen.
	ErrMissingOpenParen = fmt.Errorf("%w: missing open parenthesis", ErrUnbalancedParen)
)

// ParenError is an error indicating mismatched grouping in the input. It
// implements InputError and unwraps to one of ErrMissingSeparator,
// ErrMissingOpenParen, or ErrUnbalancedParen.
type ParenError struct {
	// Col is the position of the token that exposed the mismatch.
	Col int
	// Err is the kind of mismatch.
	Err error
}

func (err *ParenError) Error() string {
	return errpos(err.Col, err.Err.Error())
}

func (err *ParenError) Unwrap() error {
	return err.Err
}

func (err *ParenError) Pos() int {
	return err.Col
}

// OperatorError is an error indicating an operator token that is not in the
// operator table. It implements InputError.
type OperatorError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the token that was not understood.
	Operator string
	// Unary is whether the token was a unary operator.
	Unary bool
}

func (err *OperatorError) Error() string {
	s := "binary"
	if err.Unary {
		s = "unary"
	}
	return errpos(err.Col, "unknown "+s+" operator "+strconv.Quote(err.Operator))
}

func (err *OperatorError) Pos() int {
	return err.Col
}

// FunctionError is an error indicating a call to a function that does not
// exist. It implements InputError.
type FunctionError struct {
	// Col is the position of the function name.
	Col int
	// Name is the name that was called.
	Name string
}

func (err *FunctionError) Error() string {
	return errpos(err.Col, "unknown function "+strconv.Quote(err.Name))
}

func (err *FunctionError) Pos() int {
	return err.Col
}

// ErrEmptyExpression is the error evaluating an expression that produces no
// value, including an expression that has already been evaluated.
var ErrEmptyExpression = errors.New("nothing to evaluate")

// ArityError is an error indicating an operator with too few operands on the
// stack.
type ArityError struct {
	// Op is the name of the operator.
	Op string
	// Want is the number of operands the operator takes.
	Want int
	// Have is the number of operands that were available.
	Have int
}

func (err *ArityError) Error() string {
	return "operator " + err.Op + " needs " + strconv.Itoa(err.Want) + " operands, have " + strconv.Itoa(err.Have)
}

// LeftoverError is an error indicating values left on the stack after the
// last operator, i.e. operands that nothing consumed.
type LeftoverError struct {
	// Count is the number of values left on the stack.
	Count int
}

func (err *LeftoverError) Error() string {
	return strconv.Itoa(err.Count) + " leftover operands"
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting
// from invalid input before evaluation implements InputError.
type InputError interface {
	error
	// Pos returns the 1-based rune column of the input that caused the
	// error, or 0 if it is unknown.
	Pos() int
}

var (
	_ InputError = (*UnmatchedCharError)(nil)
	_ InputError = (*ValidationError)(nil)
	_ InputError = (*ParenError)(nil)
	_ InputError = (*OperatorError)(nil)
	_ InputError = (*FunctionError)(nil)
)
