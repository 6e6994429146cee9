package rpn

// Evaluate drains a postfix program and returns its value. Numbers are
// pushed to a value stack; each operator pops its operands, the right
// operand first, and pushes its result. Exactly one value must remain at the
// end.
//
// Evaluate consumes e. Evaluating it again gives ErrEmptyExpression.
func Evaluate(e *Expression) (Number, error) {
	var stack []Number
	for {
		l, ok := e.next()
		if !ok {
			break
		}
		if !l.IsOp() {
			stack = append(stack, l.Num)
			continue
		}
		op := l.Op
		n := op.Arity()
		if len(stack) < n {
			return 0, &ArityError{Op: op.String(), Want: n, Have: len(stack)}
		}
		switch n {
		case 1:
			k := len(stack) - 1
			stack[k] = op.Apply1(stack[k])
		case 2:
			k := len(stack) - 2
			stack[k] = op.Apply2(stack[k], stack[k+1])
			stack = stack[:k+1]
		default:
			panic("rpn: operator " + op.Name + " of kind " + op.Kind.String() + " in expression")
		}
	}
	switch len(stack) {
	case 0:
		return 0, ErrEmptyExpression
	case 1:
		return stack[0], nil
	default:
		return 0, &LeftoverError{Count: len(stack)}
	}
}
