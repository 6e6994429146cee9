package rpn

// Rule is a named check over a token sequence. Check may rewrite the tokens
// in place and returns the index of the first token it rejects, or -1 if it
// accepts the sequence.
type Rule struct {
	Name  string
	Check func(toks []Token) int
}

// RetagBinary marks each sign that follows a number or a close parenthesis
// as a binary operator. It never rejects.
var RetagBinary = Rule{
	Name: "binary signs",
	Check: func(toks []Token) int {
		for i := 1; i < len(toks); i++ {
			if toks[i].Kind != UnaryOperator {
				continue
			}
			if prev := toks[i-1]; prev.isNumber() || prev.Kind == CloseParen {
				toks[i].Kind = BinaryOperator
			}
		}
		return -1
	},
}

// NoAdjacentBinary rejects a binary operator that directly follows another.
var NoAdjacentBinary = Rule{
	Name: "adjacent binary operators",
	Check: func(toks []Token) int {
		for i := 1; i < len(toks); i++ {
			if toks[i].Kind == BinaryOperator && toks[i-1].Kind == BinaryOperator {
				return i
			}
		}
		return -1
	},
}

// DefaultRules are the rules Validate applies.
var DefaultRules = []Rule{RetagBinary, NoAdjacentBinary}

// Validator applies rules to token sequences in order.
type Validator struct {
	rules []Rule
}

// NewValidator creates a validator with the given rules. With no rules, the
// validator accepts every sequence unchanged.
func NewValidator(rules ...Rule) *Validator {
	return &Validator{rules: append([]Rule(nil), rules...)}
}

// Rules returns the names of the validator's rules in order.
func (v *Validator) Rules() []string {
	names := make([]string, len(v.rules))
	for i, r := range v.rules {
		names[i] = r.Name
	}
	return names
}

// Validate runs each rule over a copy of toks. Later rules see earlier
// rules' rewrites. The first rule to reject the tokens produces a
// *ValidationError. toks itself is never modified.
func (v *Validator) Validate(toks []Token) ([]Token, error) {
	out := append([]Token(nil), toks...)
	for _, r := range v.rules {
		if i := r.Check(out); i >= 0 {
			col := 0
			if i < len(out) {
				col = out[i].Col
			}
			return nil, &ValidationError{Rule: r.Name, Col: col}
		}
	}
	return out, nil
}

var defaultValidator = NewValidator(DefaultRules...)

// Validate applies DefaultRules to toks.
func Validate(toks []Token) ([]Token, error) {
	return defaultValidator.Validate(toks)
}
