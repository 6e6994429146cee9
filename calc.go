package rpn

import (
	"github.com/rs/zerolog"
)

// Calculator runs the whole pipeline: tokenize, validate, convert, evaluate.
// A Calculator holds no state between evaluations and is safe to share.
type Calculator struct {
	tok  Tokenizer
	val  *Validator
	conv Converter
	log  zerolog.Logger
	// ownTok and ownConv mark stages not set by options, so that WithLogger
	// reaches them regardless of option order.
	ownTok, ownConv bool
}

// Option is an option for creating a Calculator.
type Option interface {
	apply(*Calculator)
}

type (
	tokopt  struct{ t Tokenizer }
	valopt  struct{ v *Validator }
	convopt struct{ c Converter }
	logopt  struct{ l zerolog.Logger }
)

// WithTokenizer sets the tokenizer. The default is a Lexer, which nil also
// selects.
func WithTokenizer(t Tokenizer) Option {
	return tokopt{t}
}

func (o tokopt) apply(c *Calculator) {
	c.tok = o.t
	c.ownTok = o.t == nil
}

// WithValidator sets the validator. The default applies DefaultRules. Pass
// NewValidator() to skip validation.
func WithValidator(v *Validator) Option {
	return valopt{v}
}

func (o valopt) apply(c *Calculator) {
	c.val = o.v
}

// WithConverter sets the converter. The default is a ShuntingYard, which nil
// also selects.
func WithConverter(conv Converter) Option {
	return convopt{conv}
}

func (o convopt) apply(c *Calculator) {
	c.conv = o.c
	c.ownConv = o.c == nil
}

// WithLogger sets the logger for the calculator and its default stages. The
// default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return logopt{l}
}

func (o logopt) apply(c *Calculator) {
	c.log = o.l
}

// New creates a calculator. The given options are applied in order.
func New(opts ...Option) *Calculator {
	c := Calculator{
		val:     defaultValidator,
		log:     zerolog.Nop(),
		ownTok:  true,
		ownConv: true,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt.apply(&c)
	}
	if c.ownTok {
		c.tok = &Lexer{Log: c.log}
	}
	if c.ownConv {
		c.conv = &ShuntingYard{Log: c.log}
	}
	if c.val == nil {
		c.val = NewValidator()
	}
	return &c
}

// Postfix tokenizes, validates, and converts src without evaluating it.
func (c *Calculator) Postfix(src string) (*Expression, error) {
	toks, err := c.tok.Tokenize(src)
	if err != nil {
		return nil, err
	}
	toks, err = c.val.Validate(toks)
	if err != nil {
		return nil, err
	}
	return c.conv.Convert(toks)
}

// Eval computes the value of src. The error, if any, is the first error from
// any stage.
func (c *Calculator) Eval(src string) (Number, error) {
	e, err := c.Postfix(src)
	if err != nil {
		c.log.Debug().Str("src", src).Err(err).Msg("rejected")
		return 0, err
	}
	c.log.Debug().Str("src", src).Stringer("postfix", e).Msg("evaluating")
	r, err := Evaluate(e)
	if err != nil {
		c.log.Debug().Str("src", src).Err(err).Msg("evaluation failed")
		return 0, err
	}
	return r, nil
}

// EvalString is a shortcut to evaluate src with a default Calculator.
func EvalString(src string) (Number, error) {
	return New().Eval(src)
}
