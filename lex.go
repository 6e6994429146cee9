package rpn

import (
	"regexp"
	"unicode/utf8"

	"github.com/rs/zerolog"
)

// pattern associates a token kind with the expression that recognizes it.
type pattern struct {
	kind TokenKind
	re   *regexp.Regexp
}

// patterns is the ordered list of token patterns. The first pattern that
// matches at the scan position wins, so floats must precede integers, and
// the two-character shifts live in the same pattern as the other binary
// operators.
var patterns = []pattern{
	{OpenParen, regexp.MustCompile(`^\(`)},
	{CloseParen, regexp.MustCompile(`^\)`)},
	{Function, regexp.MustCompile(`^[a-zA-Z]+`)},
	{BinaryOperator, regexp.MustCompile(`^(?:[/*^]|<<|>>)`)},
	{UnaryOperator, regexp.MustCompile(`^[+\-]`)},
	{NumberFloat, regexp.MustCompile(`^\d+\.\d+`)},
	{NumberInt, regexp.MustCompile(`^\d+`)},
	{Separator, regexp.MustCompile(`^,`)},
	{Whitespace, regexp.MustCompile(`^\s+`)},
}

// Tokenizer splits input text into tokens.
type Tokenizer interface {
	Tokenize(text string) ([]Token, error)
}

// Lexer is the regular expression tokenizer.
type Lexer struct {
	// Log receives a debug event for each token.
	Log zerolog.Logger
}

var _ Tokenizer = (*Lexer)(nil)

// Tokenize splits text into tokens using a silent Lexer.
func Tokenize(text string) ([]Token, error) {
	l := Lexer{Log: zerolog.Nop()}
	return l.Tokenize(text)
}

// Tokenize splits text into tokens in input order. Whitespace separates
// tokens but is not returned. If no pattern matches at some position, the
// result is an *UnmatchedCharError for the character there.
func (l *Lexer) Tokenize(text string) ([]Token, error) {
	var toks []Token
	col := 1
	for rest := text; rest != ""; {
		tok, n := match(rest)
		if n == 0 {
			r, _ := utf8.DecodeRuneInString(rest)
			return nil, &UnmatchedCharError{Char: r, Col: col}
		}
		tok.Col = col
		rest = rest[n:]
		col += utf8.RuneCountInString(tok.Text)
		if tok.Kind == Whitespace {
			continue
		}
		l.Log.Debug().Stringer("kind", tok.Kind).Str("text", tok.Text).Int("col", tok.Col).Msg("token")
		toks = append(toks, tok)
	}
	return toks, nil
}

// match finds the first pattern matching at the start of s. The second
// result is the length in bytes of the match, or 0 if nothing matched.
func match(s string) (Token, int) {
	for _, p := range patterns {
		loc := p.re.FindStringIndex(s)
		if loc == nil || loc[1] == 0 {
			continue
		}
		return Token{Kind: p.kind, Text: s[:loc[1]]}, loc[1]
	}
	return Token{}, 0
}
