package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/zephyrtronium/rpn"
)

// printer writes results and errors.
type printer struct {
	w       io.Writer
	format  string
	postfix bool

	result lipgloss.Style
	rpn    lipgloss.Style
	err    lipgloss.Style
	caret  lipgloss.Style
}

func newPrinter(w io.Writer, cfg config) *printer {
	p := printer{w: w, format: cfg.Format, postfix: cfg.Postfix}
	if !cfg.Color {
		return &p
	}
	r := lipgloss.NewRenderer(w)
	p.result = r.NewStyle().Foreground(lipgloss.Color("#10B981")).Bold(true)
	p.rpn = r.NewStyle().Foreground(lipgloss.Color("#94A3B8")).Italic(true)
	p.err = r.NewStyle().Foreground(lipgloss.Color("#EF4444"))
	p.caret = r.NewStyle().Foreground(lipgloss.Color("#F59E0B")).Bold(true)
	return &p
}

// eval evaluates src and prints its value or its error. Returns whether
// evaluation succeeded.
func (p *printer) eval(calc *rpn.Calculator, src string) bool {
	e, err := calc.Postfix(src)
	if err != nil {
		p.fail(src, err)
		return false
	}
	if p.postfix {
		fmt.Fprintln(p.w, p.rpn.Render(e.String()))
	}
	r, err := rpn.Evaluate(e)
	if err != nil {
		p.fail(src, err)
		return false
	}
	fmt.Fprintln(p.w, p.result.Render(fmt.Sprintf(p.format, r)))
	return true
}

// fail prints an error. Errors with a position get the input echoed with a
// caret under the offending column.
func (p *printer) fail(src string, err error) {
	fmt.Fprintln(p.w, p.err.Render("error: "+err.Error()))
	var ie rpn.InputError
	if !errors.As(err, &ie) || ie.Pos() < 1 {
		return
	}
	fmt.Fprintln(p.w, "  "+src)
	fmt.Fprintln(p.w, "  "+strings.Repeat(" ", ie.Pos()-1)+p.caret.Render("^"))
}

func (p *printer) funcs(names []string) {
	fmt.Fprintln(p.w, strings.Join(names, " "))
}

func (p *printer) prompt(s string) {
	fmt.Fprint(p.w, s)
}

func (p *printer) newline() {
	fmt.Fprintln(p.w)
}
