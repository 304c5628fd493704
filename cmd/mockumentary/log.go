package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

type printer struct {
	w    io.Writer
	red  *color.Color
	bold *color.Color
	cyan *color.Color
	gray *color.Color
}

func newPrinter(w io.Writer, noColor bool) printer {
	p := printer{
		w:    w,
		red:  color.New(color.FgRed),
		bold: color.New(color.Bold),
		cyan: color.New(color.FgCyan),
		gray: color.New(color.FgHiBlack),
	}

	if noColor {
		for _, c := range []*color.Color{p.red, p.bold, p.cyan, p.gray} {
			c.DisableColor()
		}
	}

	return p
}

func (p printer) err(s string) { fmt.Fprintln(p.w, p.red.Sprint(s)) }

func (p printer) heading(s string) { fmt.Fprintln(p.w, p.bold.Sprint(s)) }

// row prints an indented "label  kind  detail" line.
func (p printer) row(label, kind, detail string) {
	fmt.Fprintf(p.w, "  %s %s %s\n", p.cyan.Sprintf("%-12s", label), p.gray.Sprintf("%-9s", kind), detail)
}
