package argsparser

import (
	"fmt"
	"strings"

	"github.com/mitchellh/go-wordwrap"
)

const (
	tabWidth      = 8
	minWrapColumn = 20
)

// Renderer formats usage and help text for a Parser. It performs no I/O.
type Renderer struct {
	parser *Parser
	width  int
}

func NewRenderer(parser *Parser) *Renderer {
	return &Renderer{parser: parser, width: parser.wrapWidth}
}

// SetWidth sets the line width descriptions are wrapped to. Zero disables wrapping.
func (r *Renderer) SetWidth(width int) {
	r.width = width
}

// UsageLine returns the usage summary, e.g.
//
//	usage: prog [-ab] [-f <arg>] -r -o <arg> [--] <source> <dest>
func (r *Renderer) UsageLine() string {
	segments := []string{"usage:", r.parser.programName}

	optional := r.parser.OptionalOptions()
	if flags := bundleFlags(optional); flags != "" {
		segments = append(segments, "[-"+flags+"]")
	}
	for _, o := range optional {
		if o.TakesValue {
			segments = append(segments, fmt.Sprintf("[-%c <arg>]", o.Short))
		}
	}

	required := r.parser.RequiredOptions()
	if flags := bundleFlags(required); flags != "" {
		segments = append(segments, "-"+flags)
	}
	for _, o := range required {
		if o.TakesValue {
			segments = append(segments, fmt.Sprintf("-%c <arg>", o.Short))
		}
	}

	if params := r.parser.Parameters(); len(params) > 0 {
		segments = append(segments, "[--]")
		for _, p := range params {
			segments = append(segments, "<"+p.Name+">")
		}
	}

	return strings.Join(segments, " ")
}

func (r *Renderer) ParameterLine(p *Parameter) string {
	return r.line(fmt.Sprintf("\t<%s>\t\t", p.Name), p.Description)
}

func (r *Renderer) OptionLine(o *Option) string {
	if o.TakesValue {
		return r.line(fmt.Sprintf("\t-%c, --%s=<arg>\t\t", o.Short, o.Long), o.Description)
	}

	return r.line(fmt.Sprintf("\t-%c, --%s\t\t", o.Short, o.Long), o.Description)
}

// Help returns the usage line followed by parameters, required options and optional options,
// one newline-terminated line each.
func (r *Renderer) Help() string {
	var sb strings.Builder

	sb.WriteString(r.UsageLine())
	sb.WriteString("\n")
	for _, p := range r.parser.Parameters() {
		sb.WriteString(r.ParameterLine(p))
	}
	for _, o := range r.parser.RequiredOptions() {
		sb.WriteString(r.OptionLine(o))
	}
	for _, o := range r.parser.OptionalOptions() {
		sb.WriteString(r.OptionLine(o))
	}

	return sb.String()
}

// line appends description to prefix. Continuation lines of a wrapped description are indented
// to the column the description starts at.
func (r *Renderer) line(prefix, description string) string {
	column := displayColumn(prefix)
	available := r.width - column
	if r.width <= 0 || available < minWrapColumn || len(description) <= available {
		return prefix + description + "\n"
	}

	indent := strings.Repeat("\t", column/tabWidth)
	lines := strings.Split(wordwrap.WrapString(description, uint(available)), "\n")

	return prefix + strings.Join(lines, "\n"+indent) + "\n"
}

// displayColumn returns the column reached after printing s with tab stops every tabWidth
func displayColumn(s string) int {
	column := 0
	for _, r := range s {
		if r == '\t' {
			column += tabWidth - column%tabWidth
		} else {
			column++
		}
	}

	return column
}

func bundleFlags(opts []*Option) string {
	var sb strings.Builder
	for _, o := range opts {
		if !o.TakesValue {
			sb.WriteRune(o.Short)
		}
	}

	return sb.String()
}
