package util

import (
	"io"
	"os"

	"golang.org/x/term"
)

// Terminal abstracts the parts of golang.org/x/term used to size help output.
type Terminal interface {
	IsTerminal(fd int) bool
	GetSize(fd int) (width, height int, err error)
}

// DefaultTerminal forwards to golang.org/x/term.
type DefaultTerminal struct{}

func (DefaultTerminal) IsTerminal(fd int) bool {
	return term.IsTerminal(fd)
}

func (DefaultTerminal) GetSize(fd int) (int, int, error) {
	return term.GetSize(fd)
}

// TerminalWidth returns the column count of w when w is a terminal, or 0 when it is not
// (or its size cannot be determined).
func TerminalWidth(w io.Writer, t Terminal) int {
	f, ok := w.(*os.File)
	if !ok {
		return 0
	}
	if t == nil {
		t = DefaultTerminal{}
	}

	fd := int(f.Fd())
	if !t.IsTerminal(fd) {
		return 0
	}

	width, _, err := t.GetSize(fd)
	if err != nil || width <= 0 {
		return 0
	}

	return width
}
