package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the screenflow banner to w.
func PrintBanner(w io.Writer) {
	out := termenv.NewOutput(w)
	// Cool gradient, teal to indigo
	lines := []struct {
		text  string
		color string
	}{
		{"  ___  ___ _ __ ___  ___ _ __  / _| | _____      __", "#2dd4bf"},
		{" / __|/ __| '__/ _ \\/ _ \\ '_ \\| |_| |/ _ \\ \\ /\\ / /", "#38bdf8"},
		{" \\__ \\ (__| | |  __/  __/ | | |  _| | (_) \\ V  V / ", "#60a5fa"},
		{" |___/\\___|_|  \\___|\\___|_| |_|_| |_|\\___/ \\_/\\_/  ", "#818cf8"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, out.String(l.text).Foreground(out.Color(l.color)))
	}
	fmt.Fprintln(w)
}

// Status colors a short status word for terminal output: green for ok, red for
// anything else.
func Status(w io.Writer, ok bool, text string) string {
	out := termenv.NewOutput(w)
	if ok {
		return out.String(text).Foreground(out.Color("#22c55e")).Bold().String()
	}
	return out.String(text).Foreground(out.Color("#ef4444")).Bold().String()
}
