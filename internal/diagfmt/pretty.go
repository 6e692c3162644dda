package diagfmt

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"pycc/internal/diag"
	"pycc/internal/source"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	noteColor    = color.New(color.FgCyan)
	caretColor   = color.New(color.FgGreen, color.Bold)
)

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.SortStable() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <severity> <CODE>: <message>
// затем контекст строки с подчёркиванием ^~~~ по Span, затем Notes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		writeHeader(w, fs, d.Severity, d.Code.ID(), d.Message, d.Primary, opts)
		writeContext(w, fs, d.Primary, opts)
		for _, n := range d.Notes {
			writeHeader(w, fs, diag.SevInfo, d.Code.ID(), n.Msg, n.Span, opts)
			writeContext(w, fs, n.Span, opts)
		}
	}
}

func writeHeader(w io.Writer, fs *source.FileSet, sev diag.Severity, code, msg string, sp source.Span, opts PrettyOpts) {
	start, _ := fs.Resolve(sp)
	label := sev.String()
	if opts.Color {
		label = severityColor(sev).Sprint(label)
	}
	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
		displayPath(fs, sp, opts.PathMode), start.Line, start.Col, label, code, msg)
}

// writeContext печатает строку-носитель с подчёркиванием и строки
// контекста вокруг неё. Ширина подчёркивания считается по видимой
// ширине рун, не по байтам.
func writeContext(w io.Writer, fs *source.FileSet, sp source.Span, opts PrettyOpts) {
	file := fs.Get(sp.File)
	if file == nil {
		return
	}
	start, end := fs.Resolve(sp)

	first := start.Line
	if ctx := uint32(max(int(opts.Context), 0)); ctx < first {
		first -= ctx
	} else {
		first = 1
	}
	last := start.Line + uint32(max(int(opts.Context), 0))

	for line := first; line <= last; line++ {
		text := file.GetLine(line)
		if text == "" && line > start.Line {
			break
		}
		fmt.Fprintf(w, "%5d | %s\n", line, text)
		if line != start.Line {
			continue
		}

		// Col — байтовое смещение в строке; ширина берётся по рунам
		lo := min(int(start.Col)-1, len(text))
		hi := lo + 1
		if end.Line == start.Line && end.Col > start.Col {
			hi = int(end.Col) - 1
		}
		hi = min(hi, len(text))
		prefix := runewidth.StringWidth(text[:lo])
		width := 1
		if hi > lo {
			width = max(runewidth.StringWidth(text[lo:hi]), 1)
		}
		underline := "^" + strings.Repeat("~", width-1)
		if opts.Color {
			underline = caretColor.Sprint(underline)
		}
		fmt.Fprintf(w, "      | %s%s\n", strings.Repeat(" ", prefix), underline)
	}
}

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return errorColor
	case diag.SevWarning:
		return warningColor
	}
	return noteColor
}

func displayPath(fs *source.FileSet, sp source.Span, mode PathMode) string {
	file := fs.Get(sp.File)
	if file == nil {
		return "<unknown>"
	}
	if mode == PathModeBasename {
		return filepath.Base(file.Path)
	}
	return file.Path
}
