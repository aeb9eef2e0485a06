package diag

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"midl/internal/source"
)

// Renderer formats diagnostics for humans as
// "path:line:col: SEVERITY[Code]: message" followed by the source line.
type Renderer struct {
	Out     io.Writer
	FileSet *source.FileSet
	Color   bool
}

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan)
	posColor     = color.New(color.Bold)
)

func (r *Renderer) severityLabel(sev Severity) string {
	label := sev.String()
	if !r.Color {
		return label
	}
	switch sev {
	case SevError:
		return errorColor.Sprint(label)
	case SevWarning:
		return warningColor.Sprint(label)
	default:
		return infoColor.Sprint(label)
	}
}

// Render writes one diagnostic. Diagnostics with an empty primary span
// (I/O errors) are printed without a position.
func (r *Renderer) Render(d Diagnostic) {
	if r.FileSet == nil || (d.Primary == source.Span{}) {
		fmt.Fprintf(r.Out, "%s[%s]: %s\n", r.severityLabel(d.Severity), d.Code, d.Message)
		return
	}

	file := r.FileSet.Get(d.Primary.File)
	start, _ := r.FileSet.Resolve(d.Primary)

	pos := fmt.Sprintf("%s:%d:%d", file.Path, start.Line, start.Col)
	if r.Color {
		pos = posColor.Sprint(pos)
	}
	fmt.Fprintf(r.Out, "%s: %s[%s]: %s\n", pos, r.severityLabel(d.Severity), d.Code, d.Message)

	if line := file.GetLine(start.Line); line != "" {
		fmt.Fprintf(r.Out, "  %d | %s\n", start.Line, strings.TrimRight(line, "\r"))
	}

	for _, note := range d.Notes {
		noteStart, _ := r.FileSet.Resolve(note.Span)
		fmt.Fprintf(r.Out, "  note (line %d): %s\n", noteStart.Line, note.Msg)
	}
}

// RenderBag sorts and writes every diagnostic in the bag.
func (r *Renderer) RenderBag(b *Bag) {
	b.Sort()
	for _, d := range b.Items() {
		r.Render(d)
	}
}
