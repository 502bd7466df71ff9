package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Change kinds for dependency lines.
const (
	ChangeAdded    = "added"
	ChangeModified = "modified"
)

// DependencyChange is one dependency a module added or re-pinned.
type DependencyChange struct {
	Kind string
	Name string
	From string
	To   string
	Dev  bool
}

// ChangeRenderer renders dependency change lines.
type ChangeRenderer struct {
	added    lipgloss.Style
	modified lipgloss.Style
	muted    lipgloss.Style
}

// NewChangeRenderer creates a ChangeRenderer with the default styles.
func NewChangeRenderer() *ChangeRenderer {
	return &ChangeRenderer{
		added:    lipgloss.NewStyle().Foreground(ColorGreen),
		modified: lipgloss.NewStyle().Foreground(ColorYellow),
		muted:    GetStyles().Muted,
	}
}

// RenderLine renders a single change.
//
//	+ i18next ^24.2.0
//	~ sass ^1.80.0 -> ^1.83.0 (dev)
func (r *ChangeRenderer) RenderLine(c DependencyChange) string {
	var line string
	switch c.Kind {
	case ChangeModified:
		line = "~ " + r.modified.Render(c.Name) + " " + fmt.Sprintf("%s -> %s", c.From, c.To)
	default:
		line = "+ " + r.added.Render(c.Name) + " " + c.To
	}
	if c.Dev {
		line += " " + r.muted.Render("(dev)")
	}
	return line
}

// Render renders every change on its own line, indented by indent.
func (r *ChangeRenderer) Render(changes []DependencyChange, indent string) string {
	var sb strings.Builder
	for _, c := range changes {
		sb.WriteString(indent)
		sb.WriteString(r.RenderLine(c))
		sb.WriteString("\n")
	}
	return sb.String()
}
