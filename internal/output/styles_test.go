package output

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestStatusStyle(t *testing.T) {
	tests := []struct {
		name     string
		status   string
		wantBold bool
		wantFG   lipgloss.TerminalColor
	}{
		{name: "integrated returns green", status: StatusIntegrated, wantFG: ColorGreen},
		{name: "skipped returns yellow", status: StatusSkipped, wantFG: ColorYellow},
		{name: "failed returns bold red", status: StatusFailed, wantBold: true, wantFG: ColorBoldRed},
		{name: "unknown returns no color", status: "weird", wantFG: lipgloss.NoColor{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			style := StatusStyle(tt.status)
			assert.Equal(t, tt.wantBold, style.GetBold())
			assert.Equal(t, tt.wantFG, style.GetForeground())
		})
	}
}

func TestFormatModuleLine(t *testing.T) {
	line := FormatModuleLine("theme", StatusIntegrated)
	assert.Contains(t, line, "m:")
	assert.Contains(t, line, "theme")
	assert.Contains(t, line, StatusIntegrated)

	// Long ids still keep at least two spaces before the status.
	long := FormatModuleLine(strings.Repeat("x", 40), StatusSkipped)
	assert.Contains(t, long, strings.Repeat("x", 40))
	assert.Contains(t, long, StatusSkipped)
}

func TestFormatCheckmark(t *testing.T) {
	out := FormatCheckmark("Project created")
	assert.Contains(t, out, "✔")
	assert.Contains(t, out, "Project created")
}
