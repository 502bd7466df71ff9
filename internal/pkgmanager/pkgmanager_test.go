package pkgmanager

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  Manager
	}{
		{"pnpm", PNPM},
		{"npm", NPM},
		{"yarn", Yarn},
		{"  Yarn ", Yarn},
		{"bun", NPM},
		{"", NPM},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.input))
		})
	}
}

func TestIsKnown(t *testing.T) {
	assert.True(t, IsKnown("pnpm"))
	assert.True(t, IsKnown("yarn"))
	assert.False(t, IsKnown("bun"))
	assert.False(t, IsKnown(""))
}

func TestCommands(t *testing.T) {
	tests := []struct {
		manager Manager
		install string
		run     string
	}{
		{PNPM, "pnpm install", "pnpm dev"},
		{NPM, "npm install", "npm run dev"},
		{Yarn, "yarn", "yarn dev"},
		{Manager("bun"), "npm install", "npm run dev"},
	}

	for _, tt := range tests {
		t.Run(string(tt.manager), func(t *testing.T) {
			assert.Equal(t, tt.install, tt.manager.InstallCommand())
			assert.Equal(t, tt.run, tt.manager.RunCommand())
		})
	}
}

func TestDefault(t *testing.T) {
	assert.Equal(t, PNPM, Default)
	assert.Equal(t, []Manager{PNPM, NPM, Yarn}, All())
}

func TestExecRunner_Available_MissingBinary(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	assert.False(t, NewExecRunner().Available(context.Background(), PNPM))
}

func TestExtractVersion(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   string
	}{
		{"pnpm", "10.2.0\n", "v10.2.0"},
		{"yarn classic", "1.22.19", "v1.22.19"},
		{"prerelease", "9.0.0-rc.1\n", "v9.0.0-rc.1"},
		{"prefixed", "v4.5.0", "v4.5.0"},
		{"unrecognised", "dev build\nextra", "dev build"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractVersion(tt.output))
		})
	}
}

func TestDetect_Missing(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	info := Detect(context.Background(), Yarn)
	assert.False(t, info.Found)
	assert.Contains(t, info.String(), "yarn: yarn not found in PATH")
}
