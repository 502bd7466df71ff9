package output

import "strings"

// Format specifies a document output format.
type Format string

const (
	// FormatYAML outputs in YAML format.
	FormatYAML Format = "yaml"

	// FormatJSON outputs in JSON format.
	FormatJSON Format = "json"
)

// String returns the string representation of the output format.
func (f Format) String() string {
	return string(f)
}

// IsValid checks if the output format is valid.
func (f Format) IsValid() bool {
	switch f {
	case FormatYAML, FormatJSON:
		return true
	default:
		return false
	}
}

// ParseFormat parses a case-insensitive format name. An empty name yields
// FormatYAML; an unknown name yields false.
func ParseFormat(s string) (Format, bool) {
	if s == "" {
		return FormatYAML, true
	}
	f := Format(strings.ToLower(s))
	return f, f.IsValid()
}

// ValidFormats returns a slice of valid output format strings.
func ValidFormats() []string {
	return []string{FormatYAML.String(), FormatJSON.String()}
}
