// Package manifest reads, merges and writes package.json style dependency
// manifests. Top-level fields keep their source order so regenerated files
// stay diffable; dependency maps are written with sorted keys.
package manifest

import (
	"bytes"
	"fmt"
	"sort"

	json "github.com/virtuald/go-ordered-json"
)

const (
	// FileName is the manifest file at the project root.
	FileName = "package.json"

	// FragmentFileName is the manifest fragment file at a module root.
	FragmentFileName = "dependencies.json"

	fieldDependencies    = "dependencies"
	fieldDevDependencies = "devDependencies"
)

// Manifest is a parsed package manifest. Dependencies and DevDependencies are
// the only fields a merge touches; every other top-level field passes through.
type Manifest struct {
	Dependencies    map[string]string
	DevDependencies map[string]string

	// fields holds all top-level members in source order. Dependency members
	// only mark the position; their values come from the maps above.
	fields json.OrderedObject
}

// New returns an empty manifest.
func New() *Manifest {
	return &Manifest{
		Dependencies:    map[string]string{},
		DevDependencies: map[string]string{},
	}
}

// Parse decodes a manifest document. The document must be a JSON object and
// dependency values must be strings.
func Parse(data []byte) (*Manifest, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseOrderedObject()
	dec.UseNumber()

	var raw interface{}
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decoding manifest: %w", err)
	}

	obj, ok := raw.(json.OrderedObject)
	if !ok {
		return nil, fmt.Errorf("manifest must be a JSON object, got %T", raw)
	}

	m := New()
	m.fields = obj

	for _, member := range obj {
		var target map[string]string
		switch member.Key {
		case fieldDependencies:
			target = m.Dependencies
		case fieldDevDependencies:
			target = m.DevDependencies
		default:
			continue
		}

		if err := decodeDependencyMap(member.Key, member.Value, target); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// decodeDependencyMap copies a decoded dependency object into target.
// A null value is treated as an empty map.
func decodeDependencyMap(field string, value interface{}, target map[string]string) error {
	if value == nil {
		return nil
	}

	deps, ok := value.(json.OrderedObject)
	if !ok {
		return fmt.Errorf("%s must be an object, got %T", field, value)
	}

	for _, dep := range deps {
		version, ok := dep.Value.(string)
		if !ok {
			return fmt.Errorf("%s.%s: version range must be a string, got %T", field, dep.Key, dep.Value)
		}
		target[dep.Key] = version
	}

	return nil
}

// Clone returns a deep copy of m.
func (m *Manifest) Clone() *Manifest {
	out := New()
	for k, v := range m.Dependencies {
		out.Dependencies[k] = v
	}
	for k, v := range m.DevDependencies {
		out.DevDependencies[k] = v
	}
	// Passthrough values are never mutated, so sharing them is safe.
	out.fields = append(json.OrderedObject(nil), m.fields...)
	return out
}

// Field returns a passthrough top-level field value.
func (m *Manifest) Field(name string) (interface{}, bool) {
	for _, member := range m.fields {
		if member.Key == name {
			return member.Value, true
		}
	}
	return nil, false
}

// Marshal serializes the manifest as two-space indented JSON with a trailing
// newline. Identical manifests always produce identical bytes.
func (m *Manifest) Marshal() ([]byte, error) {
	out := make(json.OrderedObject, 0, len(m.fields)+2)
	seenDeps, seenDevDeps := false, false

	for _, member := range m.fields {
		switch member.Key {
		case fieldDependencies:
			seenDeps = true
			out = append(out, json.Member{Key: member.Key, Value: sortedDependencies(m.Dependencies)})
		case fieldDevDependencies:
			seenDevDeps = true
			out = append(out, json.Member{Key: member.Key, Value: sortedDependencies(m.DevDependencies)})
		default:
			out = append(out, member)
		}
	}

	if !seenDeps && len(m.Dependencies) > 0 {
		out = append(out, json.Member{Key: fieldDependencies, Value: sortedDependencies(m.Dependencies)})
	}
	if !seenDevDeps && len(m.DevDependencies) > 0 {
		out = append(out, json.Member{Key: fieldDevDependencies, Value: sortedDependencies(m.DevDependencies)})
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(out); err != nil {
		return nil, fmt.Errorf("encoding manifest: %w", err)
	}

	return buf.Bytes(), nil
}

func sortedDependencies(deps map[string]string) json.OrderedObject {
	names := make([]string, 0, len(deps))
	for name := range deps {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make(json.OrderedObject, 0, len(names))
	for _, name := range names {
		out = append(out, json.Member{Key: name, Value: deps[name]})
	}
	return out
}
