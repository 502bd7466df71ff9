package manifest

import "sort"

// Change describes one dependency that differs between two manifests.
// From is empty for an added dependency.
type Change struct {
	Name string
	From string
	To   string
	Dev  bool
}

// Added reports whether the dependency was absent before.
func (c Change) Added() bool {
	return c.From == ""
}

// Changes lists the dependencies of after that are new or pinned to a
// different version than in before: runtime dependencies first, then dev
// dependencies, each sorted by name. Removals are not reported because a
// merge never removes a dependency.
func Changes(before, after *Manifest) []Change {
	if after == nil {
		return nil
	}
	if before == nil {
		before = New()
	}

	changes := diffSection(before.Dependencies, after.Dependencies, false)
	return append(changes, diffSection(before.DevDependencies, after.DevDependencies, true)...)
}

func diffSection(before, after map[string]string, dev bool) []Change {
	names := make([]string, 0, len(after))
	for name, version := range after {
		if before[name] != version {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	changes := make([]Change, 0, len(names))
	for _, name := range names {
		changes = append(changes, Change{Name: name, From: before[name], To: after[name], Dev: dev})
	}
	return changes
}
