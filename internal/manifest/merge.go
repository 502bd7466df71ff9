package manifest

// Merge returns base with every dependency and devDependency of fragment
// inserted or overwritten; fragment wins on key collision. Neither input is
// modified and all other base fields pass through unchanged. A nil fragment
// yields a copy of base.
func Merge(base, fragment *Manifest) *Manifest {
	out := base.Clone()
	if fragment == nil {
		return out
	}

	for name, version := range fragment.Dependencies {
		out.Dependencies[name] = version
	}
	for name, version := range fragment.DevDependencies {
		out.DevDependencies[name] = version
	}

	return out
}

// Fold merges fragments into base left to right, so a later fragment
// overrides an earlier one on the same dependency key.
func Fold(base *Manifest, fragments ...*Manifest) *Manifest {
	out := base
	for _, fragment := range fragments {
		out = Merge(out, fragment)
	}
	if out == base {
		out = base.Clone()
	}
	return out
}
