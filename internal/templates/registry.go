package templates

// Module describes an optional feature module offered to the user.
type Module struct {
	// ID is the module directory name under modules/.
	ID string

	// Label is the short name shown in the prompt.
	Label string

	// Hint explains what the module adds.
	Hint string
}

// catalog lists the known modules in their fixed enumeration order.
var catalog = []Module{
	{
		ID:    "i18n",
		Label: "Internationalization (i18n)",
		Hint:  "Multi-language support based on i18next",
	},
	{
		ID:    "theme",
		Label: "Theme switching",
		Hint:  "Dark/light mode with a CSS variable system",
	},
	{
		ID:    "subscription",
		Label: "Subscriptions",
		Hint:  "Stripe payment integration",
	},
}

// Catalog returns the known modules in enumeration order.
func Catalog() []Module {
	out := make([]Module, len(catalog))
	copy(out, catalog)
	return out
}

// LookupModule returns the catalog entry for id.
func LookupModule(id string) (Module, bool) {
	for _, m := range catalog {
		if m.ID == id {
			return m, true
		}
	}
	return Module{}, false
}

// AvailableModules returns the modules that can be offered for r: catalog
// entries present in the repository first, in catalog order, followed by any
// other module directories with their id as label.
func AvailableModules(r *Repository) ([]Module, error) {
	ids, err := r.ModuleIDs()
	if err != nil {
		return nil, err
	}

	present := make(map[string]bool, len(ids))
	for _, id := range ids {
		present[id] = true
	}

	var out []Module
	for _, m := range catalog {
		if present[m.ID] {
			out = append(out, m)
			delete(present, m.ID)
		}
	}
	for _, id := range ids {
		if present[id] {
			out = append(out, Module{ID: id, Label: id})
		}
	}
	return out, nil
}
