package strategy

// ResolveDefaults extracts the declared default for every parameter of the
// named strategy. The name is normalized first, so any known alias works.
// Legacy scalar definitions declare no default and are skipped. An unknown
// strategy yields an empty map, never an error: the catalog may grow names
// this table has not heard of yet.
func ResolveDefaults(name string) map[string]any {
	defaults := make(map[string]any)
	schema, ok := Lookup(Normalize(name))
	if !ok {
		return defaults
	}
	for param, def := range schema {
		if def.HasDefault() {
			defaults[param] = def.Default
		}
	}
	return defaults
}
