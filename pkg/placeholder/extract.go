package placeholder

// ExtractVariables scans a flat text blob for placeholders and returns one
// Variable per unique (name, default) pair, in order of first appearance.
// Directive tokens are skipped.
func ExtractVariables(text string) []Variable {
	var (
		out  []Variable
		seen = make(map[string]struct{})
	)

	for _, match := range pattern.FindAllString(text, -1) {
		inner := match[2 : len(match)-2]
		v, ok := Parse(inner)
		if !ok {
			continue
		}
		v.FullMatch = match

		key := v.Name + "\x00" + v.Default
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, v)
	}

	return out
}

// ExtractNames returns the unique variable names found in text, in order of
// first appearance.
func ExtractNames(text string) []string {
	var (
		out  []string
		seen = make(map[string]struct{})
	)
	for _, v := range ExtractVariables(text) {
		if _, dup := seen[v.Name]; dup {
			continue
		}
		seen[v.Name] = struct{}{}
		out = append(out, v.Name)
	}
	return out
}

// StripPlaceholders removes every placeholder occurrence from text,
// leaving the surrounding literal content. Used to decide whether a field
// contains any human text besides variables.
func StripPlaceholders(text string) string {
	return pattern.ReplaceAllString(text, "")
}
