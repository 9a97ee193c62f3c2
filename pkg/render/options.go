package render

// DefaultLanguage is used when Options leaves the default language empty.
const DefaultLanguage = "en"

// Options are the caller-owned, read-only inputs of one render. The
// pipeline never mutates them.
type Options struct {
	// SampleData is the data payload variable paths resolve against.
	SampleData map[string]any

	// Language selects the translation language. Empty or equal to
	// DefaultLanguage skips translation entirely.
	Language string

	// TemplateID scopes translation lookups. Translation is skipped when
	// empty.
	TemplateID string

	// DefaultLanguage is the fallback language. Empty means "en".
	DefaultLanguage string

	// SkipVariables disables the loop/conditional/variable passes, leaving
	// placeholders intact in the output (preview of the raw template).
	SkipVariables bool
}

// normalized returns a copy with defaults applied.
func (o Options) normalized() Options {
	if o.DefaultLanguage == "" {
		o.DefaultLanguage = DefaultLanguage
	}
	return o
}

// translate reports whether the translation stage should run.
func (o Options) translate() bool {
	return o.Language != "" && o.Language != o.DefaultLanguage && o.TemplateID != ""
}

// replaceVariables reports whether the variable stages should run.
func (o Options) replaceVariables() bool {
	return !o.SkipVariables && len(o.SampleData) > 0
}
