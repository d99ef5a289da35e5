package bundle

// Partial is a reusable named template fragment with an optional style
// fragment. Partials are includable by name from any template body.
type Partial struct {
	Name  string
	Body  string
	Style string // empty when the partial ships no style fragment
}

// Template groups the localized bodies of one named template together with
// its optional style fragment. Bodies is keyed by two-letter language code
// and always contains at least one entry.
type Template struct {
	Name   string
	Bodies map[string]string
	Style  string
}

// Bundle is the in-memory form of one bundle root. Partials preserve
// discovery order (lexicographic directory order), which later drives
// deterministic style aggregation. The Bundle is read-only after Load.
type Bundle struct {
	Partials  []Partial
	Templates []Template
	Locales   map[string]map[string]any
}
