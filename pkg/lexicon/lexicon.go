// Package lexicon holds the word lists and keyword tables the linters
// consume. Tables are injected into rules through the rule context rather
// than hardcoded at match sites, so scanning logic and vocabulary can be
// tested and extended independently.
package lexicon

// DocType identifies one of the four documentation types.
type DocType string

const (
	TypeTutorial    DocType = "tutorial"
	TypeHowTo       DocType = "how-to"
	TypeReference   DocType = "reference"
	TypeExplanation DocType = "explanation"
)

// DocTypes returns the four documentation types in stable order.
func DocTypes() []DocType {
	return []DocType{TypeTutorial, TypeHowTo, TypeReference, TypeExplanation}
}

// Lexicon aggregates every word table used by the linters.
type Lexicon struct {
	// ForbiddenWords maps each discouraged word or phrase (lowercase)
	// to a suggested rephrasing. An empty value means "remove it".
	ForbiddenWords map[string]string

	// GenericLinkText lists link-text phrases (lowercase) that fail to
	// name their target.
	GenericLinkText []string

	// Contractions maps expanded forms (lowercase) to their contraction.
	Contractions map[string]string

	// TypeSignals maps each documentation type to the keywords and
	// phrases (lowercase) that signal it.
	TypeSignals map[DocType][]string

	// RequiredSections maps each documentation type to the section
	// headings it must contain. Matching is case-insensitive substring
	// matching against heading text.
	RequiredSections map[DocType][]string

	// SectionAliases maps a required-section name to alternative
	// heading phrasings that satisfy it.
	SectionAliases map[string][]string
}

// Default returns the built-in lexicon.
// The returned value is a fresh copy the caller may extend.
func Default() *Lexicon {
	return &Lexicon{
		ForbiddenWords: map[string]string{
			"obviously":    "",
			"simply":       "",
			"just":         "",
			"easily":       "",
			"easy":         "straightforward",
			"clearly":      "",
			"of course":    "",
			"please click": "select",
			"please note":  "note",
			"very":         "",
			"quite":        "",
			"basically":    "",
			"actually":     "",
		},
		GenericLinkText: []string{
			"click here",
			"here",
			"this link",
			"this page",
			"link",
			"read more",
			"more",
			"learn more",
			"see this",
			"this",
		},
		Contractions: map[string]string{
			"do not":     "don't",
			"does not":   "doesn't",
			"did not":    "didn't",
			"is not":     "isn't",
			"are not":    "aren't",
			"was not":    "wasn't",
			"were not":   "weren't",
			"can not":    "can't",
			"cannot":     "can't",
			"could not":  "couldn't",
			"should not": "shouldn't",
			"would not":  "wouldn't",
			"will not":   "won't",
			"have not":   "haven't",
			"has not":    "hasn't",
			"it is":      "it's",
			"that is":    "that's",
			"there is":   "there's",
		},
		TypeSignals: map[DocType][]string{
			TypeTutorial: {
				"tutorial",
				"steps",
				"you'll learn",
				"you will learn",
				"learn how",
				"let's",
				"first steps",
				"getting started",
				"step by step",
				"follow along",
				"by the end",
			},
			TypeHowTo: {
				"how to",
				"how-to",
				"guide",
				"to do this",
				"if you want",
				"task",
				"recipe",
				"troubleshoot",
			},
			TypeReference: {
				"reference",
				"parameters",
				"parameter",
				"returns",
				"endpoint",
				"api",
				"fields",
				"attributes",
				"options",
				"syntax",
				"default value",
				"type:",
			},
			TypeExplanation: {
				"why",
				"architecture",
				"understanding",
				"concept",
				"background",
				"design",
				"rationale",
				"overview",
				"deep dive",
				"under the hood",
			},
		},
		RequiredSections: map[DocType][]string{
			TypeTutorial: {
				"prerequisites",
				"steps",
				"summary",
			},
			TypeHowTo: {
				"prerequisites",
				"result",
			},
			// Reference and explanation pages have no fixed required
			// sections.
			TypeReference:   nil,
			TypeExplanation: nil,
		},
		SectionAliases: map[string][]string{
			"prerequisites": {"prerequisites", "before you begin", "requirements"},
			"steps":         {"steps", "procedure", "instructions"},
			"summary":       {"summary", "conclusion", "what you learned", "wrap-up"},
			"result":        {"result", "outcome", "verification", "expected result"},
		},
	}
}

// AddForbiddenWords merges extra entries into the forbidden-word table.
func (l *Lexicon) AddForbiddenWords(extra map[string]string) {
	for word, suggestion := range extra {
		l.ForbiddenWords[word] = suggestion
	}
}

// AddGenericLinkText appends extra phrases to the generic link-text list.
func (l *Lexicon) AddGenericLinkText(extra []string) {
	l.GenericLinkText = append(l.GenericLinkText, extra...)
}
