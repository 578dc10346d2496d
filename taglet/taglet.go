// Package taglet maintains the registry of tag handlers used by the
// doclet: the built-in block and inline tags, custom tags declared on
// the command line, and handlers contributed by named registrars.
package taglet

// Taglet describes how one documentation tag is recognized.
type Taglet interface {
	// Name returns the tag name without any prefix, e.g. "see" or "link".
	Name() string
	// Inline reports whether the tag is embedded within text rather
	// than standing alone as a block tag.
	Inline() bool
	// Title returns the display title for the tag, or "" when the tag
	// has none.
	Title() string
}

// builtin is the descriptor backing the standard tags.
type builtin struct {
	name   string
	title  string
	inline bool
}

func (b builtin) Name() string  { return b.name }
func (b builtin) Inline() bool  { return b.inline }
func (b builtin) Title() string { return b.title }

// BlockTags returns the descriptors for the standard block tags.
func BlockTags() []Taglet {
	return []Taglet{
		builtin{name: "author", title: "Author"},
		builtin{name: "deprecated", title: "Deprecated"},
		builtin{name: "exception", title: "Exceptions"},
		builtin{name: "param", title: "Parameters"},
		builtin{name: "return", title: "Returns"},
		builtin{name: "see", title: "See Also"},
		builtin{name: "serial", title: "Serial"},
		builtin{name: "since", title: "Since"},
		builtin{name: "throws", title: "Throws"},
		builtin{name: "version", title: "Version"},
	}
}

// InlineTags returns the descriptors for the standard inline tags.
func InlineTags() []Taglet {
	return []Taglet{
		builtin{name: "code", inline: true},
		builtin{name: "docRoot", inline: true},
		builtin{name: "inheritDoc", inline: true},
		builtin{name: "link", inline: true},
		builtin{name: "linkplain", inline: true},
		builtin{name: "literal", inline: true},
		builtin{name: "value", inline: true},
	}
}
