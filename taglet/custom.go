package taglet

import (
	"strings"
)

// CustomTag is a user-defined block tag, either parsed from a "-tag"
// definition or contributed by a registrar. The enabled flag separates
// tags activated for this run from bare parsed definitions.
type CustomTag struct {
	name    string
	scope   string
	title   string
	enabled bool
}

// NewCustomTag creates a custom tag with the given name.
func NewCustomTag(name string, enabled bool) *CustomTag {
	return &CustomTag{name: name, enabled: enabled}
}

func (t *CustomTag) Name() string  { return t.name }
func (t *CustomTag) Inline() bool  { return false }
func (t *CustomTag) Title() string { return t.title }

// Scope returns where the tag may appear, or "" when unrestricted.
func (t *CustomTag) Scope() string { return t.scope }

// Enabled reports whether the tag was activated for this run.
func (t *CustomTag) Enabled() bool { return t.enabled }

func (t *CustomTag) SetScope(scope string) { t.scope = scope }
func (t *CustomTag) SetTitle(title string) { t.title = title }

// ParseTag parses a "name[:scope[:title]]" tag definition. Everything
// before the first colon is the name; within the remainder, everything
// after the next colon is the title and everything before it the scope.
// The returned definition is not enabled.
func ParseTag(def string) *CustomTag {
	colon := strings.Index(def, ":")
	name := def
	if colon >= 0 {
		name = def[:colon]
	}
	tag := NewCustomTag(name, false)
	if colon >= 0 {
		scope := def[colon+1:]
		if colon = strings.Index(scope, ":"); colon >= 0 {
			tag.SetTitle(scope[colon+1:])
			scope = scope[:colon]
		}
		tag.SetScope(scope)
	}
	return tag
}
