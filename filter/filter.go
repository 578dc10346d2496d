// Package filter decides whether a documented class should be emitted,
// based on its direct superclass, directly implemented interfaces, and
// attached annotations.
package filter

import (
	"github.com/RampantLions/wo-xmldoclet/model"
)

// Criteria holds the three inclusion dimensions. Each target is a
// fully qualified type name compared with exact string equality; an
// empty target leaves that dimension unconstrained. Matching is not
// subtype aware: a class two levels below an extends target does not
// match.
type Criteria struct {
	Extends    string
	Implements string
	Annotated  string
}

// Active reports whether at least one dimension is configured, letting
// callers skip filtering entirely when none is.
func (c Criteria) Active() bool {
	return c.Extends != "" || c.Implements != "" || c.Annotated != ""
}

// Include reports whether the class matches every configured
// dimension. A class missing the relevant facet (no superclass, no
// interfaces, no annotations) does not match that dimension.
func (c Criteria) Include(doc model.Class) bool {
	included := true

	if c.Extends != "" {
		included = included && matchExtends(doc, c.Extends)
	}
	if c.Implements != "" {
		included = included && matchImplements(doc, c.Implements)
	}
	if c.Annotated != "" {
		included = included && matchAnnotated(doc, c.Annotated)
	}

	return included
}

func matchExtends(doc model.Class, base string) bool {
	superclass := doc.Superclass()
	return superclass != nil && base == superclass.QualifiedName()
}

func matchImplements(doc model.Class, iface string) bool {
	for _, i := range doc.Interfaces() {
		if iface == i.QualifiedName() {
			return true
		}
	}
	return false
}

func matchAnnotated(doc model.Class, annotation string) bool {
	for _, a := range doc.Annotations() {
		if annotation == a.TypeName() {
			return true
		}
	}
	return false
}
