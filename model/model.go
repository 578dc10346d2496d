// Package model declares the read-only view of the documentation model
// that the doclet consumes. The host tool owns the object graph; nothing
// in this module constructs or mutates it.
package model

// Class describes one documented class. Implementations are supplied by
// the host tool and are borrowed for the duration of a filter call.
type Class interface {
	// QualifiedName returns the fully qualified name of the class.
	QualifiedName() string
	// Superclass returns the direct superclass, or nil when the class
	// has none.
	Superclass() Class
	// Interfaces returns the interfaces the class directly implements.
	// Inherited interfaces are not included.
	Interfaces() []Class
	// Annotations returns the annotations attached to the class.
	Annotations() []Annotation
}

// Annotation describes one annotation attached to a documented class.
type Annotation interface {
	// TypeName returns the qualified name of the annotation type.
	TypeName() string
}
