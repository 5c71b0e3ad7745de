// Package metadata resolves the descriptive metadata of a video by asking a fixed,
// ordered list of upstream sources and keeping the first answer that is complete.
package metadata

// FieldState records what a source said about one field.
type FieldState uint8

const (
	// Absent means the payload did not contain the field's key.
	Absent FieldState = iota
	// Unparseable means the key was present but its value could not be converted.
	Unparseable
	// Present means the key was present and converted cleanly.
	Present
)

func (s FieldState) String() string {
	switch s {
	case Unparseable:
		return "unparseable"
	case Present:
		return "present"
	default:
		return "absent"
	}
}

// Field is a single value reported by a source together with its provenance.
// The zero value is Absent.
type Field[T any] struct {
	state FieldState
	value T
}

// Of returns a Present field holding v.
func Of[T any](v T) Field[T] {
	return Field[T]{state: Present, value: v}
}

// Invalid returns a field whose key was provided but whose value did not convert.
func Invalid[T any]() Field[T] {
	return Field[T]{state: Unparseable}
}

// State returns the provenance state of the field.
func (f Field[T]) State() FieldState { return f.state }

// Provided reports whether the source's payload carried the key, regardless of its value.
func (f Field[T]) Provided() bool { return f.state != Absent }

// Available reports whether the field holds a usable value.
func (f Field[T]) Available() bool { return f.state == Present }

// Get returns the value and whether it is available.
func (f Field[T]) Get() (T, bool) {
	return f.value, f.state == Present
}

// Or returns the value when available and fallback otherwise.
func (f Field[T]) Or(fallback T) T {
	if f.state == Present {
		return f.value
	}
	return fallback
}
