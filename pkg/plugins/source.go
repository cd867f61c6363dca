package plugins

// Descriptor describes one registered implementation of type T
// (typically a factory function). ID is the canonical identifier
// matched against the normalized expected name. RawName, when
// non-empty, lets an implementation opt out of name normalization:
// it is matched verbatim against the caller's logical name.
type Descriptor[T any] struct {
	ID      string
	RawName string
	Make    T
}

// Source is a named, ordered collection of descriptors standing in
// for one search location. Descriptors are exposed in registration
// order. A Source is built once at setup time and read-only after;
// concurrent resolution against it is safe.
type Source[T any] struct {
	name  string
	descs []Descriptor[T]
}

// NewSource creates a source with the given descriptors in order.
func NewSource[T any](name string, descs ...Descriptor[T]) *Source[T] {
	return &Source[T]{name: name, descs: descs}
}

// Name returns the source's registered name.
func (s *Source[T]) Name() string {
	return s.name
}

// Add appends a descriptor, keeping exposure order.
func (s *Source[T]) Add(desc Descriptor[T]) {
	s.descs = append(s.descs, desc)
}

// Descriptors returns the descriptors in exposure order.
func (s *Source[T]) Descriptors() []Descriptor[T] {
	return s.descs
}

// Len returns the number of descriptors in the source.
func (s *Source[T]) Len() int {
	return len(s.descs)
}
