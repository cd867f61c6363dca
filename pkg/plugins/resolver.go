package plugins

// Resolve looks up an implementation by logical name across the given
// search path. Sources are tried in order and the first match wins,
// so an earlier source always shadows a later one regardless of which
// kind of match it was. Nil entries in the path are skipped; callers
// may pass sparse lists.
//
// Within a source, descriptors are checked in exposure order and a
// descriptor matches when its ID equals the normalized expected
// identifier (ExpectedIdentifier of name and suffix), or when its
// RawName equals the unnormalized logical name.
//
// A failed resolution is not an error; the caller decides severity.
func Resolve[T any](logicalName, suffix string, path []*Source[T]) (Descriptor[T], bool) {
	want := ExpectedIdentifier(logicalName, suffix)

	for _, src := range path {
		if src == nil {
			continue
		}
		for _, desc := range src.Descriptors() {
			if desc.ID == want || (desc.RawName != "" && desc.RawName == logicalName) {
				return desc, true
			}
		}
	}

	var zero Descriptor[T]
	return zero, false
}
