package values

// Path addresses a position inside a nested input value, from the
// coercion root down to a leaf.
type Path []PathElement

// PathElement is a string (input object field name) or an int (list
// index).
type PathElement any

// appendPath copies before appending; sibling branches must never share
// backing storage.
func appendPath(path Path, elem PathElement) Path {
	next := make(Path, len(path)+1)
	copy(next, path)
	next[len(path)] = elem
	return next
}
