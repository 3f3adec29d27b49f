package common

// UnknownStr is returned by String methods for values outside their enum.
const UnknownStr = "unknown"

// JoinPath appends a child segment to a dotted field path.
func JoinPath(parent, child string) string {
	if parent == "" {
		return child
	}

	return parent + "." + child
}
