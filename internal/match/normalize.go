package match

import "strings"

// Normalize lowercases s, drops a parameter list such as "(9, 2)" or "[16]"
// and removes separators, so "Decimal(9, 2)" and "time_stamp" compare as
// "decimal" and "timestamp".
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))

	if i := strings.IndexAny(s, "(["); i >= 0 {
		s = s[:i]
	}

	return strings.Map(func(r rune) rune {
		if isSeparator(r) {
			return -1
		}

		return r
	}, s)
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' ' || r == '\t'
}
