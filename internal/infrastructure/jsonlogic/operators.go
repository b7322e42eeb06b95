package jsonlogic

import "strings"

// Blank is true when any argument is missing, not a string, or only whitespace.
func Blank(args ...any) any {
	if len(args) == 0 {
		return true
	}
	for _, a := range args {
		s, ok := a.(string)
		if !ok || strings.TrimSpace(s) == "" {
			return true
		}
	}
	return false
}
