package company

import "strings"

type Company struct {
	Code        string
	Name        string
	Description string
}

// CodeFromName derives the company key: lower-cased, each whitespace run replaced by one hyphen.
// Unicode spaces such as NBSP and vertical tab count as whitespace.
func CodeFromName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}
