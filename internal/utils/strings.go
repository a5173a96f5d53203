package utils

import (
	"strings"
)

// NormalizeSpace collapses repeated whitespace into a single space.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// MatchFold returns the entry of options equal to v ignoring case and extra spaces.
func MatchFold(options []string, v string) (string, bool) {
	v = NormalizeSpace(v)
	for _, opt := range options {
		if strings.EqualFold(opt, v) {
			return opt, true
		}
	}
	return "", false
}

// SafeFilenamePart strips characters that are not allowed in download names.
func SafeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}
