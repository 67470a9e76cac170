package extract

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dlclark/regexp2"
)

const (
	minPhoneLen = 6
	maxPhoneLen = 18
)

// phonePattern needs a backtracking engine: the first alternative refuses to start on
// a bare six digit token, which RE2 cannot express.
var phonePattern = regexp2.MustCompile(`
	(?!\b\d{6}\b)
	\+?\d{1,3}[\s\-]?               # country code
	(?:\(?\d{1,4}\)?[\s\-]?)?       # area code
	(?:\d{1,4}[\s\-]?){1,2}
	\d{1,4}[\s\-]?
	\d{1,4}[\s\-]?
	\d{1,4}
	|
	\(?\d{3}\)?[\s\-]?\d{3}[\s\-]?\d{4}   # NANP
`, regexp2.IgnorePatternWhitespace)

// FindPhones returns the distinct phone-like substrings of text in the order they
// were first seen. It is a heuristic: dates and ids can slip through.
func FindPhones(text string) []string {
	var found []string
	seen := make(map[string]struct{})

	m, err := phonePattern.FindStringMatch(text)
	for m != nil && err == nil {
		cleaned := cleanPhone(m.String())
		if n := utf8.RuneCountInString(cleaned); n >= minPhoneLen && n <= maxPhoneLen {
			if _, dup := seen[cleaned]; !dup {
				seen[cleaned] = struct{}{}
				found = append(found, cleaned)
			}
		}
		m, err = phonePattern.FindNextMatch(m)
	}
	return found
}

// cleanPhone drops every rune other than ASCII digits, '+', '(', ')' and whitespace.
// Dropped runes are removed, not replaced with a space, so "555-123-4567" cleans to
// "5551234567" and the length bounds apply to what is printed.
func cleanPhone(raw string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= '0' && r <= '9', r == '+', r == '(', r == ')', unicode.IsSpace(r):
			return r
		default:
			return -1
		}
	}, raw)
}

// FormatPhones renders the phone line of the report.
func FormatPhones(phones []string) string {
	if len(phones) == 0 {
		return NoneText
	}
	return strings.Join(phones, ", ")
}
