package affiliation

import "regexp"

// emailPattern is a loose email shape, not a validating parser. It does not
// handle quoted local parts or internationalized domains.
var emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)

// ExtractEmail returns the first email-shaped substring found when scanning
// affiliations in order. The boolean is false when none matches.
func ExtractEmail(affiliations []string) (string, bool) {
	for _, aff := range affiliations {
		if m := emailPattern.FindString(aff); m != "" {
			return m, true
		}
	}
	return "", false
}
