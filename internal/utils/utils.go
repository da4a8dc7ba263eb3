package utils

import (
	"strings"

	"github.com/dlclark/regexp2"
)

var (
	catalogIDMatcher  = regexp2.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`, 0)
	formFactorMatcher = regexp2.MustCompile(`[^/\s,]+`, 0)
	m2Matcher         = regexp2.MustCompile(`^M\.2(?=\s|$)`, regexp2.IgnoreCase)
)

// MatchCatalogID reports whether id is a lowercase, dash separated
// identifier such as "cpu-001" or "merchant-006".
func MatchCatalogID(id string) bool {
	match, _ := catalogIDMatcher.MatchString(id)

	return match
}

// SplitFormFactors splits a declared form factor list like "ATX/E-ATX" into
// its members.
func SplitFormFactors(formFactor string) []string {
	return Regexp2SearchAllText(formFactorMatcher, formFactor)
}

// SupportsFormFactor reports whether the list declared by a case contains
// formFactor, ignoring case.
func SupportsFormFactor(declared, formFactor string) bool {
	for _, ff := range SplitFormFactors(declared) {
		if strings.EqualFold(ff, formFactor) {
			return true
		}
	}
	return false
}

// MatchM2FormFactor reports whether a storage form factor such as
// "M.2 2280" occupies an M.2 slot.
func MatchM2FormFactor(formFactor string) bool {
	match, _ := m2Matcher.MatchString(strings.TrimSpace(formFactor))

	return match
}

func Regexp2SearchAllText(re *regexp2.Regexp, s string) []string {
	var matches []string
	m, _ := re.FindStringMatch(s)
	for m != nil {
		matches = append(matches, m.String())
		m, _ = re.FindNextMatch(m)
	}
	return matches
}
