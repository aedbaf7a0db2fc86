// Heuristic field extraction over raw resume text
// Everything here is best-effort: no match means an empty result, never an error

package parser

import (
	"regexp"
	"sort"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

var (
	emailRegex = regexp.MustCompile(`[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+`)
	phoneRegex = regexp.MustCompile(`\+?\d[\d\s\-()]{7,}\d`)
	//skills block: everything after a "Skills"/"Technical Skills" header up to
	//the next blank line or end of document
	skillsRegex = regexp.MustCompile(`(?is)(?:Skills|Technical Skills)[:\n](.*?)(?:\n\n|$)`)
)

// Name assumes the first non-blank line of the document is the candidate's
// name. That is often wrong for oddly formatted resumes; downstream treats
// it as advisory.
func Name(text string) string {
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

// Emails returns every email-like substring, deduplicated and sorted.
func Emails(text string) []string {
	return dedupSorted(emailRegex.FindAllString(text, -1))
}

// Phones returns every phone-like substring (a loosely delimited run of 9+
// digit-bearing characters), deduplicated and sorted.
func Phones(text string) []string {
	return dedupSorted(phoneRegex.FindAllString(text, -1))
}

// Skills captures the skills section and splits it on commas and newlines.
// Source order is preserved: callers take the first N entries as the
// priority slice for job searching.
func Skills(text string) []string {
	match := skillsRegex.FindStringSubmatch(text)
	if match == nil {
		return nil
	}

	tokens := strings.FieldsFunc(match[1], func(r rune) bool {
		return r == ',' || r == '\n'
	})

	skills := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if trimmed := strings.TrimSpace(token); trimmed != "" {
			skills = append(skills, trimmed)
		}
	}
	return skills
}

func dedupSorted(matches []string) []string {
	set := mapset.NewSet[string]()
	for _, m := range matches {
		set.Add(m)
	}

	out := set.ToSlice()
	sort.Strings(out)
	return out
}
