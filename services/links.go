package services

import "regexp"

// linkPattern matches http, https and ftp URLs as well as bare www. hosts.
// The last character may not be one of ?!,:; so trailing sentence
// punctuation stays out of the match.
var linkPattern = regexp.MustCompile(`(?i)\b(?:(?:https?|ftp)://|www\.)[-a-z0-9+&@#/%?=~_|!:,.;]*[-a-z0-9+&@#/%=~_|]`)

// ExtractLinks returns the URL-like substrings of text in order of
// appearance. Matches are neither validated nor deduplicated.
func ExtractLinks(text string) []string {
	matches := linkPattern.FindAllString(text, -1)
	if matches == nil {
		return []string{}
	}
	return matches
}
