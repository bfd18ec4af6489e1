package goquery

import "regexp"

var unwantedPattern = regexp.MustCompile(`(?i)subscribe|newsletter|advertisement|cookie|privacy policy|terms of service|follow us|share this`)

// IsUnwanted reports whether text reads like boilerplate: subscription
// prompts, cookie and legal notices, or social sharing calls.
func IsUnwanted(text string) bool {
	return unwantedPattern.MatchString(text)
}
