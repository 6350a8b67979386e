package domain

import (
	"regexp"
)

// mentionPattern matches @username tokens in plain text. Usernames are
// letters, digits, underscores, dots, and hyphens, starting with a letter
// or digit. A leading word character disqualifies the match so that email
// addresses are not treated as mentions.
var mentionPattern = regexp.MustCompile(`(?:^|[^\w@])@([a-zA-Z0-9][a-zA-Z0-9_.-]*)`)

// ExtractMentions scans comment text for @username tokens and returns the
// distinct usernames in order of first appearance. Mentions are derived at
// dispatch time, never stored as a relation; unmatched tokens are the
// caller's problem to ignore.
func ExtractMentions(text string) []string {
	matches := mentionPattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(matches))
	var usernames []string
	for _, m := range matches {
		name := m[1]
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		usernames = append(usernames, name)
	}
	return usernames
}
