package agent

import (
	"regexp"
	"strconv"
	"strings"
)

var countPattern = regexp.MustCompile(`\b(\d{1,3})\b`)

// extractTopic strips task phrasing from a question so only the subject
// remains, e.g. "create a quiz on graph theory" becomes "graph theory".
func extractTopic(question string, phrases ...string) string {
	topic := question
	for _, phrase := range append(phrases, "generate", "create", "make", "give me") {
		pattern := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(phrase) + `\b`)
		topic = pattern.ReplaceAllString(topic, " ")
	}

	topic = regexp.MustCompile(`(?i)\b(on|about|for|a|an|the)\b`).ReplaceAllString(topic, " ")
	topic = strings.Join(strings.Fields(topic), " ")
	return strings.Trim(topic, " ?.!,")
}

// parseCount finds the first small number in a question, clamped to a
// sane range, or returns the fallback.
func parseCount(question string, fallback int) int {
	match := countPattern.FindString(question)
	if match == "" {
		return fallback
	}

	n, err := strconv.Atoi(match)
	if err != nil || n < 1 {
		return fallback
	}
	if n > 50 {
		return 50
	}
	return n
}

// difficultyMentions map whole-word cues to a level. Whole words only:
// "difficult" must not fire on "difficulty", nor "hard" on "hardware".
var difficultyMentions = []struct {
	pattern *regexp.Regexp
	level   string
}{
	{regexp.MustCompile(`(?i)\b(easy|beginner)\b`), "easy"},
	{regexp.MustCompile(`(?i)\b(medium|intermediate)\b`), "medium"},
	{regexp.MustCompile(`(?i)\b(hard|difficult|advanced)\b`), "hard"},
}

// parseDifficulty picks up an explicit difficulty mention, defaulting to
// empty so the generator applies its own default.
func parseDifficulty(question string) string {
	for _, mention := range difficultyMentions {
		if mention.pattern.MatchString(question) {
			return mention.level
		}
	}
	return ""
}
