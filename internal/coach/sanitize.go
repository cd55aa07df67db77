package coach

import "strings"

// markdownMarks are the emphasis, heading, quote, and code characters the
// presentation layer cannot render; responses are plain prose.
const markdownMarks = "*_#~`>"

// StripMarkdown removes markdown punctuation from a response and trims
// surrounding whitespace.
func StripMarkdown(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if strings.ContainsRune(markdownMarks, r) {
			continue
		}
		b.WriteRune(r)
	}
	return strings.TrimSpace(b.String())
}
