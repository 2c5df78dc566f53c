// Package chat delivers bot messages to Discord and Slack channels.
package chat

import "strings"

// splitMessage cuts text into chunks of at most limit bytes, breaking
// between lines where possible.
func splitMessage(text string, limit int) []string {
	if len(text) <= limit {
		return []string{text}
	}

	var chunks []string
	var current strings.Builder
	for _, line := range strings.SplitAfter(text, "\n") {
		for len(line) > limit {
			if current.Len() > 0 {
				chunks = append(chunks, current.String())
				current.Reset()
			}
			cut := limit
			// never cut a multi-byte rune in half
			for cut > 0 && !isRuneStart(line[cut]) {
				cut--
			}
			chunks = append(chunks, line[:cut])
			line = line[cut:]
		}
		if current.Len()+len(line) > limit {
			chunks = append(chunks, current.String())
			current.Reset()
		}
		current.WriteString(line)
	}
	if current.Len() > 0 {
		chunks = append(chunks, current.String())
	}

	out := chunks[:0]
	for _, chunk := range chunks {
		if chunk = strings.TrimRight(chunk, "\n"); chunk != "" {
			out = append(out, chunk)
		}
	}
	return out
}

func isRuneStart(b byte) bool {
	return b&0xC0 != 0x80
}

// SlackMarkdown rewrites Discord style bold (**text**) into Slack mrkdwn (*text*).
func SlackMarkdown(text string) string {
	return strings.ReplaceAll(text, "**", "*")
}
