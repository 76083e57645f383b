package svnstore

import (
	"strings"
)

// messagePrefix marks log-message lines at the top of a patch file.
// svn patch skips everything before the first "Index: " line.
const messagePrefix = "# "

// encodePatch returns the patch file content: the message block followed
// by the diff.
func encodePatch(message, diff string) []byte {
	var sb strings.Builder
	message = strings.TrimRight(message, "\r\n")
	if message != "" {
		for _, line := range strings.Split(message, "\n") {
			line = strings.TrimRight(line, "\r")
			if line == "" {
				sb.WriteString("#\n")
				continue
			}
			sb.WriteString(messagePrefix)
			sb.WriteString(line)
			sb.WriteString("\n")
		}
	}
	sb.WriteString(diff)
	return []byte(sb.String())
}

// parseMessage extracts the message block from patch file content.
// Content without a block yields "".
func parseMessage(data []byte) string {
	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")
		switch {
		case isDiffStart(line):
			return strings.Join(lines, "\n")
		case line == "#":
			lines = append(lines, "")
		case strings.HasPrefix(line, messagePrefix):
			lines = append(lines, strings.TrimPrefix(line, messagePrefix))
		default:
			return strings.Join(lines, "\n")
		}
	}
	return strings.Join(lines, "\n")
}

func isDiffStart(line string) bool {
	return strings.HasPrefix(line, "Index: ") || strings.HasPrefix(line, "diff --git ")
}
