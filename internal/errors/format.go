package errors

import (
	"io"
	"sort"
	"strings"
)

// PrintOptions controls error output formatting.
type PrintOptions struct {
	// Verbose enables detailed error output with more context keys.
	Verbose bool
}

// Context keys printed in default mode, in order.
var defaultContextKeys = []string{
	"name",
	"target",
	"wc_root",
	"command",
	"exit_code",
}

// Context keys printed in verbose mode, in order.
var verboseContextKeys = []string{
	"name",
	"target",
	"wc_root",
	"shelves_dir",
	"patch",
	"command",
	"exit_code",
	"stderr",
	"path",
}

const (
	maxValueLen      = 256 // single-line context values
	maxExtraValueLen = 128 // values under extra:
)

// Format formats an error for display without I/O.
func Format(err error, opts PrintOptions) string {
	if err == nil {
		return ""
	}

	var sb strings.Builder

	se, ok := AsShelfError(err)
	if !ok {
		sb.WriteString(err.Error())
		sb.WriteString("\n")
		return sb.String()
	}

	sb.WriteString("error_code: ")
	sb.WriteString(string(se.Code))
	sb.WriteString("\n")
	sb.WriteString(se.Msg)
	sb.WriteString("\n")

	contextKeys := defaultContextKeys
	if opts.Verbose {
		contextKeys = verboseContextKeys
	}

	printed := make(map[string]bool)
	var ctxLines []string
	for _, key := range contextKeys {
		val, ok := se.Details[key]
		if !ok || val == "" {
			continue
		}
		printed[key] = true
		ctxLines = append(ctxLines, key+": "+sanitizeValue(val, maxValueLen))
	}
	if len(ctxLines) > 0 {
		sb.WriteString("\n")
		for _, line := range ctxLines {
			sb.WriteString(line)
			sb.WriteString("\n")
		}
	}

	if opts.Verbose {
		var extraKeys []string
		for key, val := range se.Details {
			if !printed[key] && key != "hint" && val != "" {
				extraKeys = append(extraKeys, key)
			}
		}
		if len(extraKeys) > 0 {
			sort.Strings(extraKeys)
			sb.WriteString("\nextra:\n")
			for _, key := range extraKeys {
				sb.WriteString("  ")
				sb.WriteString(key)
				sb.WriteString(": ")
				sb.WriteString(sanitizeValue(se.Details[key], maxExtraValueLen))
				sb.WriteString("\n")
			}
		}
		if se.Cause != nil {
			sb.WriteString("\ncause: ")
			sb.WriteString(sanitizeValue(se.Cause.Error(), maxValueLen))
			sb.WriteString("\n")
		}
	}

	if hint := se.Details["hint"]; hint != "" {
		sb.WriteString("\nhint: ")
		sb.WriteString(hint)
		sb.WriteString("\n")
	}

	for _, try := range deriveTryLines(se) {
		sb.WriteString("try: ")
		sb.WriteString(try)
		sb.WriteString("\n")
	}

	return sb.String()
}

// PrintWithOptions writes a formatted error to w with the given options.
func PrintWithOptions(w io.Writer, err error, opts PrintOptions) {
	if err == nil {
		return
	}
	_, _ = io.WriteString(w, Format(err, opts))
}

// sanitizeValue flattens a value onto one line:
// trailing whitespace trimmed, CRLF normalized, newlines escaped, length capped.
func sanitizeValue(val string, maxLen int) string {
	val = strings.TrimRight(val, " \t\r\n")
	val = strings.ReplaceAll(val, "\r\n", "\n")
	val = strings.ReplaceAll(val, "\n", "\\n")
	if len(val) > maxLen {
		return val[:maxLen] + "…"
	}
	return val
}

// deriveTryLines returns actionable suggestions based on error code.
func deriveTryLines(se *ShelfError) []string {
	switch se.Code {
	case ENoShelves:
		return []string{"shelf shelve <name> <path>..."}
	case EShelfNotFound:
		return []string{"shelf shelves"}
	case EShelfExists:
		if name := se.Details["name"]; name != "" {
			return []string{"shelf shelve --remove " + name}
		}
	case ESvnNotInstalled:
		return []string{"set \"svn\" in config.json or SHELF_SVN"}
	}
	return nil
}

// GetHint extracts the hint from an error's details, if present.
func GetHint(err error) string {
	se, ok := AsShelfError(err)
	if !ok {
		return ""
	}
	return se.Details["hint"]
}
