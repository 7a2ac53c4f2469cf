// Package errors provides error formatting for cmdkit CLI output.
package errors

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode/utf8"
)

// PrintOptions controls error output formatting.
type PrintOptions struct {
	// Verbose enables detailed error output with every detail key.
	Verbose bool
}

// Context key whitelist (default mode, in order)
var defaultContextKeys = []string{
	"command",
	"flag",
	"argument",
	"value",
	"reason",
}

// Additional context keys for verbose mode
var verboseContextKeys = []string{
	"command",
	"flag",
	"argument",
	"value",
	"reason",
	"rune",
	"offset",
	"hint",
}

const (
	maxValueLen      = 256 // Max chars for single-line context values
	maxExtraValueLen = 128 // Max chars for extra section values
)

// Format formats an error for display without I/O.
func Format(err error, opts PrintOptions) string {
	if err == nil {
		return ""
	}

	var sb strings.Builder

	ce, ok := AsCmdError(err)
	if !ok {
		sb.WriteString(err.Error())
		sb.WriteString("\n")
		return sb.String()
	}

	sb.WriteString("error_code: ")
	sb.WriteString(string(ce.Code))
	sb.WriteString("\n")

	sb.WriteString(ce.Msg)
	sb.WriteString("\n")

	contextKeys := defaultContextKeys
	if opts.Verbose {
		contextKeys = verboseContextKeys
	}

	printedKeys := make(map[string]bool)
	var block strings.Builder
	for _, key := range contextKeys {
		val, ok := ce.Details[key]
		if !ok || val == "" || key == "hint" {
			continue
		}
		printedKeys[key] = true
		block.WriteString(key)
		block.WriteString(": ")
		block.WriteString(sanitizeValue(val, maxValueLen))
		block.WriteString("\n")
	}
	if block.Len() > 0 {
		sb.WriteString("\n")
		sb.WriteString(block.String())
	}

	// In verbose mode, print extra keys under extra: section
	if opts.Verbose {
		var extraKeys []string
		for key, val := range ce.Details {
			if !printedKeys[key] && key != "hint" && val != "" {
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
				sb.WriteString(sanitizeValue(ce.Details[key], maxExtraValueLen))
				sb.WriteString("\n")
			}
		}
	}

	if hint := ce.Details["hint"]; hint != "" {
		sb.WriteString("\n")
		sb.WriteString(FormatHint(hint))
		sb.WriteString("\n")
	}

	for _, try := range deriveTryLines(ce) {
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

// sanitizeValue sanitizes a value for single-line context output.
// - Trims trailing whitespace first
// - Normalizes CRLF to LF
// - Replaces newlines with literal \n
// - Truncates to at most maxLen bytes on a rune boundary
func sanitizeValue(val string, maxLen int) string {
	val = strings.TrimRight(val, " \t\r\n")
	val = strings.ReplaceAll(val, "\r\n", "\n")
	val = strings.ReplaceAll(val, "\n", "\\n")

	if len(val) > maxLen {
		cut := maxLen
		for cut > 0 && !utf8.RuneStart(val[cut]) {
			cut--
		}
		return val[:cut] + "…"
	}
	return val
}

// deriveTryLines returns actionable suggestions based on error code.
func deriveTryLines(ce *CmdError) []string {
	if ce == nil {
		return nil
	}

	var lines []string

	switch ce.Code {
	case EInvalidArgument:
		switch ce.Details["reason"] {
		case "malformed":
			lines = append(lines, "use only letters, digits, '-' and '_'")
		case "not_uppercase_letter":
			lines = append(lines, "use a single uppercase letter, e.g. -V")
		}
	case EUsage:
		if cmd := ce.Details["command"]; cmd != "" {
			lines = append(lines, fmt.Sprintf("%s --help", cmd))
		}
	}

	return lines
}

// FormatHint formats a hint for output.
// If hint already starts with "hint:", returns as-is.
// Otherwise prepends "hint: ".
func FormatHint(hint string) string {
	if hint == "" {
		return ""
	}
	if strings.HasPrefix(hint, "hint:") {
		return hint
	}
	return "hint: " + hint
}
