// Package redact strips filesystem paths, network addresses and stack traces
// from error text before it is written to logs. Values that operators need
// (for example the path of a served image) are logged as explicit attributes
// instead.
package redact

import "regexp"

// Placeholders substituted for redacted fragments.
const (
	RedactedPathPlaceholder  = "[REDACTED_PATH]"
	RedactedAddrPlaceholder  = "[REDACTED_ADDR]"
	RedactedStackPlaceholder = "[STACK_TRACE_REDACTED]"
)

type rule struct {
	pattern     *regexp.Regexp
	placeholder string
}

// rules are applied in order; stack traces go first so the paths inside
// them are not redacted piecemeal.
var rules = []rule{
	{
		pattern:     regexp.MustCompile(`(?:goroutine \d+|panic:)[\s\S]*?(\n\t.*)+`),
		placeholder: RedactedStackPlaceholder,
	},
	{
		pattern:     regexp.MustCompile(`[A-Za-z]:\\[^\\\s:]+(\\[^\\\s:]+)+`),
		placeholder: RedactedPathPlaceholder,
	},
	{
		pattern:     regexp.MustCompile(`[\w.-]*(/[\w.-]+){2,}`),
		placeholder: RedactedPathPlaceholder,
	},
	{
		pattern:     regexp.MustCompile(`\b[\w-]+(?:\.[\w-]+)+:\d{1,5}\b`),
		placeholder: RedactedAddrPlaceholder,
	},
}

// String redacts sensitive fragments from input.
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range rules {
		result = r.pattern.ReplaceAllString(result, r.placeholder)
	}
	return result
}

// Error redacts sensitive fragments from err.Error(). A nil error yields "".
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
