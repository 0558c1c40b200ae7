// Package redact scrubs credentials from strings before they are
// logged. Error messages from HTTP clients can echo full request URLs,
// and the generation APIs are keyed through query parameters or
// headers that must never reach the log output.
package redact

import "regexp"

// Placeholder replaces every redacted value.
const Placeholder = "[REDACTED]"

var (
	// key=... style query parameters carrying API keys or tokens.
	keyParamRegex = regexp.MustCompile(`(?i)([?&](?:key|api[_-]?key|token)=)[^&\s"':]+`)

	// api_key: ..., token=... style assignments in error text.
	assignmentRegex = regexp.MustCompile(`(?i)(api[_-]?key|token|secret)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`)
)

// String returns s with every recognized credential replaced by the
// placeholder.
func String(s string) string {
	s = keyParamRegex.ReplaceAllString(s, "${1}"+Placeholder)
	s = assignmentRegex.ReplaceAllString(s, "${1}${2}"+Placeholder)
	return s
}

// Error is a nil-safe String over an error's message.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
