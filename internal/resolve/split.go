package resolve

import "strings"

// SplitCommand splits a command line into its executable portion and the
// trailing argument string, using the same heuristics for configured
// specifiers and for handler command templates read from the OS:
//
//   - A leading quote delimits the executable up to the matching closing
//     quote; the remainder (trimmed) is the argument string.
//   - Without a leading quote, everything up to the first space is the
//     executable. Unquoted paths containing spaces are an unresolvable
//     ambiguity; the first-space split is the documented behavior.
//
// unmatchedQuote is true when a leading quote has no closing quote. In that
// case the executable is everything after the opening quote and args is
// empty. Callers decide whether to log a warning.
func SplitCommand(command string) (exe, args string, unmatchedQuote bool) {
	command = strings.TrimSpace(command)
	if command == "" {
		return "", "", false
	}

	if command[0] == '"' {
		rest := command[1:]
		end := strings.IndexByte(rest, '"')
		if end < 0 {
			return rest, "", true
		}
		return rest[:end], strings.TrimSpace(rest[end+1:]), false
	}

	if sp := strings.IndexByte(command, ' '); sp >= 0 {
		return command[:sp], strings.TrimSpace(command[sp+1:]), false
	}
	return command, "", false
}

// StripArguments returns only the executable portion of a handler command
// template, discarding any argument tokens (e.g. trailing "%1").
func StripArguments(command string) string {
	exe, _, _ := SplitCommand(command)
	return exe
}
