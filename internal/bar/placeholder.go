package bar

import "strings"

// Invocation carries the runtime context of a bar-item invocation.
type Invocation struct {
	// Source identifies what triggered the invocation: the pressed
	// button's value, or a dispatch token for setting actions.
	Source string
	// ToggleState is the current toggle state, when the invoking control
	// has one.
	ToggleState *bool
}

// Placeholder tokens substituted into configured strings at invocation time.
const (
	tokenButton = "{{button}}"
	tokenState  = "{{state}}"
)

// ResolvePlaceholders substitutes recognized tokens inside template. A
// template without recognized tokens is returned unchanged. ok is false
// only when a recognized token has no substitution available in the
// current invocation context.
func ResolvePlaceholders(template string, inv Invocation) (string, bool) {
	out := template
	if strings.Contains(out, tokenButton) {
		if inv.Source == "" {
			return "", false
		}
		out = strings.ReplaceAll(out, tokenButton, inv.Source)
	}
	if strings.Contains(out, tokenState) {
		if inv.ToggleState == nil {
			return "", false
		}
		state := "off"
		if *inv.ToggleState {
			state = "on"
		}
		out = strings.ReplaceAll(out, tokenState, state)
	}
	return out, true
}
