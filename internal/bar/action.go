// Package bar models configured bar items and their invocable actions:
// a closed set of action variants sharing a uniform invocation contract.
package bar

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/mj1618/deskbar/internal/launch"
	"github.com/mj1618/deskbar/internal/platform"
	"github.com/mj1618/deskbar/internal/resolve"
	"github.com/mj1618/deskbar/internal/solutions"
)

// ActionKind discriminates the action variants.
type ActionKind string

const (
	ActionApplication ActionKind = "application"
	ActionLink        ActionKind = "link"
	ActionSetting     ActionKind = "setting"
	ActionNoOp        ActionKind = "noop"
)

// Action is the closed variant set of bar behaviors: a kind tag plus
// exactly one populated variant. Dispatch is by exhaustive switch so new
// kinds are compiler-checked.
type Action struct {
	Kind  ActionKind
	Image string // advisory, UI-facing

	Application *ApplicationAction
	Link        *WebAction
	Setting     *SettingAction
}

// ApplicationAction launches a native or packaged application.
type ApplicationAction struct {
	ExeName     string              // raw specifier as configured
	Default     resolve.DefaultKind // symbolic default-app alias, or ""
	Target      *resolve.Target     // resolved launchable identity; nil = unavailable
	Args        []string
	ArgsString  string
	Env         map[string]string
	AppX        bool
	Shell       bool
	NewInstance bool
	WindowStyle platform.WindowStyle
}

// WebAction opens a URL in the default browser.
type WebAction struct {
	URLString string   // raw configured value, kept for diagnostics
	URI       *url.URL // non-nil only for absolute http/https URLs
}

// SettingAction changes a logical setting through the solutions catalogue.
type SettingAction struct {
	SettingID string
	Setting   *solutions.Setting   // bound at decode; nil if the id was absent
	Solutions *solutions.Solutions // shared catalogue handle, not owned
}

// rawAction is the JSON shape of an action document, discriminated by type.
type rawAction struct {
	Type        string            `json:"type"`
	Image       string            `json:"image"`
	Exe         string            `json:"exe"`
	Default     string            `json:"default"`
	Args        []string          `json:"args"`
	ArgsString  string            `json:"argsString"`
	Env         map[string]string `json:"env"`
	AppX        bool              `json:"appx"`
	Shell       bool              `json:"shell"`
	NewInstance bool              `json:"newInstance"`
	WindowStyle string            `json:"windowStyle"`
	URL         string            `json:"url"`
	SettingID   string            `json:"settingId"`
}

// UnmarshalJSON decodes and validates an action document. Validation that
// needs no platform access happens here; resolution happens in Bind.
func (a *Action) UnmarshalJSON(b []byte) error {
	var raw rawAction
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	switch ActionKind(strings.ToLower(raw.Type)) {
	case ActionApplication:
		if raw.Exe == "" && raw.Default == "" {
			return fmt.Errorf("application action: exe or default is required")
		}
		if len(raw.Args) > 0 && raw.ArgsString != "" {
			return fmt.Errorf("application action: args and argsString are mutually exclusive")
		}
		style, err := platform.ParseWindowStyle(raw.WindowStyle)
		if err != nil {
			return fmt.Errorf("application action: %w", err)
		}
		app := &ApplicationAction{
			ExeName:     raw.Exe,
			Args:        raw.Args,
			ArgsString:  raw.ArgsString,
			Env:         raw.Env,
			AppX:        raw.AppX,
			Shell:       raw.Shell,
			NewInstance: raw.NewInstance,
			WindowStyle: style,
		}
		if raw.Default != "" {
			kind, err := resolve.ParseDefaultKind(raw.Default)
			if err != nil {
				return fmt.Errorf("application action: %w", err)
			}
			app.Default = kind
		}
		*a = Action{Kind: ActionApplication, Image: raw.Image, Application: app}
		return nil

	case ActionLink:
		*a = Action{Kind: ActionLink, Image: raw.Image, Link: &WebAction{URLString: raw.URL}}
		return nil

	case ActionSetting:
		if raw.SettingID == "" {
			return fmt.Errorf("setting action: settingId is required")
		}
		*a = Action{Kind: ActionSetting, Image: raw.Image, Setting: &SettingAction{SettingID: raw.SettingID}}
		return nil

	case ActionNoOp:
		*a = Action{Kind: ActionNoOp, Image: raw.Image}
		return nil

	default:
		return fmt.Errorf("unknown action type: %q", raw.Type)
	}
}

// allowedSchemes is the scheme allow-set for web actions. Anything else
// leaves the URI nil and the raw string preserved for diagnostics.
var allowedSchemes = map[string]bool{"http": true, "https": true}

// Bind resolves the action's concrete target against the platform and the
// shared solutions catalogue. An unresolvable executable or an absent
// setting id leaves the action unavailable; it is not a bind error.
func (a *Action) Bind(p *platform.Provider, sols *solutions.Solutions) {
	switch a.Kind {
	case ActionApplication:
		app := a.Application
		if app.Default != "" || app.ExeName == "" {
			return
		}
		if app.AppX {
			app.Target = &resolve.Target{Kind: resolve.KindPackage, Path: app.ExeName}
			return
		}
		if target, ok := resolve.Resolve(p, app.ExeName); ok {
			app.Target = target
		}

	case ActionLink:
		u, err := url.Parse(a.Link.URLString)
		if err == nil && u.IsAbs() && allowedSchemes[u.Scheme] {
			a.Link.URI = u
		}

	case ActionSetting:
		a.Setting.Solutions = sols
		if sols == nil {
			return
		}
		setting, err := sols.GetSetting(a.Setting.SettingID)
		if err != nil {
			// Recoverable: the item stays, marked unavailable.
			resolve.Warnf("setting %s not in catalogue", a.Setting.SettingID)
			return
		}
		a.Setting.Setting = setting
	}
}

// IsAvailable reports whether invoking the action can plausibly succeed.
func (a *Action) IsAvailable() bool {
	switch a.Kind {
	case ActionApplication:
		return a.Application.Default != "" || a.Application.Target != nil
	case ActionLink:
		return a.Link.URI != nil
	case ActionSetting:
		return a.Setting.Setting != nil
	case ActionNoOp:
		return true
	default:
		return false
	}
}

// Invoke runs the action with the given invocation context. It returns an
// error instead of throwing; resolution misses surface as errors only where
// the variant's contract says so.
func (a *Action) Invoke(p *platform.Provider, inv Invocation) error {
	switch a.Kind {
	case ActionApplication:
		return a.Application.invoke(p, inv)
	case ActionLink:
		return a.Link.invoke(p, inv)
	case ActionSetting:
		return a.Setting.invoke(p, inv)
	case ActionNoOp:
		return nil
	default:
		return fmt.Errorf("unknown action kind: %q", a.Kind)
	}
}

func (a *ApplicationAction) invoke(p *platform.Provider, inv Invocation) error {
	if a.Default != "" {
		target, ok := resolve.ResolveDefault(p, a.Default)
		if !ok {
			return fmt.Errorf("no default application for %q", a.Default)
		}
		return launch.Launch(p, launch.Spec{Target: target, WindowStyle: a.WindowStyle})
	}

	if a.ExeName == "" || a.Target == nil {
		return fmt.Errorf("application %q is not available", a.ExeName)
	}

	// Package identities go straight to the package launcher.
	if a.Target.Kind == resolve.KindPackage {
		return launch.Launch(p, launch.Spec{
			Target:     a.Target,
			Args:       a.Args,
			ArgsString: a.ArgsString,
		})
	}

	// An unresolvable argument placeholder omits the argument; an
	// unresolvable environment value is a fatal misconfiguration.
	var args []string
	for _, arg := range a.Args {
		resolved, ok := ResolvePlaceholders(arg, inv)
		if !ok {
			continue
		}
		args = append(args, resolved)
	}
	argsString := ""
	if a.ArgsString != "" {
		if resolved, ok := ResolvePlaceholders(a.ArgsString, inv); ok {
			argsString = resolved
		}
	}
	var env map[string]string
	if len(a.Env) > 0 {
		env = make(map[string]string, len(a.Env))
		for k, v := range a.Env {
			resolved, ok := ResolvePlaceholders(v, inv)
			if !ok {
				return fmt.Errorf("environment variable %s: unresolved placeholder in %q", k, v)
			}
			env[k] = resolved
		}
	}

	// Reuse a running instance unless a new one was asked for.
	if !a.NewInstance {
		if err := launch.ActivateExisting(p, a.Target.Path); err == nil {
			return nil
		}
	}

	return launch.Launch(p, launch.Spec{
		Target:      a.Target,
		Args:        args,
		ArgsString:  argsString,
		Env:         env,
		WindowStyle: a.WindowStyle,
		UseShell:    a.Shell,
	})
}

func (w *WebAction) invoke(p *platform.Provider, inv Invocation) error {
	// No accepted URI means nothing to do, not a failure.
	if w.URI == nil {
		return nil
	}
	// Substitute over the raw configured string: re-serializing the parsed
	// URL percent-encodes the token braces in the path before the tokens
	// can be resolved.
	target, ok := ResolvePlaceholders(w.URLString, inv)
	if !ok {
		return fmt.Errorf("link %q: unresolved placeholder", w.URLString)
	}
	return p.Starter.ShellOpen(target, "")
}

func (s *SettingAction) invoke(p *platform.Provider, inv Invocation) error {
	// With no bound setting, a source token names the setting to change
	// and the toggle state is pushed as its new value.
	if s.Setting == nil {
		if inv.Source == "" {
			return fmt.Errorf("setting %q is not available", s.SettingID)
		}
		if s.Solutions == nil {
			return fmt.Errorf("setting %q: no solutions catalogue", s.SettingID)
		}
		setting, err := s.Solutions.GetSetting(inv.Source)
		if err != nil {
			return err
		}
		if inv.ToggleState == nil {
			return fmt.Errorf("setting %s: no toggle state to apply", inv.Source)
		}
		return setting.Set(p, *inv.ToggleState)
	}

	switch inv.Source {
	case "inc":
		return s.Setting.Increment(p, 1)
	case "dec":
		return s.Setting.Increment(p, -1)
	case "on":
		return s.Setting.Set(p, true)
	case "off":
		return s.Setting.Set(p, false)
	default:
		return fmt.Errorf("setting %s: unknown source %q (expected inc, dec, on, or off)", s.SettingID, inv.Source)
	}
}
