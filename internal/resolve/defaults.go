package resolve

import (
	"fmt"
	"strings"

	"github.com/mj1618/deskbar/internal/platform"
)

// DefaultKind names a symbolic default-application alias.
type DefaultKind string

const (
	DefaultBrowser DefaultKind = "browser"
	DefaultEmail   DefaultKind = "email"
)

// ParseDefaultKind converts a configured alias string to a DefaultKind.
func ParseDefaultKind(s string) (DefaultKind, error) {
	switch strings.ToLower(s) {
	case "browser":
		return DefaultBrowser, nil
	case "email":
		return DefaultEmail, nil
	default:
		return "", fmt.Errorf("unknown default-application alias: %q (expected browser or email)", s)
	}
}

// ResolveDefault resolves a symbolic default-application alias to a
// concrete target.
//
// Browser: the user's chosen https handler, then the .htm handler, then the
// "https:" launch alias handed to the shell; the browser chain never ends
// in unavailable. Email: always the "mailto:" launch alias.
func ResolveDefault(p *platform.Provider, kind DefaultKind) (*Target, bool) {
	switch kind {
	case DefaultBrowser:
		if t, ok := schemeHandlerTarget(p, "https"); ok {
			return t, true
		}
		if t, ok := extensionHandlerTarget(p, ".htm"); ok {
			return t, true
		}
		return &Target{Kind: KindShellAlias, Path: "https:"}, true
	case DefaultEmail:
		return &Target{Kind: KindShellAlias, Path: "mailto:"}, true
	default:
		return nil, false
	}
}

func schemeHandlerTarget(p *platform.Provider, scheme string) (*Target, bool) {
	if p.Associations == nil {
		return nil, false
	}
	handlerID, ok := p.Associations.SchemeHandler(scheme)
	if !ok {
		return nil, false
	}
	return handlerTarget(p, handlerID)
}

func extensionHandlerTarget(p *platform.Provider, ext string) (*Target, bool) {
	if p.Associations == nil {
		return nil, false
	}
	handlerID, ok := p.Associations.ExtensionHandler(ext)
	if !ok {
		return nil, false
	}
	return handlerTarget(p, handlerID)
}

// handlerTarget looks up a handler's launch command template and strips it
// to the executable portion.
func handlerTarget(p *platform.Provider, handlerID string) (*Target, bool) {
	command, ok := p.Associations.HandlerCommand(handlerID)
	if !ok {
		return nil, false
	}
	exe := StripArguments(command)
	if exe == "" {
		return nil, false
	}
	return &Target{Kind: KindExe, Path: exe}, true
}
