// Package resolve locates a real, launchable target from a partial,
// ambiguous, or symbolic executable specifier, trying strategies in a
// defined precedence order and degrading gracefully to "unavailable".
package resolve

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mj1618/deskbar/internal/platform"
)

// Kind discriminates what a resolved target actually is.
type Kind int

const (
	// KindExe is an ordinary executable path on disk.
	KindExe Kind = iota
	// KindPackage is a packaged-app identity, launched via package activation.
	KindPackage
	// KindShellAlias is a protocol launch alias (e.g. "https:") handed to
	// the OS shell, which picks the handler itself.
	KindShellAlias
)

// Target is a canonical launchable identity produced by resolution.
type Target struct {
	Kind Kind
	// Path is the executable path, the package identity, or the alias,
	// depending on Kind.
	Path string
	// TrailingArgs carries the argument string split off a
	// quoted-path-with-arguments specifier.
	TrailingArgs string
}

// appxPrefix marks a specifier as a package identity; no filesystem search
// is performed for these.
const appxPrefix = "appx:"

// symbolicTargets maps known symbolic ids to a concrete search name, which
// still runs through the registration and search-path strategies.
var symbolicTargets = map[string]string{
	"calculator":     "calc.exe",
	"microsoftEdge":  "msedge.exe",
	"microsoftSkype": "skype.exe",
}

// Warnf is called for non-fatal resolution warnings (e.g. an unmatched
// quote in a specifier). Tests may replace it.
var Warnf = func(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "warning: "+format+"\n", args...)
}

// Resolve turns a raw executable specifier into a launchable Target.
// Strategies are tried in order; the first match wins. A specifier that
// exhausts every strategy is unavailable (nil, false), an expected
// terminal state rather than an error.
func Resolve(p *platform.Provider, raw string) (*Target, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, false
	}

	// Package identity: strip the prefix and take the remainder as-is.
	if len(raw) >= len(appxPrefix) && strings.EqualFold(raw[:len(appxPrefix)], appxPrefix) {
		return &Target{Kind: KindPackage, Path: raw[len(appxPrefix):]}, true
	}

	// Symbolic id: substitute the fixed search name and fall through to
	// the registration and search-path strategies.
	if name, ok := symbolicTargets[raw]; ok {
		if path, ok := searchKnownStores(p, name); ok {
			return &Target{Kind: KindExe, Path: path}, true
		}
		return nil, false
	}

	candidate := raw
	trailing := ""
	if strings.HasPrefix(candidate, `"`) {
		var unmatched bool
		candidate, trailing, unmatched = SplitCommand(candidate)
		if unmatched {
			Warnf("specifier %s has no closing quote", raw)
		}
	}

	// Rooted paths are taken verbatim when they exist; otherwise the bare
	// file name is carried forward to the remaining strategies.
	name := candidate
	if filepath.IsAbs(candidate) {
		if p.FS.Exists(candidate) {
			return &Target{Kind: KindExe, Path: candidate, TrailingArgs: trailing}, true
		}
		name = filepath.Base(candidate)
	}

	if path, ok := searchKnownStores(p, name); ok {
		return &Target{Kind: KindExe, Path: path, TrailingArgs: trailing}, true
	}
	return nil, false
}

// searchKnownStores runs the app-registration and search-path strategies
// over the extension variations of name.
func searchKnownStores(p *platform.Provider, name string) (string, bool) {
	for _, candidate := range extensionVariants(name, p.Host.ExecExt()) {
		if path, ok := lookupAppPaths(p, candidate); ok {
			return path, true
		}
		if path, ok := searchPath(p, candidate); ok {
			return path, true
		}
	}
	return "", false
}

// extensionVariants orders the with-extension and as-is forms of a name.
// Names already carrying the platform executable extension get no variants.
// The with-extension form is tried first unless the name ends with a bare
// trailing separator or dot, in which case the as-is form goes first. Both
// separator characters count, as they do on the target platform, whatever
// OS this runs on.
func extensionVariants(name string, execExt string) []string {
	if execExt == "" || strings.EqualFold(filepath.Ext(name), execExt) {
		return []string{name}
	}
	if strings.HasSuffix(name, ".") || strings.HasSuffix(name, `\`) || strings.HasSuffix(name, "/") {
		return []string{name, name + execExt}
	}
	return []string{name + execExt, name}
}

// lookupAppPaths consults the per-user then per-machine registration store;
// the user scope takes priority.
func lookupAppPaths(p *platform.Provider, name string) (string, bool) {
	if p.AppPaths == nil {
		return "", false
	}
	for _, scope := range []platform.Scope{platform.ScopeUser, platform.ScopeMachine} {
		if path, ok := p.AppPaths.Lookup(name, scope); ok {
			return path, true
		}
	}
	return "", false
}

// searchPath walks the ordered search-path environment value and returns
// the first directory entry that exists on disk.
func searchPath(p *platform.Provider, name string) (string, bool) {
	for _, dir := range filepath.SplitList(p.Host.SearchPath()) {
		if dir == "" {
			continue
		}
		candidate := filepath.Join(dir, name)
		if p.FS.Exists(candidate) {
			return candidate, true
		}
	}
	return "", false
}
