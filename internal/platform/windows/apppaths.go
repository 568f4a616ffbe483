//go:build windows

package windows

import (
	"strings"

	"golang.org/x/sys/windows/registry"

	"github.com/mj1618/deskbar/internal/platform"
)

const appPathsKey = `Software\Microsoft\Windows\CurrentVersion\App Paths`

// appPaths implements platform.AppPaths against the registry App Paths store.
type appPaths struct{}

func (appPaths) Lookup(name string, scope platform.Scope) (string, bool) {
	root := registry.CURRENT_USER
	if scope == platform.ScopeMachine {
		root = registry.LOCAL_MACHINE
	}
	k, err := registry.OpenKey(root, appPathsKey+`\`+name, registry.QUERY_VALUE)
	if err != nil {
		return "", false
	}
	defer k.Close()

	// The default value holds the full executable path, sometimes quoted.
	v, _, err := k.GetStringValue("")
	if err != nil || v == "" {
		return "", false
	}
	return strings.Trim(v, `"`), true
}
