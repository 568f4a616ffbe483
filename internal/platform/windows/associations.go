//go:build windows

package windows

import (
	"golang.org/x/sys/windows/registry"
)

const (
	urlAssociationsKey = `Software\Microsoft\Windows\Shell\Associations\UrlAssociations`
	fileExtsKey        = `Software\Microsoft\Windows\CurrentVersion\Explorer\FileExts`
)

// associations implements platform.Associations against the per-user
// UserChoice registration and the HKCR command templates.
type associations struct{}

func (associations) SchemeHandler(scheme string) (string, bool) {
	return userChoiceProgID(urlAssociationsKey + `\` + scheme + `\UserChoice`)
}

func (associations) ExtensionHandler(ext string) (string, bool) {
	return userChoiceProgID(fileExtsKey + `\` + ext + `\UserChoice`)
}

func (associations) HandlerCommand(handlerID string) (string, bool) {
	k, err := registry.OpenKey(registry.CLASSES_ROOT, handlerID+`\shell\open\command`, registry.QUERY_VALUE)
	if err != nil {
		return "", false
	}
	defer k.Close()

	v, _, err := k.GetStringValue("")
	if err != nil || v == "" {
		return "", false
	}
	return v, true
}

func userChoiceProgID(key string) (string, bool) {
	k, err := registry.OpenKey(registry.CURRENT_USER, key, registry.QUERY_VALUE)
	if err != nil {
		return "", false
	}
	defer k.Close()

	v, _, err := k.GetStringValue("ProgId")
	if err != nil || v == "" {
		return "", false
	}
	return v, true
}
