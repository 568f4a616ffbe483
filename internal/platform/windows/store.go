//go:build windows

package windows

import (
	"fmt"
	"strconv"

	"golang.org/x/sys/windows/registry"
)

// registryStore implements platform.KeyValueStore on the Windows registry.
// Roots are spelled the way handler documents spell them: HKCU, HKLM,
// HKCR, HKU.
type registryStore struct{}

func rootKey(root string) (registry.Key, error) {
	switch root {
	case "HKCU":
		return registry.CURRENT_USER, nil
	case "HKLM":
		return registry.LOCAL_MACHINE, nil
	case "HKCR":
		return registry.CLASSES_ROOT, nil
	case "HKU":
		return registry.USERS, nil
	default:
		return 0, fmt.Errorf("unknown store root: %q", root)
	}
}

func (registryStore) Get(root, key, name string) (string, bool, error) {
	rk, err := rootKey(root)
	if err != nil {
		return "", false, err
	}
	k, err := registry.OpenKey(rk, key, registry.QUERY_VALUE)
	if err != nil {
		return "", false, nil
	}
	defer k.Close()

	if s, _, err := k.GetStringValue(name); err == nil {
		return s, true, nil
	}
	if n, _, err := k.GetIntegerValue(name); err == nil {
		return strconv.FormatUint(n, 10), true, nil
	}
	return "", false, nil
}

func (registryStore) Set(root, key, name, value string) error {
	rk, err := rootKey(root)
	if err != nil {
		return err
	}
	k, _, err := registry.CreateKey(rk, key, registry.SET_VALUE)
	if err != nil {
		return fmt.Errorf("open %s\\%s: %w", root, key, err)
	}
	defer k.Close()

	// Integral values are stored as DWORDs so existing numeric settings
	// keep their type; everything else is a string.
	if n, err := strconv.ParseUint(value, 10, 32); err == nil {
		return k.SetDWordValue(name, uint32(n))
	}
	return k.SetStringValue(name, value)
}
