//go:build windows

package windows

import "github.com/mj1618/deskbar/internal/platform"

func init() {
	platform.NewProviderFunc = func() (*platform.Provider, error) {
		return &platform.Provider{
			FS:           fileSystem{},
			AppPaths:     appPaths{},
			Associations: associations{},
			Starter:      starter{},
			Packages:     packages{},
			Processes:    processes{},
			Store:        registryStore{},
			Host:         hostInfo{},
		}, nil
	}
}
