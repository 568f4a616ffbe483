//go:build windows

package windows

import "os"

// hostInfo implements platform.Host for Windows.
type hostInfo struct{}

func (hostInfo) SearchPath() string {
	return os.Getenv("PATH")
}

func (hostInfo) ExecExt() string {
	return ".exe"
}

// fileSystem implements platform.FileSystem.
type fileSystem struct{}

func (fileSystem) Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
