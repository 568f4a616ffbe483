package platform

import (
	"fmt"
	"strings"
	"time"
)

// Scope selects which registration store an AppPaths lookup consults.
type Scope int

const (
	// ScopeUser is the per-user registration store. It takes priority.
	ScopeUser Scope = iota
	// ScopeMachine is the per-machine registration store.
	ScopeMachine
)

// WindowStyle controls the initial window state of a launched process.
type WindowStyle int

const (
	WindowNormal WindowStyle = iota
	WindowMinimized
	WindowMaximized
	WindowHidden
)

// ParseWindowStyle converts a configured string to a WindowStyle.
// The empty string means WindowNormal.
func ParseWindowStyle(s string) (WindowStyle, error) {
	switch strings.ToLower(s) {
	case "", "normal":
		return WindowNormal, nil
	case "minimized":
		return WindowMinimized, nil
	case "maximized":
		return WindowMaximized, nil
	case "hidden":
		return WindowHidden, nil
	default:
		return WindowNormal, fmt.Errorf("unknown window style: %q (expected normal, minimized, maximized, or hidden)", s)
	}
}

// String returns the configuration spelling of the style.
func (w WindowStyle) String() string {
	switch w {
	case WindowMinimized:
		return "minimized"
	case WindowMaximized:
		return "maximized"
	case WindowHidden:
		return "hidden"
	default:
		return "normal"
	}
}

// StartOptions describes a process to start.
type StartOptions struct {
	Path       string            // Resolved executable path
	Args       []string          // Argument list (exclusive with ArgsString)
	ArgsString string            // Legacy single argument string (exclusive with Args)
	Env        map[string]string // Merged into the child's environment

	// WindowStyle is the requested initial window state. Direct starts
	// honor WindowHidden only: os/exec exposes no STARTUPINFO wShowWindow,
	// so minimized/maximized leave the child's default in place.
	WindowStyle WindowStyle
}

// ProcessInfo describes a running process.
type ProcessInfo struct {
	PID     int
	Name    string // Image name, e.g. "notepad.exe"
	Started time.Time
}
