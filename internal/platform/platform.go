package platform

// FileSystem answers existence checks for candidate executable paths.
type FileSystem interface {
	// Exists reports whether a file exists at the given path.
	Exists(path string) bool
}

// AppPaths looks up the per-user and per-machine "known application paths"
// registration store (the App Paths mechanism on Windows).
type AppPaths interface {
	// Lookup returns the registered full path for a bare executable name
	// (e.g. "msedge.exe") in the given scope.
	Lookup(name string, scope Scope) (string, bool)
}

// Associations reads the user's chosen handler per URL scheme and file
// extension, and the launch command template registered for a handler.
type Associations interface {
	// SchemeHandler returns the handler id the user chose for a URL scheme
	// (e.g. "https").
	SchemeHandler(scheme string) (string, bool)

	// ExtensionHandler returns the handler id the user chose for a file
	// extension (e.g. ".htm").
	ExtensionHandler(ext string) (string, bool)

	// HandlerCommand returns the launch command template registered for a
	// handler id. The template may contain the executable path plus
	// argument tokens like "%1".
	HandlerCommand(handlerID string) (string, bool)
}

// Starter starts native processes and shell-opens targets.
type Starter interface {
	// Start launches a new process and returns its pid. A process must
	// actually have been obtained for Start to succeed.
	Start(opts StartOptions) (int, error)

	// ShellOpen opens a target (URL, document, executable, or launch
	// alias like "https:") through the OS shell association mechanism.
	// args may be empty.
	ShellOpen(target string, args string) error
}

// Packages activates packaged applications (AppX-style identities).
type Packages interface {
	// Activate launches the packaged app with the given identity and
	// returns the new process id. A non-positive pid means activation
	// failed.
	Activate(identity string, args string) (int, error)
}

// Processes enumerates and activates running processes.
type Processes interface {
	// Windowed returns processes exposing a visible top-level window,
	// ordered most recently started first.
	Windowed() ([]ProcessInfo, error)

	// Activate brings the main window of the given process to the foreground.
	Activate(pid int) error

	// Running reports whether a process with the given image name
	// (extension-less comparison) is currently running.
	Running(imageName string) (bool, error)
}

// KeyValueStore is a registry-style persistent store used by setting handlers.
// Values are transported as strings; callers convert per the handler's
// declared value type.
type KeyValueStore interface {
	Get(root, key, name string) (string, bool, error)
	Set(root, key, name, value string) error
}

// Host exposes process-wide lookup configuration.
type Host interface {
	// SearchPath returns the ordered search-path environment value
	// (PATH on every supported OS).
	SearchPath() string

	// ExecExt returns the definitive platform executable extension
	// (".exe" on Windows, "" where executables carry no extension).
	ExecExt() string
}
