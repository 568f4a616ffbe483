//go:build windows

package windows

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
	"syscall"

	sys "golang.org/x/sys/windows"

	"github.com/mj1618/deskbar/internal/platform"
)

// starter implements platform.Starter with CreateProcess and ShellExecute.
type starter struct{}

func (starter) Start(opts platform.StartOptions) (int, error) {
	if len(opts.Args) > 0 && opts.ArgsString != "" {
		return 0, fmt.Errorf("start %s: args and argsString are mutually exclusive", opts.Path)
	}

	cmd := exec.Command(opts.Path, opts.Args...)
	cmd.Env = mergeEnv(os.Environ(), opts.Env)
	// SysProcAttr carries no wShowWindow, so hidden is the only style a
	// direct start can enforce. See platform.StartOptions.WindowStyle.
	cmd.SysProcAttr = &syscall.SysProcAttr{
		HideWindow: opts.WindowStyle == platform.WindowHidden,
	}
	if opts.ArgsString != "" {
		// Legacy single-string mode: hand the raw argument string to
		// CreateProcess unmodified so the child parses it itself.
		cmd.SysProcAttr.CmdLine = quoteIfNeeded(opts.Path) + " " + opts.ArgsString
	}

	if err := cmd.Start(); err != nil {
		return 0, fmt.Errorf("start %s: %w", opts.Path, err)
	}
	pid := cmd.Process.Pid
	// Detach: the child outlives us.
	_ = cmd.Process.Release()
	return pid, nil
}

func (starter) ShellOpen(target string, args string) error {
	verb, err := sys.UTF16PtrFromString("open")
	if err != nil {
		return err
	}
	file, err := sys.UTF16PtrFromString(target)
	if err != nil {
		return err
	}
	var argp *uint16
	if args != "" {
		if argp, err = sys.UTF16PtrFromString(args); err != nil {
			return err
		}
	}
	if err := sys.ShellExecute(0, verb, file, argp, nil, sys.SW_SHOWNORMAL); err != nil {
		return fmt.Errorf("shell open %s: %w", target, err)
	}
	return nil
}

// mergeEnv overlays vars onto a base environment, replacing same-named entries.
func mergeEnv(base []string, vars map[string]string) []string {
	if len(vars) == 0 {
		return base
	}
	merged := make([]string, 0, len(base)+len(vars))
	for _, kv := range base {
		name := kv
		if i := strings.IndexByte(kv, '='); i >= 0 {
			name = kv[:i]
		}
		if _, ok := vars[name]; ok {
			continue
		}
		merged = append(merged, kv)
	}
	for k, v := range vars {
		merged = append(merged, k+"="+v)
	}
	return merged
}

func quoteIfNeeded(path string) string {
	if strings.ContainsAny(path, " \t") && !strings.HasPrefix(path, `"`) {
		return `"` + path + `"`
	}
	return path
}
