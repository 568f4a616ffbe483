// Package launch starts resolved targets (native processes, packaged-app
// identities, shell aliases) and activates already-running instances.
package launch

import (
	"fmt"
	"strings"

	"github.com/mj1618/deskbar/internal/platform"
	"github.com/mj1618/deskbar/internal/resolve"
)

// Spec describes a single launch attempt. Args and ArgsString are mutually
// exclusive; callers choose one.
type Spec struct {
	Target      *resolve.Target
	Args        []string
	ArgsString  string
	Env         map[string]string
	WindowStyle platform.WindowStyle
	UseShell    bool
}

// Launch starts the target described by spec. It reports success only if a
// process was actually obtained (or the shell accepted the target). A single
// attempt; no retries or timeouts.
func Launch(p *platform.Provider, spec Spec) error {
	if spec.Target == nil {
		return fmt.Errorf("launch: no target")
	}
	if len(spec.Args) > 0 && spec.ArgsString != "" {
		return fmt.Errorf("launch %s: args and argsString are mutually exclusive", spec.Target.Path)
	}

	args, argsString := mergeTrailing(spec)

	switch spec.Target.Kind {
	case resolve.KindPackage:
		if argsString == "" {
			argsString = strings.Join(args, " ")
		}
		pid, err := p.Packages.Activate(spec.Target.Path, argsString)
		if err != nil {
			return fmt.Errorf("activate package %s: %w", spec.Target.Path, err)
		}
		if pid <= 0 {
			return fmt.Errorf("activate package %s: no process obtained", spec.Target.Path)
		}
		return nil

	case resolve.KindShellAlias:
		return p.Starter.ShellOpen(spec.Target.Path, "")

	default:
		if spec.UseShell {
			if argsString == "" {
				argsString = strings.Join(args, " ")
			}
			return p.Starter.ShellOpen(spec.Target.Path, argsString)
		}
		pid, err := p.Starter.Start(platform.StartOptions{
			Path:        spec.Target.Path,
			Args:        args,
			ArgsString:  argsString,
			Env:         spec.Env,
			WindowStyle: spec.WindowStyle,
		})
		if err != nil {
			return err
		}
		if pid <= 0 {
			return fmt.Errorf("start %s: no process obtained", spec.Target.Path)
		}
		return nil
	}
}

// mergeTrailing folds the argument string split off a quoted specifier into
// the launch arguments. It stays a raw prefix of the argument string when
// possible; with an argument list it is whitespace-split, which is the best
// available reading of a raw trailing string.
func mergeTrailing(spec Spec) ([]string, string) {
	trailing := spec.Target.TrailingArgs
	if trailing == "" {
		return spec.Args, spec.ArgsString
	}
	if len(spec.Args) > 0 {
		return append(strings.Fields(trailing), spec.Args...), ""
	}
	if spec.ArgsString != "" {
		return nil, trailing + " " + spec.ArgsString
	}
	return nil, trailing
}

// ActivateExisting brings the most recently started running instance of the
// target to the foreground. The image-name comparison is extension-less.
// It fails when no matching windowed process exists or activation fails.
func ActivateExisting(p *platform.Provider, path string) error {
	want := imageName(path)
	if want == "" {
		return fmt.Errorf("activate: empty target path")
	}

	procs, err := p.Processes.Windowed()
	if err != nil {
		return fmt.Errorf("activate %s: %w", path, err)
	}
	for _, proc := range procs {
		if imageName(proc.Name) == want {
			if err := p.Processes.Activate(proc.PID); err != nil {
				return fmt.Errorf("activate %s (pid %d): %w", path, proc.PID, err)
			}
			return nil
		}
	}
	return fmt.Errorf("activate %s: no running instance with a visible window", path)
}

// imageName reduces a path to its lowercase, extension-less file name.
func imageName(path string) string {
	name := path
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.LastIndexByte(name, '.'); i > 0 {
		name = name[:i]
	}
	return strings.ToLower(name)
}
