package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mj1618/deskbar/internal/launch"
	"github.com/mj1618/deskbar/internal/output"
	"github.com/mj1618/deskbar/internal/platform"
	"github.com/mj1618/deskbar/internal/resolve"
)

// LaunchResult is the output of a successful launch.
type LaunchResult struct {
	OK        bool   `yaml:"ok"                  json:"ok"`
	Path      string `yaml:"path"                json:"path"`
	Activated bool   `yaml:"activated,omitempty" json:"activated,omitempty"`
}

var launchCmd = &cobra.Command{
	Use:   "launch <specifier>",
	Short: "Resolve and launch an application",
	Long: `Resolve a specifier and launch it. An already-running instance is
brought to the foreground instead, unless --new-instance is given.

Examples:
  deskbar launch notepad
  deskbar launch msedge --arg --inprivate
  deskbar launch calculator --new-instance
  deskbar launch mspaint --window-style maximized`,
	Args: cobra.ExactArgs(1),
	RunE: runLaunch,
}

func init() {
	rootCmd.AddCommand(launchCmd)
	launchCmd.Flags().StringArray("arg", nil, "Argument to pass (repeatable)")
	launchCmd.Flags().String("args-string", "", "Raw argument string (mutually exclusive with --arg)")
	launchCmd.Flags().StringArray("env", nil, "Extra environment variable, KEY=VALUE (repeatable)")
	launchCmd.Flags().String("window-style", "", "Window style: normal, minimized, maximized, hidden")
	launchCmd.Flags().Bool("shell", false, "Launch through the OS shell instead of directly")
	launchCmd.Flags().Bool("new-instance", false, "Always start a new instance")
}

func runLaunch(cmd *cobra.Command, args []string) error {
	argList, _ := cmd.Flags().GetStringArray("arg")
	argsString, _ := cmd.Flags().GetString("args-string")
	envPairs, _ := cmd.Flags().GetStringArray("env")
	styleStr, _ := cmd.Flags().GetString("window-style")
	useShell, _ := cmd.Flags().GetBool("shell")
	newInstance, _ := cmd.Flags().GetBool("new-instance")

	if len(argList) > 0 && argsString != "" {
		return fmt.Errorf("--arg and --args-string are mutually exclusive")
	}
	env, err := parseEnvPairs(envPairs)
	if err != nil {
		return err
	}
	style, err := platform.ParseWindowStyle(styleStr)
	if err != nil {
		return err
	}

	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}

	target, ok := resolve.Resolve(provider, args[0])
	if !ok {
		return fmt.Errorf("cannot resolve %q to a launchable target", args[0])
	}

	if !newInstance && target.Kind == resolve.KindExe {
		if err := launch.ActivateExisting(provider, target.Path); err == nil {
			return output.Print(LaunchResult{OK: true, Path: target.Path, Activated: true})
		}
	}

	err = launch.Launch(provider, launch.Spec{
		Target:      target,
		Args:        argList,
		ArgsString:  argsString,
		Env:         env,
		WindowStyle: style,
		UseShell:    useShell,
	})
	if err != nil {
		return err
	}
	return output.Print(LaunchResult{OK: true, Path: target.Path})
}
