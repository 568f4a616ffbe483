package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mj1618/deskbar/internal/output"
	"github.com/mj1618/deskbar/internal/platform"
	"github.com/mj1618/deskbar/internal/resolve"
)

// ResolveResult is the output of the `resolve` command.
type ResolveResult struct {
	Found        bool   `yaml:"found"                  json:"found"`
	Kind         string `yaml:"kind,omitempty"         json:"kind,omitempty"`
	Path         string `yaml:"path,omitempty"         json:"path,omitempty"`
	TrailingArgs string `yaml:"trailingArgs,omitempty" json:"trailingArgs,omitempty"`
}

var resolveCmd = &cobra.Command{
	Use:   "resolve [specifier]",
	Short: "Resolve an executable specifier without launching it",
	Long: `Resolve a specifier to a concrete launchable target: a bare name,
a full path, a quoted command line, an appx: package identity, or a
symbolic id. --default resolves a default-application alias instead.

Examples:
  deskbar resolve msedge
  deskbar resolve "\"C:\Tools\zoomit.exe\" /level 2"
  deskbar resolve appx:Microsoft.WindowsCalculator_8wekyb3d8bbwe!App
  deskbar resolve --default browser`,
	Args: cobra.MaximumNArgs(1),
	RunE: runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)
	resolveCmd.Flags().String("default", "", "Resolve a default-application alias: browser, email")
}

func runResolve(cmd *cobra.Command, args []string) error {
	defaultAlias, _ := cmd.Flags().GetString("default")
	if (len(args) == 0) == (defaultAlias == "") {
		return fmt.Errorf("specify exactly one of a specifier argument or --default")
	}

	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}

	var target *resolve.Target
	var ok bool
	if defaultAlias != "" {
		kind, err := resolve.ParseDefaultKind(defaultAlias)
		if err != nil {
			return err
		}
		target, ok = resolve.ResolveDefault(provider, kind)
	} else {
		target, ok = resolve.Resolve(provider, args[0])
	}

	if !ok {
		return output.Print(ResolveResult{Found: false})
	}
	return output.Print(ResolveResult{
		Found:        true,
		Kind:         targetKindName(target.Kind),
		Path:         target.Path,
		TrailingArgs: target.TrailingArgs,
	})
}

func targetKindName(k resolve.Kind) string {
	switch k {
	case resolve.KindPackage:
		return "package"
	case resolve.KindShellAlias:
		return "shell-alias"
	default:
		return "exe"
	}
}
