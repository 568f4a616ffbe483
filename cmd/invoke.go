package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mj1618/deskbar/internal/output"
)

// InvokeResult is the output of a successful invoke.
type InvokeResult struct {
	OK     bool   `yaml:"ok"               json:"ok"`
	Item   string `yaml:"item"             json:"item"`
	Button string `yaml:"button,omitempty" json:"button,omitempty"`
}

var invokeCmd = &cobra.Command{
	Use:   "invoke <item-id>",
	Short: "Invoke a bar item",
	Long: `Invoke a bar item: launch its application, open its link, or change
its setting. For multi-button items, --button selects the button; its
configured value becomes the action's input.

Examples:
  deskbar invoke open-help
  deskbar invoke zoom --button up
  deskbar invoke magnifier-toggle --state=false`,
	Args: cobra.ExactArgs(1),
	RunE: runInvoke,
}

func init() {
	rootCmd.AddCommand(invokeCmd)
	invokeCmd.Flags().String("button", "", "Button id for multi-button items, or a dispatch token (inc, dec, on, off)")
	invokeCmd.Flags().Bool("state", false, "Toggle state to pass to the action")
}

func runInvoke(cmd *cobra.Command, args []string) error {
	button, _ := cmd.Flags().GetString("button")
	var toggle *bool
	if cmd.Flags().Changed("state") {
		state, _ := cmd.Flags().GetBool("state")
		toggle = &state
	}

	cfg, provider, err := loadBoundConfig(cmd)
	if err != nil {
		return err
	}
	item, err := cfg.Bar.Find(args[0])
	if err != nil {
		return err
	}
	if err := item.Invoke(provider, button, toggle); err != nil {
		return err
	}

	return output.Print(InvokeResult{OK: true, Item: item.ID, Button: button})
}
