package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mj1618/deskbar/internal/icon"
	"github.com/mj1618/deskbar/internal/output"
)

// IconResult is the output of a successful icon render.
type IconResult struct {
	OK   bool   `yaml:"ok"   json:"ok"`
	File string `yaml:"file" json:"file"`
	Size int    `yaml:"size" json:"size"`
}

var iconCmd = &cobra.Command{
	Use:   "icon <label>",
	Short: "Render a fallback icon for a bar item label",
	Long: `Render a PNG tile with the label's initials, for bar items that
have no configured image. The tile color is stable per label.`,
	Args: cobra.ExactArgs(1),
	RunE: runIcon,
}

func init() {
	rootCmd.AddCommand(iconCmd)
	iconCmd.Flags().String("out", "icon.png", "Output file path")
	iconCmd.Flags().Int("size", 64, "Tile size in pixels (16..1024)")
}

func runIcon(cmd *cobra.Command, args []string) error {
	out, _ := cmd.Flags().GetString("out")
	size, _ := cmd.Flags().GetInt("size")

	data, err := icon.Render(args[0], size)
	if err != nil {
		return err
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("write icon: %w", err)
	}
	return output.Print(IconResult{OK: true, File: out, Size: size})
}
