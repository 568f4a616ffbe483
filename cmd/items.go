package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mj1618/deskbar/internal/bar"
	"github.com/mj1618/deskbar/internal/output"
)

// ItemResult describes one configured bar item.
type ItemResult struct {
	ID        string         `yaml:"id"                json:"id"`
	Label     string         `yaml:"label,omitempty"   json:"label,omitempty"`
	Kind      string         `yaml:"kind"              json:"kind"`
	Available bool           `yaml:"available"         json:"available"`
	Buttons   []ButtonResult `yaml:"buttons,omitempty" json:"buttons,omitempty"`
}

// ButtonResult describes one button of a multi-button item.
type ButtonResult struct {
	ID    string `yaml:"id"              json:"id"`
	Label string `yaml:"label,omitempty" json:"label,omitempty"`
	Value string `yaml:"value"           json:"value"`
}

// ItemsResult is the output of the `items` command.
type ItemsResult struct {
	Items []ItemResult `yaml:"items" json:"items"`
}

var itemsCmd = &cobra.Command{
	Use:   "items",
	Short: "List the configured bar items and their availability",
	Long: `List every configured bar item with its kind, buttons, and whether
invoking it can currently succeed (its executable resolved, its link was
accepted, its setting exists in the catalogue).`,
	RunE: runItems,
}

func init() {
	rootCmd.AddCommand(itemsCmd)
	itemsCmd.Flags().Bool("available", false, "Only show items that are currently available")
}

func runItems(cmd *cobra.Command, args []string) error {
	onlyAvailable, _ := cmd.Flags().GetBool("available")

	cfg, _, err := loadBoundConfig(cmd)
	if err != nil {
		return err
	}

	result := ItemsResult{Items: make([]ItemResult, 0, len(cfg.Bar.Items))}
	for _, item := range cfg.Bar.Items {
		entry := describeItem(item)
		if onlyAvailable && !entry.Available {
			continue
		}
		result.Items = append(result.Items, entry)
	}
	return output.Print(result)
}

func describeItem(item *bar.Item) ItemResult {
	entry := ItemResult{ID: item.ID, Label: item.Label}
	if item.Action != nil {
		entry.Kind = string(item.Action.Kind)
		entry.Available = item.Action.IsAvailable()
		return entry
	}
	entry.Kind = "multi"
	entry.Available = true
	for _, b := range item.Buttons {
		if !b.Action.IsAvailable() {
			entry.Available = false
		}
		entry.Buttons = append(entry.Buttons, ButtonResult{ID: b.ID, Label: b.Label, Value: b.Value})
	}
	return entry
}
