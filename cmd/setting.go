package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mj1618/deskbar/internal/output"
	"github.com/mj1618/deskbar/internal/platform"
	"github.com/mj1618/deskbar/internal/solutions"
)

// SettingResult is the output of the `setting` subcommands.
type SettingResult struct {
	OK    bool        `yaml:"ok"              json:"ok"`
	ID    string      `yaml:"id"              json:"id"`
	Value interface{} `yaml:"value,omitempty" json:"value,omitempty"`
}

var settingCmd = &cobra.Command{
	Use:   "setting",
	Short: "Read and change settings from the solutions catalogue",
}

var settingGetCmd = &cobra.Command{
	Use:   "get <solution/name>",
	Short: "Read a setting's current value",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingGet,
}

var settingSetCmd = &cobra.Command{
	Use:   "set <solution/name> <value>",
	Short: "Write a setting's value",
	Long: `Write a setting's value through its handler. The value is converted
per the handler's declared value type: "on"/"off"/"true"/"false" for
booleans, a decimal number for integers, anything for strings.`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingSet,
}

var settingIncCmd = &cobra.Command{
	Use:   "inc <solution/name>",
	Short: "Increment an integer setting",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingInc,
}

func init() {
	rootCmd.AddCommand(settingCmd)
	settingCmd.AddCommand(settingGetCmd)
	settingCmd.AddCommand(settingSetCmd)
	settingCmd.AddCommand(settingIncCmd)
	settingIncCmd.Flags().Int("delta", 1, "Amount to add (may be negative)")
}

// lookupSetting loads the catalogue referenced by the configuration and
// finds the named setting in it.
func lookupSetting(cmd *cobra.Command, id string) (*solutions.Setting, *platform.Provider, error) {
	cfg, provider, err := loadBoundConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	if cfg.Solutions == nil {
		return nil, nil, fmt.Errorf("the configuration references no solutions catalogue")
	}
	setting, err := cfg.Solutions.GetSetting(id)
	if err != nil {
		return nil, nil, err
	}
	return setting, provider, nil
}

func runSettingGet(cmd *cobra.Command, args []string) error {
	setting, provider, err := lookupSetting(cmd, args[0])
	if err != nil {
		return err
	}
	value, err := setting.Get(provider)
	if err != nil {
		return err
	}
	return output.Print(SettingResult{OK: true, ID: setting.ID(), Value: value})
}

func runSettingSet(cmd *cobra.Command, args []string) error {
	setting, provider, err := lookupSetting(cmd, args[0])
	if err != nil {
		return err
	}
	if err := setting.Set(provider, args[1]); err != nil {
		return err
	}
	return output.Print(SettingResult{OK: true, ID: setting.ID()})
}

func runSettingInc(cmd *cobra.Command, args []string) error {
	delta, _ := cmd.Flags().GetInt("delta")

	setting, provider, err := lookupSetting(cmd, args[0])
	if err != nil {
		return err
	}
	if err := setting.Increment(provider, delta); err != nil {
		return err
	}
	value, err := setting.Get(provider)
	if err != nil {
		return err
	}
	return output.Print(SettingResult{OK: true, ID: setting.ID(), Value: value})
}
