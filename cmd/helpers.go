package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mj1618/deskbar/internal/config"
	"github.com/mj1618/deskbar/internal/platform"
)

// loadBoundConfig loads the configuration named by the root --config flag
// and binds it against the current platform.
func loadBoundConfig(cmd *cobra.Command) (*config.Config, *platform.Provider, error) {
	path, _ := cmd.Flags().GetString("config")
	provider, err := platform.NewProvider()
	if err != nil {
		return nil, nil, err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}
	cfg.Bind(provider)
	return cfg, provider, nil
}

// parseEnvPairs converts repeated KEY=VALUE flags into a map.
func parseEnvPairs(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	env := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid env pair %q (expected KEY=VALUE)", pair)
		}
		env[key] = value
	}
	return env, nil
}
