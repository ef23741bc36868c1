// Package main implements the rikimaru command: search OpenGenus/cosmos from
// the terminal or serve the search over MCP.
package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/taigrr/rikimaru/internal/config"
)

var (
	configPath string
	logLevel   string
)

func main() {
	cmd := &cobra.Command{
		Use:   "rikimaru",
		Short: "Search the cosmos algorithms collection",
		Long: `rikimaru searches the OpenGenus/cosmos repository with GitHub's
code search, lets you pick a matching file and shows its source.

Credentials are read from the rikimaru config file (user.github.name and
user.github.personal-token) or from RIKIMARU_GITHUB_NAME and
RIKIMARU_GITHUB_TOKEN.`,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $XDG_CONFIG_HOME/rikimaru/config.yaml)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")

	cmd.AddCommand(newSearchCmd(), newServeCmd())

	if err := fang.Execute(
		context.Background(),
		cmd,
		fang.WithVersion(version),
		fang.WithoutCompletions(),
		fang.WithoutManpage(),
	); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads .env, the config file and the --log-level override.
func loadConfig() (*config.Config, error) {
	_ = godotenv.Load()

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}
