package main

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"
	"github.com/taigrr/rikimaru/internal/github"
	"github.com/taigrr/rikimaru/internal/logger"
	"github.com/taigrr/rikimaru/internal/pipeline"
	"github.com/taigrr/rikimaru/internal/tui"
)

func newSearchCmd() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "search [terms...]",
		Short: "Search cosmos and show the file you pick",
		Example: `rikimaru search dfs
rikimaru search binary-search --plain`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, strings.Join(args, " "), plain)
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "print the file instead of opening a pager")
	return cmd
}

func runSearch(cmd *cobra.Command, searchString string, plain bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log, logFile, err := logger.OpenFile(cfg.LogPath(), cfg.Log.Level)
	if err != nil {
		return err
	}
	defer logFile.Close()

	timeout, err := cfg.Timeout()
	if err != nil {
		return err
	}

	client := github.New(cfg.Credentials(),
		github.WithTimeout(timeout),
		github.WithUserAgent(cfg.API.UserAgent),
		github.WithLogger(log),
	)
	host := tui.New(
		tui.WithIO(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr()),
		tui.WithPlainPanels(plain),
	)

	// Failures are logged by the pipeline and, in notify mode, shown by the
	// host; only the empty query is also reported through the exit status.
	_, err = pipeline.New(cfg, host, client, log).Search(cmd.Context(), searchString)
	if errors.Is(err, pipeline.ErrEmptyQuery) {
		return err
	}
	return nil
}
