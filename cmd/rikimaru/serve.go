package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/taigrr/rikimaru/internal/config"
	"github.com/taigrr/rikimaru/internal/github"
	"github.com/taigrr/rikimaru/internal/logger"
)

var (
	serverConfig *config.Config
	fetcher      *github.Client
	serverLog    zerolog.Logger
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve search and open as MCP tools over stdio",
		Long: `serve runs a Model Context Protocol server on stdin/stdout exposing
two tools: search lists matching files, open returns the content of one.`,
		Args: cobra.NoArgs,
		RunE: runServer,
	}
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// stdout carries the MCP transport, so logs go to stderr.
	serverLog = logger.Console(cfg.Log.Level)

	timeout, err := cfg.Timeout()
	if err != nil {
		return err
	}

	serverConfig = cfg
	fetcher = github.New(cfg.Credentials(),
		github.WithTimeout(timeout),
		github.WithUserAgent(cfg.API.UserAgent),
		github.WithLogger(serverLog),
	)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "rikimaru",
		Version: version,
	}, nil)

	registerTools(server)

	if err := server.Run(cmd.Context(), &mcp.StdioTransport{}); err != nil {
		if errors.Is(err, io.EOF) || strings.Contains(err.Error(), "server is closing") {
			serverLog.Debug().Err(err).Msg("MCP server stopped")
			return nil
		}
		return fmt.Errorf("error running server: %w", err)
	}

	return nil
}
