// Package main implements the MCP server for browsing local images.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
	"github.com/taigrr/gallery-mcp/internal/archive"
	"github.com/taigrr/gallery-mcp/internal/config"
	"github.com/taigrr/gallery-mcp/internal/filesystem"
)

var (
	fileSystem     *filesystem.Service
	archiveService *archive.Service
	serverName     = "gallery-mcp"
	verbose        bool
)

var (
	configPath   string
	outputFormat string
)

func main() {
	cmd := newRootCmd()

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

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gallery-mcp",
		Short: "MCP bridge for local image folders and zip archives",
		Long: `gallery-mcp is a Model Context Protocol (MCP) server that lists
images in local directories and zip/cbz archives and extracts single
archive entries as base64 payloads. Run without a subcommand to serve
MCP over stdio; the subcommands run one operation and exit.`,
		Example: `gallery-mcp
gallery-mcp dir ~/Pictures
gallery-mcp zip ~/comics/issue1.cbz --natural
gallery-mcp read ~/comics/issue1.cbz pages/001.jpg --raw > 001.jpg`,
		Args:              cobra.NoArgs,
		PersistentPreRunE: setup,
		RunE:              runServer,
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file")
	cmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "text", "output format for subcommands: text, json or yaml")

	cmd.AddCommand(newDirCmd(), newZipCmd(), newReadCmd())

	return cmd
}

// setup loads configuration, points the logger away from stdout and
// initializes the services.
func setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if err := setupLogging(cfg.Log); err != nil {
		return err
	}

	fileSystem = filesystem.New(cfg.RootFilter())
	archiveService = archive.New(fileSystem)
	serverName = cfg.Server.Name

	if roots := fileSystem.AllowedRoots(); len(roots) > 0 {
		debugf("restricting reads to %v", roots)
	}

	return nil
}

func setupLogging(cfg config.LogConfig) error {
	verbose = cfg.Verbose
	log.SetPrefix("gallery-mcp: ")
	log.SetFlags(log.LstdFlags | log.Lmsgprefix)

	var out io.Writer = os.Stderr
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		out = f
	}
	log.SetOutput(out)

	return nil
}

// debugf logs only in verbose mode.
func debugf(format string, args ...any) {
	if verbose {
		log.Printf(format, args...)
	}
}

func runServer(cmd *cobra.Command, args []string) error {
	// Create MCP server
	server := mcp.NewServer(&mcp.Implementation{
		Name:    serverName,
		Version: version,
	}, nil)

	registerTools(server)

	debugf("serving MCP over stdio (version %s)", version)
	if err := server.Run(cmd.Context(), &mcp.StdioTransport{}); err != nil {
		return fmt.Errorf("error running server: %w", err)
	}

	return nil
}
