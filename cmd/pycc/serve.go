package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"pycc/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve [flags]",
	Short: "Run the HTTP conversion API",
	Long:  `Serve exposes /convert-to-c, /convert-to-cpp and /supported-features over HTTP`,
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().String("config", "", "path to a pycc.toml config file")
	serveCmd.Flags().String("addr", "", "listen address (overrides config)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	addr, _ := cmd.Flags().GetString("addr")

	cfg := server.DefaultConfig()
	if configPath != "" {
		loaded, err := server.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}
	if addr != "" {
		cfg.Addr = addr
	}

	logger := log.New(os.Stderr, "pycc: ", log.LstdFlags)
	return server.New(cfg, logger).ListenAndServe()
}
