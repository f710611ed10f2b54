package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matchpoint/matchpoint/internal/matchsvc"
	"github.com/matchpoint/matchpoint/internal/server"
	"github.com/matchpoint/matchpoint/internal/store"
)

var (
	servePort    int
	serveDataDir string
	serveDBDir   string
	serveMatcher string
	serveWatch   bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes resume ingestion, candidate search and document export endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on")
	serveCmd.Flags().StringVar(&serveDataDir, "data-dir", "", "Directory holding raw resume files")
	serveCmd.Flags().StringVar(&serveDBDir, "db-dir", "", "Directory holding the candidate database")
	serveCmd.Flags().StringVar(&serveMatcher, "matcher-url", "", "Base URL of the matching service")
	serveCmd.Flags().BoolVar(&serveWatch, "watch", false, "Re-ingest when the data directory changes")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}
	if serveDataDir != "" {
		cfg.DataDir = serveDataDir
	}
	if serveDBDir != "" {
		cfg.DBDir = serveDBDir
	}
	if serveMatcher != "" {
		cfg.MatcherURL = serveMatcher
	}
	if serveWatch {
		cfg.Watch = true
	}

	if cfg.MatcherURL == "" {
		return fmt.Errorf("matcher URL is required (flag --matcher-url, config, or MATCHPOINT_MATCHER_URL)")
	}

	st, err := store.Open(cfg.DBDir)
	if err != nil {
		return fmt.Errorf("failed to open candidate store: %w", err)
	}

	srv := server.New(server.Config{
		Port:    cfg.Port,
		DataDir: cfg.DataDir,
		Watch:   cfg.Watch,
	}, st, matchsvc.New(cfg.MatcherURL))

	return srv.Start()
}
