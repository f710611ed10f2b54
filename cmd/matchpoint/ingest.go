package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matchpoint/matchpoint/internal/ingestion"
	"github.com/matchpoint/matchpoint/internal/store"
)

var (
	ingestDataDir string
	ingestDBDir   string
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Ingest resume files into the candidate store",
	Long:  `Scan the resume directory and upsert one candidate per supported file (.txt, .md, .html).`,
	RunE:  runIngest,
}

func init() {
	ingestCmd.Flags().StringVar(&ingestDataDir, "data-dir", "", "Directory holding raw resume files")
	ingestCmd.Flags().StringVar(&ingestDBDir, "db-dir", "", "Directory holding the candidate database")
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if ingestDataDir != "" {
		cfg.DataDir = ingestDataDir
	}
	if ingestDBDir != "" {
		cfg.DBDir = ingestDBDir
	}

	st, err := store.Open(cfg.DBDir)
	if err != nil {
		return fmt.Errorf("failed to open candidate store: %w", err)
	}
	defer func() { _ = st.Close() }()

	count, err := ingestion.IngestDir(context.Background(), cfg.DataDir, st)
	if err != nil {
		return err
	}

	cmd.Printf("Ingested %d resume file(s)\n", count)
	return nil
}
