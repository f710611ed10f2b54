package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/matchpoint/matchpoint/internal/export"
	"github.com/matchpoint/matchpoint/internal/matchsvc"
	"github.com/matchpoint/matchpoint/internal/observability"
)

// exportConcurrency bounds parallel exports in --query mode so a large
// result set doesn't hammer the resume endpoint.
const exportConcurrency = 4

var (
	exportQuery    string
	exportSkills   []string
	exportEvidence []string
	exportRole     string
	exportOut      string
	exportMatcher  string
	exportPDF      bool
)

var exportCmd = &cobra.Command{
	Use:   "export [candidate name]",
	Short: "Export highlighted resume documents",
	Long: `Export a candidate's resume as a self-contained document with every
evidence phrase highlighted. Either name one candidate and pass --evidence,
or pass --query to run a search and export every ranked candidate with the
evidence the matcher cited.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportQuery, "query", "", "Search query; exports every ranked candidate")
	exportCmd.Flags().StringSliceVar(&exportSkills, "skills", nil, "Skill keywords for --query mode")
	exportCmd.Flags().StringSliceVar(&exportEvidence, "evidence", nil, "Evidence phrases to highlight (single-candidate mode)")
	exportCmd.Flags().StringVar(&exportRole, "role", "", "Role subtitle for the document (single-candidate mode)")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Output directory for artifacts")
	exportCmd.Flags().StringVar(&exportMatcher, "matcher-url", "", "Base URL of the matching service")
	exportCmd.Flags().BoolVar(&exportPDF, "pdf", false, "Render artifacts as PDF (requires Chrome/Chromium)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if exportMatcher != "" {
		cfg.MatcherURL = exportMatcher
	}
	if exportOut != "" {
		cfg.OutputDir = exportOut
	}
	if cfg.MatcherURL == "" {
		return fmt.Errorf("matcher URL is required (flag --matcher-url, config, or MATCHPOINT_MATCHER_URL)")
	}

	if (len(args) == 0) == (exportQuery == "") {
		return fmt.Errorf("pass exactly one of: a candidate name, or --query")
	}

	client := matchsvc.New(cfg.MatcherURL)
	saver := &export.DirSaver{Dir: cfg.OutputDir}
	printer := observability.NewPrinter(os.Stdout)

	if len(args) == 1 {
		candidate := matchsvc.Candidate{Name: args[0], Role: exportRole, Evidence: exportEvidence}
		artifact, err := exportOne(cmd.Context(), client, saver, candidate, cfg.Verbose, printer)
		if err != nil {
			return err
		}
		printer.PrintArtifact(artifact)
		return nil
	}

	resp, err := searchCandidates(cmd.Context(), cfg.MatcherURL, exportQuery, exportSkills)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}
	if len(resp.Results) == 0 {
		cmd.Println("No candidates matched; nothing to export.")
		return nil
	}

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(exportConcurrency)

	artifacts := make([]export.Artifact, len(resp.Results))
	for i, candidate := range resp.Results {
		g.Go(func() error {
			artifact, err := exportOne(ctx, client, saver, candidate, cfg.Verbose, printer)
			if err != nil {
				return fmt.Errorf("export of %s failed: %w", candidate.Name, err)
			}
			artifacts[i] = artifact
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, artifact := range artifacts {
		printer.PrintArtifact(artifact)
	}
	return nil
}

// exportOne runs the pipeline for a single candidate, honoring the --pdf flag.
func exportOne(ctx context.Context, client *matchsvc.Client, saver export.Saver, candidate matchsvc.Candidate, verbose bool, printer *observability.Printer) (export.Artifact, error) {
	if exportPDF {
		resume, err := client.FetchResume(ctx, candidate.Name)
		if err != nil {
			return export.Artifact{}, err
		}
		artifact, err := export.BuildPDF(ctx, candidate.Name, candidate.Role, resume.Content, candidate.Evidence)
		if err != nil {
			return export.Artifact{}, err
		}
		if err := saver.Save(ctx, artifact); err != nil {
			return export.Artifact{}, err
		}
		return artifact, nil
	}

	exporter := &export.Exporter{Fetcher: client, Saver: saver}
	if verbose {
		exporter.OnTransition = func(s export.Status) {
			printer.PrintExportStatus(candidate.Name, s)
		}
	}
	return exporter.Export(ctx, candidate)
}
