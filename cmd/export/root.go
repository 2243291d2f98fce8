package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/omaratef3221/omaratef3221.github.io/internal/export"
	"github.com/omaratef3221/omaratef3221.github.io/internal/gateway"
	"github.com/omaratef3221/omaratef3221.github.io/pkg/config"
	"github.com/omaratef3221/omaratef3221.github.io/pkg/logger"
	"github.com/spf13/cobra"
)

const (
	defaultScholarID  = "lw70gLkAAAAJ"
	defaultGitHubUser = "omaratef3221"
	exportTimeout     = 2 * time.Minute
)

var errExportIncomplete = errors.New("some exports failed")

type exportOptions struct {
	scholarID  string
	githubUser string
	outDir     string
	workbook   string
}

func newRootCmd() *cobra.Command {
	opts := &exportOptions{}

	cmd := &cobra.Command{
		Use:           "export",
		Short:         "Refresh the static portfolio data files",
		Long:          "export fetches the Scholar profile and GitHub repositories and writes the JSON files the static site reads.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.scholarID, "scholar-id", defaultScholarID, "Google Scholar author id")
	cmd.Flags().StringVar(&opts.githubUser, "github-user", defaultGitHubUser, "GitHub username")
	cmd.Flags().StringVar(&opts.outDir, "out", "data", "output directory for the JSON files")
	cmd.Flags().StringVar(&opts.workbook, "xlsx", "", "also write an Excel workbook to this path")

	return cmd
}

func runExport(cmd *cobra.Command, opts *exportOptions) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logger.Init(cfg.Log.Level)

	httpClient := gateway.NewHTTPClient(cfg.Upstream.Timeout)

	githubClient, err := gateway.NewGitHubClient(httpClient, cfg.GitHub.Token, cfg.GitHub.BaseURL)
	if err != nil {
		return err
	}

	var scholar gateway.ScholarGateway = gateway.DisabledScholar{}
	if cfg.Scholar.Enabled() {
		scholar = gateway.NewScholarClient(httpClient, cfg.Scholar.BaseURL, cfg.Scholar.APIKey)
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), exportTimeout)
	defer cancel()

	exporter := export.NewExporter(scholar, githubClient, opts.outDir)
	results := exporter.Run(ctx, opts.scholarID, opts.githubUser, opts.workbook)

	fmt.Fprintln(cmd.OutOrStdout(), renderSummary(results))

	if !export.Succeeded(results) {
		return errExportIncomplete
	}
	return nil
}
