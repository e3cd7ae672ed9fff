package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/go-github/v57/github"
	"github.com/spf13/cobra"
	"golang.org/x/oauth2"

	"github.com/parasnikum/DevSync/internal/leaderboard"
	"github.com/parasnikum/DevSync/pkg/config"
	"github.com/parasnikum/DevSync/pkg/logger"
)

type runFlags struct {
	owner           string
	repo            string
	label           string
	points          string
	mergedOnly      bool
	sheetID         string
	sheetRange      string
	credentialsFile string
	xlsxPath        string
}

func newRunCmd() *cobra.Command {
	f := &runFlags{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Collect closed PRs and issues, score them, and write the leaderboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLeaderboard(cmd.Context(), f)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.owner, "owner", "", "Repository owner (default: LEADERBOARD_OWNER)")
	flags.StringVar(&f.repo, "repo", "", "Repository name (default: LEADERBOARD_REPO)")
	flags.StringVar(&f.label, "label", "", "Program label marker (default: LEADERBOARD_PROGRAM_LABEL)")
	flags.StringVar(&f.points, "points", "", "Level point table, e.g. level-1:3,level-2:7,level-3:10 (default: LEADERBOARD_POINTS)")
	flags.BoolVar(&f.mergedOnly, "merged-only", false, "Count only merged pull requests")
	flags.StringVar(&f.sheetID, "sheet-id", "", "Google Sheet ID to publish to (default: GOOGLE_SHEET_ID)")
	flags.StringVar(&f.sheetRange, "sheet-range", "", "Sheet range to replace (default: GOOGLE_SHEET_RANGE)")
	flags.StringVar(&f.credentialsFile, "credentials", "", "Service account credentials file (default: GOOGLE_CREDENTIALS_FILE)")
	flags.StringVar(&f.xlsxPath, "xlsx", "", "Write the leaderboard to a local .xlsx file instead")

	return cmd
}

func runLeaderboard(ctx context.Context, f *runFlags) error {
	if err := config.Load(); err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logger.Init()

	cfg := config.AppConfig.Leaderboard
	owner := firstNonEmpty(f.owner, cfg.Owner)
	repo := firstNonEmpty(f.repo, cfg.Repo)
	label := firstNonEmpty(f.label, cfg.ProgramLabel)
	if owner == "" || repo == "" {
		return errors.New("repository owner and name are required (--owner/--repo or LEADERBOARD_OWNER/LEADERBOARD_REPO)")
	}

	pointTable, err := leaderboard.ParsePointTable(firstNonEmpty(f.points, cfg.PointTable))
	if err != nil {
		return err
	}

	emitter, err := buildEmitter(ctx, f, cfg)
	if err != nil {
		return err
	}

	client := github.NewClient(nil)
	if cfg.Token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Token})
		client = github.NewClient(oauth2.NewClient(ctx, ts))
	} else {
		logger.Warnf("No GitHub token configured, using unauthenticated rate limits")
	}

	collector := leaderboard.NewCollector(client, owner, repo, label)
	collector.RequireMerged = f.mergedOnly

	items, err := collector.Collect(ctx)
	if err != nil {
		return err
	}

	aggregator := leaderboard.NewAggregator(pointTable)
	aggregator.AddAll(items)

	report := leaderboard.BuildReport(aggregator.Contributors())
	if err := emitter.Emit(ctx, report); err != nil {
		return fmt.Errorf("failed to publish leaderboard: %w", err)
	}

	logger.Infof("Published leaderboard with %d contributors", len(report.Rows))
	return nil
}

func buildEmitter(ctx context.Context, f *runFlags, cfg config.LeaderboardConfig) (leaderboard.Emitter, error) {
	if f.xlsxPath != "" {
		return leaderboard.NewExcelEmitter(f.xlsxPath), nil
	}

	sheetID := firstNonEmpty(f.sheetID, cfg.SheetID)
	if sheetID == "" {
		return nil, errors.New("an output is required (--sheet-id, GOOGLE_SHEET_ID, or --xlsx)")
	}
	sheetRange := firstNonEmpty(f.sheetRange, cfg.SheetRange)
	credentials := firstNonEmpty(f.credentialsFile, cfg.CredentialsFile)

	return leaderboard.NewSheetsEmitter(ctx, credentials, sheetID, sheetRange)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
