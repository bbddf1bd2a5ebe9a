// Package commands builds the CLI command tree.
package commands

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/r-castano/eleven-usage/internal/alert"
	"github.com/r-castano/eleven-usage/internal/archive"
	"github.com/r-castano/eleven-usage/internal/config"
	"github.com/r-castano/eleven-usage/internal/elevenlabs"
	"github.com/r-castano/eleven-usage/internal/logger"
	"github.com/r-castano/eleven-usage/internal/models"
	"github.com/r-castano/eleven-usage/internal/render"
	"github.com/r-castano/eleven-usage/internal/report"
	"github.com/r-castano/eleven-usage/internal/stats"
	"github.com/r-castano/eleven-usage/internal/version"
)

// NewApp builds the root command. The bare invocation with two timestamps
// runs the usage report; history and subscription are subcommands.
func NewApp(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "elu",
		Usage:     "analyze speech-synthesis API credit usage",
		Version:   version.Short(),
		ArgsUsage: "<start_ts> <end_ts>",
		Description: "Fetches call history from the provider for the given time window,\n" +
			"aggregates credit usage, and writes the report as JSON.\n" +
			"Timestamps are Unix seconds or milliseconds.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "additional output file (a timestamped file is always created)",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "pretty print JSON output",
			},
			&cli.BoolFlag{
				Name:  "summary-only",
				Usage: "omit individual call records from the report",
			},
			&cli.BoolFlag{
				Name:  "no-chart",
				Usage: "skip the daily credit chart",
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "suppress console rendering, write files only",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runReport(ctx, cmd, cfg)
		},
		Commands: []*cli.Command{
			newHistoryCommand(cfg),
			newSubscriptionCommand(cfg),
		},
	}
}

func runReport(ctx context.Context, cmd *cli.Command, cfg *config.Config) error {
	logger.SetQuiet(cmd.Bool("quiet"))

	rawStart, rawEnd, err := parseWindowArgs(cmd)
	if err != nil {
		return err
	}
	window, err := models.NewTimeWindow(rawStart, rawEnd)
	if err != nil {
		return err
	}
	if err := cfg.RequireAPIKey(); err != nil {
		return err
	}

	logger.Info("analyzing usage",
		"from", models.FormatTimestampMs(window.StartMs),
		"to", models.FormatTimestampMs(window.EndMs))

	client := elevenlabs.NewClient(cfg.BaseURL, cfg.APIKey, cfg.HTTPTimeout)

	var subSection report.SubscriptionSection
	sub, err := client.Subscription(ctx)
	if err != nil {
		logger.Warn("could not fetch subscription info", "error", err)
		subSection.Error = err.Error()
	} else {
		subSection.SubscriptionInfo = sub
	}

	records, err := client.SpeechHistory(ctx, window)
	if err != nil {
		return err
	}

	conversations, err := client.Conversations(ctx, window)
	if err != nil {
		// Conversational AI may not be enabled for the account.
		logger.Warn("could not fetch conversational AI data", "error", err)
	}
	records = append(records, conversations...)
	sort.Slice(records, func(i, j int) bool { return records[i].Timestamp < records[j].Timestamp })

	var analytics report.AnalyticsSection
	usage, err := client.Usage(ctx, window)
	if err != nil {
		logger.Warn("could not fetch usage analytics", "error", err)
		analytics.Error = err.Error()
	} else {
		analytics.UsageAnalytics = usage
		analytics.FetchedAt = models.FormatTimestampMs(time.Now().UnixMilli())
	}

	summary := stats.Summarize(records)
	logger.Info("usage summarized",
		"total_calls", summary.TotalAPICalls,
		"total_credits", summary.TotalCreditsUsed,
		"skipped", summary.SkippedRecords)

	now := time.Now()
	rep := report.Build(rawStart, rawEnd, window, summary, records, subSection, analytics,
		cmd.Bool("summary-only"), now)

	paths, err := report.Write(rep, report.WriteOptions{
		OutputDir:  cfg.OutputDir,
		OutputPath: cmd.String("output"),
		Pretty:     cmd.Bool("pretty"),
	}, now)
	if err != nil {
		return err
	}

	if !cmd.Bool("quiet") {
		fmt.Fprint(os.Stdout, render.ConsoleReport(rep, render.Options{NoChart: cmd.Bool("no-chart")}))
		fmt.Fprintln(os.Stdout, render.MutedStyle.Render("saved: "+strings.Join(paths, ", ")))
	}

	archiveRun(cfg, window, summary, records)
	alert.CheckQuota(subSection.SubscriptionInfo, cfg.QuotaAlertThreshold)

	return nil
}

// parseWindowArgs reads the two positional timestamps.
func parseWindowArgs(cmd *cli.Command) (int64, int64, error) {
	return parseTimestamps(cmd.Args().Slice())
}

func parseTimestamps(args []string) (int64, int64, error) {
	if len(args) != 2 {
		return 0, 0, fmt.Errorf("expected <start_ts> <end_ts> arguments, got %d", len(args))
	}

	rawStart, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid start timestamp %q", args[0])
	}
	rawEnd, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid end timestamp %q", args[1])
	}

	return rawStart, rawEnd, nil
}

// archiveRun stores the run in the local archive. Archive failures are
// never fatal: the report on disk is the primary output.
func archiveRun(cfg *config.Config, window models.TimeWindow, summary models.Summary, records []models.CallRecord) {
	arch, err := archive.Open(cfg.ArchivePath)
	if err != nil {
		logger.Warn("could not open archive", "path", cfg.ArchivePath, "error", err)
		return
	}
	defer func() { _ = arch.Close() }()

	if err := arch.RecordRun(window, summary, records); err != nil {
		logger.Warn("could not archive run", "error", err)
	}
}
