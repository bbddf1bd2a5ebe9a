package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/r-castano/eleven-usage/internal/archive"
	"github.com/r-castano/eleven-usage/internal/config"
	"github.com/r-castano/eleven-usage/internal/render"
)

// newHistoryCommand reads daily totals back from the local archive. It
// needs no API key.
func newHistoryCommand(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "history",
		Usage: "show archived daily credit usage",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "days",
				Aliases: []string{"d"},
				Value:   30,
				Usage:   "lookback window in days (0 = all)",
			},
			&cli.BoolFlag{
				Name:  "no-chart",
				Usage: "skip the daily credit chart",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			arch, err := archive.Open(cfg.ArchivePath)
			if err != nil {
				return err
			}
			defer func() { _ = arch.Close() }()

			usage, err := arch.DailyUsage(int(cmd.Int("days")))
			if err != nil {
				return err
			}

			fmt.Fprint(os.Stdout, render.HistoryTable(usage, render.Options{NoChart: cmd.Bool("no-chart")}))
			return nil
		},
	}
}
