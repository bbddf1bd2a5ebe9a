package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/r-castano/eleven-usage/internal/alert"
	"github.com/r-castano/eleven-usage/internal/config"
	"github.com/r-castano/eleven-usage/internal/elevenlabs"
	"github.com/r-castano/eleven-usage/internal/render"
)

// newSubscriptionCommand fetches and renders the account's plan snapshot.
func newSubscriptionCommand(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:    "subscription",
		Aliases: []string{"sub"},
		Usage:   "show the account's plan and quota state",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if err := cfg.RequireAPIKey(); err != nil {
				return err
			}

			client := elevenlabs.NewClient(cfg.BaseURL, cfg.APIKey, cfg.HTTPTimeout)
			sub, err := client.Subscription(ctx)
			if err != nil {
				return err
			}

			fmt.Fprint(os.Stdout, render.SubscriptionView(sub))
			alert.CheckQuota(sub, cfg.QuotaAlertThreshold)
			return nil
		},
	}
}
