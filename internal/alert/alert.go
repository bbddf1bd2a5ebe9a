// Package alert raises desktop notifications for quota conditions.
package alert

import (
	"fmt"

	"github.com/gen2brain/beeep"

	"github.com/r-castano/eleven-usage/internal/logger"
	"github.com/r-castano/eleven-usage/internal/models"
)

// CheckQuota sends a desktop notification when the remaining character
// quota falls below the threshold percentage. Notification delivery is
// best effort.
func CheckQuota(sub *models.SubscriptionInfo, threshold float64) {
	if sub == nil || sub.CharacterLimit <= 0 || threshold <= 0 {
		return
	}

	remaining := sub.RemainingPercent()
	if remaining >= threshold {
		return
	}

	logger.Warn("character quota running low", "remaining_percent", remaining, "threshold", threshold)

	title := fmt.Sprintf("Low quota: %s plan", sub.Tier)
	body := fmt.Sprintf("Remaining character quota is below %.0f%% (%.1f%%)", threshold, remaining)
	_ = beeep.Notify(title, body, "")
}
