// Package stats aggregates call records into summary statistics.
package stats

import (
	"github.com/r-castano/eleven-usage/internal/logger"
	"github.com/r-castano/eleven-usage/internal/models"
)

// unknownBucket absorbs records whose voice or source is missing.
const unknownBucket = "unknown"

// Summarize folds an ordered record sequence into a Summary in a single
// pass. Malformed records are skipped with a warning and counted; an empty
// sequence yields a zero-valued summary.
func Summarize(records []models.CallRecord) models.Summary {
	summary := models.NewSummary()

	var earliestMs, latestMs int64
	for i := range records {
		rec := &records[i]
		if reason := validate(rec); reason != "" {
			logger.Warn("skipping malformed record", "id", rec.ID, "reason", reason)
			summary.SkippedRecords++
			continue
		}

		summary.TotalAPICalls++
		summary.TotalCreditsUsed += rec.CreditsUsed

		accumulate(summary.ByType, string(rec.Type), rec.CreditsUsed)
		accumulate(summary.ByVoice, bucketOr(rec.VoiceName), rec.CreditsUsed)
		accumulate(summary.BySource, bucketOr(rec.Source), rec.CreditsUsed)
		accumulate(summary.ByDay, rec.Day(), rec.CreditsUsed)

		if earliestMs == 0 || rec.TimestampMs < earliestMs {
			earliestMs = rec.TimestampMs
		}
		if rec.TimestampMs > latestMs {
			latestMs = rec.TimestampMs
		}
	}

	if summary.TotalAPICalls > 0 {
		summary.TimeRange = models.TimeRange{
			EarliestCall: models.FormatTimestampMs(earliestMs),
			LatestCall:   models.FormatTimestampMs(latestMs),
		}
	}

	return summary
}

// validate returns a non-empty reason when a record cannot be aggregated.
func validate(rec *models.CallRecord) string {
	switch {
	case rec.ID == "":
		return "missing id"
	case !rec.Type.Valid():
		return "unknown call type"
	case rec.Timestamp <= 0:
		return "missing timestamp"
	case rec.CreditsUsed < 0:
		return "negative credits"
	default:
		return ""
	}
}

func accumulate(m map[string]models.Breakdown, key string, credits int64) {
	b := m[key]
	b.Count++
	b.Credits += credits
	m[key] = b
}

func bucketOr(key string) string {
	if key == "" {
		return unknownBucket
	}
	return key
}
