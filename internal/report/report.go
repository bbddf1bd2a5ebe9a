// Package report assembles the run output document and writes it to disk.
package report

import (
	"time"

	"github.com/r-castano/eleven-usage/internal/elevenlabs"
	"github.com/r-castano/eleven-usage/internal/models"
)

// QueryInfo echoes the caller's window and when the report was generated.
type QueryInfo struct {
	StartTimestamp     int64  `json:"start_timestamp"`
	EndTimestamp       int64  `json:"end_timestamp"`
	StartTimestampMs   int64  `json:"start_timestamp_ms"`
	EndTimestampMs     int64  `json:"end_timestamp_ms"`
	StartTimeFormatted string `json:"start_time_formatted"`
	EndTimeFormatted   string `json:"end_time_formatted"`
	GeneratedAt        string `json:"generated_at"`
}

// SubscriptionSection carries the subscription snapshot, or the error that
// prevented fetching it.
type SubscriptionSection struct {
	*models.SubscriptionInfo
	Error string `json:"error,omitempty"`
}

// AnalyticsSection carries the provider's aggregated analytics, or the
// error that prevented fetching them.
type AnalyticsSection struct {
	UsageAnalytics *elevenlabs.UsageAnalytics `json:"usage_analytics,omitempty"`
	FetchedAt      string                     `json:"fetched_at,omitempty"`
	Error          string                     `json:"error,omitempty"`
}

// Report is the full output document. Records is a pointer so that
// summary-only reports omit the key entirely rather than writing null or
// an empty list.
type Report struct {
	QueryInfo        QueryInfo            `json:"query_info"`
	SubscriptionInfo SubscriptionSection  `json:"subscription_info"`
	Summary          models.Summary       `json:"summary"`
	UsageAnalytics   AnalyticsSection     `json:"usage_analytics"`
	Records          *[]models.CallRecord `json:"records,omitempty"`
}

// Build assembles a report from the pipeline's outputs. rawStart and rawEnd
// are the timestamps exactly as the caller passed them.
func Build(rawStart, rawEnd int64, window models.TimeWindow, summary models.Summary,
	records []models.CallRecord, sub SubscriptionSection, analytics AnalyticsSection,
	summaryOnly bool, now time.Time) *Report {

	rep := &Report{
		QueryInfo: QueryInfo{
			StartTimestamp:     rawStart,
			EndTimestamp:       rawEnd,
			StartTimestampMs:   window.StartMs,
			EndTimestampMs:     window.EndMs,
			StartTimeFormatted: models.FormatTimestampMs(window.StartMs),
			EndTimeFormatted:   models.FormatTimestampMs(window.EndMs),
			GeneratedAt:        models.FormatTimestampMs(now.UnixMilli()),
		},
		SubscriptionInfo: sub,
		Summary:          summary,
		UsageAnalytics:   analytics,
	}
	if !summaryOnly {
		rep.Records = &records
	}
	return rep
}
