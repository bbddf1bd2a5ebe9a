package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/r-castano/eleven-usage/internal/models"
	"github.com/r-castano/eleven-usage/internal/report"
)

const (
	defaultWidth = 72
	chartHeight  = 8
	topBuckets   = 5
)

// Options controls console rendering.
type Options struct {
	Width   int
	NoChart bool
}

// ConsoleReport renders the report summary for the terminal.
func ConsoleReport(rep *report.Report, opts Options) string {
	width := opts.Width
	if width <= 0 {
		width = defaultWidth
	}

	var b strings.Builder

	b.WriteString(TitleStyle.Render("Usage report") + "\n")
	b.WriteString(MutedStyle.Render(rep.QueryInfo.StartTimeFormatted+" .. "+rep.QueryInfo.EndTimeFormatted) + "\n\n")

	summary := rep.Summary
	writeRow(&b, "Total API calls", fmt.Sprintf("%d", summary.TotalAPICalls))
	writeRow(&b, "Total credits used", fmt.Sprintf("%d", summary.TotalCreditsUsed))
	if summary.SkippedRecords > 0 {
		b.WriteString(WarnStyle.Render(fmt.Sprintf("  %d malformed records skipped", summary.SkippedRecords)) + "\n")
	}
	b.WriteString("\n")

	b.WriteString(SectionStyle.Render("By type") + "\n")
	writeBreakdown(&b, summary.ByType, len(summary.ByType), width)

	if len(summary.ByVoice) > 0 {
		b.WriteString(SectionStyle.Render("Top voices") + "\n")
		writeBreakdown(&b, summary.ByVoice, topBuckets, width)
	}
	if len(summary.BySource) > 0 {
		b.WriteString(SectionStyle.Render("Top sources") + "\n")
		writeBreakdown(&b, summary.BySource, topBuckets, width)
	}

	if sub := rep.SubscriptionInfo; sub.SubscriptionInfo != nil {
		b.WriteString(SectionStyle.Render("Subscription") + "\n")
		writeRow(&b, "Plan", sub.Tier)
		writeRow(&b, "Characters used",
			fmt.Sprintf("%d / %d (%.1f%% remaining)", sub.CharacterCount, sub.CharacterLimit, sub.RemainingPercent()))
		if sub.NextResetFormatted != "" {
			writeRow(&b, "Quota resets", sub.NextResetFormatted)
		}
		b.WriteString("\n")
	} else if rep.SubscriptionInfo.Error != "" {
		b.WriteString(WarnStyle.Render("subscription info unavailable: "+rep.SubscriptionInfo.Error) + "\n\n")
	}

	if !opts.NoChart {
		if chart := DailyCreditChart(summary.ByDay, width-10, chartHeight); chart != "" {
			b.WriteString(chart + "\n")
		}
	}

	return b.String()
}

// writeBreakdown prints the largest buckets of a grouping, credits first.
func writeBreakdown(b *strings.Builder, m map[string]models.Breakdown, limit, width int) {
	type bucket struct {
		key string
		models.Breakdown
	}

	buckets := make([]bucket, 0, len(m))
	for k, v := range m {
		buckets = append(buckets, bucket{key: k, Breakdown: v})
	}
	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].Credits != buckets[j].Credits {
			return buckets[i].Credits > buckets[j].Credits
		}
		return buckets[i].key < buckets[j].key
	})

	if limit > 0 && len(buckets) > limit {
		buckets = buckets[:limit]
	}

	labelWidth := width / 2
	for _, bk := range buckets {
		label := ansi.Truncate(bk.key, labelWidth, "…")
		fmt.Fprintf(b, "  %s %s\n",
			LabelStyle.Render(fmt.Sprintf("%-*s", labelWidth, label)),
			ValueStyle.Render(fmt.Sprintf("%d credits, %d calls", bk.Credits, bk.Count)))
	}
	b.WriteString("\n")
}

func writeRow(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "  %s %s\n", LabelStyle.Render(fmt.Sprintf("%-22s", label)), ValueStyle.Render(value))
}

// HistoryTable renders archived daily usage as rows plus a chart.
func HistoryTable(usage []models.DailyUsage, opts Options) string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("Archived daily usage") + "\n\n")
	if len(usage) == 0 {
		b.WriteString(MutedStyle.Render("no archived runs yet") + "\n")
		return b.String()
	}

	for i := range usage {
		writeRow(&b, usage[i].Day, fmt.Sprintf("%d credits, %d calls", usage[i].Credits, usage[i].Calls))
	}
	b.WriteString("\n")

	width := opts.Width
	if width <= 0 {
		width = defaultWidth
	}
	if !opts.NoChart {
		if chart := HistoryChart(usage, width-10, chartHeight); chart != "" {
			b.WriteString(chart + "\n")
		}
	}

	return b.String()
}

// SubscriptionView renders a standalone subscription snapshot.
func SubscriptionView(sub *models.SubscriptionInfo) string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("Subscription") + "\n\n")
	writeRow(&b, "Plan", sub.Tier)
	writeRow(&b, "Status", sub.Status)
	writeRow(&b, "Characters used",
		fmt.Sprintf("%d / %d (%.1f%% remaining)", sub.CharacterCount, sub.CharacterLimit, sub.RemainingPercent()))
	writeRow(&b, "Voice slots", fmt.Sprintf("%d / %d", sub.VoiceSlotsUsed, sub.VoiceLimit))
	if sub.ProfessionalVoiceLimit > 0 {
		writeRow(&b, "Professional voices", fmt.Sprintf("%d / %d", sub.ProfessionalVoiceSlotsUsed, sub.ProfessionalVoiceLimit))
	}
	if sub.NextResetFormatted != "" {
		writeRow(&b, "Quota resets", sub.NextResetFormatted)
	}
	if du := sub.DetailedUsage; du != nil {
		b.WriteString("\n" + SectionStyle.Render("Detailed usage") + "\n")
		writeRow(&b, "Cycle credits", fmt.Sprintf("%d / %d", du.SubscriptionCycleCreditsUsed, du.SubscriptionCycleCreditsQuota))
		writeRow(&b, "Rollover credits", fmt.Sprintf("%d / %d", du.RolloverCreditsUsed, du.RolloverCreditsQuota))
		writeRow(&b, "Gifted credits", fmt.Sprintf("%d / %d", du.ManuallyGiftedCreditsUsed, du.ManuallyGiftedCreditsQuota))
		writeRow(&b, "Reported credits", fmt.Sprintf("%d", du.ActualReportedCredits))
	}

	return b.String()
}
