package stats

import (
	"testing"

	"github.com/r-castano/eleven-usage/internal/models"
)

func speechRecord(id string, ts int64, credits int64, voice, source string) models.CallRecord {
	return models.CallRecord{
		Type:        models.CallTypeSpeech,
		ID:          id,
		Timestamp:   ts,
		TimestampMs: ts * 1000,
		CreditsUsed: credits,
		VoiceName:   voice,
		Source:      source,
	}
}

func conversationRecord(id string, ts int64, credits int64) models.CallRecord {
	return models.CallRecord{
		Type:        models.CallTypeConversation,
		ID:          id,
		Timestamp:   ts,
		TimestampMs: ts * 1000,
		CreditsUsed: credits,
	}
}

func TestSummarize_Example(t *testing.T) {
	records := []models.CallRecord{
		speechRecord("a", 1640995200, 10, "Rachel", "api"),
		speechRecord("b", 1640998800, 15, "Rachel", "web"),
		conversationRecord("c", 1641002400, 50),
	}

	summary := Summarize(records)

	if summary.TotalAPICalls != 3 {
		t.Errorf("TotalAPICalls = %d, want 3", summary.TotalAPICalls)
	}
	if summary.TotalCreditsUsed != 75 {
		t.Errorf("TotalCreditsUsed = %d, want 75", summary.TotalCreditsUsed)
	}

	speech := summary.ByType[string(models.CallTypeSpeech)]
	if speech.Count != 2 || speech.Credits != 25 {
		t.Errorf("speech breakdown = %+v, want {Count:2 Credits:25}", speech)
	}
	conv := summary.ByType[string(models.CallTypeConversation)]
	if conv.Count != 1 || conv.Credits != 50 {
		t.Errorf("conversation breakdown = %+v, want {Count:1 Credits:50}", conv)
	}
}

func TestSummarize_Empty(t *testing.T) {
	summary := Summarize(nil)

	if summary.TotalAPICalls != 0 || summary.TotalCreditsUsed != 0 {
		t.Errorf("empty input should yield zero totals, got %+v", summary)
	}
	if len(summary.ByType) != 0 || len(summary.ByVoice) != 0 || len(summary.BySource) != 0 || len(summary.ByDay) != 0 {
		t.Error("empty input should yield empty breakdowns")
	}
	if summary.TimeRange.EarliestCall != "" || summary.TimeRange.LatestCall != "" {
		t.Errorf("empty input should yield empty time range, got %+v", summary.TimeRange)
	}
}

func TestSummarize_BreakdownSumsMatchTotals(t *testing.T) {
	records := []models.CallRecord{
		speechRecord("a", 1640995200, 10, "Rachel", "api"),
		speechRecord("b", 1640998800, 0, "", ""),
		speechRecord("c", 1641002400, 7, "Adam", "web"),
		conversationRecord("d", 1641006000, 50),
		conversationRecord("e", 1641092400, 3),
	}

	summary := Summarize(records)

	groupings := map[string]map[string]models.Breakdown{
		"ByType":   summary.ByType,
		"ByVoice":  summary.ByVoice,
		"BySource": summary.BySource,
		"ByDay":    summary.ByDay,
	}
	for name, grouping := range groupings {
		var count int
		var credits int64
		for _, b := range grouping {
			count += b.Count
			credits += b.Credits
		}
		if count != summary.TotalAPICalls {
			t.Errorf("%s counts sum to %d, want %d", name, count, summary.TotalAPICalls)
		}
		if credits != summary.TotalCreditsUsed {
			t.Errorf("%s credits sum to %d, want %d", name, credits, summary.TotalCreditsUsed)
		}
	}
}

func TestSummarize_UnknownBuckets(t *testing.T) {
	records := []models.CallRecord{
		speechRecord("a", 1640995200, 10, "", ""),
		conversationRecord("b", 1640998800, 50),
	}

	summary := Summarize(records)

	voice := summary.ByVoice["unknown"]
	if voice.Count != 2 || voice.Credits != 60 {
		t.Errorf("unknown voice bucket = %+v, want {Count:2 Credits:60}", voice)
	}
	source := summary.BySource["unknown"]
	if source.Count != 2 || source.Credits != 60 {
		t.Errorf("unknown source bucket = %+v, want {Count:2 Credits:60}", source)
	}
}

func TestSummarize_SkipsMalformedRecords(t *testing.T) {
	records := []models.CallRecord{
		speechRecord("a", 1640995200, 10, "Rachel", "api"),
		{Type: models.CallTypeSpeech, Timestamp: 1640995200, CreditsUsed: 5},              // missing id
		{Type: models.CallType("bogus"), ID: "b", Timestamp: 1640995200, CreditsUsed: 5}, // bad type
		{Type: models.CallTypeSpeech, ID: "c", CreditsUsed: 5},                           // missing timestamp
		{Type: models.CallTypeSpeech, ID: "d", Timestamp: 1640995200, CreditsUsed: -1},   // negative credits
	}

	summary := Summarize(records)

	if summary.TotalAPICalls != 1 {
		t.Errorf("TotalAPICalls = %d, want 1", summary.TotalAPICalls)
	}
	if summary.TotalCreditsUsed != 10 {
		t.Errorf("TotalCreditsUsed = %d, want 10", summary.TotalCreditsUsed)
	}
	if summary.SkippedRecords != 4 {
		t.Errorf("SkippedRecords = %d, want 4", summary.SkippedRecords)
	}
}

func TestSummarize_WindowPartitionAdditivity(t *testing.T) {
	// Aggregating two disjoint halves must equal aggregating the union.
	first := []models.CallRecord{
		speechRecord("a", 1640995200, 10, "Rachel", "api"),
		speechRecord("b", 1640998800, 15, "Adam", "web"),
	}
	second := []models.CallRecord{
		conversationRecord("c", 1641081600, 50),
		speechRecord("d", 1641085200, 5, "Rachel", "api"),
	}

	union := Summarize(append(append([]models.CallRecord{}, first...), second...))
	s1 := Summarize(first)
	s2 := Summarize(second)

	if s1.TotalAPICalls+s2.TotalAPICalls != union.TotalAPICalls {
		t.Errorf("call counts not additive: %d + %d != %d",
			s1.TotalAPICalls, s2.TotalAPICalls, union.TotalAPICalls)
	}
	if s1.TotalCreditsUsed+s2.TotalCreditsUsed != union.TotalCreditsUsed {
		t.Errorf("credit totals not additive: %d + %d != %d",
			s1.TotalCreditsUsed, s2.TotalCreditsUsed, union.TotalCreditsUsed)
	}

	for key, want := range union.ByVoice {
		got := s1.ByVoice[key].Credits + s2.ByVoice[key].Credits
		if got != want.Credits {
			t.Errorf("voice %q credits not additive: %d != %d", key, got, want.Credits)
		}
	}
}

func TestSummarize_TimeRange(t *testing.T) {
	records := []models.CallRecord{
		speechRecord("a", 1640995200, 1, "", ""),
		speechRecord("b", 1641081600, 1, "", ""),
	}

	summary := Summarize(records)

	if summary.TimeRange.EarliestCall != "2022-01-01 00:00:00 UTC" {
		t.Errorf("EarliestCall = %q", summary.TimeRange.EarliestCall)
	}
	if summary.TimeRange.LatestCall != "2022-01-02 00:00:00 UTC" {
		t.Errorf("LatestCall = %q", summary.TimeRange.LatestCall)
	}
}

func TestSummarize_DayBuckets(t *testing.T) {
	records := []models.CallRecord{
		speechRecord("a", 1640995200, 10, "", ""), // 2022-01-01
		speechRecord("b", 1641038400, 5, "", ""),  // 2022-01-01
		speechRecord("c", 1641081600, 20, "", ""), // 2022-01-02
	}

	summary := Summarize(records)

	day1 := summary.ByDay["2022-01-01"]
	if day1.Count != 2 || day1.Credits != 15 {
		t.Errorf("2022-01-01 bucket = %+v, want {Count:2 Credits:15}", day1)
	}
	day2 := summary.ByDay["2022-01-02"]
	if day2.Count != 1 || day2.Credits != 20 {
		t.Errorf("2022-01-02 bucket = %+v, want {Count:1 Credits:20}", day2)
	}
}
