package archive

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/r-castano/eleven-usage/internal/models"
)

func newTestArchive(t *testing.T) *Archive {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	a, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { _ = a.Close() })
	return a
}

func TestOpen(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nested", "dir", "usage.db")

	a, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer a.Close()

	if a.Path() != path {
		t.Errorf("Path() = %q, want %q", a.Path(), path)
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Error("archive file was not created")
	}
}

func TestRecordRun(t *testing.T) {
	a := newTestArchive(t)

	window, err := models.NewTimeWindow(1640995200, 1641081600)
	if err != nil {
		t.Fatalf("NewTimeWindow() failed: %v", err)
	}

	records := []models.CallRecord{
		{Type: models.CallTypeSpeech, ID: "a", Timestamp: 1641000000, CreditsUsed: 10, VoiceName: "Rachel", Source: "api"},
		{Type: models.CallTypeConversation, ID: "b", Timestamp: 1641003600, CreditsUsed: 50},
	}
	summary := models.Summary{TotalAPICalls: 2, TotalCreditsUsed: 60}

	if err := a.RecordRun(window, summary, records); err != nil {
		t.Fatalf("RecordRun() failed: %v", err)
	}

	count, err := a.RunCount()
	if err != nil {
		t.Fatalf("RunCount() failed: %v", err)
	}
	if count != 1 {
		t.Errorf("RunCount() = %d, want 1", count)
	}
}

func TestRecordRun_DeduplicatesAcrossRuns(t *testing.T) {
	a := newTestArchive(t)

	window, err := models.NewTimeWindow(1640995200, 1641081600)
	if err != nil {
		t.Fatalf("NewTimeWindow() failed: %v", err)
	}

	records := []models.CallRecord{
		{Type: models.CallTypeSpeech, ID: "same-id", Timestamp: 1641000000, CreditsUsed: 10},
	}
	summary := models.Summary{TotalAPICalls: 1, TotalCreditsUsed: 10}

	if err := a.RecordRun(window, summary, records); err != nil {
		t.Fatalf("first RecordRun() failed: %v", err)
	}
	if err := a.RecordRun(window, summary, records); err != nil {
		t.Fatalf("second RecordRun() failed: %v", err)
	}

	usage, err := a.DailyUsage(0)
	if err != nil {
		t.Fatalf("DailyUsage() failed: %v", err)
	}
	if len(usage) != 1 {
		t.Fatalf("expected 1 day bucket, got %d", len(usage))
	}
	if usage[0].Calls != 1 || usage[0].Credits != 10 {
		t.Errorf("record was duplicated: %+v", usage[0])
	}
}

func TestDailyUsage(t *testing.T) {
	a := newTestArchive(t)

	window, err := models.NewTimeWindow(1640995200, 1641168000)
	if err != nil {
		t.Fatalf("NewTimeWindow() failed: %v", err)
	}

	records := []models.CallRecord{
		{Type: models.CallTypeSpeech, ID: "a", Timestamp: 1641000000, CreditsUsed: 10}, // 2022-01-01
		{Type: models.CallTypeSpeech, ID: "b", Timestamp: 1641003600, CreditsUsed: 5},  // 2022-01-01
		{Type: models.CallTypeSpeech, ID: "c", Timestamp: 1641085200, CreditsUsed: 20}, // 2022-01-02
	}
	summary := models.Summary{TotalAPICalls: 3, TotalCreditsUsed: 35}

	if err := a.RecordRun(window, summary, records); err != nil {
		t.Fatalf("RecordRun() failed: %v", err)
	}

	usage, err := a.DailyUsage(0)
	if err != nil {
		t.Fatalf("DailyUsage() failed: %v", err)
	}

	if len(usage) != 2 {
		t.Fatalf("expected 2 day buckets, got %d", len(usage))
	}
	if usage[0].Day != "2022-01-01" || usage[0].Calls != 2 || usage[0].Credits != 15 {
		t.Errorf("unexpected first bucket: %+v", usage[0])
	}
	if usage[1].Day != "2022-01-02" || usage[1].Calls != 1 || usage[1].Credits != 20 {
		t.Errorf("unexpected second bucket: %+v", usage[1])
	}
}

func TestDailyUsage_Empty(t *testing.T) {
	a := newTestArchive(t)

	usage, err := a.DailyUsage(30)
	if err != nil {
		t.Fatalf("DailyUsage() failed: %v", err)
	}
	if len(usage) != 0 {
		t.Errorf("expected no usage, got %+v", usage)
	}
}
