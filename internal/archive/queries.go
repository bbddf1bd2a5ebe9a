package archive

import (
	"context"
	"fmt"
	"time"

	"github.com/r-castano/eleven-usage/internal/models"
)

// RecordRun stores run metadata and its call records in one transaction.
// Records already archived by an earlier overlapping run are skipped.
func (a *Archive) RecordRun(window models.TimeWindow, summary models.Summary, records []models.CallRecord) error {
	ctx := context.Background()

	tx, err := a.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	result, err := tx.ExecContext(ctx, `
		INSERT INTO runs (window_start_ms, window_end_ms, total_calls, total_credits, skipped_records)
		VALUES (?, ?, ?, ?, ?)
	`, window.StartMs, window.EndMs, summary.TotalAPICalls, summary.TotalCreditsUsed, summary.SkippedRecords)
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}

	runID, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read run id: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR IGNORE INTO call_records (run_id, record_id, call_type, timestamp, credits, voice_name, source, request_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare record insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i := range records {
		rec := &records[i]
		timestamp := time.Unix(rec.Timestamp, 0).UTC().Format("2006-01-02 15:04:05")
		if _, err := stmt.ExecContext(ctx, runID, rec.ID, string(rec.Type), timestamp,
			rec.CreditsUsed, nullString(rec.VoiceName), nullString(rec.Source), nullString(rec.RequestID)); err != nil {
			return fmt.Errorf("failed to insert call record: %w", err)
		}
	}

	return tx.Commit()
}

// DailyUsage returns per-day totals over archived records, oldest first.
// days limits the lookback window; 0 means unlimited.
func (a *Archive) DailyUsage(days int) ([]models.DailyUsage, error) {
	query := `
		SELECT strftime('%Y-%m-%d', timestamp) AS day,
			   COUNT(*) AS calls,
			   COALESCE(SUM(credits), 0) AS credits
		FROM call_records
	`
	var args []any
	if days > 0 {
		query += ` WHERE timestamp >= datetime('now', ?)`
		args = append(args, fmt.Sprintf("-%d days", days))
	}
	query += ` GROUP BY day ORDER BY day ASC`

	rows, err := a.QueryContext(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily usage: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var usage []models.DailyUsage
	for rows.Next() {
		var d models.DailyUsage
		if err := rows.Scan(&d.Day, &d.Calls, &d.Credits); err != nil {
			return nil, fmt.Errorf("failed to scan daily usage: %w", err)
		}
		usage = append(usage, d)
	}

	return usage, rows.Err()
}

// RunCount returns how many runs are archived.
func (a *Archive) RunCount() (int, error) {
	var count int
	err := a.QueryRowContext(context.Background(), `SELECT COUNT(*) FROM runs`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count runs: %w", err)
	}
	return count, nil
}
