package models

import (
	"fmt"
	"time"
)

// msCutoff is Jan 1, 3000 in Unix seconds. Any timestamp below it is
// treated as seconds and converted to milliseconds.
const msCutoff = 32503680000

// TimeWindow represents the half-inclusive query range in milliseconds.
type TimeWindow struct {
	StartMs int64
	EndMs   int64
}

// NewTimeWindow builds a window from user-supplied timestamps, accepting
// either seconds or milliseconds for each bound.
func NewTimeWindow(start, end int64) (TimeWindow, error) {
	w := TimeWindow{
		StartMs: NormalizeTimestamp(start),
		EndMs:   NormalizeTimestamp(end),
	}
	if w.StartMs >= w.EndMs {
		return TimeWindow{}, fmt.Errorf("start timestamp must be before end timestamp")
	}
	return w, nil
}

// Contains reports whether a millisecond timestamp falls inside the window.
func (w TimeWindow) Contains(ms int64) bool {
	return ms >= w.StartMs && ms <= w.EndMs
}

// StartUnix returns the window start in seconds.
func (w TimeWindow) StartUnix() int64 { return w.StartMs / 1000 }

// EndUnix returns the window end in seconds.
func (w TimeWindow) EndUnix() int64 { return w.EndMs / 1000 }

// NormalizeTimestamp converts a timestamp to milliseconds if it looks like
// seconds.
func NormalizeTimestamp(ts int64) int64 {
	if ts < msCutoff {
		return ts * 1000
	}
	return ts
}

// FormatTimestampMs renders a millisecond timestamp as a UTC string.
func FormatTimestampMs(ms int64) string {
	return time.UnixMilli(ms).UTC().Format("2006-01-02 15:04:05 UTC")
}
