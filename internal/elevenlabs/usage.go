package elevenlabs

import (
	"context"
	"net/url"
	"strconv"

	"github.com/r-castano/eleven-usage/internal/models"
)

// UsageAnalytics is the provider's aggregated usage view: credit totals per
// voice bucket over day intervals.
type UsageAnalytics struct {
	Time  []int64            `json:"time"`
	Usage map[string][]int64 `json:"usage"`
}

// Usage fetches aggregated usage analytics for the window, broken down by
// voice per day.
func (c *Client) Usage(ctx context.Context, window models.TimeWindow) (*UsageAnalytics, error) {
	query := url.Values{}
	query.Set("start_unix", strconv.FormatInt(window.StartUnix(), 10))
	query.Set("end_unix", strconv.FormatInt(window.EndUnix(), 10))
	query.Set("breakdown_type", "voice")
	query.Set("aggregation_interval", "day")
	query.Set("metric", "credits")

	var analytics UsageAnalytics
	if err := c.getJSON(ctx, "/v1/usage/character-stats", query, &analytics); err != nil {
		return nil, &FetchError{Op: "usage analytics", Err: err}
	}
	return &analytics, nil
}
