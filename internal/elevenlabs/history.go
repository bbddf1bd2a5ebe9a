package elevenlabs

import (
	"context"
	"net/url"
	"strconv"

	"github.com/r-castano/eleven-usage/internal/logger"
	"github.com/r-castano/eleven-usage/internal/models"
)

// historyItem is one entry of the speech generation history API.
type historyItem struct {
	HistoryItemID            string `json:"history_item_id"`
	DateUnix                 int64  `json:"date_unix"`
	Text                     string `json:"text"`
	VoiceID                  string `json:"voice_id"`
	VoiceName                string `json:"voice_name"`
	VoiceCategory            string `json:"voice_category"`
	ModelID                  string `json:"model_id"`
	ContentType              string `json:"content_type"`
	Source                   string `json:"source"`
	CharacterCountChangeFrom int64  `json:"character_count_change_from"`
	CharacterCountChangeTo   int64  `json:"character_count_change_to"`
	RequestID                string `json:"request_id"`
}

type historyResponse struct {
	History           []historyItem `json:"history"`
	LastHistoryItemID string        `json:"last_history_item_id"`
	HasMore           bool          `json:"has_more"`
}

// creditsUsed derives the credit cost of a history item from the character
// count delta around the call.
func (i *historyItem) creditsUsed() int64 {
	delta := i.CharacterCountChangeFrom - i.CharacterCountChangeTo
	if delta < 0 {
		return 0
	}
	return delta
}

// SpeechHistory downloads all speech generation records inside the window.
// The API returns items newest first, so pagination stops as soon as an
// item falls before the window start.
func (c *Client) SpeechHistory(ctx context.Context, window models.TimeWindow) ([]models.CallRecord, error) {
	var records []models.CallRecord
	startAfterID := ""

	for {
		query := url.Values{}
		query.Set("page_size", strconv.Itoa(historyPageSize))
		if startAfterID != "" {
			query.Set("start_after_history_item_id", startAfterID)
		}

		var resp historyResponse
		if err := c.getJSON(ctx, "/v1/history", query, &resp); err != nil {
			return nil, &FetchError{Op: "speech history", Err: err}
		}

		if len(resp.History) == 0 {
			break
		}

		for i := range resp.History {
			item := &resp.History[i]
			itemMs := item.DateUnix * 1000

			if window.Contains(itemMs) {
				records = append(records, models.CallRecord{
					Type:               models.CallTypeSpeech,
					ID:                 item.HistoryItemID,
					Timestamp:          item.DateUnix,
					TimestampMs:        itemMs,
					FormattedTime:      models.FormatTimestampMs(itemMs),
					CreditsUsed:        item.creditsUsed(),
					Text:               item.Text,
					VoiceID:            item.VoiceID,
					VoiceName:          item.VoiceName,
					VoiceCategory:      item.VoiceCategory,
					ModelID:            item.ModelID,
					ContentType:        item.ContentType,
					Source:             item.Source,
					CharacterCountFrom: item.CharacterCountChangeFrom,
					CharacterCountTo:   item.CharacterCountChangeTo,
					RequestID:          item.RequestID,
				})
			} else if itemMs < window.StartMs {
				// Everything after this point is older than the window.
				return records, nil
			}
		}

		if !resp.HasMore {
			break
		}
		startAfterID = resp.LastHistoryItemID
		logger.Info("fetching speech history", "records_so_far", len(records))
	}

	return records, nil
}
