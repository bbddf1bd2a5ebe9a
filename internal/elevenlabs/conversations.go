package elevenlabs

import (
	"context"
	"net/url"
	"strconv"

	"github.com/r-castano/eleven-usage/internal/logger"
	"github.com/r-castano/eleven-usage/internal/models"
)

// conversationStub is one entry of the conversation listing.
type conversationStub struct {
	ConversationID    string `json:"conversation_id"`
	AgentID           string `json:"agent_id"`
	StartTimeUnixSecs int64  `json:"start_time_unix_secs"`
	CallDurationSecs  int    `json:"call_duration_secs"`
	Status            string `json:"status"`
}

type conversationsResponse struct {
	Conversations []conversationStub `json:"conversations"`
	NextCursor    string             `json:"next_cursor"`
	HasMore       bool               `json:"has_more"`
}

type llmUsage struct {
	TotalTokens int64 `json:"total_tokens"`
}

type transcriptItem struct {
	Role     string    `json:"role"`
	LLMUsage *llmUsage `json:"llm_usage"`
}

type conversationMetadata struct {
	StartTimeUnixSecs    int64  `json:"start_time_unix_secs"`
	AcceptedTimeUnixSecs int64  `json:"accepted_time_unix_secs"`
	CallDurationSecs     int    `json:"call_duration_secs"`
	Cost                 int64  `json:"cost"`
	TerminationReason    string `json:"termination_reason"`
	MainLanguage         string `json:"main_language"`
}

type conversationDetail struct {
	Metadata   conversationMetadata `json:"metadata"`
	Transcript []transcriptItem     `json:"transcript"`
}

// Conversations downloads all conversational AI records inside the window.
// Listing uses cursor pagination; each conversation needs a second request
// for cost and transcript details. A failed detail fetch degrades to a
// basic record instead of aborting the run.
func (c *Client) Conversations(ctx context.Context, window models.TimeWindow) ([]models.CallRecord, error) {
	var records []models.CallRecord
	cursor := ""

	for {
		query := url.Values{}
		query.Set("page_size", strconv.Itoa(conversationPageSize))
		query.Set("call_start_after_unix", strconv.FormatInt(window.StartUnix(), 10))
		query.Set("call_start_before_unix", strconv.FormatInt(window.EndUnix(), 10))
		if cursor != "" {
			query.Set("cursor", cursor)
		}

		var resp conversationsResponse
		if err := c.getJSON(ctx, "/v1/convai/conversations", query, &resp); err != nil {
			return nil, &FetchError{Op: "conversations", Err: err}
		}

		if len(resp.Conversations) == 0 {
			break
		}

		for i := range resp.Conversations {
			records = append(records, c.conversationRecord(ctx, &resp.Conversations[i]))
		}

		if !resp.HasMore || resp.NextCursor == "" {
			break
		}
		cursor = resp.NextCursor
		logger.Info("fetching conversations", "records_so_far", len(records))
	}

	return records, nil
}

// conversationRecord fetches detail data for a conversation and builds the
// call record, falling back to the listing stub when the detail fetch fails.
func (c *Client) conversationRecord(ctx context.Context, stub *conversationStub) models.CallRecord {
	detail, err := c.conversationDetail(ctx, stub.ConversationID)
	if err != nil {
		logger.Warn("could not fetch conversation details", "conversation_id", stub.ConversationID, "error", err)
		ms := stub.StartTimeUnixSecs * 1000
		return models.CallRecord{
			Type:          models.CallTypeConversation,
			ID:            stub.ConversationID,
			AgentID:       stub.AgentID,
			Timestamp:     stub.StartTimeUnixSecs,
			TimestampMs:   ms,
			FormattedTime: models.FormatTimestampMs(ms),
			DurationSecs:  stub.CallDurationSecs,
			Status:        stub.Status,
			Error:         "could not fetch detailed data: " + err.Error(),
		}
	}

	var totalTokens int64
	summary := &models.TranscriptSummary{TotalItems: len(detail.Transcript)}
	for i := range detail.Transcript {
		item := &detail.Transcript[i]
		if item.LLMUsage != nil {
			totalTokens += item.LLMUsage.TotalTokens
		}
		switch item.Role {
		case "user":
			summary.UserMessages++
		case "assistant":
			summary.AssistantMessages++
		}
	}

	ms := detail.Metadata.StartTimeUnixSecs * 1000
	return models.CallRecord{
		Type:              models.CallTypeConversation,
		ID:                stub.ConversationID,
		AgentID:           stub.AgentID,
		Timestamp:         detail.Metadata.StartTimeUnixSecs,
		TimestampMs:       ms,
		FormattedTime:     models.FormatTimestampMs(ms),
		CreditsUsed:       detail.Metadata.Cost,
		DurationSecs:      detail.Metadata.CallDurationSecs,
		Status:            stub.Status,
		TotalLLMTokens:    totalTokens,
		AcceptedTime:      detail.Metadata.AcceptedTimeUnixSecs,
		TerminationReason: detail.Metadata.TerminationReason,
		MainLanguage:      detail.Metadata.MainLanguage,
		Transcript:        summary,
	}
}

func (c *Client) conversationDetail(ctx context.Context, id string) (*conversationDetail, error) {
	var detail conversationDetail
	if err := c.getJSON(ctx, "/v1/convai/conversations/"+url.PathEscape(id), nil, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}
