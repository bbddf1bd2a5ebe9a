// Package models defines data structures and domain types.
package models

import "time"

// CallType identifies the kind of provider API call behind a record.
type CallType string

const (
	// CallTypeSpeech is a text-to-speech generation call.
	CallTypeSpeech CallType = "speech_generation"
	// CallTypeConversation is a conversational AI call.
	CallTypeConversation CallType = "conversational_ai"
)

// Valid reports whether the call type is one the aggregator understands.
func (t CallType) Valid() bool {
	return t == CallTypeSpeech || t == CallTypeConversation
}

// TranscriptSummary counts messages in a conversation transcript.
type TranscriptSummary struct {
	TotalItems        int `json:"total_items"`
	UserMessages      int `json:"user_messages"`
	AssistantMessages int `json:"assistant_messages"`
}

// CallRecord represents one logged provider API call with its credit cost
// and metadata. Records are immutable once fetched.
type CallRecord struct {
	Type          CallType `json:"type"`
	ID            string   `json:"id"`
	Timestamp     int64    `json:"timestamp"`
	TimestampMs   int64    `json:"timestamp_ms"`
	FormattedTime string   `json:"formatted_time"`
	CreditsUsed   int64    `json:"credits_used"`

	// Speech generation fields
	Text               string `json:"text,omitempty"`
	VoiceID            string `json:"voice_id,omitempty"`
	VoiceName          string `json:"voice_name,omitempty"`
	VoiceCategory      string `json:"voice_category,omitempty"`
	ModelID            string `json:"model_id,omitempty"`
	ContentType        string `json:"content_type,omitempty"`
	Source             string `json:"source,omitempty"`
	CharacterCountFrom int64  `json:"character_count_from,omitempty"`
	CharacterCountTo   int64  `json:"character_count_to,omitempty"`
	RequestID          string `json:"request_id,omitempty"`

	// Conversational AI fields
	AgentID           string             `json:"agent_id,omitempty"`
	DurationSecs      int                `json:"duration_secs,omitempty"`
	Status            string             `json:"status,omitempty"`
	TotalLLMTokens    int64              `json:"total_llm_tokens,omitempty"`
	AcceptedTime      int64              `json:"accepted_time,omitempty"`
	TerminationReason string             `json:"termination_reason,omitempty"`
	MainLanguage      string             `json:"main_language,omitempty"`
	Transcript        *TranscriptSummary `json:"transcript_summary,omitempty"`

	// Error notes why a record carries degraded data (detail fetch failed).
	Error string `json:"error,omitempty"`
}

// Day returns the UTC calendar day bucket for the record.
func (r *CallRecord) Day() string {
	return time.Unix(r.Timestamp, 0).UTC().Format("2006-01-02")
}
