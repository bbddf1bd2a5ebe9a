package models

// DetailedUsage breaks the subscription's credit consumption into the
// provider's accounting buckets.
type DetailedUsage struct {
	RolloverCreditsUsed           int64 `json:"rollover_credits_used"`
	RolloverCreditsQuota          int64 `json:"rollover_credits_quota"`
	SubscriptionCycleCreditsUsed  int64 `json:"subscription_cycle_credits_used"`
	SubscriptionCycleCreditsQuota int64 `json:"subscription_cycle_credits_quota"`
	ManuallyGiftedCreditsUsed     int64 `json:"manually_gifted_credits_used"`
	ManuallyGiftedCreditsQuota    int64 `json:"manually_gifted_credits_quota"`
	PaidUsageBasedCreditsUsed     int64 `json:"paid_usage_based_credits_used"`
	ActualReportedCredits         int64 `json:"actual_reported_credits"`
}

// SubscriptionInfo is a point-in-time snapshot of the account's plan and
// quota state. Immutable once fetched.
type SubscriptionInfo struct {
	Tier                       string         `json:"tier"`
	CharacterCount             int64          `json:"character_count_used"`
	CharacterLimit             int64          `json:"character_limit"`
	NextResetUnix              int64          `json:"next_reset_unix,omitempty"`
	NextResetFormatted         string         `json:"next_reset_formatted,omitempty"`
	VoiceSlotsUsed             int            `json:"voice_slots_used"`
	VoiceLimit                 int            `json:"voice_limit"`
	ProfessionalVoiceSlotsUsed int            `json:"professional_voice_slots_used"`
	ProfessionalVoiceLimit     int            `json:"professional_voice_limit"`
	Status                     string         `json:"status"`
	Currency                   string         `json:"currency,omitempty"`
	DetailedUsage              *DetailedUsage `json:"detailed_usage,omitempty"`
}

// RemainingPercent returns the share of the character quota still unused,
// in the range 0-100. A snapshot without a limit reports 100.
func (s *SubscriptionInfo) RemainingPercent() float64 {
	if s == nil || s.CharacterLimit <= 0 {
		return 100
	}
	remaining := s.CharacterLimit - s.CharacterCount
	if remaining < 0 {
		remaining = 0
	}
	return float64(remaining) / float64(s.CharacterLimit) * 100
}
