package elevenlabs

import (
	"context"

	"github.com/r-castano/eleven-usage/internal/models"
)

type subscriptionPayload struct {
	Tier                        string `json:"tier"`
	CharacterCount              int64  `json:"character_count"`
	CharacterLimit              int64  `json:"character_limit"`
	NextCharacterCountResetUnix int64  `json:"next_character_count_reset_unix"`
	VoiceSlotsUsed              int    `json:"voice_slots_used"`
	VoiceLimit                  int    `json:"voice_limit"`
	ProfessionalVoiceSlotsUsed  int    `json:"professional_voice_slots_used"`
	ProfessionalVoiceLimit      int    `json:"professional_voice_limit"`
	Status                      string `json:"status"`
	Currency                    string `json:"currency"`
}

type subscriptionExtras struct {
	Usage *models.DetailedUsage `json:"usage"`
}

type userResponse struct {
	Subscription       subscriptionPayload `json:"subscription"`
	SubscriptionExtras *subscriptionExtras `json:"subscription_extras"`
}

// Subscription fetches the account's plan and quota snapshot.
func (c *Client) Subscription(ctx context.Context) (*models.SubscriptionInfo, error) {
	var resp userResponse
	if err := c.getJSON(ctx, "/v1/user", nil, &resp); err != nil {
		return nil, &FetchError{Op: "subscription info", Err: err}
	}

	sub := &models.SubscriptionInfo{
		Tier:                       resp.Subscription.Tier,
		CharacterCount:             resp.Subscription.CharacterCount,
		CharacterLimit:             resp.Subscription.CharacterLimit,
		NextResetUnix:              resp.Subscription.NextCharacterCountResetUnix,
		VoiceSlotsUsed:             resp.Subscription.VoiceSlotsUsed,
		VoiceLimit:                 resp.Subscription.VoiceLimit,
		ProfessionalVoiceSlotsUsed: resp.Subscription.ProfessionalVoiceSlotsUsed,
		ProfessionalVoiceLimit:     resp.Subscription.ProfessionalVoiceLimit,
		Status:                     resp.Subscription.Status,
		Currency:                   resp.Subscription.Currency,
	}
	if sub.NextResetUnix > 0 {
		sub.NextResetFormatted = models.FormatTimestampMs(sub.NextResetUnix * 1000)
	}
	if resp.SubscriptionExtras != nil {
		sub.DetailedUsage = resp.SubscriptionExtras.Usage
	}

	return sub, nil
}
