package model

import "time"

// PartnerType enumerates the partner program tracks.
type PartnerType string

const (
	PartnerReferral   PartnerType = "referral"
	PartnerReseller   PartnerType = "reseller"
	PartnerTechnology PartnerType = "technology"
)

// PartnerApplication is a stored application to the partner program.
type PartnerApplication struct {
	ID          string      `json:"id"`
	Name        string      `json:"name" validate:"required,max=200"`
	Email       string      `json:"email" validate:"required,email"`
	Company     string      `json:"company" validate:"required,max=200"`
	Website     string      `json:"website,omitempty" validate:"omitempty,url"`
	PartnerType PartnerType `json:"partner_type" validate:"required,oneof=referral reseller technology"`
	Message     string      `json:"message,omitempty" validate:"max=5000"`
	CreatedAt   time.Time   `json:"created_at"`
}

// TrustDownload records who requested a gated trust-center document.
type TrustDownload struct {
	ID        string    `json:"id"`
	Name      string    `json:"name" validate:"required,max=200"`
	Email     string    `json:"email" validate:"required,email"`
	Company   string    `json:"company" validate:"required,max=200"`
	Document  string    `json:"document" validate:"required"`
	CreatedAt time.Time `json:"created_at"`
}

// TrustDownloadLink is the presigned link handed back for a TrustDownload.
type TrustDownloadLink struct {
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}

// SlackConnectRequest asks for a shared Slack channel with the Stereos team.
type SlackConnectRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	Email   string `json:"email" validate:"required,email"`
	Company string `json:"company" validate:"required,max=200"`
	Message string `json:"message,omitempty" validate:"max=2000"`
}

// SlackConnectResult reports which best-effort steps succeeded.
type SlackConnectResult struct {
	ChannelID string `json:"channel_id,omitempty"`
	Invited   bool   `json:"invited"`
	Emailed   bool   `json:"emailed"`
}
