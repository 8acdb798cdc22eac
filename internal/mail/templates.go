package mail

import (
	"bytes"
	"fmt"
	"html/template"
	"time"
)

var templates = template.Must(template.New("mail").Parse(`
{{define "slack_connect"}}<p>Hi {{.Name}},</p>
<p>Thanks for reaching out from {{.Company}}. {{if .ChannelCreated}}We've opened a shared Slack channel with your team, look for an invite from Slack Connect shortly.{{else}}We couldn't open a shared Slack channel automatically, so someone from our team will reply to this email instead.{{end}}</p>
{{if .Message}}<blockquote>{{.Message}}</blockquote>{{end}}
<p>The Stereos team<br><a href="{{.BaseURL}}">{{.BaseURL}}</a></p>{{end}}

{{define "partner_received"}}<p>Hi {{.Name}},</p>
<p>We received {{.Company}}'s application to the Stereos {{.PartnerType}} partner program. We review applications within a few business days and will follow up at this address.</p>
<p>The Stereos team<br><a href="{{.BaseURL}}/partners">{{.BaseURL}}/partners</a></p>{{end}}

{{define "trust_link"}}<p>Hi {{.Name}},</p>
<p>Here is your download link for <strong>{{.Document}}</strong>:</p>
<p><a href="{{.URL}}">Download {{.Document}}</a></p>
<p>The link expires at {{.ExpiresAt.Format "2006-01-02 15:04 MST"}}. You can request a new one from <a href="{{.BaseURL}}/trust">{{.BaseURL}}/trust</a>.</p>{{end}}
`))

// SlackConnectData fills the Slack Connect intro email.
type SlackConnectData struct {
	Name           string
	Company        string
	Message        string
	ChannelCreated bool
	BaseURL        string
}

// PartnerReceivedData fills the partner application confirmation.
type PartnerReceivedData struct {
	Name        string
	Company     string
	PartnerType string
	BaseURL     string
}

// TrustLinkData fills the trust document link email.
type TrustLinkData struct {
	Name      string
	Document  string
	URL       string
	ExpiresAt time.Time
	BaseURL   string
}

// SlackConnectIntro renders the intro email sent after a Slack Connect request.
func SlackConnectIntro(to string, d SlackConnectData) (Message, error) {
	return render(to, "Welcome to Stereos on Slack", "slack_connect", d)
}

// PartnerReceived renders the partner application confirmation.
func PartnerReceived(to string, d PartnerReceivedData) (Message, error) {
	return render(to, "We received your partner application", "partner_received", d)
}

// TrustLink renders the email carrying a presigned trust document link.
func TrustLink(to string, d TrustLinkData) (Message, error) {
	return render(to, "Your Stereos security document", "trust_link", d)
}

func render(to, subject, name string, data any) (Message, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return Message{}, fmt.Errorf("render %s email: %w", name, err)
	}
	return Message{To: []string{to}, Subject: subject, HTML: buf.String()}, nil
}
