package mail

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func TestResend_Send(t *testing.T) {
	var got map[string]any
	client := &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
		assert.Equal(t, "Bearer re_test", r.Header.Get("Authorization"))
		assert.True(t, strings.HasSuffix(r.URL.Path, "/emails"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		return &http.Response{
			StatusCode: http.StatusOK,
			Header:     http.Header{"Content-Type": []string{"application/json"}},
			Body:       io.NopCloser(strings.NewReader(`{"id":"email-1"}`)),
			Request:    r,
		}, nil
	})}

	r := NewResend("re_test", "Stereos <hello@stereos.ai>", client, zerolog.Nop())
	err := r.Send(context.Background(), Message{To: []string{"ada@example.com"}, Subject: "Hi", HTML: "<p>Hi</p>"})

	require.NoError(t, err)
	assert.Equal(t, "Stereos <hello@stereos.ai>", got["from"])
	assert.Equal(t, []any{"ada@example.com"}, got["to"])
	assert.Equal(t, "Hi", got["subject"])
}

func TestResend_Disabled(t *testing.T) {
	r := NewResend("", "from@example.com", http.DefaultClient, zerolog.Nop())
	err := r.Send(context.Background(), Message{To: []string{"a@example.com"}})
	assert.ErrorIs(t, err, ErrDisabled)
}

func TestResend_NoRecipients(t *testing.T) {
	r := NewResend("re_test", "from@example.com", http.DefaultClient, zerolog.Nop())
	assert.Error(t, r.Send(context.Background(), Message{Subject: "x"}))
}

func TestTemplates(t *testing.T) {
	t.Run("slack connect fallback", func(t *testing.T) {
		msg, err := SlackConnectIntro("ada@example.com", SlackConnectData{
			Name:    "Ada",
			Company: "<Acme>",
			BaseURL: "https://stereos.ai",
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"ada@example.com"}, msg.To)
		assert.Contains(t, msg.HTML, "couldn't open a shared Slack channel")
		assert.Contains(t, msg.HTML, "&lt;Acme&gt;")
	})

	t.Run("slack connect channel created", func(t *testing.T) {
		msg, err := SlackConnectIntro("ada@example.com", SlackConnectData{Name: "Ada", ChannelCreated: true})
		require.NoError(t, err)
		assert.Contains(t, msg.HTML, "opened a shared Slack channel")
	})

	t.Run("partner received", func(t *testing.T) {
		msg, err := PartnerReceived("ada@example.com", PartnerReceivedData{Name: "Ada", Company: "Acme", PartnerType: "reseller", BaseURL: "https://stereos.ai"})
		require.NoError(t, err)
		assert.Contains(t, msg.HTML, "reseller partner program")
		assert.Contains(t, msg.HTML, "https://stereos.ai/partners")
	})

	t.Run("trust link", func(t *testing.T) {
		exp := time.Date(2026, 1, 2, 15, 4, 0, 0, time.UTC)
		msg, err := TrustLink("ada@example.com", TrustLinkData{Name: "Ada", Document: "soc2-type2.pdf", URL: "https://minio/x?sig=1&b=2", ExpiresAt: exp})
		require.NoError(t, err)
		assert.Contains(t, msg.HTML, "2026-01-02 15:04 UTC")
		assert.Contains(t, msg.HTML, "https://minio/x?sig=1&amp;b=2")
	})
}
