package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"stereos/internal/content"
	"stereos/internal/service"
)

func spanAttr(s sdktrace.ReadOnlySpan, key attribute.Key) string {
	for _, kv := range s.Attributes() {
		if kv.Key == key {
			return kv.Value.AsString()
		}
	}
	return ""
}

func TestContentSpansKeepRequestValues(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		otel.SetTracerProvider(prev)
		_ = tp.Shutdown(context.Background())
	})

	files := fstest.MapFS{
		"guides/aaaa.md":            {Data: []byte("---\ntitle: A\n---\n")},
		"guides/bbbb.md":            {Data: []byte("---\ntitle: B\n---\n")},
		"topics/zdr/pillar.md":      {Data: []byte("---\ntitle: ZDR\n---\n")},
		"topics/zdr/contracts.md":   {Data: []byte("---\ntitle: Contracts\n---\n")},
		"topics/audit/pillar.md":    {Data: []byte("---\ntitle: Audit\n---\n")},
		"topics/audit/retention.md": {Data: []byte("---\ntitle: Retention\n---\n")},
	}
	svc, err := service.NewContentService(content.NewSource(files, nil, zerolog.Nop()), nil, prometheus.NewRegistry())
	require.NoError(t, err)

	app := newTestApp()
	app.Get("/api/guides/:slug", GetGuide(svc))
	app.Get("/api/topics/:hub/:slug", GetTopicSubpage(svc))

	for _, target := range []string{
		"/api/guides/aaaa",
		"/api/guides/bbbb",
		"/api/guides/cccc",
		"/api/topics/zdr/contracts",
		"/api/topics/audit/retention",
	} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil))
		require.NoError(t, err)
		resp.Body.Close()
	}

	type lookup struct{ name, hub, slug string }
	var got []lookup
	for _, s := range recorder.Ended() {
		got = append(got, lookup{s.Name(), spanAttr(s, "content.hub"), spanAttr(s, "content.slug")})
	}
	assert.Equal(t, []lookup{
		{"content.GetGuide", "", "aaaa"},
		{"content.GetGuide", "", "bbbb"},
		{"content.GetGuide", "", "cccc"},
		{"content.GetTopicSubpage", "zdr", "contracts"},
		{"content.GetTopicSubpage", "audit", "retention"},
	}, got)
}
