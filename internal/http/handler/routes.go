package handler

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"stereos/internal/service"
)

// Services bundles what RegisterRoutes wires into handlers.
type Services struct {
	Content      service.ContentService
	OGImage      service.OGImageService
	SlackConnect service.SlackConnectService
	Trust        service.TrustService
	Partners     service.PartnerService
}

// AppConfig is the fiber configuration the API runs with. Immutable makes params,
// headers and query values safe to keep after the handler returns, since span
// attributes and logs outlive fasthttp's request buffers.
func AppConfig() fiber.Config {
	return fiber.Config{
		ErrorHandler: ErrorHandler(),
		BodyLimit:    1 << 20,
		Immutable:    true,
	}
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// metrics serves /metrics; pass nil to leave it unmounted.
func RegisterRoutes(app *fiber.App, db Pinger, svc Services, metrics http.Handler) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())
	if metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(metrics))
	}

	api := app.Group("/api")

	api.Get("/guides", ListGuides(svc.Content))
	api.Get("/guides/:slug", GetGuide(svc.Content))
	api.Get("/guides/:slug/related", RelatedGuides(svc.Content))

	api.Get("/industries", ListIndustryGuides(svc.Content))
	api.Get("/industries/:slug", GetIndustryGuide(svc.Content))
	api.Get("/industries/:slug/related", RelatedIndustryGuides(svc.Content))

	api.Get("/topics", ListTopicHubs(svc.Content))
	api.Get("/topics/:hub", GetTopicHub(svc.Content))
	api.Get("/topics/:hub/:slug", GetTopicSubpage(svc.Content))
	api.Get("/topics/:hub/:slug/related", RelatedTopicSubpages(svc.Content))

	api.Get("/og/topics", TopicOGImage(svc.OGImage))
	api.Post("/slack-connect", SlackConnect(svc.SlackConnect))
	api.Post("/trust/download", TrustDownload(svc.Trust))
	api.Post("/partners/apply", PartnerApply(svc.Partners))
}
