package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"stereos/docs"
	"stereos/internal/config"
	"stereos/internal/content"
	"stereos/internal/database"
	"stereos/internal/database/migration"
	handlers "stereos/internal/http/handler"
	"stereos/internal/http/middleware"
	"stereos/internal/logging"
	"stereos/internal/mail"
	"stereos/internal/notify"
	"stereos/internal/ogimage"
	"stereos/internal/otel"
	"stereos/internal/repository/postgres"
	"stereos/internal/service"
	"stereos/internal/storage"
)

// @title Stereos Site API
// @version 1.0
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	log := logging.New(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize tracing")
	}

	db, err := database.ConnectWithRetry(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, log); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	objStore, err := storage.NewMinIO(cfg.MinIO)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize object storage")
	}

	ogRenderer, err := ogimage.NewRenderer()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load og image fonts")
	}

	// Outbound calls to Slack and Resend are traced.
	httpClient := &http.Client{
		Timeout:   10 * time.Second,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
	notifier := notify.NewSlack(cfg.Slack.BotToken, cfg.Slack.OwnerUserID, httpClient, log)
	mailer := mail.NewResend(cfg.Resend.APIKey, cfg.Resend.From, httpClient, log)
	if cfg.Slack.BotToken == "" {
		log.Warn().Msg("SLACK_BOT_TOKEN not set, slack connect falls back to email")
	}
	if cfg.Resend.APIKey == "" {
		log.Warn().Msg("RESEND_API_KEY not set, emails are disabled")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	src := content.NewSource(os.DirFS(cfg.Content.Dir), content.NewRenderer(), log)
	contentSvc, err := service.NewContentService(src, content.NewQualityChecker(cfg.IsDevelopment(), log), reg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to register content metrics")
	}

	svcs := handlers.Services{
		Content:      contentSvc,
		OGImage:      service.NewOGImageService(src, ogRenderer),
		SlackConnect: service.NewSlackConnectService(notifier, mailer, cfg.BaseURL, log),
		Trust: service.NewTrustService(objStore, postgres.NewTrustDownloadPostgres(db), mailer, service.TrustOptions{
			Documents:  cfg.Trust.Documents,
			LinkExpiry: time.Duration(cfg.Trust.LinkExpirySec) * time.Second,
			BaseURL:    cfg.BaseURL,
		}, log),
		Partners: service.NewPartnerService(postgres.NewPartnerPostgres(db), notifier, mailer, service.PartnerOptions{
			SlackChannelID: cfg.Slack.PartnersChannelID,
			BaseURL:        cfg.BaseURL,
		}, log),
	}

	promMiddleware, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to register http metrics")
	}

	appCfg := handlers.AppConfig()
	appCfg.DisableStartupMessage = true
	app := fiber.New(appCfg)

	app.Use(otelfiber.Middleware())
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(log))
	app.Use(promMiddleware.Handler())

	handlers.RegisterRoutes(app, db, svcs, promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	addr := ":" + cfg.Port
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("server starting")
		errCh <- app.Listen(addr)
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server stopped")
		}
	case <-ctx.Done():
		log.Info().Msg("shutting down")
	}

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("tracer shutdown")
	}
}
