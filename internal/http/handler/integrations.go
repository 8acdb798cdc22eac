package handler

import (
	"bytes"
	"errors"

	"github.com/gofiber/fiber/v2"

	"stereos/internal/model"
	"stereos/internal/service"
)

// SlackConnect opens a shared Slack channel with the requester's company.
// Integration failures never fail the request; the body reports what succeeded.
//
//	@Summary	Request a Slack Connect channel
//	@Tags		integrations
//	@Accept		json
//	@Produce	json
//	@Param		request	body		model.SlackConnectRequest	true	"requester"
//	@Success	202		{object}	model.SlackConnectResult
//	@Failure	400		{object}	errorPayload
//	@Router		/api/slack-connect [post]
func SlackConnect(svc service.SlackConnectService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req model.SlackConnectRequest
		if ok, err := bindJSON(c, &req); !ok {
			return err
		}
		res, err := svc.Connect(c.UserContext(), req)
		if err != nil {
			return internalError(c)
		}
		return c.Status(fiber.StatusAccepted).JSON(res)
	}
}

// TopicOGImage renders the Open Graph card for a topic page.
//
//	@Summary	Topic Open Graph image
//	@Tags		integrations
//	@Produce	png
//	@Param		title		query	string	false	"card title"
//	@Param		subtitle	query	string	false	"card subtitle"
//	@Param		hub			query	string	false	"topic hub slug"
//	@Success	200
//	@Router		/api/og/topics [get]
func TopicOGImage(svc service.OGImageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var buf bytes.Buffer
		err := svc.RenderTopicCard(c.UserContext(), &buf, service.TopicCardQuery{
			Title:    c.Query("title"),
			Subtitle: c.Query("subtitle"),
			Hub:      c.Query("hub"),
		})
		if err != nil {
			return internalError(c)
		}
		c.Set(fiber.HeaderContentType, "image/png")
		c.Set(fiber.HeaderCacheControl, "public, max-age=86400, immutable")
		return c.Send(buf.Bytes())
	}
}

// TrustDownload records a gated document request and returns a short-lived link.
//
//	@Summary	Request a trust-center document
//	@Tags		integrations
//	@Accept		json
//	@Produce	json
//	@Param		request	body		model.TrustDownload	true	"requester and document"
//	@Success	200		{object}	model.TrustDownloadLink
//	@Failure	400		{object}	errorPayload
//	@Failure	404		{object}	errorPayload
//	@Router		/api/trust/download [post]
func TrustDownload(svc service.TrustService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req model.TrustDownload
		if ok, err := bindJSON(c, &req); !ok {
			return err
		}
		link, err := svc.RequestDownload(c.UserContext(), req)
		if err != nil {
			if errors.Is(err, service.ErrDocumentNotAllowed) || errors.Is(err, service.ErrDocumentNotFound) {
				return notFound(c, "document")
			}
			return internalError(c)
		}
		return c.JSON(link)
	}
}

// PartnerApply stores a partner program application.
//
//	@Summary	Apply to the partner program
//	@Tags		integrations
//	@Accept		json
//	@Produce	json
//	@Param		request	body		model.PartnerApplication	true	"application"
//	@Success	201		{object}	model.PartnerApplication
//	@Failure	400		{object}	errorPayload
//	@Router		/api/partners/apply [post]
func PartnerApply(svc service.PartnerService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var app model.PartnerApplication
		if ok, err := bindJSON(c, &app); !ok {
			return err
		}
		stored, err := svc.Apply(c.UserContext(), app)
		if err != nil {
			return internalError(c)
		}
		return c.Status(fiber.StatusCreated).JSON(stored)
	}
}
