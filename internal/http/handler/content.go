package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"stereos/internal/service"
)

// listResponse wraps collection responses.
type listResponse[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

func newListResponse[T any](items []T) listResponse[T] {
	if items == nil {
		items = []T{}
	}
	return listResponse[T]{Data: items, Total: len(items)}
}

// respond writes v as JSON, or the error envelope for err.
func respond(c *fiber.Ctx, what string, v any, err error) error {
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return notFound(c, what)
		}
		return internalError(c)
	}
	return c.JSON(v)
}

// ListGuides lists guides, newest first. With ?topic=<hub> only that hub's guides are returned.
//
//	@Summary	List guides
//	@Tags		guides
//	@Produce	json
//	@Param		topic	query		string	false	"topic hub slug"
//	@Success	200		{object}	listResponse[model.GuideSummary]
//	@Router		/api/guides [get]
func ListGuides(svc service.ContentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if topic := c.Query("topic"); topic != "" {
			items, err := svc.GuidesByTopic(c.UserContext(), topic)
			return respond(c, "guides", newListResponse(items), err)
		}
		items, err := svc.ListGuides(c.UserContext())
		return respond(c, "guides", newListResponse(items), err)
	}
}

// GetGuide returns one rendered guide.
//
//	@Summary	Get guide
//	@Tags		guides
//	@Produce	json
//	@Param		slug	path		string	true	"guide slug"
//	@Success	200		{object}	model.Guide
//	@Failure	404		{object}	errorPayload
//	@Router		/api/guides/{slug} [get]
func GetGuide(svc service.ContentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		g, err := svc.GetGuide(c.UserContext(), c.Params("slug"))
		return respond(c, "guide", g, err)
	}
}

// RelatedGuides returns the guides linked to or from a guide.
//
//	@Summary	Related guides
//	@Tags		guides
//	@Produce	json
//	@Param		slug	path		string	true	"guide slug"
//	@Success	200		{object}	listResponse[model.GuideSummary]
//	@Failure	404		{object}	errorPayload
//	@Router		/api/guides/{slug}/related [get]
func RelatedGuides(svc service.ContentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.RelatedGuides(c.UserContext(), c.Params("slug"))
		return respond(c, "guide", newListResponse(items), err)
	}
}

// ListIndustryGuides lists industry guides, newest first.
//
//	@Summary	List industry guides
//	@Tags		industries
//	@Produce	json
//	@Success	200	{object}	listResponse[model.IndustryGuideSummary]
//	@Router		/api/industries [get]
func ListIndustryGuides(svc service.ContentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.ListIndustryGuides(c.UserContext())
		return respond(c, "industry guides", newListResponse(items), err)
	}
}

// GetIndustryGuide returns one industry guide with its rendered sections.
//
//	@Summary	Get industry guide
//	@Tags		industries
//	@Produce	json
//	@Param		slug	path		string	true	"industry slug"
//	@Success	200		{object}	model.IndustryGuide
//	@Failure	404		{object}	errorPayload
//	@Router		/api/industries/{slug} [get]
func GetIndustryGuide(svc service.ContentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		g, err := svc.GetIndustryGuide(c.UserContext(), c.Params("slug"))
		return respond(c, "industry guide", g, err)
	}
}

// RelatedIndustryGuides returns the industry guides linked to or from one guide.
//
//	@Summary	Related industry guides
//	@Tags		industries
//	@Produce	json
//	@Param		slug	path		string	true	"industry slug"
//	@Success	200		{object}	listResponse[model.IndustryGuideSummary]
//	@Failure	404		{object}	errorPayload
//	@Router		/api/industries/{slug}/related [get]
func RelatedIndustryGuides(svc service.ContentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.RelatedIndustryGuides(c.UserContext(), c.Params("slug"))
		return respond(c, "industry guide", newListResponse(items), err)
	}
}

// ListTopicHubs lists every hub with a readable pillar page.
//
//	@Summary	List topic hubs
//	@Tags		topics
//	@Produce	json
//	@Success	200	{object}	listResponse[model.TopicHubSummary]
//	@Router		/api/topics [get]
func ListTopicHubs(svc service.ContentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.ListTopicHubs(c.UserContext())
		return respond(c, "topic hubs", newListResponse(items), err)
	}
}

// GetTopicHub returns a hub's pillar page and its subpages.
//
//	@Summary	Get topic hub
//	@Tags		topics
//	@Produce	json
//	@Param		hub	path		string	true	"hub slug"
//	@Success	200	{object}	model.TopicHub
//	@Failure	404	{object}	errorPayload
//	@Router		/api/topics/{hub} [get]
func GetTopicHub(svc service.ContentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		h, err := svc.GetTopicHub(c.UserContext(), c.Params("hub"))
		return respond(c, "topic hub", h, err)
	}
}

// GetTopicSubpage returns one subpage of a hub.
//
//	@Summary	Get topic subpage
//	@Tags		topics
//	@Produce	json
//	@Param		hub		path		string	true	"hub slug"
//	@Param		slug	path		string	true	"subpage slug"
//	@Success	200		{object}	model.TopicSubpage
//	@Failure	404		{object}	errorPayload
//	@Router		/api/topics/{hub}/{slug} [get]
func GetTopicSubpage(svc service.ContentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := svc.GetTopicSubpage(c.UserContext(), c.Params("hub"), c.Params("slug"))
		return respond(c, "topic page", p, err)
	}
}

// RelatedTopicSubpages returns the subpages of the same hub linked to or from one subpage.
//
//	@Summary	Related topic subpages
//	@Tags		topics
//	@Produce	json
//	@Param		hub		path		string	true	"hub slug"
//	@Param		slug	path		string	true	"subpage slug"
//	@Success	200		{object}	listResponse[model.TopicSubpageSummary]
//	@Failure	404		{object}	errorPayload
//	@Router		/api/topics/{hub}/{slug}/related [get]
func RelatedTopicSubpages(svc service.ContentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.RelatedTopicSubpages(c.UserContext(), c.Params("hub"), c.Params("slug"))
		return respond(c, "topic page", newListResponse(items), err)
	}
}
