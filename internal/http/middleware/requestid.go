package middleware

import (
	"regexp"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	// RequestIDHeader carries the request ID in both directions.
	RequestIDHeader = "X-Request-ID"
	// RequestIDLocalKey is where RequestID stores the ID in fiber locals.
	RequestIDLocalKey = "request_id"
)

// Incoming IDs end up in logs and error bodies, so only short opaque tokens are trusted.
var requestIDPattern = regexp.MustCompile(`^[A-Za-z0-9._:-]{1,64}$`)

// RequestID reuses a well-formed X-Request-ID from the caller (the Next.js edge
// sets one) or generates a UUID. The ID is echoed on the response, stored in
// locals and tagged on the active span.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		// c.Get aliases the request buffer; the ID outlives it in locals and on the span.
		id := utils.CopyString(c.Get(RequestIDHeader))
		if !requestIDPattern.MatchString(id) {
			id = uuid.NewString()
		}

		c.Locals(RequestIDLocalKey, id)
		c.Set(RequestIDHeader, id)
		trace.SpanFromContext(c.UserContext()).SetAttributes(attribute.String("request.id", id))

		return c.Next()
	}
}

// GetRequestID returns the ID stored by RequestID, or "" when the middleware did not run.
func GetRequestID(c *fiber.Ctx) string {
	id, _ := c.Locals(RequestIDLocalKey).(string)
	return id
}
