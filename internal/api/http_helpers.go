package api

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

func parseIDParam(c *fiber.Ctx, name string) (uint, bool) {
	raw := c.Params(name)
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || value == 0 {
		return 0, false
	}
	return uint(value), true
}

func pageToken(c *fiber.Ctx) string {
	return c.Query("page")
}

// NotFound is the catch-all for unmatched routes.
func (handler *Handler) NotFound(c *fiber.Ctx) error {
	return handler.notFound(c, "page.not_found")
}

func (handler *Handler) notFound(c *fiber.Ctx, messageKey string) error {
	c.Status(fiber.StatusNotFound)
	return handler.render(c, "not_found", fiber.Map{
		"ErrorMessage": handler.translate(c, messageKey),
	})
}
