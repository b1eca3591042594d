package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/scrumlab/jedzonko/internal/models"
)

func (handler *Handler) ShowPage(c *fiber.Ctx) error {
	page, err := handler.pageService.FetchPageBySlug(c.Params("slug"))
	if err != nil {
		return handler.notFound(c, "page.not_found")
	}
	return handler.render(c, "page", fiber.Map{"Page": page})
}

func dayKeysForTemplates() []string {
	return models.DayKeys()
}
