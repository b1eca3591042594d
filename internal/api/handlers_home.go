package api

import (
	"github.com/gofiber/fiber/v2"
)

// ShowIndex renders the home page with a random recipe carousel and the
// count of plans.
func (handler *Handler) ShowIndex(c *fiber.Ctx) error {
	carousel, err := handler.recipeService.Carousel(handler.app.CarouselSize, handler.random)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to load recipes")
	}

	plansCount, err := handler.planService.CountPlans()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to count plans")
	}

	return handler.render(c, "index", fiber.Map{
		"Carousel":   carousel,
		"PlansCount": plansCount,
	})
}

// ShowDashboard renders the most recent plan's weekly schedule along with
// recipe and plan counts. With no plans recorded the page is a 404.
func (handler *Handler) ShowDashboard(c *fiber.Ctx) error {
	schedule, err := handler.planService.GetLatestPlanSchedule()
	if err != nil {
		return handler.notFound(c, "plan.not_found")
	}

	plansCount, err := handler.planService.CountPlans()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to count plans")
	}
	recipesCount, err := handler.recipeService.CountRecipes()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to count recipes")
	}

	return handler.render(c, "dashboard", fiber.Map{
		"Plan":         schedule.Plan,
		"Days":         schedule.Days,
		"PlansCount":   plansCount,
		"RecipesCount": recipesCount,
	})
}

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
