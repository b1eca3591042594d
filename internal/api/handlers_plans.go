package api

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/scrumlab/jedzonko/internal/services"
)

func (handler *Handler) ShowPlanList(c *fiber.Ctx) error {
	plans, pagination, err := handler.planService.AlphabeticalPage(pageToken(c), handler.app.PlanPageSize)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to load plans")
	}

	return handler.render(c, "plans", fiber.Map{
		"Plans":      plans,
		"Pagination": pagination,
	})
}

func (handler *Handler) ShowAddPlanForm(c *fiber.Ctx) error {
	return handler.render(c, "plan_add", fiber.Map{})
}

func (handler *Handler) AddPlan(c *fiber.Ctx) error {
	name := c.FormValue("name")
	description := c.FormValue("description")

	if messageKey := services.ValidatePlanForm(name, description); messageKey != "" {
		return handler.render(c, "plan_add", fiber.Map{
			"ErrorMessage": handler.translate(c, messageKey),
			"Name":         name,
			"Description":  description,
		})
	}

	plan, err := handler.planService.CreatePlan(name, description, time.Now())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to save plan")
	}

	return c.Redirect(fmt.Sprintf("/plan/%d", plan.ID), fiber.StatusSeeOther)
}

func (handler *Handler) ShowAddRecipeToPlanForm(c *fiber.Ctx) error {
	return handler.renderAddRecipeToPlanForm(c, "")
}

// AddRecipeToPlan assigns a recipe to a plan's day and meal slot. Form field
// names follow the original markup, including the "recipie" spelling.
func (handler *Handler) AddRecipeToPlan(c *fiber.Ctx) error {
	recipeID, recipeErr := strconv.ParseUint(c.FormValue("recipie"), 10, 32)
	planID, planErr := strconv.ParseUint(c.FormValue("choosePlan"), 10, 32)
	mealOrder, orderErr := strconv.Atoi(c.FormValue("number"))
	mealName := c.FormValue("name")
	dayKey := c.FormValue("day")

	if recipeErr != nil || planErr != nil || orderErr != nil {
		return handler.renderAddRecipeToPlanForm(c, handler.translate(c, "recipe.form.invalid"))
	}

	_, err := handler.planService.AddRecipeToPlan(uint(planID), uint(recipeID), mealName, mealOrder, dayKey)
	switch {
	case errors.Is(err, services.ErrPlanNotFound):
		return handler.notFound(c, "plan.not_found")
	case errors.Is(err, services.ErrRecipeNotFound):
		return handler.notFound(c, "recipe.not_found")
	case errors.Is(err, services.ErrInvalidDay), errors.Is(err, services.ErrEmptyMealName):
		return handler.renderAddRecipeToPlanForm(c, handler.translate(c, "recipe.form.invalid"))
	case err != nil:
		return c.Status(fiber.StatusInternalServerError).SendString("failed to save assignment")
	}

	return c.Redirect(fmt.Sprintf("/plan/%d", planID), fiber.StatusSeeOther)
}

func (handler *Handler) ShowPlanDetail(c *fiber.Ctx) error {
	planID, ok := parseIDParam(c, "id")
	if !ok {
		return handler.notFound(c, "plan.not_found")
	}

	schedule, err := handler.planService.GetWeeklySchedule(planID)
	if err != nil {
		return handler.notFound(c, "plan.not_found")
	}

	return handler.render(c, "plan_detail", fiber.Map{
		"Plan": schedule.Plan,
		"Days": schedule.Days,
	})
}

func (handler *Handler) renderAddRecipeToPlanForm(c *fiber.Ctx, errorMessage string) error {
	plans, err := handler.planService.ListAllPlans()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to load plans")
	}
	recipes, err := handler.recipeService.ListAllRecipes()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to load recipes")
	}

	data := fiber.Map{
		"Plans":   plans,
		"Recipes": recipes,
		"DayKeys": dayKeysForTemplates(),
	}
	if errorMessage != "" {
		data["ErrorMessage"] = errorMessage
	}
	return handler.render(c, "plan_add_recipe", data)
}
