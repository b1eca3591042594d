package api

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/scrumlab/jedzonko/internal/services"
)

func (handler *Handler) ShowRecipeList(c *fiber.Ctx) error {
	recipes, pagination, err := handler.recipeService.RankedPage(pageToken(c), handler.app.RecipePageSize)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to load recipes")
	}

	return handler.render(c, "recipes", fiber.Map{
		"Recipes":    recipes,
		"Pagination": pagination,
	})
}

func (handler *Handler) ShowAddRecipeForm(c *fiber.Ctx) error {
	return handler.render(c, "recipe_add", fiber.Map{})
}

func (handler *Handler) AddRecipe(c *fiber.Ctx) error {
	form := recipeFormFromRequest(c)

	if _, err := handler.recipeService.CreateRecipe(form, time.Now()); err != nil {
		if errors.Is(err, services.ErrRecipeFormInvalid) {
			return handler.render(c, "recipe_add", fiber.Map{
				"ErrorMessage": handler.translate(c, "recipe.form.invalid"),
				"Form":         form,
			})
		}
		return c.Status(fiber.StatusInternalServerError).SendString("failed to save recipe")
	}

	return c.Redirect("/recipe/list", fiber.StatusSeeOther)
}

func (handler *Handler) ShowRecipeDetail(c *fiber.Ctx) error {
	recipeID, ok := parseIDParam(c, "id")
	if !ok {
		return handler.notFound(c, "recipe.not_found")
	}

	recipe, err := handler.recipeService.FetchRecipe(recipeID)
	if err != nil {
		return handler.notFound(c, "recipe.not_found")
	}

	return handler.render(c, "recipe_detail", fiber.Map{"Recipe": recipe})
}

// VoteOnRecipe applies the submitted vote delta and re-renders the detail
// page with the updated score.
func (handler *Handler) VoteOnRecipe(c *fiber.Ctx) error {
	recipeID, ok := parseIDParam(c, "id")
	if !ok {
		return handler.notFound(c, "recipe.not_found")
	}

	delta, err := strconv.Atoi(c.FormValue("vote"))
	if err != nil {
		recipe, fetchErr := handler.recipeService.FetchRecipe(recipeID)
		if fetchErr != nil {
			return handler.notFound(c, "recipe.not_found")
		}
		return handler.render(c, "recipe_detail", fiber.Map{
			"Recipe":       recipe,
			"ErrorMessage": handler.translate(c, "recipe.vote.invalid"),
		})
	}

	if _, err := handler.voteService.ApplyVote(recipeID, delta); err != nil {
		return handler.notFound(c, "recipe.not_found")
	}

	recipe, err := handler.recipeService.FetchRecipe(recipeID)
	if err != nil {
		return handler.notFound(c, "recipe.not_found")
	}
	return handler.render(c, "recipe_detail", fiber.Map{"Recipe": recipe})
}

func (handler *Handler) ShowModifyRecipeForm(c *fiber.Ctx) error {
	recipeID, ok := parseIDParam(c, "id")
	if !ok {
		return handler.notFound(c, "recipe.not_found")
	}

	recipe, err := handler.recipeService.FetchRecipe(recipeID)
	if err != nil {
		return handler.notFound(c, "recipe.not_found")
	}

	return handler.render(c, "recipe_edit", fiber.Map{
		"Recipe": recipe,
		"Form": services.RecipeForm{
			Name:            recipe.Name,
			Ingredients:     recipe.Ingredients,
			Description:     recipe.Description,
			PreparationTime: strconv.Itoa(recipe.PreparationTime),
			HowToPrepare:    recipe.HowToPrepare,
		},
	})
}

func (handler *Handler) ModifyRecipe(c *fiber.Ctx) error {
	recipeID, ok := parseIDParam(c, "id")
	if !ok {
		return handler.notFound(c, "recipe.not_found")
	}

	form := recipeFormFromRequest(c)
	if err := handler.recipeService.UpdateRecipe(recipeID, form, time.Now()); err != nil {
		if errors.Is(err, services.ErrRecipeNotFound) {
			return handler.notFound(c, "recipe.not_found")
		}
		if errors.Is(err, services.ErrRecipeFormInvalid) {
			return handler.render(c, "recipe_edit", fiber.Map{
				"ErrorMessage": handler.translate(c, "recipe.form.invalid"),
				"RecipeID":     recipeID,
				"Form":         form,
			})
		}
		return c.Status(fiber.StatusInternalServerError).SendString("failed to save recipe")
	}

	return c.Redirect("/recipe/list", fiber.StatusSeeOther)
}

func recipeFormFromRequest(c *fiber.Ctx) services.RecipeForm {
	return services.RecipeForm{
		Name:            c.FormValue("recipe_name"),
		Ingredients:     c.FormValue("ingredients"),
		Description:     c.FormValue("description"),
		PreparationTime: c.FormValue("preparation_time"),
		HowToPrepare:    c.FormValue("how_to_prepare"),
	}
}
