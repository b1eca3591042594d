package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/favicon.ico", sendNoContent)
	app.Get("/lang/:lang", handler.SetLanguage)

	app.Get("/", handler.ShowIndex)
	app.Get("/main", handler.ShowDashboard)

	app.Get("/login", handler.ShowLoginPage)
	app.Post("/login", handler.Login)
	app.Get("/register", handler.ShowRegisterPage)
	app.Post("/register", handler.Register)
	app.Post("/logout", handler.Logout)

	// Fixed paths are registered before the :id parameter so /recipe/list
	// and /recipe/add never match as identifiers.
	recipe := app.Group("/recipe")
	recipe.Get("/list", handler.ShowRecipeList)
	recipe.Get("/add", handler.ShowAddRecipeForm)
	recipe.Post("/add", handler.AddRecipe)
	recipe.Get("/modify/:id", handler.ShowModifyRecipeForm)
	recipe.Post("/modify/:id", handler.ModifyRecipe)
	recipe.Get("/:id", handler.ShowRecipeDetail)
	recipe.Post("/:id", handler.VoteOnRecipe)

	plan := app.Group("/plan")
	plan.Get("/list", handler.ShowPlanList)
	plan.Get("/add", handler.ShowAddPlanForm)
	plan.Post("/add", handler.AddPlan)
	plan.Get("/add-recipe", handler.ShowAddRecipeToPlanForm)
	plan.Post("/add-recipe", handler.AddRecipeToPlan)
	plan.Get("/:id", handler.ShowPlanDetail)

	app.Get("/page/:slug", handler.ShowPage)
}

func sendNoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}
