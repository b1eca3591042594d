package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/scrumlab/jedzonko/internal/services"
)

func (handler *Handler) ShowLoginPage(c *fiber.Ctx) error {
	return handler.render(c, "login", fiber.Map{})
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	username := c.FormValue("username")
	password := c.FormValue("password")

	user, err := handler.authService.Authenticate(username, password)
	if err != nil {
		messageKey := "auth.invalid_credentials"
		if errors.Is(err, services.ErrMissingCredentials) {
			messageKey = "auth.fields_required"
		}
		return handler.render(c, "login", fiber.Map{
			"ErrorMessage": handler.translate(c, messageKey),
			"Username":     username,
		})
	}

	if err := handler.setAuthCookie(c, &user); err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to create session")
	}
	return c.Redirect("/main", fiber.StatusSeeOther)
}

func (handler *Handler) ShowRegisterPage(c *fiber.Ctx) error {
	return handler.render(c, "register", fiber.Map{})
}

func (handler *Handler) Register(c *fiber.Ctx) error {
	username := c.FormValue("username")
	password := c.FormValue("password")

	user, err := handler.authService.RegisterUser(username, password, time.Now())
	if err != nil {
		messageKey := "auth.fields_required"
		if errors.Is(err, services.ErrUsernameTaken) {
			messageKey = "auth.username_taken"
		}
		return handler.render(c, "register", fiber.Map{
			"ErrorMessage": handler.translate(c, messageKey),
			"Username":     username,
		})
	}

	if err := handler.setAuthCookie(c, &user); err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to create session")
	}
	return c.Redirect("/main", fiber.StatusSeeOther)
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	return c.Redirect("/", fiber.StatusSeeOther)
}
