package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/scrumlab/jedzonko/internal/models"
)

const (
	authCookieName     = "jedzonko_auth"
	languageCookieName = "jedzonko_lang"
	contextUserKey     = "current_user"
	contextLanguageKey = "current_language"
	contextMessagesKey = "current_messages"
)

func currentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(contextUserKey).(*models.User)
	return user, ok
}

func currentLanguage(c *fiber.Ctx) string {
	language, _ := c.Locals(contextLanguageKey).(string)
	return language
}

func currentMessages(c *fiber.Ctx) map[string]string {
	messages, _ := c.Locals(contextMessagesKey).(map[string]string)
	return messages
}

// UserMiddleware attaches the authenticated user to the request context when
// a valid auth cookie is present. Every page stays reachable without one.
func (handler *Handler) UserMiddleware(c *fiber.Ctx) error {
	if user, err := handler.authenticateRequest(c); err == nil {
		c.Locals(contextUserKey, user)
	}
	return c.Next()
}
