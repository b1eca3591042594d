package api

import (
	"bytes"
	"fmt"
	"html/template"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/scrumlab/jedzonko/internal/models"
)

func parsePageTemplates(templateDir string, funcMap template.FuncMap, pages []string) (map[string]*template.Template, error) {
	templates := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		templatePath := filepath.Join(templateDir, page+".html")
		parsed, err := template.New("base").Funcs(funcMap).ParseFiles(
			filepath.Join(templateDir, "base.html"),
			templatePath,
		)
		if err != nil {
			return nil, fmt.Errorf("parse page template %s: %w", page, err)
		}
		templates[page] = parsed
	}
	return templates, nil
}

func (handler *Handler) templateFuncMap() template.FuncMap {
	return template.FuncMap{
		"t": func(messages map[string]string, key string) string {
			return translateMessage(messages, key)
		},
		"dayLabel": func(messages map[string]string, dayKey string) string {
			return translateMessage(messages, models.DayTranslationKey(dayKey))
		},
		"formatDate": func(value time.Time, layout string) string {
			if value.IsZero() {
				return ""
			}
			return value.Format(layout)
		},
	}
}

func translateMessage(messages map[string]string, key string) string {
	if value, ok := messages[key]; ok && strings.TrimSpace(value) != "" {
		return value
	}
	return key
}

func (handler *Handler) translate(c *fiber.Ctx, key string) string {
	return translateMessage(currentMessages(c), key)
}

func (handler *Handler) render(c *fiber.Ctx, name string, data fiber.Map) error {
	tmpl, ok := handler.templates[name]
	if !ok {
		return c.Status(fiber.StatusInternalServerError).SendString("template not found")
	}

	payload := handler.withTemplateDefaults(c, data)
	var output bytes.Buffer
	if err := tmpl.ExecuteTemplate(&output, "base", payload); err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to render template")
	}
	c.Type("html", "utf-8")
	return c.Send(output.Bytes())
}

func (handler *Handler) withTemplateDefaults(c *fiber.Ctx, data fiber.Map) fiber.Map {
	payload := fiber.Map{}
	for key, value := range data {
		payload[key] = value
	}

	payload["Messages"] = currentMessages(c)
	payload["Language"] = currentLanguage(c)
	payload["CSRFToken"] = csrfToken(c)
	payload["ActualDate"] = time.Now()
	if user, ok := currentUser(c); ok {
		payload["CurrentUser"] = user
	}
	return payload
}

func csrfToken(c *fiber.Ctx) string {
	token, _ := c.Locals("csrf").(string)
	return token
}
