package services

import (
	"errors"
	"strings"

	"github.com/scrumlab/jedzonko/internal/models"
)

var (
	ErrPageNotFound   = errors.New("page not found")
	ErrPageIncomplete = errors.New("page requires a title and description")
)

type PageRepository interface {
	Create(page *models.Page) error
	FindBySlug(slug string) (models.Page, bool, error)
}

type PageService struct {
	pages PageRepository
}

func NewPageService(pages PageRepository) *PageService {
	return &PageService{pages: pages}
}

// SavePage derives the slug from the title when none is supplied, then
// persists the page. A slug collision fails on the unique index.
func (service *PageService) SavePage(page *models.Page) error {
	page.Title = strings.TrimSpace(page.Title)
	page.Description = strings.TrimSpace(page.Description)
	if page.Title == "" || page.Description == "" {
		return ErrPageIncomplete
	}

	if strings.TrimSpace(page.Slug) == "" {
		page.Slug = Slugify(page.Title)
	}
	return service.pages.Create(page)
}

func (service *PageService) FetchPageBySlug(slug string) (models.Page, error) {
	page, found, err := service.pages.FindBySlug(slug)
	if err != nil {
		return models.Page{}, err
	}
	if !found {
		return models.Page{}, ErrPageNotFound
	}
	return page, nil
}

var polishTransliterations = map[rune]rune{
	'ą': 'a', 'ć': 'c', 'ę': 'e', 'ł': 'l', 'ń': 'n',
	'ó': 'o', 'ś': 's', 'ż': 'z', 'ź': 'z',
}

// Slugify lowercases the title, transliterates Polish diacritics to ASCII,
// and joins the remaining alphanumeric runs with single hyphens.
func Slugify(title string) string {
	var builder strings.Builder
	lastWasHyphen := true

	for _, char := range strings.ToLower(strings.TrimSpace(title)) {
		if replacement, ok := polishTransliterations[char]; ok {
			char = replacement
		}

		isAlphanumeric := (char >= 'a' && char <= 'z') || (char >= '0' && char <= '9')
		if isAlphanumeric {
			builder.WriteRune(char)
			lastWasHyphen = false
			continue
		}
		if !lastWasHyphen {
			builder.WriteByte('-')
			lastWasHyphen = true
		}
	}

	return strings.Trim(builder.String(), "-")
}
