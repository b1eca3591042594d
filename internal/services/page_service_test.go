package services

import (
	"errors"
	"testing"

	"github.com/scrumlab/jedzonko/internal/models"
)

type pageRepositoryStub struct {
	pages  map[string]models.Page
	nextID uint
}

func newPageRepositoryStub() *pageRepositoryStub {
	return &pageRepositoryStub{pages: make(map[string]models.Page), nextID: 1}
}

func (stub *pageRepositoryStub) Create(page *models.Page) error {
	if _, ok := stub.pages[page.Slug]; ok {
		return errors.New("UNIQUE constraint failed: pages.slug")
	}
	if page.ID == 0 {
		page.ID = stub.nextID
		stub.nextID++
	}
	stub.pages[page.Slug] = *page
	return nil
}

func (stub *pageRepositoryStub) FindBySlug(slug string) (models.Page, bool, error) {
	page, ok := stub.pages[slug]
	return page, ok, nil
}

func TestSlugify(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{title: "About Us", want: "about-us"},
		{title: "  Contact  ", want: "contact"},
		{title: "Żółta łódź podwodna", want: "zolta-lodz-podwodna"},
		{title: "Część pierwsza: wstęp", want: "czesc-pierwsza-wstep"},
		{title: "Hello, World!", want: "hello-world"},
		{title: "plan   na   2021", want: "plan-na-2021"},
		{title: "---", want: ""},
	}
	for _, testCase := range cases {
		if got := Slugify(testCase.title); got != testCase.want {
			t.Errorf("Slugify(%q) = %q, want %q", testCase.title, got, testCase.want)
		}
	}
}

func TestSavePageDerivesSlugFromTitle(t *testing.T) {
	repo := newPageRepositoryStub()
	service := NewPageService(repo)

	page := models.Page{Title: "O nas", Description: "Kim jesteśmy"}
	if err := service.SavePage(&page); err != nil {
		t.Fatalf("SavePage() unexpected error: %v", err)
	}
	if page.Slug != "o-nas" {
		t.Fatalf("Slug = %q, want %q", page.Slug, "o-nas")
	}
}

func TestSavePageKeepsExplicitSlug(t *testing.T) {
	repo := newPageRepositoryStub()
	service := NewPageService(repo)

	page := models.Page{Title: "O nas", Description: "Kim jesteśmy", Slug: "about"}
	if err := service.SavePage(&page); err != nil {
		t.Fatalf("SavePage() unexpected error: %v", err)
	}
	if page.Slug != "about" {
		t.Fatalf("Slug = %q, want %q", page.Slug, "about")
	}
}

func TestSavePageRejectsIncompleteInput(t *testing.T) {
	service := NewPageService(newPageRepositoryStub())

	for _, page := range []models.Page{
		{Title: "", Description: "text"},
		{Title: "Title", Description: "  "},
	} {
		if err := service.SavePage(&page); !errors.Is(err, ErrPageIncomplete) {
			t.Errorf("SavePage(%+v): expected ErrPageIncomplete, got %v", page, err)
		}
	}
}

func TestFetchPageBySlug(t *testing.T) {
	repo := newPageRepositoryStub()
	repo.pages["about"] = models.Page{ID: 1, Title: "About", Slug: "about"}
	service := NewPageService(repo)

	page, err := service.FetchPageBySlug("about")
	if err != nil {
		t.Fatalf("FetchPageBySlug() unexpected error: %v", err)
	}
	if page.Title != "About" {
		t.Fatalf("Title = %q, want %q", page.Title, "About")
	}

	if _, err := service.FetchPageBySlug("missing"); !errors.Is(err, ErrPageNotFound) {
		t.Fatalf("expected ErrPageNotFound, got %v", err)
	}
}
