package query

import (
	"fmt"

	"github.com/bookhaven/storefront/internal/catalog/domain"
)

// SamplePageCount is the fixed length of every book sample
const SamplePageCount = 10

// GetSampleQuery represents the query to fetch a sample-reader page
type GetSampleQuery struct {
	BookID string
	Page   int
}

// SamplePage is one page of a book sample. Content is derived entirely
// from the book record and the page number, so a page renders the same
// on every read.
type SamplePage struct {
	BookID     string   `json:"bookId"`
	Page       int      `json:"page"`
	TotalPages int      `json:"totalPages"`
	Heading    string   `json:"heading,omitempty"`
	Paragraphs []string `json:"paragraphs"`
}

// GetSampleHandler handles sample page queries
type GetSampleHandler struct {
	repo domain.BookRepository
}

// NewGetSampleHandler creates a new get sample handler
func NewGetSampleHandler(repo domain.BookRepository) *GetSampleHandler {
	return &GetSampleHandler{repo: repo}
}

// Handle executes the sample page query
func (h *GetSampleHandler) Handle(q GetSampleQuery) (*SamplePage, error) {
	if q.Page < 1 || q.Page > SamplePageCount {
		return nil, fmt.Errorf("page must be between 1 and %d", SamplePageCount)
	}

	book, err := h.repo.FindByID(q.BookID)
	if err != nil {
		return nil, err
	}

	page := &SamplePage{
		BookID:     book.ID,
		Page:       q.Page,
		TotalPages: SamplePageCount,
	}

	if q.Page == 1 {
		page.Heading = fmt.Sprintf("%s, by %s", book.Title, book.Author)
		page.Paragraphs = []string{
			"Chapter One",
			fmt.Sprintf("The beginning was not as anyone expected. It started with a whisper, a subtle shift in the wind that few noticed until it was too late. %s This was the moment everything changed for the inhabitants of the known world.", book.Description),
		}
		return page, nil
	}

	page.Paragraphs = []string{
		fmt.Sprintf("Page %d continues the journey. The sun hung low in the sky, casting long shadows across the landscape. %s's distinctive voice echoes through the narrative, weaving a tapestry of complex emotions and vivid imagery. As the story unfolds, the stakes become higher.", q.Page, book.Author),
		"\"I never thought it would come to this,\" a voice said from the shadows. The air was thick with tension, heavy with the scent of rain and old parchment. It was a time of great uncertainty, yet within the chaos, a small seed of hope began to sprout.",
		fmt.Sprintf("Paragraphs of text fill the page, drawing the reader deeper into the world of %s. The characters face challenges that test their resolve, their loyalty, and their very understanding of reality.", book.Title),
	}
	return page, nil
}
