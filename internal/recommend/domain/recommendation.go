package domain

import (
	"context"
	"encoding/json"
	"fmt"

	catalogdomain "github.com/bookhaven/storefront/internal/catalog/domain"
)

// BookDraft is one AI-suggested record after validation. It has no id
// and no cover yet; those are assigned locally.
type BookDraft struct {
	Title       string
	Author      string
	Price       float64
	Description string
	Category    string
	Rating      float64
}

// draftWire mirrors the response schema with pointer fields so a missing
// required field is distinguishable from a zero value.
type draftWire struct {
	Title       *string  `json:"title"`
	Author      *string  `json:"author"`
	Price       *float64 `json:"price"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	Rating      *float64 `json:"rating"`
}

// DecodeDrafts decodes and validates the external payload. Validation is
// strict: a payload that is not a JSON array, or any record with a
// missing or mis-typed required field, fails the whole call.
func DecodeDrafts(data []byte) ([]BookDraft, error) {
	var wire []draftWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("recommendation payload is not a valid array: %w", err)
	}

	drafts := make([]BookDraft, 0, len(wire))
	for i, w := range wire {
		switch {
		case w.Title == nil:
			return nil, fmt.Errorf("record %d: missing title", i)
		case w.Author == nil:
			return nil, fmt.Errorf("record %d: missing author", i)
		case w.Price == nil:
			return nil, fmt.Errorf("record %d: missing price", i)
		case w.Description == nil:
			return nil, fmt.Errorf("record %d: missing description", i)
		case w.Category == nil:
			return nil, fmt.Errorf("record %d: missing category", i)
		case w.Rating == nil:
			return nil, fmt.Errorf("record %d: missing rating", i)
		}
		drafts = append(drafts, BookDraft{
			Title:       *w.Title,
			Author:      *w.Author,
			Price:       *w.Price,
			Description: *w.Description,
			Category:    *w.Category,
			Rating:      *w.Rating,
		})
	}
	return drafts, nil
}

// Source produces book drafts for a natural-language query. The current
// catalog is passed along but the remote model is free to invent items
// outside it.
type Source interface {
	Recommend(ctx context.Context, query string, catalog []catalogdomain.Book) ([]BookDraft, error)
}
