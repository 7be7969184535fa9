package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/bookhaven/storefront/internal/catalog/domain"
)

var tracer = otel.Tracer("catalog-repository")

// MemoryBookRepositoryWithTracing wraps MemoryBookRepository with tracing
type MemoryBookRepositoryWithTracing struct {
	*MemoryBookRepository
}

// NewMemoryBookRepositoryWithTracing creates a new repository with tracing
func NewMemoryBookRepositoryWithTracing() *MemoryBookRepositoryWithTracing {
	return &MemoryBookRepositoryWithTracing{
		MemoryBookRepository: NewMemoryBookRepository(),
	}
}

// FindByID with tracing
func (r *MemoryBookRepositoryWithTracing) FindByIDWithContext(ctx context.Context, id string) (*domain.Book, error) {
	_, span := tracer.Start(ctx, "repository.FindByID",
		trace.WithAttributes(
			attribute.String("book.id", id),
		),
	)
	defer span.End()

	book, err := r.MemoryBookRepository.FindByID(id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.String("book.title", book.Title),
		attribute.String("book.category", book.Category),
	)
	return book, nil
}

// Search with tracing
func (r *MemoryBookRepositoryWithTracing) SearchWithContext(ctx context.Context, query string) ([]domain.Book, error) {
	_, span := tracer.Start(ctx, "repository.Search",
		trace.WithAttributes(
			attribute.String("catalog.query", query),
		),
	)
	defer span.End()

	books, err := r.MemoryBookRepository.Search(query)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("catalog.matches", len(books)))
	return books, nil
}

// FindAll with tracing
func (r *MemoryBookRepositoryWithTracing) FindAllWithContext(ctx context.Context, limit, offset int) ([]domain.Book, error) {
	_, span := tracer.Start(ctx, "repository.FindAll",
		trace.WithAttributes(
			attribute.Int("catalog.limit", limit),
			attribute.Int("catalog.offset", offset),
		),
	)
	defer span.End()

	books, err := r.MemoryBookRepository.FindAll(limit, offset)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("catalog.returned", len(books)))
	return books, nil
}
