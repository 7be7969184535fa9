//go:build wireinject
// +build wireinject

package catalog

import (
	"github.com/google/wire"

	"github.com/bookhaven/storefront/internal/catalog/delivery/http"
	"github.com/bookhaven/storefront/internal/catalog/domain"
	"github.com/bookhaven/storefront/internal/catalog/repository"
	"github.com/bookhaven/storefront/internal/catalog/usecase/query"
	sessiondomain "github.com/bookhaven/storefront/internal/session/domain"
)

// ProvideBookRepository provides the in-memory book repository
func ProvideBookRepository() domain.BookRepository {
	return repository.NewMemoryBookRepository()
}

// Query Handlers Providers
func ProvideSearchBooksHandler(repo domain.BookRepository) *query.SearchBooksHandler {
	return query.NewSearchBooksHandler(repo)
}

func ProvideGetBookHandler(repo domain.BookRepository) *query.GetBookHandler {
	return query.NewGetBookHandler(repo)
}

func ProvideGetSampleHandler(repo domain.BookRepository) *query.GetSampleHandler {
	return query.NewGetSampleHandler(repo)
}

func ProvideGetStatsHandler(repo domain.BookRepository) *query.GetStatsHandler {
	return query.NewGetStatsHandler(repo)
}

// QueryHandlers is a struct that holds all query handlers
type QueryHandlers struct {
	SearchHandler *query.SearchBooksHandler
	GetHandler    *query.GetBookHandler
	SampleHandler *query.GetSampleHandler
	StatsHandler  *query.GetStatsHandler
}

// ProvideQueryHandlers provides all query handlers
func ProvideQueryHandlers(
	searchHandler *query.SearchBooksHandler,
	getHandler *query.GetBookHandler,
	sampleHandler *query.GetSampleHandler,
	statsHandler *query.GetStatsHandler,
) *QueryHandlers {
	return &QueryHandlers{
		SearchHandler: searchHandler,
		GetHandler:    getHandler,
		SampleHandler: sampleHandler,
		StatsHandler:  statsHandler,
	}
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideBookRepository,
)

var QueryHandlerSet = wire.NewSet(
	ProvideSearchBooksHandler,
	ProvideGetBookHandler,
	ProvideGetSampleHandler,
	ProvideGetStatsHandler,
	ProvideQueryHandlers,
)

var AllHandlersSet = wire.NewSet(
	RepositorySet,
	QueryHandlerSet,
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler(sessions sessiondomain.SessionRepository) (*http.CatalogHandler, error) {
	wire.Build(
		AllHandlersSet,
		http.NewCatalogHandlerWithDI,
	)
	return nil, nil
}
