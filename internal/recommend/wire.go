//go:build wireinject
// +build wireinject

package recommend

import (
	"github.com/google/wire"

	catalogdomain "github.com/bookhaven/storefront/internal/catalog/domain"
	"github.com/bookhaven/storefront/internal/recommend/delivery/http"
	"github.com/bookhaven/storefront/internal/recommend/domain"
	"github.com/bookhaven/storefront/internal/recommend/usecase/command"
	sessiondomain "github.com/bookhaven/storefront/internal/session/domain"
)

// Command Handlers Providers
func ProvideRecommendBooksHandler(
	sessions sessiondomain.SessionRepository,
	books catalogdomain.BookRepository,
	source domain.Source,
) *command.RecommendBooksHandler {
	return command.NewRecommendBooksHandler(sessions, books, source)
}

func ProvideClearRecommendationsHandler(sessions sessiondomain.SessionRepository) *command.ClearRecommendationsHandler {
	return command.NewClearRecommendationsHandler(sessions)
}

// Wire sets
var CommandHandlerSet = wire.NewSet(
	ProvideRecommendBooksHandler,
	ProvideClearRecommendationsHandler,
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler(
	sessions sessiondomain.SessionRepository,
	books catalogdomain.BookRepository,
	source domain.Source,
) (*http.RecommendHandler, error) {
	wire.Build(
		CommandHandlerSet,
		http.NewRecommendHandlerWithDI,
	)
	return nil, nil
}
