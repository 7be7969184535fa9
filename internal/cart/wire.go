//go:build wireinject
// +build wireinject

package cart

import (
	"github.com/google/wire"

	catalogdomain "github.com/bookhaven/storefront/internal/catalog/domain"
	"github.com/bookhaven/storefront/internal/cart/delivery/http"
	"github.com/bookhaven/storefront/internal/cart/usecase/command"
	"github.com/bookhaven/storefront/internal/cart/usecase/query"
	sessiondomain "github.com/bookhaven/storefront/internal/session/domain"
)

// Command Handlers Providers
func ProvideAddItemHandler(sessions sessiondomain.SessionRepository, books catalogdomain.BookRepository) *command.AddItemHandler {
	return command.NewAddItemHandler(sessions, books)
}

func ProvideUpdateQuantityHandler(sessions sessiondomain.SessionRepository) *command.UpdateQuantityHandler {
	return command.NewUpdateQuantityHandler(sessions)
}

func ProvideRemoveItemHandler(sessions sessiondomain.SessionRepository) *command.RemoveItemHandler {
	return command.NewRemoveItemHandler(sessions)
}

// Query Handlers Providers
func ProvideGetCartHandler(sessions sessiondomain.SessionRepository) *query.GetCartHandler {
	return query.NewGetCartHandler(sessions)
}

// CommandHandlers is a struct that holds all command handlers
type CommandHandlers struct {
	AddHandler    *command.AddItemHandler
	UpdateHandler *command.UpdateQuantityHandler
	RemoveHandler *command.RemoveItemHandler
}

// ProvideCommandHandlers provides all command handlers
func ProvideCommandHandlers(
	addHandler *command.AddItemHandler,
	updateHandler *command.UpdateQuantityHandler,
	removeHandler *command.RemoveItemHandler,
) *CommandHandlers {
	return &CommandHandlers{
		AddHandler:    addHandler,
		UpdateHandler: updateHandler,
		RemoveHandler: removeHandler,
	}
}

// Wire sets
var CommandHandlerSet = wire.NewSet(
	ProvideAddItemHandler,
	ProvideUpdateQuantityHandler,
	ProvideRemoveItemHandler,
	ProvideCommandHandlers,
)

var QueryHandlerSet = wire.NewSet(
	ProvideGetCartHandler,
)

var AllHandlersSet = wire.NewSet(
	CommandHandlerSet,
	QueryHandlerSet,
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler(sessions sessiondomain.SessionRepository, books catalogdomain.BookRepository) (*http.CartHandler, error) {
	wire.Build(
		AllHandlersSet,
		http.NewCartHandlerWithDI,
	)
	return nil, nil
}
