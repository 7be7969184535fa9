//go:build wireinject
// +build wireinject

package session

import (
	"github.com/google/wire"

	checkoutdomain "github.com/bookhaven/storefront/internal/checkout/domain"
	"github.com/bookhaven/storefront/internal/session/delivery/http"
	"github.com/bookhaven/storefront/internal/session/domain"
	"github.com/bookhaven/storefront/internal/session/repository"
	"github.com/bookhaven/storefront/internal/session/usecase/command"
	"github.com/bookhaven/storefront/internal/session/usecase/query"
)

// ProvideSessionRepository provides the in-memory session repository
func ProvideSessionRepository() domain.SessionRepository {
	return repository.NewMemorySessionRepository()
}

// ProvideScheduler provides the wall-clock scheduler for checkout timers
func ProvideScheduler() checkoutdomain.Scheduler {
	return checkoutdomain.NewScheduler()
}

// Command Handlers Providers
func ProvideOpenSessionHandler(repo domain.SessionRepository, sched checkoutdomain.Scheduler) *command.OpenSessionHandler {
	return command.NewOpenSessionHandler(repo, sched)
}

func ProvideLoginUserHandler(repo domain.SessionRepository) *command.LoginUserHandler {
	return command.NewLoginUserHandler(repo)
}

func ProvideLogoutUserHandler(repo domain.SessionRepository) *command.LogoutUserHandler {
	return command.NewLogoutUserHandler(repo)
}

func ProvideUpdateViewHandler(repo domain.SessionRepository) *command.UpdateViewHandler {
	return command.NewUpdateViewHandler(repo)
}

// Query Handlers Providers
func ProvideGetSessionHandler(repo domain.SessionRepository) *query.GetSessionHandler {
	return query.NewGetSessionHandler(repo)
}

// CommandHandlers is a struct that holds all command handlers
type CommandHandlers struct {
	OpenHandler   *command.OpenSessionHandler
	LoginHandler  *command.LoginUserHandler
	LogoutHandler *command.LogoutUserHandler
	ViewHandler   *command.UpdateViewHandler
}

// ProvideCommandHandlers provides all command handlers
func ProvideCommandHandlers(
	openHandler *command.OpenSessionHandler,
	loginHandler *command.LoginUserHandler,
	logoutHandler *command.LogoutUserHandler,
	viewHandler *command.UpdateViewHandler,
) *CommandHandlers {
	return &CommandHandlers{
		OpenHandler:   openHandler,
		LoginHandler:  loginHandler,
		LogoutHandler: logoutHandler,
		ViewHandler:   viewHandler,
	}
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideSessionRepository,
	ProvideScheduler,
)

var CommandHandlerSet = wire.NewSet(
	ProvideOpenSessionHandler,
	ProvideLoginUserHandler,
	ProvideLogoutUserHandler,
	ProvideUpdateViewHandler,
	ProvideCommandHandlers,
)

var QueryHandlerSet = wire.NewSet(
	ProvideGetSessionHandler,
)

var AllHandlersSet = wire.NewSet(
	RepositorySet,
	CommandHandlerSet,
	QueryHandlerSet,
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler() (*http.SessionHandler, error) {
	wire.Build(
		AllHandlersSet,
		http.NewSessionHandlerWithDI,
	)
	return nil, nil
}
