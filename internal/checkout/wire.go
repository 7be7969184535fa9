//go:build wireinject
// +build wireinject

package checkout

import (
	"github.com/google/wire"

	catalogdomain "github.com/bookhaven/storefront/internal/catalog/domain"
	"github.com/bookhaven/storefront/internal/checkout/delivery/http"
	"github.com/bookhaven/storefront/internal/checkout/usecase/command"
	"github.com/bookhaven/storefront/internal/checkout/usecase/query"
	sessiondomain "github.com/bookhaven/storefront/internal/session/domain"
)

// Command Handlers Providers
func ProvideOpenCheckoutHandler(sessions sessiondomain.SessionRepository) *command.OpenCheckoutHandler {
	return command.NewOpenCheckoutHandler(sessions)
}

func ProvideBuyNowHandler(sessions sessiondomain.SessionRepository, books catalogdomain.BookRepository) *command.BuyNowHandler {
	return command.NewBuyNowHandler(sessions, books)
}

func ProvideSubmitContactHandler(sessions sessiondomain.SessionRepository) *command.SubmitContactHandler {
	return command.NewSubmitContactHandler(sessions)
}

func ProvideBackToReviewHandler(sessions sessiondomain.SessionRepository) *command.BackToReviewHandler {
	return command.NewBackToReviewHandler(sessions)
}

func ProvideSubmitPaymentHandler(sessions sessiondomain.SessionRepository) *command.SubmitPaymentHandler {
	return command.NewSubmitPaymentHandler(sessions)
}

func ProvideDismissCheckoutHandler(sessions sessiondomain.SessionRepository) *command.DismissCheckoutHandler {
	return command.NewDismissCheckoutHandler(sessions)
}

// Query Handlers Providers
func ProvideGetCheckoutHandler(sessions sessiondomain.SessionRepository) *query.GetCheckoutHandler {
	return query.NewGetCheckoutHandler(sessions)
}

// CommandHandlers is a struct that holds all command handlers
type CommandHandlers struct {
	OpenHandler    *command.OpenCheckoutHandler
	BuyNowHandler  *command.BuyNowHandler
	ContactHandler *command.SubmitContactHandler
	BackHandler    *command.BackToReviewHandler
	PaymentHandler *command.SubmitPaymentHandler
	DismissHandler *command.DismissCheckoutHandler
}

// ProvideCommandHandlers provides all command handlers
func ProvideCommandHandlers(
	openHandler *command.OpenCheckoutHandler,
	buyNowHandler *command.BuyNowHandler,
	contactHandler *command.SubmitContactHandler,
	backHandler *command.BackToReviewHandler,
	paymentHandler *command.SubmitPaymentHandler,
	dismissHandler *command.DismissCheckoutHandler,
) *CommandHandlers {
	return &CommandHandlers{
		OpenHandler:    openHandler,
		BuyNowHandler:  buyNowHandler,
		ContactHandler: contactHandler,
		BackHandler:    backHandler,
		PaymentHandler: paymentHandler,
		DismissHandler: dismissHandler,
	}
}

// Wire sets
var CommandHandlerSet = wire.NewSet(
	ProvideOpenCheckoutHandler,
	ProvideBuyNowHandler,
	ProvideSubmitContactHandler,
	ProvideBackToReviewHandler,
	ProvideSubmitPaymentHandler,
	ProvideDismissCheckoutHandler,
	ProvideCommandHandlers,
)

var QueryHandlerSet = wire.NewSet(
	ProvideGetCheckoutHandler,
)

var AllHandlersSet = wire.NewSet(
	CommandHandlerSet,
	QueryHandlerSet,
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler(sessions sessiondomain.SessionRepository, books catalogdomain.BookRepository) (*http.CheckoutHandler, error) {
	wire.Build(
		AllHandlersSet,
		http.NewCheckoutHandlerWithDI,
	)
	return nil, nil
}
