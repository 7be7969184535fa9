package command

import (
	"fmt"
	"strings"

	"github.com/bookhaven/storefront/internal/session/domain"
	"github.com/bookhaven/storefront/pkg/auth"
)

// LoginUserCommand represents the command to sign a visitor in.
// The password is accepted and ignored: there is no credential check.
type LoginUserCommand struct {
	SessionID string
	Email     string
	Name      string
	Password  string
}

// LoginResponse represents the response after successful login
type LoginResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// LoginUserHandler handles user login command
type LoginUserHandler struct {
	repo domain.SessionRepository
}

// NewLoginUserHandler creates a new login user handler
func NewLoginUserHandler(repo domain.SessionRepository) *LoginUserHandler {
	return &LoginUserHandler{repo: repo}
}

// Handle executes the login command. Login succeeds whenever both email
// and name are non-empty.
func (h *LoginUserHandler) Handle(cmd LoginUserCommand) (*LoginResponse, error) {
	email := strings.TrimSpace(cmd.Email)
	name := strings.TrimSpace(cmd.Name)
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}

	session, err := h.repo.FindByID(cmd.SessionID)
	if err != nil {
		return nil, err
	}

	token, err := auth.GenerateToken(email, name)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	user := domain.User{Email: email, Name: name}
	session.SetUser(user, token)
	session.UpdateView(func(v domain.ViewState) domain.ViewState {
		return v.WithLogin(false)
	})

	return &LoginResponse{Token: token, User: &user}, nil
}
