package command

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookhaven/storefront/internal/session/domain"
	"github.com/bookhaven/storefront/internal/session/repository"
	"github.com/bookhaven/storefront/pkg/auth"
)

type fakeScheduler struct{}

func (fakeScheduler) AfterFunc(d time.Duration, f func()) {}

func newSession(t *testing.T) (*repository.MemorySessionRepository, *domain.Session) {
	t.Helper()
	repo := repository.NewMemorySessionRepository()
	session := domain.NewSession("s1", fakeScheduler{})
	require.NoError(t, repo.Create(session))
	return repo, session
}

func TestLogin(t *testing.T) {
	repo, session := newSession(t)
	session.UpdateView(func(v domain.ViewState) domain.ViewState { return v.WithLogin(true) })

	h := NewLoginUserHandler(repo)
	resp, err := h.Handle(LoginUserCommand{
		SessionID: "s1",
		Email:     "  reader@example.com ",
		Name:      "Reader",
		Password:  "anything-goes",
	})
	require.NoError(t, err)

	assert.Equal(t, "reader@example.com", resp.User.Email)
	assert.Equal(t, "Reader", resp.User.Name)

	// The token is a real JWT carrying the typed identity
	claims, err := auth.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "reader@example.com", claims.Email)

	// Success closes the login modal and signs the session in
	assert.False(t, session.View().LoginOpen)
	require.NotNil(t, session.User())
	assert.Equal(t, "Reader", session.User().Name)
}

func TestLoginValidation(t *testing.T) {
	repo, session := newSession(t)
	h := NewLoginUserHandler(repo)

	tests := []struct {
		name  string
		email string
		user  string
	}{
		{name: "empty email", email: "", user: "Reader"},
		{name: "blank email", email: "   ", user: "Reader"},
		{name: "empty name", email: "reader@example.com", user: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := h.Handle(LoginUserCommand{SessionID: "s1", Email: tt.email, Name: tt.user})
			assert.Error(t, err)
			assert.Nil(t, session.User())
		})
	}
}

func TestLogout(t *testing.T) {
	repo, session := newSession(t)
	session.SetUser(domain.User{Email: "reader@example.com", Name: "Reader"}, "tok")

	h := NewLogoutUserHandler(repo)
	require.NoError(t, h.Handle(LogoutUserCommand{SessionID: "s1"}))
	assert.Nil(t, session.User())

	// Logout is idempotent
	require.NoError(t, h.Handle(LogoutUserCommand{SessionID: "s1"}))

	assert.ErrorIs(t, h.Handle(LogoutUserCommand{SessionID: "missing"}), domain.ErrSessionNotFound)
}

func TestUpdateViewPartial(t *testing.T) {
	repo, session := newSession(t)
	h := NewUpdateViewHandler(repo)

	open := true
	view, err := h.Handle(UpdateViewCommand{SessionID: "s1", CartOpen: &open})
	require.NoError(t, err)
	assert.True(t, view.CartOpen)

	// Nil fields leave the rest of the view untouched
	id := "4"
	view, err = h.Handle(UpdateViewCommand{SessionID: "s1", SelectedBookID: &id})
	require.NoError(t, err)
	assert.True(t, view.CartOpen)
	assert.Equal(t, "4", view.SelectedBookID)

	clear := ""
	view, err = h.Handle(UpdateViewCommand{SessionID: "s1", SelectedBookID: &clear})
	require.NoError(t, err)
	assert.Empty(t, view.SelectedBookID)

	assert.Equal(t, view, session.View())
}

func TestOpenSession(t *testing.T) {
	repo := repository.NewMemorySessionRepository()
	h := NewOpenSessionHandler(repo, fakeScheduler{})

	first, err := h.Handle(OpenSessionCommand{})
	require.NoError(t, err)
	second, err := h.Handle(OpenSessionCommand{})
	require.NoError(t, err)

	assert.NotEmpty(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.True(t, first.Cart.IsEmpty())

	count, _ := repo.Count()
	assert.Equal(t, 2, count)
}
