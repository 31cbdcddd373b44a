package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/amokewustl/belong-chivent/internal/auth"
	"github.com/amokewustl/belong-chivent/internal/store"
	"github.com/amokewustl/belong-chivent/pkg/models"
)

type contextKey string

const userContextKey contextKey = "user"

// Authenticator resolves the session cookie into an account and guards routes.
type Authenticator struct {
	tokens   *auth.TokenManager
	denylist auth.Denylist
	users    store.UserStore
}

// NewAuthenticator creates route-guarding middleware.
func NewAuthenticator(tokens *auth.TokenManager, denylist auth.Denylist, users store.UserStore) *Authenticator {
	return &Authenticator{
		tokens:   tokens,
		denylist: denylist,
		users:    users,
	}
}

// authenticate resolves the request's session cookie to an account.
func (a *Authenticator) authenticate(r *http.Request) (*models.User, error) {
	cookie, err := r.Cookie(auth.CookieName)
	if err != nil {
		return nil, auth.ErrInvalidToken
	}

	claims, err := a.tokens.Parse(cookie.Value)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	revoked, err := a.denylist.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, auth.ErrRevokedToken
	}

	return a.users.GetUserByID(ctx, claims.UserID)
}

// RequireUser rejects requests without a valid session.
func (a *Authenticator) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := a.authenticate(r)
		if err != nil {
			respondError(w, http.StatusUnauthorized, "authentication required", nil)
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userContextKey, user)))
	})
}

// RequireAdmin rejects requests whose session is not an admin account.
func (a *Authenticator) RequireAdmin(next http.Handler) http.Handler {
	return a.RequireUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := UserFromContext(r.Context())
		if user == nil || !user.IsAdmin() {
			respondError(w, http.StatusForbidden, "admin access required", nil)
			return
		}

		next.ServeHTTP(w, r)
	}))
}

// UserFromContext returns the authenticated account, or nil outside guarded
// routes.
func UserFromContext(ctx context.Context) *models.User {
	user, _ := ctx.Value(userContextKey).(*models.User)
	return user
}
