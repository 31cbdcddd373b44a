package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/amokewustl/belong-chivent/internal/auth"
	"github.com/amokewustl/belong-chivent/internal/store"
	"github.com/amokewustl/belong-chivent/pkg/models"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// AuthHandler serves login, logout, registration, and session introspection.
type AuthHandler struct {
	users    store.UserStore
	tokens   *auth.TokenManager
	denylist auth.Denylist
	// secureCookies marks session cookies Secure; off for local development.
	secureCookies bool
}

// NewAuthHandler creates the auth endpoints.
func NewAuthHandler(users store.UserStore, tokens *auth.TokenManager, denylist auth.Denylist, secureCookies bool) *AuthHandler {
	return &AuthHandler{
		users:         users,
		tokens:        tokens,
		denylist:      denylist,
		secureCookies: secureCookies,
	}
}

// userResponse is the account shape returned to the front end.
type userResponse struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	CreatedAt time.Time  `json:"createdAt"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
}

func toUserResponse(u *models.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		LastLogin: u.LastLogin,
	}
}

// HandleLogin serves POST /api/login.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if req.Username == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "username and password required", nil)
		return
	}

	user, err := h.users.GetUserByUsername(ctx, strings.ToLower(req.Username))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(w, http.StatusUnauthorized, "invalid credentials", nil)
			return
		}
		respondError(w, http.StatusInternalServerError, "login failed", err)
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		respondError(w, http.StatusUnauthorized, "invalid credentials", nil)
		return
	}

	if err := h.users.UpdateLastLogin(ctx, user.ID); err != nil {
		respondError(w, http.StatusInternalServerError, "login failed", err)
		return
	}

	token, err := h.tokens.Issue(user)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "login failed", err)
		return
	}

	http.SetCookie(w, h.sessionCookie(token, int(auth.TokenTTL.Seconds())))

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Login successful",
		"user":    toUserResponse(user),
	})
}

// HandleLogout serves POST /api/logout. The session token is denylisted until
// its natural expiry and the cookie is cleared.
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	if cookie, err := r.Cookie(auth.CookieName); err == nil {
		if claims, err := h.tokens.Parse(cookie.Value); err == nil && claims.ExpiresAt != nil {
			if err := h.denylist.Revoke(ctx, claims.ID, claims.ExpiresAt.Time); err != nil {
				respondError(w, http.StatusInternalServerError, "logout failed", err)
				return
			}
		}
	}

	http.SetCookie(w, h.sessionCookie("", -1))

	respondJSON(w, http.StatusOK, map[string]string{
		"message": "Logout successful",
	})
}

// HandleMe serves GET /api/me for an authenticated session.
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		respondError(w, http.StatusUnauthorized, "authentication required", nil)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"user": toUserResponse(user),
	})
}

// HandleRegister serves POST /api/register. New accounts always get the user
// role; admins are bootstrapped separately.
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	h.createAccount(w, r, models.RoleUser)
}

// HandleCreateAdmin serves POST /api/create-admin. It only works while no
// admin account exists yet, as a first-run bootstrap.
func (h *AuthHandler) HandleCreateAdmin(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	existing, err := h.users.ListUsers(ctx, 1000, 0)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to create admin", err)
		return
	}
	for _, u := range existing {
		if u.IsAdmin() {
			respondError(w, http.StatusForbidden, "an admin account already exists", nil)
			return
		}
	}

	h.createAccount(w, r, models.RoleAdmin)
}

func (h *AuthHandler) createAccount(w http.ResponseWriter, r *http.Request, role string) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	if msg := validateRegistration(req.Username, req.Email, req.Password); msg != "" {
		respondError(w, http.StatusBadRequest, msg, nil)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to create account", err)
		return
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Username:     strings.ToLower(req.Username),
		Email:        strings.ToLower(req.Email),
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}

	if err := h.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			respondError(w, http.StatusConflict, "username or email already taken", nil)
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to create account", err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Account created",
		"user":    toUserResponse(user),
	})
}

// validateRegistration applies the account rules the front end also enforces.
func validateRegistration(username, email, password string) string {
	switch {
	case username == "" || email == "" || password == "":
		return "username, email, and password are required"
	case len(username) < 3:
		return "username must be at least 3 characters long"
	case len(password) < 6:
		return "password must be at least 6 characters long"
	case !emailPattern.MatchString(email):
		return "please enter a valid email address"
	}
	return ""
}

func (h *AuthHandler) sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     auth.CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteStrictMode,
	}
}
