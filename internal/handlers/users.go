package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/amokewustl/belong-chivent/internal/store"
)

// UsersHandler serves account listings for the admin panel.
type UsersHandler struct {
	users store.UserStore
}

// NewUsersHandler creates a handler over the user store.
func NewUsersHandler(users store.UserStore) *UsersHandler {
	return &UsersHandler{users: users}
}

// HandleListUsers serves GET /api/users (admin only; guarded by middleware).
func (h *UsersHandler) HandleListUsers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	limit := parseIntParam(r, "limit", 20)
	if limit > 100 {
		limit = 100
	}
	offset := parseIntParam(r, "offset", 0)

	users, err := h.users.ListUsers(ctx, limit, offset)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to retrieve users", err)
		return
	}

	list := make([]userResponse, 0, len(users))
	for i := range users {
		list = append(list, toUserResponse(&users[i]))
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"users": list,
		"count": len(list),
	})
}
