package user

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"microblog/internal/common"
)

type Handler struct {
	svc UserService
}

func NewHandler(svc UserService) *Handler {
	return &Handler{svc: svc}
}

// RegisterPublicRoutes mounts the routes that need no auth token.
func (h *Handler) RegisterPublicRoutes(r *mux.Router) {
	r.HandleFunc("/register", h.Register).Methods(http.MethodPost)
	r.HandleFunc("/login", h.Login).Methods(http.MethodPost)
}

// RegisterRoutes mounts the authenticated routes.
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/users/{username}", h.Profile).Methods(http.MethodGet)
	r.HandleFunc("/profile", h.UpdateProfile).Methods(http.MethodPut)
	r.HandleFunc("/users/{username}/follow", h.Follow).Methods(http.MethodPost)
	r.HandleFunc("/users/{username}/unfollow", h.Unfollow).Methods(http.MethodPost)
}

// LastSeenMiddleware refreshes the authenticated user's last-seen
// marker on every request, best effort.
func (h *Handler) LastSeenMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if userID, ok := common.UserIDFromContext(r.Context()); ok {
			_ = h.svc.TouchLastSeen(r.Context(), userID)
		}
		next.ServeHTTP(w, r)
	})
}

type credentialsRequest struct {
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password"`
}

type authResponse struct {
	Token    string `json:"token"`
	UserID   uint64 `json:"user_id"`
	Username string `json:"username"`
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, token, err := h.svc.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		common.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	common.RespondJSON(w, http.StatusCreated, authResponse{
		Token:    token,
		UserID:   user.ID,
		Username: user.Username,
	})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, token, err := h.svc.Login(r.Context(), req.Username, req.Password)
	if errors.Is(err, ErrInvalidCredentials) {
		common.RespondError(w, http.StatusUnauthorized, err.Error())
		return
	}
	if err != nil {
		common.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	common.RespondJSON(w, http.StatusOK, authResponse{
		Token:    token,
		UserID:   user.ID,
		Username: user.Username,
	})
}

func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	viewerID, _ := common.UserIDFromContext(r.Context())
	username := mux.Vars(r)["username"]

	profile, err := h.svc.Profile(r.Context(), viewerID, username)
	if errors.Is(err, ErrNotFound) {
		common.RespondError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		common.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	common.RespondJSON(w, http.StatusOK, profile)
}

type updateProfileRequest struct {
	Username string `json:"username"`
	AboutMe  string `json:"about_me"`
}

func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req updateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.svc.UpdateProfile(r.Context(), userID, req.Username, req.AboutMe); err != nil {
		common.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	common.RespondJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (h *Handler) Follow(w http.ResponseWriter, r *http.Request) {
	h.followAction(w, r, h.svc.Follow)
}

func (h *Handler) Unfollow(w http.ResponseWriter, r *http.Request) {
	h.followAction(w, r, h.svc.Unfollow)
}

func (h *Handler) followAction(w http.ResponseWriter, r *http.Request, action func(ctx context.Context, userID uint64, username string) error) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	username := mux.Vars(r)["username"]

	err := action(r.Context(), userID, username)
	switch {
	case errors.Is(err, ErrNotFound):
		common.RespondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrSelfFollow):
		common.RespondError(w, http.StatusBadRequest, err.Error())
	case err != nil:
		common.RespondError(w, http.StatusInternalServerError, err.Error())
	default:
		common.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
