package feed

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"microblog/internal/common"
	"microblog/internal/user"
)

type Handler struct {
	svc FeedService
}

func NewHandler(svc FeedService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/posts", h.CreatePost).Methods(http.MethodPost)
	r.HandleFunc("/feed", h.Timeline).Methods(http.MethodGet)
	r.HandleFunc("/explore", h.Explore).Methods(http.MethodGet)
	r.HandleFunc("/users/{username}/posts", h.UserPosts).Methods(http.MethodGet)
	r.HandleFunc("/search", h.Search).Methods(http.MethodGet)
}

func pageParam(r *http.Request) int {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	return page
}

type createPostRequest struct {
	Body string `json:"body"`
}

func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req createPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	post, err := h.svc.CreatePost(r.Context(), userID, req.Body)
	if err != nil {
		common.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	common.RespondJSON(w, http.StatusCreated, post)
}

func (h *Handler) Timeline(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	page, err := h.svc.Timeline(r.Context(), userID, pageParam(r))
	if err != nil {
		common.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	common.RespondJSON(w, http.StatusOK, page)
}

func (h *Handler) Explore(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.Explore(r.Context(), pageParam(r))
	if err != nil {
		common.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	common.RespondJSON(w, http.StatusOK, page)
}

func (h *Handler) UserPosts(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]

	page, err := h.svc.UserPosts(r.Context(), username, pageParam(r))
	if errors.Is(err, user.ErrNotFound) {
		common.RespondError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		common.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	common.RespondJSON(w, http.StatusOK, page)
}

func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		common.RespondError(w, http.StatusBadRequest, "query parameter q is required")
		return
	}

	page, err := h.svc.SearchPosts(r.Context(), q, pageParam(r))
	if err != nil {
		common.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	common.RespondJSON(w, http.StatusOK, page)
}
