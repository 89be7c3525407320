package message

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"microblog/internal/common"
	"microblog/internal/dbmysql"
	"microblog/internal/user"
)

type Handler struct {
	svc MessageService
}

func NewHandler(svc MessageService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/messages", h.Send).Methods(http.MethodPost)
	r.HandleFunc("/messages", h.Inbox).Methods(http.MethodGet)
	r.HandleFunc("/messages/sent", h.Sent).Methods(http.MethodGet)
	r.HandleFunc("/messages/unread", h.UnreadCount).Methods(http.MethodGet)
	r.HandleFunc("/messages/read", h.MarkRead).Methods(http.MethodPost)
}

type sendRequest struct {
	Recipient string `json:"recipient"`
	Body      string `json:"body"`
}

func (h *Handler) Send(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.RespondError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req sendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	msg, err := h.svc.Send(r.Context(), userID, req.Recipient, req.Body)
	switch {
	case errors.Is(err, user.ErrNotFound):
		common.RespondError(w, http.StatusNotFound, "recipient not found")
	case err != nil:
		common.RespondError(w, http.StatusBadRequest, err.Error())
	default:
		common.RespondJSON(w, http.StatusCreated, msg)
	}
}

func (h *Handler) Inbox(w http.ResponseWriter, r *http.Request) {
	h.listing(w, r, h.svc.Inbox)
}

func (h *Handler) Sent(w http.ResponseWriter, r *http.Request) {
	h.listing(w, r, h.svc.Sent)
}

func (h *Handler) listing(w http.ResponseWriter, r *http.Request, list func(ctx context.Context, userID uint64, page int) (common.Page[dbmysql.Message], error)) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.RespondError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	page, err := list(r.Context(), userID, pageParam(r))
	if err != nil {
		common.RespondError(w, http.StatusInternalServerError, "could not list messages")
		return
	}
	common.RespondJSON(w, http.StatusOK, page)
}

func (h *Handler) UnreadCount(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.RespondError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	count, err := h.svc.UnreadCount(r.Context(), userID)
	if err != nil {
		common.RespondError(w, http.StatusInternalServerError, "could not count messages")
		return
	}
	common.RespondJSON(w, http.StatusOK, map[string]int64{"unread": count})
}

func (h *Handler) MarkRead(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.RespondError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	if err := h.svc.MarkRead(r.Context(), userID); err != nil {
		common.RespondError(w, http.StatusInternalServerError, "could not mark messages read")
		return
	}
	common.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func pageParam(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
