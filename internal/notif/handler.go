package notif

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"microblog/internal/common"
)

type Handler struct {
	svc NotificationService
}

func NewHandler(svc NotificationService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/notifications", h.List).Methods(http.MethodGet)
}

// List returns the caller's notifications newer than ?since=, a unix
// timestamp with fractional seconds. Clients poll with the timestamp
// of the last notification they saw.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.RespondError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	since := time.Unix(0, 0)
	if raw := r.URL.Query().Get("since"); raw != "" {
		seconds, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			common.RespondError(w, http.StatusBadRequest, "invalid since timestamp")
			return
		}
		sec, frac := math.Modf(seconds)
		since = time.Unix(int64(sec), int64(frac*float64(time.Second)))
	}

	notifications, err := h.svc.Since(r.Context(), userID, since)
	if err != nil {
		common.RespondError(w, http.StatusInternalServerError, "could not list notifications")
		return
	}
	common.RespondJSON(w, http.StatusOK, notifications)
}
