package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-fit-tracker/internal/logger"
	"github.com/MKhiriev/go-fit-tracker/internal/store"
	"github.com/MKhiriev/go-fit-tracker/internal/utils"
	"github.com/MKhiriev/go-fit-tracker/models"
)

func (h *Handler) getLog(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	query := r.URL.Query()
	req := models.LogRequest{
		UserID: chi.URLParam(r, "id"),
		From:   query.Get("from"),
		To:     query.Get("to"),
		Limit:  query.Get("limit"),
	}

	exerciseLog, err := h.services.LogService.GetLog(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNoUserWasFound):
			log.Debug().Str("user_id", req.UserID).Msg("log requested for unknown user")
			utils.WriteJSON(w, models.ErrorResponse{Error: "User not found."}, http.StatusNotFound)
			return
		default:
			log.Err(err).Str("user_id", req.UserID).Msg("unexpected error occurred during log retrieval")
			utils.WriteJSON(w, models.ErrorResponse{Error: http.StatusText(http.StatusInternalServerError)}, http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, exerciseLog, http.StatusOK)
}
