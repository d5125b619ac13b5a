package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-fit-tracker/internal/logger"
	"github.com/MKhiriev/go-fit-tracker/internal/utils"
	"github.com/MKhiriev/go-fit-tracker/models"
)

func (h *Handler) createExercise(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.CreateExerciseRequest
	if err := decodeBody(r, &req, map[string]*string{
		"description": &req.Description,
		"duration":    &req.Duration,
		"date":        &req.Date,
	}); err != nil {
		log.Err(err).Msg("invalid request body was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "invalid request body"}, http.StatusBadRequest)
		return
	}
	req.UserID = chi.URLParam(r, "id")

	created, failures, err := h.services.ExerciseService.CreateExercise(ctx, req)
	if err != nil {
		log.Err(err).Str("user_id", req.UserID).Msg("unexpected error occurred during exercise creation")
		utils.WriteJSON(w, models.ErrorResponse{Error: http.StatusText(http.StatusInternalServerError)}, http.StatusInternalServerError)
		return
	}
	if len(failures) > 0 {
		utils.WriteJSON(w, failures, http.StatusBadRequest)
		return
	}

	utils.WriteJSON(w, created, http.StatusOK)
}
