package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-fit-tracker/internal/logger"
	"github.com/MKhiriev/go-fit-tracker/internal/store"
	"github.com/MKhiriev/go-fit-tracker/internal/utils"
	"github.com/MKhiriev/go-fit-tracker/models"
)

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.CreateUserRequest
	if err := decodeBody(r, &req, map[string]*string{
		"username": &req.Username,
	}); err != nil {
		log.Err(err).Msg("invalid request body was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "invalid request body"}, http.StatusBadRequest)
		return
	}

	createdUser, failures, err := h.services.UserService.CreateUser(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUsernameAlreadyExists):
			log.Err(err).Str("username", req.Username).Msg("username already taken")
			utils.WriteJSON(w, models.ErrorResponse{Error: "Username already taken"}, http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user creation")
			utils.WriteJSON(w, models.ErrorResponse{Error: http.StatusText(http.StatusInternalServerError)}, http.StatusInternalServerError)
			return
		}
	}
	if len(failures) > 0 {
		utils.WriteJSON(w, failures, http.StatusBadRequest)
		return
	}

	utils.WriteJSON(w, createdUser, http.StatusOK)
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	users, err := h.services.UserService.ListUsers(ctx)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during user listing")
		utils.WriteJSON(w, models.ErrorResponse{Error: http.StatusText(http.StatusInternalServerError)}, http.StatusInternalServerError)
		return
	}

	if users == nil {
		users = []models.User{}
	}

	utils.WriteJSON(w, users, http.StatusOK)
}
