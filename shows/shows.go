package shows

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"showsvc/models"
	"showsvc/utils"

	"github.com/julienschmidt/httprouter"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// GetShows serves both GET /api/shows/listshows and GET /api/shows/:name.
// httprouter cannot register a static sibling next to the :name wildcard,
// so the list path is carved out of the wildcard here.
func (h *Handler) GetShows(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if name := ps.ByName("name"); name != "listshows" {
		h.searchShows(w, r, name)
		return
	}
	h.listShows(w, r)
}

func (h *Handler) listShows(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	shows, err := h.svc.GetAllShows(ctx)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching shows")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, shows)
}

func (h *Handler) searchShows(w http.ResponseWriter, r *http.Request, name string) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	shows, err := h.svc.SearchShows(ctx, name)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error searching shows")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, shows)
}

func (h *Handler) CreateShow(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	payload, ok := decodePayload(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	show, err := h.svc.CreateShow(ctx, payload)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create show")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, show)
}

func (h *Handler) EditShow(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	payload, ok := decodePayload(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	show, err := h.svc.EditShow(ctx, payload)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, show)
}

func (h *Handler) DeleteShow(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	name := ps.ByName("name")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	message, err := h.svc.DeleteShow(ctx, name)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": message})
}

// decodePayload parses and validates the request body, writing the error
// response itself when the payload is unusable.
func decodePayload(w http.ResponseWriter, r *http.Request) (payload models.ShowPayload, ok bool) {
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return payload, false
	}

	if violations := ValidatePayload(payload); len(violations) > 0 {
		utils.RespondWithJSON(w, http.StatusBadRequest, utils.M{
			"error":      "Validation failed",
			"violations": violations,
		})
		return payload, false
	}

	return payload, true
}

func respondServiceError(w http.ResponseWriter, err error) {
	var se *Error
	if errors.As(err, &se) {
		utils.RespondWithError(w, http.StatusBadRequest, se.Message)
		return
	}
	utils.RespondWithError(w, http.StatusInternalServerError, "Something went wrong")
}
