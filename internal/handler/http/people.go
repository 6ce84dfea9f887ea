package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/MKhiriev/christmas-gifter/internal/app"
	"github.com/MKhiriev/christmas-gifter/internal/logger"
	"github.com/MKhiriev/christmas-gifter/internal/utils"
	"github.com/MKhiriev/christmas-gifter/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) getPeople(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.getPeople").Msg(app.MsgNoUserIDProvided)
		http.Error(w, app.MsgNoUserIDProvided, http.StatusBadRequest)
		return
	}

	people, err := h.services.PeopleService.GetPeople(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getPeople").Msg("error getting people")
		http.Error(w, messageFromError(err), statusFromError(err))
		return
	}

	response := models.PeopleResponse{
		People: people,
		Length: len(people),
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) replacePeople(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.replacePeople").Msg(app.MsgNoUserIDProvided)
		http.Error(w, app.MsgNoUserIDProvided, http.StatusBadRequest)
		return
	}

	var request models.ReplacePeopleRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.replacePeople").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	people, err := h.services.PeopleService.ReplacePeople(ctx, userID, request)
	if err != nil {
		log.Err(err).Str("func", "*Handler.replacePeople").Msg("error replacing people")
		http.Error(w, messageFromError(err), statusFromError(err))
		return
	}

	response := models.PeopleResponse{
		People: people,
		Length: len(people),
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) appendPerson(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.appendPerson").Msg(app.MsgNoUserIDProvided)
		http.Error(w, app.MsgNoUserIDProvided, http.StatusBadRequest)
		return
	}

	var request models.AppendPersonRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.appendPerson").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	person, err := h.services.PeopleService.AppendPerson(ctx, userID, request)
	if err != nil {
		log.Err(err).Str("func", "*Handler.appendPerson").Msg("error appending person")
		http.Error(w, messageFromError(err), statusFromError(err))
		return
	}

	utils.WriteJSON(w, person, http.StatusCreated)
}

func (h *Handler) reorderPeople(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.reorderPeople").Msg(app.MsgNoUserIDProvided)
		http.Error(w, app.MsgNoUserIDProvided, http.StatusBadRequest)
		return
	}

	var request models.ReorderPeopleRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.reorderPeople").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.PeopleService.ReorderPeople(ctx, userID, request); err != nil {
		log.Err(err).Str("func", "*Handler.reorderPeople").Msg("error reordering people")
		http.Error(w, messageFromError(err), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.AckResponse{Message: app.MsgReordered}, http.StatusOK)
}

func (h *Handler) deletePerson(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.deletePerson").Msg(app.MsgNoUserIDProvided)
		http.Error(w, app.MsgNoUserIDProvided, http.StatusBadRequest)
		return
	}

	personID, err := strconv.ParseInt(chi.URLParam(r, "personID"), 10, 64)
	if err != nil {
		log.Err(err).Str("func", "*Handler.deletePerson").Msg("invalid person id in path")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	if err := h.services.PeopleService.DeletePerson(ctx, userID, personID); err != nil {
		log.Err(err).Str("func", "*Handler.deletePerson").Msg("error deleting person")
		http.Error(w, messageFromError(err), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.AckResponse{Message: app.MsgDeleted}, http.StatusOK)
}
