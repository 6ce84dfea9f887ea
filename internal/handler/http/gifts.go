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

func (h *Handler) createGifts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.createGifts").Msg(app.MsgNoUserIDProvided)
		http.Error(w, app.MsgNoUserIDProvided, http.StatusBadRequest)
		return
	}

	var request models.CreateGiftsRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.createGifts").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	gifts, err := h.services.GiftService.CreateGifts(ctx, userID, request)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createGifts").Msg("error creating gifts")
		http.Error(w, messageFromError(err), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.GiftsResponse{Gifts: gifts}, http.StatusCreated)
}

func (h *Handler) upsertGift(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.upsertGift").Msg(app.MsgNoUserIDProvided)
		http.Error(w, app.MsgNoUserIDProvided, http.StatusBadRequest)
		return
	}

	var request models.UpsertGiftRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.upsertGift").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	gift, err := h.services.GiftService.UpsertGift(ctx, userID, request)
	if err != nil {
		log.Err(err).Str("func", "*Handler.upsertGift").Msg("error upserting gift")
		http.Error(w, messageFromError(err), statusFromError(err))
		return
	}

	// created vs. replaced description
	status := http.StatusCreated
	if request.GiftID != nil {
		status = http.StatusOK
	}

	utils.WriteJSON(w, models.GiftResponse{Gift: gift}, status)
}

func (h *Handler) updateGiftStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.updateGiftStatus").Msg(app.MsgNoUserIDProvided)
		http.Error(w, app.MsgNoUserIDProvided, http.StatusBadRequest)
		return
	}

	var update models.GiftStatusUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Str("func", "*Handler.updateGiftStatus").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	gift, err := h.services.GiftService.UpdateGiftStatus(ctx, userID, update)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateGiftStatus").Msg("error updating gift status")
		http.Error(w, messageFromError(err), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.GiftResponse{Gift: gift}, http.StatusOK)
}

func (h *Handler) deleteGift(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.deleteGift").Msg(app.MsgNoUserIDProvided)
		http.Error(w, app.MsgNoUserIDProvided, http.StatusBadRequest)
		return
	}

	giftID, err := strconv.ParseInt(chi.URLParam(r, "giftID"), 10, 64)
	if err != nil {
		log.Err(err).Str("func", "*Handler.deleteGift").Msg("invalid gift id in path")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	if err := h.services.GiftService.DeleteGift(ctx, userID, giftID); err != nil {
		log.Err(err).Str("func", "*Handler.deleteGift").Msg("error deleting gift")
		http.Error(w, messageFromError(err), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.AckResponse{Message: app.MsgDeleted}, http.StatusOK)
}
