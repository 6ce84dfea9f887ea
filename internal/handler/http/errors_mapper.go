package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/christmas-gifter/internal/app"
	"github.com/MKhiriev/christmas-gifter/internal/service"
	"github.com/MKhiriev/christmas-gifter/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,
	service.ErrVersionIsNotSpecified:   http.StatusBadRequest,

	store.ErrEmailAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:     http.StatusNotFound,
	store.ErrPersonNotFound:     http.StatusNotFound,
	store.ErrGiftNotFound:       http.StatusNotFound,
	store.ErrPersonSetMismatch:  http.StatusBadRequest,
	store.ErrEmptyNameList:      http.StatusBadRequest,
	store.ErrPersonNotSaved:     http.StatusInternalServerError,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrPreparingStatement:   http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

// errorMessageMap holds client-facing bodies for errors whose wording is part
// of the API. Anything absent falls back to a generic internal error message
// so that wrapped low-level detail never reaches the client.
var errorMessageMap = map[error]string{
	service.ErrInvalidDataProvided:     app.MsgInvalidDataProvided,
	service.ErrWrongPassword:           app.MsgInvalidEmailPassword,
	service.ErrTokenIsExpiredOrInvalid: app.MsgTokenIsExpiredOrInvalid,

	store.ErrEmailAlreadyExists: app.MsgEmailAlreadyExists,
	store.ErrNoUserWasFound:     app.MsgInvalidEmailPassword,
	store.ErrPersonNotFound:     app.MsgPersonNotFound,
	store.ErrGiftNotFound:       app.MsgGiftNotFound,
	store.ErrPersonSetMismatch:  app.MsgPersonSetMismatch,
	store.ErrEmptyNameList:      app.MsgInvalidDataProvided,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error) string {
	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			return message
		}
	}
	return app.MsgInternalServerError
}
