package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/hlog"

	"github.com/tripmitra/aria-backend/assistant/contract"
	"github.com/tripmitra/aria-backend/travel"
)

type errorBody struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeError maps the domain error taxonomy onto HTTP statuses: validation
// faults to 400 with the violated rule, absent ids to 404, unreachable-store
// writes to 503, everything else to 500.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *travel.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, errorBody{Detail: verr.Error()})
	case errors.Is(err, travel.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorBody{Detail: "destination not found"})
	case errors.Is(err, travel.ErrStoreUnavailable):
		writeJSON(w, http.StatusServiceUnavailable, errorBody{Detail: "destination store unavailable"})
	case errors.Is(err, contract.ErrEmptyMessage):
		writeJSON(w, http.StatusBadRequest, errorBody{Detail: "message is required"})
	default:
		hlog.FromRequest(r).Error().Err(err).Msg("request failed")
		writeJSON(w, http.StatusInternalServerError, errorBody{Detail: "internal error"})
	}
}
