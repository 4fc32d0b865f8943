package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"familypoints/internal/ledger"
)

// errorResponse is the JSON envelope for failures
type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON writes a JSON response with the given status
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

// respondWithError maps domain errors to HTTP statuses: validation failures
// to 400, missing ids to 404, short balances to 409. Anything else is a 500
// with the detail kept out of the response body.
func respondWithError(w http.ResponseWriter, log zerolog.Logger, err error) {
	var verr *ledger.ValidationError
	var nferr *ledger.NotFoundError
	var iperr *ledger.InsufficientPointsError

	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: verr.Error()})
	case errors.As(err, &nferr):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: nferr.Error()})
	case errors.As(err, &iperr):
		writeJSON(w, http.StatusConflict, errorResponse{Error: iperr.Error()})
	default:
		log.Error().Err(err).Msg("request failed")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

// decodeJSON parses the request body into dst; on failure it writes a 400
// and returns false
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed JSON body"})
		return false
	}
	return true
}
