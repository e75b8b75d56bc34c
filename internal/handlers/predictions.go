package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/cricpredict/winprob-api/internal/models"
)

const welcomeMessage = "Welcome to the Cricket Prediction API. Use POST /predict to get predictions."

// Error messages returned to clients
const (
	errNoJSON        = "No JSON data received"
	errMissingFields = "Missing required fields in input data"
	errBodyTooLarge  = "Request body too large"
)

// Home returns the API welcome message
// @Summary Welcome
// @Tags Prediction
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	h.jsonResponse(w, http.StatusOK, map[string]string{"message": welcomeMessage})
}

// Predict returns the win probability split for a chase in progress
// @Summary Predict Win Probability
// @Description Boundary states (all out, innings over, target reached) are resolved by rule; all others by the model.
// @Tags Prediction
// @Accept json
// @Produce json
// @Param body body models.MatchState true "Match state"
// @Success 200 {object} models.PredictionResult
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 413 {object} map[string]string "Body too large"
// @Failure 500 {object} map[string]string "Inference failure"
// @Router /predict [post]
func (h *Handler) Predict(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodySize)
	body, err := io.ReadAll(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.errorResponse(w, http.StatusRequestEntityTooLarge, errBodyTooLarge)
			return
		}
		h.errorResponse(w, http.StatusBadRequest, errNoJSON)
		return
	}
	defer r.Body.Close()

	// An empty, malformed, non-object or empty-object body counts as no data
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(bytes.TrimSpace(body), &fields); err != nil || len(fields) == 0 {
		h.logger.Warnw("Rejected prediction request without JSON object", "bodyLength", len(body))
		h.errorResponse(w, http.StatusBadRequest, errNoJSON)
		return
	}

	var state models.MatchState
	if err := json.Unmarshal(body, &state); err != nil {
		h.errorResponse(w, http.StatusBadRequest, errMissingFields)
		return
	}

	match, err := state.Resolve(h.validate)
	if err != nil {
		h.logger.Warnw("Validation failed for match state", "error", err)
		h.errorResponse(w, http.StatusBadRequest, errMissingFields)
		return
	}

	h.logger.Debugw("Received match state", "match", match)

	result, err := h.prediction.Predict(r.Context(), match)
	if err != nil {
		h.logger.Errorw("Prediction failed", "error", err, "batting", match.BattingTeam, "bowling", match.BowlingTeam)
		h.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.jsonResponse(w, http.StatusOK, result)
}
