package handlers

import (
	"net/http"

	"github.com/swaggo/swag"
)

// GetModelInfo describes the loaded model artifact
// @Summary Model Metadata
// @Tags System
// @Produce json
// @Success 200 {object} models.ModelInfo
// @Router /model [get]
func (h *Handler) GetModelInfo(w http.ResponseWriter, r *http.Request) {
	h.jsonResponse(w, http.StatusOK, h.model)
}

// SwaggerDoc serves the OpenAPI document built from the handler annotations
func (h *Handler) SwaggerDoc(w http.ResponseWriter, r *http.Request) {
	doc, err := swag.ReadDoc()
	if err != nil {
		h.logger.Errorw("Failed to read swagger doc", "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "API documentation unavailable")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(doc))
}
