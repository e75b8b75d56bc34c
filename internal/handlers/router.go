package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "github.com/cricpredict/winprob-api/docs"
)

// Routes builds the HTTP router. Cross-origin requests are accepted from
// allowedOrigins; "*" allows any origin.
func (h *Handler) Routes(allowedOrigins []string) http.Handler {
	r := chi.NewRouter()

	r.Use(RequestID)
	r.Use(h.RequestLogger)
	r.Use(h.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", RequestIDHeader},
		ExposedHeaders: []string{RequestIDHeader},
		MaxAge:         300,
	}))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		h.errorResponse(w, http.StatusNotFound, "Not Found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		h.errorResponse(w, http.StatusMethodNotAllowed, "Method Not Allowed")
	})

	r.Get("/", h.Home)
	r.Post("/predict", h.Predict)

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Get("/model", h.GetModelInfo)
	r.Get("/swagger/doc.json", h.SwaggerDoc)
	r.Handle("/metrics", promhttp.Handler())

	return r
}
