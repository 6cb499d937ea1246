package router

import (
	"net/http"

	"inventory-tracker/internal/handler"
	"inventory-tracker/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	inventoryHandler *handler.InventoryHandler,
	allowedOrigins []string,
	logger zerolog.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Order: RequestID -> Recovery -> Logging -> CORS
	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logging(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	r.Get("/", inventoryHandler.Index)
	r.Post("/", inventoryHandler.Submit)

	r.Post("/add_count", inventoryHandler.AddCount)
	r.Post("/delete_count", inventoryHandler.DeleteCount)
	r.Post("/delete_product", inventoryHandler.DeletePosition)

	r.Post("/api/products/delete", inventoryHandler.DeleteProduct)

	return r
}
