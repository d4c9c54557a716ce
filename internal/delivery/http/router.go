package http

import (
	"net/http"

	"record-registry/internal/delivery/http/handler"
	"record-registry/internal/delivery/http/middleware"
	"record-registry/pkg/response"

	"github.com/gorilla/mux"
)

type Router struct {
	router         *mux.Router
	archiveHandler *handler.ArchiveHandler
	corsMiddleware *middleware.CORSMiddleware
}

func NewRouter(
	archiveHandler *handler.ArchiveHandler,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:         mux.NewRouter(),
		archiveHandler: archiveHandler,
		corsMiddleware: corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Archive routes (read-only)
	archive := api.PathPrefix("/archive").Subrouter()
	archive.HandleFunc("/sessions", r.archiveHandler.GetAllSessions).Methods(http.MethodGet)
	archive.HandleFunc("/sessions/{id}/records", r.archiveHandler.GetSessionRecords).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	response.Success(w, http.StatusOK, "Service is healthy", nil)
}
