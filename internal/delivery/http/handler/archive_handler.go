package handler

import (
	"net/http"

	"record-registry/internal/usecase"
	"record-registry/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type ArchiveHandler struct {
	archiveUsecase usecase.ArchiveUsecase
}

func NewArchiveHandler(archiveUsecase usecase.ArchiveUsecase) *ArchiveHandler {
	return &ArchiveHandler{
		archiveUsecase: archiveUsecase,
	}
}

func (h *ArchiveHandler) GetAllSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.archiveUsecase.ListSessions(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get sessions")
		return
	}

	response.Success(w, http.StatusOK, "Sessions retrieved successfully", sessions)
}

func (h *ArchiveHandler) GetSessionRecords(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid session ID", nil)
		return
	}

	records, err := h.archiveUsecase.GetSessionRecords(r.Context(), sessionID)
	if err != nil {
		if err == usecase.ErrSessionNotFound {
			response.NotFound(w, "Session not found")
			return
		}
		response.InternalServerError(w, "Failed to get session records")
		return
	}

	response.Success(w, http.StatusOK, "Session records retrieved successfully", records)
}
