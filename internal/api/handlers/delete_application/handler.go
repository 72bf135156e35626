package delete_application

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/VP-ApprovalService/internal/api/handlers"
	"github.com/m04kA/VP-ApprovalService/internal/service/applications"
)

const (
	msgApplicationDeleted = "application deleted successfully"

	msgInvalidRequestBody   = "invalid request body"
	msgInvalidApplicationID = "invalid application id"
	msgPasswordRequired     = "admin password is required"
	msgInvalidPassword      = "invalid admin password"
	msgNotFound             = "application not found"
)

type Handler struct {
	service ApplicationService
	logger  Logger
}

func NewHandler(service ApplicationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /delete-application/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем id из URL
	vars := mux.Vars(r)
	idStr := vars["id"]

	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /delete-application/{id} - Invalid application ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidApplicationID)
		return
	}

	var req DeleteApplicationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("DELETE /delete-application/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.Delete(r.Context(), id, req.Password); err != nil {
		switch {
		case errors.Is(err, applications.ErrPasswordRequired):
			h.logger.Warn("DELETE /delete-application/{id} - Missing password: application_id=%d", id)
			handlers.RespondBadRequest(w, msgPasswordRequired)

		case errors.Is(err, applications.ErrInvalidPassword):
			h.logger.Warn("DELETE /delete-application/{id} - Invalid password: application_id=%d", id)
			handlers.RespondForbidden(w, msgInvalidPassword)

		case errors.Is(err, applications.ErrApplicationNotFound):
			h.logger.Warn("DELETE /delete-application/{id} - Application not found: application_id=%d", id)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /delete-application/{id} - Failed to delete application: application_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /delete-application/{id} - Application deleted successfully: application_id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, DeleteApplicationResponse{Message: msgApplicationDeleted})
}
