package submit_application

import (
	"errors"
	"net/http"

	"github.com/m04kA/VP-ApprovalService/internal/api/handlers"
	submitApplication "github.com/m04kA/VP-ApprovalService/internal/usecase/submit_application"
)

const (
	msgApplicationApproved = "application saved successfully"

	msgInvalidRequestBody = "invalid request body"
	msgInvalidTimestamp   = "invalid timestamp, expected ISO-8601 (e.g. 2024-01-01T10:00:00Z)"
	msgMissingField       = "name, federation, start_time and end_time are required"
	msgInvertedInterval   = "start_time must be before end_time"
	msgDurationExceeded   = "slot may be at most 2 hours long"
	msgTimeConflict       = "the requested slot overlaps an approved application"
	msgFederationQuota    = "this federation already holds 2 slots on that day"
)

type Handler struct {
	useCase SubmitApplicationUseCase
	logger  Logger
}

func NewHandler(useCase SubmitApplicationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /apply
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SubmitApplicationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /apply - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом времён)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /apply - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTimestamp)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, submitApplication.ErrMissingField):
			h.logger.Warn("POST /apply - Missing field: name=%s, federation=%s", req.Name, req.Federation)
			handlers.RespondBadRequest(w, msgMissingField)

		case errors.Is(err, submitApplication.ErrInvertedInterval):
			h.logger.Warn("POST /apply - Inverted interval: name=%s", req.Name)
			handlers.RespondBadRequest(w, msgInvertedInterval)

		case errors.Is(err, submitApplication.ErrDurationExceeded):
			h.logger.Warn("POST /apply - Duration exceeded: name=%s", req.Name)
			handlers.RespondBadRequest(w, msgDurationExceeded)

		case errors.Is(err, submitApplication.ErrTimeConflict):
			h.logger.Warn("POST /apply - Time conflict: name=%s, start=%s", req.Name, req.StartTime)
			handlers.RespondBadRequest(w, msgTimeConflict)

		case errors.Is(err, submitApplication.ErrFederationQuotaExceeded):
			h.logger.Warn("POST /apply - Federation quota exceeded: federation=%s", req.Federation)
			handlers.RespondBadRequest(w, msgFederationQuota)

		default:
			h.logger.Error("POST /apply - Failed to submit application: name=%s, error=%v", req.Name, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /apply - Application approved: application_id=%d, name=%s, federation=%s",
		result.ID, req.Name, req.Federation)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
