package list_schedule

import (
	"net/http"

	"github.com/m04kA/VP-ApprovalService/internal/api/handlers"
)

type Handler struct {
	useCase ListScheduleUseCase
	logger  Logger
}

func NewHandler(useCase ListScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /approved
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Execute(r.Context())
	if err != nil {
		h.logger.Error("GET /approved - Failed to list schedule: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /approved - Schedule retrieved successfully: %d applications", len(result.Applications))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
