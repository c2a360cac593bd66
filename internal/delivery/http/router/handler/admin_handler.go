package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "performiq/internal/delivery/context"
	"performiq/internal/delivery/http/response"
	"performiq/internal/domain/entity"
	"performiq/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	SyncUC usecase.SyncUsecase
	Logger *slog.Logger
}

// AdminHandler exposes manual sync runs and sync status to org admins.
type AdminHandler struct {
	syncUC usecase.SyncUsecase
	logger *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		syncUC: params.SyncUC,
		logger: params.Logger,
	}
}

// RunJobsResponse is the body of a manual sync run.
type RunJobsResponse struct {
	Success bool                `json:"success"`
	Results usecase.SyncResults `json:"results"`
}

// JobStatusResponse lists the org's sync states.
type JobStatusResponse struct {
	SyncStates []*entity.SyncState `json:"syncStates"`
}

// RunJobs handles POST /api/admin/jobs/run
func (h *AdminHandler) RunJobs(c echo.Context) error {
	orgID, ok, err := orgID(c)
	if !ok {
		return err
	}

	deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).
		Info("Manual sync triggered", slog.String("orgID", orgID.String()))

	results, err := h.syncUC.RunSyncForOrg(c.Request().Context(), orgID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.JSON(c, http.StatusOK, RunJobsResponse{Success: true, Results: results})
}

// JobStatus handles GET /api/admin/jobs/status
func (h *AdminHandler) JobStatus(c echo.Context) error {
	orgID, ok, err := orgID(c)
	if !ok {
		return err
	}

	states, err := h.syncUC.GetSyncStatus(c.Request().Context(), orgID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.JSON(c, http.StatusOK, JobStatusResponse{SyncStates: states})
}
