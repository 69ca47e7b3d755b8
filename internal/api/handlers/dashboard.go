package handlers

import (
	"log/slog"
	"net/http"

	"github.com/clothingmenvy-dot/menvy-client/internal/api/middleware"
	service "github.com/clothingmenvy-dot/menvy-client/internal/services"
	"github.com/clothingmenvy-dot/menvy-client/internal/utils/response"
)

type DashboardHandler struct {
	dashboardService service.DashboardService
}

func NewDashboardHandler(dashboardService service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// for eg: GET /api/v1/dashboard, or ?refresh=false for the last computed view
//
//	@Summary		Dashboard figures, remote or aggregated from local collections
//	@Tags			Dashboard
//	@Produce		json
//	@Param			refresh query bool false "false returns the last view without loading"
//	@Success		200 {object} models.DashboardView "Dashboard view"
//	@Failure		502 {object} response.ErrorResponse "Backend failure"
//	@Security		BearerAuth
//	@Router			/dashboard [get]
func (h *DashboardHandler) Get() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		if r.URL.Query().Get("refresh") == "false" {
			response.Success(w, http.StatusOK, h.dashboardService.View())
			return
		}

		view, err := h.dashboardService.Load(r.Context())
		if err != nil {
			logger.Error("Failed to load dashboard", slog.String("source", view.Source), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, view)

	}
}
