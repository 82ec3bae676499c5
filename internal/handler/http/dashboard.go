package http

import (
	"net/http"
	"time"

	"github.com/peoplecore/hr-backend-go/internal/handler/http/response"
	dashboardsvc "github.com/peoplecore/hr-backend-go/internal/service/dashboard"
)

type DashboardHandler interface {
	Overview(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService *dashboardsvc.Service
}

func NewDashboardHandler(dashboardService *dashboardsvc.Service) DashboardHandler {
	return &dashboardHandlerImpl{
		dashboardService: dashboardService,
	}
}

// Overview implements DashboardHandler.
func (h *dashboardHandlerImpl) Overview(w http.ResponseWriter, r *http.Request) {
	date := time.Now()
	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		parsed, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			response.BadRequest(w, "Query parameter 'date' must be YYYY-MM-DD", nil)
			return
		}
		date = parsed
	}

	result, err := h.dashboardService.Overview(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
