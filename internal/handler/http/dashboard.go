package http

import (
	"net/http"
	"time"

	"github.com/staffpulse/attendance-backend-go/internal/domain/stats"
	"github.com/staffpulse/attendance-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	WeeklyStats(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	statsService stats.StatsService
}

func NewDashboardHandler(statsService stats.StatsService) DashboardHandler {
	return &dashboardHandlerImpl{
		statsService: statsService,
	}
}

// WeeklyStats implements DashboardHandler. Employees get stats scoped to
// themselves; admins get the fleet-wide view.
func (h *dashboardHandlerImpl) WeeklyStats(w http.ResponseWriter, r *http.Request) {
	ident, err := identityFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	employeeID := ident.UserID
	if ident.IsAdmin() {
		employeeID = "" // unscoped
	}

	result, err := h.statsService.ComputeWeeklyStats(r.Context(), employeeID, time.Now())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
