package handlers

import (
	"errors"
	"net/http"

	"github.com/PaiAmitha/zap-it-delivery-dashboard/logging"
	"github.com/PaiAmitha/zap-it-delivery-dashboard/services"
)

type DashboardHandler struct {
	Service *services.DashboardService
}

func NewDashboardHandler(service *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{Service: service}
}

// GetDashboard recomputes the full dashboard payload from the current
// collection state on every request.
func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	if err := checkRole(r, []string{"admin", "manager", "hr", "viewer"}); err != nil {
		http.Error(w, err.Error(), http.StatusForbidden)
		return
	}

	dashboard, err := h.Service.BuildDashboard(r.Context())
	if err != nil {
		if errors.Is(err, services.ErrStoreUnavailable) {
			logging.Logger.Errorf("Event ID: DASHBOARD_STORE_UNAVAILABLE, Description: Record store unreachable while building dashboard: %v", err)
			http.Error(w, "Record store unavailable", http.StatusServiceUnavailable)
			return
		}
		logging.Logger.Errorf("Event ID: DASHBOARD_BUILD_FAILED, Description: Failed to build dashboard: %v", err)
		http.Error(w, "Failed to build dashboard", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, dashboard)
}
