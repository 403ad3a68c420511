package rest

import (
	"net/http"

	"github.com/campushub/api/internal/domain/service"
)

type AnalyticsHandler struct {
	analyticsService *service.AnalyticsService
}

func NewAnalyticsHandler(analyticsService *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// Overview handles GET /analytics
func (h *AnalyticsHandler) Overview(w http.ResponseWriter, r *http.Request) {
	analytics, err := h.analyticsService.Overview(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, analytics)
}

// Export handles GET /analytics/export
func (h *AnalyticsHandler) Export(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("format") == "csv" {
		report, err := h.analyticsService.CSV(r.Context())
		if err != nil {
			respondError(w, err)
			return
		}
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", "attachment; filename=analytics.csv")
		_, _ = w.Write(report)
		return
	}

	dump, err := h.analyticsService.Dump(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dump)
}
