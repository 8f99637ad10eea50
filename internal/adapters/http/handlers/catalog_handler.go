package handlers

import (
	"net/http"
	"slices"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/mentorship-admin/internal/adapters/http/dto"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/catalog"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/status"
	"github.com/jsamuelsen11/mentorship-admin/internal/platform/metrics"
	"github.com/jsamuelsen11/mentorship-admin/internal/ports"
)

const timeLayout = time.RFC3339

// CatalogHandler serves the constant registry, status classification and
// the dashboard summary.
type CatalogHandler struct {
	registry  *catalog.Registry
	dashboard ports.DashboardService
	metrics   *metrics.Metrics
}

// NewCatalogHandler creates a CatalogHandler. A nil metrics value disables
// classification counting.
func NewCatalogHandler(reg *catalog.Registry, dashboard ports.DashboardService, m *metrics.Metrics) *CatalogHandler {
	return &CatalogHandler{registry: reg, dashboard: dashboard, metrics: m}
}

// Catalog handles GET /api/v1/catalog.
func (h *CatalogHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "public, max-age=300")
	writeJSON(w, r, http.StatusOK, h.registry.Snapshot())
}

// Status handles GET /api/v1/status/{entityType}/{status}. Unknown entity
// types and statuses are described as neutral rather than rejected.
func (h *CatalogHandler) Status(w http.ResponseWriter, r *http.Request) {
	desc := status.Describe(status.EntityType(chi.URLParam(r, "entityType")), chi.URLParam(r, "status"))
	entityLabel := string(desc.EntityType)
	if !slices.Contains(status.EntityTypes(), desc.EntityType) {
		entityLabel = metrics.LabelUnknown
	}
	h.metrics.ObserveClassification(entityLabel, string(desc.Category))

	writeJSON(w, r, http.StatusOK, desc)
}

// Dashboard handles GET /api/v1/dashboard.
func (h *CatalogHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	summary, err := h.dashboard.Summary(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToDashboardResponse(summary))
}
