// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/mentorship-admin/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/mentorship-admin/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/catalog"
	"github.com/jsamuelsen11/mentorship-admin/internal/ports"
)

// Handlers groups the HTTP handlers mounted by NewRouter.
type Handlers struct {
	Health    *handlers.HealthHandler
	Auth      *handlers.AuthHandler
	Staff     *handlers.StaffHandler
	Mentees   *handlers.MenteeHandler
	Invoices  *handlers.InvoiceHandler
	Receipts  *handlers.ReceiptHandler
	Inventory *handlers.InventoryHandler
	Documents *handlers.DocumentHandler
	Catalog   *handlers.CatalogHandler
}

// RouterConfig holds the non-handler dependencies of the router.
type RouterConfig struct {
	// Endpoints supplies the route prefixes, normally catalog.Default().Endpoints().
	Endpoints catalog.Endpoints
	// Auth verifies bearer tokens on every API route except login.
	Auth ports.AuthService
	// Metrics serves the prometheus scrape endpoint. Nil leaves /metrics unmounted.
	Metrics http.Handler
}

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(h Handlers, cfg RouterConfig, middlewares ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Operational endpoints (outside the API prefix).
	r.Get("/health/live", h.Health.Liveness)
	r.Get("/health/ready", h.Health.Readiness)
	if cfg.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", cfg.Metrics)
	}

	ep := cfg.Endpoints
	r.Route(ep.APIPrefix, func(r chi.Router) {
		r.Post(ep.Auth+"/login", h.Auth.Login)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate(cfg.Auth))
			adminOnly := middleware.RequireRole(catalog.RoleAdmin)

			r.Post(ep.Auth+"/logout", h.Auth.Logout)
			r.Get(ep.Auth+"/me", h.Auth.Me)

			r.Route(ep.Staff, func(r chi.Router) {
				r.Get("/", h.Staff.ListStaff)
				r.Get("/{id}", h.Staff.GetStaff)
				r.With(adminOnly).Post("/", h.Staff.CreateStaff)
				r.With(adminOnly).Put("/{id}", h.Staff.UpdateStaff)
				r.With(adminOnly).Delete("/{id}", h.Staff.DeleteStaff)
			})

			r.Route(ep.Mentees, func(r chi.Router) {
				r.Get("/", h.Mentees.ListMentees)
				r.Post("/", h.Mentees.CreateMentee)
				r.Get("/{id}", h.Mentees.GetMentee)
				r.Put("/{id}", h.Mentees.UpdateMentee)
				r.Delete("/{id}", h.Mentees.DeleteMentee)
			})

			r.Route(ep.Invoices, func(r chi.Router) {
				r.Get("/", h.Invoices.ListInvoices)
				r.Post("/", h.Invoices.CreateInvoice)
				r.Get("/{id}", h.Invoices.GetInvoice)
				r.Put("/{id}", h.Invoices.UpdateInvoice)
				r.Delete("/{id}", h.Invoices.DeleteInvoice)
			})

			r.Route(ep.Receipts, func(r chi.Router) {
				r.Get("/", h.Receipts.ListReceipts)
				r.Post("/", h.Receipts.CreateReceipt)
				r.Get("/{id}", h.Receipts.GetReceipt)
				r.Put("/{id}", h.Receipts.UpdateReceipt)
				r.Delete("/{id}", h.Receipts.DeleteReceipt)
			})

			r.Route(ep.Inventory, func(r chi.Router) {
				r.Get("/", h.Inventory.ListItems)
				r.Post("/", h.Inventory.CreateItem)
				r.Get("/{id}", h.Inventory.GetItem)
				r.Put("/{id}", h.Inventory.UpdateItem)
				r.Delete("/{id}", h.Inventory.DeleteItem)
			})

			r.Route(ep.Documents, func(r chi.Router) {
				r.Get("/", h.Documents.ListDocuments)
				r.Post("/", h.Documents.UploadDocument)
				r.Get("/{id}", h.Documents.GetDocument)
				r.Get("/{id}/content", h.Documents.DownloadDocument)
				r.Delete("/{id}", h.Documents.DeleteDocument)
			})

			r.Get(ep.Dashboard, h.Catalog.Dashboard)
			r.Get(ep.Catalog, h.Catalog.Catalog)
			r.Get(ep.Status+"/{entityType}/{status}", h.Catalog.Status)
		})
	})

	return r
}
