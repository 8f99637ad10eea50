// Package catalog holds the read-only enumerations shared by validation,
// classification and the HTTP layer: roles, statuses, categories, file
// ceilings, allowed file types and endpoint paths.
//
// A Registry is built once at startup with Default and passed by reference.
// It is never mutated after construction and every accessor returns a copy,
// so a single instance is safe for concurrent use.
package catalog

import (
	"maps"
	"path/filepath"
	"slices"
	"strings"

	"github.com/jsamuelsen11/mentorship-admin/internal/domain/status"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/validate"
)

// Roles.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleMentor  = "mentor"
	RoleStaff   = "staff"
)

// FileClass groups uploads that share a size ceiling and allowed types.
type FileClass string

// File classes.
const (
	ClassDocument FileClass = "document"
	ClassImage    FileClass = "image"
	ClassReceipt  FileClass = "receipt"
)

// FileRule is the upload policy for one FileClass.
type FileRule struct {
	MaxSizeMB  float64  `json:"maxSizeMB"`
	Extensions []string `json:"extensions"`
	MIMETypes  []string `json:"mimeTypes"`
}

// AllowsExtension reports whether the extension of name (case-insensitive)
// is allowed by the rule.
func (r FileRule) AllowsExtension(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext != "" && slices.Contains(r.Extensions, ext)
}

// AllowsFile reports whether f fits the size ceiling and has an allowed MIME type.
func (r FileRule) AllowsFile(f validate.File) bool {
	return validate.FileSize(f, r.MaxSizeMB) && validate.FileType(f, r.MIMETypes)
}

func (r FileRule) clone() FileRule {
	return FileRule{
		MaxSizeMB:  r.MaxSizeMB,
		Extensions: slices.Clone(r.Extensions),
		MIMETypes:  slices.Clone(r.MIMETypes),
	}
}

// Endpoints are the API route prefixes the router mounts.
type Endpoints struct {
	APIPrefix string `json:"apiPrefix"`
	Auth      string `json:"auth"`
	Staff     string `json:"staff"`
	Mentees   string `json:"mentees"`
	Invoices  string `json:"invoices"`
	Receipts  string `json:"receipts"`
	Inventory string `json:"inventory"`
	Documents string `json:"documents"`
	Dashboard string `json:"dashboard"`
	Catalog   string `json:"catalog"`
	Status    string `json:"status"`
}

// Registry is the immutable set of constants. The zero value is empty; use
// Default.
type Registry struct {
	roles               []string
	statuses            map[status.EntityType][]string
	files               map[FileClass]FileRule
	documentCategories  []string
	inventoryCategories []string
	receiptCategories   []string
	endpoints           Endpoints
}

// Default returns the registry used by the service.
func Default() *Registry {
	statuses := make(map[status.EntityType][]string)
	for _, e := range status.EntityTypes() {
		statuses[e] = status.Statuses(e)
	}

	return &Registry{
		roles:    []string{RoleAdmin, RoleManager, RoleMentor, RoleStaff},
		statuses: statuses,
		files: map[FileClass]FileRule{
			ClassDocument: {
				MaxSizeMB:  10,
				Extensions: []string{".pdf", ".doc", ".docx", ".xls", ".xlsx", ".txt", ".csv"},
				MIMETypes: []string{
					"application/pdf",
					"application/msword",
					"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
					"application/vnd.ms-excel",
					"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
					"text/plain",
					"text/csv",
				},
			},
			ClassImage: {
				MaxSizeMB:  5,
				Extensions: []string{".jpg", ".jpeg", ".png", ".gif", ".webp"},
				MIMETypes:  []string{"image/jpeg", "image/png", "image/gif", "image/webp"},
			},
			ClassReceipt: {
				MaxSizeMB:  5,
				Extensions: []string{".pdf", ".jpg", ".jpeg", ".png"},
				MIMETypes:  []string{"application/pdf", "image/jpeg", "image/png"},
			},
		},
		documentCategories:  []string{"contracts", "policies", "reports", "training", "general"},
		inventoryCategories: []string{"office-supplies", "electronics", "furniture", "training-materials", "other"},
		receiptCategories:   []string{"travel", "meals", "supplies", "equipment", "training", "other"},
		endpoints: Endpoints{
			APIPrefix: "/api/v1",
			Auth:      "/auth",
			Staff:     "/staff",
			Mentees:   "/mentees",
			Invoices:  "/invoices",
			Receipts:  "/receipts",
			Inventory: "/inventory",
			Documents: "/documents",
			Dashboard: "/dashboard",
			Catalog:   "/catalog",
			Status:    "/status",
		},
	}
}

// Roles returns the known user roles.
func (r *Registry) Roles() []string { return slices.Clone(r.roles) }

// HasRole reports whether role is known.
func (r *Registry) HasRole(role string) bool { return slices.Contains(r.roles, role) }

// Statuses returns the recognised status values of an entity type.
func (r *Registry) Statuses(e status.EntityType) []string { return slices.Clone(r.statuses[e]) }

// HasStatus reports whether s is a recognised status of entity type e.
func (r *Registry) HasStatus(e status.EntityType, s string) bool {
	return slices.Contains(r.statuses[e], s)
}

// FileClasses returns the known file classes in a stable order.
func (r *Registry) FileClasses() []FileClass {
	return slices.Sorted(maps.Keys(r.files))
}

// FileRule returns the upload policy for class c.
func (r *Registry) FileRule(c FileClass) (FileRule, bool) {
	rule, ok := r.files[c]
	if !ok {
		return FileRule{}, false
	}
	return rule.clone(), true
}

// MaxFileSizeMB returns the ceiling for class c, or
// validate.DefaultMaxFileSizeMB for an unknown class.
func (r *Registry) MaxFileSizeMB(c FileClass) float64 {
	if rule, ok := r.files[c]; ok {
		return rule.MaxSizeMB
	}
	return validate.DefaultMaxFileSizeMB
}

// DocumentCategories returns the allowed document categories.
func (r *Registry) DocumentCategories() []string { return slices.Clone(r.documentCategories) }

// HasDocumentCategory reports whether c is an allowed document category.
func (r *Registry) HasDocumentCategory(c string) bool {
	return slices.Contains(r.documentCategories, c)
}

// InventoryCategories returns the allowed inventory categories.
func (r *Registry) InventoryCategories() []string { return slices.Clone(r.inventoryCategories) }

// HasInventoryCategory reports whether c is an allowed inventory category.
func (r *Registry) HasInventoryCategory(c string) bool {
	return slices.Contains(r.inventoryCategories, c)
}

// ReceiptCategories returns the allowed receipt categories.
func (r *Registry) ReceiptCategories() []string { return slices.Clone(r.receiptCategories) }

// HasReceiptCategory reports whether c is an allowed receipt category.
func (r *Registry) HasReceiptCategory(c string) bool {
	return slices.Contains(r.receiptCategories, c)
}

// Endpoints returns the API route prefixes.
func (r *Registry) Endpoints() Endpoints { return r.endpoints }

// Snapshot is a serializable copy of the whole registry.
type Snapshot struct {
	Roles               []string                       `json:"roles"`
	Statuses            map[status.EntityType][]string `json:"statuses"`
	Files               map[FileClass]FileRule         `json:"files"`
	DocumentCategories  []string                       `json:"documentCategories"`
	InventoryCategories []string                       `json:"inventoryCategories"`
	ReceiptCategories   []string                       `json:"receiptCategories"`
	Endpoints           Endpoints                      `json:"endpoints"`
}

// Snapshot returns a deep copy of the registry contents.
func (r *Registry) Snapshot() Snapshot {
	statuses := make(map[status.EntityType][]string, len(r.statuses))
	for e, s := range r.statuses {
		statuses[e] = slices.Clone(s)
	}
	files := make(map[FileClass]FileRule, len(r.files))
	for c, rule := range r.files {
		files[c] = rule.clone()
	}
	return Snapshot{
		Roles:               r.Roles(),
		Statuses:            statuses,
		Files:               files,
		DocumentCategories:  r.DocumentCategories(),
		InventoryCategories: r.InventoryCategories(),
		ReceiptCategories:   r.ReceiptCategories(),
		Endpoints:           r.endpoints,
	}
}
