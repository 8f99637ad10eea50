// Package document models uploaded files and their metadata.
package document

import (
	"fmt"
	"time"

	"github.com/jsamuelsen11/mentorship-admin/internal/domain"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/catalog"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/validate"
)

// Document is the metadata of a stored file. The content lives in a blob
// store under StorageKey.
type Document struct {
	ID          int64
	Title       string
	Class       catalog.FileClass
	Category    string
	FileName    string
	ContentType string
	Size        int64
	StorageKey  string
	UploadedBy  int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// File returns the size/type descriptor used by the file validators.
func (d *Document) File() validate.File {
	return validate.File{Name: d.FileName, Size: d.Size, Type: d.ContentType}
}

// Validate checks the metadata rules: title, known class and category, and
// a file name whose extension the class allows. Size and content type are
// checked against the upload itself by the application layer.
func (d *Document) Validate(reg *catalog.Registry) error {
	fields := validate.Fields{}

	fields.Check(validate.Required(d.Title), "title", domain.MsgRequired)
	fields.Check(reg.HasDocumentCategory(d.Category), "category", fmt.Sprintf("invalid: %q", d.Category))

	rule, ok := reg.FileRule(d.Class)
	fields.Check(ok, "class", fmt.Sprintf("invalid: %q", d.Class))
	if !validate.Required(d.FileName) {
		fields.Add("file_name", domain.MsgRequired)
	} else if ok {
		fields.Check(rule.AllowsExtension(d.FileName), "file_name",
			fmt.Sprintf("extension not allowed for %s uploads", d.Class))
	}

	return fields.Err()
}

// Filter holds optional filter criteria for listing documents.
type Filter struct {
	Class    catalog.FileClass
	Category string
}

// Matches reports whether d passes the filter.
func (f Filter) Matches(d *Document) bool {
	if f.Class != "" && d.Class != f.Class {
		return false
	}
	return f.Category == "" || d.Category == f.Category
}
