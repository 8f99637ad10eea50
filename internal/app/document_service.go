package app

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	appctx "github.com/jsamuelsen11/mentorship-admin/internal/app/context"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/catalog"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/document"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/validate"
	"github.com/jsamuelsen11/mentorship-admin/internal/platform/metrics"
	"github.com/jsamuelsen11/mentorship-admin/internal/ports"
)

// Compile-time check that DocumentService implements ports.DocumentService.
var _ ports.DocumentService = (*DocumentService)(nil)

const bytesPerMB = 1024 * 1024

// DocumentService implements ports.DocumentService. Content goes to a
// BlobStore and metadata to a DocumentRepository; an upload writes both or
// neither.
type DocumentService struct {
	repo     ports.DocumentRepository
	blobs    ports.BlobStore
	registry *catalog.Registry
	metrics  *metrics.Metrics
	logger   *slog.Logger
	newKey   func(class catalog.FileClass, fileName string) string
}

// NewDocumentService creates a DocumentService.
func NewDocumentService(
	repo ports.DocumentRepository,
	blobs ports.BlobStore,
	reg *catalog.Registry,
	m *metrics.Metrics,
	logger *slog.Logger,
) *DocumentService {
	return &DocumentService{
		repo:     repo,
		blobs:    blobs,
		registry: reg,
		metrics:  m,
		logger:   orDiscard(logger),
		newKey:   storageKey,
	}
}

// storageKey returns "<class>/<uuid><ext>". The original file name is kept
// only in metadata.
func storageKey(class catalog.FileClass, fileName string) string {
	return fmt.Sprintf("%s/%s%s", class, uuid.NewString(), strings.ToLower(filepath.Ext(fileName)))
}

// ListDocuments returns document metadata matching filter.
func (s *DocumentService) ListDocuments(ctx context.Context, filter document.Filter) ([]document.Document, error) {
	s.logger.InfoContext(ctx, "listing documents",
		slog.String("class", string(filter.Class)),
		slog.String("category", filter.Category),
	)

	list, err := s.repo.List(ctx, filter)
	if err != nil {
		logFailure(ctx, s.logger, "failed to list documents", "ListDocuments", err)
		return nil, err
	}
	return list, nil
}

// GetDocument returns a single document's metadata.
func (s *DocumentService) GetDocument(ctx context.Context, id int64) (*document.Document, error) {
	s.logger.InfoContext(ctx, "fetching document", slog.Int64("id", id))

	d, err := s.repo.Get(ctx, id)
	if err != nil {
		logFailure(ctx, s.logger, "failed to fetch document", "GetDocument", err, slog.Int64("id", id))
		return nil, err
	}
	return d, nil
}

// Upload reads content up to the class ceiling, sniffs its type, checks it
// against the class rule and stores blob and metadata together.
func (s *DocumentService) Upload(ctx context.Context, d *document.Document, content io.Reader) (*document.Document, error) {
	s.logger.InfoContext(ctx, "uploading document",
		slog.String("class", string(d.Class)),
		slog.String("file_name", d.FileName),
	)

	if err := d.Validate(s.registry); err != nil {
		s.reject(d, err)
		return nil, err
	}

	maxMB := s.registry.MaxFileSizeMB(d.Class)
	limit := int64(maxMB * bytesPerMB)
	data, err := io.ReadAll(io.LimitReader(content, limit+1))
	if err != nil {
		s.metrics.ObserveUpload(s.classLabel(d.Class), metrics.ResultFailed)
		return nil, fmt.Errorf("reading upload: %w", err)
	}

	d.Size = int64(len(data))
	d.ContentType = sniff(data)
	if err := s.checkContent(d, maxMB); err != nil {
		s.reject(d, err)
		return nil, err
	}

	d.StorageKey = s.newKey(d.Class, d.FileName)

	var created *document.Document
	rc := appctx.New(ctx)
	if err := rc.AddAction(&putBlobAction{blobs: s.blobs, key: d.StorageKey, data: data, contentType: d.ContentType}); err != nil {
		return nil, err
	}
	if err := rc.AddAction(&insertDocumentAction{repo: s.repo, doc: d, created: &created}); err != nil {
		return nil, err
	}
	if err := rc.Commit(ctx); err != nil {
		s.metrics.ObserveUpload(s.classLabel(d.Class), metrics.ResultFailed)
		logFailure(ctx, s.logger, "failed to store document", "Upload", err, slog.String("storage_key", d.StorageKey))
		return nil, err
	}

	s.metrics.ObserveUpload(s.classLabel(d.Class), metrics.ResultAccepted)
	return created, nil
}

func (s *DocumentService) checkContent(d *document.Document, maxMB float64) error {
	rule, _ := s.registry.FileRule(d.Class)
	f := d.File()

	fields := validate.Fields{}
	fields.Check(f.Size > 0, "file", domain.MsgMustNotEmpty)
	fields.Check(validate.FileSize(f, maxMB), "file",
		fmt.Sprintf("exceeds the %g MB limit for %s uploads", maxMB, d.Class))
	fields.Check(validate.FileType(f, rule.MIMETypes), "file",
		fmt.Sprintf("content type %q is not allowed for %s uploads", d.ContentType, d.Class))
	return fields.Err()
}

// classLabel returns c for registered classes and metrics.LabelUnknown for
// anything a client made up.
func (s *DocumentService) classLabel(c catalog.FileClass) string {
	if _, ok := s.registry.FileRule(c); !ok {
		return metrics.LabelUnknown
	}
	return string(c)
}

func (s *DocumentService) reject(d *document.Document, err error) {
	s.metrics.ObserveValidation("document", err)
	s.metrics.ObserveUpload(s.classLabel(d.Class), metrics.ResultRejected)
}

// sniff detects the content type and drops parameters such as charset.
func sniff(data []byte) string {
	mt, _, _ := strings.Cut(mimetype.Detect(data).String(), ";")
	return strings.TrimSpace(mt)
}

// Download returns the metadata and an open reader over the content.
func (s *DocumentService) Download(ctx context.Context, id int64) (*document.Document, io.ReadCloser, error) {
	s.logger.InfoContext(ctx, "downloading document", slog.Int64("id", id))

	d, err := s.repo.Get(ctx, id)
	if err != nil {
		logFailure(ctx, s.logger, "failed to fetch document", "Download", err, slog.Int64("id", id))
		return nil, nil, err
	}

	body, err := s.blobs.Get(ctx, d.StorageKey)
	if err != nil {
		logFailure(ctx, s.logger, "failed to open document content", "Download", err,
			slog.Int64("id", id),
			slog.String("storage_key", d.StorageKey),
		)
		return nil, nil, fmt.Errorf("opening content: %w", err)
	}
	return d, body, nil
}

// DeleteDocument removes the metadata, then the blob. A blob that cannot be
// removed is logged and left behind.
func (s *DocumentService) DeleteDocument(ctx context.Context, id int64) error {
	s.logger.InfoContext(ctx, "deleting document", slog.Int64("id", id))

	d, err := s.repo.Get(ctx, id)
	if err != nil {
		logFailure(ctx, s.logger, "failed to fetch document", "DeleteDocument", err, slog.Int64("id", id))
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		logFailure(ctx, s.logger, "failed to delete document", "DeleteDocument", err, slog.Int64("id", id))
		return err
	}
	if err := s.blobs.Delete(ctx, d.StorageKey); err != nil {
		s.logger.WarnContext(ctx, "orphaned document content",
			slog.String("operation", "DeleteDocument"),
			slog.Int64("id", id),
			slog.String("storage_key", d.StorageKey),
			slog.Any("error", err),
		)
	}
	return nil
}

// putBlobAction writes content to the blob store. Rollback deletes it.
type putBlobAction struct {
	blobs       ports.BlobStore
	key         string
	data        []byte
	contentType string
}

func (a *putBlobAction) Execute(ctx context.Context) error {
	return a.blobs.Put(ctx, a.key, bytes.NewReader(a.data), int64(len(a.data)), a.contentType)
}

func (a *putBlobAction) Rollback(ctx context.Context) error {
	return a.blobs.Delete(ctx, a.key)
}

func (a *putBlobAction) Description() string { return "store blob " + a.key }

// insertDocumentAction records the metadata. Rollback deletes the row.
type insertDocumentAction struct {
	repo    ports.DocumentRepository
	doc     *document.Document
	created **document.Document
}

func (a *insertDocumentAction) Execute(ctx context.Context) error {
	created, err := a.repo.Create(ctx, a.doc)
	if err != nil {
		return err
	}
	*a.created = created
	return nil
}

func (a *insertDocumentAction) Rollback(ctx context.Context) error {
	if *a.created == nil {
		return nil
	}
	return a.repo.Delete(ctx, (*a.created).ID)
}

func (a *insertDocumentAction) Description() string { return "insert document " + a.doc.FileName }
