package app

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/mentorship-admin/internal/domain"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/catalog"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/document"
	"github.com/jsamuelsen11/mentorship-admin/internal/platform/metrics"
	"github.com/jsamuelsen11/mentorship-admin/mocks"
)

// pngHeader is enough for content sniffing to report image/png.
var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

func newDocumentService(t *testing.T) (*DocumentService, *mocks.MockDocumentRepository, *mocks.MockBlobStore, *metrics.Metrics) {
	t.Helper()
	repo := mocks.NewMockDocumentRepository(t)
	blobs := mocks.NewMockBlobStore(t)
	m := testMetrics()
	svc := NewDocumentService(repo, blobs, testRegistry, m, discardLogger())
	svc.newKey = func(class catalog.FileClass, _ string) string { return string(class) + "/fixed-key" }
	return svc, repo, blobs, m
}

func TestDocumentService_Upload_Success(t *testing.T) {
	t.Parallel()
	svc, repo, blobs, m := newDocumentService(t)

	body := "Volunteers must sign in at reception.\n"
	blobs.EXPECT().
		Put(mock.Anything, "document/fixed-key", mock.Anything, int64(len(body)), "text/plain").
		Run(func(_ context.Context, _ string, r io.Reader, _ int64, _ string) {
			got, _ := io.ReadAll(r)
			assert.Equal(t, body, string(got))
		}).
		Return(nil)
	repo.EXPECT().Create(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, d *document.Document) (*document.Document, error) {
			out := *d
			out.ID = 41
			return &out, nil
		})

	got, err := svc.Upload(context.Background(), validDocument(), strings.NewReader(body))
	require.NoError(t, err)
	assert.Equal(t, int64(41), got.ID)
	assert.Equal(t, "text/plain", got.ContentType)
	assert.Equal(t, int64(len(body)), got.Size)
	assert.Equal(t, "document/fixed-key", got.StorageKey)
	assert.InDelta(t, 1, testutil.ToFloat64(m.Uploads.WithLabelValues("document", metrics.ResultAccepted)), 0)
}

func TestDocumentService_Upload_Rejections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		doc     func() *document.Document
		content []byte
		field   string
		msg     string
	}{
		{
			name: "extension not allowed for class",
			doc: func() *document.Document {
				d := validDocument()
				d.FileName = "photo.png"
				return d
			},
			content: pngHeader,
			field:   "file_name",
			msg:     "extension not allowed",
		},
		{
			name: "sniffed type not allowed for class",
			doc: func() *document.Document {
				d := validDocument()
				d.FileName = "disguised.pdf"
				return d
			},
			content: pngHeader,
			field:   "file",
			msg:     `content type "image/png"`,
		},
		{
			name: "oversized image",
			doc: func() *document.Document {
				d := validDocument()
				d.Class = catalog.ClassImage
				d.FileName = "poster.png"
				return d
			},
			content: append(append([]byte{}, pngHeader...), bytes.Repeat([]byte{0}, 5*1024*1024)...),
			field:   "file",
			msg:     "exceeds the 5 MB limit",
		},
		{
			name:    "empty file",
			doc:     validDocument,
			content: nil,
			field:   "file",
			msg:     domain.MsgMustNotEmpty,
		},
		{
			name: "unknown category",
			doc: func() *document.Document {
				d := validDocument()
				d.Category = "memes"
				return d
			},
			content: []byte("text"),
			field:   "category",
			msg:     "invalid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, _, _, m := newDocumentService(t)

			d := tt.doc()
			_, err := svc.Upload(context.Background(), d, bytes.NewReader(tt.content))

			var verr *domain.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Fields[tt.field], tt.msg)
			assert.InDelta(t, 1,
				testutil.ToFloat64(m.Uploads.WithLabelValues(string(d.Class), metrics.ResultRejected)), 0)
		})
	}
}

func TestDocumentService_Upload_UnknownClassCountedAsUnknown(t *testing.T) {
	t.Parallel()
	svc, _, _, m := newDocumentService(t)

	for _, class := range []string{"spreadsheet", "x1", "x2"} {
		d := validDocument()
		d.Class = catalog.FileClass(class)
		_, err := svc.Upload(context.Background(), d, strings.NewReader("text"))

		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields, "class")
	}

	assert.Equal(t, 1, testutil.CollectAndCount(m.Uploads))
	assert.InDelta(t, 3, testutil.ToFloat64(m.Uploads.WithLabelValues(metrics.LabelUnknown, metrics.ResultRejected)), 0)
}

func TestDocumentService_Upload_InsertFailureDeletesBlob(t *testing.T) {
	t.Parallel()
	svc, repo, blobs, m := newDocumentService(t)

	boom := errors.New("insert failed")
	blobs.EXPECT().Put(mock.Anything, "document/fixed-key", mock.Anything, mock.Anything, "text/plain").Return(nil)
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, boom)
	blobs.EXPECT().Delete(mock.Anything, "document/fixed-key").Return(nil).Once()

	_, err := svc.Upload(context.Background(), validDocument(), strings.NewReader("policy text"))
	require.ErrorIs(t, err, boom)
	assert.InDelta(t, 1, testutil.ToFloat64(m.Uploads.WithLabelValues("document", metrics.ResultFailed)), 0)
}

func TestDocumentService_Upload_BlobFailureSkipsInsert(t *testing.T) {
	t.Parallel()
	svc, _, blobs, _ := newDocumentService(t)

	blobs.EXPECT().Put(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(domain.ErrUnavailable)

	_, err := svc.Upload(context.Background(), validDocument(), strings.NewReader("policy text"))
	assert.ErrorIs(t, err, domain.ErrUnavailable)
}

func TestDocumentService_Download(t *testing.T) {
	t.Parallel()
	svc, repo, blobs, _ := newDocumentService(t)

	d := validDocument()
	d.ID = 3
	d.StorageKey = "document/abc.txt"
	repo.EXPECT().Get(mock.Anything, int64(3)).Return(d, nil)
	blobs.EXPECT().Get(mock.Anything, "document/abc.txt").Return(io.NopCloser(strings.NewReader("hi")), nil)

	meta, body, err := svc.Download(context.Background(), 3)
	require.NoError(t, err)
	defer body.Close()

	content, _ := io.ReadAll(body)
	assert.Equal(t, "hi", string(content))
	assert.Equal(t, d.Title, meta.Title)
}

func TestDocumentService_Download_MissingBlob(t *testing.T) {
	t.Parallel()
	svc, repo, blobs, _ := newDocumentService(t)

	d := validDocument()
	d.StorageKey = "document/gone"
	repo.EXPECT().Get(mock.Anything, int64(3)).Return(d, nil)
	blobs.EXPECT().Get(mock.Anything, "document/gone").Return(nil, domain.ErrNotFound)

	_, _, err := svc.Download(context.Background(), 3)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDocumentService_DeleteDocument(t *testing.T) {
	t.Parallel()

	t.Run("removes metadata then blob", func(t *testing.T) {
		t.Parallel()
		svc, repo, blobs, _ := newDocumentService(t)

		d := validDocument()
		d.StorageKey = "document/k"
		repo.EXPECT().Get(mock.Anything, int64(9)).Return(d, nil)
		repo.EXPECT().Delete(mock.Anything, int64(9)).Return(nil)
		blobs.EXPECT().Delete(mock.Anything, "document/k").Return(errors.New("bucket offline"))

		require.NoError(t, svc.DeleteDocument(context.Background(), 9))
	})

	t.Run("unknown document", func(t *testing.T) {
		t.Parallel()
		svc, repo, _, _ := newDocumentService(t)

		repo.EXPECT().Get(mock.Anything, int64(9)).Return(nil, domain.ErrNotFound)

		assert.ErrorIs(t, svc.DeleteDocument(context.Background(), 9), domain.ErrNotFound)
	})
}

func TestDocumentService_ListDocuments(t *testing.T) {
	t.Parallel()
	svc, repo, _, _ := newDocumentService(t)

	filter := document.Filter{Class: catalog.ClassReceipt}
	repo.EXPECT().List(mock.Anything, filter).Return([]document.Document{*validDocument()}, nil)
	repo.EXPECT().Get(mock.Anything, int64(1)).Return(validDocument(), nil)

	list, err := svc.ListDocuments(context.Background(), filter)
	require.NoError(t, err)
	assert.Len(t, list, 1)
	_, err = svc.GetDocument(context.Background(), 1)
	require.NoError(t, err)
}

func TestStorageKey(t *testing.T) {
	t.Parallel()

	k1 := storageKey(catalog.ClassReceipt, "Taxi.JPG")
	k2 := storageKey(catalog.ClassReceipt, "Taxi.JPG")
	assert.True(t, strings.HasPrefix(k1, "receipt/"))
	assert.True(t, strings.HasSuffix(k1, ".jpg"))
	assert.NotEqual(t, k1, k2)
}
