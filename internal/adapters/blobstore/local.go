// Package blobstore holds document content. Local keeps files under a
// directory through a go-billy filesystem; S3 keeps them in a bucket.
package blobstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"

	"github.com/jsamuelsen11/mentorship-admin/internal/domain"
	"github.com/jsamuelsen11/mentorship-admin/internal/ports"
)

var (
	_ ports.BlobStore     = (*Local)(nil)
	_ ports.HealthChecker = (*Local)(nil)
)

// ErrInvalidKey is returned for keys that are empty, absolute or escape the
// store root.
var ErrInvalidKey = errors.New("invalid storage key")

// Local stores blobs as files. Writes go to a temp file that is renamed
// into place, so readers never see partial content.
type Local struct {
	fs billy.Filesystem
}

// NewLocal stores blobs beneath root on the OS filesystem.
func NewLocal(root string) *Local {
	return NewLocalFS(osfs.New(root))
}

// NewLocalFS stores blobs in fsys.
func NewLocalFS(fsys billy.Filesystem) *Local {
	return &Local{fs: fsys}
}

func cleanKey(key string) (string, error) {
	clean := path.Clean(key)
	if key == "" || path.IsAbs(key) || clean == "." || clean == ".." || strings.HasPrefix(clean, "../") {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return clean, nil
}

// Put ignores contentType; the type is kept in document metadata.
func (l *Local) Put(ctx context.Context, key string, r io.Reader, _ int64, _ string) error {
	name, err := cleanKey(key)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := path.Dir(name)
	if err := l.fs.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	tmp, err := l.fs.TempFile(dir, ".upload-")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	_, copyErr := io.Copy(tmp, r)
	closeErr := tmp.Close()
	if err := errors.Join(copyErr, closeErr); err != nil {
		_ = l.fs.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", name, err)
	}
	if err := l.fs.Rename(tmpName, name); err != nil {
		_ = l.fs.Remove(tmpName)
		return fmt.Errorf("storing %s: %w", name, err)
	}
	return nil
}

func (l *Local) Get(_ context.Context, key string) (io.ReadCloser, error) {
	name, err := cleanKey(key)
	if err != nil {
		return nil, err
	}
	f, err := l.fs.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("blob %s: %w", name, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("opening %s: %w", name, err)
	}
	return f, nil
}

// Delete treats a missing file as already deleted.
func (l *Local) Delete(_ context.Context, key string) error {
	name, err := cleanKey(key)
	if err != nil {
		return err
	}
	if err := l.fs.Remove(name); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("removing %s: %w", name, err)
	}
	return nil
}

// Name implements ports.HealthChecker.
func (l *Local) Name() string { return "blob-store" }

// HealthCheck verifies the root directory is reachable.
func (l *Local) HealthCheck(_ context.Context) error {
	if err := l.fs.MkdirAll(".", 0o750); err != nil {
		return fmt.Errorf("blob root: %w", err)
	}
	_, err := l.fs.Stat(".")
	return err
}
