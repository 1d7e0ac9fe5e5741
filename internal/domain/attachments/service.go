package attachments

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"docman/internal/domain/audit"
	"docman/internal/platform/db"
	"docman/internal/platform/metrics"
)

type Service struct {
	store   *Store
	audit   *audit.Service
	metrics *metrics.Metrics
	dir     string
}

func NewService(store *Store, auditSvc *audit.Service, m *metrics.Metrics, dir string) *Service {
	return &Service{store: store, audit: auditSvc, metrics: m, dir: dir}
}

// Attach copies the source file into the managed directory and records the
// row. The copy happens first; if the insert fails the copy is removed, so a
// failure never leaves a row pointing at nothing or a file owned by nothing.
func (s *Service) Attach(ctx context.Context, documentID int64, sourcePath, fileName string) (int64, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return 0, fmt.Errorf("attachment dir: %w", err)
	}

	destPath := filepath.Join(s.dir, storageName(documentID, fileName, time.Now()))
	if err := copyFile(sourcePath, destPath); err != nil {
		return 0, fmt.Errorf("attachment copy: %w", err)
	}

	id, err := s.store.Insert(ctx, Attachment{DocumentID: documentID, FileName: fileName, FilePath: destPath})
	if err != nil {
		if removeErr := os.Remove(destPath); removeErr != nil {
			slog.Warn("orphaned attachment copy could not be removed", "path", destPath, "err", removeErr)
		}
		if db.IsForeignKeyViolation(err) {
			return 0, ErrDocumentNotFound
		}
		return 0, err
	}

	if err := s.audit.Record(ctx, "Added attachment", fmt.Sprintf("%s for document id: %d", fileName, documentID)); err != nil {
		return 0, err
	}
	s.metrics.RecordMutation("attachment", "add")
	return id, nil
}

func (s *Service) ListForDocument(ctx context.Context, documentID int64) ([]Attachment, error) {
	return s.store.ListForDocument(ctx, documentID)
}

func (s *Service) Get(ctx context.Context, id int64) (Attachment, error) {
	return s.store.Get(ctx, id)
}

// Delete removes the physical file first, tolerating one that is already
// gone, then the row. A file that cannot be removed is logged and does not
// block record cleanup.
func (s *Service) Delete(ctx context.Context, id int64) error {
	att, err := s.store.Get(ctx, id)
	if err != nil {
		return err
	}

	RemoveFiles([]string{att.FilePath})

	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.audit.Record(ctx, "Deleted attachment", fmt.Sprintf("%s (id: %d)", att.FileName, id)); err != nil {
		return err
	}
	s.metrics.RecordMutation("attachment", "delete")
	return nil
}

// RemoveFiles deletes stored attachment files best-effort. Used after a
// cascade commits, when the rows are gone and the files must follow.
func RemoveFiles(paths []string) {
	for _, path := range paths {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			slog.Warn("attachment file removal failed", "path", path, "err", err)
		}
	}
}

// storageName prefixes the original name with the document id and a second
// precision timestamp so repeated uploads of the same name never collide.
func storageName(documentID int64, fileName string, now time.Time) string {
	return fmt.Sprintf("%d_%s_%s", documentID, now.Format("20060102150405"), filepath.Base(fileName))
}

func copyFile(sourcePath, destPath string) error {
	source, err := os.Open(sourcePath)
	if err != nil {
		return err
	}
	defer source.Close()

	dest, err := os.Create(destPath)
	if err != nil {
		return err
	}

	if _, err := io.Copy(dest, source); err != nil {
		dest.Close()
		_ = os.Remove(destPath)
		return err
	}
	return dest.Close()
}
