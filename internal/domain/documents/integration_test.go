//go:build integration

package documents

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	"docman/internal/domain/attachments"
	"docman/internal/domain/audit"
	"docman/internal/platform/config"
	"docman/internal/platform/db"
)

func setupPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		t.Skip("DATABASE_URL not set")
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, config.Config{DatabaseURL: url})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(pool.Close)

	if err := db.Migrate(ctx, pool, "../../../migrations"); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if _, err := pool.Exec(ctx, "TRUNCATE attachments, salaries, documents, employees, audit_log RESTART IDENTITY CASCADE"); err != nil {
		t.Fatalf("truncate: %v", err)
	}
	return pool
}

func TestAddMapsDuplicateNumber(t *testing.T) {
	pool := setupPool(t)
	ctx := context.Background()
	svc := NewService(NewStore(pool), attachments.NewStore(pool), audit.New(pool), nil)

	input := Input{Name: "Passport", Number: "P-100", IssueDate: "01-01-2024", ExpiryDate: "01-01-2034"}
	if _, err := svc.Add(ctx, input); err != nil {
		t.Fatalf("first add: %v", err)
	}
	if _, err := svc.Add(ctx, input); !errors.Is(err, ErrDuplicateNumber) {
		t.Fatalf("expected ErrDuplicateNumber, got %v", err)
	}
}

func TestDeleteCascadesRowsAndAudits(t *testing.T) {
	pool := setupPool(t)
	ctx := context.Background()
	attStore := attachments.NewStore(pool)
	auditSvc := audit.New(pool)
	svc := NewService(NewStore(pool), attStore, auditSvc, nil)

	id, err := svc.Add(ctx, Input{Name: "Contract", Number: "C-1"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	// File deliberately absent; post-commit removal tolerates that.
	if _, err := attStore.Insert(ctx, attachments.Attachment{
		DocumentID: id,
		FileName:   "contract.pdf",
		FilePath:   filepath.Join(t.TempDir(), "contract.pdf"),
	}); err != nil {
		t.Fatalf("insert attachment: %v", err)
	}

	if err := svc.Delete(ctx, id); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if rows, err := attStore.ListForDocument(ctx, id); err != nil || len(rows) != 0 {
		t.Fatalf("expected attachment rows removed, got %d rows, err %v", len(rows), err)
	}
	if _, _, err := NewStore(pool).NameNumber(ctx, id); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected document row removed, got %v", err)
	}

	entries, err := auditSvc.List(ctx)
	if err != nil {
		t.Fatalf("audit list: %v", err)
	}
	var found bool
	for _, entry := range entries {
		if entry.Action == "Deleted document" {
			found = true
		}
	}
	if !found {
		t.Fatal("expected a committed audit entry for the cascade")
	}
}

func TestDeleteMissingDocumentLeavesNoAuditEntry(t *testing.T) {
	pool := setupPool(t)
	ctx := context.Background()
	auditSvc := audit.New(pool)
	svc := NewService(NewStore(pool), attachments.NewStore(pool), auditSvc, nil)

	if err := svc.Delete(ctx, 9999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	entries, err := auditSvc.List(ctx)
	if err != nil {
		t.Fatalf("audit list: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no audit entries after failed delete, got %d", len(entries))
	}
}
