package attachments

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestStorageName(t *testing.T) {
	now := time.Date(2024, 3, 15, 9, 45, 30, 0, time.UTC)
	got := storageName(42, "contract.pdf", now)
	if got != "42_20240315094530_contract.pdf" {
		t.Fatalf("unexpected storage name: %s", got)
	}
}

func TestStorageNameStripsDirectories(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	got := storageName(1, "../../etc/passwd", now)
	if strings.Contains(got, "/") || strings.Contains(got, "..") {
		t.Fatalf("storage name leaked path components: %s", got)
	}
}

func TestStorageNameDiffersAcrossDocuments(t *testing.T) {
	now := time.Now()
	if storageName(1, "a.txt", now) == storageName(2, "a.txt", now) {
		t.Fatal("same name for different documents")
	}
}

func TestCopyFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.txt")
	dst := filepath.Join(dir, "dst.txt")
	if err := os.WriteFile(src, []byte("payload"), 0o644); err != nil {
		t.Fatalf("write source: %v", err)
	}

	if err := copyFile(src, dst); err != nil {
		t.Fatalf("copy failed: %v", err)
	}
	data, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("read dest: %v", err)
	}
	if string(data) != "payload" {
		t.Fatalf("unexpected contents: %q", data)
	}
}

func TestCopyFileMissingSource(t *testing.T) {
	dir := t.TempDir()
	if err := copyFile(filepath.Join(dir, "missing"), filepath.Join(dir, "out")); err == nil {
		t.Fatal("expected error for missing source")
	}
}

func TestRemoveFilesToleratesMissing(t *testing.T) {
	dir := t.TempDir()
	present := filepath.Join(dir, "present.txt")
	if err := os.WriteFile(present, []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	RemoveFiles([]string{present, filepath.Join(dir, "already-gone.txt")})

	if _, err := os.Stat(present); !os.IsNotExist(err) {
		t.Fatal("expected present file to be removed")
	}
}
