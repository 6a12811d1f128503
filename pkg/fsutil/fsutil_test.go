package fsutil_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/yaklabco/stylefix/pkg/fsutil"
)

func TestReadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "README.md")
	if err := os.WriteFile(path, []byte("# Title\n"), 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}

	content, info, err := fsutil.ReadFile(context.Background(), path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(content) != "# Title\n" {
		t.Errorf("content = %q", content)
	}
	if info.Size != 8 {
		t.Errorf("Size = %d, want 8", info.Size)
	}
	if info.Mode.Perm() != 0o600 {
		t.Errorf("Mode = %v, want 0600", info.Mode.Perm())
	}
}

func TestReadFileErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	_, _, err := fsutil.ReadFile(context.Background(), filepath.Join(dir, "missing.md"))
	if !errors.Is(err, fsutil.ErrNotFound) {
		t.Errorf("missing file error = %v, want ErrNotFound", err)
	}

	_, _, err = fsutil.ReadFile(context.Background(), dir)
	if !errors.Is(err, fsutil.ErrIsDirectory) {
		t.Errorf("directory error = %v, want ErrIsDirectory", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err = fsutil.ReadFile(ctx, filepath.Join(dir, "x"))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("cancelled error = %v, want context.Canceled", err)
	}
}

func TestCheckModified(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, "site.yml")
	if err := os.WriteFile(path, []byte("a: 1\n"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	_, info, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	modified, err := fsutil.CheckModified(ctx, info)
	if err != nil || modified {
		t.Fatalf("CheckModified() = %v, %v; want false, nil", modified, err)
	}

	if err := os.WriteFile(path, []byte("a: 2\n"), 0o644); err != nil {
		t.Fatalf("rewrite: %v", err)
	}
	future := time.Now().Add(time.Hour)
	if err := os.Chtimes(path, future, future); err != nil {
		t.Fatalf("chtimes: %v", err)
	}

	modified, err = fsutil.CheckModified(ctx, info)
	if err != nil || !modified {
		t.Errorf("after rewrite CheckModified() = %v, %v; want true, nil", modified, err)
	}

	if err := os.Remove(path); err != nil {
		t.Fatalf("remove: %v", err)
	}
	modified, err = fsutil.CheckModified(ctx, info)
	if err != nil || !modified {
		t.Errorf("after delete CheckModified() = %v, %v; want true, nil", modified, err)
	}

	if _, err := fsutil.CheckModified(ctx, nil); !errors.Is(err, fsutil.ErrNilFileInfo) {
		t.Errorf("nil info error = %v", err)
	}
}

func TestWriteAtomic(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.md")

	if err := fsutil.WriteAtomic(ctx, path, []byte("first\n"), 0); err != nil {
		t.Fatalf("WriteAtomic() error = %v", err)
	}
	stat, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if stat.Mode().Perm() != fsutil.DefaultFileMode {
		t.Errorf("mode = %v, want %v", stat.Mode().Perm(), fsutil.DefaultFileMode)
	}

	if err := fsutil.WriteAtomic(ctx, path, []byte("second\n"), 0o600); err != nil {
		t.Fatalf("WriteAtomic() overwrite error = %v", err)
	}
	got, _ := os.ReadFile(path)
	if string(got) != "second\n" {
		t.Errorf("content = %q, want %q", got, "second\n")
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("expected no leftover temp files, found %d entries", len(entries))
	}
}

func TestWriteAtomicMissingDir(t *testing.T) {
	t.Parallel()

	err := fsutil.WriteAtomic(context.Background(), filepath.Join(t.TempDir(), "nope", "x.md"), []byte("x"), 0)
	if err == nil {
		t.Error("expected error for missing directory")
	}
}
