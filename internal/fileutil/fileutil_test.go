package fileutil

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofrs/flock"
)

func writeString(s string) func(io.Writer) error {
	return func(w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	}
}

func TestWriteFileAtomicCreates(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "out.m3u8")

	if err := WriteFileAtomic(dst, 0o644, writeString("#EXTM3U\n")); err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "#EXTM3U\n" {
		t.Fatalf("content mismatch: got %q", got)
	}
}

func TestWriteFileAtomicOverwritesAndKeepsMode(t *testing.T) {
	dir := t.TempDir()
	dst := filepath.Join(dir, "out.m3u8")
	if err := os.WriteFile(dst, []byte("old content that is longer"), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := WriteFileAtomic(dst, 0o644, writeString("new")); err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "new" {
		t.Fatalf("content mismatch: got %q", got)
	}
	info, err := os.Stat(dst)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("expected existing mode to be preserved, got %o", info.Mode().Perm())
	}
}

func TestWriteFileAtomicFailureLeavesDestination(t *testing.T) {
	dir := t.TempDir()
	dst := filepath.Join(dir, "out.m3u8")
	if err := os.WriteFile(dst, []byte("keep me"), 0o644); err != nil {
		t.Fatal(err)
	}

	boom := errors.New("boom")
	err := WriteFileAtomic(dst, 0o644, func(w io.Writer) error {
		_, _ = io.WriteString(w, "partial")
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected fill error, got %v", err)
	}

	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "keep me" {
		t.Fatalf("destination changed on failure: %q", got)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, entry := range entries {
		if name := entry.Name(); name != "out.m3u8" && name != "out.m3u8.lock" {
			t.Fatalf("expected temp files to be cleaned up, found %s", name)
		}
	}
}

func TestWriteFileAtomicHonoursLock(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "out.m3u8")
	holder := flock.New(LockPath(dst))
	ok, err := holder.TryLock()
	if err != nil || !ok {
		t.Fatalf("failed to take lock: ok=%v err=%v", ok, err)
	}
	defer holder.Unlock()

	err = WriteFileAtomic(dst, 0o644, writeString("x"))
	if !errors.Is(err, ErrLocked) {
		t.Fatalf("expected ErrLocked, got %v", err)
	}
	if _, statErr := os.Stat(dst); !os.IsNotExist(statErr) {
		t.Fatalf("destination should not exist, stat err=%v", statErr)
	}
}

func TestWriteFileAtomicKeepsLockFile(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "out.m3u8")
	if err := WriteFileAtomic(dst, 0o644, writeString("first")); err != nil {
		t.Fatalf("first write: %v", err)
	}
	lockInfo, err := os.Stat(LockPath(dst))
	if err != nil {
		t.Fatalf("lock file should survive the write: %v", err)
	}

	if err := WriteFileAtomic(dst, 0o644, writeString("second")); err != nil {
		t.Fatalf("second write: %v", err)
	}
	again, err := os.Stat(LockPath(dst))
	if err != nil {
		t.Fatalf("lock file missing after second write: %v", err)
	}
	if !os.SameFile(lockInfo, again) {
		t.Fatal("lock file was recreated between writes")
	}

	holder := flock.New(LockPath(dst))
	ok, err := holder.TryLock()
	if err != nil || !ok {
		t.Fatalf("lock should be released after write: ok=%v err=%v", ok, err)
	}
	_ = holder.Unlock()
}
