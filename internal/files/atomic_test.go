package files

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestAtomicWrite_ReplacesContent(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "out.json")

	if err := AtomicWrite(path, []byte("[]"), 0644); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if err := AtomicWrite(path, []byte("[1]"), 0644); err != nil {
		t.Fatalf("second write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "[1]" {
		t.Fatalf("content = %q, want %q", data, "[1]")
	}

	entries, err := os.ReadDir(tmpDir)
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected only the output file, found %d entries", len(entries))
	}
}

func TestAtomicWrite_Permissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix permissions only")
	}
	path := filepath.Join(t.TempDir(), "out.json")
	if err := AtomicWrite(path, []byte("[]"), 0640); err != nil {
		t.Fatalf("write: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if got := info.Mode().Perm(); got != 0640 {
		t.Fatalf("mode = %o, want 640", got)
	}
}

func TestAtomicWrite_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.json")
	if err := AtomicWrite(path, []byte("[]"), 0644); err == nil {
		t.Fatalf("expected error for missing parent directory")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("output should not exist: %v", err)
	}
}

// symlinkLayout returns an output path whose resolution crosses a symlink.
type symlinkLayout func(t *testing.T, dir string) string

func TestAtomicWrite_RefusesSymlinkedOutput(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlink not permitted on Windows")
	}
	cases := []struct {
		name   string
		layout symlinkLayout
	}{
		{"output_file", func(t *testing.T, dir string) string {
			mustSymlink(t, filepath.Join(dir, "historico.json"), filepath.Join(dir, "datos.json"))
			return filepath.Join(dir, "datos.json")
		}},
		{"output_dir", func(t *testing.T, dir string) string {
			mustMkdir(t, filepath.Join(dir, "exports"))
			mustSymlink(t, filepath.Join(dir, "exports"), filepath.Join(dir, "latest"))
			return filepath.Join(dir, "latest", "datos.json")
		}},
		{"ancestor_dir", func(t *testing.T, dir string) string {
			mustMkdir(t, filepath.Join(dir, "exports", "2024"))
			mustSymlink(t, filepath.Join(dir, "exports"), filepath.Join(dir, "latest"))
			return filepath.Join(dir, "latest", "2024", "datos.json")
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			keep := filepath.Join(dir, "historico.json")
			if err := os.WriteFile(keep, []byte("[]"), 0600); err != nil {
				t.Fatalf("write kept file: %v", err)
			}
			path := tc.layout(t, dir)

			if err := RejectSymlinkPath(path); err == nil {
				t.Fatalf("RejectSymlinkPath(%s) accepted a symlinked path", path)
			}
			if err := AtomicWrite(path, []byte("[1]"), 0644); err == nil {
				t.Fatalf("AtomicWrite(%s) wrote through a symlink", path)
			}
			data, err := os.ReadFile(keep)
			if err != nil {
				t.Fatalf("read kept file: %v", err)
			}
			if string(data) != "[]" {
				t.Fatalf("kept file modified: %q", data)
			}
		})
	}
}

func TestRejectSymlinkPath_PlainPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "datos.json")
	if err := RejectSymlinkPath(path); err != nil {
		t.Fatalf("plain path rejected: %v", err)
	}
}

func mustSymlink(t *testing.T, target, link string) {
	t.Helper()
	if err := os.Symlink(target, link); err != nil {
		t.Fatalf("symlink: %v", err)
	}
}

func mustMkdir(t *testing.T, dir string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0700); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
}
