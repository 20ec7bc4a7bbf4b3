package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

// capture routes output to a buffer with the given verbosity and restores
// the defaults when the test ends.
func capture(t *testing.T, v bool) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(v)
	t.Cleanup(func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	})
	return &buf
}

func TestSetVerbose(t *testing.T) {
	capture(t, false)

	if IsVerbose() {
		t.Fatal("verbose should start disabled")
	}
	SetVerbose(true)
	if !IsVerbose() {
		t.Fatal("SetVerbose(true) did not enable verbose mode")
	}
}

func TestLevels(t *testing.T) {
	tests := []struct {
		name string
		log  func()
		want string
	}{
		{"debug", func() { Debug("added city %s", "Galle") }, "[DEBUG] added city Galle\n"},
		{"info", func() { Info("loaded %d cities and %d deliveries", 3, 1) }, "[INFO] loaded 3 cities and 1 deliveries\n"},
		{"warn", func() { Warn("route store %s is corrupt", "routes.txt") }, "[WARN] route store routes.txt is corrupt\n"},
		{"section", func() { Section("Save") }, "\n=== Save ===\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := capture(t, true)
			tt.log()
			if got := buf.String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})

		t.Run(tt.name+" quiet", func(t *testing.T) {
			buf := capture(t, false)
			tt.log()
			if buf.Len() != 0 {
				t.Errorf("expected no output, got %q", buf.String())
			}
		})
	}
}

func TestRedirectToFile(t *testing.T) {
	buf := capture(t, true)

	path := filepath.Join(t.TempDir(), "logs", "fleetbook.log")
	restore, err := RedirectToFile(path)
	if err != nil {
		t.Fatalf("RedirectToFile: %v", err)
	}

	Info("saved %d deliveries", 2)

	if err := restore(); err != nil {
		t.Fatalf("restore: %v", err)
	}
	Info("after restore")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if string(data) != "[INFO] saved 2 deliveries\n" {
		t.Errorf("unexpected log file content: %q", data)
	}
	if buf.String() != "[INFO] after restore\n" {
		t.Errorf("expected output restored to buffer, got %q", buf.String())
	}
}

func TestRedirectToFile_Unwritable(t *testing.T) {
	capture(t, true)

	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, nil, 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := RedirectToFile(filepath.Join(blocker, "fleetbook.log")); err == nil {
		t.Fatal("expected an error when the log directory is a file")
	}
}

func TestConcurrentAccess(t *testing.T) {
	capture(t, false)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			SetVerbose(i%2 == 0)
			Debug("set distance %d", i)
			_ = IsVerbose()
		}()
	}
	wg.Wait()
}
