package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetupLogging(t *testing.T) {
	tests := []struct {
		name     string
		debug    bool
		wantFile bool
	}{
		{"debug off discards", false, false},
		{"debug on writes file", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer log.SetOutput(io.Discard)
			dir := filepath.Join(t.TempDir(), "logs")

			f := setupLogging(dir, tt.debug)
			if f != nil {
				defer f.Close()
			}

			if (f != nil) != tt.wantFile {
				t.Fatalf("setupLogging(debug=%v) file = %v, want file %v", tt.debug, f, tt.wantFile)
			}

			out := log.Writer()
			if out == os.Stdout || out == os.Stderr {
				t.Fatal("Logger must never write to the screen")
			}

			if !tt.wantFile {
				if out != io.Discard {
					t.Errorf("Expected io.Discard, got %T", out)
				}
				if _, err := os.Stat(dir); !os.IsNotExist(err) {
					t.Error("Log directory created with debug off")
				}
				return
			}

			log.Printf("editor: ctrl+q -> quitting")
			data, err := os.ReadFile(filepath.Join(dir, logFileName))
			if err != nil {
				t.Fatalf("Failed to read %s: %v", logFileName, err)
			}
			if !strings.Contains(string(data), "ctrl+q -> quitting") {
				t.Errorf("Log line missing from %q", data)
			}
		})
	}
}

func TestSetupLogging_RotatesOversizedLog(t *testing.T) {
	defer log.SetOutput(io.Discard)
	dir := t.TempDir()

	current := filepath.Join(dir, logFileName)
	if err := os.WriteFile(current, make([]byte, maxLogSize+1), 0644); err != nil {
		t.Fatalf("Failed to seed oversized log: %v", err)
	}

	f := setupLogging(dir, true)
	if f == nil {
		t.Fatal("Expected a fresh log file")
	}
	defer f.Close()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	var rotated []string
	for _, e := range entries {
		if name := e.Name(); name != logFileName && strings.HasPrefix(name, "hecto-") && strings.HasSuffix(name, ".log") {
			rotated = append(rotated, name)
		}
	}
	if len(rotated) != 1 {
		t.Fatalf("Expected one rotated log, found %v", rotated)
	}

	info, err := os.Stat(current)
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if info.Size() != 0 {
		t.Errorf("Expected empty log after rotation, got %d bytes", info.Size())
	}
}

func TestSetupLogging_UnusableDirFallsBackToDiscard(t *testing.T) {
	defer log.SetOutput(io.Discard)

	// A regular file where the directory should be
	blocker := filepath.Join(t.TempDir(), "logs")
	if err := os.WriteFile(blocker, nil, 0644); err != nil {
		t.Fatalf("Failed to create blocker: %v", err)
	}

	if f := setupLogging(blocker, true); f != nil {
		f.Close()
		t.Fatal("Expected no log file when the directory cannot be created")
	}
	if log.Writer() != io.Discard {
		t.Error("Expected io.Discard fallback")
	}
}

func TestNewTerminal_UnknownDriver(t *testing.T) {
	if _, err := newTerminal("vt52"); err == nil || !strings.Contains(err.Error(), "vt52") {
		t.Fatalf("Expected error naming the driver, got %v", err)
	}
}

func TestNewTerminal_ANSI(t *testing.T) {
	term, err := newTerminal("ansi")
	if err != nil || term == nil {
		t.Fatalf("Expected ansi driver, got %v (err=%v)", term, err)
	}
}
