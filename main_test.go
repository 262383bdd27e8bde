package main

import (
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"artspace/internal/catalog"
)

// capture swaps *target for a pipe while fn runs and returns what was written.
func capture(t *testing.T, target **os.File, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	orig := *target
	*target = w
	defer func() { *target = orig }()

	done := make(chan string)
	go func() {
		data, _ := io.ReadAll(r)
		done <- string(data)
	}()

	fn()
	w.Close()
	return <-done
}

func isolateHome(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	for _, k := range []string{"ARTSPACE_CATALOG_DIR", "ARTSPACE_LOCALE"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestRunShowOutOfRange(t *testing.T) {
	isolateHome(t)

	var runErr error
	stderr := capture(t, &os.Stderr, func() {
		runErr = run("", false, 99)
	})

	if runErr == nil {
		t.Fatal("Expected an error for -show 99")
	}
	if !errors.Is(runErr, catalog.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got: %v", runErr)
	}
	if !strings.Contains(runErr.Error(), "show 99") {
		t.Errorf("Expected error to name the request, got: %v", runErr)
	}
	if stderr != "" {
		t.Errorf("Expected run to leave error reporting to main, got stderr %q", stderr)
	}
}

func TestRunShow(t *testing.T) {
	isolateHome(t)

	var runErr error
	stdout := capture(t, &os.Stdout, func() {
		runErr = run("", false, 3)
	})

	if runErr != nil {
		t.Fatalf("Expected no error, got: %v", runErr)
	}
	if !strings.Contains(stdout, "Black Square") || !strings.Contains(stdout, "3 / 10") {
		t.Errorf("Unexpected -show output:\n%s", stdout)
	}
}

func TestRunList(t *testing.T) {
	isolateHome(t)

	var runErr error
	stdout := capture(t, &os.Stdout, func() {
		runErr = run("", true, 0)
	})

	if runErr != nil {
		t.Fatalf("Expected no error, got: %v", runErr)
	}
	if !strings.Contains(stdout, "10 artworks") {
		t.Errorf("Unexpected -list output:\n%s", stdout)
	}
}
