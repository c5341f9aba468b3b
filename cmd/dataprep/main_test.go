package main

import (
	"bytes"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func setupRun(t *testing.T, files map[string][]byte) (source, target, logPath string, server *httptest.Server) {
	t.Helper()
	dir := t.TempDir()
	source = filepath.Join(dir, "raw_images")
	target = filepath.Join(dir, "dataset")
	logPath = filepath.Join(dir, "run.log")
	if err := os.MkdirAll(source, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(source, name), content, 0644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/cat001") {
			_, _ = w.Write([]byte(`{"classname":"cat"}`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(server.Close)
	return source, target, logPath, server
}

func encodePNG(t *testing.T) []byte {
	t.Helper()
	var buffer bytes.Buffer
	img := image.NewRGBA(image.Rect(0, 0, 24, 12))
	for i := range img.Pix {
		img.Pix[i] = uint8(i)
	}
	if err := png.Encode(&buffer, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buffer.Bytes()
}

func TestMainImplUnknownLabelIsNotAFailure(t *testing.T) {
	source, target, logPath, server := setupRun(t, map[string][]byte{
		"cat001.png":    encodePNG(t),
		"unknown77.png": encodePNG(t),
	})
	reportPath := filepath.Join(target, "..", "report.yaml")

	code := mainImpl([]string{
		"--target-directory", target,
		"--source-directory", source,
		"--api-url", server.URL + "/images",
		"--height", "16",
		"--width", "16",
		"--log-path", logPath,
		"--report", reportPath,
	})

	if code != exitOK {
		t.Fatalf("Expected exit code %d, got %d", exitOK, code)
	}
	if _, err := os.Stat(filepath.Join(target, "cat", "cat001.png")); err != nil {
		t.Fatalf("Expected cat001.png to be stored: %v", err)
	}
	if _, err := os.Stat(reportPath); err != nil {
		t.Fatalf("Expected a report: %v", err)
	}
	log, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(log), "WARN") || !strings.Contains(string(log), "unknown77.png") {
		t.Fatalf("Expected a warning about unknown77.png in %q", log)
	}
}

func TestMainImplFailuresExitNonZero(t *testing.T) {
	source, target, logPath, server := setupRun(t, map[string][]byte{
		"cat001.png": []byte("not a png"),
	})

	code := mainImpl([]string{
		"--target-directory", target,
		"--source-directory", source,
		"--api-url", server.URL + "/images",
		"--log-path", logPath,
	})

	if code != exitFailures {
		t.Fatalf("Expected exit code %d, got %d", exitFailures, code)
	}
}

func TestMainImplInvalidConfiguration(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "run.log")
	if code := mainImpl([]string{"--log-path", logPath}); code != exitError {
		t.Fatalf("Expected exit code %d without a target directory, got %d", exitError, code)
	}
	code := mainImpl([]string{
		"--target-directory", t.TempDir(),
		"--source-directory", filepath.Join(t.TempDir(), "missing"),
		"--log-path", logPath,
	})
	if code != exitError {
		t.Fatalf("Expected exit code %d for a missing source directory, got %d", exitError, code)
	}
}
