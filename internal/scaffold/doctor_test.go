package scaffold

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
)

func disableColor(t *testing.T) {
	t.Helper()
	saved := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = saved })
}

func TestCheck_EmptyRoot(t *testing.T) {
	disableColor(t)
	var out bytes.Buffer
	h, err := Check(&out, t.TempDir())
	if err != nil {
		t.Fatalf("Check() error: %v", err)
	}
	if h.OK() {
		t.Fatal("empty root reported healthy")
	}
	// Six starter files plus the runtime asset.
	if len(h.Missing) != 7 {
		t.Errorf("Missing = %v, want 7 entries", h.Missing)
	}
	assertContains(t, out.String(), "[MISS] project.json does not exist")
}

func TestCheck_ScaffoldedProject(t *testing.T) {
	root := t.TempDir()
	if _, err := newTestScaffolder(t, root, &fakeFetcher{}, nil, nil).Scaffold(context.Background()); err != nil {
		t.Fatalf("Scaffold() error: %v", err)
	}

	var out bytes.Buffer
	h, err := Check(&out, root)
	if err != nil {
		t.Fatalf("Check() error: %v", err)
	}
	if !h.OK() {
		t.Errorf("scaffolded project unhealthy: missing=%v invalid=%v", h.Missing, h.Invalid)
	}
	assertContains(t, out.String(), "project.json is valid")
	assertContains(t, out.String(), "app/module.json is valid")
	// The recording publisher copies nothing.
	if len(h.Warnings) != 1 {
		t.Errorf("Warnings = %v, want the unpublished runtime.js warning", h.Warnings)
	}
}

func TestCheck_InvalidManifest(t *testing.T) {
	disableColor(t)
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "project.json"), `{"name": "X"}`)

	var out bytes.Buffer
	h, err := Check(&out, root)
	if err != nil {
		t.Fatalf("Check() error: %v", err)
	}
	if len(h.Invalid) != 1 || h.Invalid[0] != "project.json" {
		t.Errorf("Invalid = %v, want [project.json]", h.Invalid)
	}
	assertContains(t, out.String(), "[FAIL] project.json")
}

func TestCheck_EmptyPlaceholder(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, filepath.FromSlash(RuntimeAssetPath)), "")

	h, err := Check(&bytes.Buffer{}, root)
	if err != nil {
		t.Fatalf("Check() error: %v", err)
	}
	if contains(h.Missing, RuntimeAssetPath) {
		t.Error("placeholder reported as missing")
	}
	found := false
	for _, w := range h.Warnings {
		if bytes.Contains([]byte(w), []byte("empty placeholder")) {
			found = true
		}
	}
	if !found {
		t.Errorf("Warnings = %v, want an empty placeholder warning", h.Warnings)
	}
}

func TestRemovePlaceholder(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, filepath.FromSlash(RuntimeAssetPath))

	removed, err := RemovePlaceholder(root)
	if err != nil || removed {
		t.Fatalf("RemovePlaceholder() on missing file = %v, %v", removed, err)
	}

	writeFile(t, path, runtimeContent)
	if removed, err := RemovePlaceholder(root); err != nil || removed {
		t.Fatalf("RemovePlaceholder() removed a real asset: %v, %v", removed, err)
	}

	writeFile(t, path, "")
	removed, err = RemovePlaceholder(root)
	if err != nil || !removed {
		t.Fatalf("RemovePlaceholder() = %v, %v, want true", removed, err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("placeholder still present: %v", err)
	}
}

func TestCheck_MalformedManifest(t *testing.T) {
	disableColor(t)
	root := t.TempDir()
	if _, err := newTestScaffolder(t, root, &fakeFetcher{}, nil, nil).Scaffold(context.Background()); err != nil {
		t.Fatalf("Scaffold() error: %v", err)
	}
	writeFile(t, filepath.Join(root, "project.json"), "{not json")

	var out bytes.Buffer
	h, err := Check(&out, root)
	if err != nil {
		t.Fatalf("Check() error: %v", err)
	}
	if len(h.Invalid) != 1 || h.Invalid[0] != "project.json" {
		t.Errorf("Invalid = %v, want [project.json]", h.Invalid)
	}
	assertContains(t, out.String(), "[FAIL] project.json")
	assertContains(t, out.String(), "invalid JSON")
	assertContains(t, out.String(), "app/module.json is valid")
	assertContains(t, out.String(), "Asset check:")
}
