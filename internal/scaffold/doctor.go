package scaffold

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bayrell/baylang-cli/internal/manifest"
)

// Health is the outcome of Check.
type Health struct {
	Missing  []string // starter files or assets that do not exist
	Invalid  []string // manifests failing schema validation
	Warnings []string
}

// OK reports whether nothing is missing or invalid.
func (h *Health) OK() bool {
	return len(h.Missing) == 0 && len(h.Invalid) == 0
}

// Check inspects a scaffolded project under root and reports every starter
// file, both manifests and the vendored runtime assets to w. It only fails
// on unexpected filesystem errors.
func Check(w io.Writer, root string) (*Health, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving project root %s: %w", root, err)
	}
	r := NewReporter(w)
	h := &Health{}

	r.Info("Project check: %s", root)
	for _, entry := range Entries() {
		if err := checkEntry(r, h, root, entry.Path); err != nil {
			return h, err
		}
	}

	r.Info("Manifest check:")
	for _, rel := range []string{manifest.ProjectFile, "app/" + manifest.ModuleFile} {
		abs := filepath.Join(root, filepath.FromSlash(rel))
		if exists, _ := pathExists(abs); !exists {
			continue
		}
		res, err := manifest.ValidateFile(abs)
		if err != nil {
			return h, err
		}
		if res.Valid {
			r.OK("%s is valid", rel)
			continue
		}
		h.Invalid = append(h.Invalid, rel)
		r.Fail("%s: %d validation issue(s)", rel, len(res.Issues))
		for _, issue := range res.Issues {
			r.Info("    - %s", issue)
		}
	}

	r.Info("Asset check:")
	if err := checkRuntime(r, h, root); err != nil {
		return h, err
	}
	published := filepath.Join(root, filepath.FromSlash(PublicAssetsDir), "runtime.js")
	if exists, err := pathExists(published); err != nil {
		return h, err
	} else if exists {
		r.OK("%s/runtime.js published", PublicAssetsDir)
	} else {
		msg := fmt.Sprintf("%s/runtime.js not published (run 'baylang publish')", PublicAssetsDir)
		r.Warn("%s", msg)
		h.Warnings = append(h.Warnings, msg)
	}

	return h, nil
}

func checkEntry(r *Reporter, h *Health, root, rel string) error {
	exists, err := pathExists(filepath.Join(root, filepath.FromSlash(rel)))
	if err != nil {
		return err
	}
	if !exists {
		r.Missing(rel)
		h.Missing = append(h.Missing, rel)
		return nil
	}
	r.OK("%s exists", rel)
	return nil
}

func checkRuntime(r *Reporter, h *Health, root string) error {
	path := filepath.Join(root, filepath.FromSlash(RuntimeAssetPath))
	info, err := os.Lstat(path)
	if os.IsNotExist(err) {
		r.Missing(RuntimeAssetPath)
		h.Missing = append(h.Missing, RuntimeAssetPath)
		return nil
	}
	if err != nil {
		return &FilesystemError{Op: "stat", Path: path, Err: err}
	}
	if info.Size() == 0 {
		msg := fmt.Sprintf("%s is an empty placeholder (delete it and re-run 'baylang init')", RuntimeAssetPath)
		r.Warn("%s", msg)
		h.Warnings = append(h.Warnings, msg)
		return nil
	}
	r.OK("%s (%d bytes)", RuntimeAssetPath, info.Size())
	return nil
}

// RemovePlaceholder deletes the runtime asset if it is an empty placeholder
// left by the empty fetch policy, so the next scaffold pass downloads it again.
func RemovePlaceholder(root string) (bool, error) {
	path := filepath.Join(root, filepath.FromSlash(RuntimeAssetPath))
	info, err := os.Lstat(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, &FilesystemError{Op: "stat", Path: path, Err: err}
	}
	if !info.Mode().IsRegular() || info.Size() != 0 {
		return false, nil
	}
	if err := os.Remove(path); err != nil {
		return false, &FilesystemError{Op: "remove", Path: path, Err: err}
	}
	return true, nil
}
