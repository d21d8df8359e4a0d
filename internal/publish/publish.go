package publish

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ErrSourceMissing is returned when the package asset directory does not exist.
var ErrSourceMissing = errors.New("package asset directory not found")

// excludedNames are files/directories never published.
var excludedNames = map[string]bool{
	"node_modules": true,
	".git":         true,
	".DS_Store":    true,
}

// Publisher copies a package asset directory into a public asset directory.
type Publisher interface {
	Publish(src, dst string, force bool) (*Result, error)
}

// Result lists the files handled by a publish, relative to dst.
type Result struct {
	Copied  []string
	Skipped []string
}

// Dir publishes assets by recursive file copy.
type Dir struct{}

// Publish copies src into dst. With force every file is rewritten; without
// it files already present in dst are left alone.
func (Dir) Publish(src, dst string, force bool) (*Result, error) {
	info, err := os.Stat(src)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrSourceMissing, src)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", src, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", src)
	}

	result := &Result{}
	if err := copyDir(src, dst, "", force, result); err != nil {
		return nil, fmt.Errorf("publishing %s to %s: %w", src, dst, err)
	}
	return result, nil
}

// copyDir recursively copies src to dst, excluding entries in excludedNames.
func copyDir(src, dst, rel string, force bool, result *Result) error {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dst, srcInfo.Mode().Perm()|0700); err != nil {
		return err
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if excludedNames[entry.Name()] {
			continue
		}

		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())
		relPath := filepath.Join(rel, entry.Name())

		if entry.IsDir() {
			if err := copyDir(srcPath, dstPath, relPath, force, result); err != nil {
				return err
			}
			continue
		}
		if !entry.Type().IsRegular() {
			// Skip symlinks and other special files.
			continue
		}
		if !force {
			if _, err := os.Lstat(dstPath); err == nil {
				result.Skipped = append(result.Skipped, relPath)
				continue
			}
		}
		if err := copyFile(srcPath, dstPath); err != nil {
			return err
		}
		result.Copied = append(result.Copied, relPath)
	}

	return nil
}

// copyFile copies a single file from src to dst, preserving permissions.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
