package scaffold

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bayrell/baylang-cli/internal/branding"
	"github.com/bayrell/baylang-cli/internal/fetch"
	"github.com/bayrell/baylang-cli/internal/publish"
)

const (
	dirPerm  os.FileMode = 0777
	filePerm os.FileMode = 0644
)

// Fetcher downloads url into dest. *fetch.Fetcher satisfies it.
type Fetcher interface {
	Fetch(ctx context.Context, url, dest string) (int64, error)
}

// TargetConfig describes the project to scaffold and the collaborators used.
// Zero values fall back to defaults in New.
type TargetConfig struct {
	Root          string
	Progress      io.Writer
	Fetcher       Fetcher
	Publisher     publish.Publisher
	AssetURL      string
	PackageAssets string
	FetchPolicy   fetch.Policy
}

// FilesystemError reports a failed directory creation or file write. It
// aborts the scaffold pass; files written before it stay in place.
type FilesystemError struct {
	Op   string
	Path string
	Err  error
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FilesystemError) Unwrap() error { return e.Err }

// Result holds the outcome of a scaffold pass. Paths are relative to Root.
type Result struct {
	Root      string
	Created   []string
	Skipped   []string
	Published []string
	Warnings  []string
}

// Scaffolder creates the starter project under a root directory.
type Scaffolder struct {
	cfg     TargetConfig
	entries []FileSpec
	report  *Reporter
}

// New validates cfg, fills in defaults and returns a Scaffolder.
func New(cfg TargetConfig) (*Scaffolder, error) {
	if cfg.Root == "" {
		return nil, fmt.Errorf("project root is required")
	}
	root, err := filepath.Abs(cfg.Root)
	if err != nil {
		return nil, fmt.Errorf("resolving project root %s: %w", cfg.Root, err)
	}
	cfg.Root = root

	if cfg.Fetcher == nil {
		cfg.Fetcher = fetch.New()
	}
	if cfg.Publisher == nil {
		cfg.Publisher = publish.Dir{}
	}
	if cfg.AssetURL == "" {
		cfg.AssetURL = branding.VueURL(branding.VueVersion())
	}
	if cfg.FetchPolicy == "" {
		cfg.FetchPolicy = fetch.DefaultPolicy
	}
	if _, err := fetch.ParsePolicy(string(cfg.FetchPolicy)); err != nil {
		return nil, err
	}

	return &Scaffolder{
		cfg:     cfg,
		entries: Entries(),
		report:  NewReporter(cfg.Progress),
	}, nil
}

// Root returns the absolute project root.
func (s *Scaffolder) Root() string { return s.cfg.Root }

// Scaffold writes every missing starter file, publishes the package assets
// and vendors the runtime asset. The first fatal error stops the pass; a
// re-run resumes because existing paths are skipped.
func (s *Scaffolder) Scaffold(ctx context.Context) (*Result, error) {
	res := &Result{Root: s.cfg.Root}

	if err := s.WriteEntries(res); err != nil {
		return res, err
	}
	if err := s.PublishAssets(res); err != nil {
		return res, err
	}
	if err := s.FetchRuntime(ctx, res); err != nil {
		return res, err
	}
	return res, nil
}

// WriteEntries runs the fixed-entry pass.
func (s *Scaffolder) WriteEntries(res *Result) error {
	for _, entry := range s.entries {
		if err := s.writeEntry(entry, res); err != nil {
			return err
		}
	}
	return nil
}

func (s *Scaffolder) writeEntry(entry FileSpec, res *Result) error {
	dest := s.abs(entry.Path)

	exists, err := pathExists(dest)
	if err != nil {
		return err
	}
	if exists {
		s.report.Skipped(entry.Path, "already exists")
		res.Skipped = append(res.Skipped, entry.Path)
		return nil
	}

	if err := makeParent(dest); err != nil {
		return err
	}

	content, err := entry.Content()
	if err != nil {
		return fmt.Errorf("generating %s: %w", entry.Name, err)
	}
	if err := os.WriteFile(dest, content, filePerm); err != nil {
		return &FilesystemError{Op: "write", Path: dest, Err: err}
	}

	s.report.Created(entry.Path)
	res.Created = append(res.Created, entry.Path)
	return nil
}

// PublishAssets copies the runtime package's bundled assets into
// public/assets/core. The copy is always forced: these files belong to the
// runtime, not the user. A missing package asset directory is reported and
// skipped.
func (s *Scaffolder) PublishAssets(res *Result) error {
	dst := s.abs(PublicAssetsDir)
	src := s.cfg.PackageAssets
	if src != "" && !filepath.IsAbs(src) {
		src = filepath.Join(s.cfg.Root, src)
	}

	s.report.Info("Publish assets")
	out, err := s.cfg.Publisher.Publish(src, dst, true)
	if errors.Is(err, publish.ErrSourceMissing) {
		s.report.Skipped(PublicAssetsDir, "no package assets to publish")
		return nil
	}
	if err != nil {
		return err
	}
	if out != nil {
		for _, p := range out.Copied {
			rel := filepath.ToSlash(filepath.Join(PublicAssetsDir, p))
			s.report.Created(rel)
			res.Published = append(res.Published, rel)
		}
	}
	return nil
}

// FetchRuntime downloads the Vue runtime unless it is already present. A
// network failure is handled according to the configured fetch.Policy.
func (s *Scaffolder) FetchRuntime(ctx context.Context, res *Result) error {
	dest := s.abs(RuntimeAssetPath)

	exists, err := pathExists(dest)
	if err != nil {
		return err
	}
	if exists {
		s.report.Skipped(RuntimeAssetPath, "already exists")
		res.Skipped = append(res.Skipped, RuntimeAssetPath)
		return nil
	}

	if err := makeParent(dest); err != nil {
		return err
	}

	s.report.Info("Download Vue from %s", s.cfg.AssetURL)
	_, err = s.cfg.Fetcher.Fetch(ctx, s.cfg.AssetURL, dest)
	if err == nil {
		s.report.Created(RuntimeAssetPath)
		res.Created = append(res.Created, RuntimeAssetPath)
		return nil
	}

	var netErr *fetch.NetworkError
	if !errors.As(err, &netErr) {
		return err
	}

	switch s.cfg.FetchPolicy {
	case fetch.PolicyFail:
		return err
	case fetch.PolicyEmpty:
		if werr := os.WriteFile(dest, nil, filePerm); werr != nil {
			return &FilesystemError{Op: "write", Path: dest, Err: werr}
		}
		msg := fmt.Sprintf("%v; wrote empty placeholder %s", err, RuntimeAssetPath)
		s.report.Warn("%s", msg)
		res.Warnings = append(res.Warnings, msg)
		res.Created = append(res.Created, RuntimeAssetPath)
	default:
		msg := fmt.Sprintf("%v; %s not created, re-run to retry", err, RuntimeAssetPath)
		s.report.Warn("%s", msg)
		res.Warnings = append(res.Warnings, msg)
	}
	return nil
}

func (s *Scaffolder) abs(rel string) string {
	return filepath.Join(s.cfg.Root, filepath.FromSlash(rel))
}

// pathExists reports whether anything (file, directory, symlink) is at path.
func pathExists(path string) (bool, error) {
	_, err := os.Lstat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, &FilesystemError{Op: "stat", Path: path, Err: err}
}

// makeParent creates the parent directory of path. Existing directories are fine.
func makeParent(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return &FilesystemError{Op: "mkdir", Path: dir, Err: err}
	}
	return nil
}
