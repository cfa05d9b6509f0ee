package repo

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"nat/internal/domain"
)

// Repository is an on-disk corpus of test sources (src subtree) and
// recorded baselines (outs subtree).
type Repository struct {
	path        string
	sourceExt   string
	ignoredDirs map[string]bool
}

// New creates a Repository rooted at path. Directories named in ignoredDirs
// are excluded from enumeration but their files still compile.
func New(path, sourceExt string, ignoredDirs []string) (*Repository, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("test repository not found: %s", path)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("test repository must be a directory: %s", path)
	}

	ignored := make(map[string]bool)
	for _, dir := range ignoredDirs {
		ignored[dir] = true
	}
	return &Repository{path: path, sourceExt: sourceExt, ignoredDirs: ignored}, nil
}

// SrcDir returns the source root of the repository
func (r *Repository) SrcDir() string {
	return filepath.Join(r.path, "src")
}

func (r *Repository) outDir() string {
	return filepath.Join(r.path, "outs")
}

func (r *Repository) baselinePath(identifier string) string {
	return filepath.Join(r.outDir(), identifier+".out")
}

// Enumerate walks the src subtree and returns one Test per non-ignored
// source file, each carrying its baseline if one is recorded. Order is
// directory-listing order.
func (r *Repository) Enumerate() ([]domain.Test, error) {
	srcDir := r.SrcDir()
	var tests []domain.Test

	err := filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != srcDir && r.ignoredDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}

		rel, err := filepath.Rel(srcDir, path)
		if err != nil {
			return err
		}
		identifier := IdentifierFromPath(rel, r.sourceExt)

		baseline, ok, err := r.ReadBaseline(identifier)
		if err != nil {
			return err
		}
		tests = append(tests, domain.Test{
			Identifier:  identifier,
			SrcDir:      srcDir,
			Baseline:    baseline,
			HasBaseline: ok,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("enumerate tests: %w", err)
	}
	return tests, nil
}

// ReadBaseline returns the recorded baseline for an identifier. A missing
// baseline file is not an error; the second return value reports presence.
func (r *Repository) ReadBaseline(identifier string) (string, bool, error) {
	data, err := os.ReadFile(r.baselinePath(identifier))
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("read baseline %s: %w", identifier, err)
	}
	return string(data), true, nil
}

// WriteBaseline persists content as the baseline for an identifier,
// overwriting any prior recording.
func (r *Repository) WriteBaseline(identifier, content string) error {
	if err := os.MkdirAll(r.outDir(), 0755); err != nil {
		return fmt.Errorf("create baseline dir: %w", err)
	}
	if err := os.WriteFile(r.baselinePath(identifier), []byte(content), 0644); err != nil {
		return fmt.Errorf("write baseline %s: %w", identifier, err)
	}
	return nil
}

// AllSourceFiles returns every file under src, including files in ignored
// directories, for bulk compilation.
func (r *Repository) AllSourceFiles() ([]string, error) {
	var files []string
	err := filepath.WalkDir(r.SrcDir(), func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("collect source files: %w", err)
	}
	return files, nil
}

// ListBaselines returns the identifiers of all recorded baseline files.
// Baselines are append-only; identifiers without a matching source survive
// until pruned explicitly.
func (r *Repository) ListBaselines() ([]string, error) {
	entries, err := os.ReadDir(r.outDir())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("list baselines: %w", err)
	}

	var identifiers []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".out") {
			continue
		}
		identifiers = append(identifiers, strings.TrimSuffix(entry.Name(), ".out"))
	}
	return identifiers, nil
}

// RemoveBaseline deletes the baseline file for an identifier.
func (r *Repository) RemoveBaseline(identifier string) error {
	if err := os.Remove(r.baselinePath(identifier)); err != nil {
		return fmt.Errorf("remove baseline %s: %w", identifier, err)
	}
	return nil
}
